// Package balance computes the per-tracking running balance ("saldo") of
// conductor payments for reporting. Everything is exact decimal arithmetic;
// the rows are derived on read and never persisted.
package balance

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/repository"
)

// Row is one tracking number's slice of a transaction group. The final
// remainder is repeated on every row of the group so paginated or filtered
// views can show it without re-aggregating.
type Row struct {
	TransactionID       string          `json:"transaction_id"`
	ReferencePayment    string          `json:"reference_payment"`
	Tracking            string          `json:"tracking"`
	Client              string          `json:"client"`
	Carrier             string          `json:"carrier"`
	TrackingValue       decimal.Decimal `json:"tracking_value"`
	CumulativeRemainder decimal.Decimal `json:"cumulative_remainder"`
	FinalRemainder      decimal.Decimal `json:"final_remainder"`
	TotalPaymentValue   decimal.Decimal `json:"total_payment_value"`
}

// Report is a paginated slice of the computed rows.
type Report struct {
	Rows    []Row `json:"rows"`
	Total   int   `json:"total"`
	HasMore bool  `json:"has_more"`
}

// Filter narrows the report. Client filtering happens after aggregation, so
// filtered rows keep the remainders of their full group.
type Filter struct {
	TransactionID string
	Client        string
	From          *time.Time
	To            *time.Time
	Limit         int
	Offset        int
}

type Aggregator struct {
	payments repository.ConductorPaymentRepository
}

func NewAggregator(payments repository.ConductorPaymentRepository) *Aggregator {
	return &Aggregator{payments: payments}
}

// Balances loads the matching payments with their tracking items in one
// consistent read and returns the computed, paginated running balances.
func (a *Aggregator) Balances(ctx context.Context, f Filter) (*Report, error) {
	payments, err := a.payments.ListWithItems(ctx, f.TransactionID, f.From, f.To)
	if err != nil {
		return nil, err
	}

	rows := Compute(payments)

	if f.Client != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Client == f.Client {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	total := len(rows)
	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	hasMore := end < total
	if end > total {
		end = total
	}

	return &Report{
		Rows:    rows[offset:end],
		Total:   total,
		HasMore: hasMore,
	}, nil
}

// Compute derives the running balances. Tracking rows are grouped by
// transaction id (a payment without one forms its own group under its
// reference), ordered inside each group by client name (plain string
// comparison) with ties kept in insertion order, and the group's total is
// drained row by row. A group whose tracking values exceed the total yields
// a negative remainder; that is data, not an error.
func Compute(payments []models.ConductorPayment) []Row {
	groups := make(map[string][]Row)
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, payment := range payments {
		groupID := payment.TransactionID
		if groupID == "" {
			groupID = payment.ReferencePayment
		}
		if _, seen := groups[groupID]; !seen {
			order = append(order, groupID)
			// All rows of a group share the first parent payment's total.
			totals[groupID] = payment.TotalValue
			groups[groupID] = []Row{}
		}

		items := make([]models.TrackingItem, len(payment.TrackingItems))
		copy(items, payment.TrackingItems)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Position < items[j].Position
		})

		for _, item := range items {
			groups[groupID] = append(groups[groupID], Row{
				TransactionID:    groupID,
				ReferencePayment: payment.ReferencePayment,
				Tracking:         item.Tracking,
				Client:           item.Client,
				Carrier:          item.Carrier,
				TrackingValue:    item.IndividualValue,
			})
		}
	}

	rows := make([]Row, 0)
	for _, groupID := range order {
		group := groups[groupID]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Client < group[j].Client
		})

		total := totals[groupID]
		remainder := total
		consumed := decimal.Zero
		for i := range group {
			remainder = remainder.Sub(group[i].TrackingValue)
			group[i].CumulativeRemainder = remainder
			consumed = consumed.Add(group[i].TrackingValue)
		}

		final := total.Sub(consumed)
		for i := range group {
			group[i].FinalRemainder = final
			group[i].TotalPaymentValue = total
		}
		rows = append(rows, group...)
	}
	return rows
}
