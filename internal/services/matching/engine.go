// Package matching scores conductor payments against a bank movement.
// The engine is pure: it reads the movement and the candidate pool it is
// handed and writes nothing.
package matching

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/models"
)

// Candidate is one scored payment for a movement. Score is in [0,100];
// an exact amount on the exact date scores 100.
type Candidate struct {
	PaymentRef   string
	Score        float64
	ValueDiff    decimal.Decimal
	DateDiffDays int
}

type Engine struct {
	cfg config.Matching
}

func NewEngine(cfg config.Matching) *Engine {
	return &Engine{cfg: cfg}
}

// Rank scores every payment in the pool against the movement and returns the
// candidates ordered by descending score. Zero-score candidates are discarded
// before ranking; an empty result is a valid outcome. Ordering is stable, so
// equal scores keep the pool order.
func (e *Engine) Rank(movement *models.BankMovement, pool []models.ConductorPayment) []Candidate {
	candidates := make([]Candidate, 0, len(pool))

	for i := range pool {
		payment := &pool[i]
		if payment.LinkedMovementID != nil {
			continue
		}
		days := dateDiffDays(movement.MovementDate, payment.PaymentDate)
		if days > e.cfg.DateWindowDays {
			continue
		}

		diff := movement.Amount.Sub(payment.TotalValue).Abs()
		score := e.cfg.AmountWeight*e.amountScore(diff, movement.Amount) +
			e.cfg.DateWeight*e.dateScore(days)
		if score <= 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			PaymentRef:   payment.ReferencePayment,
			Score:        math.Min(score, 100),
			ValueDiff:    diff,
			DateDiffDays: days,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}

// WithinAmountTolerance reports whether diff is inside the configured
// percentage tolerance of the movement amount.
func (e *Engine) WithinAmountTolerance(diff, amount decimal.Decimal) bool {
	if diff.IsZero() {
		return true
	}
	tolerance := amount.Mul(decimal.NewFromFloat(e.cfg.AmountTolerancePct)).Div(decimal.NewFromInt(100))
	return diff.LessThanOrEqual(tolerance)
}

// WithinDateTolerance reports whether the day difference counts as "same date".
func (e *Engine) WithinDateTolerance(days int) bool {
	return days <= e.cfg.DateToleranceDays
}

// amountScore maps the relative amount difference to [0,100]. Exact is 100,
// differences inside the tolerance band decay to 80, beyond it the score
// drops to a 30-point band that reaches zero at AmountDecayPct. The drop at
// the tolerance edge keeps within-tolerance candidates clear of the
// acceptance threshold while staying monotonic.
func (e *Engine) amountScore(diff, base decimal.Decimal) float64 {
	if diff.IsZero() {
		return 100
	}
	if base.IsZero() {
		return 0
	}
	rel, _ := diff.Div(base).Float64()
	tolerance := e.cfg.AmountTolerancePct / 100
	span := e.cfg.AmountDecayPct / 100

	if tolerance > 0 && rel <= tolerance {
		return 100 - 20*rel/tolerance
	}
	if rel >= span {
		return 0
	}
	return 30 * (1 - (rel-tolerance)/(span-tolerance))
}

// dateScore mirrors amountScore over the day difference: 100 on the exact
// date, down to 80 at the tolerance edge, then a 30-point band to zero at
// the window edge.
func (e *Engine) dateScore(days int) float64 {
	if days == 0 {
		return 100
	}
	tolerance := float64(e.cfg.DateToleranceDays)
	window := float64(e.cfg.DateWindowDays)
	d := float64(days)

	if tolerance > 0 && d <= tolerance {
		return 100 - 20*d/tolerance
	}
	if d >= window {
		return 0
	}
	return 30 * (1 - (d-tolerance)/(window-tolerance))
}

// dateDiffDays compares calendar dates, ignoring the time of day.
func dateDiffDays(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	days := int(da.Sub(db).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}
