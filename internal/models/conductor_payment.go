package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConductorPayment is a driver's reported payment covering one or more
// delivery tracking numbers. TotalValue may legitimately differ from the
// sum of the individual tracking values; the discrepancy is data, not an
// error, and surfaces as the payment's running-balance remainder.
type ConductorPayment struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReferencePayment string    `gorm:"uniqueIndex"`
	TransactionID    string    `gorm:"index"`
	ConductorEmail   string    `gorm:"index"`
	Entity           string
	PaymentType      string
	PaymentDate      time.Time       `gorm:"index"`
	TotalValue       decimal.Decimal `gorm:"type:numeric(18,2);index"`
	LinkedMovementID *uuid.UUID      `gorm:"index"`
	TrackingItems    []TrackingItem  `gorm:"foreignKey:PaymentID"`
	CreatedBy        string
	CreatedAt        time.Time
}

// TrackingItem is one delivery bundled inside a conductor payment.
// Position preserves the order the items were reported in.
type TrackingItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID       uuid.UUID `gorm:"index"`
	Tracking        string    `gorm:"index"`
	Client          string    `gorm:"index"`
	Carrier         string
	IndividualValue decimal.Decimal `gorm:"type:numeric(18,2)"`
	Position        int
}
