package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankMovement is one line item from an imported bank statement.
// Rows are never deleted; later states supersede earlier ones.
type BankMovement struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImportBatchID    uuid.UUID `gorm:"index"`
	MovementDate     time.Time `gorm:"column:movement_date;index"`
	Description      string
	Amount           decimal.Decimal `gorm:"type:numeric(18,2);index"`
	MatchState       MatchState      `gorm:"index"`
	Confidence       int
	LinkedPaymentRef *string `gorm:"index"`
	Observations     string
	CreatedBy        string
	CreatedAt        time.Time
	ModifiedBy       string
	ModifiedAt       *time.Time
}
