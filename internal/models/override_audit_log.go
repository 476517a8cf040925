package models

import (
	"time"

	"github.com/google/uuid"
)

// OverrideAuditLog records every manual reconciliation decision.
type OverrideAuditLog struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	BankMovementID     uuid.UUID `gorm:"index"`
	Action             string
	PreviousPaymentRef *string
	NewPaymentRef      *string
	PerformedBy        string
	Reason             string
	CreatedAt          time.Time
}
