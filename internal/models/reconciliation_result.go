package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ReconciliationResult is the classification row a run writes per movement.
// CandidateMatches holds the ordered admissible candidates as JSON; it is
// always a JSON array, empty for sin_match, fully populated (ties included)
// for multiple_match.
type ReconciliationResult struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BankMovementID     uuid.UUID  `gorm:"uniqueIndex"`
	MatchState         MatchState `gorm:"index"`
	Confidence         int
	MatchedPaymentRef  *string
	ValueDifference    *decimal.Decimal `gorm:"type:numeric(18,2)"`
	DateDifferenceDays *int
	CandidateMatches   datatypes.JSON
	Observations       string
	CreatedAt          time.Time
	ModifiedBy         string
	ModifiedAt         time.Time
}
