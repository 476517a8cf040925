package reconciliation

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/models"
)

// OverrideInput carries an operator's forced reconciliation decision.
// PaymentRef may be nil: a movement can be conciliated without linking a
// payment (e.g. a bank fee the operator writes off). The caller identity is
// an explicit parameter, never ambient context.
type OverrideInput struct {
	BankMovementID uuid.UUID
	PaymentRef     *string
	Observations   string
	PerformedBy    string
}

// ManualOverride forces a movement to conciliado_manual. The state is
// sticky: later runs skip it. The override serializes against a concurrent
// run via the movement locker and wins the race.
func (s *Service) ManualOverride(ctx context.Context, in OverrideInput) (*models.ReconciliationResult, error) {
	if strings.TrimSpace(in.Observations) == "" {
		return nil, apperrors.NewValidation("observations are required for a manual override")
	}
	if strings.TrimSpace(in.PerformedBy) == "" {
		return nil, apperrors.NewValidation("performed_by is required for a manual override")
	}

	s.locker.Acquire(in.BankMovementID)
	defer s.locker.Release(in.BankMovementID)

	movement, err := s.movements.GetByID(ctx, in.BankMovementID)
	if err != nil {
		return nil, err
	}

	if in.PaymentRef != nil {
		if _, err := s.payments.GetByRef(ctx, *in.PaymentRef); err != nil {
			return nil, err
		}
	}

	previousRef := movement.LinkedPaymentRef

	movement.MatchState = models.EstadoConciliadoManual
	movement.Confidence = 100
	movement.LinkedPaymentRef = in.PaymentRef
	movement.Observations = in.Observations
	movement.ModifiedBy = in.PerformedBy

	emptyCandidates, _ := json.Marshal([]CandidateMatch{})
	now := time.Now()
	result := &models.ReconciliationResult{
		ID:                uuid.New(),
		BankMovementID:    movement.ID,
		MatchState:        models.EstadoConciliadoManual,
		Confidence:        100,
		MatchedPaymentRef: in.PaymentRef,
		CandidateMatches:  emptyCandidates,
		Observations:      in.Observations,
		CreatedAt:         now,
		ModifiedBy:        in.PerformedBy,
		ModifiedAt:        now,
	}

	audit := &models.OverrideAuditLog{
		ID:                 uuid.New(),
		BankMovementID:     movement.ID,
		Action:             "manual_override",
		PreviousPaymentRef: previousRef,
		NewPaymentRef:      in.PaymentRef,
		PerformedBy:        in.PerformedBy,
		Reason:             in.Observations,
		CreatedAt:          now,
	}

	if err := s.results.ApplyOverride(ctx, movement, result, audit); err != nil {
		return nil, err
	}

	log.Infof("[Override] movement %s conciliated manually by %s", movement.ID, in.PerformedBy)
	return result, nil
}
