package reconciliation

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/models"
)

func stringPtr(s string) *string { return &s }

func TestManualOverrideRequiresObservations(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))

	_, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		Observations:   "   ",
		PerformedBy:    "ana@xcargo.co",
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestManualOverrideRequiresPerformedBy(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))

	_, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		Observations:   "pago confirmado por tesorería",
	})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestManualOverrideUnknownMovement(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))

	f.movements.EXPECT().GetByID(gomock.Any(), mov.ID).
		Return(nil, &apperrors.NotFoundError{Resource: "bank movement", Key: mov.ID.String()})

	_, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		Observations:   "revisado manualmente",
		PerformedBy:    "ana@xcargo.co",
	})

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestManualOverrideWithPayment(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))
	mov.MatchState = models.EstadoDiferenciaValor
	pay := payment("PAY-9", 48000, day(10))

	f.movements.EXPECT().GetByID(gomock.Any(), mov.ID).Return(mov, nil)
	f.payments.EXPECT().GetByRef(gomock.Any(), "PAY-9").Return(&pay, nil)

	var savedMovement *models.BankMovement
	var savedAudit *models.OverrideAuditLog
	f.results.EXPECT().
		ApplyOverride(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.BankMovement, r *models.ReconciliationResult, a *models.OverrideAuditLog) error {
			savedMovement = m
			savedAudit = a
			return nil
		})

	result, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		PaymentRef:     stringPtr("PAY-9"),
		Observations:   "diferencia autorizada por gerencia",
		PerformedBy:    "ana@xcargo.co",
	})
	require.NoError(t, err)

	assert.Equal(t, models.EstadoConciliadoManual, result.MatchState)
	assert.Equal(t, 100, result.Confidence)
	require.NotNil(t, result.MatchedPaymentRef)
	assert.Equal(t, "PAY-9", *result.MatchedPaymentRef)
	assert.Equal(t, "ana@xcargo.co", result.ModifiedBy)

	require.NotNil(t, savedMovement)
	assert.Equal(t, models.EstadoConciliadoManual, savedMovement.MatchState)
	assert.Equal(t, 100, savedMovement.Confidence)

	require.NotNil(t, savedAudit)
	assert.Equal(t, "manual_override", savedAudit.Action)
	assert.Equal(t, "ana@xcargo.co", savedAudit.PerformedBy)
	require.NotNil(t, savedAudit.NewPaymentRef)
	assert.Equal(t, "PAY-9", *savedAudit.NewPaymentRef)
}

func TestManualOverrideWithoutPayment(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))
	mov.MatchState = models.EstadoSinMatch

	f.movements.EXPECT().GetByID(gomock.Any(), mov.ID).Return(mov, nil)
	// GetByRef must not be called: conciliation without a payment link.
	f.results.EXPECT().
		ApplyOverride(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		Observations:   "comisión bancaria, no aplica pago",
		PerformedBy:    "ana@xcargo.co",
	})
	require.NoError(t, err)
	assert.Equal(t, models.EstadoConciliadoManual, result.MatchState)
	assert.Nil(t, result.MatchedPaymentRef)
}

func TestManualOverrideClaimConflict(t *testing.T) {
	f := newServiceFixture(t)
	mov := movement(50000, day(10))
	pay := payment("PAY-9", 50000, day(10))

	f.movements.EXPECT().GetByID(gomock.Any(), mov.ID).Return(mov, nil)
	f.payments.EXPECT().GetByRef(gomock.Any(), "PAY-9").Return(&pay, nil)
	f.results.EXPECT().
		ApplyOverride(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.NewConflict("payment PAY-9 already linked"))

	_, err := f.service.ManualOverride(context.Background(), OverrideInput{
		BankMovementID: mov.ID,
		PaymentRef:     stringPtr("PAY-9"),
		Observations:   "forzar cruce",
		PerformedBy:    "ana@xcargo.co",
	})

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
}
