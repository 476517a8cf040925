package reconciliation

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/locker"
	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/repository/mocks"
)

type serviceFixture struct {
	movements *mocks.MockBankMovementRepository
	payments  *mocks.MockConductorPaymentRepository
	results   *mocks.MockReconciliationResultRepository
	locker    *locker.Locker
	service   *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &serviceFixture{
		movements: mocks.NewMockBankMovementRepository(ctrl),
		payments:  mocks.NewMockConductorPaymentRepository(ctrl),
		results:   mocks.NewMockReconciliationResultRepository(ctrl),
		locker:    locker.New(),
	}
	// Single worker keeps movement processing order deterministic.
	f.service = NewService(f.movements, f.payments, f.results, f.locker, config.DefaultMatching(), 1)
	return f
}

func TestRunClassifiesAndClaimsExactMatch(t *testing.T) {
	f := newServiceFixture(t)
	mov := *movement(50000, day(10))

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{mov}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{payment("PAY-1", 50000, day(10))}, nil)

	var savedState models.MatchState
	var claimedRef *string
	f.results.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.BankMovement, r *models.ReconciliationResult, claim *string) error {
			savedState = m.MatchState
			claimedRef = claim
			return nil
		})

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 1, summary.SummaryByState[models.EstadoConciliadoExacto])
	assert.Empty(t, summary.FailedMovementIDs)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, models.EstadoConciliadoExacto, savedState)
	require.NotNil(t, claimedRef)
	assert.Equal(t, "PAY-1", *claimedRef)
}

func TestRunWithNoMovementsIsNoOp(t *testing.T) {
	f := newServiceFixture(t)

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{}, nil)

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Empty(t, summary.Results)
	assert.Empty(t, summary.FailedMovementIDs)
}

func TestRunReportsFailedMovementsAndContinues(t *testing.T) {
	f := newServiceFixture(t)
	broken := *movement(50000, day(10))
	healthy := *movement(70000, day(11))

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{broken, healthy}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{
			payment("PAY-1", 50000, day(10)),
			payment("PAY-2", 70000, day(11)),
		}, nil)

	gomock.InOrder(
		f.results.EXPECT().
			SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&apperrors.PersistenceError{Op: "save classification"}),
		f.results.EXPECT().
			SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err, "a partial failure must still return the summary")

	assert.Equal(t, 2, summary.Processed)
	require.Len(t, summary.FailedMovementIDs, 1)
	assert.Equal(t, broken.ID, summary.FailedMovementIDs[0])
	require.Len(t, summary.Results, 1)
	assert.Equal(t, healthy.ID, summary.Results[0].BankMovementID)
}

func TestRunNeverOffersOnePaymentTwice(t *testing.T) {
	f := newServiceFixture(t)
	first := *movement(50000, day(10))
	second := *movement(50000, day(10))

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{first, second}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{payment("PAY-1", 50000, day(10))}, nil)

	var states []models.MatchState
	var claims []*string
	f.results.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.BankMovement, _ *models.ReconciliationResult, claim *string) error {
			states = append(states, m.MatchState)
			claims = append(claims, claim)
			return nil
		}).Times(2)

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)

	require.Len(t, states, 2)
	assert.Equal(t, models.EstadoConciliadoExacto, states[0])
	require.NotNil(t, claims[0])
	// The payment was claimed by the first movement; the second must not
	// see it again.
	assert.Equal(t, models.EstadoSinMatch, states[1])
	assert.Nil(t, claims[1])
}

func TestRunSkipsMovementHeldByOverride(t *testing.T) {
	f := newServiceFixture(t)
	mov := *movement(50000, day(10))

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{mov}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{}, nil)

	// An override owns the movement for the whole run.
	f.locker.Acquire(mov.ID)
	defer f.locker.Release(mov.ID)

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)
	require.Len(t, summary.FailedMovementIDs, 1)
	assert.Equal(t, mov.ID, summary.FailedMovementIDs[0])
	assert.Empty(t, summary.Results)
}

func TestRunLostClaimRaceMarksMovementForRetry(t *testing.T) {
	f := newServiceFixture(t)
	mov := *movement(50000, day(10))

	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{mov}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{payment("PAY-1", 50000, day(10))}, nil)
	f.results.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.NewConflict("payment PAY-1 already linked"))

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)
	require.Len(t, summary.FailedMovementIDs, 1)
	assert.Equal(t, mov.ID, summary.FailedMovementIDs[0])
}

func TestRunLeavesManualMovementUntouched(t *testing.T) {
	f := newServiceFixture(t)
	manual := *movement(50000, day(10))
	manual.MatchState = models.EstadoConciliadoManual
	fresh := *movement(70000, day(11))

	// Even if a stale read surfaces a manually resolved movement, the run
	// must not reclassify it, exact match in the pool or not.
	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{manual, fresh}, nil)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{
			payment("PAY-1", 50000, day(10)),
			payment("PAY-2", 70000, day(11)),
		}, nil)

	var savedID uuid.UUID
	f.results.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.BankMovement, _ *models.ReconciliationResult, _ *string) error {
			savedID = m.ID
			return nil
		}).Times(1)

	summary, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, fresh.ID, savedID)
	assert.Empty(t, summary.FailedMovementIDs)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, fresh.ID, summary.Results[0].BankMovementID)
}

func TestRunIdempotentWithoutNewData(t *testing.T) {
	f := newServiceFixture(t)
	mov := *movement(50000, day(10))
	mov.MatchState = models.EstadoSinMatch

	// Two identical runs: same movement, same (empty) pool.
	f.movements.EXPECT().ListRetriable(gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return([]models.BankMovement{mov}, nil).Times(2)
	f.payments.EXPECT().ListUnlinked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.ConductorPayment{}, nil).Times(2)

	var states []models.MatchState
	f.results.EXPECT().
		SaveClassification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, m *models.BankMovement, _ *models.ReconciliationResult, _ *string) error {
			states = append(states, m.MatchState)
			return nil
		}).Times(2)

	first, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)
	second, err := f.service.Run(context.Background(), RunFilter{})
	require.NoError(t, err)

	assert.Equal(t, first.SummaryByState, second.SummaryByState)
	assert.Equal(t, []models.MatchState{models.EstadoSinMatch, models.EstadoSinMatch}, states)
}
