package reconciliation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/models"
)

func day(d int) time.Time {
	return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC)
}

func movement(amount int64, date time.Time) *models.BankMovement {
	return &models.BankMovement{
		ID:           uuid.New(),
		MovementDate: date,
		Amount:       decimal.NewFromInt(amount),
		MatchState:   models.EstadoPendiente,
	}
}

func payment(ref string, amount int64, date time.Time) models.ConductorPayment {
	return models.ConductorPayment{
		ID:               uuid.New(),
		ReferencePayment: ref,
		PaymentDate:      date,
		TotalValue:       decimal.NewFromInt(amount),
	}
}

func TestClassifyExacto(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{payment("PAY-1", 50000, day(10))},
	)

	assert.Equal(t, models.EstadoConciliadoExacto, cls.State)
	assert.Equal(t, 100, cls.Confidence)
	require.NotNil(t, cls.MatchedRef)
	assert.Equal(t, "PAY-1", *cls.MatchedRef)
	require.NotNil(t, cls.ValueDiff)
	assert.True(t, cls.ValueDiff.IsZero())
	require.NotNil(t, cls.DateDiffDays)
	assert.Equal(t, 0, *cls.DateDiffDays)
}

func TestClassifyAproximadoTwoDayDiff(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{payment("PAY-1", 50000, day(12))},
	)

	assert.Equal(t, models.EstadoConciliadoAproximado, cls.State)
	assert.GreaterOrEqual(t, float64(cls.Confidence), config.DefaultMatching().AcceptScore)
	assert.Less(t, cls.Confidence, 100)
	require.NotNil(t, cls.DateDiffDays)
	assert.Equal(t, 2, *cls.DateDiffDays)
	require.NotNil(t, cls.MatchedRef)
	assert.Equal(t, "PAY-1", *cls.MatchedRef)
}

func TestClassifyMultipleMatchKeepsAllTiedCandidates(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{
			payment("PAY-A", 50000, day(10)),
			payment("PAY-B", 50000, day(10)),
			payment("PAY-C", 50000, day(11)),
		},
	)

	assert.Equal(t, models.EstadoMultipleMatch, cls.State)
	assert.Nil(t, cls.MatchedRef)
	require.Len(t, cls.Candidates, 3)
	assert.Equal(t, "PAY-A", cls.Candidates[0].PaymentRef)
	assert.Equal(t, "PAY-B", cls.Candidates[1].PaymentRef)
	assert.Equal(t, "PAY-C", cls.Candidates[2].PaymentRef)
	assert.Equal(t, cls.Candidates[0].Score, cls.Candidates[1].Score)
	assert.Greater(t, cls.Candidates[1].Score, cls.Candidates[2].Score)
}

func TestClassifySinMatchEmptyPool(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(movement(50000, day(10)), nil)

	assert.Equal(t, models.EstadoSinMatch, cls.State)
	assert.Equal(t, 0, cls.Confidence)
	assert.Nil(t, cls.MatchedRef)
	assert.NotNil(t, cls.Candidates)
	assert.Empty(t, cls.Candidates)
}

func TestClassifySinMatchEverythingFarOff(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{payment("PAY-1", 200000, day(30))},
	)

	assert.Equal(t, models.EstadoSinMatch, cls.State)
	assert.Empty(t, cls.Candidates)
}

func TestClassifyDiferenciaValor(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{payment("PAY-1", 60000, day(10))},
	)

	assert.Equal(t, models.EstadoDiferenciaValor, cls.State)
	require.NotNil(t, cls.ValueDiff)
	assert.True(t, cls.ValueDiff.Equal(decimal.NewFromInt(10000)))
	require.NotNil(t, cls.DateDiffDays)
	assert.Equal(t, 0, *cls.DateDiffDays)
	require.NotNil(t, cls.MatchedRef)
	assert.Equal(t, "PAY-1", *cls.MatchedRef)
}

func TestClassifyDiferenciaFecha(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{payment("PAY-1", 50000, day(20))},
	)

	assert.Equal(t, models.EstadoDiferenciaFecha, cls.State)
	require.NotNil(t, cls.ValueDiff)
	assert.True(t, cls.ValueDiff.IsZero())
	require.NotNil(t, cls.DateDiffDays)
	assert.Equal(t, 10, *cls.DateDiffDays)
}

func TestClassifyDominantCandidateBeatsRunnerUp(t *testing.T) {
	classifier := NewClassifier(config.DefaultMatching())

	// Exact candidate versus one five days away: the gap exceeds the tie
	// margin, so this is a single accepted match, not a multiple.
	cls := classifier.Classify(
		movement(50000, day(10)),
		[]models.ConductorPayment{
			payment("EXACT", 50000, day(10)),
			payment("FAR", 50000, day(15)),
		},
	)

	assert.Equal(t, models.EstadoConciliadoAproximado, cls.State)
	require.NotNil(t, cls.MatchedRef)
	assert.Equal(t, "EXACT", *cls.MatchedRef)
	assert.Equal(t, 100, cls.Confidence)
}
