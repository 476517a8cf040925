package reconciliation

import (
	"math"

	"github.com/shopspring/decimal"

	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/services/matching"
)

// CandidateMatch is the shape stored in the result's candidate_matches JSON.
type CandidateMatch struct {
	PaymentRef string  `json:"payment_ref"`
	Score      float64 `json:"score"`
}

// Classification is the outcome of classifying one movement. Candidates is
// the admissible set (ordered by descending score, ties included); it is
// populated for multiple_match and empty otherwise.
type Classification struct {
	State        models.MatchState
	Confidence   int
	MatchedRef   *string
	ValueDiff    *decimal.Decimal
	DateDiffDays *int
	Candidates   []CandidateMatch
}

// Classifier turns the engine's ranked candidates into exactly one state.
type Classifier struct {
	engine *matching.Engine
	cfg    config.Matching
}

func NewClassifier(cfg config.Matching) *Classifier {
	return &Classifier{
		engine: matching.NewEngine(cfg),
		cfg:    cfg,
	}
}

// Classify ranks the pool and applies the state rules in order: exact first,
// then single accepted candidate, then multiple admissible candidates, then
// the two difference states, falling through to sin_match.
func (c *Classifier) Classify(movement *models.BankMovement, pool []models.ConductorPayment) Classification {
	ranked := c.engine.Rank(movement, pool)

	admissible := ranked[:0:0]
	accepted := 0
	for _, cand := range ranked {
		if cand.Score >= c.cfg.AdmitScore {
			admissible = append(admissible, cand)
			if cand.Score >= c.cfg.AcceptScore {
				accepted++
			}
		}
	}

	if len(admissible) == 0 {
		return Classification{
			State:      models.EstadoSinMatch,
			Candidates: []CandidateMatch{},
		}
	}

	best := admissible[0]

	if len(admissible) == 1 && best.ValueDiff.IsZero() && best.DateDiffDays == 0 {
		return c.withBest(models.EstadoConciliadoExacto, best)
	}

	dominant := len(admissible) == 1 ||
		best.Score-admissible[1].Score >= c.cfg.TieMargin

	if accepted == 1 || (accepted >= 2 && dominant) {
		return c.withBest(models.EstadoConciliadoAproximado, best)
	}

	if len(admissible) >= 2 && !dominant {
		// Operator review needs the complete admissible set, ties included.
		candidates := make([]CandidateMatch, len(admissible))
		for i, cand := range admissible {
			candidates[i] = CandidateMatch{PaymentRef: cand.PaymentRef, Score: cand.Score}
		}
		return Classification{
			State:      models.EstadoMultipleMatch,
			Confidence: roundScore(best.Score),
			Candidates: candidates,
		}
	}

	amountOK := c.engine.WithinAmountTolerance(best.ValueDiff, movement.Amount)
	dateOK := c.engine.WithinDateTolerance(best.DateDiffDays)

	switch {
	case dateOK && !amountOK:
		return c.withBest(models.EstadoDiferenciaValor, best)
	case amountOK && !dateOK:
		return c.withBest(models.EstadoDiferenciaFecha, best)
	}

	return Classification{
		State:      models.EstadoSinMatch,
		Candidates: []CandidateMatch{},
	}
}

// withBest records the best candidate's reference and deltas. The movement
// only gets linked for conciliated states; for the difference states the
// reference is review material, not a settled link.
func (c *Classifier) withBest(state models.MatchState, best matching.Candidate) Classification {
	ref := best.PaymentRef
	diff := best.ValueDiff
	days := best.DateDiffDays
	return Classification{
		State:        state,
		Confidence:   roundScore(best.Score),
		MatchedRef:   &ref,
		ValueDiff:    &diff,
		DateDiffDays: &days,
		Candidates:   []CandidateMatch{},
	}
}

func roundScore(score float64) int {
	return int(math.Round(math.Min(score, 100)))
}
