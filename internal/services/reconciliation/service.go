// Package reconciliation orchestrates classification runs over imported bank
// movements and handles manual operator overrides.
package reconciliation

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/locker"
	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/repository"
)

type Service struct {
	movements  repository.BankMovementRepository
	payments   repository.ConductorPaymentRepository
	results    repository.ReconciliationResultRepository
	classifier *Classifier
	locker     *locker.Locker
	cfg        config.Matching
	workers    int
}

func NewService(
	movements repository.BankMovementRepository,
	payments repository.ConductorPaymentRepository,
	results repository.ReconciliationResultRepository,
	lk *locker.Locker,
	cfg config.Matching,
	workers int,
) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		movements:  movements,
		payments:   payments,
		results:    results,
		classifier: NewClassifier(cfg),
		locker:     lk,
		cfg:        cfg,
		workers:    workers,
	}
}

// RunFilter optionally bounds a run to a movement-date window.
type RunFilter struct {
	From *time.Time
	To   *time.Time
}

// RunSummary is what the caller always gets back, even when individual
// movements failed to persist. Failed movements are retried on the next run.
type RunSummary struct {
	Processed         int                           `json:"processed"`
	SummaryByState    map[models.MatchState]int     `json:"summary_by_state"`
	FailedMovementIDs []uuid.UUID                   `json:"failed_movement_ids"`
	Results           []models.ReconciliationResult `json:"results"`
}

// Run classifies every retriable movement. Movements already in a
// conciliado state are not selected, which makes back-to-back runs without
// new data no-ops. Classification is fanned out over workers; each
// movement's persistence is an isolated transaction, so one failure never
// corrupts the rest of the batch.
func (s *Service) Run(ctx context.Context, filter RunFilter) (*RunSummary, error) {
	movements, err := s.movements.ListRetriable(ctx, filter.From, filter.To)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{
		SummaryByState:    make(map[models.MatchState]int),
		FailedMovementIDs: []uuid.UUID{},
		Results:           []models.ReconciliationResult{},
	}
	if len(movements) == 0 {
		return summary, nil
	}

	poolFrom, poolTo := s.poolWindow(movements)
	pool, err := s.payments.ListUnlinked(ctx, poolFrom, poolTo)
	if err != nil {
		return nil, err
	}

	log.Infof("[Run] classifying %d movements against %d candidate payments", len(movements), len(pool))

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		claimed sync.Map // paymentRef -> true, claims made during this run
	)
	jobs := make(chan models.BankMovement)

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for movement := range jobs {
				result, failed := s.classifyOne(ctx, movement, pool, &claimed)
				mu.Lock()
				summary.Processed++
				if failed {
					summary.FailedMovementIDs = append(summary.FailedMovementIDs, movement.ID)
				} else {
					summary.SummaryByState[result.MatchState]++
					summary.Results = append(summary.Results, *result)
				}
				mu.Unlock()
			}
		}()
	}

	for _, movement := range movements {
		// A settled movement must never be reclassified, even if the
		// retriable query handed back a stale row.
		if movement.MatchState.IsSettled() {
			continue
		}
		jobs <- movement
	}
	close(jobs)
	wg.Wait()

	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].BankMovementID.String() < summary.Results[j].BankMovementID.String()
	})

	log.Infof("[Run] done: %d processed, %d failed", summary.Processed, len(summary.FailedMovementIDs))
	return summary, nil
}

// classifyOne classifies and persists a single movement. It returns the
// stored result, or failed=true when the movement must be retried next run
// (persistence failure, lost payment claim, or an override holding the lock).
func (s *Service) classifyOne(ctx context.Context, movement models.BankMovement, pool []models.ConductorPayment, claimed *sync.Map) (*models.ReconciliationResult, bool) {
	// An override in flight owns the movement; leave it for the next run.
	if !s.locker.TryAcquire(movement.ID) {
		log.Infof("[Run] movement %s locked by override, skipping", movement.ID)
		return nil, true
	}
	defer s.locker.Release(movement.ID)

	// Exclude payments already claimed earlier in this run so one payment
	// is never offered to two movements.
	available := make([]models.ConductorPayment, 0, len(pool))
	for _, payment := range pool {
		if _, taken := claimed.Load(payment.ReferencePayment); taken {
			continue
		}
		available = append(available, payment)
	}

	cls := s.classifier.Classify(&movement, available)

	movement.MatchState = cls.State
	movement.Confidence = cls.Confidence
	movement.ModifiedBy = "sistema"
	if cls.State.IsSettled() {
		movement.LinkedPaymentRef = cls.MatchedRef
	} else {
		movement.LinkedPaymentRef = nil
	}

	result, err := buildResult(&movement, cls)
	if err != nil {
		log.Errorf("[Run] cannot encode result for movement %s: %v", movement.ID, err)
		return nil, true
	}

	var claimRef *string
	if cls.State.IsSettled() {
		claimRef = cls.MatchedRef
	}

	if err := s.results.SaveClassification(ctx, &movement, result, claimRef); err != nil {
		// ConflictError here means the payment was linked by a concurrent
		// run or an override won the race; either way the movement is
		// retried next run against the updated pool.
		log.Errorf("[Run] movement %s not persisted: %v", movement.ID, err)
		return nil, true
	}

	if claimRef != nil {
		claimed.Store(*claimRef, true)
	}
	return result, false
}

// poolWindow derives the candidate-pool date range: the movements' date span
// widened by the matching window on both sides.
func (s *Service) poolWindow(movements []models.BankMovement) (time.Time, time.Time) {
	min := movements[0].MovementDate
	max := movements[0].MovementDate
	for _, m := range movements[1:] {
		if m.MovementDate.Before(min) {
			min = m.MovementDate
		}
		if m.MovementDate.After(max) {
			max = m.MovementDate
		}
	}
	window := time.Duration(s.cfg.DateWindowDays) * 24 * time.Hour
	return min.Add(-window), max.Add(window)
}

// Summary aggregates movement counts and amounts per state.
func (s *Service) Summary(ctx context.Context) ([]repository.StateSummary, error) {
	return s.movements.SummaryByState(ctx)
}

// ListMovements pages through movements for the review screens.
func (s *Service) ListMovements(ctx context.Context, state, cursor, search string, limit int) ([]models.BankMovement, string, bool, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.movements.List(ctx, state, cursor, search, limit)
}

func buildResult(movement *models.BankMovement, cls Classification) (*models.ReconciliationResult, error) {
	candidates, err := json.Marshal(cls.Candidates)
	if err != nil {
		return nil, err
	}
	return &models.ReconciliationResult{
		ID:                 uuid.New(),
		BankMovementID:     movement.ID,
		MatchState:         cls.State,
		Confidence:         cls.Confidence,
		MatchedPaymentRef:  cls.MatchedRef,
		ValueDifference:    cls.ValueDiff,
		DateDifferenceDays: cls.DateDiffDays,
		CandidateMatches:   candidates,
		CreatedAt:          time.Now(),
		ModifiedBy:         movement.ModifiedBy,
		ModifiedAt:         time.Now(),
	}, nil
}
