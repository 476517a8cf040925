package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"conciliacion-bancaria-backend/internal/models"
)

// StateSummary is one row of the per-state aggregate view.
type StateSummary struct {
	State       models.MatchState
	Count       int64
	TotalAmount decimal.Decimal
}

// The services depend on these interfaces, not on the gorm implementations.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interfaces.go

type BankMovementRepository interface {
	CreateBatch(ctx context.Context, movements []*models.BankMovement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BankMovement, error)
	// ListRetriable returns the movements a reconciliation run must look at:
	// pendiente plus every non-conciliated state, optionally date-bounded.
	ListRetriable(ctx context.Context, from, to *time.Time) ([]models.BankMovement, error)
	List(ctx context.Context, state, cursor, search string, limit int) ([]models.BankMovement, string, bool, error)
	SummaryByState(ctx context.Context) ([]StateSummary, error)
}

type ConductorPaymentRepository interface {
	Create(ctx context.Context, payment *models.ConductorPayment) error
	GetByRef(ctx context.Context, ref string) (*models.ConductorPayment, error)
	// ListUnlinked returns the candidate pool: payments with no settled
	// movement link, dated inside [from, to].
	ListUnlinked(ctx context.Context, from, to time.Time) ([]models.ConductorPayment, error)
	// ListWithItems loads payments together with their tracking items for the
	// balance report. Each payment's items arrive in one consistent read.
	ListWithItems(ctx context.Context, transactionID string, from, to *time.Time) ([]models.ConductorPayment, error)
}

type ReconciliationResultRepository interface {
	// SaveClassification persists one movement's classification atomically:
	// claim of the matched payment (when settled), movement update and result
	// upsert happen in a single transaction. The movement update is guarded
	// so a conciliado_manual movement is never overwritten.
	SaveClassification(ctx context.Context, movement *models.BankMovement, result *models.ReconciliationResult, claimRef *string) error
	// ApplyOverride persists a manual override: releases the movement's
	// previous payment link, claims the new one, updates movement and result
	// and appends the audit row, all in a single transaction.
	ApplyOverride(ctx context.Context, movement *models.BankMovement, result *models.ReconciliationResult, audit *models.OverrideAuditLog) error
	GetByMovementID(ctx context.Context, movementID uuid.UUID) (*models.ReconciliationResult, error)
	ListByStates(ctx context.Context, states []models.MatchState) ([]models.ReconciliationResult, error)
}

type ImportBatchRepository interface {
	Create(ctx context.Context, batch *models.ImportBatch) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ImportBatch, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, processed int) error
	MarkCompleted(ctx context.Context, id uuid.UUID, total int) error
	MarkFailed(ctx context.Context, id uuid.UUID, processed int) error
}
