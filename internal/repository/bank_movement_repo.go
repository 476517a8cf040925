package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/models"
)

type GormBankMovementRepository struct {
	db *gorm.DB
}

func NewBankMovementRepository(db *gorm.DB) *GormBankMovementRepository {
	return &GormBankMovementRepository{db: db}
}

func (r *GormBankMovementRepository) CreateBatch(ctx context.Context, movements []*models.BankMovement) error {
	if len(movements) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(movements).Error; err != nil {
		return &apperrors.PersistenceError{Op: "create bank movements", Err: err}
	}
	return nil
}

func (r *GormBankMovementRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BankMovement, error) {
	var movement models.BankMovement
	err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Resource: "bank movement", Key: id.String()}
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get bank movement", Err: err}
	}
	return &movement, nil
}

func (r *GormBankMovementRepository) ListRetriable(ctx context.Context, from, to *time.Time) ([]models.BankMovement, error) {
	var movements []models.BankMovement
	query := r.db.WithContext(ctx).
		Where("match_state IN ?", models.RetriableStates).
		Order("movement_date ASC, id ASC")

	if from != nil {
		query = query.Where("movement_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("movement_date <= ?", *to)
	}

	if err := query.Find(&movements).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "list retriable movements", Err: err}
	}
	return movements, nil
}

func (r *GormBankMovementRepository) List(ctx context.Context, state, cursor, search string, limit int) ([]models.BankMovement, string, bool, error) {
	var movements []models.BankMovement
	query := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit + 1)

	if state != "" && state != "all" {
		query = query.Where("match_state = ?", state)
	}
	if cursor != "" {
		query = query.Where("id > ?", cursor)
	}
	if search != "" {
		likeQuery := "%" + search + "%"
		query = query.Where(
			"description ILIKE ? OR CAST(amount AS TEXT) LIKE ?",
			likeQuery, likeQuery,
		)
	}

	if err := query.Find(&movements).Error; err != nil {
		return nil, "", false, &apperrors.PersistenceError{Op: "list movements", Err: err}
	}

	hasMore := false
	var nextCursor string
	if len(movements) > limit {
		hasMore = true
		nextCursor = movements[limit-1].ID.String()
		movements = movements[:limit]
	}
	return movements, nextCursor, hasMore, nil
}

func (r *GormBankMovementRepository) SummaryByState(ctx context.Context) ([]StateSummary, error) {
	var rows []StateSummary
	err := r.db.WithContext(ctx).Model(&models.BankMovement{}).
		Select("match_state AS state, COUNT(*) AS count, COALESCE(SUM(amount),0) AS total_amount").
		Group("match_state").
		Scan(&rows).Error
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "summary by state", Err: err}
	}
	return rows, nil
}
