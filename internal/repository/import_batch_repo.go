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

type GormImportBatchRepository struct {
	db *gorm.DB
}

func NewImportBatchRepository(db *gorm.DB) *GormImportBatchRepository {
	return &GormImportBatchRepository{db: db}
}

func (r *GormImportBatchRepository) Create(ctx context.Context, batch *models.ImportBatch) error {
	if err := r.db.WithContext(ctx).Create(batch).Error; err != nil {
		return &apperrors.PersistenceError{Op: "create import batch", Err: err}
	}
	return nil
}

func (r *GormImportBatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Resource: "import batch", Key: id.String()}
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get import batch", Err: err}
	}
	return &batch, nil
}

func (r *GormImportBatchRepository) UpdateProgress(ctx context.Context, id uuid.UUID, processed int) error {
	err := r.db.WithContext(ctx).Model(&models.ImportBatch{}).
		Where("id = ?", id).
		Update("processed_count", processed).Error
	if err != nil {
		return &apperrors.PersistenceError{Op: "update batch progress", Err: err}
	}
	return nil
}

func (r *GormImportBatchRepository) MarkFailed(ctx context.Context, id uuid.UUID, processed int) error {
	err := r.db.WithContext(ctx).Model(&models.ImportBatch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed_count": processed,
			"status":          "failed",
			"completed_at":    time.Now(),
		}).Error
	if err != nil {
		return &apperrors.PersistenceError{Op: "mark batch failed", Err: err}
	}
	return nil
}

func (r *GormImportBatchRepository) MarkCompleted(ctx context.Context, id uuid.UUID, total int) error {
	err := r.db.WithContext(ctx).Model(&models.ImportBatch{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"processed_count": total,
			"total_movements": total,
			"status":          "completed",
			"completed_at":    time.Now(),
		}).Error
	if err != nil {
		return &apperrors.PersistenceError{Op: "mark batch completed", Err: err}
	}
	return nil
}
