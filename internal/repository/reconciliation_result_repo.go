package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/models"
)

type GormReconciliationResultRepository struct {
	db *gorm.DB
}

func NewReconciliationResultRepository(db *gorm.DB) *GormReconciliationResultRepository {
	return &GormReconciliationResultRepository{db: db}
}

func (r *GormReconciliationResultRepository) SaveClassification(ctx context.Context, movement *models.BankMovement, result *models.ReconciliationResult, claimRef *string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if claimRef != nil {
			// Optimistic claim: only an unlinked payment can be taken. A
			// concurrent run linking the same payment loses the race here.
			claim := tx.Model(&models.ConductorPayment{}).
				Where("reference_payment = ? AND linked_movement_id IS NULL", *claimRef).
				Update("linked_movement_id", movement.ID)
			if claim.Error != nil {
				return claim.Error
			}
			if claim.RowsAffected == 0 {
				return apperrors.NewConflict("payment %s already linked", *claimRef)
			}
		}

		// conciliado_manual is sticky: the guard keeps a run from
		// overwriting a movement an operator resolved mid-batch.
		upd := tx.Model(&models.BankMovement{}).
			Where("id = ? AND match_state <> ?", movement.ID, models.EstadoConciliadoManual).
			Updates(map[string]interface{}{
				"match_state":        movement.MatchState,
				"confidence":         movement.Confidence,
				"linked_payment_ref": movement.LinkedPaymentRef,
				"modified_by":        movement.ModifiedBy,
				"modified_at":        time.Now(),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return apperrors.NewConflict("movement %s resolved manually", movement.ID)
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bank_movement_id"}},
			UpdateAll: true,
		}).Create(result).Error
	})
	if err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			return err
		}
		return &apperrors.PersistenceError{Op: "save classification", Err: err}
	}
	return nil
}

func (r *GormReconciliationResultRepository) ApplyOverride(ctx context.Context, movement *models.BankMovement, result *models.ReconciliationResult, audit *models.OverrideAuditLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Release whatever payment this movement held before.
		release := tx.Model(&models.ConductorPayment{}).
			Where("linked_movement_id = ?", movement.ID).
			Update("linked_movement_id", nil)
		if release.Error != nil {
			return release.Error
		}

		if movement.LinkedPaymentRef != nil {
			claim := tx.Model(&models.ConductorPayment{}).
				Where("reference_payment = ? AND linked_movement_id IS NULL", *movement.LinkedPaymentRef).
				Update("linked_movement_id", movement.ID)
			if claim.Error != nil {
				return claim.Error
			}
			if claim.RowsAffected == 0 {
				return apperrors.NewConflict("payment %s already linked", *movement.LinkedPaymentRef)
			}
		}

		if err := tx.Model(&models.BankMovement{}).
			Where("id = ?", movement.ID).
			Updates(map[string]interface{}{
				"match_state":        movement.MatchState,
				"confidence":         movement.Confidence,
				"linked_payment_ref": movement.LinkedPaymentRef,
				"observations":       movement.Observations,
				"modified_by":        movement.ModifiedBy,
				"modified_at":        time.Now(),
			}).Error; err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bank_movement_id"}},
			UpdateAll: true,
		}).Create(result).Error; err != nil {
			return err
		}

		return tx.Create(audit).Error
	})
	if err != nil {
		var conflict *apperrors.ConflictError
		if errors.As(err, &conflict) {
			return err
		}
		return &apperrors.PersistenceError{Op: "apply override", Err: err}
	}
	return nil
}

func (r *GormReconciliationResultRepository) GetByMovementID(ctx context.Context, movementID uuid.UUID) (*models.ReconciliationResult, error) {
	var result models.ReconciliationResult
	err := r.db.WithContext(ctx).First(&result, "bank_movement_id = ?", movementID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Resource: "reconciliation result", Key: movementID.String()}
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get reconciliation result", Err: err}
	}
	return &result, nil
}

func (r *GormReconciliationResultRepository) ListByStates(ctx context.Context, states []models.MatchState) ([]models.ReconciliationResult, error) {
	var results []models.ReconciliationResult
	query := r.db.WithContext(ctx).Order("created_at ASC, id ASC")
	if len(states) > 0 {
		query = query.Where("match_state IN ?", states)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "list reconciliation results", Err: err}
	}
	return results, nil
}
