package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"conciliacion-bancaria-backend/internal/apperrors"
	"conciliacion-bancaria-backend/internal/models"
)

type GormConductorPaymentRepository struct {
	db *gorm.DB
}

func NewConductorPaymentRepository(db *gorm.DB) *GormConductorPaymentRepository {
	return &GormConductorPaymentRepository{db: db}
}

func (r *GormConductorPaymentRepository) Create(ctx context.Context, payment *models.ConductorPayment) error {
	// Duplicate reference_payment rows are silently ignored: re-uploading a
	// driver report must not duplicate payments.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(payment).Error
	if err != nil {
		return &apperrors.PersistenceError{Op: "create conductor payment", Err: err}
	}
	return nil
}

func (r *GormConductorPaymentRepository) GetByRef(ctx context.Context, ref string) (*models.ConductorPayment, error) {
	var payment models.ConductorPayment
	err := r.db.WithContext(ctx).
		Preload("TrackingItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&payment, "reference_payment = ?", ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Resource: "conductor payment", Key: ref}
	}
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "get conductor payment", Err: err}
	}
	return &payment, nil
}

func (r *GormConductorPaymentRepository) ListUnlinked(ctx context.Context, from, to time.Time) ([]models.ConductorPayment, error) {
	var payments []models.ConductorPayment
	err := r.db.WithContext(ctx).
		Where("linked_movement_id IS NULL").
		Where("payment_date BETWEEN ? AND ?", from, to).
		Order("payment_date ASC, reference_payment ASC").
		Find(&payments).Error
	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "list unlinked payments", Err: err}
	}
	return payments, nil
}

func (r *GormConductorPaymentRepository) ListWithItems(ctx context.Context, transactionID string, from, to *time.Time) ([]models.ConductorPayment, error) {
	var payments []models.ConductorPayment
	query := r.db.WithContext(ctx).
		Preload("TrackingItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("transaction_id ASC, created_at ASC")

	if transactionID != "" {
		query = query.Where("transaction_id = ?", transactionID)
	}
	if from != nil {
		query = query.Where("payment_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("payment_date <= ?", *to)
	}

	if err := query.Find(&payments).Error; err != nil {
		return nil, &apperrors.PersistenceError{Op: "list payments with items", Err: err}
	}
	return payments, nil
}
