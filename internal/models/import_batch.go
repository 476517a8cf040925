package models

import (
	"time"

	"github.com/google/uuid"
)

// ImportBatch tracks one bank-file ingest and its progress.
type ImportBatch struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Filename       string
	TotalMovements int
	ProcessedCount int
	Status         string
	StartedAt      time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
}
