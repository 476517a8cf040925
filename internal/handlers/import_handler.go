package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/repository"
)

type ImportHandler struct {
	movements repository.BankMovementRepository
	batches   repository.ImportBatchRepository
	payments  repository.ConductorPaymentRepository
}

func NewImportHandler(
	movements repository.BankMovementRepository,
	batches repository.ImportBatchRepository,
	payments repository.ConductorPaymentRepository,
) *ImportHandler {
	return &ImportHandler{movements: movements, batches: batches, payments: payments}
}

type movementPayload struct {
	MovementDate string `json:"movement_date"` // yyyy-mm-dd
	Description  string `json:"description"`
	Amount       string `json:"amount"` // decimal string, non-negative
}

// ImportMovements ingests a JSON batch of raw bank movements.
func (h *ImportHandler) ImportMovements(c *gin.Context) {
	var payload struct {
		CreatedBy string            `json:"created_by"`
		Movements []movementPayload `json:"movements"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(payload.Movements) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movements required"})
		return
	}

	// Validate every row before touching storage so a bad payload never
	// leaves a batch stuck in processing.
	batchID := uuid.New()
	movements := make([]*models.BankMovement, 0, len(payload.Movements))
	for i, m := range payload.Movements {
		movement, err := buildMovement(batchID, payload.CreatedBy, m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "row": i})
			return
		}
		movements = append(movements, movement)
	}

	batch := &models.ImportBatch{
		ID:        batchID,
		Filename:  "json-import",
		Status:    "processing",
		StartedAt: time.Now(),
		CreatedAt: time.Now(),
	}
	if err := h.batches.Create(c.Request.Context(), batch); err != nil {
		writeError(c, err)
		return
	}

	if err := h.movements.CreateBatch(c.Request.Context(), movements); err != nil {
		writeError(c, err)
		return
	}
	if err := h.batches.MarkCompleted(c.Request.Context(), batch.ID, len(movements)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batch_id": batch.ID.String(),
		"imported": len(movements),
	})
}

// UploadMovementsCSV ingests a bank statement CSV in the background.
// Expected columns: date, description, amount. Malformed rows are skipped;
// an unreadable stream marks the batch failed.
func (h *ImportHandler) UploadMovementsCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	// The multipart file is request-scoped (large uploads are backed by a
	// temp file removed when the handler returns), so buffer it before
	// handing it to the detached goroutine.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}

	createdBy := c.GetHeader("X-User-Email")

	batch := &models.ImportBatch{
		ID:        uuid.New(),
		Filename:  header.Filename,
		Status:    "processing",
		StartedAt: time.Now(),
		CreatedAt: time.Now(),
	}
	if err := h.batches.Create(c.Request.Context(), batch); err != nil {
		writeError(c, err)
		return
	}

	go h.processCSV(batch.ID, createdBy, bytes.NewReader(data))

	c.JSON(http.StatusAccepted, gin.H{
		"batch_id": batch.ID.String(),
		"status":   "processing",
	})
}

func (h *ImportHandler) processCSV(batchID uuid.UUID, createdBy string, reader io.Reader) {
	// Detached from the request: the upload response returns immediately.
	ctx := context.Background()
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	// Skip header
	_, _ = csvReader.Read()

	count := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Only parse errors are row-local. Anything else (a broken
			// reader) recurs on every Read, so bail out and mark the
			// batch failed instead of spinning.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.Warnf("[Import] skipping malformed row: %v", err)
				continue
			}
			log.Errorf("[Import] batch %s aborted, unreadable input: %v", batchID, err)
			if err := h.batches.MarkFailed(ctx, batchID, count); err != nil {
				log.Errorf("[Import] batch failure not recorded: %v", err)
			}
			return
		}
		if len(record) < 3 || strings.Join(record, "") == "" {
			continue
		}

		movement, err := buildMovement(batchID, createdBy, movementPayload{
			MovementDate: strings.TrimSpace(record[0]),
			Description:  strings.TrimSpace(record[1]),
			Amount:       strings.TrimSpace(record[2]),
		})
		if err != nil {
			log.Warnf("[Import] skipping row: %v", err)
			continue
		}

		if err := h.movements.CreateBatch(ctx, []*models.BankMovement{movement}); err != nil {
			log.Errorf("[Import] row not persisted: %v", err)
			continue
		}
		count++

		if count%100 == 0 {
			if err := h.batches.UpdateProgress(ctx, batchID, count); err != nil {
				log.Errorf("[Import] progress update failed: %v", err)
			}
		}
	}

	if err := h.batches.MarkCompleted(ctx, batchID, count); err != nil {
		log.Errorf("[Import] batch completion failed: %v", err)
	}
	log.Infof("[Import] batch %s completed, %d movements", batchID, count)
}

// GetBatchProgress reports how far an import has come.
func (h *ImportHandler) GetBatchProgress(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("batchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}

	batch, err := h.batches.GetByID(c.Request.Context(), batchID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"processed_count": batch.ProcessedCount,
		"total":           batch.TotalMovements,
		"status":          batch.Status,
	})
}

// CreatePayment registers a conductor payment with its tracking items.
func (h *ImportHandler) CreatePayment(c *gin.Context) {
	var payload struct {
		ReferencePayment string `json:"reference_payment"`
		TransactionID    string `json:"transaction_id"`
		ConductorEmail   string `json:"conductor_email"`
		Entity           string `json:"entity"`
		PaymentType      string `json:"payment_type"`
		PaymentDate      string `json:"payment_date"` // yyyy-mm-dd
		TotalValue       string `json:"total_value"`
		CreatedBy        string `json:"created_by"`
		TrackingItems    []struct {
			Tracking        string `json:"tracking"`
			Client          string `json:"client"`
			Carrier         string `json:"carrier"`
			IndividualValue string `json:"individual_value"`
		} `json:"tracking_items"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.ReferencePayment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference_payment required"})
		return
	}

	paymentDate, err := time.Parse("2006-01-02", payload.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment_date, expected yyyy-mm-dd"})
		return
	}
	totalValue, err := decimal.NewFromString(payload.TotalValue)
	if err != nil || totalValue.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid total_value"})
		return
	}

	payment := &models.ConductorPayment{
		ID:               uuid.New(),
		ReferencePayment: payload.ReferencePayment,
		TransactionID:    payload.TransactionID,
		ConductorEmail:   payload.ConductorEmail,
		Entity:           payload.Entity,
		PaymentType:      payload.PaymentType,
		PaymentDate:      paymentDate,
		TotalValue:       totalValue,
		CreatedBy:        payload.CreatedBy,
		CreatedAt:        time.Now(),
	}
	for i, item := range payload.TrackingItems {
		value, err := decimal.NewFromString(item.IndividualValue)
		if err != nil || value.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid individual_value", "row": i})
			return
		}
		payment.TrackingItems = append(payment.TrackingItems, models.TrackingItem{
			ID:              uuid.New(),
			PaymentID:       payment.ID,
			Tracking:        item.Tracking,
			Client:          item.Client,
			Carrier:         item.Carrier,
			IndividualValue: value,
			Position:        i,
		})
	}

	if err := h.payments.Create(c.Request.Context(), payment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment created", "payment": payment})
}

var errNegativeAmount = errors.New("amount must be non-negative")

func buildMovement(batchID uuid.UUID, createdBy string, m movementPayload) (*models.BankMovement, error) {
	date, err := time.Parse("2006-01-02", m.MovementDate)
	if err != nil {
		date, err = time.Parse("02-01-2006", m.MovementDate)
	}
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errNegativeAmount
	}

	return &models.BankMovement{
		ID:            uuid.New(),
		ImportBatchID: batchID,
		MovementDate:  date,
		Description:   m.Description,
		Amount:        amount,
		MatchState:    models.EstadoPendiente,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now(),
	}, nil
}
