package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conciliacion-bancaria-backend/internal/services/reconciliation"
)

type ReconciliationHandler struct {
	service *reconciliation.Service
}

func NewReconciliationHandler(s *reconciliation.Service) *ReconciliationHandler {
	return &ReconciliationHandler{service: s}
}

// Run triggers a reconciliation run, optionally bounded by ?desde=&hasta=
// (dates as 2006-01-02). The summary always comes back, even when some
// movements failed to persist.
func (h *ReconciliationHandler) Run(c *gin.Context) {
	var filter reconciliation.RunFilter

	if raw := c.Query("desde"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid desde, expected yyyy-mm-dd"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("hasta"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hasta, expected yyyy-mm-dd"})
			return
		}
		filter.To = &to
	}

	summary, err := h.service.Run(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Manual applies an operator override.
func (h *ReconciliationHandler) Manual(c *gin.Context) {
	var payload struct {
		BankMovementID string  `json:"bank_movement_id"`
		PaymentRef     *string `json:"payment_ref"`
		Observations   string  `json:"observations"`
		PerformedBy    string  `json:"performed_by"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	movementID, err := uuid.Parse(payload.BankMovementID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bank movement ID"})
		return
	}

	result, err := h.service.ManualOverride(c.Request.Context(), reconciliation.OverrideInput{
		BankMovementID: movementID,
		PaymentRef:     payload.PaymentRef,
		Observations:   payload.Observations,
		PerformedBy:    payload.PerformedBy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "movement conciliated manually", "result": result})
}

// Summary returns counts and amounts grouped by match state.
func (h *ReconciliationHandler) Summary(c *gin.Context) {
	rows, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": rows})
}

// ListMovements pages movements for the review screen.
func (h *ReconciliationHandler) ListMovements(c *gin.Context) {
	state := c.Query("state")
	cursor := c.Query("cursor")
	search := c.Query("search")
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	items, nextCursor, hasMore, err := h.service.ListMovements(c.Request.Context(), state, cursor, search, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"next_cursor": nextCursor,
		"has_more":    hasMore,
	})
}
