package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"conciliacion-bancaria-backend/internal/services/balance"
)

type BalanceHandler struct {
	aggregator *balance.Aggregator
}

func NewBalanceHandler(a *balance.Aggregator) *BalanceHandler {
	return &BalanceHandler{aggregator: a}
}

// GetBalances serves the running-balance report:
// GET /api/reports/balances?transactionId=&cliente=&desde=&hasta=&limit=&offset=
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	filter := balance.Filter{
		TransactionID: c.Query("transactionId"),
		Client:        c.Query("cliente"),
	}

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
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = offset
	}

	report, err := h.aggregator.Balances(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
