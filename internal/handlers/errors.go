package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"conciliacion-bancaria-backend/internal/apperrors"
)

// writeError maps the engine's error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var (
		validation  *apperrors.ValidationError
		notFound    *apperrors.NotFoundError
		conflict    *apperrors.ConflictError
		persistence *apperrors.PersistenceError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Msg})
	case errors.As(err, &persistence):
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage failure, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
