package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/ledger"
	"github.com/mamadbah2/sewmaster/internal/service/reporting"
)

var errNotFound = errors.New("not found")

// respondError maps domain errors to status codes. Validation failures are
// the caller's fault and are not logged as errors.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidEntry),
		errors.Is(err, ledger.ErrInvalidProduct),
		errors.Is(err, ledger.ErrInvalidSale),
		errors.Is(err, reporting.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindJSON(c *gin.Context, logger *zap.Logger, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
