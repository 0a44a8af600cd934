package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// SalesStore is the sales surface used by SalesHandler.
type SalesStore interface {
	Sales() []models.SalesEntry
	SalesSummary() models.SalesSummary
	AddSale(ctx context.Context, in models.SaleInput) (models.SalesEntry, error)
	RemoveSale(ctx context.Context, id string) bool
}

// SalesHandler exposes the sales ledger.
type SalesHandler struct {
	store  SalesStore
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(store SalesStore, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{store: store, logger: logger}
}

// List returns every sale and their totals.
func (h *SalesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.store.Sales(),
		"summary": h.store.SalesSummary(),
	})
}

// Create records a sale.
func (h *SalesHandler) Create(c *gin.Context) {
	var in models.SaleInput
	if !bindJSON(c, h.logger, &in) {
		return
	}

	sale, err := h.store.AddSale(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// Delete removes a sale.
func (h *SalesHandler) Delete(c *gin.Context) {
	if !h.store.RemoveSale(c.Request.Context(), c.Param("id")) {
		respondError(c, h.logger, fmt.Errorf("%w: sale %s", errNotFound, c.Param("id")))
		return
	}
	c.Status(http.StatusNoContent)
}
