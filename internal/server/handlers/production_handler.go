package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// ProductionStore is the ledger surface used by ProductionHandler.
type ProductionStore interface {
	Report(f models.Filter) (models.ProductionReport, error)
	Entry(id string) (models.ProductionEntry, bool)
	AddProduction(ctx context.Context, in models.ProductionInput) (models.ProductionEntry, error)
	UpdateProduction(ctx context.Context, id string, in models.ProductionInput) (models.ProductionEntry, bool, error)
	ToggleStatus(ctx context.Context, id string) (models.ProductionEntry, bool)
	RemoveProduction(ctx context.Context, id string) bool
}

// ProductionHandler exposes the production ledger.
type ProductionHandler struct {
	store  ProductionStore
	logger *zap.Logger
}

// NewProductionHandler constructs the HTTP handler adapter.
func NewProductionHandler(store ProductionStore, logger *zap.Logger) *ProductionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionHandler{store: store, logger: logger}
}

// List returns the entries matching the start, end, name and status query
// parameters together with the totals of that view.
func (h *ProductionHandler) List(c *gin.Context) {
	var f models.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	report, err := h.store.Report(f)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Get returns one entry.
func (h *ProductionHandler) Get(c *gin.Context) {
	entry, ok := h.store.Entry(c.Param("id"))
	if !ok {
		respondError(c, h.logger, fmt.Errorf("%w: production entry %s", errNotFound, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create records new production.
func (h *ProductionHandler) Create(c *gin.Context) {
	var in models.ProductionInput
	if !bindJSON(c, h.logger, &in) {
		return
	}

	entry, err := h.store.AddProduction(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Update edits an entry.
func (h *ProductionHandler) Update(c *gin.Context) {
	var in models.ProductionInput
	if !bindJSON(c, h.logger, &in) {
		return
	}

	entry, ok, err := h.store.UpdateProduction(c.Request.Context(), c.Param("id"), in)
	if err == nil && !ok {
		err = fmt.Errorf("%w: production entry %s", errNotFound, c.Param("id"))
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ToggleStatus flips paid and pending.
func (h *ProductionHandler) ToggleStatus(c *gin.Context) {
	entry, ok := h.store.ToggleStatus(c.Request.Context(), c.Param("id"))
	if !ok {
		respondError(c, h.logger, fmt.Errorf("%w: production entry %s", errNotFound, c.Param("id")))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete removes an entry.
func (h *ProductionHandler) Delete(c *gin.Context) {
	if !h.store.RemoveProduction(c.Request.Context(), c.Param("id")) {
		respondError(c, h.logger, fmt.Errorf("%w: production entry %s", errNotFound, c.Param("id")))
		return
	}
	c.Status(http.StatusNoContent)
}
