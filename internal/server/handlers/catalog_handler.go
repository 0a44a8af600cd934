package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// CatalogStore is the catalog surface used by CatalogHandler.
type CatalogStore interface {
	Catalog() []models.ProductCatalog
	AddProduct(ctx context.Context, name string, price decimal.Decimal) (models.ProductCatalog, error)
	UpdateProduct(ctx context.Context, id, name string, price decimal.Decimal) (models.ProductCatalog, bool, error)
	RemoveProduct(ctx context.Context, id string) bool
}

type productRequest struct {
	Name            string          `json:"name"`
	ProductionPrice decimal.Decimal `json:"productionPrice"`
}

// CatalogHandler exposes the product catalog.
type CatalogHandler struct {
	store  CatalogStore
	logger *zap.Logger
}

// NewCatalogHandler constructs the HTTP handler adapter.
func NewCatalogHandler(store CatalogStore, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{store: store, logger: logger}
}

// List returns every product.
func (h *CatalogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Catalog())
}

// Create adds a product.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	p, err := h.store.AddProduct(c.Request.Context(), req.Name, req.ProductionPrice)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update renames or reprices a product.
func (h *CatalogHandler) Update(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	p, ok, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), req.Name, req.ProductionPrice)
	if err == nil && !ok {
		err = fmt.Errorf("%w: product %s", errNotFound, c.Param("id"))
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete removes a product.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if !h.store.RemoveProduct(c.Request.Context(), c.Param("id")) {
		respondError(c, h.logger, fmt.Errorf("%w: product %s", errNotFound, c.Param("id")))
		return
	}
	c.Status(http.StatusNoContent)
}
