package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/service/insights"
	"github.com/mamadbah2/sewmaster/internal/service/reporting"
)

// ReportStore is the read surface used by ReportHandler.
type ReportStore interface {
	Summary() models.FinancialSummary
	SalesSummary() models.SalesSummary
	Workers() []models.WorkerStat
	Ranking() []models.RankedWorker
	Projection() models.Projection
	Report(f models.Filter) (models.ProductionReport, error)
	Statement(name string) (models.WorkerStat, []models.ProductionEntry, bool)
}

// Analyst produces the AI commentary of a ledger view.
type Analyst interface {
	Summarize(ctx context.Context, entries []models.ProductionEntry, summary models.FinancialSummary) (string, error)
}

// Exporter writes a filtered view to the report spreadsheet.
type Exporter interface {
	Export(ctx context.Context, f models.Filter) (int, error)
}

// ReportHandler serves dashboard, ranking, projection and export endpoints.
type ReportHandler struct {
	store    ReportStore
	analyst  Analyst
	exporter Exporter
	logger   *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(store ReportStore, analyst Analyst, exporter Exporter, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{store: store, analyst: analyst, exporter: exporter, logger: logger}
}

// Summary returns the production and sales totals.
func (h *ReportHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"production": h.store.Summary(),
		"sales":      h.store.SalesSummary(),
	})
}

// Workers returns per-worker totals, largest pending balance first.
func (h *ReportHandler) Workers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Workers())
}

// Worker returns one worker's statement.
func (h *ReportHandler) Worker(c *gin.Context) {
	stat, entries, ok := h.store.Statement(c.Param("name"))
	if !ok {
		respondError(c, h.logger, fmt.Errorf("%w: worker %s", errNotFound, c.Param("name")))
		return
	}
	c.JSON(http.StatusOK, gin.H{"worker": stat, "entries": entries})
}

// Ranking returns workers ordered by pieces produced.
func (h *ReportHandler) Ranking(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Ranking())
}

// Projection returns the current month run rate.
func (h *ReportHandler) Projection(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Projection())
}

// Insights asks the configured model to analyse the filtered view.
func (h *ReportHandler) Insights(c *gin.Context) {
	report, ok := h.filteredReport(c)
	if !ok {
		return
	}

	text, err := h.analyst.Summarize(c.Request.Context(), report.Entries, report.Summary)
	if errors.Is(err, insights.ErrNoGenerator) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": text})
}

// Export writes the filtered view to the report spreadsheet.
func (h *ReportHandler) Export(c *gin.Context) {
	report, ok := h.filteredReport(c)
	if !ok {
		return
	}

	rows, err := h.exporter.Export(c.Request.Context(), report.Filter)
	if errors.Is(err, reporting.ErrExportDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("report export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ReportHandler) filteredReport(c *gin.Context) (models.ProductionReport, bool) {
	var f models.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return models.ProductionReport{}, false
	}

	report, err := h.store.Report(f)
	if err != nil {
		respondError(c, h.logger, err)
		return models.ProductionReport{}, false
	}
	return report, true
}
