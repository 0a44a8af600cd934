package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	repo "github.com/mamadbah2/sewmaster/internal/repository/sheets"
)

// ErrExportDisabled is returned by Export when no spreadsheet is configured.
var ErrExportDisabled = errors.New("spreadsheet export is not configured")

const exportSheet = "Relatorio"

// Source provides the current ledger snapshot.
type Source interface {
	Production() []models.ProductionEntry
}

// Archive stores generated weekly reports.
type Archive interface {
	SaveWeeklyReport(ctx context.Context, report models.WeeklyReport) error
}

// Service renders chat summaries, weekly reports and spreadsheet exports on
// top of the pure aggregation functions.
type Service struct {
	source   Source
	archive  Archive
	exporter repo.Repository
	logger   *zap.Logger
}

// NewService wires a reporting service. archive and exporter are optional.
func NewService(source Source, archive Archive, exporter repo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, archive: archive, exporter: exporter, logger: logger}
}

// SummaryText renders the financial summary of the whole ledger.
func (s *Service) SummaryText() string {
	return RenderSummary(Summarize(s.source.Production()))
}

// RankingText renders the top n workers by pieces.
func (s *Service) RankingText(n int) string {
	return RenderRanking(Rank(WorkerStats(s.source.Production())), n)
}

// ProjectionText renders the run rate of the month containing now.
func (s *Service) ProjectionText(now time.Time) string {
	return RenderProjection(Project(s.source.Production(), now))
}

// PendingText renders the pending entries of the workers matching name.
func (s *Service) PendingText(name string) string {
	report := Report(s.source.Production(), models.Filter{NameSubstring: name, Status: models.StatusOnlyPending})
	return RenderStatement(name, report)
}

// WeeklyReport builds the payment snapshot for now.
func (s *Service) WeeklyReport(now time.Time) models.WeeklyReport {
	entries := s.source.Production()
	workers := WorkerStats(entries)

	report := models.WeeklyReport{
		GeneratedAt: now,
		Summary:     Summarize(entries),
		Projection:  Project(entries, now),
		Workers:     workers,
	}
	if leader, ok := Leader(workers); ok {
		report.Leader = &leader
	}
	return report
}

// GenerateWeeklyReport builds, archives and renders the weekly report. A
// failed archive write is logged and does not prevent the text from being
// returned.
func (s *Service) GenerateWeeklyReport(ctx context.Context, now time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	report := s.WeeklyReport(now)
	if s.archive != nil {
		if err := s.archive.SaveWeeklyReport(ctx, report); err != nil {
			s.logger.Error("failed to archive weekly report", zap.Error(err))
		}
	}

	s.logger.Info("weekly report generated",
		zap.Int("workers", len(report.Workers)),
		zap.String("pending", report.Summary.TotalPending.StringFixed(2)))

	return RenderWeeklyReport(report), nil
}

// Export writes the filtered view to the report spreadsheet, replacing its
// previous contents, and returns the number of entry rows written.
func (s *Service) Export(ctx context.Context, f models.Filter) (int, error) {
	if s.exporter == nil {
		return 0, ErrExportDisabled
	}

	report := Report(s.source.Production(), f)
	if err := s.exporter.ReplaceSheet(ctx, exportSheet, ExportRows(report)); err != nil {
		return 0, fmt.Errorf("export report: %w", err)
	}

	s.logger.Info("report exported", zap.Int("rows", len(report.Entries)))
	return len(report.Entries), nil
}

// ExportRows lays out a report as spreadsheet rows: header, one row per
// entry, then a totals row.
func ExportRows(report models.ProductionReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.Entries)+2)
	rows = append(rows, []interface{}{"Data", "Colaborador", "Produto", "Quantidade", "Valor Unitário", "Total", "Status"})

	for _, e := range report.Entries {
		rows = append(rows, []interface{}{
			e.Date, e.Seamstress, e.Product, e.Quantity,
			e.UnitValue.Round(2).InexactFloat64(), e.Total.Round(2).InexactFloat64(), string(e.Status),
		})
	}

	sum := report.Summary
	rows = append(rows, []interface{}{
		"TOTAL", "", "", sum.TotalPieces, "", sum.TotalProductionCost.Round(2).InexactFloat64(),
		fmt.Sprintf("pendente %s / pago %s", FormatBRL(sum.TotalPending), FormatBRL(sum.TotalPaid)),
	})
	return rows
}
