package reporting

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
)

// WorkerStats groups entries by normalized worker name. The result follows
// group discovery order; the display name is the first-seen trimmed name.
// Sums are exact decimals, rounding is left to presentation.
func WorkerStats(entries []models.ProductionEntry) []models.WorkerStat {
	index := make(map[string]int)
	stats := make([]models.WorkerStat, 0)

	for _, e := range entries {
		key := names.Key(e.Seamstress)
		i, ok := index[key]
		if !ok {
			i = len(stats)
			index[key] = i
			stats = append(stats, models.WorkerStat{
				DisplayName: strings.TrimSpace(e.Seamstress),
				TotalValue:  decimal.Zero,
				Pending:     decimal.Zero,
				Paid:        decimal.Zero,
			})
		}

		s := &stats[i]
		s.TotalValue = s.TotalValue.Add(e.Total)
		s.TotalQuantity += e.Quantity
		if e.Status == models.StatusPaid {
			s.Paid = s.Paid.Add(e.Total)
		} else {
			s.Pending = s.Pending.Add(e.Total)
		}
	}

	return stats
}

// Summarize computes the global financial summary of a set of entries.
func Summarize(entries []models.ProductionEntry) models.FinancialSummary {
	summary := models.FinancialSummary{
		TotalProductionCost: decimal.Zero,
		TotalPaid:           decimal.Zero,
		TotalPending:        decimal.Zero,
	}
	workers := make(map[string]struct{})

	for _, e := range entries {
		summary.TotalProductionCost = summary.TotalProductionCost.Add(e.Total)
		summary.TotalPieces += e.Quantity
		if e.Status == models.StatusPaid {
			summary.TotalPaid = summary.TotalPaid.Add(e.Total)
		} else {
			summary.TotalPending = summary.TotalPending.Add(e.Total)
		}
		workers[names.Key(e.Seamstress)] = struct{}{}
	}

	summary.SeamstressCount = len(workers)
	return summary
}

// SortByPending returns a copy of stats ordered by descending pending amount,
// workers owed the most first. Ties keep their input order.
func SortByPending(stats []models.WorkerStat) []models.WorkerStat {
	out := slices.Clone(stats)
	slices.SortStableFunc(out, func(a, b models.WorkerStat) int {
		return b.Pending.Cmp(a.Pending)
	})
	return out
}

// FindWorker returns the stat whose normalized name matches name.
func FindWorker(stats []models.WorkerStat, name string) (models.WorkerStat, bool) {
	key := names.Key(name)
	for _, s := range stats {
		if names.Key(s.DisplayName) == key {
			return s, true
		}
	}
	return models.WorkerStat{}, false
}

// SummarizeSales totals revenue and pieces of a set of sales.
func SummarizeSales(sales []models.SalesEntry) models.SalesSummary {
	summary := models.SalesSummary{Revenue: decimal.Zero, Count: len(sales)}
	for _, s := range sales {
		summary.Revenue = summary.Revenue.Add(s.Total)
		summary.Pieces += s.Quantity
	}
	return summary
}
