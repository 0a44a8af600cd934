package reporting

import (
	"slices"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// Rank orders workers by descending pieces produced and numbers them from 1.
// Ties keep their input order.
func Rank(stats []models.WorkerStat) []models.RankedWorker {
	sorted := slices.Clone(stats)
	slices.SortStableFunc(sorted, func(a, b models.WorkerStat) int {
		return b.TotalQuantity - a.TotalQuantity
	})

	ranked := make([]models.RankedWorker, len(sorted))
	for i, s := range sorted {
		ranked[i] = models.RankedWorker{Position: i + 1, WorkerStat: s}
	}
	return ranked
}

// Leader returns the most productive worker, if any.
func Leader(stats []models.WorkerStat) (models.RankedWorker, bool) {
	ranked := Rank(stats)
	if len(ranked) == 0 {
		return models.RankedWorker{}, false
	}
	return ranked[0], true
}
