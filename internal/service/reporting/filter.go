package reporting

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
)

// ErrInvalidFilter is returned by NormalizeFilter for malformed criteria.
var ErrInvalidFilter = errors.New("invalid filter")

// NormalizeFilter trims the criteria, maps legacy status names and checks
// that dates are YYYY-MM-DD.
func NormalizeFilter(f models.Filter) (models.Filter, error) {
	out := models.Filter{
		StartDate:     strings.TrimSpace(f.StartDate),
		EndDate:       strings.TrimSpace(f.EndDate),
		NameSubstring: strings.TrimSpace(f.NameSubstring),
	}

	for _, d := range []string{out.StartDate, out.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			return models.Filter{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidFilter, d)
		}
	}

	status, ok := models.ParseStatusFilter(string(f.Status))
	if !ok {
		return models.Filter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	out.Status = status

	return out, nil
}

// Apply returns the entries matching every set criterion, in input order.
// Date bounds are inclusive and compared as YYYY-MM-DD strings, so no
// timezone conversion can shift an entry across a day boundary. The input is
// not modified.
func Apply(entries []models.ProductionEntry, f models.Filter) []models.ProductionEntry {
	status, _ := models.ParseStatusFilter(string(f.Status))

	out := make([]models.ProductionEntry, 0, len(entries))
	for _, e := range entries {
		if f.StartDate != "" && e.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && e.Date > f.EndDate {
			continue
		}
		if !names.Contains(e.Seamstress, f.NameSubstring) {
			continue
		}
		switch status {
		case models.StatusOnlyPaid:
			if e.Status != models.StatusPaid {
				continue
			}
		case models.StatusOnlyPending:
			if e.Status != models.StatusPending {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Report filters entries and totals the resulting view.
func Report(entries []models.ProductionEntry, f models.Filter) models.ProductionReport {
	view := Apply(entries, f)
	return models.ProductionReport{Filter: f, Entries: view, Summary: Summarize(view)}
}
