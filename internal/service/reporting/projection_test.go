package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

func TestProjectLinearRunRate(t *testing.T) {
	entries := []models.ProductionEntry{
		entry("1", "2024-06-01", "Ana", "Mochila", 50, "3.00", models.StatusPaid),
		entry("2", "2024-06-09", "Bia", "Estojo", 100, "1.50", models.StatusPending),
		entry("3", "2024-05-31", "Bia", "Estojo", 100, "1.50", models.StatusPending),
		entry("4", "2023-06-05", "Bia", "Estojo", 100, "1.50", models.StatusPending),
	}
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	p := Project(entries, now)

	assert.Equal(t, 30, p.DaysInMonth)
	assert.Equal(t, 10, p.DayOfMonth)
	assert.Equal(t, 20, p.DaysRemaining)
	assert.Equal(t, "300.00", p.TotalCurrentMonth.StringFixed(2))
	assert.Equal(t, "30.00", p.DailyAverage.StringFixed(2))
	assert.Equal(t, "900.00", p.ProjectedTotal.StringFixed(2))
	assert.Equal(t, "600.00", p.RemainingNeeded.StringFixed(2))
	assert.Equal(t, "33.33", p.Progress.StringFixed(2))
}

func TestProjectLeapFebruary(t *testing.T) {
	now := time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)
	p := Project(nil, now)

	assert.Equal(t, 29, p.DaysInMonth)
	assert.Equal(t, 0, p.DaysRemaining)
	assert.True(t, p.ProjectedTotal.IsZero())
}

func TestProjectUsesLocationOfNow(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 02:00 UTC on July 1st is still June 30th in Sao Paulo.
	now := time.Date(2024, time.July, 1, 2, 0, 0, 0, time.UTC).In(saoPaulo)
	entries := []models.ProductionEntry{
		entry("1", "2024-06-30", "Ana", "Mochila", 10, "3.00", models.StatusPaid),
	}

	p := Project(entries, now)
	assert.Equal(t, time.June, p.Month)
	assert.Equal(t, 30, p.DayOfMonth)
	assert.Equal(t, "30.00", p.TotalCurrentMonth.StringFixed(2))
}
