package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

// Project extrapolates the month-end production cost from the entries dated
// in the calendar month containing now. It is a linear run rate: the average
// per elapsed day times the days in the month, not a statistical forecast.
//
// Entry dates are read as civil dates; now is interpreted in its own location.
func Project(entries []models.ProductionEntry, now time.Time) models.Projection {
	year, month, day := now.Date()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location()).Day()

	total := decimal.Zero
	for _, e := range entries {
		d, err := time.Parse(models.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			total = total.Add(e.Total)
		}
	}

	p := models.Projection{
		Year:              year,
		Month:             month,
		DayOfMonth:        day,
		DaysInMonth:       daysInMonth,
		DaysRemaining:     daysInMonth - day,
		TotalCurrentMonth: total,
		DailyAverage:      decimal.Zero,
		Progress:          decimal.Zero,
	}

	if day > 0 {
		p.DailyAverage = total.Div(decimal.NewFromInt(int64(day)))
		p.Progress = decimal.NewFromInt(int64(day)).Div(decimal.NewFromInt(int64(daysInMonth))).Mul(hundred)
	}
	p.ProjectedTotal = p.DailyAverage.Mul(decimal.NewFromInt(int64(daysInMonth)))
	p.RemainingNeeded = p.ProjectedTotal.Sub(total)

	return p
}
