package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSummary is derived from the ledger and never persisted on its own.
type FinancialSummary struct {
	TotalProductionCost decimal.Decimal `json:"totalProductionCost" bson:"total_production_cost"`
	TotalPieces         int             `json:"totalPieces" bson:"total_pieces"`
	SeamstressCount     int             `json:"seamstressCount" bson:"seamstress_count"`
	TotalPaid           decimal.Decimal `json:"totalPaid" bson:"total_paid"`
	TotalPending        decimal.Decimal `json:"totalPending" bson:"total_pending"`
}

// WorkerStat aggregates all entries sharing one normalized worker name.
type WorkerStat struct {
	DisplayName   string          `json:"displayName" bson:"display_name"`
	TotalValue    decimal.Decimal `json:"totalValue" bson:"total_value"`
	TotalQuantity int             `json:"totalQuantity" bson:"total_quantity"`
	Pending       decimal.Decimal `json:"pending" bson:"pending"`
	Paid          decimal.Decimal `json:"paid" bson:"paid"`
}

// RankedWorker pairs a WorkerStat with its 1-based position.
type RankedWorker struct {
	WorkerStat `bson:",inline"`

	Position int `json:"position" bson:"position"`
}

// Projection is a linear month-end run-rate extrapolation.
type Projection struct {
	Year              int             `json:"year" bson:"year"`
	Month             time.Month      `json:"month" bson:"month"`
	DayOfMonth        int             `json:"dayOfMonth" bson:"day_of_month"`
	DaysInMonth       int             `json:"daysInMonth" bson:"days_in_month"`
	DaysRemaining     int             `json:"daysRemaining" bson:"days_remaining"`
	TotalCurrentMonth decimal.Decimal `json:"totalCurrentMonth" bson:"total_current_month"`
	DailyAverage      decimal.Decimal `json:"dailyAverage" bson:"daily_average"`
	ProjectedTotal    decimal.Decimal `json:"projectedTotal" bson:"projected_total"`
	RemainingNeeded   decimal.Decimal `json:"remainingNeeded" bson:"remaining_needed"`
	Progress          decimal.Decimal `json:"progress" bson:"progress"`
}

// ProductionReport is a filtered entry list plus the totals of that view.
type ProductionReport struct {
	Filter  Filter            `json:"filter"`
	Entries []ProductionEntry `json:"entries"`
	Summary FinancialSummary  `json:"summary"`
}

// WeeklyReport is the scheduled payment snapshot archived in MongoDB.
type WeeklyReport struct {
	GeneratedAt time.Time        `bson:"generated_at" json:"generated_at"`
	Summary     FinancialSummary `bson:"summary" json:"summary"`
	Projection  Projection       `bson:"projection" json:"projection"`
	Leader      *RankedWorker    `bson:"leader,omitempty" json:"leader,omitempty"`
	Workers     []WorkerStat     `bson:"workers" json:"workers"`
}
