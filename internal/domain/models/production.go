package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for every entry date. Dates are
// compared as strings in this layout, never as parsed instants.
const DateLayout = "2006-01-02"

// PaymentStatus tracks whether a production entry was paid to the worker.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPaid    PaymentStatus = "paid"
)

// ParseStatus maps stored or user supplied status values, including the
// legacy Portuguese ones, to a PaymentStatus. Empty input is pending.
func ParseStatus(value string) (PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "pending", "pendente":
		return StatusPending, true
	case "paid", "pago":
		return StatusPaid, true
	default:
		return "", false
	}
}

// Toggle flips paid and pending.
func (s PaymentStatus) Toggle() PaymentStatus {
	if s == StatusPaid {
		return StatusPending
	}
	return StatusPaid
}

// ProductionEntry is one production batch for one worker, product and date.
type ProductionEntry struct {
	ID         string          `json:"id" bson:"id"`
	Date       string          `json:"date" bson:"date"`
	Seamstress string          `json:"seamstress" bson:"seamstress"`
	Product    string          `json:"product" bson:"product"`
	Quantity   int             `json:"quantity" bson:"quantity"`
	UnitValue  decimal.Decimal `json:"unitValue" bson:"unit_value"`
	Total      decimal.Decimal `json:"total" bson:"total"`
	Status     PaymentStatus   `json:"status" bson:"status"`
}

// ProductionInput carries the caller-supplied fields of an entry. Status is
// ignored on add and optional on update.
type ProductionInput struct {
	Date       string          `json:"date"`
	Seamstress string          `json:"seamstress"`
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitValue  decimal.Decimal `json:"unitValue"`
	Status     PaymentStatus   `json:"status,omitempty"`
}
