package models

import "strings"

// StatusFilter restricts a filtered view by payment status.
type StatusFilter string

const (
	StatusAny         StatusFilter = "any"
	StatusOnlyPaid    StatusFilter = "paid"
	StatusOnlyPending StatusFilter = "pending"
)

// ParseStatusFilter accepts any/paid/pending and the legacy todos/pago/pendente.
// Empty input means any.
func ParseStatusFilter(value string) (StatusFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "any", "todos", "all":
		return StatusAny, true
	case "paid", "pago":
		return StatusOnlyPaid, true
	case "pending", "pendente":
		return StatusOnlyPending, true
	default:
		return "", false
	}
}

// Filter holds the criteria of a ledger view. Zero values impose no constraint.
type Filter struct {
	StartDate     string       `json:"startDate,omitempty" form:"start"`
	EndDate       string       `json:"endDate,omitempty" form:"end"`
	NameSubstring string       `json:"name,omitempty" form:"name"`
	Status        StatusFilter `json:"status,omitempty" form:"status"`
}
