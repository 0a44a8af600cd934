// Package ledger holds the workshop's in-memory collections: production
// entries, the product catalog and sales. Every mutation is a critical
// section, and readers always receive a copy of a consistent snapshot.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
)

// ErrInvalidEntry is returned when a production entry fails validation.
var ErrInvalidEntry = errors.New("invalid production entry")

// Ledger is the single source of truth for production entries. Entries are
// kept newest first.
type Ledger struct {
	mu      sync.RWMutex
	entries []models.ProductionEntry
	newID   func() string
}

// New builds a ledger over already migrated entries.
func New(entries []models.ProductionEntry) *Ledger {
	cp := make([]models.ProductionEntry, len(entries))
	copy(cp, entries)
	return &Ledger{entries: cp, newID: uuid.NewString}
}

// Add validates the input, stores a new pending entry at the front of the
// ledger and returns it.
func (l *Ledger) Add(in models.ProductionInput) (models.ProductionEntry, error) {
	if err := ValidateProduction(in); err != nil {
		return models.ProductionEntry{}, err
	}

	entry := models.ProductionEntry{
		ID:         l.newID(),
		Date:       strings.TrimSpace(in.Date),
		Seamstress: names.Display(in.Seamstress),
		Product:    strings.TrimSpace(in.Product),
		Quantity:   in.Quantity,
		UnitValue:  in.UnitValue,
		Total:      lineTotal(in.Quantity, in.UnitValue),
		Status:     models.StatusPending,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]models.ProductionEntry{entry}, l.entries...)
	return entry, nil
}

// Update replaces the mutable fields of the entry with the given id. An empty
// input status keeps the current one. The boolean is false when no entry has
// that id; nothing is created in that case.
func (l *Ledger) Update(id string, in models.ProductionInput) (models.ProductionEntry, bool, error) {
	if err := ValidateProduction(in); err != nil {
		return models.ProductionEntry{}, false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return models.ProductionEntry{}, false, nil
	}

	entry := l.entries[i]
	entry.Date = strings.TrimSpace(in.Date)
	entry.Seamstress = names.Display(in.Seamstress)
	entry.Product = strings.TrimSpace(in.Product)
	entry.Quantity = in.Quantity
	entry.UnitValue = in.UnitValue
	entry.Total = lineTotal(in.Quantity, in.UnitValue)
	if in.Status != "" {
		entry.Status, _ = models.ParseStatus(string(in.Status))
	}

	l.entries[i] = entry
	return entry, true, nil
}

// ToggleStatus flips paid and pending for the entry with the given id.
func (l *Ledger) ToggleStatus(id string) (models.ProductionEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return models.ProductionEntry{}, false
	}
	l.entries[i].Status = l.entries[i].Status.Toggle()
	return l.entries[i], true
}

// Remove deletes the entry with the given id and reports whether it existed.
func (l *Ledger) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Get returns a copy of the entry with the given id.
func (l *Ledger) Get(id string) (models.ProductionEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return models.ProductionEntry{}, false
	}
	return l.entries[i], true
}

// Entries returns a snapshot of all entries, newest first.
func (l *Ledger) Entries() []models.ProductionEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.ProductionEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of stored entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.entries {
		if l.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// ValidateProduction rejects inputs that must never reach the ledger.
func ValidateProduction(in models.ProductionInput) error {
	switch {
	case !names.Valid(in.Seamstress):
		return fmt.Errorf("%w: seamstress name is required", ErrInvalidEntry)
	case strings.TrimSpace(in.Product) == "":
		return fmt.Errorf("%w: product is required", ErrInvalidEntry)
	case in.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidEntry)
	case !in.UnitValue.IsPositive():
		return fmt.Errorf("%w: unit value must be positive", ErrInvalidEntry)
	}

	if !validDate(in.Date) {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidEntry, in.Date)
	}

	if in.Status != "" {
		if _, ok := models.ParseStatus(string(in.Status)); !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidEntry, in.Status)
		}
	}

	return nil
}

func lineTotal(quantity int, unit decimal.Decimal) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

func validDate(value string) bool {
	_, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	return err == nil
}
