package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

// ErrInvalidSale is returned when a sale fails validation.
var ErrInvalidSale = errors.New("invalid sale")

// Sales records finished pieces sold, newest first.
type Sales struct {
	mu      sync.RWMutex
	entries []models.SalesEntry
	newID   func() string
}

// NewSales builds a sales ledger over the given entries.
func NewSales(entries []models.SalesEntry) *Sales {
	cp := make([]models.SalesEntry, len(entries))
	copy(cp, entries)
	return &Sales{entries: cp, newID: uuid.NewString}
}

// Add validates and records a sale.
func (s *Sales) Add(in models.SaleInput) (models.SalesEntry, error) {
	switch {
	case strings.TrimSpace(in.Product) == "":
		return models.SalesEntry{}, fmt.Errorf("%w: product is required", ErrInvalidSale)
	case in.Quantity <= 0:
		return models.SalesEntry{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidSale)
	case !in.SalePrice.IsPositive():
		return models.SalesEntry{}, fmt.Errorf("%w: sale price must be positive", ErrInvalidSale)
	case !validDate(in.Date):
		return models.SalesEntry{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidSale, in.Date)
	}

	entry := models.SalesEntry{
		ID:        s.newID(),
		Date:      strings.TrimSpace(in.Date),
		Product:   strings.TrimSpace(in.Product),
		Quantity:  in.Quantity,
		SalePrice: in.SalePrice,
		Total:     in.SalePrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.SalesEntry{entry}, s.entries...)
	return entry, nil
}

// Remove deletes the sale with the given id.
func (s *Sales) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a snapshot of all sales, newest first.
func (s *Sales) Entries() []models.SalesEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SalesEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
