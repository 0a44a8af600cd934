package ledger

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
)

// storedEntry accepts every historical shape of a saved production record:
// status may be missing or carry the Portuguese values.
type storedEntry struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Seamstress string          `json:"seamstress"`
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitValue  decimal.Decimal `json:"unitValue"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
}

// DecodeProduction parses a saved production blob and migrates every record to
// the current schema: missing or legacy status becomes pending/paid, the
// worker name is normalized, total is recomputed and a missing id is assigned.
// Records that could never have been accepted are dropped and counted.
func DecodeProduction(data []byte) ([]models.ProductionEntry, int, error) {
	var raw []storedEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode production: %w", err)
	}

	entries := make([]models.ProductionEntry, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		status, ok := models.ParseStatus(r.Status)
		if !ok {
			status = models.StatusPending
		}
		if ValidateProduction(models.ProductionInput{
			Date:       r.Date,
			Seamstress: r.Seamstress,
			Product:    r.Product,
			Quantity:   r.Quantity,
			UnitValue:  r.UnitValue,
		}) != nil {
			dropped++
			continue
		}

		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}

		entries = append(entries, models.ProductionEntry{
			ID:         id,
			Date:       strings.TrimSpace(r.Date),
			Seamstress: names.Display(r.Seamstress),
			Product:    strings.TrimSpace(r.Product),
			Quantity:   r.Quantity,
			UnitValue:  r.UnitValue,
			Total:      lineTotal(r.Quantity, r.UnitValue),
			Status:     status,
		})
	}

	return entries, dropped, nil
}

// DecodeCatalog parses a saved catalog blob, dropping unusable products.
func DecodeCatalog(data []byte) ([]models.ProductCatalog, int, error) {
	var raw []models.ProductCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode catalog: %w", err)
	}

	out := make([]models.ProductCatalog, 0, len(raw))
	dropped := 0
	for _, p := range raw {
		if validateProduct(p.Name, p.ProductionPrice) != nil {
			dropped++
			continue
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		out = append(out, p)
	}
	return out, dropped, nil
}

// DecodeSales parses a saved sales blob, recomputing totals.
func DecodeSales(data []byte) ([]models.SalesEntry, int, error) {
	var raw []models.SalesEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode sales: %w", err)
	}

	out := make([]models.SalesEntry, 0, len(raw))
	dropped := 0
	for _, s := range raw {
		if strings.TrimSpace(s.Product) == "" || s.Quantity <= 0 || !s.SalePrice.IsPositive() {
			dropped++
			continue
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.Total = s.SalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
		out = append(out, s)
	}
	return out, dropped, nil
}
