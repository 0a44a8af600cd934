package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(id, date, name, product string, qty int, unit string, status models.PaymentStatus) models.ProductionEntry {
	u := dec(unit)
	return models.ProductionEntry{
		ID:         id,
		Date:       date,
		Seamstress: name,
		Product:    product,
		Quantity:   qty,
		UnitValue:  u,
		Total:      u.Mul(decimal.NewFromInt(int64(qty))),
		Status:     status,
	}
}

func sampleLedger() []models.ProductionEntry {
	return []models.ProductionEntry{
		entry("1", "2024-06-01", "Maria Silva", "Mochila", 10, "3.00", models.StatusPending),
		entry("2", "2024-06-02", "Ana Souza", "Estojo", 20, "1.50", models.StatusPaid),
		entry("3", "2024-06-02", "maria silva", "Estojo", 5, "1.50", models.StatusPaid),
		entry("4", "2024-06-05", "João", "Mini Mala", 4, "3.50", models.StatusPending),
		entry("5", "2024-05-30", "Ana Souza", "Mochila", 2, "3.00", models.StatusPending),
	}
}
