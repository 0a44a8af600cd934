package models

import "github.com/shopspring/decimal"

// ProductCatalog is one priced product definition.
type ProductCatalog struct {
	ID              string          `json:"id" bson:"id"`
	Name            string          `json:"name" bson:"name"`
	ProductionPrice decimal.Decimal `json:"productionPrice" bson:"production_price"`
}

// DefaultCatalog is the starter price list offered to a new workshop.
func DefaultCatalog() []ProductCatalog {
	return []ProductCatalog{
		{ID: "c1", Name: "Mochila", ProductionPrice: decimal.RequireFromString("3.00")},
		{ID: "c2", Name: "Mini Mala", ProductionPrice: decimal.RequireFromString("3.50")},
		{ID: "c3", Name: "Estojo", ProductionPrice: decimal.RequireFromString("1.50")},
	}
}
