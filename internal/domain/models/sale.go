package models

import "github.com/shopspring/decimal"

// SalesEntry records finished pieces sold by the workshop.
type SalesEntry struct {
	ID        string          `json:"id" bson:"id"`
	Date      string          `json:"date" bson:"date"`
	Product   string          `json:"product" bson:"product"`
	Quantity  int             `json:"quantity" bson:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice" bson:"sale_price"`
	Total     decimal.Decimal `json:"total" bson:"total"`
}

// SalesSummary aggregates a set of sales.
type SalesSummary struct {
	Revenue decimal.Decimal `json:"revenue"`
	Pieces  int             `json:"pieces"`
	Count   int             `json:"count"`
}

// SaleInput carries the caller-supplied fields of a sale.
type SaleInput struct {
	Date      string          `json:"date"`
	Product   string          `json:"product"`
	Quantity  int             `json:"quantity"`
	SalePrice decimal.Decimal `json:"salePrice"`
}
