package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       string          `json:"price"` // display label, e.g. "From $999"
	PriceAmount decimal.Decimal `json:"price_amount"`
	Category    string          `json:"category"`
}
