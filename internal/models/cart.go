package models

import "github.com/shopspring/decimal"

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the storage form of a shopping cart.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// Read-only view of a cart as consumed by checkout
type CartSnapshot struct {
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
