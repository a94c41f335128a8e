// Package cart implements the shopping cart operations on models.Cart.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

type Cart struct {
	c models.Cart
}

func New(id string) *Cart {
	return &Cart{c: models.Cart{ID: id, Items: []models.CartItem{}}}
}

// From wraps a stored cart. The slice is copied.
func From(c models.Cart) *Cart {
	items := make([]models.CartItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{c: models.Cart{ID: c.ID, Items: items}}
}

func (c *Cart) ID() string { return c.c.ID }

// Add increments the quantity of p, appending a new line if needed.
func (c *Cart) Add(p models.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.c.Items[i].Quantity++
		return
	}
	c.c.Items = append(c.c.Items, models.CartItem{Product: p, Quantity: 1})
}

// Remove reports whether a line was removed.
func (c *Cart) Remove(productID int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	c.c.Items = append(c.c.Items[:i], c.c.Items[i+1:]...)
	return true
}

// UpdateQuantity sets the quantity of a line; quantities below 1 remove it.
// It reports whether the product was in the cart.
func (c *Cart) UpdateQuantity(productID, quantity int) bool {
	i := c.index(productID)
	if i < 0 {
		return false
	}
	if quantity < 1 {
		return c.Remove(productID)
	}
	c.c.Items[i].Quantity = quantity
	return true
}

func (c *Cart) Clear() {
	c.c.Items = []models.CartItem{}
}

func (c *Cart) Len() int { return len(c.c.Items) }

// Total is the sum of unit price times quantity.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.c.Items {
		total = total.Add(it.Product.PriceAmount.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (c *Cart) Snapshot() models.CartSnapshot {
	items := make([]models.CartItem, len(c.c.Items))
	copy(items, c.c.Items)
	return models.CartSnapshot{Items: items, Subtotal: c.Total()}
}

func (c *Cart) Model() models.Cart {
	return From(c.c).c
}

func (c *Cart) index(productID int) int {
	for i, it := range c.c.Items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}
