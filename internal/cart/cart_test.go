package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-checkout/internal/models"
)

func prod(id int, price int64) models.Product {
	return models.Product{ID: id, Name: "p", PriceAmount: decimal.NewFromInt(price)}
}

func TestAddAndTotal(t *testing.T) {
	c := New("c1")
	c.Add(prod(1, 999))
	c.Add(prod(2, 449))
	c.Add(prod(1, 999))

	require.Equal(t, 2, c.Len())
	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Items[0].Product.ID)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
	assert.True(t, decimal.NewFromInt(2447).Equal(snap.Subtotal))
}

func TestUpdateQuantity(t *testing.T) {
	c := New("c1")
	c.Add(prod(1, 100))

	assert.True(t, c.UpdateQuantity(1, 5))
	assert.True(t, decimal.NewFromInt(500).Equal(c.Total()))

	assert.True(t, c.UpdateQuantity(1, 0))
	assert.Equal(t, 0, c.Len())

	assert.False(t, c.UpdateQuantity(7, 3))
}

func TestRemoveAndClear(t *testing.T) {
	c := New("c1")
	c.Add(prod(1, 100))
	c.Add(prod(2, 200))
	c.Add(prod(3, 300))

	assert.True(t, c.Remove(2))
	assert.False(t, c.Remove(2))
	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 3, snap.Items[1].Product.ID)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Total().IsZero())
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New("c1")
	c.Add(prod(1, 100))
	snap := c.Snapshot()

	c.Add(prod(1, 100))
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(100).Equal(snap.Subtotal))
}

func TestFromRoundTrip(t *testing.T) {
	c := New("c9")
	c.Add(prod(4, 999))
	m := c.Model()

	again := From(m)
	again.Add(prod(4, 999))
	assert.Equal(t, 1, m.Items[0].Quantity)
	assert.Equal(t, "c9", again.ID())
	assert.Equal(t, 2, again.Model().Items[0].Quantity)
}
