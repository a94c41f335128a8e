package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 9)
	assert.Equal(t, "From $2499", all[0].Price)
	assert.Equal(t, int64(2499), all[0].PriceAmount.IntPart())

	all[0].Name = "changed"
	assert.Equal(t, `MacBook Pro 16"`, All()[0].Name)
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory("mac"), 3)
	assert.Len(t, ByCategory("iphone"), 3)
	assert.Len(t, ByCategory("ipad"), 3)
	assert.Empty(t, ByCategory("watch"))
	assert.Len(t, ByCategory(""), 9)
}

func TestGet(t *testing.T) {
	p, ok := Get(5)
	require.True(t, ok)
	assert.Equal(t, "iPhone 15", p.Name)
	assert.Equal(t, "799", p.PriceAmount.String())

	_, ok = Get(42)
	assert.False(t, ok)
}
