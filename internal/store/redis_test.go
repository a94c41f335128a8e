package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/storefront-checkout/internal/core/errx"
)

type item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedis_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedis[item](rdb, "cart", time.Minute)

	_, err := s.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "x", item{Name: "iPad", Qty: 2}))
	assert.True(t, mr.Exists("cart:x"))
	assert.Equal(t, time.Minute, mr.TTL("cart:x"))

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, item{Name: "iPad", Qty: 2}, got)

	require.NoError(t, s.Delete(ctx, "x"))
	_, err = s.Get(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedis[item](rdb, "checkout", time.Minute)

	require.NoError(t, s.Put(ctx, "s", item{Name: "a"}))
	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "s")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedis_CorruptValue(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedis[item](rdb, "cart", time.Minute)

	require.NoError(t, mr.Set("cart:bad", "{not json"))
	_, err := s.Get(ctx, "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRedis_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	s := NewRedis[item](rdb, "cart", time.Minute)
	mr.Close()

	err := s.Put(ctx, "x", item{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, errx.From(err).Status)
}
