package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Cheertaboi/storefront-checkout/internal/core/errx"
	logx "github.com/Cheertaboi/storefront-checkout/pkg/logger"
)

// Redis stores JSON-encoded values under prefix:id with a TTL so that
// several instances can share carts and sessions.
type Redis[T any] struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedis[T any](rdb redis.Cmdable, prefix string, ttl time.Duration) *Redis[T] {
	return &Redis[T]{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Redis[T]) key(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

func (r *Redis[T]) Get(ctx context.Context, id string) (T, error) {
	var v T
	key := r.key(id)

	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return v, ErrNotFound
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load value from redis")
		return v, errx.WrapRedis(err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to unmarshal value")
		return v, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return v, nil
}

func (r *Redis[T]) Put(ctx context.Context, id string, v T) error {
	key := r.key(id)
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.rdb.Set(ctx, key, b, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to store value in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *Redis[T]) Delete(ctx context.Context, id string) error {
	key := r.key(id)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete value from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var (
	_ Store[int] = (*Memory[int])(nil)
	_ Store[int] = (*Redis[int])(nil)
)
