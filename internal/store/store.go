// Package store keeps transient per-session state such as carts and
// checkout sessions. Entries expire after a TTL and are never persisted
// beyond it.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("store: not found")

type Store[T any] interface {
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
}
