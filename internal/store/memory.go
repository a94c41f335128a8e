package store

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	val     T
	expires time.Time
}

// Memory is an in-process Store. A zero TTL disables expiry.
type Memory[T any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	store map[string]entry[T]
}

func NewMemory[T any](ttl time.Duration) *Memory[T] {
	return &Memory[T]{
		ttl:   ttl,
		now:   time.Now,
		store: make(map[string]entry[T]),
	}
}

func (m *Memory[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	e, ok := m.store[id]
	m.mu.RUnlock()

	var zero T
	if !ok {
		return zero, ErrNotFound
	}
	if m.expired(e) {
		m.mu.Lock()
		// re-check; a Put may have refreshed it
		if cur, ok := m.store[id]; ok && m.expired(cur) {
			delete(m.store, id)
		}
		m.mu.Unlock()
		return zero, ErrNotFound
	}
	return e.val, nil
}

// Put stores v and refreshes its TTL.
func (m *Memory[T]) Put(_ context.Context, id string, v T) error {
	e := entry[T]{val: v}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[id] = e
	return nil
}

func (m *Memory[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}

// Sweep drops every expired entry and returns how many were removed.
func (m *Memory[T]) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.store {
		if m.expired(e) {
			delete(m.store, id)
			n++
		}
	}
	return n
}

func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}

func (m *Memory[T]) expired(e entry[T]) bool {
	return !e.expires.IsZero() && !m.now().Before(e.expires)
}
