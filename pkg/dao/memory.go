package dao

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-memory DAO keyed by the string form of entity identifiers,
// so a raw "42" finds an entity whose ID() is int64(42).
type Memory[E Entity] struct {
	mu    sync.RWMutex
	items map[string]E
	key   func(raw any) (string, error)
}

// NewMemory returns a Memory holding items.
func NewMemory[E Entity](items ...E) *Memory[E] {
	m := &Memory[E]{
		items: make(map[string]E, len(items)),
		key:   StringID,
	}
	for _, e := range items {
		m.Put(e)
	}
	return m
}

// WithKey replaces the identifier normalization, e.g. to reject non-UUID input with ErrInvalidID.
func (m *Memory[E]) WithKey(fn func(raw any) (string, error)) *Memory[E] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.key = fn
	rekeyed := make(map[string]E, len(m.items))
	for _, e := range m.items {
		if k, err := fn(e.ID()); err == nil {
			rekeyed[k] = e
		}
	}
	m.items = rekeyed
	return m
}

func (m *Memory[E]) GetByID(_ context.Context, id any) (Entity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	k, err := m.key(id)
	if err != nil {
		return nil, err
	}
	e, ok := m.items[k]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return e, nil
}

// Put stores e, replacing any entity with the same identifier.
func (m *Memory[E]) Put(e E) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k, err := m.key(e.ID()); err == nil {
		m.items[k] = e
	}
}

func (m *Memory[E]) Delete(id any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if k, err := m.key(id); err == nil {
		delete(m.items, k)
	}
}

func (m *Memory[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
