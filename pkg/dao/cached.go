package dao

import (
	"context"

	"github.com/ruFelix/hesper/pkg/cache"
)

// Cached is a read-through DAO decorator backed by an in-process LRU cache.
// Misses and invalid identifiers are never cached.
type Cached struct {
	next DAO
	lru  *cache.LRU[string, Entity]
}

// NewCached wraps next with an LRU of the given capacity.
func NewCached(next DAO, capacity int) *Cached {
	return &Cached{next: next, lru: cache.NewLRU[string, Entity](capacity)}
}

func (c *Cached) GetByID(ctx context.Context, id any) (Entity, error) {
	key, err := StringID(id)
	if err != nil {
		return c.next.GetByID(ctx, id)
	}

	if e, ok := c.lru.Get(key); ok {
		return e, nil
	}

	e, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !IsNil(e) {
		c.lru.Put(key, e)
	}
	return e, nil
}

// Forget drops id from the cache.
func (c *Cached) Forget(id any) {
	if key, err := StringID(id); err == nil {
		c.lru.Remove(key)
	}
}

func (c *Cached) Unwrap() DAO {
	return c.next
}
