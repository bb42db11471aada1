package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruFelix/hesper/pkg/cache"
)

func TestLRU(t *testing.T) {
	t.Parallel()

	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		var evicted []string
		c.OnEvict(func(key string, _ int) { evicted = append(evicted, key) })

		c.Put("a", 1)
		c.Put("b", 2)
		_, _ = c.Get("a")
		c.Put("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		assert.Equal(t, []string{"b"}, evicted)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("put replaces value", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		c.Put("a", 1)
		c.Put("a", 5)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 5, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.NewLRU[int, string](1)
		c.Put(1, "x")
		assert.True(t, c.Remove(1))
		assert.False(t, c.Remove(1))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("panics on invalid capacity", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := cache.NewLRU[int, int](16)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.Put(i*100+j, j)
					_, _ = c.Get(j)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 16, c.Len())
	})
}
