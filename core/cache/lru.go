package cache

import (
	"github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"

	"github.com/0chain/ecdsa-multisig/core/common"
)

// ErrKeyNotFound is returned by Get on a cache miss.
var ErrKeyNotFound = common.NewError("cache_miss", "key not found in cache")

// LRU is a size bounded least-recently-used cache, safe for concurrent use.
type LRU[K comparable, V any] struct {
	Cache *lru.Cache[K, V]
	hit   atomic.Int64
	miss  atomic.Int64
}

// NewLRUCache - create a new LRU cache object
func NewLRUCache[K comparable, V any](size int) *LRU[K, V] {
	c, err := lru.New[K, V](size)
	if err != nil {
		panic(err)
	}
	return &LRU[K, V]{Cache: c}
}

// Add - add a given key and value
func (c *LRU[K, V]) Add(key K, value V) error {
	c.Cache.Add(key, value)
	return nil
}

// Get - get the value associated with the key
func (c *LRU[K, V]) Get(key K) (V, error) {
	value, ok := c.Cache.Get(key)
	if !ok {
		c.miss.Inc()
		return value, ErrKeyNotFound
	}
	c.hit.Inc()
	return value, nil
}

// Len - number of cached entries
func (c *LRU[K, V]) Len() int {
	return c.Cache.Len()
}

func (c *LRU[K, V]) GetHit() int64 {
	return c.hit.Load()
}

func (c *LRU[K, V]) GetMiss() int64 {
	return c.miss.Load()
}
