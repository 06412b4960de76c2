package cache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
)

// EvictFunc is called with the key of every entry pushed out by capacity.
// It runs outside the cache lock but must not block.
type EvictFunc func(key string)

// LRU is a bounded in-memory cache with least-recently-used eviction.
type LRU[V any] struct {
	mu      sync.RWMutex
	inner   *lru.Cache
	size    int
	onEvict EvictFunc

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// LRUOption configures an [LRU].
type LRUOption func(*lruConfig)

type lruConfig struct {
	onEvict EvictFunc
}

// WithEvictFunc registers a callback for capacity evictions.
// Clearing the cache does not count as eviction.
func WithEvictFunc(fn EvictFunc) LRUOption {
	return func(c *lruConfig) { c.onEvict = fn }
}

// NewLRU creates an LRU holding at most size entries.
// A size below 1 falls back to DefaultSize.
func NewLRU[V any](size int, opts ...LRUOption) *LRU[V] {
	var cfg lruConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if size < 1 {
		size = DefaultSize
	}
	c := &LRU[V]{size: size, onEvict: cfg.onEvict}
	c.inner = c.newInner()
	return c
}

func (c *LRU[V]) newInner() *lru.Cache {
	inner, err := lru.NewWithEvict(c.size, c.evicted)
	if err != nil {
		// only returned for non-positive sizes, which NewLRU rules out
		panic(err)
	}
	return inner
}

func (c *LRU[V]) evicted(key, _ interface{}) {
	c.evictions.Add(1)
	if c.onEvict != nil {
		k, _ := key.(string)
		c.onEvict(k)
	}
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.inner.Get(key)
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return v.(V), true
}

// Set stores value under key.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.inner.Add(key, value)
}

// Clear drops every entry without reporting them as evictions.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner = c.newInner()
}

// Len returns the number of stored entries.
func (c *LRU[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Len()
}

// Stats returns a snapshot of occupancy and counters.
func (c *LRU[V]) Stats() Stats {
	return Stats{
		Size:      c.Len(),
		MaxSize:   c.size,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

var _ Cache[int] = (*LRU[int])(nil)
