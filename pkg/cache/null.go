package cache

import "sync/atomic"

// NullCache is a no-op cache that never stores anything.
// Every lookup is a miss; useful for testing or when caching should be disabled.
type NullCache[V any] struct {
	misses atomic.Uint64
}

// NewNullCache creates a null cache.
func NewNullCache[V any]() *NullCache[V] {
	return &NullCache[V]{}
}

// Get always returns a cache miss.
func (c *NullCache[V]) Get(string) (V, bool) {
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set does nothing.
func (c *NullCache[V]) Set(string, V) {}

// Clear does nothing.
func (c *NullCache[V]) Clear() {}

// Stats reports only the miss counter.
func (c *NullCache[V]) Stats() Stats {
	return Stats{Misses: c.misses.Load()}
}

// Ensure NullCache implements Cache.
var _ Cache[int] = (*NullCache[int])(nil)
