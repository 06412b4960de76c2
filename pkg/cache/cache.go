// Package cache memoizes resolved token outputs.
//
// The engine owns no global state: a [Cache] is handed to it at
// construction time, so several engines may share one store or each keep
// their own. Keys are plain strings built by a [Keyer]; two inputs that
// differ in any output-affecting field never share a key.
//
// # Implementations
//
//   - [LRU]: bounded, least-recently-used eviction, safe for concurrent use
//   - [NullCache]: stores nothing, for benchmarking the raw pipeline
//
// # Scoping
//
// [ScopedKeyer] prefixes every key, typically with a theme fingerprint, so
// engines resolving against different strategy tables can share a store
// without ever reading each other's entries.
package cache

// DefaultSize is the capacity used when none is configured.
const DefaultSize = 100

// Cache stores values of type V by string key.
type Cache[V any] interface {
	// Get returns the value stored for key and whether it was present.
	Get(key string) (V, bool)

	// Set stores value under key, evicting older entries if the cache is full.
	Set(key string, value V)

	// Clear drops every entry. Counters are kept.
	Clear()

	// Stats reports the current size and lifetime counters.
	Stats() Stats
}

// Stats is a snapshot of cache occupancy and effectiveness.
type Stats struct {
	Size      int    `json:"size" yaml:"size"`
	MaxSize   int    `json:"max_size" yaml:"max_size"`
	Hits      uint64 `json:"hits" yaml:"hits"`
	Misses    uint64 `json:"misses" yaml:"misses"`
	Evictions uint64 `json:"evictions" yaml:"evictions"`
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
