package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestNullCache(t *testing.T) {
	c := NewNullCache[string]()

	if _, hit := c.Get("key"); hit {
		t.Error("NullCache.Get should always return miss")
	}

	c.Set("key", "value")
	if v, hit := c.Get("key"); hit || v != "" {
		t.Error("NullCache should not store data")
	}

	c.Clear()
	if got := c.Stats(); got.Misses != 2 || got.Size != 0 {
		t.Errorf("Stats() = %+v, want 2 misses and size 0", got)
	}
}

func TestLRUGetSet(t *testing.T) {
	c := NewLRU[int](4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache should miss")
	}
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 1/1", s.Hits, s.Misses)
	}
	if s.Size != 1 || s.MaxSize != 4 {
		t.Errorf("size/max = %d/%d, want 1/4", s.Size, s.MaxSize)
	}
}

func TestLRUDefaultSize(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, DefaultSize},
		{-5, DefaultSize},
		{1, 1},
		{250, 250},
	}
	for _, tt := range tests {
		if got := NewLRU[int](tt.size).Stats().MaxSize; got != tt.want {
			t.Errorf("NewLRU(%d).MaxSize = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestLRUEviction(t *testing.T) {
	var evicted []string
	c := NewLRU[int](2, WithEvictFunc(func(key string) {
		evicted = append(evicted, key)
	}))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a becomes most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should survive as most recently used")
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted = %v, want [b]", evicted)
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestLRUClearIsNotEviction(t *testing.T) {
	calls := 0
	c := NewLRU[int](3, WithEvictFunc(func(string) { calls++ }))
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if calls != 0 || c.Stats().Evictions != 0 {
		t.Errorf("Clear reported %d evictions", calls)
	}
	if c.Stats().Hits != 1 {
		t.Error("Clear should keep counters")
	}
	if c.Stats().MaxSize != 3 {
		t.Error("Clear should keep capacity")
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := NewLRU[int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%32)
				if v, ok := c.Get(key); ok && v != i%32 {
					t.Errorf("Get(%s) = %d, want %d", key, v, i%32)
				}
				c.Set(key, i%32)
				if i%50 == 0 && g == 0 {
					c.Clear()
				}
			}
		}(g)
	}
	wg.Wait()

	if got := c.Len(); got > 16 {
		t.Errorf("Len() = %d exceeds capacity", got)
	}
}

func TestStatsHitRate(t *testing.T) {
	tests := []struct {
		stats Stats
		want  float64
	}{
		{Stats{}, 0},
		{Stats{Hits: 3, Misses: 1}, 0.75},
		{Stats{Misses: 4}, 0},
	}
	for _, tt := range tests {
		if got := tt.stats.HitRate(); got != tt.want {
			t.Errorf("HitRate(%+v) = %v, want %v", tt.stats, got, tt.want)
		}
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHashValueMapOrder(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"z": 3, "y": 2, "x": 1}

	ha, err := HashValue(a)
	if err != nil {
		t.Fatalf("HashValue: %v", err)
	}
	hb, _ := HashValue(b)
	if ha != hb {
		t.Error("HashValue should not depend on map insertion order")
	}

	if _, err := HashValue(func() {}); err == nil {
		t.Error("HashValue should fail on unencodable values")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := KeyFunc[string](func(s string) string { return "k:" + s })
	k := NewScopedKeyer[string](inner, "theme:abc:")

	if got := k.Key("x"); got != "theme:abc:k:x" {
		t.Errorf("Key() = %q, want %q", got, "theme:abc:k:x")
	}
	if k.Prefix() != "theme:abc:" {
		t.Errorf("Prefix() = %q", k.Prefix())
	}

	other := NewScopedKeyer[string](inner, "theme:def:")
	if k.Key("x") == other.Key("x") {
		t.Error("different scopes must not share keys")
	}
}
