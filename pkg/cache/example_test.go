package cache_test

import (
	"fmt"

	"github.com/matzehuels/iddl/pkg/cache"
)

func ExampleLRU() {
	c := cache.NewLRU[string](2,
		cache.WithEvictFunc(func(key string) { fmt.Println("evicted", key) }),
	)
	c.Set("a", "bg-card")
	c.Set("b", "bg-muted")
	c.Set("c", "bg-primary")

	_, ok := c.Get("a")
	fmt.Println("a cached:", ok)
	fmt.Println("len:", c.Len())
	// Output:
	// evicted a
	// a cached: false
	// len: 2
}

func ExampleScopedKeyer() {
	k := cache.NewScopedKeyer[string](cache.KeyFunc[string](func(s string) string { return s }), "theme:abc:")
	fmt.Println(k.Key("Button"))
	// Output: theme:abc:Button
}
