package engine_test

import (
	"fmt"

	"github.com/matzehuels/iddl/pkg/engine"
	"github.com/matzehuels/iddl/pkg/iddl"
)

func ExampleEngine_Resolve() {
	e := engine.New()
	in := iddl.TokenInput{
		Role:       "Button",
		Prominence: iddl.ProminenceHero,
		Intent:     iddl.IntentBrand,
	}

	out := e.Resolve(in)
	fmt.Println("size:", out.Typography.Size)
	fmt.Println("background:", out.Surface.Background)

	// The second call is served from the cache.
	e.Resolve(in)
	s := e.CacheStats()
	fmt.Println("hits:", s.Hits, "misses:", s.Misses)
	// Output:
	// size: text-lg
	// background: bg-primary
	// hits: 1 misses: 1
}
