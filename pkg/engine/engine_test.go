package engine

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/iddl/pkg/cache"
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/observability"
	"github.com/matzehuels/iddl/pkg/pipeline"
	"github.com/matzehuels/iddl/pkg/theme"
)

type recorder struct {
	observability.NoopResolveHooks
	observability.NoopCacheHooks

	mu        sync.Mutex
	hits      int
	misses    int
	sets      int
	evictions []string
	completes []bool
}

func (r *recorder) OnCacheHit(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits++
}

func (r *recorder) OnCacheMiss(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses++
}

func (r *recorder) OnCacheSet(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets++
}

func (r *recorder) OnCacheEvict(_ context.Context, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictions = append(r.evictions, key)
}

func (r *recorder) OnResolveComplete(_ context.Context, _ string, cached bool, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completes = append(r.completes, cached)
}

func newRecorded(opts ...Option) (*Engine, *recorder) {
	r := &recorder{}
	opts = append(opts, WithHooks(observability.Hooks{Resolve: r, Cache: r}))
	return New(opts...), r
}

func button(p iddl.Prominence) iddl.TokenInput {
	in := iddl.TokenInput{Role: "Button", Prominence: p, Intent: iddl.IntentBrand}
	in.Context.Ancestry.Space = iddl.SpaceSurface
	return in
}

func TestResolveScenarios(t *testing.T) {
	e := New()

	out := e.Resolve(button(iddl.ProminenceHero))
	assert.Equal(t, "text-lg", out.Typography.Size)
	assert.Equal(t, "bg-primary", out.Surface.Background)

	container := iddl.TokenInput{Role: "Container", Density: iddl.DensityComfortable}
	container.Context.Ancestry.Space = iddl.SpaceCanvas
	container.Context.Relationship.ToPrevious = iddl.RelationGrouped
	assert.Equal(t, "gap-6", e.Resolve(container).Spacing.Gap)

	disabled := button(iddl.ProminenceHero)
	disabled.State = iddl.InteractionState{Disabled: true, Hover: true, Selected: true}
	out = e.Resolve(disabled)
	assert.Equal(t, "bg-muted", out.Surface.Background)
	assert.Equal(t, 0.5, out.Surface.Opacity)
}

func TestResolveIsDeterministic(t *testing.T) {
	in := button(iddl.ProminenceStrong)
	in.Context.Siblings = iddl.Siblings{Count: 3, Index: 1}

	a := New().Resolve(in)
	b := New(WithCache(cache.NewNullCache[iddl.TokenOutput]())).Resolve(in)
	e := New()
	c1, c2 := e.Resolve(in), e.Resolve(in)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c1)
	assert.Equal(t, c1, c2)
}

func TestCacheTransparency(t *testing.T) {
	e, rec := newRecorded()
	in := button(iddl.ProminenceHero)

	first := e.Resolve(in)
	second := e.Resolve(in)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, rec.sets, "second call must not run the pipeline")
	assert.Equal(t, []bool{false, true}, rec.completes)

	s := e.CacheStats()
	assert.Equal(t, cache.Stats{Size: 1, MaxSize: cache.DefaultSize, Hits: 1, Misses: 1}, s)
}

func TestEquivalentInputsShareEntry(t *testing.T) {
	e, rec := newRecorded()

	explicit := iddl.TokenInput{
		Role:       "Card",
		Prominence: iddl.ProminenceStandard,
		Intent:     iddl.IntentNeutral,
		Context:    iddl.DefaultContext(),
	}
	e.Resolve(iddl.TokenInput{Role: "Card"})
	e.Resolve(explicit)

	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 1, rec.hits)
}

func TestDistinctInputsMiss(t *testing.T) {
	e, rec := newRecorded()

	base := button(iddl.ProminenceStandard)
	hover := base
	hover.State.Hover = true
	ctxHover := base
	ctxHover.Context.State.Interaction = iddl.InteractionHover

	e.Resolve(base)
	e.Resolve(hover)
	e.Resolve(ctxHover)

	assert.Equal(t, 3, rec.misses)
	assert.Equal(t, 0, rec.hits)
	assert.Equal(t, 3, e.CacheStats().Size)
}

func TestEviction(t *testing.T) {
	e, rec := newRecorded(WithCacheSize(2))

	for _, role := range []string{"Button", "Card", "Text"} {
		e.Resolve(iddl.TokenInput{Role: role})
	}

	s := e.CacheStats()
	assert.Equal(t, 2, s.Size)
	assert.Equal(t, 2, s.MaxSize)
	assert.Equal(t, uint64(1), s.Evictions)
	require.Len(t, rec.evictions, 1)
	assert.Contains(t, rec.evictions[0], `role="Button"`)

	// the evicted input is recomputed
	e.Resolve(iddl.TokenInput{Role: "Button"})
	assert.Equal(t, 4, rec.misses)
}

func TestClearCache(t *testing.T) {
	e, rec := newRecorded()
	in := button(iddl.ProminenceHero)

	e.Resolve(in)
	e.ClearCache()
	assert.Equal(t, 0, e.CacheStats().Size)

	e.Resolve(in)
	assert.Equal(t, 2, rec.misses)
	assert.Equal(t, 0, rec.hits)
	assert.Empty(t, rec.evictions, "clearing is not eviction")
}

func boostedTheme(t *testing.T) *theme.Theme {
	t.Helper()
	var f theme.File
	f.Name = "boosted"
	f.Prominence.Offset = map[string]int{"Hero": 2}
	th, err := theme.Build(f)
	require.NoError(t, err)
	return th
}

func TestSetTheme(t *testing.T) {
	e, rec := newRecorded()
	in := button(iddl.ProminenceHero)

	assert.Equal(t, "text-lg", e.Resolve(in).Typography.Size)

	boosted := boostedTheme(t)
	e.SetTheme(boosted)
	assert.Same(t, boosted, e.Theme())
	assert.Equal(t, 0, e.CacheStats().Size, "own cache is cleared on theme change")
	assert.Equal(t, "text-xl", e.Resolve(in).Typography.Size)

	e.SetTheme(theme.Default())
	assert.Equal(t, "text-lg", e.Resolve(in).Typography.Size)
	assert.Equal(t, 3, rec.misses)

	// same fingerprint keeps the cache
	e.SetTheme(theme.Default())
	e.Resolve(in)
	assert.Equal(t, 1, rec.hits)

	e.SetTheme(nil)
	assert.Same(t, theme.Default(), e.Theme())
}

func TestSharedCacheIsolatesThemes(t *testing.T) {
	shared := cache.NewLRU[iddl.TokenOutput](10)
	plain := New(WithCache(shared))
	boosted := New(WithCache(shared), WithTheme(boostedTheme(t)))
	in := button(iddl.ProminenceHero)

	assert.Equal(t, "text-lg", plain.Resolve(in).Typography.Size)
	assert.Equal(t, "text-xl", boosted.Resolve(in).Typography.Size)
	assert.Equal(t, "text-lg", plain.Resolve(in).Typography.Size)

	s := shared.Stats()
	assert.Equal(t, 2, s.Size)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(2), s.Misses)

	// an injected cache survives a theme change
	plain.SetTheme(boostedTheme(t))
	assert.Equal(t, 2, shared.Stats().Size)
	assert.Equal(t, "text-xl", plain.Resolve(in).Typography.Size)
	assert.Equal(t, uint64(2), shared.Stats().Hits)
}

func TestInputKeyCoversEveryField(t *testing.T) {
	base := iddl.TokenInput{Role: "Button"}.Normalize()
	mutations := map[string]func(*iddl.TokenInput){
		"role":              func(in *iddl.TokenInput) { in.Role = "Card" },
		"section_role":      func(in *iddl.TokenInput) { in.SectionRole = "Header" },
		"page_role":         func(in *iddl.TokenInput) { in.PageRole = "Application" },
		"section_type":      func(in *iddl.TokenInput) { in.SectionType = "Bar" },
		"prominence":        func(in *iddl.TokenInput) { in.Prominence = iddl.ProminenceHero },
		"intent":            func(in *iddl.TokenInput) { in.Intent = iddl.IntentBrand },
		"density":           func(in *iddl.TokenInput) { in.Density = iddl.DensityCompact },
		"hover":             func(in *iddl.TokenInput) { in.State.Hover = true },
		"active":            func(in *iddl.TokenInput) { in.State.Active = true },
		"focus":             func(in *iddl.TokenInput) { in.State.Focus = true },
		"selected":          func(in *iddl.TokenInput) { in.State.Selected = true },
		"disabled":          func(in *iddl.TokenInput) { in.State.Disabled = true },
		"separation":        func(in *iddl.TokenInput) { in.Separation = iddl.SeparationBorder },
		"space":             func(in *iddl.TokenInput) { in.Context.Ancestry.Space = iddl.SpaceCanvas },
		"depth":             func(in *iddl.TokenInput) { in.Context.Ancestry.Depth = 3 },
		"parent_level":      func(in *iddl.TokenInput) { in.Context.Ancestry.ParentLevel = 1 },
		"count":             func(in *iddl.TokenInput) { in.Context.Siblings.Count = 2 },
		"index":             func(in *iddl.TokenInput) { in.Context.Siblings.Index = 1 },
		"first":             func(in *iddl.TokenInput) { in.Context.Siblings.IsFirst = false },
		"last":              func(in *iddl.TokenInput) { in.Context.Siblings.IsLast = false },
		"only":              func(in *iddl.TokenInput) { in.Context.Siblings.IsOnly = false },
		"effective_density": func(in *iddl.TokenInput) { in.Context.Inheritance.EffectiveDensity = iddl.DensityCompact },
		"interaction":       func(in *iddl.TokenInput) { in.Context.State.Interaction = iddl.InteractionHover },
		"selection":         func(in *iddl.TokenInput) { in.Context.State.Selection = iddl.SelectionSelected },
		"validity":          func(in *iddl.TokenInput) { in.Context.State.Validity = iddl.ValidityInvalid },
		"to_previous":       func(in *iddl.TokenInput) { in.Context.Relationship.ToPrevious = iddl.RelationDistinct },
		"to_next":           func(in *iddl.TokenInput) { in.Context.Relationship.ToNext = iddl.RelationDistinct },
		"parent_flow":       func(in *iddl.TokenInput) { in.Context.Layout.ParentFlow = iddl.FlowHorizontal },
		"self_flow":         func(in *iddl.TokenInput) { in.Context.Layout.SelfFlow = iddl.FlowVertical },
	}

	seen := map[string]string{InputKey(base): "base"}
	for name, mutate := range mutations {
		in := base
		mutate(&in)
		key := InputKey(in)
		if prev, dup := seen[key]; dup {
			t.Errorf("%s produces the same key as %s", name, prev)
		}
		seen[key] = name
	}
}

func TestInputKeyQuotesStrings(t *testing.T) {
	a := iddl.TokenInput{Role: `A"|section_role="B`}
	b := iddl.TokenInput{Role: "A", SectionRole: "B"}
	assert.NotEqual(t, InputKey(a), InputKey(b))
}

func TestConcurrentResolve(t *testing.T) {
	e := New(WithCacheSize(8))
	roles := []string{"Button", "Card", "Text", "Input", "Header", "Sidebar", "Modal", "Avatar", "Badge", "List"}
	want := make(map[string]iddl.TokenOutput, len(roles))
	for _, role := range roles {
		want[role] = New().Resolve(iddl.TokenInput{Role: role})
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				role := roles[(g+i)%len(roles)]
				got := e.Resolve(iddl.TokenInput{Role: role})
				if got != want[role] {
					t.Errorf("%s: cached output differs from a fresh resolve", role)
				}
				if i == 50 && g == 0 {
					e.ClearCache()
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, e.CacheStats().Size, 8)
}

func TestTrace(t *testing.T) {
	e := New()
	in := button(iddl.ProminenceHero)

	steps, out := e.Trace(in)
	require.Len(t, steps, len(e.Stages()))
	assert.Equal(t, e.Resolve(in), out)
	assert.Equal(t, uint64(0), e.CacheStats().Hits, "trace bypasses the cache")

	empty := New(WithPipeline(pipeline.New()))
	steps, _ = empty.Trace(in)
	assert.Empty(t, steps)
}

func TestResolveAll(t *testing.T) {
	e := New()
	inputs := make([]iddl.TokenInput, 5)
	for i := range inputs {
		inputs[i] = iddl.TokenInput{Role: fmt.Sprintf("Item%d", i%2)}
	}

	outs := e.ResolveAll(context.Background(), inputs)
	require.Len(t, outs, 5)
	assert.Equal(t, outs[0], outs[2])
	assert.Equal(t, uint64(3), e.CacheStats().Hits)
}
