// Package engine resolves design tokens with memoization.
//
// An [Engine] ties together a theme (strategy tables plus class vocabulary),
// the resolution pipeline and a cache. Resolution is total and synchronous:
// every input produces an output, unknown vocabulary falls back to table
// defaults, and identical inputs always produce identical outputs.
//
// # Usage
//
//	e := engine.New()
//	out := e.Resolve(iddl.TokenInput{
//	    Role:       "Button",
//	    Prominence: iddl.ProminenceHero,
//	    Intent:     iddl.IntentBrand,
//	})
//	fmt.Println(out.Classes())
//
// # Caching
//
// Results are cached by a key that names every output-affecting input field
// (see [InputKey]), prefixed with the theme fingerprint. A second call with
// the same input is served from the cache without running the pipeline.
// Engines may share one cache: different themes never read each other's
// entries. There is no time-based expiry; entries leave the cache only by
// LRU eviction or [Engine.ClearCache].
//
// An Engine is safe for concurrent use.
package engine

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/iddl/pkg/cache"
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/observability"
	"github.com/matzehuels/iddl/pkg/pipeline"
	"github.com/matzehuels/iddl/pkg/theme"
)

// Engine resolves token inputs against a theme.
type Engine struct {
	pipeline  *pipeline.Pipeline
	cache     cache.Cache[iddl.TokenOutput]
	ownsCache bool
	hooks     observability.Hooks
	logger    *log.Logger

	mu    sync.RWMutex
	theme *theme.Theme
	keyer cache.Keyer[iddl.TokenInput]
}

// Option configures an [Engine].
type Option func(*config)

type config struct {
	cache     cache.Cache[iddl.TokenOutput]
	cacheSize int
	theme     *theme.Theme
	pipeline  *pipeline.Pipeline
	hooks     *observability.Hooks
	logger    *log.Logger
}

// WithCache injects a cache, for example one shared between engines.
// The engine never clears an injected cache on theme changes.
func WithCache(c cache.Cache[iddl.TokenOutput]) Option {
	return func(cfg *config) { cfg.cache = c }
}

// WithCacheSize sets the capacity of the engine's own LRU cache. It is
// ignored when WithCache is used. The default is the theme's cache size.
func WithCacheSize(n int) Option {
	return func(cfg *config) { cfg.cacheSize = n }
}

// WithTheme resolves against t instead of the built-in theme.
func WithTheme(t *theme.Theme) Option {
	return func(cfg *config) { cfg.theme = t }
}

// WithPipeline replaces the default pipeline.
func WithPipeline(p *pipeline.Pipeline) Option {
	return func(cfg *config) { cfg.pipeline = p }
}

// WithHooks replaces the globally registered hooks. Nil members are no-ops.
func WithHooks(h observability.Hooks) Option {
	return func(cfg *config) {
		h = h.WithDefaults()
		cfg.hooks = &h
	}
}

// WithLogger sets the engine logger. Engines log at debug level only.
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

// New creates an engine.
func New(opts ...Option) *Engine {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{
		pipeline: cfg.pipeline,
		cache:    cfg.cache,
		logger:   cfg.logger,
	}
	if e.pipeline == nil {
		e.pipeline = pipeline.Default()
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.hooks != nil {
		e.hooks = *cfg.hooks
	} else {
		e.hooks = observability.Global()
	}

	th := cfg.theme
	if th == nil {
		th = theme.Default()
	}
	e.setTheme(th)

	if e.cache == nil {
		size := cfg.cacheSize
		if size <= 0 {
			size = th.CacheSize
		}
		e.cache = cache.NewLRU[iddl.TokenOutput](size, cache.WithEvictFunc(e.evicted))
		e.ownsCache = true
	}
	return e
}

func (e *Engine) evicted(key string) {
	e.logger.Debug("cache eviction", "key", key)
	e.hooks.Cache.OnCacheEvict(context.Background(), key)
}

// Resolve returns the tokens for in.
func (e *Engine) Resolve(in iddl.TokenInput) iddl.TokenOutput {
	return e.ResolveContext(context.Background(), in)
}

// ResolveContext is Resolve with a context passed to hooks. Resolution never
// blocks, so ctx is not checked for cancellation.
func (e *Engine) ResolveContext(ctx context.Context, in iddl.TokenInput) iddl.TokenOutput {
	start := time.Now()
	e.hooks.Resolve.OnResolveStart(ctx, in.Role)

	in = in.Normalize()
	th, keyer := e.current()
	key := keyer.Key(in)

	if out, ok := e.cache.Get(key); ok {
		e.hooks.Cache.OnCacheHit(ctx, key)
		e.hooks.Resolve.OnResolveComplete(ctx, in.Role, true, time.Since(start))
		return out
	}
	e.hooks.Cache.OnCacheMiss(ctx, key)

	out := th.Vocabulary.Render(e.pipeline.Run(th.Tables, in))
	e.cache.Set(key, out)
	e.hooks.Cache.OnCacheSet(ctx, key)

	e.logger.Debug("resolved", "role", in.Role, "theme", th.Name)
	e.hooks.Resolve.OnResolveComplete(ctx, in.Role, false, time.Since(start))
	return out
}

// ResolveAll resolves each input in order.
func (e *Engine) ResolveAll(ctx context.Context, inputs []iddl.TokenInput) []iddl.TokenOutput {
	outs := make([]iddl.TokenOutput, len(inputs))
	for i, in := range inputs {
		outs[i] = e.ResolveContext(ctx, in)
	}
	return outs
}

// Trace runs the pipeline for in without the cache and returns the value
// after every stage along with the rendered output.
func (e *Engine) Trace(in iddl.TokenInput) ([]pipeline.Step, iddl.TokenOutput) {
	th, _ := e.current()
	steps := e.pipeline.Trace(th.Tables, in)
	if len(steps) == 0 {
		return steps, th.Vocabulary.Render(pipeline.Resolved{})
	}
	return steps, th.Vocabulary.Render(steps[len(steps)-1].Resolved)
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	e.logger.Debug("cache cleared")
}

// CacheStats reports cache occupancy and lifetime counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.Stats()
}

// Theme returns the current theme.
func (e *Engine) Theme() *theme.Theme {
	th, _ := e.current()
	return th
}

// Stages returns the pipeline stage names.
func (e *Engine) Stages() []string {
	return e.pipeline.Stages()
}

// SetTheme switches to t. Results cached for the previous theme are never
// served for t. An engine that created its own cache clears it, since the
// old entries can no longer be reached.
func (e *Engine) SetTheme(t *theme.Theme) {
	if t == nil {
		return
	}
	prev := e.Theme()
	e.setTheme(t)
	if prev.Fingerprint == t.Fingerprint {
		return
	}
	if e.ownsCache {
		e.ClearCache()
	}
	e.logger.Debug("theme changed", "from", prev.Name, "to", t.Name, "fingerprint", t.Short())
}

func (e *Engine) setTheme(t *theme.Theme) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.theme = t
	e.keyer = cache.NewScopedKeyer(InputKeyer, "theme:"+t.Fingerprint+":")
}

func (e *Engine) current() (*theme.Theme, cache.Keyer[iddl.TokenInput]) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.theme, e.keyer
}
