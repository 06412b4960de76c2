// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about token resolution, cache operations, and theme loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Engines read the global registry when they are built and may be given
// their own [Hooks] instead, which keeps tests independent of each other.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetResolveHooks(&myResolveHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	hooks.Resolve.OnResolveStart(ctx, role)
//	// ... run the pipeline ...
//	hooks.Resolve.OnResolveComplete(ctx, role, cached, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Resolve Hooks
// =============================================================================

// ResolveHooks receives events from the token resolver.
type ResolveHooks interface {
	// OnResolveStart is called before the cache lookup.
	OnResolveStart(ctx context.Context, role string)

	// OnResolveComplete is called once a result is available. cached reports
	// whether the pipeline was skipped.
	OnResolveComplete(ctx context.Context, role string, cached bool, duration time.Duration)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string)

	// OnCacheEvict records an entry dropped for capacity.
	OnCacheEvict(ctx context.Context, key string)
}

// =============================================================================
// Theme Hooks
// =============================================================================

// ThemeHooks receives events from theme loading and hot reload.
type ThemeHooks interface {
	// OnThemeLoad records a theme file load attempt.
	OnThemeLoad(ctx context.Context, path, fingerprint string, err error)

	// OnThemeReload records a reload triggered by a file change.
	OnThemeReload(ctx context.Context, path, fingerprint string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopResolveHooks is a no-op implementation of ResolveHooks.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string)                         {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, bool, time.Duration) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)   {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)  {}
func (NoopCacheHooks) OnCacheSet(context.Context, string)   {}
func (NoopCacheHooks) OnCacheEvict(context.Context, string) {}

// NoopThemeHooks is a no-op implementation of ThemeHooks.
type NoopThemeHooks struct{}

func (NoopThemeHooks) OnThemeLoad(context.Context, string, string, error)   {}
func (NoopThemeHooks) OnThemeReload(context.Context, string, string, error) {}

// =============================================================================
// Hook Sets
// =============================================================================

// Hooks bundles one implementation per category.
type Hooks struct {
	Resolve ResolveHooks
	Cache   CacheHooks
	Theme   ThemeHooks
}

// Noop returns a hook set that ignores every event.
func Noop() Hooks {
	return Hooks{
		Resolve: NoopResolveHooks{},
		Cache:   NoopCacheHooks{},
		Theme:   NoopThemeHooks{},
	}
}

// WithDefaults fills nil members with no-op implementations.
func (h Hooks) WithDefaults() Hooks {
	if h.Resolve == nil {
		h.Resolve = NoopResolveHooks{}
	}
	if h.Cache == nil {
		h.Cache = NoopCacheHooks{}
	}
	if h.Theme == nil {
		h.Theme = NoopThemeHooks{}
	}
	return h
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	resolveHooks ResolveHooks = NoopResolveHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	themeHooks   ThemeHooks   = NoopThemeHooks{}
	hooksMu      sync.RWMutex
)

// SetResolveHooks registers custom resolve hooks.
// This should be called once at application startup before any engine is built.
func SetResolveHooks(h ResolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		resolveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any engine is built.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetThemeHooks registers custom theme hooks.
func SetThemeHooks(h ThemeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		themeHooks = h
	}
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return resolveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Theme returns the registered theme hooks.
func Theme() ThemeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return themeHooks
}

// Global returns the currently registered hooks as a set.
func Global() Hooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return Hooks{Resolve: resolveHooks, Cache: cacheHooks, Theme: themeHooks}
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	resolveHooks = NoopResolveHooks{}
	cacheHooks = NoopCacheHooks{}
	themeHooks = NoopThemeHooks{}
}
