// Package pkg provides the libraries behind iddl, an intent-driven design
// token resolver.
//
// # Overview
//
// A composition layer describes each component by what it means (a Hero
// Button with Brand intent, sitting on a surface, second of three siblings)
// and iddl decides how it looks: spacing, fill, border, radius, typography
// and shadow, expressed as presentation classes. Resolution is a pure
// function of the input and the active theme, so results are memoized.
//
// # Architecture
//
// The data flow through iddl:
//
//	TokenInput (role, prominence, intent, density, context)
//	         ↓
//	    [engine] normalize, build a cache key, check the cache
//	         ↓
//	    [pipeline] eight stages over the [strategy] tables
//	         ↓
//	    [render] semantic tokens → class vocabulary
//	         ↓
//	TokenOutput (classes per bucket, opacity, elevation)
//
// # Main Packages
//
// [iddl] - Input and output types, the closed enumerations and their
// parsers, normalization and validation.
//
// [scale] - The size and gap scales the pipeline steps along.
//
// [strategy] - The lookup tables that encode every design decision, and the
// theme overrides that replace them.
//
// [pipeline] - The resolution stages: form, tone, color, spacing, surface,
// geometry, typography and shadow. [pipeline.Pipeline.Trace] records what
// each stage produced.
//
// [render] - The class vocabulary that turns semantic tokens into classes.
//
// [engine] - The public resolver: theme selection, input keys, result
// caching and observability hooks.
//
// [theme] - Theme files (TOML, YAML, JSON) with environment overrides, and a
// watcher that reloads a theme when its file changes.
//
// [cache] - A generic bounded LRU cache, a no-op cache and key helpers.
//
// [io] - Batch files in and resolution reports out.
//
// [preview] - Terminal swatches that approximate a resolved component.
//
// [observability] - Hook interfaces for resolution, cache and theme events.
//
// [errors] - Coded errors and input validation.
//
// # Quick Start
//
//	e := engine.New()
//	out := e.Resolve(iddl.TokenInput{
//	    Role:       "Button",
//	    Prominence: iddl.ProminenceHero,
//	    Intent:     iddl.IntentBrand,
//	})
//	fmt.Println(out.Classes())
//
// Load a theme and swap it in at runtime:
//
//	th, err := theme.NewLoader(nil).Load(ctx, "brand.toml")
//	if err != nil {
//	    return err
//	}
//	e.SetTheme(th)
//
// [iddl]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/iddl
// [scale]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/scale
// [strategy]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/strategy
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/pipeline
// [pipeline.Pipeline.Trace]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/pipeline#Pipeline.Trace
// [render]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/render
// [engine]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/engine
// [theme]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/theme
// [cache]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/io
// [preview]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/preview
// [observability]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/iddl/pkg/errors
package pkg
