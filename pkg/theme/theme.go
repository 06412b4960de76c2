// Package theme loads strategy and class overrides from theme files.
//
// A theme file (TOML, YAML or JSON) names only the entries it changes:
//
//	name = "compact"
//	cache_size = 500
//
//	[space.base]
//	canvas = "scale.sm"
//
//	[prominence.offset]
//	Hero = 2
//
//	[classes.surface]
//	"surface.raised" = "bg-white dark:bg-zinc-900"
//
// Everything else keeps its built-in value. A loaded [Theme] carries the
// merged strategy tables, the class vocabulary and a fingerprint of the
// overrides; two files that change the same entries in the same way share a
// fingerprint regardless of format, name or cache size.
//
// Files are read through an afero filesystem, so tests and embedders can load
// themes from memory. [Watcher] reloads a theme file when it changes on disk.
package theme

import (
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/iddl/pkg/cache"
	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/render"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// DefaultName is the name of the built-in theme.
const DefaultName = "default"

// File is the decoded content of a theme file.
type File struct {
	Name      string `mapstructure:"name" json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	CacheSize int    `mapstructure:"cache_size" json:"cache_size,omitempty" yaml:"cache_size,omitempty" toml:"cache_size,omitempty"`

	strategy.Overrides `mapstructure:",squash" yaml:",inline"`

	// Classes maps a vocabulary table name to token → class overrides.
	Classes map[string]map[string]string `mapstructure:"classes" json:"classes,omitempty" yaml:"classes,omitempty" toml:"classes,omitempty"`
}

// Theme is a validated set of strategy tables and class vocabulary.
type Theme struct {
	Name        string
	Path        string
	Fingerprint string
	CacheSize   int

	Tables     strategy.Tables
	Vocabulary render.Vocabulary

	// Source is the file the theme was built from.
	Source File
}

var defaultTheme = sync.OnceValue(func() *Theme {
	t, err := Build(File{})
	if err != nil {
		panic(err)
	}
	return t
})

// Default returns the built-in theme. The returned value is shared and must
// not be modified.
func Default() *Theme { return defaultTheme() }

// Build merges f onto the built-in tables and vocabulary. Every problem in f
// is reported in one INVALID_THEME error.
func Build(f File) (*Theme, error) {
	var result *multierror.Error

	tables, err := strategy.Default().Apply(f.Overrides)
	if err != nil {
		result = multierror.Append(result, err)
	}
	vocab, err := render.Default().Apply(f.Classes)
	if err != nil {
		result = multierror.Append(result, err)
	}
	if f.CacheSize < 0 {
		result = multierror.Append(result, errors.New(errors.ErrCodeInvalidTheme, "cache_size cannot be negative: %d", f.CacheSize))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "invalid theme")
	}

	fp, err := Fingerprint(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fingerprint theme")
	}

	name := f.Name
	if name == "" {
		name = DefaultName
	}
	size := f.CacheSize
	if size == 0 {
		size = cache.DefaultSize
	}
	return &Theme{
		Name:        name,
		Fingerprint: fp,
		CacheSize:   size,
		Tables:      tables,
		Vocabulary:  vocab,
		Source:      f,
	}, nil
}

// Fingerprint hashes the parts of f that change resolution output.
func Fingerprint(f File) (string, error) {
	return cache.HashValue(struct {
		Overrides strategy.Overrides
		Classes   map[string]map[string]string
	}{f.Overrides, f.Classes})
}

// Short returns the first 12 characters of the fingerprint.
func (t *Theme) Short() string {
	if len(t.Fingerprint) < 12 {
		return t.Fingerprint
	}
	return t.Fingerprint[:12]
}
