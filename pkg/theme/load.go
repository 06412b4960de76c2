package theme

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/observability"
)

// EnvPrefix prefixes environment overrides, e.g. IDDL_CACHE_SIZE.
const EnvPrefix = "IDDL"

// keyDelimiter separates nested keys. Class tokens contain dots
// ("surface.raised"), so viper's default delimiter cannot be used.
const keyDelimiter = "::"

// Formats lists the supported theme file formats.
var Formats = []string{"toml", "yaml", "json"}

// Loader reads theme files from a filesystem.
type Loader struct {
	fs     afero.Fs
	prefix string
	hooks  observability.ThemeHooks
}

// LoaderOption configures a [Loader].
type LoaderOption func(*Loader)

// WithEnvPrefix replaces EnvPrefix. An empty prefix disables environment
// overrides.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.prefix = prefix }
}

// WithHooks sets the hooks notified of every load.
func WithHooks(h observability.ThemeHooks) LoaderOption {
	return func(l *Loader) {
		if h != nil {
			l.hooks = h
		}
	}
}

// NewLoader creates a loader reading from fs. A nil fs reads the OS
// filesystem.
func NewLoader(fs afero.Fs, opts ...LoaderOption) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	l := &Loader{
		fs:     fs,
		prefix: EnvPrefix,
		hooks:  observability.Theme(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, merges and validates the theme at path.
func (l *Loader) Load(ctx context.Context, path string) (*Theme, error) {
	t, err := l.load(path)
	l.hooks.OnThemeLoad(ctx, path, fingerprintOf(t), err)
	return t, err
}

// Reload is Load for a file that changed; only the emitted hook differs.
func (l *Loader) Reload(ctx context.Context, path string) (*Theme, error) {
	t, err := l.load(path)
	l.hooks.OnThemeReload(ctx, path, fingerprintOf(t), err)
	return t, err
}

func (l *Loader) load(path string) (*Theme, error) {
	f, err := l.Read(path)
	if err != nil {
		return nil, err
	}
	t, err := Build(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s", path)
	}
	t.Path = path
	return t, nil
}

// Read decodes the theme file at path without validating its content.
// Unknown keys are rejected.
func (l *Loader) Read(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", path)
	}
	if !exists {
		return File{}, errors.New(errors.ErrCodeFileNotFound, "theme file not found: %s", path)
	}

	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetFs(l.fs)
	v.SetConfigFile(path)
	v.SetConfigType(format)
	if l.prefix != "" {
		v.SetEnvPrefix(l.prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
		v.AutomaticEnv()
		_ = v.BindEnv("name")
		_ = v.BindEnv("cache_size")
	}

	if err := v.ReadInConfig(); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read theme %s", path)
	}

	var f File
	if err := v.UnmarshalExact(&f); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "decode theme %s", path)
	}
	return f, nil
}

// FormatOf returns the theme format for path's extension.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "toml", "json":
		return ext, nil
	case "yaml", "yml":
		return "yaml", nil
	}
	return "", errors.New(errors.ErrCodeUnsupported,
		"unsupported theme format %q (must be one of: %s)", ext, strings.Join(Formats, ", "))
}

func fingerprintOf(t *Theme) string {
	if t == nil {
		return ""
	}
	return t.Fingerprint
}
