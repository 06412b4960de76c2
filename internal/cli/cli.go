// Package cli implements the iddl command-line interface.
//
// This package provides commands for resolving intent inputs into design
// tokens and presentation classes, resolving whole batch files, and
// inspecting themes. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resolve: Resolve one component and print its classes, trace or swatch
//   - batch: Resolve every input in a TOML, YAML or JSON batch file
//   - explore: Step through prominence, intent and space interactively
//   - watch: Re-resolve an input whenever the theme file changes
//   - theme: Validate theme files and dump the class vocabulary
//   - cache: Report result cache statistics
//   - completion: Generate shell completion scripts
//
// # Themes
//
// Every command resolves against the theme named by --theme (-t), falling
// back to $IDDL_THEME and then to the built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/iddl/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iddl/pkg/buildinfo"
	"github.com/matzehuels/iddl/pkg/engine"
	"github.com/matzehuels/iddl/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "iddl"

	// envTheme names the environment variable read when --theme is not set.
	envTheme = "IDDL_THEME"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// FS is the filesystem theme and batch files are read from.
	FS afero.Fs

	themePath string
	cacheSize int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		FS:     afero.NewOsFs(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "iddl resolves intent-driven design tokens",
		Long:         `iddl turns semantic component descriptions (role, prominence, intent, density and the context a component sits in) into concrete design tokens and presentation classes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.themePath, "theme", "t", "", "theme file (TOML, YAML or JSON; default $"+envTheme+")")
	root.PersistentFlags().IntVar(&c.cacheSize, "cache-size", 0, "result cache capacity (default from theme)")

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Engine Factory
// =============================================================================

// loadTheme loads the theme selected by --theme or $IDDL_THEME, or returns
// the built-in theme when neither is set.
func (c *CLI) loadTheme(ctx context.Context) (*theme.Theme, error) {
	path := c.themePath
	if path == "" {
		path = os.Getenv(envTheme)
	}
	if path == "" {
		return theme.Default(), nil
	}
	th, err := theme.NewLoader(c.FS).Load(ctx, path)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("loaded theme", "name", th.Name, "path", path, "fingerprint", th.Short())
	return th, nil
}

// newEngine creates an engine for the selected theme.
func (c *CLI) newEngine(ctx context.Context) (*engine.Engine, error) {
	th, err := c.loadTheme(ctx)
	if err != nil {
		return nil, err
	}
	opts := []engine.Option{
		engine.WithTheme(th),
		engine.WithLogger(loggerFromContext(ctx)),
	}
	if c.cacheSize > 0 {
		opts = append(opts, engine.WithCacheSize(c.cacheSize))
	}
	return engine.New(opts...), nil
}
