package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/theme"
)

// watchOptions holds the flags of the watch command.
type watchOptions struct {
	input    inputFlags
	debounce time.Duration
}

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch <role>",
		Short: "Re-resolve a component whenever the theme file changes",
		Long: `Re-resolve a component whenever the theme file changes.

The theme given with --theme is watched for changes. Each valid save swaps
the theme in, clears the cached results and prints the new classes. An
invalid save is reported and the previous theme stays active.`,
		Example: `  iddl watch Button --theme brand.toml --prominence hero`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input.build(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			w := cmd.OutOrStdout()

			if c.themePath == "" {
				return errors.New(errors.ErrCodeInvalidInput, "watch requires --theme")
			}
			eng, err := c.newEngine(ctx)
			if err != nil {
				return err
			}

			watcher, err := theme.NewWatcher(c.themePath, theme.NewLoader(c.FS),
				theme.WithDebounce(opts.debounce),
				theme.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			show := func(th *theme.Theme) {
				out := eng.ResolveContext(ctx, in)
				fmt.Fprintln(w, StyleDim.Render(th.Name+"@"+th.Short())+" "+StyleValue.Render(out.Classes()))
			}

			watcher.OnReload(func(th *theme.Theme) error {
				eng.SetTheme(th)
				show(th)
				return nil
			})

			printInfo(w, "Watching %s", watcher.Path())
			show(eng.Theme())
			return watcher.Run(ctx)
		},
	}

	opts.input.register(cmd.Flags())
	cmd.Flags().DurationVar(&opts.debounce, "debounce", theme.DefaultDebounce, "wait this long after the last change before reloading")

	return cmd
}
