package cli

import (
	"github.com/spf13/cobra"

	iddlio "github.com/matzehuels/iddl/pkg/io"
)

// cacheCommand creates the cache inspection command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the result cache",
	}

	cmd.AddCommand(c.cacheStatsCommand())

	return cmd
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats [batch-file]",
		Short: "Show cache statistics",
		Long: `Show cache statistics.

The cache lives in memory for the duration of one process. Without an
argument the statistics of a fresh engine are shown; with a batch file the
batch is resolved first, which shows how well its inputs share entries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			eng, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				b, err := iddlio.ImportBatch(c.FS, args[0])
				if err != nil {
					return err
				}
				iddlio.Run(ctx, eng, b)
			}

			stats := eng.CacheStats()
			if format != "" {
				f, err := iddlio.ParseFormat(format)
				if err != nil {
					return err
				}
				return iddlio.Encode(w, f, stats)
			}
			printCacheStats(w, stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "print as json|yaml|toml instead of text")

	return cmd
}
