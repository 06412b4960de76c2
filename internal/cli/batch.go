package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	iddlio "github.com/matzehuels/iddl/pkg/io"
)

// batchOptions holds the flags of the batch command.
type batchOptions struct {
	output string
	format string
}

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOptions

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Resolve every input of a batch file",
		Long: `Resolve every input of a batch file.

The batch is a JSON, YAML or TOML file with an "inputs" list; each entry is a
token input with an optional "id". Use "-" to read the batch from stdin
together with --format.

Without --output a summary table is printed. With --output the full report
(inputs, outputs and class strings) is written to the given file in the
format of its extension.`,
		Example: `  iddl batch components.yaml
  iddl batch components.yaml -o report.json
  cat components.json | iddl batch - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to this file (.json, .yaml or .toml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "batch format when reading stdin, or report format for stdout")

	return cmd
}

// runBatch loads, resolves and reports a batch.
func (c *CLI) runBatch(cmd *cobra.Command, path string, opts batchOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	b, err := c.readBatch(cmd, path, opts.format)
	if err != nil {
		return err
	}
	logger.Debug("loaded batch", "path", path, "inputs", len(b.Inputs))
	if len(b.Inputs) == 0 {
		printWarning(w, "Batch %s has no inputs", path)
		return nil
	}

	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	rep := iddlio.Run(ctx, eng, b)
	th := eng.Theme()
	rep.Theme = th.Name
	rep.Fingerprint = th.Fingerprint
	prog.done(fmt.Sprintf("Resolved %d inputs", len(rep.Results)))

	switch {
	case opts.output != "":
		if err := iddlio.ExportReport(c.FS, rep, opts.output); err != nil {
			return err
		}
		printSuccess(w, "Resolved %d inputs", len(rep.Results))
		printFile(w, opts.output)
	case opts.format != "" && path != "-":
		f, err := iddlio.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		return iddlio.WriteReport(w, rep, f)
	default:
		rows := make([][]string, len(rep.Results))
		for i, r := range rep.Results {
			rows[i] = []string{r.ID, r.Input.Role, r.Classes}
		}
		fmt.Fprintln(w, renderTable([]string{"id", "role", "classes"}, rows))
	}

	printStats(w, len(rep.Results), eng.CacheStats())
	return nil
}

// readBatch reads the batch at path, or from stdin when path is "-".
func (c *CLI) readBatch(cmd *cobra.Command, path, format string) (iddlio.Batch, error) {
	if path != "-" {
		return iddlio.ImportBatch(c.FS, path)
	}
	f, err := iddlio.ParseFormat(format)
	if err != nil {
		return iddlio.Batch{}, err
	}
	return iddlio.ReadBatch(cmd.InOrStdin(), f)
}
