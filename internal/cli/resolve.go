package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
	iddlio "github.com/matzehuels/iddl/pkg/io"
	"github.com/matzehuels/iddl/pkg/pipeline"
	"github.com/matzehuels/iddl/pkg/preview"
)

// Output formats accepted by "resolve --output".
const (
	outputTable   = "table"
	outputClasses = "classes"
)

// resolveOptions holds the flags of the resolve command.
type resolveOptions struct {
	input  inputFlags
	output string
	trace  bool
	swatch bool
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve <role>",
		Short: "Resolve the design tokens for one component",
		Long: `Resolve the design tokens for one component.

The role names the component (Button, Card, Heading, ...). Every other
property of the node and its context is given by flags; omitted flags take
their defaults.`,
		Example: `  iddl resolve Button --prominence hero --intent brand
  iddl resolve Container --space canvas --density comfortable --to-previous grouped
  iddl resolve Card --output json
  iddl resolve Button --disabled --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input.build(args[0])
			if err != nil {
				return err
			}
			return c.runResolve(cmd, in, opts)
		},
	}

	opts.input.register(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table|classes|json|yaml|toml")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "show what each pipeline stage changed")
	cmd.Flags().BoolVar(&opts.swatch, "swatch", false, "render a terminal preview of the result")

	return cmd
}

// runResolve resolves in and writes the result in the selected format.
func (c *CLI) runResolve(cmd *cobra.Command, in iddl.TokenInput, opts resolveOptions) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	eng, err := c.newEngine(ctx)
	if err != nil {
		return err
	}

	if opts.trace {
		steps, out := eng.Trace(in)
		printTrace(w, steps)
		fmt.Fprintln(w)
		return writeOutput(w, out, opts.output)
	}

	out := eng.ResolveContext(ctx, in)
	if err := writeOutput(w, out, opts.output); err != nil {
		return err
	}
	if opts.swatch {
		fmt.Fprintln(w)
		fmt.Fprintln(w, preview.Swatch(in.Role, out))
	}
	return nil
}

// writeOutput writes out to w in format.
func writeOutput(w io.Writer, out iddl.TokenOutput, format string) error {
	switch strings.ToLower(format) {
	case outputTable:
		fmt.Fprintln(w, renderTable([]string{"bucket", "field", "class"}, outputRows(out)))
		return nil
	case outputClasses:
		_, err := fmt.Fprintln(w, out.Classes())
		return err
	}
	f, err := iddlio.ParseFormat(format)
	if err != nil {
		return errors.New(errors.ErrCodeUnsupported, "unsupported output %q (must be one of: table, classes, json, yaml, toml)", format)
	}
	return iddlio.Encode(w, f, out)
}

// outputRows flattens out into table rows, skipping empty classes.
func outputRows(out iddl.TokenOutput) [][]string {
	var rows [][]string
	add := func(bucket, field, class string) {
		if class != "" {
			rows = append(rows, []string{bucket, field, class})
		}
	}

	add("spacing", "gap", out.Spacing.Gap)
	add("spacing", "padding", out.Spacing.Padding)
	add("surface", "background", out.Surface.Background)
	add("surface", "opacity", strconv.FormatFloat(out.Surface.Opacity, 'g', -1, 64))
	add("surface", "blur", out.Surface.Blur)
	add("geometry", "width", out.Geometry.Width)
	add("geometry", "color", out.Geometry.Color)
	add("geometry", "radius", out.Geometry.Radius)
	add("geometry", "outline", out.Geometry.Outline)
	add("geometry", "outline_offset", out.Geometry.OutlineOffset)
	add("geometry", "overflow", out.Geometry.Overflow)
	add("typography", "size", out.Typography.Size)
	add("typography", "weight", out.Typography.Weight)
	add("typography", "line_height", out.Typography.LineHeight)
	add("typography", "color", out.Typography.Color)
	add("typography", "font_family", out.Typography.FontFamily)
	add("shadow", "box_shadow", out.Shadow.BoxShadow)
	add("extra", "classes", out.ExtraClasses)
	add("", "elevation", strconv.Itoa(out.Elevation))
	return rows
}

// printTrace prints each stage with the fields it changed.
func printTrace(w io.Writer, steps []pipeline.Step) {
	changes := pipeline.Changes(steps)
	for i, s := range steps {
		fmt.Fprintln(w, StyleTitle.Render(s.Stage)+" "+StyleDim.Render(s.Duration.String()))
		if len(changes[i]) == 0 {
			printDetail(w, "no changes")
			continue
		}
		for _, ch := range changes[i] {
			fmt.Fprintln(w, "  "+StyleHighlight.Render(ch.Field)+" "+
				StyleDim.Render(ch.From+" "+iconArrow)+" "+StyleValue.Render(ch.To))
		}
	}
}
