package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/iddl/pkg/errors"
	iddlio "github.com/matzehuels/iddl/pkg/io"
	"github.com/matzehuels/iddl/pkg/theme"
)

// vocabularyDump is the "theme dump" document. It decodes as a theme file.
type vocabularyDump struct {
	Name    string                       `json:"name" yaml:"name" toml:"name"`
	Classes map[string]map[string]string `json:"classes" yaml:"classes" toml:"classes"`
}

// themeCommand creates the theme command.
func (c *CLI) themeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}

	cmd.AddCommand(c.themeValidateCommand())
	cmd.AddCommand(c.themeDumpCommand())

	return cmd
}

// themeValidateCommand creates the "theme validate" subcommand.
func (c *CLI) themeValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a theme file for errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			th, err := theme.NewLoader(c.FS).Load(cmd.Context(), args[0])
			if err != nil {
				printError(w, "%s", errors.UserMessage(err))
				if code := errors.GetCode(err); code != "" {
					printDetail(w, "code: %s", code)
				}
				return err
			}
			printSuccess(w, "Theme %s is valid", StyleHighlight.Render(th.Name))
			printKeyValue(w, "fingerprint", th.Short())
			printKeyValue(w, "cache size", strconv.Itoa(th.CacheSize))
			printNextStep(w, "Try it", "iddl --theme "+args[0]+" resolve Button")
			return nil
		},
	}
}

// themeDumpCommand creates the "theme dump" subcommand.
func (c *CLI) themeDumpCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the class vocabulary of the active theme",
		Long: `Print the class vocabulary of the active theme.

The output has the shape of a theme's [classes] section, so it can be used
as the starting point for a custom theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := iddlio.ParseFormat(format)
			if err != nil {
				return err
			}
			th, err := c.loadTheme(cmd.Context())
			if err != nil {
				return err
			}
			return iddlio.Encode(cmd.OutOrStdout(), f, vocabularyDump{
				Name:    th.Name,
				Classes: th.Vocabulary.Entries(),
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml|yaml|json")

	return cmd
}
