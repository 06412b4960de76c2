package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/iddl/pkg/cache"
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/preview"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [role]",
		Short: "Interactively explore how axes change the resolved tokens",
		Long: `Interactively explore how axes change the resolved tokens.

Move between axes with up/down and cycle an axis with left/right. The
resolved classes, a terminal swatch and the cache statistics update as you
go.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := c.newEngine(ctx)
			if err != nil {
				return err
			}
			role := "Button"
			if len(args) == 1 {
				role = args[0]
			}
			m := newExploreModel(ctx, eng, role)
			_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
}

// =============================================================================
// exploreModel - Interactive axis explorer
// =============================================================================

// explorer is the part of the engine the explore view needs.
type explorer interface {
	ResolveContext(ctx context.Context, in iddl.TokenInput) iddl.TokenOutput
	CacheStats() cache.Stats
}

// axis is one input dimension the explorer can cycle.
type axis struct {
	name   string
	values []string
	index  int
	set    func(in *iddl.TokenInput, v string)
}

func (a axis) value() string { return a.values[a.index] }

// exploreModel is the bubbletea model behind "iddl explore".
type exploreModel struct {
	ctx    context.Context
	engine explorer
	axes   []axis
	cursor int
	input  iddl.TokenInput
	output iddl.TokenOutput
}

// newExploreModel creates an explorer starting at role with every other
// axis at its default.
func newExploreModel(ctx context.Context, e explorer, role string) exploreModel {
	m := exploreModel{
		ctx:    ctx,
		engine: e,
		axes: []axis{
			{name: "role", values: roleNames(role), set: func(in *iddl.TokenInput, v string) { in.Role = v }},
			enumAxis("prominence", iddl.Prominences, iddl.ProminenceStandard, func(in *iddl.TokenInput, v iddl.Prominence) { in.Prominence = v }),
			enumAxis("intent", iddl.Intents, iddl.IntentNeutral, func(in *iddl.TokenInput, v iddl.Intent) { in.Intent = v }),
			enumAxis("density", iddl.Densities, iddl.DensityStandard, func(in *iddl.TokenInput, v iddl.Density) { in.Density = v }),
			enumAxis("space", iddl.Spaces, iddl.SpaceSurface, func(in *iddl.TokenInput, v iddl.Space) { in.Context.Ancestry.Space = v }),
			enumAxis("interaction", iddl.Interactions, iddl.InteractionDefault, func(in *iddl.TokenInput, v iddl.Interaction) { in.Context.State.Interaction = v }),
			enumAxis("selection", iddl.Selections, iddl.SelectionUnselected, func(in *iddl.TokenInput, v iddl.Selection) { in.Context.State.Selection = v }),
			enumAxis("validity", iddl.Validities, iddl.ValidityValid, func(in *iddl.TokenInput, v iddl.Validity) { in.Context.State.Validity = v }),
			enumAxis("to_previous", iddl.Relations, iddl.RelationRelated, func(in *iddl.TokenInput, v iddl.Relation) { in.Context.Relationship.ToPrevious = v }),
		},
	}
	m.resolve()
	return m
}

// enumAxis builds an axis over all, starting at def.
func enumAxis[T ~string](name string, all []T, def T, set func(*iddl.TokenInput, T)) axis {
	a := axis{name: name, values: iddl.Names(all)}
	for i, v := range all {
		if v == def {
			a.index = i
		}
	}
	a.set = func(in *iddl.TokenInput, v string) { set(in, T(v)) }
	return a
}

// roleNames lists the known roles with first placed first.
func roleNames(first string) []string {
	names := []string{first}
	for _, r := range strategy.Default().RoleCategory.Keys() {
		if r != strategy.DefaultKey && !strings.EqualFold(r, first) {
			names = append(names, r)
		}
	}
	return names
}

// resolve rebuilds the input from the axes and resolves it.
func (m *exploreModel) resolve() {
	var in iddl.TokenInput
	for _, a := range m.axes {
		a.set(&in, a.value())
	}
	m.input = in
	m.output = m.engine.ResolveContext(m.ctx, in)
}

// cycle moves the current axis by delta, wrapping around.
func (m *exploreModel) cycle(delta int) {
	a := &m.axes[m.cursor]
	n := len(a.values)
	a.index = ((a.index+delta)%n + n) % n
	m.resolve()
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.axes)-1 {
				m.cursor++
			}
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ":
			m.cycle(1)
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Tokens"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ axis  ←/→ value  q quit"))
	b.WriteString("\n\n")

	for i, a := range m.axes {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, a.name, a.value())
		b.WriteString(style.Render(line))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d/%d", a.index+1, len(a.values))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleValue.Render(m.output.Classes()))
	b.WriteString("\n\n")
	if sw := preview.Swatch(m.input.Role, m.output); sw != "" {
		b.WriteString(sw)
	} else {
		b.WriteString(listDimStyle.Render("(hidden)"))
	}
	b.WriteString("\n\n")

	s := m.engine.CacheStats()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  cache %d/%d · %d hits · %d misses · %.0f%% hit rate",
		s.Size, s.MaxSize, s.Hits, s.Misses, s.HitRate()*100)))
	b.WriteString("\n")

	return b.String()
}
