package cli

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"

	"github.com/matzehuels/iddl/pkg/iddl"
)

// inputFlags holds the raw flag values describing one token input. Enum
// flags stay strings until build so every parse failure is reported at once.
type inputFlags struct {
	sectionRole string
	pageRole    string
	sectionType string

	prominence string
	intent     string
	density    string
	separation string

	hover    bool
	active   bool
	focus    bool
	selected bool
	disabled bool

	space       string
	depth       int
	parentLevel int

	siblingCount int
	siblingIndex int

	effectiveDensity string

	interaction string
	selection   string
	validity    string

	toPrevious string
	toNext     string

	parentFlow string
	selfFlow   string
}

// register adds the input flags to fs.
func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.sectionRole, "section-role", "", "role of the enclosing section")
	fs.StringVar(&f.pageRole, "page-role", "", "role of the enclosing page")
	fs.StringVar(&f.sectionType, "section-type", "", "type of the enclosing section (bar, float, ...)")

	fs.StringVarP(&f.prominence, "prominence", "p", "", "prominence: "+choices(iddl.Prominences))
	fs.StringVarP(&f.intent, "intent", "i", "", "intent: "+choices(iddl.Intents))
	fs.StringVarP(&f.density, "density", "d", "", "density: "+choices(iddl.Densities))
	fs.StringVar(&f.separation, "separation", "", "separation hint: "+choices(iddl.Separations))

	fs.BoolVar(&f.hover, "hover", false, "node is hovered")
	fs.BoolVar(&f.active, "active", false, "node is pressed")
	fs.BoolVar(&f.focus, "focus", false, "node has keyboard focus")
	fs.BoolVar(&f.selected, "selected", false, "node is selected")
	fs.BoolVar(&f.disabled, "disabled", false, "node is disabled")

	fs.StringVarP(&f.space, "space", "s", "", "ancestor space: "+choices(iddl.Spaces))
	fs.IntVar(&f.depth, "depth", 0, "nesting depth (0 = page)")
	fs.IntVar(&f.parentLevel, "parent-level", 0, "accumulated elevation of the parent")

	fs.IntVar(&f.siblingCount, "siblings", 0, "number of siblings including the node")
	fs.IntVar(&f.siblingIndex, "index", 0, "position among siblings")

	fs.StringVar(&f.effectiveDensity, "inherited-density", "", "density inherited from ancestors")

	fs.StringVar(&f.interaction, "interaction", "", "context interaction: "+choices(iddl.Interactions))
	fs.StringVar(&f.selection, "selection", "", "context selection: "+choices(iddl.Selections))
	fs.StringVar(&f.validity, "validity", "", "context validity: "+choices(iddl.Validities))

	fs.StringVar(&f.toPrevious, "to-previous", "", "relation to previous sibling: "+choices(iddl.Relations))
	fs.StringVar(&f.toNext, "to-next", "", "relation to next sibling: "+choices(iddl.Relations))

	fs.StringVar(&f.parentFlow, "parent-flow", "", "flow of the parent: "+choices(iddl.Flows))
	fs.StringVar(&f.selfFlow, "self-flow", "", "flow of the node itself: "+choices(iddl.Flows))
}

// build turns the flag values and role into a validated token input.
// Omitted enums stay empty so normalization applies its defaults.
func (f *inputFlags) build(role string) (iddl.TokenInput, error) {
	var result *multierror.Error
	parse := func(s string, fn func(string) error) {
		if s == "" {
			return
		}
		if err := fn(s); err != nil {
			result = multierror.Append(result, err)
		}
	}

	in := iddl.TokenInput{
		Role:        role,
		SectionRole: f.sectionRole,
		PageRole:    f.pageRole,
		SectionType: f.sectionType,
		State: iddl.InteractionState{
			Hover:    f.hover,
			Active:   f.active,
			Focus:    f.focus,
			Selected: f.selected,
			Disabled: f.disabled,
		},
	}

	c := &in.Context
	c.Ancestry.Depth = f.depth
	c.Ancestry.ParentLevel = f.parentLevel
	c.Siblings.Count = f.siblingCount
	c.Siblings.Index = f.siblingIndex

	var err error
	parse(f.prominence, func(s string) error { in.Prominence, err = iddl.ParseProminence(s); return err })
	parse(f.intent, func(s string) error { in.Intent, err = iddl.ParseIntent(s); return err })
	parse(f.density, func(s string) error { in.Density, err = iddl.ParseDensity(s); return err })
	parse(f.separation, func(s string) error { in.Separation, err = iddl.ParseSeparation(s); return err })
	parse(f.space, func(s string) error { c.Ancestry.Space, err = iddl.ParseSpace(s); return err })
	parse(f.effectiveDensity, func(s string) error { c.Inheritance.EffectiveDensity, err = iddl.ParseDensity(s); return err })
	parse(f.interaction, func(s string) error { c.State.Interaction, err = iddl.ParseInteraction(s); return err })
	parse(f.selection, func(s string) error { c.State.Selection, err = iddl.ParseSelection(s); return err })
	parse(f.validity, func(s string) error { c.State.Validity, err = iddl.ParseValidity(s); return err })
	parse(f.toPrevious, func(s string) error { c.Relationship.ToPrevious, err = iddl.ParseRelation(s); return err })
	parse(f.toNext, func(s string) error { c.Relationship.ToNext, err = iddl.ParseRelation(s); return err })
	parse(f.parentFlow, func(s string) error { c.Layout.ParentFlow, err = iddl.ParseFlow(s); return err })
	parse(f.selfFlow, func(s string) error { c.Layout.SelfFlow, err = iddl.ParseFlow(s); return err })

	if err := result.ErrorOrNil(); err != nil {
		return iddl.TokenInput{}, err
	}
	if err := in.Validate(); err != nil {
		return iddl.TokenInput{}, err
	}
	return in, nil
}

func choices[T ~string](all []T) string {
	return strings.Join(iddl.Names(all), "|")
}
