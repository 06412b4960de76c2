package iddl

import (
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/iddl/pkg/errors"
)

// TokenInput is everything the engine needs to resolve one node: the node's
// own semantic properties merged with the context inherited from its parent.
type TokenInput struct {
	Role        string `json:"role" yaml:"role" toml:"role"`
	SectionRole string `json:"section_role,omitempty" yaml:"section_role,omitempty" toml:"section_role,omitempty"`
	PageRole    string `json:"page_role,omitempty" yaml:"page_role,omitempty" toml:"page_role,omitempty"`
	SectionType string `json:"section_type,omitempty" yaml:"section_type,omitempty" toml:"section_type,omitempty"`

	Prominence Prominence `json:"prominence,omitempty" yaml:"prominence,omitempty" toml:"prominence,omitempty"`
	Intent     Intent     `json:"intent,omitempty" yaml:"intent,omitempty" toml:"intent,omitempty"`
	Density    Density    `json:"density,omitempty" yaml:"density,omitempty" toml:"density,omitempty"`

	State      InteractionState `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
	Separation Separation       `json:"separation,omitempty" yaml:"separation,omitempty" toml:"separation,omitempty"`

	Context Context `json:"context" yaml:"context" toml:"context"`
}

// InteractionState holds the node's own state flags. They are independent of
// each other and are merged with the context state by [TokenInput.Flags].
type InteractionState struct {
	Hover    bool `json:"hover,omitempty" yaml:"hover,omitempty" toml:"hover,omitempty"`
	Active   bool `json:"active,omitempty" yaml:"active,omitempty" toml:"active,omitempty"`
	Focus    bool `json:"focus,omitempty" yaml:"focus,omitempty" toml:"focus,omitempty"`
	Selected bool `json:"selected,omitempty" yaml:"selected,omitempty" toml:"selected,omitempty"`
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// StateFlags is the effective state of a node after merging its own flags with
// the state carried by its context.
type StateFlags struct {
	Disabled      bool
	Selected      bool
	Indeterminate bool
	Invalid       bool
	Pending       bool
	Active        bool
	Hover         bool
	Focus         bool
}

// Interactive reports whether any pointer or keyboard interaction is active.
func (f StateFlags) Interactive() bool { return f.Hover || f.Active || f.Focus }

// Flags merges the node's own state flags with its context state.
func (in TokenInput) Flags() StateFlags {
	s := in.Context.State
	return StateFlags{
		Disabled:      in.State.Disabled || s.Interaction == InteractionDisabled,
		Selected:      in.State.Selected || s.Selection == SelectionSelected,
		Indeterminate: s.Selection == SelectionIndeterminate,
		Invalid:       s.Validity == ValidityInvalid,
		Pending:       s.Validity == ValidityPending,
		Active:        in.State.Active || s.Interaction == InteractionActive,
		Hover:         in.State.Hover || s.Interaction == InteractionHover,
		Focus:         in.State.Focus || s.Interaction == InteractionFocus,
	}
}

// Normalize returns in with every omitted axis set to its default and its
// context normalized.
//
// Density resolves in order: the node's own density, the density inherited
// through the context, Standard. Both fields carry the result afterwards.
func (in TokenInput) Normalize() TokenInput {
	if in.Prominence == "" {
		in.Prominence = ProminenceStandard
	}
	if in.Intent == "" {
		in.Intent = IntentNeutral
	}
	in.Context = in.Context.Normalize()
	if in.Density == "" {
		in.Density = in.Context.Inheritance.EffectiveDensity
	}
	in.Context.Inheritance.EffectiveDensity = in.Density
	return in
}

// Validate checks that in only uses known vocabulary. Resolution accepts any
// input, so Validate is meant for data arriving from outside the process
// (CLI flags, batch files) where a typo should be reported rather than
// silently resolved through a default. All problems are reported together.
func (in TokenInput) Validate() error {
	var result *multierror.Error

	add := func(err error) {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}

	add(errors.ValidateRole(in.Role))
	add(errors.ValidateOptionalRole(in.SectionRole))
	add(errors.ValidateOptionalRole(in.PageRole))
	add(errors.ValidateOptionalRole(in.SectionType))
	add(checkEnum("prominence", in.Prominence, Prominences))
	add(checkEnum("intent", in.Intent, Intents))
	add(checkEnum("density", in.Density, Densities))
	add(checkEnum("separation", in.Separation, Separations))

	c := in.Context
	add(checkEnum("space", c.Ancestry.Space, Spaces))
	add(errors.ValidateDepth("depth", c.Ancestry.Depth))
	add(errors.ValidateDepth("parent_level", c.Ancestry.ParentLevel))
	add(errors.ValidateDepth("siblings.count", c.Siblings.Count))
	if c.Siblings.Count > 0 && (c.Siblings.Index < 0 || c.Siblings.Index >= c.Siblings.Count) {
		add(errors.New(errors.ErrCodeInvalidInput, "siblings.index %d out of range for count %d", c.Siblings.Index, c.Siblings.Count))
	}
	add(checkEnum("effective_density", c.Inheritance.EffectiveDensity, Densities))
	add(checkEnum("interaction", c.State.Interaction, Interactions))
	add(checkEnum("selection", c.State.Selection, Selections))
	add(checkEnum("validity", c.State.Validity, Validities))
	add(checkEnum("to_previous", c.Relationship.ToPrevious, Relations))
	add(checkEnum("to_next", c.Relationship.ToNext, Relations))
	add(checkEnum("parent_flow", c.Layout.ParentFlow, Flows))
	add(checkEnum("self_flow", c.Layout.SelfFlow, Flows))

	return result.ErrorOrNil()
}

// checkEnum requires an exact match: Parse helpers canonicalize case, so a
// mismatched case here means the value bypassed them.
func checkEnum[T ~string](field string, v T, all []T) error {
	if v == "" || contains(all, v) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidEnum, "invalid %s: %q (must be one of: %s)",
		field, string(v), strings.Join(Names(all), ", "))
}
