package iddl

// Context is a node's structural position, supplied by the composition layer.
// It carries facts, never visual values.
type Context struct {
	Ancestry     Ancestry     `json:"ancestry" yaml:"ancestry" toml:"ancestry"`
	Siblings     Siblings     `json:"siblings" yaml:"siblings" toml:"siblings"`
	Inheritance  Inheritance  `json:"inheritance" yaml:"inheritance" toml:"inheritance"`
	State        NodeState    `json:"state" yaml:"state" toml:"state"`
	Relationship Relationship `json:"relationship" yaml:"relationship" toml:"relationship"`
	Layout       Layout       `json:"layout" yaml:"layout" toml:"layout"`
}

// Ancestry describes the region a node sits in.
type Ancestry struct {
	Space       Space `json:"space,omitempty" yaml:"space,omitempty" toml:"space,omitempty"`
	Depth       int   `json:"depth,omitempty" yaml:"depth,omitempty" toml:"depth,omitempty"`                      // nesting depth, 0 = page
	ParentLevel int   `json:"parent_level,omitempty" yaml:"parent_level,omitempty" toml:"parent_level,omitempty"` // parent's accumulated elevation
}

// Siblings describes a node's position among its siblings.
type Siblings struct {
	Count   int  `json:"count,omitempty" yaml:"count,omitempty" toml:"count,omitempty"`
	Index   int  `json:"index,omitempty" yaml:"index,omitempty" toml:"index,omitempty"`
	IsFirst bool `json:"is_first,omitempty" yaml:"is_first,omitempty" toml:"is_first,omitempty"`
	IsLast  bool `json:"is_last,omitempty" yaml:"is_last,omitempty" toml:"is_last,omitempty"`
	IsOnly  bool `json:"is_only,omitempty" yaml:"is_only,omitempty" toml:"is_only,omitempty"`
}

// Inheritance carries values inherited down the composition tree.
type Inheritance struct {
	EffectiveDensity Density `json:"effective_density,omitempty" yaml:"effective_density,omitempty" toml:"effective_density,omitempty"`
}

// NodeState is the interaction, selection and validity state of a node as
// tracked by the behavior layer.
type NodeState struct {
	Interaction Interaction `json:"interaction,omitempty" yaml:"interaction,omitempty" toml:"interaction,omitempty"`
	Selection   Selection   `json:"selection,omitempty" yaml:"selection,omitempty" toml:"selection,omitempty"`
	Validity    Validity    `json:"validity,omitempty" yaml:"validity,omitempty" toml:"validity,omitempty"`
}

// Relationship describes how a node relates to its neighbors.
type Relationship struct {
	ToPrevious Relation `json:"to_previous,omitempty" yaml:"to_previous,omitempty" toml:"to_previous,omitempty"`
	ToNext     Relation `json:"to_next,omitempty" yaml:"to_next,omitempty" toml:"to_next,omitempty"`
}

// Layout describes the flow of the parent and of the node itself.
type Layout struct {
	ParentFlow Flow `json:"parent_flow,omitempty" yaml:"parent_flow,omitempty" toml:"parent_flow,omitempty"`
	SelfFlow   Flow `json:"self_flow,omitempty" yaml:"self_flow,omitempty" toml:"self_flow,omitempty"`
}

// DefaultContext returns the context of a lone top-level node on a surface
// at standard density with no state.
func DefaultContext() Context {
	return Context{
		Ancestry:     Ancestry{Space: SpaceSurface},
		Siblings:     Siblings{Count: 1, IsFirst: true, IsLast: true, IsOnly: true},
		Inheritance:  Inheritance{EffectiveDensity: DensityStandard},
		State:        NodeState{Interaction: InteractionDefault, Selection: SelectionUnselected, Validity: ValidityValid},
		Relationship: Relationship{ToPrevious: RelationRelated, ToNext: RelationRelated},
		Layout:       Layout{ParentFlow: FlowVertical, SelfFlow: FlowLeaf},
	}
}

// Normalize returns c with every omitted field set to its default.
//
// Sibling flags are derived from Count and Index whenever Count is set, so two
// contexts describing the same position always normalize identically. Negative
// depths and levels are clamped to zero.
func (c Context) Normalize() Context {
	if c.Ancestry.Space == "" {
		c.Ancestry.Space = SpaceSurface
	}
	if c.Ancestry.Depth < 0 {
		c.Ancestry.Depth = 0
	}
	if c.Ancestry.ParentLevel < 0 {
		c.Ancestry.ParentLevel = 0
	}

	if c.Siblings.Count <= 0 {
		c.Siblings = Siblings{Count: 1, IsFirst: true, IsLast: true, IsOnly: true}
	} else {
		if c.Siblings.Index < 0 || c.Siblings.Index >= c.Siblings.Count {
			c.Siblings.Index = 0
		}
		c.Siblings.IsFirst = c.Siblings.Index == 0
		c.Siblings.IsLast = c.Siblings.Index == c.Siblings.Count-1
		c.Siblings.IsOnly = c.Siblings.Count == 1
	}

	if c.Inheritance.EffectiveDensity == "" {
		c.Inheritance.EffectiveDensity = DensityStandard
	}
	if c.State.Interaction == "" {
		c.State.Interaction = InteractionDefault
	}
	if c.State.Selection == "" {
		c.State.Selection = SelectionUnselected
	}
	if c.State.Validity == "" {
		c.State.Validity = ValidityValid
	}
	if c.Relationship.ToPrevious == "" {
		c.Relationship.ToPrevious = RelationRelated
	}
	if c.Relationship.ToNext == "" {
		c.Relationship.ToNext = RelationRelated
	}
	if c.Layout.ParentFlow == "" {
		c.Layout.ParentFlow = FlowVertical
	}
	if c.Layout.SelfFlow == "" {
		c.Layout.SelfFlow = FlowLeaf
	}
	return c
}
