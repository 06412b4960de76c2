package iddl

import (
	"strings"

	"github.com/matzehuels/iddl/pkg/errors"
)

// Prominence is how visually important a node is.
type Prominence string

// Prominence levels.
const (
	ProminenceHero     Prominence = "Hero"     // maximum emphasis (page title, primary CTA)
	ProminenceStrong   Prominence = "Strong"   // emphasized, below hero
	ProminenceStandard Prominence = "Standard" // default weight
	ProminenceSubtle   Prominence = "Subtle"   // secondary, de-emphasized
	ProminenceElevated Prominence = "Elevated" // lifted off its surface with a shadow
	ProminenceNone     Prominence = "None"     // no visual weight of its own
	ProminenceHidden   Prominence = "Hidden"   // must not be displayed
)

// Prominences lists every prominence level, strongest first.
var Prominences = []Prominence{
	ProminenceHero, ProminenceStrong, ProminenceStandard, ProminenceSubtle,
	ProminenceElevated, ProminenceNone, ProminenceHidden,
}

// IsHigh reports whether p calls for a solid, saturated treatment.
func (p Prominence) IsHigh() bool {
	return p == ProminenceHero || p == ProminenceStrong
}

// IsLow reports whether p calls for a ghost treatment.
func (p Prominence) IsLow() bool {
	return p == ProminenceSubtle || p == ProminenceNone || p == ProminenceHidden
}

// Intent is the semantic color category of a node.
type Intent string

// Intents.
const (
	IntentNeutral  Intent = "Neutral"
	IntentBrand    Intent = "Brand"
	IntentPositive Intent = "Positive"
	IntentCaution  Intent = "Caution"
	IntentCritical Intent = "Critical"
	IntentInfo     Intent = "Info"
)

// Intents lists every intent.
var Intents = []Intent{
	IntentNeutral, IntentBrand, IntentPositive, IntentCaution, IntentCritical, IntentInfo,
}

// Key returns the lowercase token segment for the intent ("brand", "critical").
func (i Intent) Key() string { return strings.ToLower(string(i)) }

// Density is the spacing compactness setting.
type Density string

// Densities.
const (
	DensityComfortable Density = "Comfortable"
	DensityStandard    Density = "Standard"
	DensityCompact     Density = "Compact"
)

// Densities lists every density.
var Densities = []Density{DensityComfortable, DensityStandard, DensityCompact}

// Space is the elevation category of the region that contains a node.
type Space string

// Space categories.
const (
	SpaceCanvas  Space = "canvas"  // open page background
	SpaceSurface Space = "surface" // raised container such as a card
	SpaceFloat   Space = "float"   // overlay layer such as a popover or modal
	SpaceWell    Space = "well"    // inset, tightly packed region
	SpaceBar     Space = "bar"     // horizontal band such as a header or toolbar
	SpaceRail    Space = "rail"    // vertical band such as a sidebar
)

// Spaces lists every space category.
var Spaces = []Space{SpaceCanvas, SpaceSurface, SpaceFloat, SpaceWell, SpaceBar, SpaceRail}

// Separation is the strategy a node uses to set itself apart from its siblings.
type Separation string

// Separation strategies. The empty value lets the engine derive one from the
// node's separation tier.
const (
	SeparationNone    Separation = "none"
	SeparationGap     Separation = "gap"
	SeparationSurface Separation = "surface"
	SeparationBorder  Separation = "border"
)

// Separations lists every explicit separation strategy.
var Separations = []Separation{SeparationNone, SeparationGap, SeparationSurface, SeparationBorder}

// Interaction is the pointer/keyboard interaction state carried by the context.
type Interaction string

// Interaction states.
const (
	InteractionDefault  Interaction = "default"
	InteractionHover    Interaction = "hover"
	InteractionActive   Interaction = "active"
	InteractionFocus    Interaction = "focus"
	InteractionDisabled Interaction = "disabled"
)

// Interactions lists every interaction state.
var Interactions = []Interaction{
	InteractionDefault, InteractionHover, InteractionActive, InteractionFocus, InteractionDisabled,
}

// Selection is the selection state carried by the context.
type Selection string

// Selection states.
const (
	SelectionUnselected    Selection = "unselected"
	SelectionSelected      Selection = "selected"
	SelectionIndeterminate Selection = "indeterminate"
)

// Selections lists every selection state.
var Selections = []Selection{SelectionUnselected, SelectionSelected, SelectionIndeterminate}

// Validity is the validation state carried by the context.
type Validity string

// Validity states.
const (
	ValidityValid   Validity = "valid"
	ValidityInvalid Validity = "invalid"
	ValidityPending Validity = "pending"
)

// Validities lists every validity state.
var Validities = []Validity{ValidityValid, ValidityInvalid, ValidityPending}

// Relation describes how a node relates to an adjacent sibling, from
// tightest to loosest.
type Relation string

// Relations.
const (
	RelationAtomic   Relation = "atomic"
	RelationRelated  Relation = "related"
	RelationGrouped  Relation = "grouped"
	RelationSeparate Relation = "separate"
	RelationDistinct Relation = "distinct"
)

// Relations lists every relation.
var Relations = []Relation{RelationAtomic, RelationRelated, RelationGrouped, RelationSeparate, RelationDistinct}

// Flow is the direction a container lays its children out in.
type Flow string

// Flows.
const (
	FlowVertical   Flow = "vertical"
	FlowHorizontal Flow = "horizontal"
	FlowGrid       Flow = "grid"
	FlowLeaf       Flow = "leaf"
)

// Flows lists every flow.
var Flows = []Flow{FlowVertical, FlowHorizontal, FlowGrid, FlowLeaf}

// =============================================================================
// Parsing
// =============================================================================

// ParseProminence parses s case-insensitively. Empty input yields Standard.
func ParseProminence(s string) (Prominence, error) {
	return parseEnum("prominence", s, Prominences, ProminenceStandard)
}

// ParseIntent parses s case-insensitively. Empty input yields Neutral.
func ParseIntent(s string) (Intent, error) {
	return parseEnum("intent", s, Intents, IntentNeutral)
}

// ParseDensity parses s case-insensitively. Empty input yields Standard.
func ParseDensity(s string) (Density, error) {
	return parseEnum("density", s, Densities, DensityStandard)
}

// ParseSpace parses s case-insensitively. Empty input yields surface.
func ParseSpace(s string) (Space, error) {
	return parseEnum("space", s, Spaces, SpaceSurface)
}

// ParseSeparation parses s case-insensitively. Empty input yields the empty
// (derived) strategy.
func ParseSeparation(s string) (Separation, error) {
	return parseEnum("separation", s, Separations, "")
}

// ParseInteraction parses s case-insensitively. Empty input yields default.
func ParseInteraction(s string) (Interaction, error) {
	return parseEnum("interaction", s, Interactions, InteractionDefault)
}

// ParseSelection parses s case-insensitively. Empty input yields unselected.
func ParseSelection(s string) (Selection, error) {
	return parseEnum("selection", s, Selections, SelectionUnselected)
}

// ParseValidity parses s case-insensitively. Empty input yields valid.
func ParseValidity(s string) (Validity, error) {
	return parseEnum("validity", s, Validities, ValidityValid)
}

// ParseRelation parses s case-insensitively. Empty input yields related.
func ParseRelation(s string) (Relation, error) {
	return parseEnum("relation", s, Relations, RelationRelated)
}

// ParseFlow parses s case-insensitively. Empty input yields vertical.
func ParseFlow(s string) (Flow, error) {
	return parseEnum("flow", s, Flows, FlowVertical)
}

func parseEnum[T ~string](field, s string, all []T, def T) (T, error) {
	if s == "" {
		return def, nil
	}
	for _, v := range all {
		if strings.EqualFold(string(v), s) {
			return v, nil
		}
	}
	return def, errors.New(errors.ErrCodeInvalidEnum, "invalid %s: %q (must be one of: %s)", field, s, strings.Join(Names(all), ", "))
}

// Names returns the string form of every value in all. It is used to build
// CLI help text and validation messages.
func Names[T ~string](all []T) []string {
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = string(v)
	}
	return names
}

func contains[T ~string](all []T, v T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}
