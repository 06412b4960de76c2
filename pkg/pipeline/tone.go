package pipeline

import (
	"math"

	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Elevation levels at which shadows escalate.
const (
	floatLevel = 2
	modalLevel = 3
)

// Tone resolves the surface strategy, shadow, border and separation tier.
//
// Low-prominence nodes sit on a transparent surface. The elevation level is
// the parent's level plus the space's own offset, saturating rather than
// overflowing; level 2 raises the shadow to
// float and level 3 to modal. Border position comes from the role when the
// role has an override and from the space otherwise, whatever the prominence.
func Tone(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	space := in.Context.Ancestry.Space

	r.Surface = t.SpaceSurface.Get(space)
	if in.Prominence.IsLow() {
		r.Surface = strategy.SurfaceTransparent
	}

	r.Elevation = addLevels(in.Context.Ancestry.ParentLevel, t.SpaceElevation.Get(space))
	r.Shadow = t.SpaceShadow.Get(space)
	switch {
	case r.Elevation >= modalLevel:
		r.Shadow = strategy.ShadowModal
	case r.Elevation >= floatLevel:
		r.Shadow = raiseShadow(r.Shadow, strategy.ShadowFloat)
	}

	r.BorderStyle = t.SpaceBorderStyle.Get(space)
	r.BorderPosition = t.RoleBorderPosition.Get(in.Role)
	if r.BorderPosition == "" {
		r.BorderPosition = t.SpaceBorderPosition.Get(space)
	}

	r.Category = t.Category(in.Role)
	r.Tier = t.Tier(in.Role, in.Prominence)
	switch {
	case r.Category == strategy.CategoryInput:
		r.Separation = iddl.SeparationBorder
	case in.Separation != "":
		r.Separation = in.Separation
	default:
		r.Separation = r.Tier.Separation()
	}
	return r
}

// addLevels adds two elevation levels, saturating at math.MaxInt and never
// going below zero.
func addLevels(parent, offset int) int {
	if parent < 0 {
		parent = 0
	}
	if offset > 0 && parent > math.MaxInt-offset {
		return math.MaxInt
	}
	if sum := parent + offset; sum > 0 {
		return sum
	}
	return 0
}

// raiseShadow returns the stronger of s and floor. Unknown tokens rank lowest.
func raiseShadow(s, floor string) string {
	if shadowRank(s) < shadowRank(floor) {
		return floor
	}
	return s
}

func shadowRank(s string) int {
	for i, tier := range strategy.ShadowTiers {
		if tier == s {
			return i
		}
	}
	return -1
}
