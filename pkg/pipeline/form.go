package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/scale"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Form resolves the size step and the gap to the previous sibling.
//
// The step is the space's base step, moved by the prominence offset and the
// depth penalty, then capped at the space's ceiling and clamped to the scale.
// The gap is the relationship's base step scaled by density and space,
// rounded half-up to a step index. Hidden nodes get no gap.
func Form(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	space := in.Context.Ancestry.Space

	step := scale.Size.Index(t.SpaceBase.Get(space)) +
		t.ProminenceOffset.Get(in.Prominence) +
		t.Depth(in.Context.Ancestry.Depth)
	if ceiling := scale.Size.Index(t.SpaceCeiling.Get(space)); step > ceiling {
		step = ceiling
	}
	r.Scale = scale.Size.At(step)

	if in.Prominence == iddl.ProminenceHidden {
		r.Gap = scale.GapNone
		return r
	}
	base := scale.Gap.Index(t.RelationGap.Get(in.Context.Relationship.ToPrevious))
	raw := float64(base) * t.DensityGap.Get(in.Density) * t.SpaceGap.Get(space)
	r.Gap = scale.Gap.At(scale.RoundHalfUp(raw))
	return r
}
