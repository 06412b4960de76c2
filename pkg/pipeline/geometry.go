package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/scale"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Geometry resolves the final border, radius, outline and overflow.
func Geometry(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	flags := in.Flags()
	isInput := r.Category == strategy.CategoryInput

	r.Border, r.BorderSides, r.BorderTint = strategy.BorderStyleNone, strategy.BorderNone, ""
	if r.Separation == iddl.SeparationBorder {
		r.Border = r.BorderStyle
		if isInput || r.Border == strategy.BorderStyleNone {
			r.Border = strategy.BorderStyleDefault
		}
		r.BorderSides = r.BorderPosition
		if isInput || r.BorderSides == strategy.BorderNone {
			r.BorderSides = strategy.BorderAll
		}
		if in.Intent != iddl.IntentNeutral {
			r.BorderTint = in.Intent.Key()
		}
	}

	if isRole(in.PageRole, strategy.PageRoleImmersive) && frames(r.Category) &&
		(r.Tier == strategy.TierOutlined || r.Tier == strategy.TierElevated || r.Separation == iddl.SeparationSurface) {
		r.Border, r.BorderTint = strategy.BorderStyleHairline, ""
		if r.BorderSides == strategy.BorderNone {
			r.BorderSides = strategy.BorderAll
		}
	}

	r.Radius = strategy.RadiusNone
	if r.Contained() || isInput || flags.Hover {
		r.Radius = RadiusFor(t, in.Role)
	}

	switch {
	case flags.Focus:
		r.Outline = strategy.OutlineFocus
	case flags.Selected:
		r.Outline = strategy.OutlineSelected
	default:
		r.Outline = strategy.OutlineNone
	}

	r.Overflow = strategy.OverflowVisible
	if t.Clipping.Get(in.Role) {
		r.Overflow = strategy.OverflowClip
	}
	return r
}

// RadiusFor derives a role's corner radius from its base horizontal padding
// and radius ratio, snapped to the radius steps. A ratio of 0 gives no
// radius; 999 or more gives a full radius.
func RadiusFor(t strategy.Tables, role string) string {
	ratio := t.RadiusRatio.Get(role)
	switch {
	case ratio <= 0:
		return strategy.RadiusNone
	case ratio >= 999:
		return strategy.RadiusFull
	}
	px := t.RolePadding.Get(role).X * RemPx * ratio
	steps := make([]float64, len(strategy.RadiusSteps))
	for i, s := range strategy.RadiusSteps {
		steps[i] = float64(s)
	}
	return strategy.RadiusTokens[int(scale.Snap(px, steps))]
}

// frames reports whether nodes of category c draw a frame on immersive pages.
func frames(c strategy.Category) bool {
	return c == strategy.CategoryContainer || c == strategy.CategoryOverlay || c == strategy.CategoryStructure
}
