package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Shadow resolves the final shadow from the tone shadow. Elevated nodes cast
// at least a subtle shadow. Nodes without a boundary cast none unless their
// elevation escalated the shadow. Hidden nodes never cast one. The result
// never exceeds shadow.modal.
func Shadow(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	switch {
	case in.Prominence == iddl.ProminenceHidden:
		r.Shadow = strategy.ShadowNone
	case r.Tier == strategy.TierElevated || in.Prominence == iddl.ProminenceElevated:
		r.Shadow = raiseShadow(r.Shadow, strategy.ShadowSubtle)
	case !r.Contained() && r.Elevation < floatLevel:
		r.Shadow = strategy.ShadowNone
	}
	if shadowRank(r.Shadow) < 0 {
		r.Shadow = strategy.ShadowNone
	}
	return r
}
