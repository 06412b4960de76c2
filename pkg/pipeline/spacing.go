package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/scale"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Spacing resolves padding: the role's base padding scaled by section type,
// density and prominence, snapped to the grid.
func Spacing(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	pad := t.RolePadding.Get(in.Role)
	factor := t.SectionScale.Get(in.SectionType) *
		t.DensityPadding.Get(in.Density) *
		t.ProminencePadding.Get(in.Prominence)

	r.PaddingX = scale.SnapToGrid(pad.X*RemPx*factor, GridPx)
	r.PaddingY = scale.SnapToGrid(pad.Y*RemPx*factor, GridPx)
	return r
}
