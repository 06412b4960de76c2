package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Surface resolves opacity and backdrop blur, and clears the fill of nodes
// that separate by gap alone. Floating roles blur, as do nodes inside bar
// and float sections.
func Surface(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	r.Opacity = 1
	switch {
	case in.Prominence == iddl.ProminenceHidden:
		r.Opacity = 0
	case in.Flags().Disabled:
		r.Opacity = DisabledOpacity
	}

	r.Blur = strategy.BlurNone
	if t.RoleBackdrop.Get(in.Role) || (in.SectionType != "" && t.SectionBackdrop.Get(in.SectionType)) {
		r.Blur = strategy.BlurMd
	}

	// A ghost keeps state and intent fills but draws no strategy surface.
	if !r.Contained() && r.Rule == "" && r.Background == r.Surface {
		r.Background = strategy.SurfaceTransparent
	}
	return r
}
