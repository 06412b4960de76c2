package pipeline

import (
	"strings"

	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Typography resolves text treatment. Text roles read a cell of the scheme
// table chosen for the page and space; other roles take their size from the
// form scale and their weight from prominence.
func Typography(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved {
	space := in.Context.Ancestry.Space

	r.TextStyle = t.RoleTextStyle.Get(in.Role)
	r.Family = strategy.FontSans
	if !r.IsText() {
		r.Scheme, r.Text = "", strategy.TypeSpec{}
		r.Weight = weightFor(in.Prominence)
		return r
	}

	r.Scheme = SchemeFor(in)
	r.Text = t.Typography.Get(r.Scheme).Get(r.TextStyle, strategy.LevelOf(in.Prominence))
	r.Weight = ""
	switch {
	case r.Text.Mono:
		r.Family = strategy.FontMono
	case space == iddl.SpaceCanvas && (r.TextStyle == strategy.TextTitle || r.TextStyle == strategy.TextHeading):
		r.Family = strategy.FontDisplay
	}
	return r
}

// SchemeFor picks the typography table for a text node. Application pages
// use Product, or Dense for code and wells. Elsewhere canvases read
// Expressive for hero text and titles and Editorial otherwise, wells and code
// read Dense, and everything else reads Product.
func SchemeFor(in iddl.TokenInput) strategy.Scheme {
	space := in.Context.Ancestry.Space
	dense := space == iddl.SpaceWell || isRole(in.Role, "Code") || isRole(in.Role, "Terminal")

	if isRole(in.PageRole, strategy.PageRoleApplication) {
		if dense {
			return strategy.SchemeDense
		}
		return strategy.SchemeProduct
	}
	switch {
	case space == iddl.SpaceCanvas:
		if in.Prominence == iddl.ProminenceHero || isRole(in.Role, "Title") {
			return strategy.SchemeExpressive
		}
		return strategy.SchemeEditorial
	case space == iddl.SpaceRail || space == iddl.SpaceBar:
		return strategy.SchemeProduct
	case dense:
		return strategy.SchemeDense
	default:
		return strategy.SchemeProduct
	}
}

// isRole compares role names the way strategy tables do, ignoring case.
func isRole(role, name string) bool { return strings.EqualFold(role, name) }

func weightFor(p iddl.Prominence) string {
	switch p {
	case iddl.ProminenceHero, iddl.ProminenceStrong:
		return strategy.WeightBold
	case iddl.ProminenceStandard, iddl.ProminenceElevated:
		return strategy.WeightMedium
	default:
		return strategy.WeightNormal
	}
}
