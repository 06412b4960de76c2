package strategy

import (
	"github.com/matzehuels/iddl/pkg/iddl"
)

// Tables holds every lookup table the resolution stages consult. A Tables
// value is immutable: overrides produce a new value through [Tables.Apply].
type Tables struct {
	// Form
	SpaceBase        Table[iddl.Space, string] // space → base scale step
	SpaceCeiling     Table[iddl.Space, string] // space → maximum scale step
	ProminenceOffset Table[iddl.Prominence, int]
	DepthPenalty     []int // index = depth, the last entry applies to deeper nodes
	RelationGap      Table[iddl.Relation, string]
	DensityGap       Table[iddl.Density, float64]
	SpaceGap         Table[iddl.Space, float64]

	// Tone
	SpaceSurface        Table[iddl.Space, string]
	SpaceShadow         Table[iddl.Space, string]
	SpaceElevation      Table[iddl.Space, int]
	SpaceBorderStyle    Table[iddl.Space, string]
	SpaceBorderPosition Table[iddl.Space, string]
	RoleBorderPosition  Table[string, string] // "" means no override

	// Roles
	RoleCategory    Table[string, Category]
	RoleTextStyle   Table[string, TextStyle]
	SeparationTiers Table[Category, Table[iddl.Prominence, Tier]]

	// Spacing
	RolePadding       Table[string, Padding]
	SectionScale      Table[string, float64]
	DensityPadding    Table[iddl.Density, float64]
	ProminencePadding Table[iddl.Prominence, float64]

	// Geometry and surface
	RadiusRatio Table[string, float64]
	Clipping    Table[string, bool]
	RoleBackdrop    Table[string, bool] // floating roles drawn over a blurred backdrop
	SectionBackdrop Table[string, bool] // section types drawn over a blurred backdrop

	// Typography
	Typography Table[Scheme, TypeTable]
}

// ProminenceHiddenOffset drives a hidden node to the smallest step.
const ProminenceHiddenOffset = -99

// Default returns the built-in tables.
func Default() Tables {
	t := defaults
	t.DepthPenalty = append([]int(nil), defaults.DepthPenalty...)
	return t
}

// Category returns the category of role.
func (t Tables) Category(role string) Category { return t.RoleCategory.Get(role) }

// Tier returns the separation tier of role at prominence p.
func (t Tables) Tier(role string, p iddl.Prominence) Tier {
	return t.SeparationTiers.Get(t.Category(role)).Get(p)
}

// Depth returns the attenuation penalty for depth.
func (t Tables) Depth(depth int) int {
	if len(t.DepthPenalty) == 0 || depth < 0 {
		return 0
	}
	if depth >= len(t.DepthPenalty) {
		depth = len(t.DepthPenalty) - 1
	}
	return t.DepthPenalty[depth]
}

var defaults = Tables{
	SpaceBase: MustTable("space.base", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceFloat: "scale.xs", iddl.SpaceBar: "scale.sm", iddl.SpaceRail: "scale.sm",
		iddl.SpaceWell: "scale.xs", iddl.SpaceSurface: "scale.md", iddl.SpaceCanvas: "scale.lg",
	}),
	SpaceCeiling: MustTable("space.ceiling", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceFloat: "scale.sm", iddl.SpaceBar: "scale.md", iddl.SpaceRail: "scale.md",
		iddl.SpaceWell: "scale.sm", iddl.SpaceSurface: "scale.xl", iddl.SpaceCanvas: "scale.4xl",
	}),
	ProminenceOffset: MustTable("prominence.offset", iddl.ProminenceStandard, map[iddl.Prominence]int{
		iddl.ProminenceHero: 1, iddl.ProminenceStrong: 0, iddl.ProminenceStandard: 0,
		iddl.ProminenceElevated: 0, iddl.ProminenceSubtle: -1, iddl.ProminenceNone: -1,
		iddl.ProminenceHidden: ProminenceHiddenOffset,
	}),
	DepthPenalty: []int{0, 0, 0, -1, -2},
	RelationGap: MustTable("relation.gap", iddl.RelationRelated, map[iddl.Relation]string{
		iddl.RelationAtomic: "space.2xs", iddl.RelationRelated: "space.xs", iddl.RelationGrouped: "space.sm",
		iddl.RelationSeparate: "space.md", iddl.RelationDistinct: "space.lg",
	}),
	DensityGap: MustTable("density.gap", iddl.DensityStandard, map[iddl.Density]float64{
		iddl.DensityCompact: 0.66, iddl.DensityStandard: 1.0, iddl.DensityComfortable: 1.5,
	}),
	SpaceGap: MustTable("space.gap", iddl.SpaceSurface, map[iddl.Space]float64{
		iddl.SpaceFloat: 0.66, iddl.SpaceBar: 0.66, iddl.SpaceWell: 0.75,
		iddl.SpaceRail: 0.85, iddl.SpaceSurface: 1.0, iddl.SpaceCanvas: 1.25,
	}),

	SpaceSurface: MustTable("space.surface", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceCanvas: SurfaceBase, iddl.SpaceBar: SurfaceBase, iddl.SpaceRail: SurfaceBase,
		iddl.SpaceWell: SurfaceSunken, iddl.SpaceSurface: SurfaceRaised, iddl.SpaceFloat: SurfaceOverlay,
	}),
	SpaceShadow: MustTable("space.shadow", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceCanvas: ShadowNone, iddl.SpaceBar: ShadowNone, iddl.SpaceRail: ShadowNone,
		iddl.SpaceWell: ShadowNone, iddl.SpaceSurface: ShadowSubtle, iddl.SpaceFloat: ShadowFloat,
	}),
	SpaceElevation: MustTable("space.elevation", iddl.SpaceSurface, map[iddl.Space]int{
		iddl.SpaceCanvas: 0, iddl.SpaceBar: 0, iddl.SpaceRail: 0,
		iddl.SpaceWell: 0, iddl.SpaceSurface: 0, iddl.SpaceFloat: 1,
	}),
	SpaceBorderStyle: MustTable("space.border_style", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceCanvas: BorderStyleNone, iddl.SpaceBar: BorderStyleSubtle, iddl.SpaceRail: BorderStyleSubtle,
		iddl.SpaceWell: BorderStyleDefault, iddl.SpaceSurface: BorderStyleSubtle, iddl.SpaceFloat: BorderStyleNone,
	}),
	SpaceBorderPosition: MustTable("space.border_position", iddl.SpaceSurface, map[iddl.Space]string{
		iddl.SpaceCanvas: BorderNone, iddl.SpaceBar: BorderBottom, iddl.SpaceRail: BorderRight,
		iddl.SpaceWell: BorderAll, iddl.SpaceSurface: BorderAll, iddl.SpaceFloat: BorderNone,
	}),
	RoleBorderPosition: MustTable("role.border_position", DefaultKey, map[string]string{
		DefaultKey: "",
		"Header":   BorderBottom, "Bar": BorderBottom, "Toolbar": BorderBottom,
		"Footer": BorderTop, "Panel": BorderTop,
		"PrimarySidebar": BorderRight, "Sidebar": BorderRight,
		"SecondarySidebar": BorderLeft, "Aside": BorderLeft,
	}),

	RoleCategory:  MustTable("role.category", DefaultKey, roleCategories),
	RoleTextStyle: MustTable("role.text_style", DefaultKey, roleTextStyles),
	SeparationTiers: MustTable("separation", CategoryContent, separationTiers),

	RolePadding: MustTable("role.padding", DefaultKey, map[string]Padding{
		DefaultKey:      {X: 1.0, Y: 1.0},
		"Button":        {X: 1.0, Y: 0.5},
		"IconButton":    {X: 0.5, Y: 0.5},
		"Option":        {X: 0.5, Y: 0.25},
		"Input":         {X: 0.75, Y: 0.625},
		"Card":          {X: 1.25, Y: 1.25},
		"Container":     {X: 1.25, Y: 1.25},
		"Modal":         {X: 2.0, Y: 2.0},
		"DialogContent": {X: 1.5, Y: 1.5},
		"ListItem":      {X: 0.75, Y: 0.375},
	}),
	SectionScale: MustTable("section.scale", DefaultKey, map[string]float64{
		DefaultKey: 1.0,
		"Bar":      0.75, "Rail": 0.75, "Panel": 0.75, "List": 0.5,
		"Form": 1.0, "Float": 0.75, "Stage": 1.25, "Layer": 1.5,
	}),
	DensityPadding: MustTable("density.padding", iddl.DensityStandard, map[iddl.Density]float64{
		iddl.DensityCompact: 0.75, iddl.DensityStandard: 1.0, iddl.DensityComfortable: 1.25,
	}),
	ProminencePadding: MustTable("prominence.padding", iddl.ProminenceStandard, map[iddl.Prominence]float64{
		iddl.ProminenceHero: 1.5, iddl.ProminenceStrong: 1.25, iddl.ProminenceStandard: 1.0,
		iddl.ProminenceElevated: 1.0, iddl.ProminenceSubtle: 0.75, iddl.ProminenceNone: 0.75,
		iddl.ProminenceHidden: 0,
	}),

	RadiusRatio: MustTable("role.radius_ratio", DefaultKey, map[string]float64{
		DefaultKey: 0.5,
		"Button":   0.67, "Option": 0.5,
		"Pill": 999, "Chip": 999, "Badge": 999, "Avatar": 999,
		"Card": 0.6, "Modal": 0.5, "DialogContent": 0.5, "Popover": 0.5, "Tooltip": 0.5,
		"Input": 0.5, "Select": 0.5, "TextArea": 0.4,
		"Panel": 0, "Bar": 0, "Rail": 0, "Stage": 0,
	}),
	Clipping: MustTable("role.clipping", DefaultKey, map[string]bool{
		DefaultKey: false,
		"ImageCard": true, "Avatar": true, "MediaContainer": true, "Canvas": true,
	}),
	RoleBackdrop: MustTable("role.backdrop", DefaultKey, map[string]bool{
		DefaultKey: false,
		"Modal":    true, "Popover": true, "Toast": true, "Drawer": true,
	}),
	SectionBackdrop: MustTable("section.backdrop", DefaultKey, map[string]bool{
		DefaultKey: false,
		"Bar":      true, "Float": true,
	}),

	Typography: MustTable("typography", SchemeProduct, typeSchemes),
}
