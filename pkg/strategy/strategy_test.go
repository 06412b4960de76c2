package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
)

func TestDefaultTablesValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestNewTableRequiresDefault(t *testing.T) {
	_, err := NewTable("broken", "Default", map[string]int{"Button": 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTable))

	assert.Panics(t, func() {
		MustTable("broken", "Default", map[string]int{})
	})
}

func TestTableLookup(t *testing.T) {
	tbl := MustTable("t", DefaultKey, map[string]int{DefaultKey: 1, "Button": 2})

	assert.Equal(t, 2, tbl.Get("Button"))
	assert.Equal(t, 2, tbl.Get("button"))
	assert.Equal(t, 1, tbl.Get("Unknown"))

	_, ok := tbl.Lookup("Unknown")
	assert.False(t, ok)
	assert.Equal(t, []string{"Button", DefaultKey}, tbl.Keys())
}

func TestTableWith(t *testing.T) {
	base := MustTable("t", DefaultKey, map[string]int{DefaultKey: 1, "Button": 2})
	over := base.With(map[string]int{"button": 5, "Card": 3})

	assert.Equal(t, 5, over.Get("Button"))
	assert.Equal(t, 3, over.Get("Card"))
	assert.Equal(t, 2, base.Get("Button"), "original table must not change")
	assert.Contains(t, over.Keys(), "Button")
	assert.NotContains(t, over.Keys(), "button")
}

func TestUnknownValuesFallBack(t *testing.T) {
	tb := Default()
	assert.Equal(t, "scale.md", tb.SpaceBase.Get("nowhere"))
	assert.Equal(t, CategoryContent, tb.Category("Gizmo"))
	assert.Equal(t, Padding{X: 1, Y: 1}, tb.RolePadding.Get("Gizmo"))
	assert.Equal(t, 0.5, tb.RadiusRatio.Get("Gizmo"))
	assert.Equal(t, 1.0, tb.SectionScale.Get("Gizmo"))
	assert.Equal(t, SchemeProduct, tb.Typography.DefaultKey())
}

func TestDepthPenalty(t *testing.T) {
	tb := Default()
	want := []int{0, 0, 0, -1, -2, -2, -2}
	for depth, p := range want {
		assert.Equal(t, p, tb.Depth(depth), "depth %d", depth)
	}
	assert.Equal(t, 0, tb.Depth(-1))

	// Default hands out its own copy.
	tb.DepthPenalty[4] = 5
	assert.Equal(t, -2, Default().Depth(4))
}

func TestTier(t *testing.T) {
	tb := Default()
	tests := []struct {
		role string
		p    iddl.Prominence
		want Tier
	}{
		{"Button", iddl.ProminenceHero, TierSurfaceFill},
		{"Button", iddl.ProminenceStandard, TierGhost},
		{"Input", iddl.ProminenceSubtle, TierOutlined},
		{"Card", iddl.ProminenceStandard, TierSurfaceFill},
		{"Card", iddl.ProminenceHero, TierElevated},
		{"Modal", iddl.ProminenceStandard, TierElevated},
		{"Header", iddl.ProminenceStandard, TierOutlined},
		{"Title", iddl.ProminenceHero, TierGhost},
		{"Gizmo", iddl.ProminenceElevated, TierElevated},
	}
	for _, tt := range tests {
		t.Run(tt.role+"/"+string(tt.p), func(t *testing.T) {
			assert.Equal(t, tt.want, tb.Tier(tt.role, tt.p))
		})
	}
	assert.Equal(t, iddl.SeparationBorder, TierOutlined.Separation())
	assert.Equal(t, iddl.SeparationGap, TierGhost.Separation())
}

func TestParseTypeSpec(t *testing.T) {
	ts := ParseTypeSpec("text-8xl tracking-tighter font-black text-text")
	assert.Equal(t, TypeSpec{Size: "text-8xl", Weight: "font-black", Tracking: "tracking-tighter"}, ts)

	ts = ParseTypeSpec("text-xs font-mono leading-tight")
	assert.Equal(t, TypeSpec{Size: "text-xs", LineHeight: "leading-tight", Mono: true}, ts)
}

func TestTypeTableGet(t *testing.T) {
	product := Default().Typography.Get(SchemeProduct)
	assert.Equal(t, "text-lg", product.Get(TextTitle, LevelHero).Size)
	assert.Equal(t, "text-[11px]", product.Get(TextBody, LevelStandard).Size)
	assert.Equal(t, product.Get(TextBody, LevelHero), product.Get("Unknown", LevelHero))
	assert.Equal(t, LevelStandard, LevelOf(iddl.ProminenceSubtle))
}

func TestApply(t *testing.T) {
	var o Overrides
	o.Space.Base = map[string]string{"CANVAS": "scale.xl"}
	o.Role.Padding = map[string]Padding{"gizmo": {X: 2, Y: 1}}
	o.Role.Category = map[string]string{"gizmo": "action"}
	o.Separation = map[string]map[string]string{"action": {"standard": "outlined"}}
	o.Typography = map[string]map[string]map[string]string{"product": {"title": {"hero": "text-2xl font-black"}}}

	base := Default()
	got, err := base.Apply(o)
	require.NoError(t, err)

	assert.Equal(t, "scale.xl", got.SpaceBase.Get(iddl.SpaceCanvas))
	assert.Equal(t, "scale.lg", base.SpaceBase.Get(iddl.SpaceCanvas))
	assert.Equal(t, Padding{X: 2, Y: 1}, got.RolePadding.Get("Gizmo"))
	assert.Equal(t, TierOutlined, got.Tier("Gizmo", iddl.ProminenceStandard))
	assert.Equal(t, TierSurfaceFill, got.Tier("Button", iddl.ProminenceHero))

	product := got.Typography.Get(SchemeProduct)
	assert.Equal(t, "text-2xl", product.Get(TextTitle, LevelHero).Size)
	assert.Equal(t, "text-base", product.Get(TextTitle, LevelStrong).Size)
}

func TestApplyBackdrop(t *testing.T) {
	var o Overrides
	o.Role.Backdrop = map[string]bool{"sheet": true}
	o.Section.Backdrop = map[string]bool{"float": false}

	got, err := Default().Apply(o)
	require.NoError(t, err)

	assert.True(t, got.RoleBackdrop.Get("Sheet"))
	assert.False(t, got.SectionBackdrop.Get("Sheet"))
	assert.False(t, got.SectionBackdrop.Get("Float"))
	assert.True(t, got.SectionBackdrop.Get("Bar"))
	assert.False(t, Default().RoleBackdrop.Get("Bar"))
}

func TestApplyReportsEveryProblem(t *testing.T) {
	var o Overrides
	o.Space.Base = map[string]string{"canvas": "scale.huge", "attic": "scale.md"}
	o.Density.Gap = map[string]float64{"compact": 0}
	o.DepthPenalty = []int{0, -1, 0}
	o.Separation = map[string]map[string]string{"widgets": {"standard": "ghost"}}

	base := Default()
	got, err := base.Apply(o)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "scale.huge")
	assert.Contains(t, msg, "attic")
	assert.Contains(t, msg, "factor must be positive")
	assert.Contains(t, msg, "depth_penalty[2]")
	assert.Contains(t, msg, "widgets")
	assert.Equal(t, "scale.lg", got.SpaceBase.Get(iddl.SpaceCanvas), "failed apply returns the original tables")
}
