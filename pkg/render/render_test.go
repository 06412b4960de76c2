package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/pipeline"
	"github.com/matzehuels/iddl/pkg/strategy"
)

func resolve(in iddl.TokenInput) pipeline.Resolved {
	return pipeline.Default().Run(strategy.Default(), in)
}

func TestRenderHeroButton(t *testing.T) {
	in := iddl.TokenInput{Role: "Button", Prominence: iddl.ProminenceHero, Intent: iddl.IntentBrand}
	out := Default().Render(resolve(in))

	assert.Equal(t, "text-lg", out.Typography.Size)
	assert.Equal(t, "font-bold", out.Typography.Weight)
	assert.Equal(t, "text-primary-foreground", out.Typography.Color)
	assert.Equal(t, "bg-primary", out.Surface.Background)
	assert.Equal(t, 1.0, out.Surface.Opacity)
	assert.Equal(t, "px-6 py-3", out.Spacing.Padding) // 24×12 at Hero
	assert.Equal(t, "gap-1", out.Spacing.Gap)
	assert.Equal(t, "rounded-xl", out.Geometry.Radius)
	assert.Equal(t, "border-0", out.Geometry.Width)
	assert.Equal(t, "shadow-sm", out.Shadow.BoxShadow)
	assert.Equal(t, Transition, out.ExtraClasses)
	assert.Equal(t, 0, out.Elevation)
}

func TestRenderTextRole(t *testing.T) {
	in := iddl.TokenInput{Role: "Title", Prominence: iddl.ProminenceHero}
	in.Context.Ancestry.Space = iddl.SpaceCanvas
	out := Default().Render(resolve(in))

	assert.Equal(t, "text-8xl", out.Typography.Size)
	assert.Equal(t, "font-black", out.Typography.Weight)
	assert.Equal(t, "leading-normal", out.Typography.LineHeight)
	assert.Equal(t, "font-display", out.Typography.FontFamily)
	assert.Equal(t, Transition+" tracking-tighter", out.ExtraClasses)
	assert.Equal(t, "bg-transparent", out.Surface.Background)
}

func TestRenderBorders(t *testing.T) {
	header := iddl.TokenInput{Role: "Header"}
	header.Context.Ancestry.Space = iddl.SpaceBar
	out := Default().Render(resolve(header))
	assert.Equal(t, "border-b", out.Geometry.Width)
	assert.Equal(t, "border-border/50", out.Geometry.Color)

	field := iddl.TokenInput{Role: "Input", Intent: iddl.IntentCritical}
	out = Default().Render(resolve(field))
	assert.Equal(t, "border", out.Geometry.Width)
	assert.Equal(t, "border-destructive/30", out.Geometry.Color)

	card := iddl.TokenInput{Role: "Card", Separation: iddl.SeparationBorder, Intent: iddl.IntentBrand}
	out = Default().Render(resolve(card))
	assert.Equal(t, "border-primary/40", out.Geometry.Color)
}

func TestRenderDisabled(t *testing.T) {
	in := iddl.TokenInput{Role: "Button", State: iddl.InteractionState{Disabled: true, Focus: true}}
	out := Default().Render(resolve(in))
	assert.Equal(t, "bg-muted", out.Surface.Background)
	assert.Equal(t, "text-muted-foreground/50", out.Typography.Color)
	assert.Equal(t, 0.5, out.Surface.Opacity)
	assert.Equal(t, "outline outline-2 outline-primary/60", out.Geometry.Outline)
	assert.Equal(t, "outline-offset-2", out.Geometry.OutlineOffset)
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "p-4", Padding(16, 16))
	assert.Equal(t, "px-4 py-2", Padding(16, 8))
	assert.Equal(t, "p-0", Padding(0, 0))
	assert.Equal(t, "px-1 py-0.5", Padding(4, 2))
}

func TestBorderWidth(t *testing.T) {
	tests := []struct {
		style, sides, want string
	}{
		{strategy.BorderStyleNone, strategy.BorderAll, "border-0"},
		{strategy.BorderStyleSubtle, strategy.BorderAll, "border"},
		{strategy.BorderStyleStrong, strategy.BorderAll, "border-2"},
		{strategy.BorderStyleDefault, strategy.BorderRight, "border-r"},
		{strategy.BorderStyleDefault, strategy.BorderTop, "border-t"},
		{"", strategy.BorderTop, "border-0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BorderWidth(tt.style, tt.sides), "%s/%s", tt.style, tt.sides)
	}
}

func TestUnknownTokenFallsBack(t *testing.T) {
	v := Default()
	assert.Equal(t, "bg-transparent", v.Surface.Get("surface.mystery"))
	assert.Equal(t, "text-base", v.FontSize.Get("scale.9xl"))
}

func TestApply(t *testing.T) {
	v, err := Default().Apply(map[string]map[string]string{
		"surface": {"surface.raised": "bg-slate-50"},
		"shadow":  {"shadow.modal": "shadow-2xl"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bg-slate-50", v.Surface.Get("surface.raised"))
	assert.Equal(t, "shadow-2xl", v.Shadow.Get("shadow.modal"))
	assert.Equal(t, "bg-card", Default().Surface.Get("surface.raised"))

	_, err = Default().Apply(map[string]map[string]string{"colours": {"a": "b"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidTheme))
}

func TestTableNames(t *testing.T) {
	names := Default().TableNames()
	assert.Len(t, names, 14)
	assert.Contains(t, names, "surface")
	assert.Contains(t, names, "outline_offset")
}

func TestEntries(t *testing.T) {
	entries := Default().Entries()
	assert.Len(t, entries, 14)
	assert.Equal(t, "bg-card", entries["surface"]["surface.raised"])

	v, err := Default().Apply(entries)
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), v.Entries())
}
