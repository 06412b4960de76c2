package iddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/iddl/pkg/errors"
)

func TestParseProminence(t *testing.T) {
	p, err := ParseProminence("hero")
	require.NoError(t, err)
	assert.Equal(t, ProminenceHero, p)

	p, err = ParseProminence("")
	require.NoError(t, err)
	assert.Equal(t, ProminenceStandard, p)

	_, err = ParseProminence("loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidEnum))
	assert.Contains(t, err.Error(), "Hero, Strong")
}

func TestParseSpaceCaseInsensitive(t *testing.T) {
	s, err := ParseSpace("RAIL")
	require.NoError(t, err)
	assert.Equal(t, SpaceRail, s)
}

func TestIntentKey(t *testing.T) {
	assert.Equal(t, "brand", IntentBrand.Key())
	assert.Equal(t, "neutral", IntentNeutral.Key())
}

func TestProminenceLevels(t *testing.T) {
	assert.True(t, ProminenceHero.IsHigh())
	assert.True(t, ProminenceStrong.IsHigh())
	assert.False(t, ProminenceStandard.IsHigh())
	assert.True(t, ProminenceHidden.IsLow())
	assert.False(t, ProminenceElevated.IsLow())
}

func TestContextNormalize(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		assert.Equal(t, DefaultContext(), Context{}.Normalize())
	})

	t.Run("sibling flags derived", func(t *testing.T) {
		c := Context{Siblings: Siblings{Count: 3, Index: 2, IsFirst: true}}.Normalize()
		assert.False(t, c.Siblings.IsFirst)
		assert.True(t, c.Siblings.IsLast)
		assert.False(t, c.Siblings.IsOnly)
	})

	t.Run("index out of range", func(t *testing.T) {
		c := Context{Siblings: Siblings{Count: 2, Index: 5}}.Normalize()
		assert.Equal(t, 0, c.Siblings.Index)
		assert.True(t, c.Siblings.IsFirst)
	})

	t.Run("negative depth clamped", func(t *testing.T) {
		c := Context{Ancestry: Ancestry{Depth: -3, ParentLevel: -1}}.Normalize()
		assert.Equal(t, 0, c.Ancestry.Depth)
		assert.Equal(t, 0, c.Ancestry.ParentLevel)
	})
}

func TestInputNormalizeDensity(t *testing.T) {
	tests := []struct {
		name      string
		own       Density
		inherited Density
		want      Density
	}{
		{"own wins", DensityCompact, DensityComfortable, DensityCompact},
		{"inherited", "", DensityComfortable, DensityComfortable},
		{"default", "", "", DensityStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := TokenInput{Role: "Button", Density: tt.own}
			in.Context.Inheritance.EffectiveDensity = tt.inherited
			got := in.Normalize()
			assert.Equal(t, tt.want, got.Density)
			assert.Equal(t, tt.want, got.Context.Inheritance.EffectiveDensity)
		})
	}
}

func TestInputNormalizeDefaults(t *testing.T) {
	in := TokenInput{Role: "Card"}.Normalize()
	assert.Equal(t, ProminenceStandard, in.Prominence)
	assert.Equal(t, IntentNeutral, in.Intent)
	assert.Equal(t, SpaceSurface, in.Context.Ancestry.Space)
}

func TestFlags(t *testing.T) {
	in := TokenInput{Role: "Button", State: InteractionState{Hover: true}}
	in.Context.State = NodeState{Selection: SelectionIndeterminate, Validity: ValidityPending, Interaction: InteractionDisabled}

	f := in.Flags()
	assert.True(t, f.Hover)
	assert.True(t, f.Disabled)
	assert.True(t, f.Indeterminate)
	assert.True(t, f.Pending)
	assert.False(t, f.Selected)
	assert.False(t, f.Invalid)
	assert.True(t, f.Interactive())
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := TokenInput{Role: "Button", Prominence: ProminenceHero, Intent: IntentBrand}
		in.Context.Ancestry.Space = SpaceCanvas
		assert.NoError(t, in.Validate())
	})

	t.Run("aggregates problems", func(t *testing.T) {
		in := TokenInput{Role: "", Prominence: "Loud", Intent: "brand"}
		in.Context.Ancestry.Depth = -1
		err := in.Validate()
		require.Error(t, err)
		msg := err.Error()
		assert.Contains(t, msg, "role cannot be empty")
		assert.Contains(t, msg, "invalid prominence")
		assert.Contains(t, msg, "invalid intent")
		assert.Contains(t, msg, "depth cannot be negative")
	})

	t.Run("sibling index", func(t *testing.T) {
		in := TokenInput{Role: "ListItem"}
		in.Context.Siblings = Siblings{Count: 2, Index: 2}
		err := in.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})
}

func TestClasses(t *testing.T) {
	out := TokenOutput{
		Spacing:      Spacing{Gap: "gap-4", Padding: " p-4 "},
		Surface:      Surface{Background: "bg-surface", Opacity: 1},
		Typography:   Typography{Size: "text-base"},
		ExtraClasses: "transition-all",
		Elevation:    1,
	}
	assert.Equal(t, "gap-4 p-4 bg-surface text-base transition-all", out.Classes())
	assert.Equal(t, "", TokenOutput{}.Classes())
}
