package strategy

import (
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/scale"
)

// Validate checks every table value against its vocabulary and reports all
// problems at once. The built-in tables always validate.
func (t Tables) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, errors.New(errors.ErrCodeInvalidTable, format, args...))
	}

	onScale := func(table Table[iddl.Space, string], s scale.Scale) {
		table.Each(func(k iddl.Space, v string) {
			if !s.Has(v) {
				fail("%s.%s: %q is not a %s step", table.Name(), k, v, s.Prefix())
			}
		})
	}
	onScale(t.SpaceBase, scale.Size)
	onScale(t.SpaceCeiling, scale.Size)
	t.RelationGap.Each(func(k iddl.Relation, v string) {
		if !scale.Gap.Has(v) {
			fail("%s.%s: %q is not a space step", t.RelationGap.Name(), k, v)
		}
	})

	positive(t.DensityGap, fail)
	positive(t.SpaceGap, fail)
	positive(t.SectionScale, fail)
	positive(t.DensityPadding, fail)
	nonNegative(t.ProminencePadding, fail)
	nonNegative(t.RadiusRatio, fail)

	t.SpaceSurface.Each(func(k iddl.Space, v string) {
		if v == "" {
			fail("%s.%s: surface cannot be empty", t.SpaceSurface.Name(), k)
		}
	})
	oneOf(t.SpaceShadow, ShadowTiers, fail)
	oneOf(t.SpaceBorderStyle, BorderStyles, fail)
	oneOf(t.SpaceBorderPosition, BorderPositions, fail)
	oneOf(t.RoleBorderPosition, append([]string{""}, BorderPositions...), fail)
	t.SpaceElevation.Each(func(k iddl.Space, v int) {
		if v < 0 {
			fail("%s.%s: elevation cannot be negative: %d", t.SpaceElevation.Name(), k, v)
		}
	})

	if len(t.DepthPenalty) == 0 {
		fail("depth_penalty cannot be empty")
	}
	for i, p := range t.DepthPenalty {
		if p > 0 {
			fail("depth_penalty[%d]: penalty cannot be positive: %d", i, p)
		}
		if i > 0 && p > t.DepthPenalty[i-1] {
			fail("depth_penalty[%d]: penalty %d is weaker than at depth %d", i, p, i-1)
		}
	}

	oneOf(t.RoleCategory, Categories, fail)
	oneOf(t.RoleTextStyle, append([]TextStyle{TextNone}, TextStyles...), fail)
	t.SeparationTiers.Each(func(c Category, row Table[iddl.Prominence, Tier]) {
		oneOf(row, Tiers, fail)
	})
	t.RolePadding.Each(func(k string, v Padding) {
		if v.X < 0 || v.Y < 0 {
			fail("%s.%s: padding cannot be negative", t.RolePadding.Name(), k)
		}
	})

	t.Typography.Each(func(s Scheme, table TypeTable) {
		for _, style := range TextStyles {
			for _, level := range Levels {
				if table[style][level].Size == "" {
					fail("%s.%s.%s.%s: size cannot be empty", t.Typography.Name(), s, style, level)
				}
			}
		}
	})

	return result.ErrorOrNil()
}

func positive[K ~string](t Table[K, float64], fail func(string, ...any)) {
	t.Each(func(k K, v float64) {
		if v <= 0 {
			fail("%s.%s: factor must be positive: %v", t.Name(), k, v)
		}
	})
}

func nonNegative[K ~string](t Table[K, float64], fail func(string, ...any)) {
	t.Each(func(k K, v float64) {
		if v < 0 {
			fail("%s.%s: value cannot be negative: %v", t.Name(), k, v)
		}
	})
}

func oneOf[K ~string, V comparable](t Table[K, V], allowed []V, fail func(string, ...any)) {
	t.Each(func(k K, v V) {
		if !slices.Contains(allowed, v) {
			fail("%s.%s: %v is not one of %v", t.Name(), k, v, allowed)
		}
	})
}
