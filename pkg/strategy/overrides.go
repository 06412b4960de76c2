package strategy

import (
	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/iddl"
)

// Overrides is the shape of a theme file. Every field is optional; entries
// are merged onto the tables they name and everything else keeps its
// built-in value.
type Overrides struct {
	Space struct {
		Base           map[string]string  `mapstructure:"base" json:"base,omitempty" yaml:"base,omitempty" toml:"base,omitempty"`
		Ceiling        map[string]string  `mapstructure:"ceiling" json:"ceiling,omitempty" yaml:"ceiling,omitempty" toml:"ceiling,omitempty"`
		Gap            map[string]float64 `mapstructure:"gap" json:"gap,omitempty" yaml:"gap,omitempty" toml:"gap,omitempty"`
		Surface        map[string]string  `mapstructure:"surface" json:"surface,omitempty" yaml:"surface,omitempty" toml:"surface,omitempty"`
		Shadow         map[string]string  `mapstructure:"shadow" json:"shadow,omitempty" yaml:"shadow,omitempty" toml:"shadow,omitempty"`
		Elevation      map[string]int     `mapstructure:"elevation" json:"elevation,omitempty" yaml:"elevation,omitempty" toml:"elevation,omitempty"`
		BorderStyle    map[string]string  `mapstructure:"border_style" json:"border_style,omitempty" yaml:"border_style,omitempty" toml:"border_style,omitempty"`
		BorderPosition map[string]string  `mapstructure:"border_position" json:"border_position,omitempty" yaml:"border_position,omitempty" toml:"border_position,omitempty"`
	} `mapstructure:"space" json:"space" yaml:"space" toml:"space"`

	Prominence struct {
		Offset  map[string]int     `mapstructure:"offset" json:"offset,omitempty" yaml:"offset,omitempty" toml:"offset,omitempty"`
		Padding map[string]float64 `mapstructure:"padding" json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	} `mapstructure:"prominence" json:"prominence" yaml:"prominence" toml:"prominence"`

	Density struct {
		Gap     map[string]float64 `mapstructure:"gap" json:"gap,omitempty" yaml:"gap,omitempty" toml:"gap,omitempty"`
		Padding map[string]float64 `mapstructure:"padding" json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
	} `mapstructure:"density" json:"density" yaml:"density" toml:"density"`

	Relation struct {
		Gap map[string]string `mapstructure:"gap" json:"gap,omitempty" yaml:"gap,omitempty" toml:"gap,omitempty"`
	} `mapstructure:"relation" json:"relation" yaml:"relation" toml:"relation"`

	DepthPenalty []int `mapstructure:"depth_penalty" json:"depth_penalty,omitempty" yaml:"depth_penalty,omitempty" toml:"depth_penalty,omitempty"`

	Role struct {
		Category       map[string]string  `mapstructure:"category" json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
		TextStyle      map[string]string  `mapstructure:"text_style" json:"text_style,omitempty" yaml:"text_style,omitempty" toml:"text_style,omitempty"`
		Padding        map[string]Padding `mapstructure:"padding" json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
		RadiusRatio    map[string]float64 `mapstructure:"radius_ratio" json:"radius_ratio,omitempty" yaml:"radius_ratio,omitempty" toml:"radius_ratio,omitempty"`
		BorderPosition map[string]string  `mapstructure:"border_position" json:"border_position,omitempty" yaml:"border_position,omitempty" toml:"border_position,omitempty"`
		Clipping       map[string]bool    `mapstructure:"clipping" json:"clipping,omitempty" yaml:"clipping,omitempty" toml:"clipping,omitempty"`
		Backdrop       map[string]bool    `mapstructure:"backdrop" json:"backdrop,omitempty" yaml:"backdrop,omitempty" toml:"backdrop,omitempty"`
	} `mapstructure:"role" json:"role" yaml:"role" toml:"role"`

	Section struct {
		Scale    map[string]float64 `mapstructure:"scale" json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
		Backdrop map[string]bool    `mapstructure:"backdrop" json:"backdrop,omitempty" yaml:"backdrop,omitempty" toml:"backdrop,omitempty"`
	} `mapstructure:"section" json:"section" yaml:"section" toml:"section"`

	// Separation maps category → prominence → tier.
	Separation map[string]map[string]string `mapstructure:"separation" json:"separation,omitempty" yaml:"separation,omitempty" toml:"separation,omitempty"`

	// Typography maps scheme → text style → level → composite class string.
	Typography map[string]map[string]map[string]string `mapstructure:"typography" json:"typography,omitempty" yaml:"typography,omitempty" toml:"typography,omitempty"`
}

// Apply merges o onto t and validates the result. Enum keys (spaces,
// prominences, densities, relations, schemes, text styles, levels) must be
// known; role and section keys are open. Every problem is reported.
func (t Tables) Apply(o Overrides) (Tables, error) {
	var result *multierror.Error
	fail := func(err error) { result = multierror.Append(result, err) }

	out := t
	out.SpaceBase = t.SpaceBase.With(enumKeys(o.Space.Base, iddl.ParseSpace, fail))
	out.SpaceCeiling = t.SpaceCeiling.With(enumKeys(o.Space.Ceiling, iddl.ParseSpace, fail))
	out.SpaceGap = t.SpaceGap.With(enumKeys(o.Space.Gap, iddl.ParseSpace, fail))
	out.SpaceSurface = t.SpaceSurface.With(enumKeys(o.Space.Surface, iddl.ParseSpace, fail))
	out.SpaceShadow = t.SpaceShadow.With(enumKeys(o.Space.Shadow, iddl.ParseSpace, fail))
	out.SpaceElevation = t.SpaceElevation.With(enumKeys(o.Space.Elevation, iddl.ParseSpace, fail))
	out.SpaceBorderStyle = t.SpaceBorderStyle.With(enumKeys(o.Space.BorderStyle, iddl.ParseSpace, fail))
	out.SpaceBorderPosition = t.SpaceBorderPosition.With(enumKeys(o.Space.BorderPosition, iddl.ParseSpace, fail))

	out.ProminenceOffset = t.ProminenceOffset.With(enumKeys(o.Prominence.Offset, iddl.ParseProminence, fail))
	out.ProminencePadding = t.ProminencePadding.With(enumKeys(o.Prominence.Padding, iddl.ParseProminence, fail))
	out.DensityGap = t.DensityGap.With(enumKeys(o.Density.Gap, iddl.ParseDensity, fail))
	out.DensityPadding = t.DensityPadding.With(enumKeys(o.Density.Padding, iddl.ParseDensity, fail))
	out.RelationGap = t.RelationGap.With(enumKeys(o.Relation.Gap, iddl.ParseRelation, fail))

	out.DepthPenalty = append([]int(nil), t.DepthPenalty...)
	if len(o.DepthPenalty) > 0 {
		out.DepthPenalty = append([]int(nil), o.DepthPenalty...)
	}

	out.RoleCategory = t.RoleCategory.With(convertValues(o.Role.Category, func(s string) Category { return Category(s) }))
	out.RoleTextStyle = t.RoleTextStyle.With(convertValues(o.Role.TextStyle, func(s string) TextStyle { return TextStyle(s) }))
	out.RolePadding = t.RolePadding.With(o.Role.Padding)
	out.RadiusRatio = t.RadiusRatio.With(o.Role.RadiusRatio)
	out.RoleBorderPosition = t.RoleBorderPosition.With(o.Role.BorderPosition)
	out.Clipping = t.Clipping.With(o.Role.Clipping)
	out.SectionScale = t.SectionScale.With(o.Section.Scale)
	out.RoleBackdrop = t.RoleBackdrop.With(o.Role.Backdrop)
	out.SectionBackdrop = t.SectionBackdrop.With(o.Section.Backdrop)

	out.SeparationTiers = t.SeparationTiers
	for cat, row := range o.Separation {
		c, ok := canonical(cat, Categories)
		if !ok {
			fail(errors.New(errors.ErrCodeInvalidTable, "separation: unknown category %q", cat))
			continue
		}
		tiers := enumKeys(convertValues(row, func(s string) Tier { return Tier(s) }), iddl.ParseProminence, fail)
		out.SeparationTiers = out.SeparationTiers.With(map[Category]Table[iddl.Prominence, Tier]{
			c: out.SeparationTiers.Get(c).With(tiers),
		})
	}

	out.Typography = t.Typography
	for name, styles := range o.Typography {
		scheme, ok := canonical(name, Schemes)
		if !ok {
			fail(errors.New(errors.ErrCodeInvalidTable, "typography: unknown scheme %q", name))
			continue
		}
		table := cloneTypeTable(out.Typography.Get(scheme))
		for styleName, levels := range styles {
			style, ok := canonical(styleName, TextStyles)
			if !ok {
				fail(errors.New(errors.ErrCodeInvalidTable, "typography.%s: unknown text style %q", scheme, styleName))
				continue
			}
			for levelName, classes := range levels {
				level, ok := canonical(levelName, Levels)
				if !ok {
					fail(errors.New(errors.ErrCodeInvalidTable, "typography.%s.%s: unknown level %q", scheme, style, levelName))
					continue
				}
				table[style][level] = ParseTypeSpec(classes)
			}
		}
		out.Typography = out.Typography.With(map[Scheme]TypeTable{scheme: table})
	}

	if err := out.Validate(); err != nil {
		fail(err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return t, err
	}
	return out, nil
}

func enumKeys[K ~string, V any](m map[string]V, parse func(string) (K, error), fail func(error)) map[K]V {
	if len(m) == 0 {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		key, err := parse(k)
		if err != nil {
			fail(err)
			continue
		}
		out[key] = v
	}
	return out
}

func convertValues[K comparable, V any](m map[K]string, conv func(string) V) map[K]V {
	if len(m) == 0 {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = conv(v)
	}
	return out
}

func canonical[T ~string](s string, all []T) (T, bool) {
	for _, v := range all {
		if fold(v) == fold(s) {
			return v, true
		}
	}
	return "", false
}

func cloneTypeTable(t TypeTable) TypeTable {
	out := make(TypeTable, len(TextStyles))
	for _, style := range TextStyles {
		row := make(map[Level]TypeSpec, len(Levels))
		for _, level := range Levels {
			row[level] = t.Get(style, level)
		}
		out[style] = row
	}
	return out
}
