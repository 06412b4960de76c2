package iddl

import "strings"

// TokenOutput is the render-ready result of resolving a [TokenInput]. Every
// field holds a presentation class (or an empty string when the bucket does
// not apply), except Surface.Opacity and Elevation.
type TokenOutput struct {
	Spacing    Spacing    `json:"spacing" yaml:"spacing" toml:"spacing"`
	Surface    Surface    `json:"surface" yaml:"surface" toml:"surface"`
	Geometry   Geometry   `json:"geometry" yaml:"geometry" toml:"geometry"`
	Typography Typography `json:"typography" yaml:"typography" toml:"typography"`
	Shadow     Shadow     `json:"shadow" yaml:"shadow" toml:"shadow"`

	// ExtraClasses carries cosmetic annotations that have no bucket of their
	// own, such as transitions and letter tracking.
	ExtraClasses string `json:"extra_classes,omitempty" yaml:"extra_classes,omitempty" toml:"extra_classes,omitempty"`

	// Elevation is the node's accumulated elevation level. A composition
	// layer passes it to children as their parent level.
	Elevation int `json:"elevation" yaml:"elevation" toml:"elevation"`
}

// Spacing holds gap and padding classes.
type Spacing struct {
	Gap     string `json:"gap,omitempty" yaml:"gap,omitempty" toml:"gap,omitempty"`
	Padding string `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`
}

// Surface holds the background fill.
type Surface struct {
	Background string  `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Opacity    float64 `json:"opacity" yaml:"opacity" toml:"opacity"`
	Blur       string  `json:"blur,omitempty" yaml:"blur,omitempty" toml:"blur,omitempty"`
}

// Geometry holds border, radius, outline and overflow classes.
type Geometry struct {
	Width         string `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Color         string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Radius        string `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	Outline       string `json:"outline,omitempty" yaml:"outline,omitempty" toml:"outline,omitempty"`
	OutlineOffset string `json:"outline_offset,omitempty" yaml:"outline_offset,omitempty" toml:"outline_offset,omitempty"`
	Overflow      string `json:"overflow,omitempty" yaml:"overflow,omitempty" toml:"overflow,omitempty"`
}

// Typography holds text classes.
type Typography struct {
	Size       string `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Weight     string `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	LineHeight string `json:"line_height,omitempty" yaml:"line_height,omitempty" toml:"line_height,omitempty"`
	Color      string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	FontFamily string `json:"font_family,omitempty" yaml:"font_family,omitempty" toml:"font_family,omitempty"`
}

// Shadow holds the box shadow class.
type Shadow struct {
	BoxShadow string `json:"box_shadow,omitempty" yaml:"box_shadow,omitempty" toml:"box_shadow,omitempty"`
}

// Classes joins every non-empty class of o into one space-separated string,
// bucket by bucket. Opacity and Elevation are not classes and are skipped.
func (o TokenOutput) Classes() string {
	parts := []string{
		o.Spacing.Gap, o.Spacing.Padding,
		o.Surface.Background, o.Surface.Blur,
		o.Geometry.Width, o.Geometry.Color, o.Geometry.Radius,
		o.Geometry.Outline, o.Geometry.OutlineOffset, o.Geometry.Overflow,
		o.Typography.Size, o.Typography.Weight, o.Typography.LineHeight,
		o.Typography.Color, o.Typography.FontFamily,
		o.Shadow.BoxShadow,
		o.ExtraClasses,
	}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
