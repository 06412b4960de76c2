package render

import (
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/matzehuels/iddl/pkg/errors"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Vocabulary holds one class table per token family.
type Vocabulary struct {
	FontSize      strategy.Table[string, string]
	Gap           strategy.Table[string, string]
	Surface       strategy.Table[string, string]
	Text          strategy.Table[string, string]
	Shadow        strategy.Table[string, string]
	Radius        strategy.Table[string, string]
	Weight        strategy.Table[string, string]
	Family        strategy.Table[string, string]
	Blur          strategy.Table[string, string]
	BorderColor   strategy.Table[string, string] // border style → color class
	BorderTint    strategy.Table[string, string] // intent key → color name
	Outline       strategy.Table[string, string]
	OutlineOffset strategy.Table[string, string]
	Overflow      strategy.Table[string, string]
}

// Default returns the built-in vocabulary.
func Default() Vocabulary { return defaultVocabulary }

// tables returns every table by the name themes use for it.
func (v *Vocabulary) tables() map[string]*strategy.Table[string, string] {
	return map[string]*strategy.Table[string, string]{
		"font_size":      &v.FontSize,
		"gap":            &v.Gap,
		"surface":        &v.Surface,
		"text":           &v.Text,
		"shadow":         &v.Shadow,
		"radius":         &v.Radius,
		"weight":         &v.Weight,
		"family":         &v.Family,
		"blur":           &v.Blur,
		"border_color":   &v.BorderColor,
		"border_tint":    &v.BorderTint,
		"outline":        &v.Outline,
		"outline_offset": &v.OutlineOffset,
		"overflow":       &v.Overflow,
	}
}

// TableNames returns the names Apply accepts, sorted.
func (v Vocabulary) TableNames() []string {
	names := make([]string, 0, 14)
	for name := range v.tables() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every table's entries keyed by table name, in the shape
// Apply accepts.
func (v Vocabulary) Entries() map[string]map[string]string {
	out := make(map[string]map[string]string, 14)
	for name, t := range v.tables() {
		m := make(map[string]string, t.Len())
		t.Each(func(k, class string) { m[k] = class })
		out[name] = m
	}
	return out
}

// Apply returns a copy of v with the given entries replaced. overrides maps
// a table name to token → class entries. Unknown table names are reported
// together and leave v unchanged.
func (v Vocabulary) Apply(overrides map[string]map[string]string) (Vocabulary, error) {
	out := v
	tables := out.tables()

	var result *multierror.Error
	for name, entries := range overrides {
		t, ok := tables[name]
		if !ok {
			result = multierror.Append(result, errors.New(errors.ErrCodeInvalidTheme, "classes: unknown table %q", name))
			continue
		}
		*t = t.With(entries)
	}
	if err := result.ErrorOrNil(); err != nil {
		return v, err
	}
	return out, nil
}

func vocab(name, def string, entries map[string]string) strategy.Table[string, string] {
	entries[strategy.DefaultKey] = def
	return strategy.MustTable("classes."+name, strategy.DefaultKey, entries)
}

var defaultVocabulary = Vocabulary{
	FontSize: vocab("font_size", "text-base", map[string]string{
		"scale.2xs": "text-[10px]",
		"scale.xs":  "text-xs",
		"scale.sm":  "text-sm",
		"scale.md":  "text-base",
		"scale.lg":  "text-lg",
		"scale.xl":  "text-xl",
		"scale.2xl": "text-2xl",
		"scale.3xl": "text-3xl",
		"scale.4xl": "text-4xl",
	}),
	Gap: vocab("gap", "gap-1", map[string]string{
		"space.none": "gap-0",
		"space.2xs":  "gap-0.5",
		"space.xs":   "gap-1",
		"space.sm":   "gap-2",
		"space.md":   "gap-4",
		"space.lg":   "gap-6",
		"space.xl":   "gap-8",
		"space.2xl":  "gap-12",
	}),
	Surface: vocab("surface", "bg-transparent", map[string]string{
		strategy.SurfaceBase:        "bg-background",
		strategy.SurfaceRaised:      "bg-card",
		strategy.SurfaceOverlay:     "bg-popover",
		strategy.SurfaceSunken:      "bg-muted/50",
		strategy.SurfaceTransparent: "bg-transparent",
		strategy.SurfaceHover:       "bg-accent/50",
		strategy.SurfaceActive:      "bg-accent",
		strategy.SurfaceSelected:    "bg-primary/10",
		strategy.SurfaceDisabled:    "bg-muted",

		"intent.brand.default":    "bg-primary",
		"intent.brand.subtle":     "bg-primary/10",
		"intent.brand.hover":      "bg-primary/90",
		"intent.critical.default": "bg-destructive",
		"intent.critical.subtle":  "bg-destructive/10",
		"intent.critical.hover":   "bg-destructive/90",
		"intent.positive.default": "bg-green-600",
		"intent.positive.subtle":  "bg-green-500/10",
		"intent.positive.hover":   "bg-green-700",
		"intent.caution.default":  "bg-amber-500",
		"intent.caution.subtle":   "bg-amber-500/10",
		"intent.caution.hover":    "bg-amber-600",
		"intent.info.default":     "bg-blue-500",
		"intent.info.subtle":      "bg-blue-500/10",
		"intent.info.hover":       "bg-blue-600",
	}),
	Text: vocab("text", "text-foreground", map[string]string{
		strategy.ContentDefault:  "text-foreground",
		strategy.ContentMuted:    "text-muted-foreground",
		strategy.ContentSubtle:   "text-muted-foreground/70",
		strategy.ContentDisabled: "text-muted-foreground/50",

		"content.brand":    "text-primary",
		"content.critical": "text-destructive",
		"content.positive": "text-green-600",
		"content.caution":  "text-amber-600",
		"content.info":     "text-blue-600",

		"content.on-brand":    "text-primary-foreground",
		"content.on-critical": "text-destructive-foreground",
		"content.on-positive": "text-white",
		"content.on-caution":  "text-white",
		"content.on-info":     "text-white",
	}),
	Shadow: vocab("shadow", "shadow-none", map[string]string{
		strategy.ShadowNone:   "shadow-none",
		strategy.ShadowSubtle: "shadow-sm",
		strategy.ShadowFloat:  "shadow-md",
		strategy.ShadowModal:  "shadow-xl",
	}),
	Radius: vocab("radius", "rounded-md", map[string]string{
		strategy.RadiusNone: "rounded-none",
		"radius.sm":         "rounded-sm",
		"radius.base":       "rounded",
		"radius.md":         "rounded-md",
		"radius.lg":         "rounded-lg",
		"radius.xl":         "rounded-xl",
		"radius.2xl":        "rounded-2xl",
		"radius.3xl":        "rounded-3xl",
		strategy.RadiusFull: "rounded-full",
	}),
	Weight: vocab("weight", "font-normal", map[string]string{
		strategy.WeightNormal: "font-normal",
		strategy.WeightMedium: "font-medium",
		strategy.WeightBold:   "font-bold",
	}),
	Family: vocab("family", "font-sans", map[string]string{
		strategy.FontSans:    "font-sans",
		strategy.FontMono:    "font-mono",
		strategy.FontDisplay: "font-display",
	}),
	Blur: vocab("blur", "", map[string]string{
		strategy.BlurNone: "",
		strategy.BlurMd:   "backdrop-blur-md",
	}),
	BorderColor: vocab("border_color", "border-border", map[string]string{
		strategy.BorderStyleNone:     "",
		strategy.BorderStyleSubtle:   "border-border/50",
		strategy.BorderStyleDefault:  "border-border",
		strategy.BorderStyleStrong:   "border-border",
		strategy.BorderStyleHairline: "border-white/10",
	}),
	BorderTint: vocab("border_tint", "border", map[string]string{
		"brand":    "primary",
		"critical": "destructive",
		"positive": "green-600",
		"caution":  "amber-500",
		"info":     "blue-500",
	}),
	Outline: vocab("outline", "outline-none", map[string]string{
		strategy.OutlineNone:     "outline-none",
		strategy.OutlineSelected: "outline outline-1 outline-primary/40",
		strategy.OutlineFocus:    "outline outline-2 outline-primary/60",
	}),
	OutlineOffset: vocab("outline_offset", "outline-offset-0", map[string]string{
		strategy.OutlineNone:     "outline-offset-0",
		strategy.OutlineSelected: "outline-offset-[-1px]",
		strategy.OutlineFocus:    "outline-offset-2",
	}),
	Overflow: vocab("overflow", "overflow-visible", map[string]string{
		strategy.OverflowVisible: "overflow-visible",
		strategy.OverflowClip:    "overflow-hidden",
	}),
}
