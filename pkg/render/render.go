package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/pipeline"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Transition is added to every node's extra classes.
const Transition = "transition-all duration-200 ease-out"

// Render converts a resolved value into presentation classes.
func (v Vocabulary) Render(r pipeline.Resolved) iddl.TokenOutput {
	out := iddl.TokenOutput{Elevation: r.Elevation}

	out.Spacing = iddl.Spacing{
		Gap:     v.Gap.Get(r.Gap),
		Padding: Padding(r.PaddingX, r.PaddingY),
	}

	out.Surface = iddl.Surface{
		Background: v.Surface.Get(r.Background),
		Opacity:    r.Opacity,
		Blur:       v.Blur.Get(r.Blur),
	}

	out.Geometry = iddl.Geometry{
		Width:         BorderWidth(r.Border, r.BorderSides),
		Color:         v.borderColor(r),
		Radius:        v.Radius.Get(r.Radius),
		Outline:       v.Outline.Get(r.Outline),
		OutlineOffset: v.OutlineOffset.Get(r.Outline),
		Overflow:      v.Overflow.Get(r.Overflow),
	}

	extra := []string{Transition}
	if r.IsText() {
		out.Typography = iddl.Typography{
			Size:       r.Text.Size,
			Weight:     orDefault(r.Text.Weight, "font-normal"),
			LineHeight: orDefault(r.Text.LineHeight, "leading-normal"),
		}
		if r.Text.Tracking != "" {
			extra = append(extra, r.Text.Tracking)
		}
	} else {
		out.Typography = iddl.Typography{
			Size:       v.FontSize.Get(r.Scale),
			Weight:     v.Weight.Get(r.Weight),
			LineHeight: "leading-normal",
		}
	}
	out.Typography.Color = v.Text.Get(r.Foreground)
	out.Typography.FontFamily = v.Family.Get(r.Family)

	out.Shadow = iddl.Shadow{BoxShadow: v.Shadow.Get(r.Shadow)}
	out.ExtraClasses = strings.Join(extra, " ")
	return out
}

// Padding renders pixel padding on a 4px unit, e.g. 16×8 as "px-4 py-2".
func Padding(x, y float64) string {
	if x == y {
		return "p-" + units(x)
	}
	return "px-" + units(x) + " py-" + units(y)
}

// BorderWidth renders a border style and position as a width class.
func BorderWidth(style, sides string) string {
	if style == "" || style == strategy.BorderStyleNone {
		return "border-0"
	}
	switch sides {
	case strategy.BorderTop:
		return "border-t"
	case strategy.BorderBottom:
		return "border-b"
	case strategy.BorderLeft:
		return "border-l"
	case strategy.BorderRight:
		return "border-r"
	}
	if style == strategy.BorderStyleStrong {
		return "border-2"
	}
	return "border"
}

// borderColor tints borders of non-neutral nodes with their intent, lighter
// on inputs.
func (v Vocabulary) borderColor(r pipeline.Resolved) string {
	if r.BorderTint == "" {
		return v.BorderColor.Get(r.Border)
	}
	opacity := "40"
	if r.Category == strategy.CategoryInput {
		opacity = "30"
	}
	return "border-" + v.BorderTint.Get(r.BorderTint) + "/" + opacity
}

func units(px float64) string {
	return strconv.FormatFloat(px/4, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
