// Package preview draws resolved tokens as terminal swatches.
//
// Class names are mapped back to colors through a small palette of named
// colors (SVG 1.1 names from golang.org/x/image/colornames), so a preview
// shows roughly what a component would look like without a browser:
//
//	fmt.Println(preview.Swatch("primary-cta", out))
//
// Opacity suffixes ("bg-primary/10") are blended over the page background.
// Classes the palette does not know render without color.
package preview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/iddl/pkg/iddl"
)

// Palette maps a color name used in classes to a color.
type Palette map[string]color.RGBA

// DefaultPalette covers the color names of the built-in vocabulary. Names
// missing here are looked up in the full SVG color table.
var DefaultPalette = Palette{
	"background":             colornames.White,
	"foreground":             colornames.Black,
	"card":                   colornames.Snow,
	"popover":                colornames.Ghostwhite,
	"muted":                  colornames.Gainsboro,
	"muted-foreground":       colornames.Dimgray,
	"accent":                 colornames.Lavender,
	"accent-foreground":      colornames.Midnightblue,
	"primary":                colornames.Royalblue,
	"primary-foreground":     colornames.White,
	"destructive":            colornames.Crimson,
	"destructive-foreground": colornames.White,
	"border":                 colornames.Lightgray,
	"input":                  colornames.Silver,
	"ring":                   colornames.Cornflowerblue,
	"amber":                  colornames.Orange,
	"green":                  colornames.Seagreen,
	"blue":                   colornames.Dodgerblue,
	"red":                    colornames.Firebrick,
}

// Color resolves a single class such as "bg-primary/10" or "text-green-600".
// The prefix before the first dash and any shade suffix are ignored. Alpha
// suffixes blend the color over the palette background.
func (p Palette) Color(class string) (color.RGBA, bool) {
	class, _, _ = strings.Cut(class, " ")
	if i := strings.IndexByte(class, ':'); i >= 0 {
		class = class[i+1:]
	}
	_, name, ok := strings.Cut(class, "-")
	if !ok {
		return color.RGBA{}, false
	}

	alpha := 100
	if base, a, found := strings.Cut(name, "/"); found {
		name = base
		if n, err := strconv.Atoi(a); err == nil && n >= 0 && n <= 100 {
			alpha = n
		}
	}

	c, ok := p.lookup(name)
	if !ok {
		return color.RGBA{}, false
	}
	if alpha < 100 {
		c = blend(c, p.background(), float64(alpha)/100)
	}
	return c, true
}

func (p Palette) lookup(name string) (color.RGBA, bool) {
	if c, ok := p[name]; ok {
		return c, true
	}
	// drop a trailing shade: green-600 → green
	if i := strings.LastIndexByte(name, '-'); i > 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			return p.lookup(name[:i])
		}
	}
	c, ok := colornames.Map[name]
	return c, ok
}

func (p Palette) background() color.RGBA {
	if c, ok := p["background"]; ok {
		return c
	}
	return colornames.White
}

func blend(fg, bg color.RGBA, a float64) color.RGBA {
	mix := func(f, b uint8) uint8 {
		return uint8(float64(f)*a + float64(b)*(1-a) + 0.5)
	}
	return color.RGBA{R: mix(fg.R, bg.R), G: mix(fg.G, bg.G), B: mix(fg.B, bg.B), A: 255}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style builds a lipgloss style approximating out.
func (p Palette) Style(out iddl.TokenOutput) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)

	if c, ok := p.Color(out.Surface.Background); ok && !strings.Contains(out.Surface.Background, "transparent") {
		s = s.Background(lipgloss.Color(Hex(c)))
	}
	if c, ok := p.Color(out.Typography.Color); ok {
		s = s.Foreground(lipgloss.Color(Hex(c)))
	}

	switch out.Typography.Weight {
	case "font-bold", "font-semibold":
		s = s.Bold(true)
	}
	if out.Surface.Opacity > 0 && out.Surface.Opacity < 1 {
		s = s.Faint(true)
	}

	if hasSide(out.Geometry.Width, "") {
		border := lipgloss.NormalBorder()
		if out.Geometry.Radius != "" && out.Geometry.Radius != "rounded-none" {
			border = lipgloss.RoundedBorder()
		}
		s = s.Border(border,
			hasSide(out.Geometry.Width, "t"),
			hasSide(out.Geometry.Width, "r"),
			hasSide(out.Geometry.Width, "b"),
			hasSide(out.Geometry.Width, "l"))
		if c, ok := p.Color(out.Geometry.Color); ok {
			s = s.BorderForeground(lipgloss.Color(Hex(c)))
		}
	}
	return s
}

// hasSide reports whether a border width class draws side ("t", "r", "b" or
// "l"). "border" and "border-N" draw every side; an empty side matches any.
func hasSide(width, side string) bool {
	for _, class := range strings.Fields(width) {
		rest, ok := strings.CutPrefix(class, "border")
		if !ok {
			continue
		}
		rest = strings.TrimPrefix(rest, "-")
		if rest == "0" {
			continue
		}
		if rest == "" || (rest[0] >= '0' && rest[0] <= '9') || strings.HasPrefix(rest, side) {
			return true
		}
	}
	return false
}

// Swatch renders label in a box styled like out. Hidden outputs render as
// an empty string.
func (p Palette) Swatch(label string, out iddl.TokenOutput) string {
	if out.Surface.Opacity == 0 {
		return ""
	}
	return p.Style(out).Render(label)
}

// Swatch renders label with the default palette.
func Swatch(label string, out iddl.TokenOutput) string {
	return DefaultPalette.Swatch(label, out)
}
