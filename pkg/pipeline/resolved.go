package pipeline

import (
	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// Resolved is the semantic result of the pipeline. Token fields hold
// vocabulary names such as "scale.lg" or "surface.raised", never
// presentation classes.
type Resolved struct {
	// Form
	Scale string `json:"scale"`
	Gap   string `json:"gap"`

	// Tone
	Category       strategy.Category `json:"category"`
	Tier           strategy.Tier     `json:"tier"`
	Separation     iddl.Separation   `json:"separation"`
	Surface        string            `json:"surface"`         // strategy surface before color
	BorderStyle    string            `json:"border_style"`    // per-space border style
	BorderPosition string            `json:"border_position"` // role override, else per space
	Elevation      int               `json:"elevation"`

	// Color
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Rule       string `json:"rule,omitempty"` // state rule that decided the color, "" for the base

	// Spacing, in pixels
	PaddingX float64 `json:"padding_x"`
	PaddingY float64 `json:"padding_y"`

	// Surface
	Opacity float64 `json:"opacity"`
	Blur    string  `json:"blur"`

	// Geometry
	Border      string `json:"border"`       // final border style
	BorderSides string `json:"border_sides"` // final border position
	BorderTint  string `json:"border_tint,omitempty"`
	Radius      string `json:"radius"`
	Outline     string `json:"outline"`
	Overflow    string `json:"overflow"`

	// Typography
	TextStyle strategy.TextStyle `json:"text_style,omitempty"`
	Scheme    strategy.Scheme    `json:"scheme,omitempty"`
	Text      strategy.TypeSpec  `json:"text"` // set for text roles only
	Weight    string             `json:"weight,omitempty"`
	Family    string             `json:"family"`

	// Shadow
	Shadow string `json:"shadow"`
}

// IsText reports whether the node resolved through a typography table.
func (r Resolved) IsText() bool { return r.TextStyle != strategy.TextNone }

// Contained reports whether the node draws its own boundary (fill or border).
func (r Resolved) Contained() bool {
	return r.Separation == iddl.SeparationSurface || r.Separation == iddl.SeparationBorder
}
