package strategy

// Surface tokens.
const (
	SurfaceBase        = "surface.base"
	SurfaceRaised      = "surface.raised"
	SurfaceOverlay     = "surface.overlay"
	SurfaceSunken      = "surface.sunken"
	SurfaceTransparent = "surface.transparent"
	SurfaceHover       = "surface.hover"
	SurfaceActive      = "surface.active"
	SurfaceSelected    = "surface.selected"
	SurfaceDisabled    = "surface.disabled"
)

// Shadow tokens, weakest first.
const (
	ShadowNone   = "shadow.none"
	ShadowSubtle = "shadow.subtle"
	ShadowFloat  = "shadow.float"
	ShadowModal  = "shadow.modal"
)

// ShadowTiers lists the shadow tokens in escalation order. shadow.modal is
// the ceiling.
var ShadowTiers = []string{ShadowNone, ShadowSubtle, ShadowFloat, ShadowModal}

// Border style tokens.
const (
	BorderStyleNone     = "border.none"
	BorderStyleSubtle   = "border.subtle"
	BorderStyleDefault  = "border.default"
	BorderStyleStrong   = "border.strong"
	BorderStyleHairline = "border.hairline"
)

// BorderStyles lists the border styles a table may name.
var BorderStyles = []string{BorderStyleNone, BorderStyleSubtle, BorderStyleDefault, BorderStyleStrong, BorderStyleHairline}

// Content (foreground) tokens. Intent-specific tokens are built with
// ContentIntent and ContentOnIntent.
const (
	ContentDefault  = "content.default"
	ContentMuted    = "content.muted"
	ContentSubtle   = "content.subtle"
	ContentDisabled = "content.disabled"
)

// Weight tokens.
const (
	WeightNormal = "weight.normal"
	WeightMedium = "weight.medium"
	WeightBold   = "weight.bold"
)

// Radius tokens, keyed by the pixel value they snap to.
const (
	RadiusNone = "radius.none"
	RadiusFull = "radius.full"
)

// RadiusSteps are the pixel values a computed radius snaps to, ascending.
var RadiusSteps = []int{0, 2, 4, 6, 8, 12, 16, 24}

// RadiusTokens names each radius step.
var RadiusTokens = map[int]string{
	0:  RadiusNone,
	2:  "radius.sm",
	4:  "radius.base",
	6:  "radius.md",
	8:  "radius.lg",
	12: "radius.xl",
	16: "radius.2xl",
	24: "radius.3xl",
}

// Outline tokens.
const (
	OutlineNone     = "outline.none"
	OutlineSelected = "outline.selected"
	OutlineFocus    = "outline.focus"
)

// Overflow tokens.
const (
	OverflowVisible = "overflow.visible"
	OverflowClip    = "overflow.clip"
)

// Blur tokens.
const (
	BlurNone = "blur.none"
	BlurMd   = "blur.md"
)

// Font family tokens.
const (
	FontSans    = "font.sans"
	FontMono    = "font.mono"
	FontDisplay = "font.display"
)

// IntentSurface returns the intent surface token for key and variant, e.g.
// IntentSurface("brand", "default") is "intent.brand.default".
func IntentSurface(key, variant string) string { return "intent." + key + "." + variant }

// ContentIntent returns the foreground token for text colored by an intent.
func ContentIntent(key string) string { return "content." + key }

// ContentOnIntent returns the foreground token for text on a solid intent fill.
func ContentOnIntent(key string) string { return "content.on-" + key }
