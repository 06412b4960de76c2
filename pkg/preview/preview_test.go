package preview

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/iddl/pkg/iddl"
)

func TestColor(t *testing.T) {
	tests := []struct {
		class string
		want  color.RGBA
		ok    bool
	}{
		{"bg-primary", colornames.Royalblue, true},
		{"text-muted-foreground", colornames.Dimgray, true},
		{"bg-green-600", colornames.Seagreen, true},
		{"dark:bg-primary", colornames.Royalblue, true},
		{"bg-card dark:bg-zinc-900", colornames.Snow, true},
		{"text-tomato", colornames.Tomato, true},
		{"bg-primary/0", colornames.White, true},
		{"bg-nothing", color.RGBA{}, false},
		{"border", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := DefaultPalette.Color(tt.class)
		assert.Equal(t, tt.ok, ok, tt.class)
		assert.Equal(t, tt.want, got, tt.class)
	}
}

func TestColorBlendsAlpha(t *testing.T) {
	half, ok := DefaultPalette.Color("bg-primary/50")
	assert.True(t, ok)
	// royal blue (65,105,225) halfway to white
	assert.Equal(t, color.RGBA{R: 160, G: 180, B: 240, A: 255}, half)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#4169e1", Hex(colornames.Royalblue))
	assert.Equal(t, "#000000", Hex(color.RGBA{}))
}

func TestHasSide(t *testing.T) {
	assert.True(t, hasSide("border", "t"))
	assert.True(t, hasSide("border-2", "l"))
	assert.True(t, hasSide("border-b", "b"))
	assert.False(t, hasSide("border-b", "t"))
	assert.False(t, hasSide("border-0", "t"))
	assert.False(t, hasSide("", "r"))
}

func TestSwatch(t *testing.T) {
	out := iddl.TokenOutput{
		Surface:    iddl.Surface{Background: "bg-primary", Opacity: 1},
		Typography: iddl.Typography{Color: "text-primary-foreground", Weight: "font-bold"},
		Geometry:   iddl.Geometry{Width: "border", Radius: "rounded-md", Color: "border-border"},
	}
	got := Swatch("Save", out)
	assert.Contains(t, got, "Save")
	assert.Greater(t, len(strings.Split(got, "\n")), 1, "bordered swatch spans several lines")

	out.Surface.Opacity = 0
	assert.Empty(t, Swatch("Save", out))
}
