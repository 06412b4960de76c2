package strategy

import (
	"strings"

	"github.com/matzehuels/iddl/pkg/iddl"
)

// Scheme names one of the typography tables.
type Scheme string

// Typography schemes.
const (
	SchemeExpressive Scheme = "Expressive" // marketing and landing canvases
	SchemeEditorial  Scheme = "Editorial"  // documents and reading
	SchemeProduct    Scheme = "Product"    // application chrome
	SchemeDense      Scheme = "Dense"      // code and data
)

// Schemes lists every scheme.
var Schemes = []Scheme{SchemeExpressive, SchemeEditorial, SchemeProduct, SchemeDense}

// Level is the prominence column of a typography table.
type Level string

// Typography levels.
const (
	LevelHero     Level = "Hero"
	LevelStrong   Level = "Strong"
	LevelStandard Level = "Standard"
)

// Levels lists every level.
var Levels = []Level{LevelHero, LevelStrong, LevelStandard}

// LevelOf maps a prominence to its typography column.
func LevelOf(p iddl.Prominence) Level {
	switch p {
	case iddl.ProminenceHero:
		return LevelHero
	case iddl.ProminenceStrong:
		return LevelStrong
	default:
		return LevelStandard
	}
}

// TypeSpec is one cell of a typography table, already expressed as classes.
// Empty fields fall back to the renderer defaults.
type TypeSpec struct {
	Size       string `json:"size" yaml:"size" toml:"size"`
	Weight     string `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
	LineHeight string `json:"line_height,omitempty" yaml:"line_height,omitempty" toml:"line_height,omitempty"`
	Tracking   string `json:"tracking,omitempty" yaml:"tracking,omitempty" toml:"tracking,omitempty"`
	Mono       bool   `json:"mono,omitempty" yaml:"mono,omitempty" toml:"mono,omitempty"`
}

// ParseTypeSpec splits a composite class string such as
// "text-4xl tracking-tight font-bold" into its parts. Classes that are not
// size, weight, leading, tracking or font-mono are ignored.
func ParseTypeSpec(classes string) TypeSpec {
	var ts TypeSpec
	for _, c := range strings.Fields(classes) {
		switch {
		case c == "font-mono":
			ts.Mono = true
		case strings.HasPrefix(c, "text-") && ts.Size == "":
			ts.Size = c
		case strings.HasPrefix(c, "font-") && ts.Weight == "":
			ts.Weight = c
		case strings.HasPrefix(c, "leading-") && ts.LineHeight == "":
			ts.LineHeight = c
		case strings.HasPrefix(c, "tracking-") && ts.Tracking == "":
			ts.Tracking = c
		}
	}
	return ts
}

// TypeTable maps text style and level to a TypeSpec.
type TypeTable map[TextStyle]map[Level]TypeSpec

// Get returns the cell for style and level, falling back to the Standard
// level and then to Body.
func (t TypeTable) Get(style TextStyle, level Level) TypeSpec {
	row, ok := t[style]
	if !ok {
		row = t[TextBody]
	}
	if ts, ok := row[level]; ok {
		return ts
	}
	return row[LevelStandard]
}

func typeTable(rows map[TextStyle][3]string) TypeTable {
	t := make(TypeTable, len(rows))
	for style, cells := range rows {
		t[style] = map[Level]TypeSpec{
			LevelHero:     ParseTypeSpec(cells[0]),
			LevelStrong:   ParseTypeSpec(cells[1]),
			LevelStandard: ParseTypeSpec(cells[2]),
		}
	}
	return t
}

var typeSchemes = map[Scheme]TypeTable{
	SchemeExpressive: typeTable(map[TextStyle][3]string{
		TextTitle:   {"text-8xl tracking-tighter font-black", "text-6xl tracking-tight font-extrabold", "text-4xl tracking-tight font-bold"},
		TextHeading: {"text-4xl font-bold", "text-3xl font-bold", "text-2xl font-semibold"},
		TextBody:    {"text-2xl leading-normal", "text-xl leading-normal", "text-lg leading-relaxed"},
		TextLabel:   {"text-xl font-medium", "text-lg font-medium", "text-base font-medium"},
	}),
	SchemeEditorial: typeTable(map[TextStyle][3]string{
		TextTitle:   {"text-5xl font-bold tracking-tight", "text-4xl font-bold tracking-tight", "text-3xl font-bold"},
		TextHeading: {"text-3xl font-semibold", "text-2xl font-semibold", "text-xl font-semibold"},
		TextBody:    {"text-xl leading-relaxed", "text-lg leading-relaxed", "text-base leading-relaxed"},
		TextLabel:   {"text-base font-medium", "text-sm font-medium", "text-xs font-medium"},
	}),
	SchemeProduct: typeTable(map[TextStyle][3]string{
		TextTitle:   {"text-lg font-bold", "text-base font-bold", "text-sm font-semibold"},
		TextHeading: {"text-base font-semibold", "text-sm font-semibold", "text-xs font-semibold"},
		TextBody:    {"text-sm", "text-xs", "text-[11px]"},
		TextLabel:   {"text-xs font-medium", "text-[11px] font-medium", "text-[10px] font-medium"},
	}),
	SchemeDense: typeTable(map[TextStyle][3]string{
		TextTitle:   {"text-base font-mono font-bold", "text-sm font-mono font-bold", "text-xs font-mono font-bold"},
		TextHeading: {"text-sm font-mono font-bold", "text-xs font-mono font-bold", "text-[10px] font-mono font-bold"},
		TextBody:    {"text-xs font-mono leading-tight", "text-[11px] font-mono leading-tight", "text-[10px] font-mono leading-none"},
		TextLabel:   {"text-[11px] font-mono", "text-[10px] font-mono", "text-[9px] font-mono"},
	}),
}
