// Package scale provides the ordered discrete scales used by every resolution
// stage, and nearest-value quantization onto them.
//
// A [Scale] is an ordered list of named steps sharing a prefix, such as
// scale.2xs … scale.4xl or space.2xs … space.2xl. Stages move along a scale by
// index and never step outside it: every index is clamped to the ends.
package scale

import (
	"math"
	"strings"
)

// Scale is an ordered list of token names. The zero value is an empty scale.
type Scale struct {
	prefix string
	steps  []string
	index  map[string]int
}

// New creates a scale whose tokens are prefix + "." + step, smallest first.
func New(prefix string, steps ...string) Scale {
	s := Scale{prefix: prefix, steps: make([]string, len(steps)), index: make(map[string]int, len(steps))}
	for i, step := range steps {
		tok := prefix + "." + step
		s.steps[i] = tok
		s.index[tok] = i
	}
	return s
}

// Built-in scales.
var (
	// Size is the typographic and component size scale.
	Size = New("scale", "2xs", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl")

	// Gap is the spacing scale between siblings. space.none sits outside it
	// and is only produced for hidden nodes.
	Gap = New("space", "2xs", "xs", "sm", "md", "lg", "xl", "2xl")
)

// GapNone is the gap token for nodes that take no space.
const GapNone = "space.none"

// Prefix returns the token prefix, e.g. "scale".
func (s Scale) Prefix() string { return s.prefix }

// Len returns the number of steps.
func (s Scale) Len() int { return len(s.steps) }

// Tokens returns a copy of the steps, smallest first.
func (s Scale) Tokens() []string {
	out := make([]string, len(s.steps))
	copy(out, s.steps)
	return out
}

// Index returns the position of tok, which may be given with or without the
// prefix ("scale.lg" or "lg"). It returns -1 for tokens not on the scale.
func (s Scale) Index(tok string) int {
	if !strings.HasPrefix(tok, s.prefix+".") {
		tok = s.prefix + "." + tok
	}
	if i, ok := s.index[tok]; ok {
		return i
	}
	return -1
}

// Has reports whether tok is on the scale.
func (s Scale) Has(tok string) bool { return s.Index(tok) >= 0 }

// Clamp limits i to the valid index range.
func (s Scale) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if n := len(s.steps); i >= n {
		return n - 1
	}
	return i
}

// At returns the token at index i, clamped to the scale. An empty scale
// returns "".
func (s Scale) At(i int) string {
	if len(s.steps) == 0 {
		return ""
	}
	return s.steps[s.Clamp(i)]
}

// Step moves offset steps from tok and returns the token reached, clamped to
// the scale. Unknown tokens start from the smallest step.
func (s Scale) Step(tok string, offset int) string {
	i := s.Index(tok)
	if i < 0 {
		i = 0
	}
	return s.At(i + offset)
}

// Min returns the smaller of two tokens by scale position.
func (s Scale) Min(a, b string) string {
	if s.Index(b) < s.Index(a) {
		return b
	}
	return a
}

// Number is the set of types Snap accepts.
type Number interface {
	~int | ~int64 | ~float64
}

// Snap returns the candidate nearest to value by absolute distance. Candidates
// are scanned left to right and only a strictly closer candidate replaces the
// current best, so with ascending candidates ties resolve to the lower one.
// Snap returns value unchanged when there are no candidates.
func Snap[T Number](value T, candidates []T) T {
	if len(candidates) == 0 {
		return value
	}
	best := candidates[0]
	bestDist := math.Abs(float64(value - best))
	for _, c := range candidates[1:] {
		if d := math.Abs(float64(value - c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// SnapToGrid rounds value to the nearest multiple of grid, halves rounding up.
// A non-positive grid returns value unchanged.
func SnapToGrid(value, grid float64) float64 {
	if grid <= 0 {
		return value
	}
	return float64(RoundHalfUp(value/grid)) * grid
}

// RoundHalfUp rounds x to the nearest integer, with halves rounding toward
// positive infinity (2.5 → 3, -2.5 → -2).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
