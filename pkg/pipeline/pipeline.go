// Package pipeline provides the resolution pipeline for iddl.
//
// This package turns a [iddl.TokenInput] into a [Resolved] value: the set of
// semantic tokens (scale.lg, surface.raised, shadow.float, ...) that describe
// how a node should look. Rendering those tokens into presentation classes is
// the job of package render; memoization is the job of package engine.
//
// # Architecture
//
// The pipeline is an ordered list of named stages. Each stage is a pure
// function of the strategy tables, the normalized input, and the value built
// by the stages before it:
//
//  1. Form: size scale step and sibling gap
//  2. Tone: surface strategy, shadow, border, separation tier
//  3. Color: intent colors and the state priority chain
//  4. Spacing: padding snapped to the 4px grid
//  5. Surface: opacity, backdrop blur, ghost fills
//  6. Geometry: final border, radius, outline, overflow
//  7. Typography: text tables or scale-derived size and weight
//  8. Shadow: final shadow for the separation tier
//
// # Usage
//
//	p := pipeline.Default()
//	r := p.Run(strategy.Default(), input)
//	fmt.Println(r.Scale, r.Background, r.Foreground)
//
// Trace runs the same stages and records the value after each one:
//
//	for _, step := range p.Trace(tables, input) {
//	    fmt.Println(step.Stage, step.Resolved.Background)
//	}
package pipeline

import (
	"time"

	"github.com/matzehuels/iddl/pkg/iddl"
	"github.com/matzehuels/iddl/pkg/strategy"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// RemPx is the number of pixels in one rem.
	RemPx = 16.0

	// GridPx is the spacing grid padding snaps to.
	GridPx = 4.0

	// DisabledOpacity is the opacity of disabled nodes.
	DisabledOpacity = 0.5
)

// Stage names.
const (
	StageForm       = "form"
	StageTone       = "tone"
	StageColor      = "color"
	StageSpacing    = "spacing"
	StageSurface    = "surface"
	StageGeometry   = "geometry"
	StageTypography = "typography"
	StageShadow     = "shadow"
)

// =============================================================================
// Pipeline
// =============================================================================

// StageFunc computes one part of the result. in is always normalized.
type StageFunc func(t strategy.Tables, in iddl.TokenInput, r Resolved) Resolved

// Stage is a named step of the pipeline.
type Stage struct {
	Name  string
	Apply StageFunc
}

// Pipeline is an ordered, immutable list of stages. It holds no state and is
// safe for concurrent use.
type Pipeline struct {
	stages []Stage
}

// New creates a pipeline running stages in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// Default returns the standard eight-stage pipeline.
func Default() *Pipeline {
	return New(
		Stage{StageForm, Form},
		Stage{StageTone, Tone},
		Stage{StageColor, Color},
		Stage{StageSpacing, Spacing},
		Stage{StageSurface, Surface},
		Stage{StageGeometry, Geometry},
		Stage{StageTypography, Typography},
		Stage{StageShadow, Shadow},
	)
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Run normalizes in and runs every stage.
func (p *Pipeline) Run(t strategy.Tables, in iddl.TokenInput) Resolved {
	in = in.Normalize()
	var r Resolved
	for _, s := range p.stages {
		r = s.Apply(t, in, r)
	}
	return r
}

// Step is the value after one stage of a traced run.
type Step struct {
	Stage    string
	Resolved Resolved
	Duration time.Duration
}

// Trace is like Run but records the value after each stage.
func (p *Pipeline) Trace(t strategy.Tables, in iddl.TokenInput) []Step {
	in = in.Normalize()
	steps := make([]Step, 0, len(p.stages))
	var r Resolved
	for _, s := range p.stages {
		start := time.Now()
		r = s.Apply(t, in, r)
		steps = append(steps, Step{Stage: s.Name, Resolved: r, Duration: time.Since(start)})
	}
	return steps
}
