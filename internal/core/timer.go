package core

import (
	"math"

	pcore "confetti/pkg/core"
)

const (
	// MaxFrameDelta caps how much wall-clock time a single Advance may add.
	MaxFrameDelta = 0.25
	// MaxStepsPerAdvance bounds catch-up work after a stalled frame clock.
	MaxStepsPerAdvance = 5
	// StepEpsilon keeps an exact single step from being truncated to zero by
	// floating-point error.
	StepEpsilon = 1e-6
)

// FixedStep converts irregular wall-clock deltas into whole simulation steps
// of constant size. All durations are in seconds.
type FixedStep struct {
	step        float64
	accumulator float64
}

// NewFixedStep constructs a FixedStep controller with the given step size.
func NewFixedStep(step float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetStep(step)
	return fs
}

// SetStep changes the step size. Non-positive or non-finite sizes fall back to 1/60s.
func (f *FixedStep) SetStep(step float64) {
	if !(step > 0) || math.IsInf(step, 0) {
		step = 1.0 / 60
	}
	f.step = step
}

// Step returns the configured step size.
func (f *FixedStep) Step() float64 { return f.step }

// Accumulator returns the unconsumed wall-clock time.
func (f *FixedStep) Accumulator() float64 { return f.accumulator }

// Reset discards any unconsumed time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance adds a frame delta and reports how many steps should run. Non-finite
// deltas count as zero and deltas are clamped to [0, MaxFrameDelta]. At most
// MaxStepsPerAdvance steps are returned; when more were available the
// remainder is dropped instead of carried into later frames.
func (f *FixedStep) Advance(delta float64) int {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		delta = 0
	}
	delta = pcore.Clamp(delta, 0, MaxFrameDelta)
	f.accumulator += delta

	available := int(math.Floor((f.accumulator + StepEpsilon) / f.step))
	steps := available
	if steps > MaxStepsPerAdvance {
		steps = MaxStepsPerAdvance
	}
	f.accumulator -= float64(steps) * f.step
	if available > MaxStepsPerAdvance || f.accumulator < 0 {
		f.accumulator = 0
	}
	return steps
}
