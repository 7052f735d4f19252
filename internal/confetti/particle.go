// Package confetti implements a fixed-timestep confetti particle simulation
// with video-player style transport controls.
//
// The simulation converts irregular frame-clock callbacks into whole physics
// steps of constant size, so the particle state at a given simulation time
// depends only on the configuration, the bounds and the random stream used at
// Start. Seek exploits this by replaying from the spawn snapshot.
package confetti

import (
	"image/color"

	"confetti/pkg/core"
)

// Traits hold the per-particle values fixed at spawn.
type Traits struct {
	ID     int
	Width  float64
	Height float64
	Color  color.NRGBA
	// RotationSpeed holds the flutter (X) and flip (Y) speeds in rad/s.
	RotationSpeed   core.Vec2
	WindSensitivity float64
}

// State holds the per-particle values updated every fixed step.
type State struct {
	Position core.Vec2
	Velocity core.Vec2
	// Rotation holds the flutter (X) and flip (Y) angles in radians.
	Rotation core.Vec2
	Opacity  float64
}

// Alive reports whether the particle is still visible.
func (s State) Alive() bool { return s.Opacity > 0 }

// ColorSource hands out particle colours. Implementations may keep state but
// must draw randomness only from the provided source.
type ColorSource interface {
	NextColor(rng core.Random) color.NRGBA
}

// SolidColor is a ColorSource that always returns the same colour.
type SolidColor color.NRGBA

// NextColor returns the fixed colour without consuming randomness.
func (c SolidColor) NextColor(core.Random) color.NRGBA { return color.NRGBA(c) }
