// Package player holds the input policy shared by the front-ends: restart,
// loop, pause toggling and relative seeking on top of a Simulation.
package player

import (
	"confetti/internal/confetti"
	"confetti/pkg/core"
)

const (
	// SeekStep is how far the arrow keys move the playhead, in seconds.
	SeekStep = 0.5
	// RestartDelay is the idle gap before a looping player restarts.
	RestartDelay = 0.6
)

// Options configures a Transport.
type Options struct {
	Bounds core.Size
	Colors confetti.ColorSource
	// Seed feeds the random stream for every start. Zero means a fresh
	// system seed per start.
	Seed int64
	Loop bool
}

// Transport maps player input onto simulation calls. Front-ends feed it
// wall-clock seconds from their own frame clock.
type Transport struct {
	sim  *confetti.Simulation
	opts Options

	starts    int
	idle      bool
	stoppedAt float64
}

// NewTransport wraps sim. It does not start the animation.
func NewTransport(sim *confetti.Simulation, opts Options) *Transport {
	return &Transport{sim: sim, opts: opts}
}

// Simulation returns the driven simulation.
func (t *Transport) Simulation() *confetti.Simulation { return t.sim }

// Bounds returns the area passed to the simulation.
func (t *Transport) Bounds() core.Size { return t.opts.Bounds }

// SetBounds changes the area used from the next tick on.
func (t *Transport) SetBounds(b core.Size) { t.opts.Bounds = b }

// Starts counts bursts spawned so far.
func (t *Transport) Starts() int { return t.starts }

// Restart spawns a fresh burst at now.
func (t *Transport) Restart(now float64) {
	t.starts++
	var rng core.Random
	if t.opts.Seed != 0 {
		rng = core.NewRNG(t.opts.Seed)
	}
	t.sim.Start(t.opts.Bounds, now, t.opts.Colors, rng)
	t.idle = false
}

// Frame ticks the simulation and, in loop mode, restarts it once it has been
// seen stopped for RestartDelay, however it came to stop.
func (t *Transport) Frame(now float64) {
	t.sim.Tick(now, t.opts.Bounds)
	if t.sim.IsRunning() {
		t.idle = false
		return
	}
	if !t.idle {
		t.idle, t.stoppedAt = true, now
	}
	if t.opts.Loop && now-t.stoppedAt >= RestartDelay {
		t.Restart(now)
	}
}

// TogglePause pauses a playing animation, resumes a paused one and starts a
// stopped one.
func (t *Transport) TogglePause(now float64) {
	switch {
	case t.sim.IsPlaying():
		t.sim.Pause()
	case t.sim.IsPaused():
		t.sim.Resume(now)
	default:
		t.Restart(now)
	}
}

// SeekBy moves the playhead by delta seconds.
func (t *Transport) SeekBy(delta float64) {
	if t.sim.IsRunning() {
		t.SeekTo(t.sim.CurrentTime() + delta)
	}
}

// SeekTo moves the playhead to target seconds.
func (t *Transport) SeekTo(target float64) {
	t.sim.Seek(target, t.opts.Bounds)
}

// State names the transport state for status displays.
func (t *Transport) State() string {
	switch {
	case t.sim.IsPaused():
		return "paused"
	case t.sim.IsPlaying():
		return "playing"
	}
	return "stopped"
}
