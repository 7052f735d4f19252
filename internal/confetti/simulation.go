package confetti

import (
	"math"

	icore "confetti/internal/core"
	"confetti/pkg/core"
)

// Simulation is the transport state machine around a particle cloud: Stopped,
// Running and playing, or Running and paused. Every method is a silent no-op
// in states where it does not apply. A Simulation is not safe for concurrent
// use; the host serialises all calls on one goroutine.
type Simulation struct {
	cfg Config
	run *runState
}

// runState carries everything that only exists while the animation runs.
type runState struct {
	startTime float64
	lastTick  float64

	cloud   *Cloud
	initial *Cloud

	stepper *icore.FixedStep
	steps   int
	paused  bool
}

// NewSimulation returns a stopped simulation using the validated cfg.
func NewSimulation(cfg Config) *Simulation {
	assertConfig(cfg)
	return &Simulation{cfg: cfg.Validated()}
}

// Config returns the active, validated configuration.
func (s *Simulation) Config() Config { return s.cfg }

// SetConfig replaces the configuration. Physics values apply from the next
// step; spawn values apply at the next Start.
func (s *Simulation) SetConfig(cfg Config) {
	assertConfig(cfg)
	s.cfg = cfg.Validated()
	if s.run != nil {
		s.run.stepper.SetStep(s.cfg.Physics.FixedStep)
		if max := s.maxSteps(); s.run.steps > max {
			s.run.steps = max
		}
	}
}

// Start spawns a fresh cloud at bounds and begins playing from now. A nil
// colors uses white; a nil rng uses a system-seeded source.
func (s *Simulation) Start(bounds core.Size, now float64, colors ColorSource, rng core.Random) {
	if colors == nil {
		colors = SolidColor{R: 255, G: 255, B: 255, A: 255}
	}
	if rng == nil {
		rng = core.NewSystemRNG()
	}
	if !core.Finite(now) {
		now = 0
	}
	cloud := spawnCloud(s.cfg, bounds, colors, rng)
	s.run = &runState{
		startTime: now,
		lastTick:  now,
		cloud:     cloud,
		initial:   cloud.Clone(),
		stepper:   icore.NewFixedStep(s.cfg.Physics.FixedStep),
	}
}

// Tick converts the wall-clock time since the previous tick into zero or more
// fixed steps. It stops the animation once the simulation clock reaches the
// duration, or once wall-clock time overruns it by WallClockGrace.
func (s *Simulation) Tick(now float64, bounds core.Size) {
	r := s.run
	if r == nil || r.paused {
		return
	}
	duration := s.cfg.Lifecycle.Duration
	if s.finished() || now-r.startTime > duration+WallClockGrace {
		s.Stop()
		return
	}

	delta := 0.0
	if core.Finite(now) {
		delta = now - r.lastTick
		r.lastTick = now
	}
	steps := r.stepper.Advance(delta)
	for i := 0; i < steps && !s.finished(); i++ {
		s.advance(bounds)
	}
}

// Pause freezes the animation. State is retained.
func (s *Simulation) Pause() {
	if s.run == nil || s.run.paused {
		return
	}
	s.run.paused = true
}

// Resume continues a paused animation from now. Partial-step time gathered
// before the pause is discarded so the first tick does not burst.
func (s *Simulation) Resume(now float64) {
	r := s.run
	if r == nil || !r.paused {
		return
	}
	if !core.Finite(now) {
		now = r.lastTick
	}
	r.paused = false
	r.lastTick = now
	r.stepper.Reset()
	r.startTime = now - s.CurrentTime()
}

// Seek replays the animation from the spawn snapshot up to target, clamped to
// [0, Duration]. The same target always produces the same cloud.
func (s *Simulation) Seek(target float64, bounds core.Size) {
	r := s.run
	if r == nil {
		return
	}
	if math.IsNaN(target) {
		target = 0
	}
	target = core.Clamp(target, 0, s.cfg.Lifecycle.Duration)

	r.cloud.CopyFrom(r.initial)
	r.steps = 0
	r.stepper.Reset()

	n := int(math.Floor(target/s.cfg.Physics.FixedStep + icore.StepEpsilon))
	for i := 0; i < n; i++ {
		s.advance(bounds)
	}
	r.cloud.IncrementVersion()
	r.startTime = r.lastTick - s.CurrentTime()
}

// Stop clears all state.
func (s *Simulation) Stop() {
	s.run = nil
}

// Duration returns the configured animation length in seconds.
func (s *Simulation) Duration() float64 { return s.cfg.Lifecycle.Duration }

// CurrentTime returns the simulation clock, which only moves in whole steps.
func (s *Simulation) CurrentTime() float64 {
	if s.run == nil {
		return 0
	}
	return float64(s.run.steps) * s.cfg.Physics.FixedStep
}

// Progress returns CurrentTime as a fraction of Duration.
func (s *Simulation) Progress() float64 {
	return core.Clamp(s.CurrentTime()/s.Duration(), 0, 1)
}

// IsRunning reports whether an animation is loaded, playing or paused.
func (s *Simulation) IsRunning() bool { return s.run != nil }

// IsPlaying reports whether Tick currently advances the animation.
func (s *Simulation) IsPlaying() bool { return s.run != nil && !s.run.paused }

// IsPaused reports whether the animation is running but frozen.
func (s *Simulation) IsPaused() bool { return s.run != nil && s.run.paused }

// Cloud returns the live cloud, or nil when stopped. Readers must treat it as
// read-only and must not keep it across Tick, Seek or Stop.
func (s *Simulation) Cloud() *Cloud {
	if s.run == nil {
		return nil
	}
	return s.run.cloud
}

func (s *Simulation) advance(bounds core.Size) {
	r := s.run
	r.steps++
	stepCloud(r.cloud, &s.cfg, bounds, s.CurrentTime())
}

func (s *Simulation) finished() bool {
	return s.CurrentTime() >= s.cfg.Lifecycle.Duration-icore.StepEpsilon
}

func (s *Simulation) maxSteps() int {
	return int(math.Floor(s.cfg.Lifecycle.Duration/s.cfg.Physics.FixedStep + icore.StepEpsilon))
}
