package player

import (
	"math"
	"testing"

	"confetti/internal/confetti"
	"confetti/pkg/core"
)

func shortConfig() confetti.Config {
	cfg := confetti.DefaultConfig()
	cfg.Lifecycle.ParticleCount = 10
	cfg.Lifecycle.Duration = 0.2
	cfg.Lifecycle.FadeOutDuration = 0.1
	return cfg
}

func newTransport(loop bool) *Transport {
	return NewTransport(confetti.NewSimulation(shortConfig()), Options{
		Bounds: core.Size{W: 400, H: 300},
		Seed:   9,
		Loop:   loop,
	})
}

func run(t *Transport, from, to float64) float64 {
	now := from
	for now < to {
		now += 1.0 / 60
		t.Frame(now)
	}
	return now
}

func TestStateNames(t *testing.T) {
	tr := newTransport(false)
	if tr.State() != "stopped" {
		t.Fatalf("got %q", tr.State())
	}
	tr.Restart(0)
	if tr.State() != "playing" {
		t.Fatalf("got %q", tr.State())
	}
	tr.TogglePause(0.1)
	if tr.State() != "paused" {
		t.Fatalf("got %q", tr.State())
	}
	tr.TogglePause(0.2)
	if tr.State() != "playing" {
		t.Fatalf("got %q", tr.State())
	}
}

func TestSeededRestartsRepeat(t *testing.T) {
	tr := newTransport(false)
	tr.Restart(0)
	first := append([]confetti.Traits(nil), tr.Simulation().Cloud().Traits()...)
	tr.Restart(1)
	second := tr.Simulation().Cloud().Traits()
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("seeded restarts should respawn the same burst")
		}
	}
}

func TestLoopRestartsAfterDelay(t *testing.T) {
	tr := newTransport(true)
	tr.Restart(0)
	now := run(tr, 0, 0.5)
	if tr.Starts() != 1 {
		t.Fatalf("restarted before the idle gap: %d starts", tr.Starts())
	}
	run(tr, now, 1.5)
	if tr.Starts() < 2 {
		t.Fatal("expected a looped restart")
	}
}

func TestNoLoopStaysStopped(t *testing.T) {
	tr := newTransport(false)
	tr.Restart(0)
	now := run(tr, 0, 2)
	if tr.Simulation().IsRunning() || tr.Starts() != 1 {
		t.Fatal("expected the transport to stay stopped")
	}
	tr.TogglePause(now)
	if !tr.Simulation().IsPlaying() || tr.Starts() != 2 {
		t.Fatal("toggle on a stopped transport should start a burst")
	}
}

func TestSeekBy(t *testing.T) {
	cfg := confetti.DefaultConfig()
	tr := NewTransport(confetti.NewSimulation(cfg), Options{Bounds: core.Size{W: 400, H: 300}, Seed: 1})
	tr.SeekBy(SeekStep)
	if tr.Simulation().IsRunning() {
		t.Fatal("seeking a stopped transport should not start it")
	}
	tr.Restart(0)
	tr.SeekBy(SeekStep)
	tr.SeekBy(SeekStep)
	tr.SeekBy(-SeekStep)
	if got := tr.Simulation().CurrentTime(); math.Abs(got-SeekStep) > 1e-9 {
		t.Fatalf("expected playhead at %f, got %f", SeekStep, got)
	}
	tr.SeekBy(-10)
	if tr.Simulation().CurrentTime() != 0 {
		t.Fatal("seeking before the start should clamp to 0")
	}
}

func TestLoopWaitsAfterExternalStop(t *testing.T) {
	tr := newTransport(true)
	tr.Restart(0)
	tr.Frame(0.05)
	tr.Simulation().Stop()

	tr.Frame(0.1)
	tr.Frame(0.1 + RestartDelay/2)
	if tr.Starts() != 1 {
		t.Fatalf("restarted before the idle gap: %d starts", tr.Starts())
	}
	tr.Frame(0.1 + RestartDelay + 0.01)
	if tr.Starts() != 2 || !tr.Simulation().IsRunning() {
		t.Fatalf("expected a restart once the gap elapsed, got %d starts", tr.Starts())
	}
}
