package term

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"confetti/internal/confetti"
	"confetti/internal/player"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func stillConfig() confetti.Config {
	cfg := confetti.DefaultConfig()
	cfg.Lifecycle.ParticleCount = 12
	cfg.Physics.Gravity = 0
	cfg.Spawn.Speed = confetti.Range{}
	cfg.Wind.Force = confetti.Range{}
	return cfg
}

func rowText(screen tcell.SimulationScreen, row, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestBoundsFollowScreen(t *testing.T) {
	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: stillConfig(), Seed: 1})
	if got := p.Bounds(); got.W != 40*SubcellSize || got.H != 24*SubcellSize {
		t.Fatalf("unexpected bounds %+v", got)
	}

	screen.SetSize(60, 21)
	p.HandleEvent(tcell.NewEventResize(60, 21), 0)
	if got := p.Bounds(); got.W != 60*SubcellSize || got.H != 40*SubcellSize {
		t.Fatalf("bounds not updated after resize: %+v", got)
	}
}

func TestDrawsParticlesAtOrigin(t *testing.T) {
	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: stillConfig(), Seed: 1})
	p.Restart(0)
	p.Frame(1.0 / 60)

	// origin is (160, 172.8): column 20, subcell row 21, the lower half of row 10
	r, _, style, _ := screen.GetContent(20, 10)
	if r != '▄' {
		t.Fatalf("expected lower half block at origin, got %q", r)
	}
	if fg, _, _ := style.Decompose(); fg == tcell.ColorDefault {
		t.Fatal("expected an explicit particle colour")
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Fatalf("expected empty corner, got %q", r)
	}
}

func TestStatusLine(t *testing.T) {
	screen := newTestScreen(t, 120, 10)
	p := New(screen, Options{Config: stillConfig(), Seed: 1, Label: "preset:test"})
	p.Restart(0)
	p.Draw()

	status := rowText(screen, 9, 120)
	for _, want := range []string{"playing", "12 alive", "preset:test"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
	if got := p.StatusLine(10); len([]rune(got)) != 10 {
		t.Fatalf("expected status trimmed to 10 runes, got %q", got)
	}
}

func TestTransportKeys(t *testing.T) {
	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: stillConfig(), Seed: 1})
	p.Restart(0)
	sim := p.Simulation()

	p.HandleEvent(char(' '), 0.1)
	if !sim.IsPaused() {
		t.Fatal("space should pause")
	}
	p.HandleEvent(key(tcell.KeyRight), 0.1)
	if math.Abs(sim.CurrentTime()-player.SeekStep) > 1e-9 {
		t.Fatalf("right arrow should seek to %f, got %f", player.SeekStep, sim.CurrentTime())
	}
	if !sim.IsPaused() {
		t.Fatal("seeking should keep the pause")
	}
	p.HandleEvent(key(tcell.KeyRight), 0.1)
	p.HandleEvent(key(tcell.KeyLeft), 0.1)
	if math.Abs(sim.CurrentTime()-player.SeekStep) > 1e-9 {
		t.Fatalf("left arrow should seek back to %f, got %f", player.SeekStep, sim.CurrentTime())
	}
	p.HandleEvent(key(tcell.KeyHome), 0.1)
	if sim.CurrentTime() != 0 {
		t.Fatalf("home should seek to 0, got %f", sim.CurrentTime())
	}
	p.HandleEvent(char(' '), 0.2)
	if !sim.IsPlaying() {
		t.Fatal("space should resume")
	}
	p.HandleEvent(char('r'), 0.3)
	if p.Starts() != 2 {
		t.Fatalf("expected restart, got %d starts", p.Starts())
	}
}

func TestQuitKeys(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	p := New(screen, Options{Config: stillConfig()})
	for _, ev := range []*tcell.EventKey{char('q'), char('Q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		if p.HandleEvent(ev, 0) {
			t.Fatalf("expected %v to quit", ev.Name())
		}
	}
	if !p.HandleEvent(char('x'), 0) {
		t.Fatal("unbound key should not quit")
	}
}

func TestLoopRestartsAfterIdleGap(t *testing.T) {
	cfg := stillConfig()
	cfg.Lifecycle.Duration = 0.2
	cfg.Lifecycle.FadeOutDuration = 0.1

	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: cfg, Seed: 3, Loop: true})
	p.Restart(0)

	now := 0.0
	stopped := false
	for i := 0; i < 300 && p.Starts() < 2; i++ {
		now += 1.0 / 60
		p.Frame(now)
		if !p.Simulation().IsRunning() {
			stopped = true
		}
	}
	if !stopped {
		t.Fatal("expected the burst to end")
	}
	if p.Starts() != 2 || !p.Simulation().IsRunning() {
		t.Fatalf("expected a looped restart, got %d starts", p.Starts())
	}
}

func TestNoLoopStaysStopped(t *testing.T) {
	cfg := stillConfig()
	cfg.Lifecycle.Duration = 0.2
	cfg.Lifecycle.FadeOutDuration = 0.1

	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: cfg, Seed: 3})
	p.Restart(0)
	for i := 1; i <= 120; i++ {
		p.Frame(float64(i) / 60)
	}
	if p.Simulation().IsRunning() || p.Starts() != 1 {
		t.Fatal("expected the player to stay stopped without loop")
	}
	p.HandleEvent(char(' '), 3)
	if !p.Simulation().IsPlaying() {
		t.Fatal("space on a stopped player should start a new burst")
	}
}

func runAsync(ctx context.Context, p *Player) <-chan error {
	errc := make(chan error, 1)
	go func() { errc <- p.Run(ctx) }()
	return errc
}

func waitRun(t *testing.T, errc <-chan error) error {
	t.Helper()
	select {
	case err := <-errc:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: stillConfig(), Seed: 1, FPS: 120})
	errc := runAsync(context.Background(), p)
	if err := screen.PostEvent(char('q')); err != nil {
		t.Fatalf("post: %v", err)
	}
	if err := waitRun(t, errc); err != nil {
		t.Fatalf("expected a clean quit, got %v", err)
	}
}

func TestRunStopsOnCancelAndDrainsLateEvents(t *testing.T) {
	screen := newTestScreen(t, 40, 13)
	p := New(screen, Options{Config: stillConfig(), Seed: 1, FPS: 120})
	ctx, cancel := context.WithCancel(context.Background())
	errc := runAsync(ctx, p)
	cancel()
	if err := waitRun(t, errc); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// more events than the internal buffer holds; none may wedge the poller
	for i := 0; i < 64; i++ {
		_ = screen.PostEvent(char('x'))
	}
}
