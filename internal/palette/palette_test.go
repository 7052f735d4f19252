package palette

import (
	"image/color"
	"slices"
	"testing"

	"confetti/internal/confetti"
	"confetti/pkg/core"
)

var (
	_ confetti.ColorSource = (*Palette)(nil)
	_ confetti.ColorSource = HueWheel{}
	_ confetti.ColorSource = (*Cycle)(nil)
)

type countingRandom struct {
	value float64
	draws int
}

func (c *countingRandom) Float64() float64 {
	c.draws++
	return c.value
}

func TestFromHex(t *testing.T) {
	p, err := FromHex("#ff0000", "#00ff00", "#0000ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []color.NRGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	if !slices.Equal(p.Colors(), want) {
		t.Fatalf("got %v, want %v", p.Colors(), want)
	}
	if _, err := FromHex("#ff0000", "not-a-colour"); err == nil {
		t.Fatal("expected an error for a malformed entry")
	}
}

func TestPaletteNextColor(t *testing.T) {
	p := MustHex("#ff0000", "#00ff00", "#0000ff", "#ffffff")
	tests := []struct {
		draw float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 255, A: 255}},
		{0.3, color.NRGBA{G: 255, A: 255}},
		{0.6, color.NRGBA{B: 255, A: 255}},
		{0.99, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		rng := &countingRandom{value: tt.draw}
		if got := p.NextColor(rng); got != tt.want {
			t.Errorf("draw %v: got %v, want %v", tt.draw, got, tt.want)
		}
		if rng.draws != 1 {
			t.Errorf("draw %v: expected one draw, got %d", tt.draw, rng.draws)
		}
	}
}

func TestEmptyPaletteIsWhite(t *testing.T) {
	rng := &countingRandom{}
	if got := New().NextColor(rng); got != white {
		t.Fatalf("expected white, got %v", got)
	}
	if rng.draws != 0 {
		t.Fatal("empty palette should not draw")
	}
}

func TestHueWheelIsDeterministic(t *testing.T) {
	w := HueWheel{Saturation: 0.8, Value: 1}
	a, b := core.NewRNG(3), core.NewRNG(3)
	for i := 0; i < 20; i++ {
		ca, cb := w.NextColor(a), w.NextColor(b)
		if ca != cb {
			t.Fatalf("draw %d: %v != %v", i, ca, cb)
		}
		if ca.A != 255 {
			t.Fatalf("expected opaque colour, got %v", ca)
		}
	}
}

func TestHueWheelZeroHueIsRed(t *testing.T) {
	got := HueWheel{Saturation: 1, Value: 1}.NextColor(&countingRandom{value: 0})
	if got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("expected pure red, got %v", got)
	}
}

func TestCycleWraps(t *testing.T) {
	c := NewCycle(MustHex("#010101", "#020202"))
	rng := &countingRandom{}
	var got []uint8
	for i := 0; i < 5; i++ {
		got = append(got, c.NextColor(rng).R)
	}
	if !slices.Equal(got, []uint8{1, 2, 1, 2, 1}) {
		t.Fatalf("unexpected cycle order %v", got)
	}
	if rng.draws != 0 {
		t.Fatal("cycle should not draw")
	}
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		src, ok := Named(name)
		if !ok || src == nil {
			t.Fatalf("expected palette %q", name)
		}
		src.NextColor(core.NewRNG(1))
	}
	if _, ok := Named("nope"); ok {
		t.Fatal("unknown palette should not resolve")
	}
}

func TestSpawnUsesPalette(t *testing.T) {
	p := MustHex("#123456")
	cfg := confetti.DefaultConfig()
	cfg.Lifecycle.ParticleCount = 10
	sim := confetti.NewSimulation(cfg)
	sim.Start(core.Size{W: 100, H: 100}, 0, p, core.NewRNG(1))
	for _, tr := range sim.Cloud().Traits() {
		if tr.Color != (color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}) {
			t.Fatalf("unexpected colour %v", tr.Color)
		}
	}
}
