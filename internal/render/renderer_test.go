package render

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"confetti/internal/confetti"
	"confetti/pkg/core"
)

func testCloud(rot core.Vec2) *confetti.Cloud {
	traits := []confetti.Traits{
		{ID: 0, Width: 10, Height: 8, Color: color.NRGBA{R: 200, G: 100, B: 50, A: 255}},
		{ID: 1, Width: 6, Height: 12, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}
	states := []confetti.State{
		{Position: core.V(20, 30), Rotation: rot, Opacity: 1},
		{Position: core.V(50, 60), Rotation: rot, Opacity: 0.5},
	}
	return confetti.NewCloud(traits, states, 2)
}

func TestPieceForDepthTransform(t *testing.T) {
	tests := []struct {
		name      string
		rot       core.Vec2
		wantW     float64
		wantH     float64
		wantShade float64
	}{
		{"facing", core.V(0, 0), 10, 8, 1},
		{"edge on", core.V(0, math.Pi/2), 0, 8, minShade},
		{"flutter quarter", core.V(math.Pi/2, 0), 10, 4, 1},
		{"flip half turn", core.V(0, math.Pi), 10, 8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cloud := testCloud(tt.rot)
			p := PieceFor(&cloud.Traits()[0], &cloud.States()[0])
			if math.Abs(p.Width-tt.wantW) > 1e-9 || math.Abs(p.Height-tt.wantH) > 1e-9 {
				t.Fatalf("size = %fx%f, want %fx%f", p.Width, p.Height, tt.wantW, tt.wantH)
			}
			if p.Rotation != tt.rot.X {
				t.Fatalf("rotation = %f, want flutter %f", p.Rotation, tt.rot.X)
			}
			if want := Shade(cloud.Traits()[0].Color, tt.wantShade); p.Color != want {
				t.Fatalf("colour = %v, want %v", p.Color, want)
			}
			if p.Center != core.V(20, 30) || p.Opacity != 1 {
				t.Fatalf("unexpected centre/opacity %+v", p)
			}
		})
	}
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 128}
	if got := Shade(c, 1); got != c {
		t.Fatalf("full shade changed colour: %v", got)
	}
	if got := Shade(c, 0); got != (color.NRGBA{A: 128}) {
		t.Fatalf("zero shade should be black with alpha kept, got %v", got)
	}
	half := Shade(c, 0.5)
	if half.R >= c.R || half.G >= c.G || half.B >= c.B {
		t.Fatalf("expected darker colour, got %v", half)
	}
}

func TestRenderReusesBuffer(t *testing.T) {
	cloud := testCloud(core.V(0.3, 0.7))
	r := NewRenderer()
	first := r.Render(cloud)
	if len(first) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(first))
	}
	if first[1].Opacity != 0.5 {
		t.Fatalf("opacity not copied: %f", first[1].Opacity)
	}

	cloud.IncrementVersion()
	second := r.Render(cloud)
	if &first[0] != &second[0] {
		t.Fatal("expected the output slice to be reused")
	}
}

func TestRenderDoesNotMutateCloud(t *testing.T) {
	cloud := testCloud(core.V(1.1, 2.2))
	traits := append([]confetti.Traits(nil), cloud.Traits()...)
	states := append([]confetti.State(nil), cloud.States()...)
	version := cloud.Version()

	NewRenderer().Render(cloud)

	if !slices.Equal(cloud.Traits(), traits) || !slices.Equal(cloud.States(), states) {
		t.Fatal("render mutated the cloud")
	}
	if cloud.Version() != version {
		t.Fatal("render bumped the version")
	}
}

func TestRenderSkipsDeadParticles(t *testing.T) {
	cloud := testCloud(core.V(0, 0))
	cloud.States()[0].Opacity = 0
	cloud.Compact()
	cloud.IncrementVersion()
	pieces := NewRenderer().Render(cloud)
	if len(pieces) != 1 || pieces[0].Center != core.V(50, 60) {
		t.Fatalf("expected only the survivor, got %+v", pieces)
	}
}

func TestRenderNilCloud(t *testing.T) {
	r := NewRenderer()
	r.Render(testCloud(core.V(0, 0)))
	if got := r.Render(nil); len(got) != 0 {
		t.Fatalf("expected no pieces, got %d", len(got))
	}
}

func TestRenderRebuildsOnVersionChange(t *testing.T) {
	cloud := testCloud(core.V(0, 0))
	r := NewRenderer()
	r.Render(cloud)
	cloud.States()[0].Position = core.V(1, 1)

	if got := r.Render(cloud)[0].Center; got != core.V(20, 30) {
		t.Fatalf("unchanged version should return cached pieces, got %v", got)
	}
	cloud.IncrementVersion()
	if got := r.Render(cloud)[0].Center; got != core.V(1, 1) {
		t.Fatalf("expected rebuilt piece, got %v", got)
	}
}
