// Package render turns a particle cloud into drawable pieces and rasterises
// them. Nothing here mutates the cloud.
package render

import (
	"image/color"
	"math"

	"confetti/internal/confetti"
	"confetti/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

// minShade keeps edge-on pieces visible while darkening them.
const minShade = 0.55

// Piece is one drawable confetti rectangle in simulation units.
type Piece struct {
	Center   core.Vec2
	Width    float64
	Height   float64
	Rotation float64
	Color    color.NRGBA
	Opacity  float64
}

// Renderer converts a cloud into pieces using a cheap depth approximation:
// the flip angle squashes the width and darkens the colour, the flutter
// angle squashes the height and drives the on-screen rotation.
type Renderer struct {
	pieces  []Piece
	source  *confetti.Cloud
	version uint64
	valid   bool
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render returns one piece per alive particle. The returned slice is owned by
// the renderer and reused by the next call; when the cloud has not changed
// since the last call the previous pieces are returned as-is.
func (r *Renderer) Render(cloud *confetti.Cloud) []Piece {
	if cloud == nil {
		r.pieces = r.pieces[:0]
		r.source, r.valid = nil, false
		return r.pieces
	}
	if r.valid && r.source == cloud && r.version == cloud.Version() {
		return r.pieces
	}

	traits, states := cloud.Traits(), cloud.States()
	r.pieces = r.pieces[:0]
	for i := range states {
		r.pieces = append(r.pieces, PieceFor(&traits[i], &states[i]))
	}
	r.source, r.version, r.valid = cloud, cloud.Version(), true
	return r.pieces
}

// Invalidate forces the next Render to rebuild its pieces.
func (r *Renderer) Invalidate() { r.valid = false }

// PieceFor applies the depth transform to a single particle.
func PieceFor(tr *confetti.Traits, st *confetti.State) Piece {
	flutter, flip := st.Rotation.X, st.Rotation.Y
	facing := math.Abs(math.Cos(flip))
	return Piece{
		Center:   st.Position,
		Width:    tr.Width * facing,
		Height:   tr.Height * core.Lerp(0.5, 1, math.Abs(math.Cos(flutter))),
		Rotation: flutter,
		Color:    Shade(tr.Color, core.Lerp(minShade, 1, facing)),
		Opacity:  st.Opacity,
	}
}

// Shade scales a colour's light intensity by factor in linear RGB. Alpha is
// kept.
func Shade(c color.NRGBA, factor float64) color.NRGBA {
	factor = core.Clamp(factor, 0, 1)
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	lr, lg, lb := src.LinearRgb()
	r, g, b := colorful.LinearRgb(lr*factor, lg*factor, lb*factor).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}
