//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter rasterises pieces on the CPU into a single RGBA image and uploads
// it once per frame.
type Painter struct {
	w, h   int
	img    *ebiten.Image
	canvas *image.RGBA
}

// NewPainter allocates a painter for a w*h pixel view.
func NewPainter(w, h int) *Painter {
	p := &Painter{}
	p.Resize(w, h)
	return p
}

// Resize reallocates the backing image when the view size changes.
func (p *Painter) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if p.img != nil && p.w == w && p.h == h {
		return
	}
	if p.img != nil {
		p.img.Deallocate()
	}
	p.w, p.h = w, h
	p.img = ebiten.NewImage(w, h)
	p.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Draw paints pieces over bg and blits the result to dst at the origin.
// scale converts simulation units to pixels.
func (p *Painter) Draw(dst *ebiten.Image, pieces []Piece, bg color.NRGBA, scale float64) {
	Fill(p.canvas, bg)
	Rasterize(p.canvas, pieces, scale)
	p.img.WritePixels(p.canvas.Pix)
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
