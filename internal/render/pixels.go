package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"confetti/pkg/core"
)

// Fill clears dst to a solid background colour.
func Fill(dst *image.RGBA, bg color.NRGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// Rasterize alpha-blends pieces into dst in order, later pieces on top.
// Piece coordinates are multiplied by scale to get pixel coordinates; a
// pixel is covered when its centre lies inside the rotated rectangle.
func Rasterize(dst *image.RGBA, pieces []Piece, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	b := dst.Bounds()
	for i := range pieces {
		p := &pieces[i]
		alpha := float64(p.Color.A) / 255 * core.Clamp(p.Opacity, 0, 1)
		if alpha <= 0 || p.Width <= 0 || p.Height <= 0 {
			continue
		}

		cx, cy := p.Center.X*scale, p.Center.Y*scale
		hw, hh := p.Width*scale/2, p.Height*scale/2
		sin, cos := math.Sincos(p.Rotation)
		ex := math.Abs(hw*cos) + math.Abs(hh*sin)
		ey := math.Abs(hw*sin) + math.Abs(hh*cos)

		x0 := max(b.Min.X, int(math.Floor(cx-ex)))
		x1 := min(b.Max.X, int(math.Ceil(cx+ex)))
		y0 := max(b.Min.Y, int(math.Floor(cy-ey)))
		y1 := min(b.Max.Y, int(math.Ceil(cy+ey)))

		for y := y0; y < y1; y++ {
			py := float64(y) + 0.5 - cy
			for x := x0; x < x1; x++ {
				px := float64(x) + 0.5 - cx
				lx := px*cos + py*sin
				ly := -px*sin + py*cos
				if math.Abs(lx) > hw || math.Abs(ly) > hh {
					continue
				}
				blendPixel(dst.Pix[dst.PixOffset(x, y):], p.Color, alpha)
			}
		}
	}
}

// blendPixel composites c with coverage alpha over a premultiplied RGBA pixel.
func blendPixel(px []uint8, c color.NRGBA, alpha float64) {
	inv := 1 - alpha
	px[0] = uint8(float64(c.R)*alpha + float64(px[0])*inv + 0.5)
	px[1] = uint8(float64(c.G)*alpha + float64(px[1])*inv + 0.5)
	px[2] = uint8(float64(c.B)*alpha + float64(px[2])*inv + 0.5)
	px[3] = uint8(255*alpha + float64(px[3])*inv + 0.5)
}
