//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"confetti/internal/confetti"
	"confetti/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the transport timeline and optional debugging visuals on top
// of the confetti view. Clicking or dragging on the timeline seeks.
type Overlay struct {
	sim   *confetti.Simulation
	scale float64

	showVelocity bool
	showBounds   bool
	showLabel    bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for sim drawn at scale pixels per unit.
func NewOverlay(sim *confetti.Simulation, scale float64) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showLabel: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles and timeline scrubbing.
func (o *Overlay) Update(bounds core.Size) {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBounds = !o.showBounds
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showLabel = !o.showLabel
	}

	if !o.sim.IsRunning() || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	rect := o.timeline(bounds)
	mx, my := ebiten.CursorPosition()
	grab := rect.Inset(-timelineMargin / 2)
	if image.Pt(mx, my).In(grab) {
		o.sim.Seek(TimelineTarget(mx, rect, o.sim.Duration()), bounds)
	}
}

// Draw renders the overlay onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, bounds core.Size) {
	if bounds.Empty() {
		return
	}
	if o.showBounds {
		o.drawBounds(screen, bounds)
	}
	if o.showVelocity {
		o.drawVelocities(screen)
	}
	o.drawTimeline(screen, bounds)
}

func (o *Overlay) timeline(bounds core.Size) image.Rectangle {
	return TimelineRect(int(bounds.W*o.scale), int(bounds.H*o.scale))
}

func (o *Overlay) drawTimeline(screen *ebiten.Image, bounds core.Size) {
	rect := o.timeline(bounds)
	fillRect(screen, o.pixel, rect, color.RGBA{R: 40, G: 40, B: 48, A: 200})

	state := "stopped"
	switch {
	case o.sim.IsPaused():
		state = "paused"
	case o.sim.IsPlaying():
		state = "playing"
	}
	if o.sim.IsRunning() {
		played := rect
		played.Max.X = rect.Min.X + int(math.Round(o.sim.Progress()*float64(rect.Dx())))
		fillRect(screen, o.pixel, played, color.RGBA{R: 240, G: 190, B: 70, A: 230})
	}
	if !o.showLabel {
		return
	}
	alive := 0
	if c := o.sim.Cloud(); c != nil {
		alive = c.AliveCount()
	}
	label := TransportLabel(state, o.sim.CurrentTime(), o.sim.Duration(), alive)
	text.Draw(screen, label, basicfont.Face7x13, rect.Min.X, rect.Min.Y-6, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func (o *Overlay) drawVelocities(screen *ebiten.Image) {
	cloud := o.sim.Cloud()
	if cloud == nil {
		return
	}
	const (
		vectorScale      = 0.05
		maxSpeedEstimate = 1200.0
	)
	cfg := o.sim.Config()
	for _, st := range cloud.States() {
		speed := st.Velocity.Len()
		x, y := st.Position.X*o.scale, st.Position.Y*o.scale
		if speed < 1 {
			o.drawPoint(screen, x, y, 2*o.scale, color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		tip := st.Position.Add(st.Velocity.Scale(vectorScale)).Scale(o.scale)
		col := speedColor(speed / math.Max(maxSpeedEstimate, cfg.Physics.TerminalVelocity))
		o.drawLine(screen, x, y, tip.X, tip.Y, math.Max(1, o.scale), col)
	}
}

func (o *Overlay) drawBounds(screen *ebiten.Image, bounds core.Size) {
	cfg := o.sim.Config()
	m := cfg.Spawn.Margin
	col := color.RGBA{R: 200, G: 80, B: 80, A: 160}
	corners := []core.Vec2{
		core.V(-m, -m), core.V(bounds.W+m, -m), core.V(bounds.W+m, bounds.H+m), core.V(-m, bounds.H+m),
	}
	for i := range corners {
		a := corners[i].Scale(o.scale)
		b := corners[(i+1)%len(corners)].Scale(o.scale)
		o.drawLine(screen, a.X, a.Y, b.X, b.Y, 1, col)
	}
	origin := cfg.Origin(bounds).Scale(o.scale)
	o.drawPoint(screen, origin.X, origin.Y, 6, color.RGBA{R: 240, G: 240, B: 120, A: 200})
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func speedColor(t float64) color.RGBA {
	t = core.Clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(math.Round(80 + 170*t)),
		G: uint8(math.Round(170 - 60*t)),
		B: uint8(math.Round(230 - 160*t)),
		A: uint8(math.Round(150 + 90*t)),
	}
}
