//go:build ebiten

package app

import (
	"image/color"
	"time"

	"confetti/internal/confetti"
	"confetti/internal/player"
	"confetti/internal/render"
	"confetti/internal/ui"
	"confetti/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a confetti simulation to the ebiten.Game interface. ebiten's
// Update is the frame clock.
type Game struct {
	sim      *confetti.Simulation
	renderer *render.Renderer
	painter  *render.Painter
	hud      *ui.HUD
	overlay  *ui.Overlay
	tr       *player.Transport
	bounds   core.Size

	bg    color.NRGBA
	scale int
	start time.Time
}

// New constructs a Game for sim sized from flags.
func New(sim *confetti.Simulation, flags *Flags, colors confetti.ColorSource) *Game {
	scale := max(flags.Scale, 1)
	bounds := core.Size{W: float64(max(flags.Width, 1)), H: float64(max(flags.Height, 1))}
	g := &Game{
		sim:      sim,
		renderer: render.NewRenderer(),
		painter:  render.NewPainter(int(bounds.W)*scale, int(bounds.H)*scale),
		overlay:  ui.NewOverlay(sim, float64(scale)),
		tr: player.NewTransport(sim, player.Options{
			Bounds: bounds,
			Colors: colors,
			Seed:   flags.Seed,
			Loop:   flags.Loop,
		}),
		bounds: bounds,
		bg:     color.NRGBA{R: 12, G: 12, B: 18, A: 255},
		scale:  scale,
		start:  time.Now(),
	}
	if flags.HUD {
		g.hud = ui.NewHUD(sim, "Confetti "+flags.Label(), hudWidth)
		g.hud.OnChange = func(string) { g.tr.Restart(g.now()) }
	}
	g.tr.Restart(0)
	return g
}

func (g *Game) now() float64 { return time.Since(g.start).Seconds() }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	now := g.now()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.tr.TogglePause(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.tr.Restart(now)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.tr.SeekBy(-player.SeekStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.tr.SeekBy(player.SeekStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.tr.SeekTo(0)
	}

	viewW := int(g.bounds.W) * g.scale
	g.hud.Update(viewW)
	g.overlay.Update(g.bounds)
	g.tr.Frame(now)
	return nil
}

// Draw renders the current cloud, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	pieces := g.renderer.Render(g.sim.Cloud())
	g.painter.Draw(screen, pieces, g.bg, float64(g.scale))
	g.overlay.Draw(screen, g.bounds)
	g.hud.Draw(screen, int(g.bounds.W)*g.scale, int(g.bounds.H)*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.bounds.W)*g.scale + g.hud.Width(), int(g.bounds.H) * g.scale
}

const hudWidth = 240
