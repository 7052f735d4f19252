// Package term plays a confetti animation in a terminal. Each character cell
// holds two vertically stacked subcells drawn with half-block glyphs.
package term

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"confetti/internal/confetti"
	icore "confetti/internal/core"
	"confetti/internal/player"
	"confetti/internal/render"
	"confetti/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const (
	// SubcellSize is the simulation length of one half-block subcell.
	SubcellSize = 8.0

	defaultFPS = 60
	statusRows = 1
)

// Options configures a Player.
type Options struct {
	Config confetti.Config
	Colors confetti.ColorSource
	// Seed feeds the random stream for every start. Zero means a system seed
	// per start.
	Seed  int64
	Loop  bool
	FPS   int
	Label string
}

type subcell struct {
	color  color.NRGBA
	filled bool
}

// Player owns a tcell screen and drives one simulation from a ticker.
type Player struct {
	*player.Transport

	screen   tcell.Screen
	renderer *render.Renderer
	grid     *icore.Grid[subcell]
	opts     Options
}

// New prepares a player on an initialised screen.
func New(screen tcell.Screen, opts Options) *Player {
	if opts.FPS <= 0 {
		opts.FPS = defaultFPS
	}
	sim := confetti.NewSimulation(opts.Config.Validated())
	p := &Player{
		Transport: player.NewTransport(sim, player.Options{
			Colors: opts.Colors,
			Seed:   opts.Seed,
			Loop:   opts.Loop,
		}),
		screen:   screen,
		renderer: render.NewRenderer(),
		grid:     icore.NewGrid[subcell](1, 1),
		opts:     opts,
	}
	p.Resize()
	return p
}

// Resize recomputes the bounds from the current screen size.
func (p *Player) Resize() {
	cols, rows := p.screen.Size()
	rows -= statusRows
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	p.grid.Resize(cols, rows*2)
	p.SetBounds(core.Size{W: float64(cols) * SubcellSize, H: float64(rows*2) * SubcellSize})
	p.renderer.Invalidate()
}

// Frame advances the simulation to now and redraws.
func (p *Player) Frame(now float64) {
	p.Transport.Frame(now)
	p.Draw()
}

// HandleEvent applies a terminal event at time now. It reports false when
// the player should exit.
func (p *Player) HandleEvent(ev tcell.Event, now float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.SeekBy(-player.SeekStep)
		case tcell.KeyRight:
			p.SeekBy(player.SeekStep)
		case tcell.KeyHome:
			p.SeekTo(0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				p.TogglePause(now)
			case 'r', 'R':
				p.Restart(now)
			}
		}
	case *tcell.EventResize:
		p.Resize()
		p.screen.Sync()
	}
	return true
}

// Run starts the first burst and loops until ctx is cancelled or the user
// quits. The caller owns the screen's Init and Fini.
func (p *Player) Run(ctx context.Context) error {
	origin := time.Now()
	clock := func() float64 { return time.Since(origin).Seconds() }

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(p.opts.FPS))
	defer ticker.Stop()

	p.Restart(clock())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !p.HandleEvent(ev, clock()) {
				return nil
			}
			p.Draw()
		case <-ticker.C:
			p.Frame(clock())
		}
	}
}

// Draw paints the current cloud and the status line.
func (p *Player) Draw() {
	p.screen.Clear()
	p.grid.Clear()

	for _, piece := range p.renderer.Render(p.Simulation().Cloud()) {
		x := int(math.Floor(piece.Center.X / SubcellSize))
		y := int(math.Floor(piece.Center.Y / SubcellSize))
		cell := p.grid.At(x, y)
		if cell == nil {
			continue
		}
		cell.color = render.Shade(piece.Color, piece.Opacity)
		cell.filled = true
	}

	for row := 0; row < p.grid.H/2; row++ {
		for col := 0; col < p.grid.W; col++ {
			top, bottom := p.grid.At(col, row*2), p.grid.At(col, row*2+1)
			switch {
			case top.filled && bottom.filled:
				p.screen.SetContent(col, row, '▀', nil, tcell.StyleDefault.Foreground(termColor(top.color)).Background(termColor(bottom.color)))
			case top.filled:
				p.screen.SetContent(col, row, '▀', nil, tcell.StyleDefault.Foreground(termColor(top.color)))
			case bottom.filled:
				p.screen.SetContent(col, row, '▄', nil, tcell.StyleDefault.Foreground(termColor(bottom.color)))
			}
		}
	}
	p.drawStatus()
	p.screen.Show()
}

func (p *Player) drawStatus() {
	cols, rows := p.screen.Size()
	if rows < 1 {
		return
	}
	line := p.StatusLine(cols)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(24, 24, 32))
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, rows-1, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, rows-1, ' ', nil, style)
	}
}

// StatusLine describes the transport state, trimmed to width runes.
func (p *Player) StatusLine(width int) string {
	sim := p.Simulation()
	alive := 0
	if c := sim.Cloud(); c != nil {
		alive = c.AliveCount()
	}

	const barWidth = 20
	filled := int(math.Round(sim.Progress() * barWidth))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)

	line := fmt.Sprintf(" %-7s %5.2fs/%.2fs [%s] %4d alive", p.State(), sim.CurrentTime(), sim.Duration(), bar, alive)
	if p.opts.Label != "" {
		line += "  " + p.opts.Label
	}
	line += "  space pause  r restart  ←/→ seek  q quit"
	runes := []rune(line)
	if width >= 0 && len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}

func termColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
