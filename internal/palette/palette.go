// Package palette provides colour sources for confetti clouds. Every source
// draws randomness only from the random stream it is handed, so a seeded
// stream reproduces the same colours.
package palette

import (
	"fmt"
	"image/color"
	"sort"

	"confetti/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Palette picks uniformly from a fixed list of colours.
type Palette struct {
	colors []color.NRGBA
}

// New returns a palette over the given colours.
func New(colors ...color.NRGBA) *Palette {
	return &Palette{colors: append([]color.NRGBA(nil), colors...)}
}

// FromHex parses "#rrggbb" strings into a palette.
func FromHex(hexes ...string) (*Palette, error) {
	colors := make([]color.NRGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("invalid palette colour %q: %w", h, err)
		}
		colors = append(colors, toNRGBA(c))
	}
	return &Palette{colors: colors}, nil
}

// MustHex is FromHex for package-level tables; it panics on a bad entry.
func MustHex(hexes ...string) *Palette {
	p, err := FromHex(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// NextColor draws one colour. An empty palette yields white without drawing.
func (p *Palette) NextColor(rng core.Random) color.NRGBA {
	if p == nil || len(p.colors) == 0 {
		return white
	}
	return p.colors[core.Pick(rng, len(p.colors))]
}

// Colors returns a copy of the palette entries.
func (p *Palette) Colors() []color.NRGBA {
	return append([]color.NRGBA(nil), p.colors...)
}

// Len reports the number of entries.
func (p *Palette) Len() int { return len(p.colors) }

// HueWheel picks a uniformly random hue at fixed saturation and value.
type HueWheel struct {
	Saturation float64
	Value      float64
}

// NextColor draws one hue from rng.
func (w HueWheel) NextColor(rng core.Random) color.NRGBA {
	hue := rng.Float64() * 360
	return toNRGBA(colorful.Hsv(hue, core.Clamp(w.Saturation, 0, 1), core.Clamp(w.Value, 0, 1)))
}

// Cycle walks a palette in order. It never draws from the random stream.
type Cycle struct {
	colors []color.NRGBA
	next   int
}

// NewCycle returns a cycling source over p's colours.
func NewCycle(p *Palette) *Cycle {
	return &Cycle{colors: p.Colors()}
}

// NextColor returns the next entry, wrapping at the end.
func (c *Cycle) NextColor(core.Random) color.NRGBA {
	if len(c.colors) == 0 {
		return white
	}
	col := c.colors[c.next%len(c.colors)]
	c.next = (c.next + 1) % len(c.colors)
	return col
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Source is anything that hands out particle colours from a random stream.
type Source interface {
	NextColor(rng core.Random) color.NRGBA
}

var named = map[string]func() Source{
	"classic": func() Source {
		return MustHex("#f94144", "#f3722c", "#f9c74f", "#90be6d", "#43aa8b", "#577590", "#f15bb5")
	},
	"pastel": func() Source {
		return MustHex("#ffadad", "#ffd6a5", "#fdffb6", "#caffbf", "#9bf6ff", "#a0c4ff", "#bdb2ff")
	},
	"gold": func() Source {
		return MustHex("#ffd700", "#f4c430", "#e6be8a", "#fffacd")
	},
	"rainbow": func() Source {
		return HueWheel{Saturation: 0.75, Value: 1}
	},
}

// Named returns a fresh source for a built-in palette name.
func Named(name string) (Source, bool) {
	build, ok := named[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names lists the built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
