//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"confetti/internal/app"
	"confetti/internal/confetti"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("confetti: %v", err)
	}
	colors, err := flags.Colors()
	if err != nil {
		log.Fatalf("confetti: %v", err)
	}
	log.Printf("loaded %s: %d particles over %.2fs", flags.Label(), cfg.Lifecycle.ParticleCount, cfg.Lifecycle.Duration)

	game := app.New(confetti.NewSimulation(cfg), flags, colors)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("confetti: " + flags.Label())
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
