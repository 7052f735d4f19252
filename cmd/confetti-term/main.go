package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"confetti/internal/app"
	"confetti/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("confetti-term: %v", err)
	}
	colors, err := flags.Colors()
	if err != nil {
		log.Fatalf("confetti-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("confetti-term: failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("confetti-term: failed to initialise screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	player := term.New(screen, term.Options{
		Config: cfg,
		Colors: colors,
		Seed:   flags.Seed,
		Loop:   flags.Loop,
		FPS:    flags.TPS,
		Label:  flags.Label(),
	})
	err = player.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("confetti-term: %v", err)
	}
}
