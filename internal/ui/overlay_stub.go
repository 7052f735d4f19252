//go:build !ebiten

package ui

import (
	"confetti/internal/confetti"
	"confetti/pkg/core"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*confetti.Simulation, float64) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update(core.Size) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Size) {}
