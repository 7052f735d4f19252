package confetti

import (
	"image/color"
	"math"

	"confetti/pkg/core"
)

// FlightResult captures telemetry from a deterministic headless run used for
// tuning presets.
type FlightResult struct {
	// InitialCount is the number of particles spawned.
	InitialCount int
	// StepsSimulated counts fixed steps until the cloud emptied or the
	// duration elapsed.
	StepsSimulated int
	// PeakHeightRatio is the greatest height any particle reached above the
	// origin, as a fraction of the bounds height.
	PeakHeightRatio float64
	// SpreadRatio is the widest horizontal extent of the alive cloud, as a
	// fraction of the bounds width.
	SpreadRatio float64
	// HalfLifeTime is the simulation time at which half the particles were
	// gone, or 0 if that never happened.
	HalfLifeTime float64
	// LastAliveTime is the last simulation time with any particle alive.
	LastAliveTime float64
}

// Fly runs cfg to completion with a seeded random stream and measures how the
// cloud behaved. It never touches the wall clock.
func Fly(cfg Config, bounds core.Size, seed int64) FlightResult {
	sim := NewSimulation(cfg.Validated())
	sim.Start(bounds, 0, SolidColor(color.NRGBA{A: 255}), core.NewRNG(seed))
	cloud := sim.Cloud()
	origin := sim.cfg.Origin(bounds)

	result := FlightResult{InitialCount: cloud.AliveCount()}
	half := result.InitialCount / 2
	halfSeen := false

	for !sim.finished() && cloud.AliveCount() > 0 {
		sim.advance(bounds)
		result.StepsSimulated++

		states := cloud.States()
		if len(states) == 0 {
			break
		}
		now := sim.CurrentTime()
		result.LastAliveTime = now
		if !halfSeen && len(states) <= half {
			halfSeen = true
			result.HalfLifeTime = now
		}

		minX, maxX := math.Inf(1), math.Inf(-1)
		minY := math.Inf(1)
		for _, st := range states {
			minX = math.Min(minX, st.Position.X)
			maxX = math.Max(maxX, st.Position.X)
			minY = math.Min(minY, st.Position.Y)
		}
		if bounds.H > 0 {
			result.PeakHeightRatio = math.Max(result.PeakHeightRatio, (origin.Y-minY)/bounds.H)
		}
		if bounds.W > 0 {
			result.SpreadRatio = math.Max(result.SpreadRatio, (maxX-minX)/bounds.W)
		}
	}
	return result
}
