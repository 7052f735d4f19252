package confetti

import (
	"math"

	"confetti/pkg/core"
)

// Origin returns the launch point for the given bounds.
func (c Config) Origin(bounds core.Size) core.Vec2 {
	return core.V(bounds.W/2, bounds.H*c.Spawn.OriginHeightRatio)
}

// spawnCloud draws every particle from rng in a fixed order so the same
// stream always yields the same cloud.
func spawnCloud(cfg Config, bounds core.Size, colors ColorSource, rng core.Random) *Cloud {
	n := cfg.Lifecycle.ParticleCount
	traits := make([]Traits, n)
	states := make([]State, n)
	origin := cfg.Origin(bounds)

	for i := 0; i < n; i++ {
		angle := cfg.Spawn.LaunchAngle + (rng.Float64()-0.5)*cfg.Spawn.LaunchSpread
		speed := cfg.Spawn.Speed.Sample(rng)

		traits[i] = Traits{
			ID:     i,
			Width:  cfg.Appearance.Width.Sample(rng),
			Height: cfg.Appearance.Height.Sample(rng),
			RotationSpeed: core.V(
				cfg.Appearance.FlutterSpeed.Sample(rng),
				cfg.Appearance.FlipSpeed.Sample(rng),
			),
			WindSensitivity: cfg.Wind.Force.Sample(rng),
		}
		states[i] = State{
			Position: origin,
			Velocity: core.FromAngle(angle, speed),
			Rotation: core.V(rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi),
			Opacity:  1,
		}
		traits[i].Color = colors.NextColor(rng)
	}
	return NewCloud(traits, states, n)
}
