package confetti

import (
	"math"

	icore "confetti/internal/core"
	"confetti/pkg/core"
)

// Spin coefficients. Each rotation axis integrates its base speed plus a
// velocity term and a wind term; fast falls add extra flutter to both axes.
const (
	flutterVelocityCoeff = 0.012
	flipVelocityCoeff    = 0.018
	flutterWindCoeff     = 0.02
	flipWindCoeff        = 0.01

	fastFallSpeed     = 250.0
	fastFallSpinCoeff = 0.01
)

const twoPi = 2 * math.Pi

// stepCloud advances every alive particle by one fixed step. elapsed is the
// simulation time the cloud represents once the step completes.
func stepCloud(cloud *Cloud, cfg *Config, bounds core.Size, elapsed float64) {
	dt := cfg.Physics.FixedStep
	margin := cfg.Spawn.Margin
	minX, maxX := -margin, bounds.W+margin
	minY, maxY := -margin, bounds.H+margin

	fadeStart := cfg.Lifecycle.Duration - cfg.Lifecycle.FadeOutDuration
	fading := cfg.Lifecycle.FadeOutDuration > 0 && elapsed > fadeStart
	fadeOpacity := 1.0
	if fading {
		fadeOpacity = core.Clamp(1-(elapsed-fadeStart)/cfg.Lifecycle.FadeOutDuration, 0, 1)
		if elapsed >= cfg.Lifecycle.Duration-icore.StepEpsilon {
			fadeOpacity = 0
		}
	}
	windTime := elapsed * cfg.Wind.TimeScale

	traits := cloud.traits
	states := cloud.states
	for i := 0; i < cloud.alive; i++ {
		tr := &traits[i]
		st := &states[i]

		st.Velocity.Y += cfg.Physics.Gravity * dt

		wind := math.Sin(windTime+float64(i)*cfg.Wind.PhaseScale) * tr.WindSensitivity
		st.Velocity.X += wind * dt

		st.Velocity.X *= cfg.Physics.Drag
		st.Velocity.Y *= cfg.Physics.Drag

		if st.Velocity.Y > cfg.Physics.TerminalVelocity {
			st.Velocity.Y = cfg.Physics.TerminalVelocity
		}

		st.Position.X += st.Velocity.X * dt
		st.Position.Y += st.Velocity.Y * dt

		if st.Position.X < minX || st.Position.X > maxX || st.Position.Y < minY || st.Position.Y > maxY {
			st.Opacity = 0
			continue
		}

		fall := math.Abs(st.Velocity.Y)
		flutter := tr.RotationSpeed.X + math.Abs(st.Velocity.X)*flutterVelocityCoeff + wind*flutterWindCoeff
		flip := tr.RotationSpeed.Y + fall*flipVelocityCoeff + math.Abs(wind)*flipWindCoeff
		if fall > fastFallSpeed {
			extra := (fall - fastFallSpeed) * fastFallSpinCoeff
			flutter += extra
			flip += extra
		}
		st.Rotation.X = math.Mod(st.Rotation.X+flutter*dt, twoPi)
		st.Rotation.Y = math.Mod(st.Rotation.Y+flip*dt, twoPi)

		if fading {
			st.Opacity = fadeOpacity
		}
	}

	cloud.Compact()
	cloud.IncrementVersion()
}
