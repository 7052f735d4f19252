package confetti

import (
	"fmt"
	"math"
	"os"

	"confetti/pkg/core"

	"gopkg.in/yaml.v3"
)

const (
	// MinDuration is the shortest animation Validated allows, in seconds.
	MinDuration = 0.1
	// MaxDuration bounds the replay work a single Seek can require.
	MaxDuration = 3600.0
	// MinFixedStep is the smallest physics step Validated allows (240 Hz).
	MinFixedStep = 1.0 / 240
	// WallClockGrace is how far wall-clock time may run past the configured
	// duration before Tick stops the animation regardless of the sim clock.
	WallClockGrace = 1.0
)

// Range is an inclusive [Min, Max] interval sampled uniformly at spawn.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Sample draws a value from the range.
func (r Range) Sample(rng core.Random) float64 { return core.Between(rng, r.Min, r.Max) }

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// Lifecycle controls how many particles spawn and how long they live.
type Lifecycle struct {
	ParticleCount int `yaml:"particleCount"`
	// Duration is the total animation length in seconds.
	Duration float64 `yaml:"duration"`
	// FadeOutDuration is the tail of Duration over which opacity falls to 0.
	FadeOutDuration float64 `yaml:"fadeOutDuration"`
}

// Physics holds the integration constants.
type Physics struct {
	// Gravity is the downward acceleration in units/s².
	Gravity float64 `yaml:"gravity"`
	// Drag multiplies velocity once per fixed step; 1 means no drag.
	Drag float64 `yaml:"drag"`
	// TerminalVelocity caps the falling speed in units/s.
	TerminalVelocity float64 `yaml:"terminalVelocity"`
	// FixedStep is the integration step in seconds.
	FixedStep float64 `yaml:"fixedStep"`
}

// Spawn controls where and how fast particles are launched.
type Spawn struct {
	// OriginHeightRatio places the launch point at bounds.H * ratio.
	OriginHeightRatio float64 `yaml:"originHeightRatio"`
	Speed             Range   `yaml:"speed"`
	// LaunchAngle is the centre launch direction in radians; -π/2 is up.
	LaunchAngle float64 `yaml:"launchAngle"`
	// LaunchSpread is the full width of the launch cone in radians.
	LaunchSpread float64 `yaml:"launchSpread"`
	// Margin is how far outside the bounds a particle may travel before it is
	// culled.
	Margin float64 `yaml:"margin"`
}

// Appearance controls particle size and spin.
type Appearance struct {
	Width        Range `yaml:"width"`
	Height       Range `yaml:"height"`
	FlutterSpeed Range `yaml:"flutterSpeed"`
	FlipSpeed    Range `yaml:"flipSpeed"`
}

// Wind controls the sinusoidal sideways force.
type Wind struct {
	// Force is the range per-particle wind sensitivity is drawn from.
	Force Range `yaml:"force"`
	// TimeScale is the angular frequency of the wind over simulation time.
	TimeScale float64 `yaml:"timeScale"`
	// PhaseScale offsets the wind phase by the particle's index in the alive
	// prefix.
	PhaseScale float64 `yaml:"phaseScale"`
}

// Config bundles all tunables. Use Validated before handing a hand-built
// Config to anything that integrates it.
type Config struct {
	Lifecycle  Lifecycle  `yaml:"lifecycle"`
	Physics    Physics    `yaml:"physics"`
	Spawn      Spawn      `yaml:"spawn"`
	Appearance Appearance `yaml:"appearance"`
	Wind       Wind       `yaml:"wind"`
}

// DefaultConfig returns the balanced configuration.
func DefaultConfig() Config {
	return Config{
		Lifecycle: Lifecycle{
			ParticleCount:   150,
			Duration:        4,
			FadeOutDuration: 1,
		},
		Physics: Physics{
			Gravity:          900,
			Drag:             0.99,
			TerminalVelocity: 450,
			FixedStep:        1.0 / 120,
		},
		Spawn: Spawn{
			OriginHeightRatio: 0.9,
			Speed:             Range{Min: 650, Max: 1250},
			LaunchAngle:       -math.Pi / 2,
			LaunchSpread:      math.Pi / 2.5,
			Margin:            60,
		},
		Appearance: Appearance{
			Width:        Range{Min: 6, Max: 11},
			Height:       Range{Min: 9, Max: 16},
			FlutterSpeed: Range{Min: 1.5, Max: 5},
			FlipSpeed:    Range{Min: 2, Max: 8},
		},
		Wind: Wind{
			Force:      Range{Min: -70, Max: 70},
			TimeScale:  1.4,
			PhaseScale: 0.6,
		},
	}
}

// Validated returns a copy with every value clamped into its valid range.
// It never fails.
func (c Config) Validated() Config {
	v := c

	if v.Lifecycle.ParticleCount < 0 {
		v.Lifecycle.ParticleCount = 0
	}
	v.Lifecycle.Duration = clampFinite(v.Lifecycle.Duration, MinDuration, MaxDuration, MinDuration)
	v.Lifecycle.FadeOutDuration = clampFinite(v.Lifecycle.FadeOutDuration, 0, v.Lifecycle.Duration, 0)

	v.Physics.Gravity = finiteOr(v.Physics.Gravity, 0)
	v.Physics.Drag = clampFinite(v.Physics.Drag, 0, 1, 1)
	v.Physics.TerminalVelocity = atLeast(v.Physics.TerminalVelocity, 0)
	v.Physics.FixedStep = atLeast(v.Physics.FixedStep, MinFixedStep)
	if math.IsInf(v.Physics.FixedStep, 0) {
		v.Physics.FixedStep = MinFixedStep
	}

	v.Spawn.OriginHeightRatio = clampFinite(v.Spawn.OriginHeightRatio, 0, 1, 0.5)
	v.Spawn.Speed = orderedRange(v.Spawn.Speed, 0)
	v.Spawn.LaunchAngle = finiteOr(v.Spawn.LaunchAngle, -math.Pi/2)
	v.Spawn.LaunchSpread = clampFinite(v.Spawn.LaunchSpread, 0, 2*math.Pi, 0)
	v.Spawn.Margin = atLeast(v.Spawn.Margin, 0)

	v.Appearance.Width = orderedRange(v.Appearance.Width, 0)
	v.Appearance.Height = orderedRange(v.Appearance.Height, 0)
	v.Appearance.FlutterSpeed = orderedRange(v.Appearance.FlutterSpeed, math.Inf(-1))
	v.Appearance.FlipSpeed = orderedRange(v.Appearance.FlipSpeed, math.Inf(-1))

	v.Wind.Force = orderedRange(v.Wind.Force, math.Inf(-1))
	v.Wind.TimeScale = finiteOr(v.Wind.TimeScale, 0)
	v.Wind.PhaseScale = finiteOr(v.Wind.PhaseScale, 0)
	return v
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// on top of the defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides the values named in kv. Unknown keys and unparsable values
// are ignored. The result is validated.
func (c Config) Apply(kv map[string]string) Config {
	out := c
	for key, value := range kv {
		f, ok := lookupField(key)
		if !ok {
			continue
		}
		f.parse(&out, value)
	}
	return out.Validated()
}

// ParseConfig decodes YAML on top of the defaults, so a partial document only
// overrides the values it names.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse confetti config: %w", err)
	}
	return cfg.Validated(), nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read confetti config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode confetti config: %w", err)
	}
	return data, nil
}

func finiteOr(v, fallback float64) float64 {
	if !core.Finite(v) {
		return fallback
	}
	return v
}

// atLeast clamps v to >= lo; NaN maps to lo.
func atLeast(v, lo float64) float64 {
	if !(v >= lo) {
		return lo
	}
	return v
}

func clampFinite(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		v = fallback
	}
	return core.Clamp(v, lo, hi)
}

func orderedRange(r Range, floor float64) Range {
	r.Min = finiteOr(r.Min, 0)
	r.Max = finiteOr(r.Max, r.Min)
	if r.Min < floor {
		r.Min = floor
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}
