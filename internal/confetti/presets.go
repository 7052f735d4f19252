package confetti

import (
	"math"
	"sort"
)

// PresetFactory builds a preset configuration.
type PresetFactory func() Config

var presets = map[string]PresetFactory{}

// RegisterPreset adds a named configuration bundle.
func RegisterPreset(name string, f PresetFactory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Preset returns the validated configuration registered under name.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f().Validated(), true
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GentleConfig is a smaller, softer burst.
func GentleConfig() Config {
	c := DefaultConfig()
	c.Lifecycle = Lifecycle{ParticleCount: 80, Duration: 5, FadeOutDuration: 1.5}
	c.Physics.Gravity = 500
	c.Physics.Drag = 0.985
	c.Physics.TerminalVelocity = 220
	c.Spawn.Speed = Range{Min: 400, Max: 800}
	c.Spawn.LaunchSpread = math.Pi / 3
	c.Wind.Force = Range{Min: -40, Max: 40}
	return c
}

// HighImpactConfig is a dense, fast, short burst.
func HighImpactConfig() Config {
	c := DefaultConfig()
	c.Lifecycle = Lifecycle{ParticleCount: 320, Duration: 3.5, FadeOutDuration: 0.8}
	c.Physics.Gravity = 1200
	c.Physics.Drag = 0.992
	c.Physics.TerminalVelocity = 600
	c.Spawn.Speed = Range{Min: 900, Max: 1700}
	c.Spawn.LaunchSpread = math.Pi / 1.8
	c.Appearance.Width = Range{Min: 7, Max: 13}
	c.Appearance.Height = Range{Min: 10, Max: 18}
	return c
}

// SlowFallConfig floats down with strong flutter and wind.
func SlowFallConfig() Config {
	c := DefaultConfig()
	c.Lifecycle = Lifecycle{ParticleCount: 140, Duration: 6, FadeOutDuration: 2}
	c.Physics.Gravity = 350
	c.Physics.Drag = 0.975
	c.Physics.TerminalVelocity = 120
	c.Spawn.Speed = Range{Min: 500, Max: 950}
	c.Appearance.FlutterSpeed = Range{Min: 3, Max: 7}
	c.Wind.Force = Range{Min: -90, Max: 90}
	c.Wind.TimeScale = 0.9
	return c
}

func init() {
	RegisterPreset("default", DefaultConfig)
	RegisterPreset("gentle", GentleConfig)
	RegisterPreset("high-impact", HighImpactConfig)
	RegisterPreset("slow-fall", SlowFallConfig)
}
