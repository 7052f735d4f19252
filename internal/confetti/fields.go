package confetti

import (
	"strconv"

	"confetti/internal/core"
)

// field binds a flat snake_case key to one Config value. The same table
// drives FromMap/Apply, the parameter snapshot and the HUD controls.
type field struct {
	key   string
	label string
	group string
	typ   core.ParamType
	get   func(*Config) float64
	set   func(*Config, float64)

	step   float64
	min    float64
	max    float64
	hasMin bool
	hasMax bool
	hud    bool
}

func (f field) parse(c *Config, value string) bool {
	switch f.typ {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		f.set(c, float64(parsed))
	default:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		f.set(c, parsed)
	}
	return true
}

func (f field) parameter(c *Config) core.Parameter {
	if f.typ == core.ParamTypeInt {
		return core.IntParam(f.key, f.label, int(f.get(c)))
	}
	return core.FloatParam(f.key, f.label, f.get(c))
}

const (
	groupLifecycle  = "Lifecycle"
	groupPhysics    = "Physics"
	groupSpawn      = "Spawn"
	groupAppearance = "Appearance"
	groupWind       = "Wind"
)

var groupOrder = []string{groupLifecycle, groupPhysics, groupSpawn, groupAppearance, groupWind}

var fields = []field{
	{
		key: "particle_count", label: "Particles", group: groupLifecycle, typ: core.ParamTypeInt,
		get:  func(c *Config) float64 { return float64(c.Lifecycle.ParticleCount) },
		set:  func(c *Config, v float64) { c.Lifecycle.ParticleCount = int(v) },
		step: 10, min: 0, max: 2000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "duration", label: "Duration", group: groupLifecycle, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Lifecycle.Duration },
		set:  func(c *Config, v float64) { c.Lifecycle.Duration = v },
		step: 0.5, min: MinDuration, max: 30, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "fade_out", label: "Fade out", group: groupLifecycle, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Lifecycle.FadeOutDuration },
		set:  func(c *Config, v float64) { c.Lifecycle.FadeOutDuration = v },
		step: 0.25, min: 0, max: 30, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "gravity", label: "Gravity", group: groupPhysics, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Physics.Gravity },
		set:  func(c *Config, v float64) { c.Physics.Gravity = v },
		step: 50, min: 0, max: 4000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "drag", label: "Drag", group: groupPhysics, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Physics.Drag },
		set:  func(c *Config, v float64) { c.Physics.Drag = v },
		step: 0.005, min: 0, max: 1, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "terminal_velocity", label: "Terminal velocity", group: groupPhysics, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Physics.TerminalVelocity },
		set:  func(c *Config, v float64) { c.Physics.TerminalVelocity = v },
		step: 25, min: 0, max: 4000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "fixed_step", label: "Fixed step", group: groupPhysics, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Physics.FixedStep },
		set: func(c *Config, v float64) { c.Physics.FixedStep = v },
	},
	{
		key: "origin_height", label: "Origin height", group: groupSpawn, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Spawn.OriginHeightRatio },
		set:  func(c *Config, v float64) { c.Spawn.OriginHeightRatio = v },
		step: 0.05, min: 0, max: 1, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "speed_min", label: "Speed min", group: groupSpawn, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Spawn.Speed.Min },
		set:  func(c *Config, v float64) { c.Spawn.Speed.Min = v },
		step: 50, min: 0, max: 5000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "speed_max", label: "Speed max", group: groupSpawn, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Spawn.Speed.Max },
		set:  func(c *Config, v float64) { c.Spawn.Speed.Max = v },
		step: 50, min: 0, max: 5000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "launch_angle", label: "Launch angle", group: groupSpawn, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Spawn.LaunchAngle },
		set: func(c *Config, v float64) { c.Spawn.LaunchAngle = v },
	},
	{
		key: "launch_spread", label: "Launch spread", group: groupSpawn, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Spawn.LaunchSpread },
		set:  func(c *Config, v float64) { c.Spawn.LaunchSpread = v },
		step: 0.1, min: 0, max: 6.28, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "margin", label: "Margin", group: groupSpawn, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Spawn.Margin },
		set: func(c *Config, v float64) { c.Spawn.Margin = v },
	},
	{
		key: "width_min", label: "Width min", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.Width.Min },
		set: func(c *Config, v float64) { c.Appearance.Width.Min = v },
	},
	{
		key: "width_max", label: "Width max", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.Width.Max },
		set: func(c *Config, v float64) { c.Appearance.Width.Max = v },
	},
	{
		key: "height_min", label: "Height min", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.Height.Min },
		set: func(c *Config, v float64) { c.Appearance.Height.Min = v },
	},
	{
		key: "height_max", label: "Height max", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.Height.Max },
		set: func(c *Config, v float64) { c.Appearance.Height.Max = v },
	},
	{
		key: "flutter_min", label: "Flutter min", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.FlutterSpeed.Min },
		set: func(c *Config, v float64) { c.Appearance.FlutterSpeed.Min = v },
	},
	{
		key: "flutter_max", label: "Flutter max", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.FlutterSpeed.Max },
		set: func(c *Config, v float64) { c.Appearance.FlutterSpeed.Max = v },
	},
	{
		key: "flip_min", label: "Flip min", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.FlipSpeed.Min },
		set: func(c *Config, v float64) { c.Appearance.FlipSpeed.Min = v },
	},
	{
		key: "flip_max", label: "Flip max", group: groupAppearance, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Appearance.FlipSpeed.Max },
		set: func(c *Config, v float64) { c.Appearance.FlipSpeed.Max = v },
	},
	{
		key: "wind_min", label: "Wind min", group: groupWind, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Wind.Force.Min },
		set:  func(c *Config, v float64) { c.Wind.Force.Min = v },
		step: 10, min: -1000, max: 1000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "wind_max", label: "Wind max", group: groupWind, typ: core.ParamTypeFloat,
		get:  func(c *Config) float64 { return c.Wind.Force.Max },
		set:  func(c *Config, v float64) { c.Wind.Force.Max = v },
		step: 10, min: -1000, max: 1000, hasMin: true, hasMax: true, hud: true,
	},
	{
		key: "wind_time_scale", label: "Wind time scale", group: groupWind, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Wind.TimeScale },
		set: func(c *Config, v float64) { c.Wind.TimeScale = v },
	},
	{
		key: "wind_phase_scale", label: "Wind phase scale", group: groupWind, typ: core.ParamTypeFloat,
		get: func(c *Config) float64 { return c.Wind.PhaseScale },
		set: func(c *Config, v float64) { c.Wind.PhaseScale = v },
	},
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// Keys lists every key accepted by FromMap and Apply, in display order.
func Keys() []string {
	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.key
	}
	return keys
}

// Parameters builds a grouped snapshot of every tunable in c.
func (c Config) Parameters() core.ParameterSnapshot {
	groups := make([]core.ParameterGroup, 0, len(groupOrder))
	for _, name := range groupOrder {
		group := core.ParameterGroup{Name: name}
		for _, f := range fields {
			if f.group == name {
				group.Params = append(group.Params, f.parameter(&c))
			}
		}
		groups = append(groups, group)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values worth adjusting live from a HUD.
func ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(fields))
	for _, f := range fields {
		if !f.hud {
			continue
		}
		controls = append(controls, core.ParameterControl{
			Key:    f.key,
			Label:  f.label,
			Type:   f.typ,
			Step:   f.step,
			Min:    f.min,
			Max:    f.max,
			HasMin: f.hasMin,
			HasMax: f.hasMax,
		})
	}
	return controls
}
