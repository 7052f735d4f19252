package confetti

import "confetti/internal/core"

// Parameters reports the active configuration for HUDs and tools.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	return s.cfg.Parameters()
}

// ParameterControls lists the HUD-adjustable values.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return ParameterControls()
}

// SetIntParameter updates an integer tunable. The value is clamped through
// validation; it reports false for unknown or non-integer keys.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	f, ok := lookupField(key)
	if !ok || f.typ != core.ParamTypeInt {
		return false
	}
	cfg := s.cfg
	f.set(&cfg, float64(value))
	s.SetConfig(cfg.Validated())
	return true
}

// SetFloatParameter updates a floating-point tunable. The value is clamped
// through validation; it reports false for unknown or integer keys.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	f, ok := lookupField(key)
	if !ok || f.typ != core.ParamTypeFloat {
		return false
	}
	cfg := s.cfg
	f.set(&cfg, value)
	s.SetConfig(cfg.Validated())
	return true
}
