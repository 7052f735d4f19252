package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"confetti/internal/confetti"
	"confetti/internal/palette"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one raw key=value entry.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the entries keyed by name; later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Flags represents the command-line parameters shared by the players.
type Flags struct {
	Preset     string
	ConfigPath string
	Palette    string
	Seed       int64
	Width      int
	Height     int
	Scale      int
	TPS        int
	Loop       bool
	HUD        bool
	Set        KVList
}

// NewFlags returns Flags populated with sensible defaults.
func NewFlags() *Flags {
	return &Flags{
		Preset:  "default",
		Palette: "classic",
		Width:   800,
		Height:  600,
		Scale:   1,
		TPS:     60,
		Loop:    true,
		HUD:     true,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.Preset, "preset", f.Preset, "configuration preset ("+strings.Join(confetti.Presets(), ", ")+")")
	fs.StringVar(&f.ConfigPath, "config", f.ConfigPath, "YAML configuration file; overrides the preset")
	fs.StringVar(&f.Palette, "palette", f.Palette, "colour palette ("+strings.Join(palette.Names(), ", ")+")")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "random seed; 0 uses a fresh system seed per burst")
	fs.IntVar(&f.Width, "width", f.Width, "view width in simulation units")
	fs.IntVar(&f.Height, "height", f.Height, "view height in simulation units")
	fs.IntVar(&f.Scale, "scale", f.Scale, "pixel scale multiplier")
	fs.IntVar(&f.TPS, "tps", f.TPS, "frames per second driving the simulation")
	fs.BoolVar(&f.Loop, "loop", f.Loop, "restart the burst after it ends")
	fs.BoolVar(&f.HUD, "hud", f.HUD, "show the parameter panel")
	fs.Var(&f.Set, "set", "parameter override in key=value form (repeatable)")
}

// Resolve builds the configuration: the config file if given, the preset
// otherwise, then the -set overrides. Unknown override keys are reported.
func (f *Flags) Resolve() (confetti.Config, error) {
	var cfg confetti.Config
	if f.ConfigPath != "" {
		loaded, err := confetti.LoadConfig(f.ConfigPath)
		if err != nil {
			return confetti.Config{}, err
		}
		cfg = loaded
	} else {
		preset, ok := confetti.Preset(f.Preset)
		if !ok {
			return confetti.Config{}, fmt.Errorf("unknown preset %q (have %s)", f.Preset, strings.Join(confetti.Presets(), ", "))
		}
		cfg = preset
	}

	overrides := f.Set.Map()
	if unknown := unknownKeys(overrides); len(unknown) > 0 {
		return confetti.Config{}, fmt.Errorf("unknown parameter(s) %s (have %s)", strings.Join(unknown, ", "), strings.Join(confetti.Keys(), ", "))
	}
	return cfg.Apply(overrides), nil
}

// Colors resolves the palette flag into a colour source.
func (f *Flags) Colors() (confetti.ColorSource, error) {
	src, ok := palette.Named(f.Palette)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q (have %s)", f.Palette, strings.Join(palette.Names(), ", "))
	}
	return src, nil
}

// Label is a short description for title bars and status lines.
func (f *Flags) Label() string {
	name := f.Preset
	if f.ConfigPath != "" {
		name = f.ConfigPath
	}
	return fmt.Sprintf("%s · %s", name, f.Palette)
}

func unknownKeys(kv map[string]string) []string {
	known := map[string]bool{}
	for _, k := range confetti.Keys() {
		known[k] = true
	}
	var unknown []string
	for k := range kv {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}
