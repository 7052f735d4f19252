package confetti

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"confetti/pkg/core"
)

// TuneTarget describes the flight shape a tuning run aims for.
type TuneTarget struct {
	// PeakHeightRatio is the desired peak height above the origin as a
	// fraction of the bounds height.
	PeakHeightRatio float64
	// MinHangTime is the shortest acceptable LastAliveTime in seconds.
	MinHangTime float64
}

// TuneRecord documents a single improvement encountered while exploring the
// parameter space.
type TuneRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    FlightResult
	Config    Config
}

type tuneSpec struct {
	name   string
	values []float64
	getter func(Config) float64
	setter func(*Config, float64)
}

var tuneSpecs = []tuneSpec{
	{
		name:   "gravity",
		values: []float64{300, 500, 700, 900, 1100, 1400},
		getter: func(c Config) float64 { return c.Physics.Gravity },
		setter: func(c *Config, v float64) { c.Physics.Gravity = v },
	},
	{
		name:   "drag",
		values: []float64{0.97, 0.975, 0.98, 0.985, 0.99, 0.995},
		getter: func(c Config) float64 { return c.Physics.Drag },
		setter: func(c *Config, v float64) { c.Physics.Drag = v },
	},
	{
		name:   "speed_max",
		values: []float64{700, 900, 1100, 1300, 1600},
		getter: func(c Config) float64 { return c.Spawn.Speed.Max },
		setter: func(c *Config, v float64) {
			c.Spawn.Speed.Max = v
			if c.Spawn.Speed.Min > v {
				c.Spawn.Speed.Min = v
			}
		},
	},
	{
		name:   "terminal_velocity",
		values: []float64{120, 200, 300, 450, 600},
		getter: func(c Config) float64 { return c.Physics.TerminalVelocity },
		setter: func(c *Config, v float64) { c.Physics.TerminalVelocity = v },
	},
}

// Tune performs a coarse coordinate-descent search over the physics values
// that shape a burst and returns the best configuration found, its telemetry
// and the improvement trace. Candidates are evaluated on up to workers
// goroutines; every evaluation uses the same seed so results are comparable.
func Tune(base Config, bounds core.Size, seed int64, target TuneTarget, passes, workers int) (Config, FlightResult, []TuneRecord) {
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	current := base.Validated()
	currentResult := Fly(current, bounds, seed)
	records := []TuneRecord{{Parameter: "baseline", Result: currentResult, Config: current}}

	rng := rand.New(rand.NewPCG(uint64(seed)+0x5f3759df, 0))
	for i := 0; i < passes*4; i++ {
		candidate := randomizePhysics(rng, current)
		res := Fly(candidate, bounds, seed)
		if betterFlight(res, currentResult, target) {
			current, currentResult = candidate, res
			records = append(records, TuneRecord{
				Parameter: fmt.Sprintf("random#%d", i+1),
				Result:    res,
				Config:    candidate,
			})
		}
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for _, spec := range tuneSpecs {
			best, bestResult, rec, changed := evaluateTuneSpec(current, currentResult, spec, bounds, seed, target, workers, pass)
			if changed {
				current, currentResult = best, bestResult
				records = append(records, rec...)
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	return current, currentResult, records
}

func evaluateTuneSpec(cfg Config, baseline FlightResult, spec tuneSpec, bounds core.Size, seed int64, target TuneTarget, workers, pass int) (Config, FlightResult, []TuneRecord, bool) {
	type candidate struct {
		cfg    Config
		result FlightResult
		valid  bool
	}

	candidates := make([]candidate, len(spec.values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range spec.values {
		if almostEqual(value, spec.getter(cfg)) {
			continue
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v float64) {
			defer wg.Done()
			c := cfg
			spec.setter(&c, v)
			c = c.Validated()
			candidates[i] = candidate{cfg: c, result: Fly(c, bounds, seed), valid: true}
			<-sem
		}(idx, value)
	}
	wg.Wait()

	best, bestResult := cfg, baseline
	changed := false
	var records []TuneRecord
	for idx, cand := range candidates {
		if !cand.valid || !betterFlight(cand.result, bestResult, target) {
			continue
		}
		best, bestResult = cand.cfg, cand.result
		changed = true
		records = append(records, TuneRecord{
			Pass:      pass,
			Parameter: spec.name,
			Value:     fmt.Sprintf("%.3f", spec.values[idx]),
			Result:    cand.result,
			Config:    cand.cfg,
		})
	}
	return best, bestResult, records, changed
}

// FlightScore rates a result against target; lower is better.
func FlightScore(r FlightResult, target TuneTarget) float64 {
	score := math.Abs(r.PeakHeightRatio - target.PeakHeightRatio)
	if r.LastAliveTime < target.MinHangTime {
		score += target.MinHangTime - r.LastAliveTime
	}
	return score
}

func betterFlight(a, b FlightResult, target TuneTarget) bool {
	sa, sb := FlightScore(a, target), FlightScore(b, target)
	if !almostEqual(sa, sb) {
		return sa < sb
	}
	return a.SpreadRatio > b.SpreadRatio
}

func almostEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func randomizePhysics(rng *rand.Rand, base Config) Config {
	c := base
	c.Physics.Gravity = randomFloatRange(rng, 300, 1400)
	c.Physics.Drag = randomFloatRange(rng, 0.97, 0.995)
	c.Physics.TerminalVelocity = randomFloatRange(rng, 120, 600)
	c.Spawn.Speed.Max = randomFloatRange(rng, 700, 1600)
	if c.Spawn.Speed.Min > c.Spawn.Speed.Max {
		c.Spawn.Speed.Min = c.Spawn.Speed.Max
	}
	return c.Validated()
}

func randomFloatRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
