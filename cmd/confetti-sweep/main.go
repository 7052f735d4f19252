package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"confetti/internal/confetti"
	"confetti/pkg/core"
)

type paramSet struct {
	gravity  float64
	drag     float64
	speedMax float64
	terminal float64
	spread   float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("gravity=%.0f drag=%.3f speed_max=%.0f terminal=%.0f spread=%.2f",
		p.gravity, p.drag, p.speedMax, p.terminal, p.spread)
}

func (p paramSet) apply(base confetti.Config) confetti.Config {
	cfg := base
	cfg.Physics.Gravity = p.gravity
	cfg.Physics.Drag = p.drag
	cfg.Physics.TerminalVelocity = p.terminal
	cfg.Spawn.Speed.Max = p.speedMax
	if cfg.Spawn.Speed.Min > p.speedMax {
		cfg.Spawn.Speed.Min = p.speedMax
	}
	cfg.Spawn.LaunchSpread = p.spread
	return cfg.Validated()
}

type scenarioResult struct {
	params paramSet
	flight confetti.FlightResult
	score  float64
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed used for every flight")
	preset := flag.String("preset", "default", "base preset")
	peak := flag.Float64("peak", 0.6, "target peak height ratio")
	hang := flag.Float64("hang", 2.5, "target minimum hang time in seconds")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	base, ok := confetti.Preset(*preset)
	if !ok {
		fmt.Printf("unknown preset %q\n", *preset)
		return
	}
	bounds := core.Size{W: 800, H: 600}
	target := confetti.TuneTarget{PeakHeightRatio: *peak, MinHangTime: *hang}

	gravityOptions := []float64{500, 700, 900, 1200}
	dragOptions := []float64{0.98, 0.985, 0.99, 0.995}
	speedOptions := []float64{900, 1100, 1300}
	terminalOptions := []float64{200, 350, 500}
	spreadOptions := []float64{1.0, 1.26, 1.6}

	var sets []paramSet
	for _, g := range gravityOptions {
		for _, d := range dragOptions {
			for _, s := range speedOptions {
				for _, tv := range terminalOptions {
					for _, sp := range spreadOptions {
						sets = append(sets, paramSet{gravity: g, drag: d, speedMax: s, terminal: tv, spread: sp})
					}
				}
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers)\n", len(sets), *workers)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				flight := confetti.Fly(params.apply(base), bounds, *seed)
				results <- scenarioResult{params: params, flight: flight, score: confetti.FlightScore(flight, target)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score < all[j].score
		}
		return all[i].params.String() < all[j].params.String()
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) score=%.4f peak=%.3f spread=%.3f halfLife=%.2fs lastAlive=%.2fs params=%s\n",
			i+1, res.score, res.flight.PeakHeightRatio, res.flight.SpreadRatio, res.flight.HalfLifeTime, res.flight.LastAliveTime, res.params)
	}
}
