package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"confetti/internal/app"
	"confetti/internal/confetti"
	"confetti/pkg/core"
)

func main() {
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	width := flag.Float64("width", 800, "bounds width for tuning runs")
	height := flag.Float64("height", 600, "bounds height for tuning runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic flights")
	preset := flag.String("preset", "default", "starting preset")
	peak := flag.Float64("peak", 0.6, "target peak height as a fraction of the bounds height")
	hang := flag.Float64("hang", 2.5, "minimum seconds at least one particle stays alive")
	manualOnly := flag.Bool("manual", false, "skip tuning and only evaluate provided overrides")
	out := flag.String("out", "", "write the tuned configuration as YAML to this path")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	base, ok := confetti.Preset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q", *preset)
	}
	base = base.Apply(overrides.Map())
	bounds := core.Size{W: *width, H: *height}
	target := confetti.TuneTarget{PeakHeightRatio: *peak, MinHangTime: *hang}

	baseline := confetti.Fly(base, bounds, *seed)
	fmt.Printf("Baseline: %s (score %.4f)\n", describe(baseline), confetti.FlightScore(baseline, target))

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping tuning.")
		printParams(base)
		return
	}

	cfg, result, trace := confetti.Tune(base, bounds, *seed, target, *passes, *workers)
	fmt.Printf("\nBest found: %s (score %.4f)\n", describe(result), confetti.FlightScore(result, target))
	printParams(cfg)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			value := rec.Value
			if value == "" {
				value = "-"
			}
			fmt.Printf("  pass %d: %s=%s -> peak=%.3f hang=%.2fs score=%.4f\n",
				rec.Pass, rec.Parameter, value, rec.Result.PeakHeightRatio, rec.Result.LastAliveTime, confetti.FlightScore(rec.Result, target))
		}
	}

	if *out != "" {
		data, err := confetti.MarshalConfig(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("failed to write %s: %v", *out, err)
		}
		log.Printf("wrote %s", *out)
	}
}

func describe(r confetti.FlightResult) string {
	return fmt.Sprintf("peak %.3f, spread %.3f, half-life %.2fs, last alive %.2fs, %d/%d steps",
		r.PeakHeightRatio, r.SpreadRatio, r.HalfLifeTime, r.LastAliveTime, r.StepsSimulated, r.InitialCount)
}

func printParams(cfg confetti.Config) {
	fmt.Println("Parameters:")
	for _, group := range cfg.Parameters().Groups {
		for _, p := range group.Params {
			fmt.Printf("  %s=%s\n", p.Key, p.Value)
		}
	}
}
