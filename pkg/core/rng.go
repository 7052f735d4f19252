package core

import "math/rand/v2"

// Random is the capability the engine consumes for every random draw.
// Float64 returns a uniform value in [0, 1).
type Random interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewSystemRNG returns an RNG seeded from the runtime's entropy source. It is
// the default when a host does not inject its own source.
func NewSystemRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Between draws a uniform value in [lo, hi]. When hi <= lo it returns lo
// without consuming a draw.
func Between(r Random, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Pick returns a uniform index in [0, n) using a single Float64 draw.
func Pick(r Random, n int) int {
	if n <= 1 {
		return 0
	}
	idx := int(r.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
