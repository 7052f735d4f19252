package confetti

import "fmt"

// Cloud stores particles as parallel traits/state slices. Alive particles
// occupy the prefix [0, AliveCount).
type Cloud struct {
	traits  []Traits
	states  []State
	alive   int
	version uint64
}

// NewCloud wraps the provided slices. Mismatched lengths or an alive count
// outside [0, len] are caller bugs and panic.
func NewCloud(traits []Traits, states []State, alive int) *Cloud {
	if len(traits) != len(states) {
		panic(fmt.Sprintf("confetti: traits/state length mismatch (%d != %d)", len(traits), len(states)))
	}
	if alive < 0 || alive > len(traits) {
		panic(fmt.Sprintf("confetti: alive count %d outside [0, %d]", alive, len(traits)))
	}
	return &Cloud{traits: traits, states: states, alive: alive}
}

// Len returns the storage capacity, including dead particles.
func (c *Cloud) Len() int { return len(c.traits) }

// AliveCount returns the number of particles in the alive prefix.
func (c *Cloud) AliveCount() int { return c.alive }

// Version changes whenever the particle data changes.
func (c *Cloud) Version() uint64 { return c.version }

// IncrementVersion marks the cloud as changed.
func (c *Cloud) IncrementVersion() { c.version++ }

// Traits returns the alive prefix of the traits slice. Callers must not
// retain it across a Tick, Seek or Stop.
func (c *Cloud) Traits() []Traits { return c.traits[:c.alive] }

// States returns the alive prefix of the state slice.
func (c *Cloud) States() []State { return c.states[:c.alive] }

// Trait returns the traits of particle i.
func (c *Cloud) Trait(i int) Traits { return c.traits[i] }

// State returns the state of particle i.
func (c *Cloud) State(i int) State { return c.states[i] }

// Compact moves particles with positive opacity to the front in a single
// forward sweep and shrinks the alive count. It does not bump the version.
func (c *Cloud) Compact() {
	w := 0
	for r := 0; r < c.alive; r++ {
		if c.states[r].Opacity <= 0 {
			continue
		}
		if w != r {
			c.traits[w], c.traits[r] = c.traits[r], c.traits[w]
			c.states[w], c.states[r] = c.states[r], c.states[w]
		}
		w++
	}
	c.alive = w
}

// Clone returns a deep copy of the cloud.
func (c *Cloud) Clone() *Cloud {
	return &Cloud{
		traits:  append([]Traits(nil), c.traits...),
		states:  append([]State(nil), c.states...),
		alive:   c.alive,
		version: c.version,
	}
}

// CopyFrom overwrites the particle data with src, reusing the existing
// buffers when they are large enough. The version is left untouched so it
// stays monotonic.
func (c *Cloud) CopyFrom(src *Cloud) {
	c.traits = append(c.traits[:0], src.traits...)
	c.states = append(c.states[:0], src.states...)
	c.alive = src.alive
}
