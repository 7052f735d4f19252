package core

import (
	"math"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("draw %d diverged: %v != %v", i, av, bv)
		}
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := Between(rng, -3, 5)
		if v < -3 || v > 5 {
			t.Fatalf("value %f outside [-3,5]", v)
		}
	}
}

type countingRandom struct{ calls int }

func (c *countingRandom) Float64() float64 {
	c.calls++
	return 0.5
}

func TestBetweenDegenerateRangeSkipsDraw(t *testing.T) {
	src := &countingRandom{}
	if got := Between(src, 2, 2); got != 2 {
		t.Fatalf("expected 2, got %f", got)
	}
	if src.calls != 0 {
		t.Fatalf("expected no draws for empty range, got %d", src.calls)
	}
}

func TestPickBounds(t *testing.T) {
	rng := NewRNG(3)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		idx := Pick(rng, 4)
		if idx < 0 || idx >= 4 {
			t.Fatalf("index %d outside [0,4)", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected all four indices to appear, saw %v", seen)
	}
	if Pick(rng, 0) != 0 {
		t.Fatal("Pick with n=0 should return 0")
	}
}

func TestVecHelpers(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Fatalf("expected length 5, got %f", v.Len())
	}
	if got := v.Add(V(1, 1)).Sub(V(2, 2)); got != V(2, 3) {
		t.Fatalf("unexpected add/sub result %+v", got)
	}
	if got := v.Mul(V(2, 0.5)); got != V(6, 2) {
		t.Fatalf("unexpected componentwise product %+v", got)
	}
	f := FromAngle(math.Pi/2, 2)
	if math.Abs(f.X) > 1e-12 || math.Abs(f.Y-2) > 1e-12 {
		t.Fatalf("unexpected FromAngle result %+v", f)
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Fatal("Lerp mismatch")
	}
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp mismatch")
	}
	if Finite(math.NaN()) || Finite(math.Inf(1)) || !Finite(1) {
		t.Fatal("Finite mismatch")
	}
}
