package core

import (
	"math"
	"testing"
)

func TestAdvanceExactSingleStep(t *testing.T) {
	fs := NewFixedStep(1.0 / 60)
	if steps := fs.Advance(1.0 / 60); steps != 1 {
		t.Fatalf("expected exactly one step, got %d", steps)
	}
	if acc := fs.Accumulator(); acc != 0 {
		t.Fatalf("expected empty accumulator, got %g", acc)
	}
}

func TestAdvanceAccumulatesPartialSteps(t *testing.T) {
	fs := NewFixedStep(0.01)
	total := 0
	for i := 0; i < 10; i++ {
		total += fs.Advance(0.004)
	}
	if total != 4 {
		t.Fatalf("expected 4 steps from 40ms at 10ms, got %d", total)
	}
}

func TestAdvanceCapsAndDropsRemainder(t *testing.T) {
	fs := NewFixedStep(0.01)
	if steps := fs.Advance(0.2); steps != MaxStepsPerAdvance {
		t.Fatalf("expected capped %d steps, got %d", MaxStepsPerAdvance, steps)
	}
	if fs.Accumulator() != 0 {
		t.Fatalf("expected remainder to be dropped, got %g", fs.Accumulator())
	}
}

func TestAdvanceSanitizesDeltas(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  int
	}{
		{name: "nan", delta: math.NaN(), want: 0},
		{name: "positive infinity", delta: math.Inf(1), want: 0},
		{name: "negative", delta: -1, want: 0},
		{name: "clamped stall", delta: 10, want: MaxStepsPerAdvance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFixedStep(1.0 / 120)
			if got := fs.Advance(tt.delta); got != tt.want {
				t.Fatalf("Advance(%v) = %d, want %d", tt.delta, got, tt.want)
			}
		})
	}
}

func TestSetStepFallsBack(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != 1.0/60 {
		t.Fatalf("expected fallback step 1/60, got %g", fs.Step())
	}
}
