package core

import "testing"

func TestGridResizeClampsAndClears(t *testing.T) {
	g := NewGrid[int](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}

	g.Resize(4, 3)
	*g.At(3, 2) = 7
	if g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("At and Index disagree")
	}

	g.Resize(2, 2)
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared after resize", i)
		}
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid[uint8](3, 3)
	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{2, 2, true},
		{-1, 0, false},
		{3, 0, false},
		{0, 3, false},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, tt.y) != nil; got != tt.ok {
			t.Errorf("At(%d,%d) present=%v, want %v", tt.x, tt.y, got, tt.ok)
		}
	}
}
