package core

// Grid stores a 2D grid of cells in row-major order. Front-ends that
// rasterise a cloud into coarse cells (terminal columns, pixel buffers)
// reuse one Grid across frames.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewGrid[T any](w, h int) *Grid[T] {
	g := &Grid[T]{}
	g.Resize(w, h)
	return g
}

// Resize changes the dimensions, reusing the backing slice when it is large
// enough. Contents are cleared.
func (g *Grid[T]) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
	} else {
		g.data = make([]T, w*h)
	}
	g.Clear()
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns a pointer to the cell at (x, y), or nil outside the grid.
func (g *Grid[T]) At(x, y int) *T {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.data[g.Index(x, y)]
}

// Clear resets every cell to its zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}
