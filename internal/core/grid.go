package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// A zero value marks an empty cell; any other value is a filled cell whose
// value never changes once written through Fill.
type ByteGrid struct {
	W, H   int
	data   []uint8
	filled int
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice for read access by renderers.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). ok is false for out-of-range
// coordinates.
func (g *ByteGrid) At(x, y int) (v uint8, ok bool) {
	if !g.In(x, y) {
		return 0, false
	}
	return g.data[g.Index(x, y)], true
}

// Fill writes v into an empty cell. It returns false without touching the grid
// when the coordinates are out of range, the cell is already filled or v is 0.
func (g *ByteGrid) Fill(x, y int, v uint8) bool {
	if v == 0 || !g.In(x, y) {
		return false
	}
	idx := g.Index(x, y)
	if g.data[idx] != 0 {
		return false
	}
	g.data[idx] = v
	g.filled++
	return true
}

// Filled returns the number of non-empty cells.
func (g *ByteGrid) Filled() int { return g.filled }

// Total returns the number of cells in the grid.
func (g *ByteGrid) Total() int { return len(g.data) }

// Clear empties every cell.
func (g *ByteGrid) Clear() {
	clear(g.data)
	g.filled = 0
}
