package sand

import "sandfall/internal/core"

// Grid stores cells in row-major order. Reads outside the grid clamp to the
// nearest edge cell; writes outside the grid are dropped.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Index returns the linear slice index for in-grid coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clamp maps any coordinate onto the nearest in-grid coordinate.
func (g *Grid) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// At returns a pointer to the cell at (x, y), clamping to the edge.
func (g *Grid) At(x, y int) *Cell {
	x, y = g.Clamp(x, y)
	return &g.cells[g.Index(x, y)]
}

// Get returns a copy of the cell at (x, y), clamping to the edge.
func (g *Grid) Get(x, y int) Cell { return *g.At(x, y) }

// MaterialAt is shorthand for Get(x, y).Material().
func (g *Grid) MaterialAt(x, y int) Material { return g.At(x, y).material }

// Set writes c at (x, y). Out-of-grid writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = c
}

// Swap exchanges the full state of two cells. Out-of-grid coordinates make
// it a no-op, as does swapping a cell with itself.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i, j := g.Index(x1, y1), g.Index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Clear resets every cell to Air.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []Cell { return g.cells }

// Count returns how many cells hold material m.
func (g *Grid) Count(m Material) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].material == m {
			n++
		}
	}
	return n
}
