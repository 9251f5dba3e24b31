package sand

// Buttons is a pointer-button bitmask.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Input is the pointer state a frontend hands over once per tick.
type Input struct {
	X, Y    int
	Buttons Buttons
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Footprint returns the k*k coordinates a pen of size k centred on (x, y)
// covers. Coordinates may fall outside the grid.
func Footprint(x, y, k int) []Point {
	k = clampPen(k)
	pts := make([]Point, 0, k*k)
	for i := 1; i <= k; i++ {
		for j := 1; j <= k; j++ {
			pts = append(pts, Point{X: 1 + x + k/2 - i, Y: 1 + y + k/2 - j})
		}
	}
	return pts
}

// Paint places m under the pen footprint and returns how many in-grid
// coordinates the footprint touched. Erase clears any material to Air.
// Other materials only fill Air cells; with a pen wider than one cell and a
// material other than Glass each cell fills with 40% probability unless the
// simulation is paused.
func (w *World) Paint(x, y int, m Material, penSize int) int {
	k := clampPen(penSize)
	scatter := k > 1 && m != Glass && !w.paused
	touched := 0
	for _, p := range Footprint(x, y, k) {
		if !w.grid.InBounds(p.X, p.Y) {
			continue
		}
		touched++
		c := w.grid.At(p.X, p.Y)
		if m == Erase {
			place(c, Air, colorDark)
			continue
		}
		if c.material != Air {
			continue
		}
		if scatter && !w.chance(penScatter) {
			continue
		}
		place(c, m, colorDark)
	}
	return touched
}

// Apply paints with the material bound to the held button: left uses the
// primary slot, right the secondary one. Nothing happens when the pointer is
// off the grid or no paint button is held.
func (w *World) Apply(in Input) int {
	if !w.grid.InBounds(in.X, in.Y) {
		return 0
	}
	var m Material
	switch {
	case in.Buttons&ButtonLeft != 0:
		m = w.sel.Primary
	case in.Buttons&ButtonRight != 0:
		m = w.sel.Secondary
	default:
		return 0
	}
	return w.Paint(in.X, in.Y, m, w.sel.PenSize)
}
