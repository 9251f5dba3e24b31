package sand

import "sandfall/internal/core"

// Rule thresholds. Every probabilistic branch compares a uniform [0,100)
// draw against one of these.
const (
	fireFlickerBright   = 30
	fireFlickerDark     = 20
	fireIgniteDown      = 40
	fireIgniteSide      = 20
	fireDriftLeft       = 50
	lavaGlowBright      = 30
	lavaDecay           = 5
	lavaIgniteDown      = 70
	lavaIgniteSide      = 20
	lavaMeltDown        = 3
	lavaMeltSide        = 2
	lavaFlowGate        = 50
	lavaSpreadHigh      = 75
	lavaSpreadLow       = 25
	torchGlowBright     = 30
	torchEmit           = 30
	spoutDrip           = 20
	waterDriftGate      = 50
	waterExtinguish     = 80
	penScatter          = 40
	fireYoungAge        = 2
	fireFlickerAgeLimit = 10
)

const (
	colorDark   uint8 = 0
	colorBright uint8 = 1
	colorMist   uint8 = 2
	colorHot    uint8 = 3
)

func (w *World) roll() int { return core.Percent(w.rng) }

func (w *World) chance(p int) bool { return w.roll() < p }

// is reads the neighbor through the clamping accessor, so an off-grid
// neighbor of an edge cell is that edge cell itself.
func (w *World) is(x, y int, m Material) bool { return w.grid.MaterialAt(x, y) == m }

// move swaps the particle into (nx, ny) and returns where it ended up.
func (w *World) move(x, y, nx, ny int) (int, int) {
	if (nx == x && ny == y) || !w.grid.InBounds(nx, ny) {
		return x, y
	}
	w.grid.Swap(x, y, nx, ny)
	w.stats.Moves++
	return nx, ny
}

// grow increments the age of whatever now sits at (x, y).
func (w *World) grow(x, y int) {
	c := w.grid.At(x, y)
	c.SetAge(c.age + 1)
}

// ignite turns Sand into Fire. Age is carried over, not reset.
func (w *World) ignite(x, y int) {
	c := w.grid.At(x, y)
	c.SetMaterial(Fire)
	c.SetColor(colorHot)
	w.stats.Ignitions++
}

// melt turns Glass back into Sand.
func (w *World) melt(x, y int) {
	c := w.grid.At(x, y)
	c.SetMaterial(Sand)
	c.SetColor(colorBright)
	w.stats.Melts++
}

// extinguish turns the cell into Air, keeping only its updated flag.
func (w *World) extinguish(c *Cell) {
	place(c, Air, colorDark)
	w.stats.Extinguished++
}

// place rewrites material, color and age; the updated flag is kept so the
// scheduler's bookkeeping for the current sweep stays intact.
func place(c *Cell, m Material, col uint8) {
	c.SetMaterial(m)
	c.SetColor(col)
	c.SetAge(0)
}

// updateInert handles Air and Glass: no movement, color reset.
func updateInert(w *World, x, y int) (int, int) {
	w.grid.At(x, y).SetColor(colorDark)
	return x, y
}
