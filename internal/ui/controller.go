package ui

import "sandfall/internal/sims/sand"

// Frame describes what a single controller tick did besides stepping.
type Frame struct {
	Painted int
	Picked  sand.MenuItem
	Changed bool
}

// Controller turns per-frame pointer state into world updates. Frontends
// hand it absolute button state; menu picks fire only on the press edge
// while painting follows held buttons.
type Controller struct {
	World  *sand.World
	Layout Layout

	prev   sand.Buttons
	cursor sand.Input
}

// NewController wires a controller to w with the default layout.
func NewController(w *sand.World) *Controller {
	return &Controller{World: w, Layout: NewLayout(w.Size())}
}

// Tick runs one frame: the sweep, painting under the pointer, then a menu
// pick if a button went down over the menu bar.
func (c *Controller) Tick(in sand.Input) Frame {
	pressed := in.Buttons &^ c.prev
	c.prev = in.Buttons
	c.cursor = in

	var f Frame
	c.World.Step()
	if c.Layout.InGrid(in.X, in.Y) {
		f.Painted = c.World.Apply(in)
		return f
	}
	if pressed == 0 {
		return f
	}
	if item, ok := c.Layout.ItemAt(in.X, in.Y); ok {
		f.Picked = item
		f.Changed = c.World.Pick(item, in.Buttons)
	}
	return f
}

// Cursor returns the pointer state of the last tick.
func (c *Controller) Cursor() sand.Input { return c.cursor }
