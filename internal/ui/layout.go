package ui

import (
	"image"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

// MenuRowHeight is the height of one menu row in grid pixels.
const MenuRowHeight = 10

// Layout places the grid above a menu bar of sand.MenuRows rows spanning the
// grid width. All coordinates are in grid pixels.
type Layout struct {
	Grid core.Size
}

// NewLayout returns the layout for a grid of the given size.
func NewLayout(size core.Size) Layout { return Layout{Grid: size} }

// MenuHeight is the height of the menu bar.
func (l Layout) MenuHeight() int { return sand.MenuRows * MenuRowHeight }

// Size is the total area covered by grid and menu.
func (l Layout) Size() core.Size {
	return core.Size{W: l.Grid.W, H: l.Grid.H + l.MenuHeight()}
}

// ColumnWidth is the width of one menu column.
func (l Layout) ColumnWidth() int {
	w := l.Grid.W / sand.MenuColumns
	if w < 1 {
		w = 1
	}
	return w
}

// InGrid reports whether (x, y) lies on the simulation grid.
func (l Layout) InGrid(x, y int) bool { return l.Grid.Contains(x, y) }

// ItemAt maps a point in the menu bar to its item.
func (l Layout) ItemAt(x, y int) (sand.MenuItem, bool) {
	if x < 0 || x >= l.Grid.W || y < l.Grid.H {
		return 0, false
	}
	col := x / l.ColumnWidth()
	row := (y - l.Grid.H) / MenuRowHeight
	return sand.MenuItemAt(col, row)
}

// ItemRect is the area occupied by item.
func (l Layout) ItemRect(item sand.MenuItem) image.Rectangle {
	i := int(item) - 1
	col, row := i/sand.MenuRows, i%sand.MenuRows
	cw := l.ColumnWidth()
	x0, y0 := col*cw, l.Grid.H+row*MenuRowHeight
	return image.Rect(x0, y0, x0+cw, y0+MenuRowHeight)
}

// CursorRect is the outline of a pen of size k at (x, y). It covers exactly
// the cells sand.Footprint returns.
func (l Layout) CursorRect(x, y, k int) image.Rectangle {
	x0 := 1 + x + k/2 - k
	y0 := 1 + y + k/2 - k
	return image.Rect(x0, y0, x0+k, y0+k)
}
