//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// MenuBar draws the menu strip under the grid along with the selection
// markers, the pen indicator and the cursor.
type MenuBar struct {
	ctrl  *Controller
	scale int
}

// NewMenuBar returns a menu bar drawing the state held by ctrl.
func NewMenuBar(ctrl *Controller, scale int) *MenuBar {
	if scale <= 0 {
		scale = 1
	}
	return &MenuBar{ctrl: ctrl, scale: scale}
}

// Draw paints the menu and the cursor using the simulation palette.
func (m *MenuBar) Draw(screen *ebiten.Image, palette []color.RGBA) {
	l := m.ctrl.Layout
	w := m.ctrl.World
	sel := w.Selection()

	vector.FillRect(screen, 0, m.px(l.Grid.H), m.px(l.Grid.W), m.px(l.MenuHeight()), render.Lookup(palette, 0), false)

	face := basicfont.Face7x13
	for item := sand.MenuItem(1); item <= sand.MenuPen; item++ {
		label := item.Label()
		if item == sand.MenuPause && w.Paused() {
			label = "play"
		}
		if label == "" {
			continue
		}
		fg := render.Lookup(palette, 1)
		if mat, ok := item.Material(); ok && mat == sand.Water && !w.Config().Water {
			fg = render.Lookup(palette, 2)
		}
		r := l.ItemRect(item)
		x := int(m.px(r.Min.X)) + 3*m.scale
		y := int(m.px(r.Max.Y)) - (int(m.px(MenuRowHeight))-face.Ascent)/2 - 1
		text.Draw(screen, label, face, x, y, fg)
	}

	m.marker(screen, sand.MenuItem(sel.Primary), 0, render.Lookup(palette, 3))
	m.marker(screen, sand.MenuItem(sel.Secondary), 1, render.Lookup(palette, 2))

	pen := l.ItemRect(sand.MenuPen)
	k := sel.PenSize
	cx := pen.Max.X - 8
	cy := pen.Min.Y + MenuRowHeight/2
	m.stroke(screen, image.Rect(cx-k/2, cy-k/2, cx-k/2+k, cy-k/2+k), render.Lookup(palette, 2))

	cur := m.ctrl.Cursor()
	if l.InGrid(cur.X, cur.Y) {
		r := l.CursorRect(cur.X, cur.Y, k).Intersect(image.Rect(0, 0, l.Grid.W, l.Grid.H))
		vector.FillRect(screen, m.px(r.Min.X), m.px(r.Min.Y), m.px(r.Dx()), m.px(r.Dy()),
			render.Lookup(palette, sand.CursorColor(sel.Primary)), false)
	}
}

// marker draws a small square at the left edge of item. Slot 0 sits above
// slot 1.
func (m *MenuBar) marker(screen *ebiten.Image, item sand.MenuItem, slot int, clr color.Color) {
	r := m.ctrl.Layout.ItemRect(item)
	y := r.Min.Y + 2 + slot*(MenuRowHeight/2-1)
	vector.FillRect(screen, m.px(r.Min.X)+1, m.px(y), float32(m.scale), float32(m.scale), clr, false)
}

func (m *MenuBar) stroke(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.StrokeRect(screen, m.px(r.Min.X), m.px(r.Min.Y), m.px(r.Dx()), m.px(r.Dy()), 1, clr, false)
}

func (m *MenuBar) px(v int) float32 { return float32(v * m.scale) }
