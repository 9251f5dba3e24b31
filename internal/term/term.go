// Package term runs the sandbox in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/logx"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the upper grid cell as foreground and the lower one as
// background, so one terminal row shows two grid rows.
const upperHalf = '▀'

const frameInterval = 16 * time.Millisecond

// Options configures a Frontend.
type Options struct {
	TPS  int
	Seed int64
	Log  *logx.Logger
	Cues Cues
}

// Frontend renders a world onto a tcell screen and feeds it mouse and key
// input.
type Frontend struct {
	screen tcell.Screen
	world  *sand.World
	ctrl   *ui.Controller
	step   *core.FixedStep
	log    *logx.Logger
	cues   Cues
	seed   int64

	palette []tcell.Color
	colors  []uint8

	col, row int
	buttons  sand.Buttons
}

// New wires a frontend to an initialised screen.
func New(screen tcell.Screen, world *sand.World, opts Options) *Frontend {
	if opts.Cues == nil {
		opts.Cues = Silent{}
	}
	f := &Frontend{
		screen: screen,
		world:  world,
		ctrl:   ui.NewController(world),
		step:   core.NewFixedStep(opts.TPS),
		log:    opts.Log,
		cues:   opts.Cues,
		seed:   opts.Seed,
		col:    -1,
		row:    -1,
	}
	for _, c := range world.Palette() {
		f.palette = append(f.palette, tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return f
}

// Run polls events and ticks the world until ctx ends or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	f.screen.EnableMouse()
	f.screen.HideCursor()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	f.log.Infof("terminal frontend started: %dx%d grid, seed %d", f.world.Size().W, f.world.Size().H, f.seed)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.Handle(ev) {
				f.log.Infof("quit after %d ticks", f.world.Tick())
				return nil
			}
		case now := <-ticker.C:
			if f.step.ShouldStepAt(now) {
				f.Tick()
			}
			f.Draw()
		}
	}
}

// Handle applies one event. It reports false when the user asked to quit.
func (f *Frontend) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.col, f.row = ev.Position()
		f.buttons = buttonsFrom(ev.Buttons())
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == ' ':
		f.world.TogglePause()
	case r == 'c':
		f.world.Clear()
	case r == 'r':
		f.world.Reset(f.seed)
		f.log.Infof("reset with seed %d", f.seed)
	case r == 'p':
		f.world.Selection().CyclePen()
	case r == 'e':
		f.world.Pick(sand.MenuItem(sand.Erase), sand.ButtonLeft)
	case r >= '1' && r <= '7':
		f.world.Pick(sand.MenuItem(r-'0'), sand.ButtonLeft)
	}
	return true
}

// Tick advances the world once with the current pointer state.
func (f *Frontend) Tick() ui.Frame {
	x, y := f.toLayout(f.col, f.row)
	frame := f.ctrl.Tick(sand.Input{X: x, Y: y, Buttons: f.buttons})
	if frame.Changed {
		f.log.Debugf("menu item %d (%s)", frame.Picked, frame.Picked.Label())
	}
	f.cues.Tick(f.world.Stats())
	return frame
}

// gridRows is the number of terminal rows the grid occupies.
func (f *Frontend) gridRows() int { return (f.world.Size().H + 1) / 2 }

// toLayout maps a terminal cell to layout coordinates. Grid rows are
// doubled; each menu row takes one terminal row.
func (f *Frontend) toLayout(col, row int) (int, int) {
	l := f.ctrl.Layout
	gr := f.gridRows()
	switch {
	case col < 0 || row < 0:
		return -1, -1
	case row < gr:
		return col, row * 2
	case row < gr+sand.MenuRows:
		return col, l.Grid.H + (row-gr)*ui.MenuRowHeight
	default:
		return col, l.Size().H
	}
}

func buttonsFrom(mask tcell.ButtonMask) sand.Buttons {
	var b sand.Buttons
	if mask&tcell.ButtonPrimary != 0 {
		b |= sand.ButtonLeft
	}
	if mask&tcell.ButtonSecondary != 0 {
		b |= sand.ButtonRight
	}
	if mask&tcell.ButtonMiddle != 0 {
		b |= sand.ButtonMiddle
	}
	return b
}

// Draw renders grid, cursor, menu and status line.
func (f *Frontend) Draw() {
	f.screen.Clear()
	f.drawGrid()
	f.drawMenu()
	f.drawStatus()
	f.screen.Show()
}

func (f *Frontend) color(c uint8) tcell.Color {
	if len(f.palette) == 0 {
		return tcell.ColorDefault
	}
	return f.palette[render.Index(c, len(f.palette)-1)]
}

func (f *Frontend) drawGrid() {
	size := f.world.Size()
	f.colors = append(f.colors[:0], f.world.Cells()...)

	x, y := f.toLayout(f.col, f.row)
	if f.ctrl.Layout.InGrid(x, y) {
		sel := f.world.Selection()
		cur := sand.CursorColor(sel.Primary)
		for _, p := range sand.Footprint(x, y, sel.PenSize) {
			if size.Contains(p.X, p.Y) {
				f.colors[p.Y*size.W+p.X] = cur
			}
		}
	}

	for row := 0; row < f.gridRows(); row++ {
		top := 2 * row
		for col := 0; col < size.W; col++ {
			upper := f.colors[top*size.W+col]
			lower := upper
			if top+1 < size.H {
				lower = f.colors[(top+1)*size.W+col]
			}
			style := tcell.StyleDefault.Foreground(f.color(upper)).Background(f.color(lower))
			f.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
}

func (f *Frontend) drawMenu() {
	l := f.ctrl.Layout
	sel := f.world.Selection()
	base := tcell.StyleDefault.Foreground(f.color(1)).Background(f.color(0))
	muted := base.Foreground(f.color(2))

	gr := f.gridRows()
	for row := 0; row < sand.MenuRows; row++ {
		for col := 0; col < l.Grid.W; col++ {
			f.screen.SetContent(col, gr+row, ' ', nil, base)
		}
	}
	for item := sand.MenuItem(1); item <= sand.MenuPen; item++ {
		label := item.Label()
		switch item {
		case sand.MenuPause:
			if f.world.Paused() {
				label = "play"
			}
		case sand.MenuPen:
			label = fmt.Sprintf("pen %d", sel.PenSize)
		}
		if label == "" {
			continue
		}
		style := base
		if m, ok := item.Material(); ok && m == sand.Water && !f.world.Config().Water {
			style = muted
		}
		mark := ' '
		switch {
		case sand.MenuItem(sel.Primary) == item:
			mark = '*'
		case sand.MenuItem(sel.Secondary) == item:
			mark = '+'
		}
		r := l.ItemRect(item)
		row := gr + (r.Min.Y-l.Grid.H)/ui.MenuRowHeight
		f.putString(r.Min.X, row, string(mark)+label, style, r.Dx())
	}
}

func (f *Frontend) drawStatus() {
	snap := f.world.Parameters()
	line := ""
	for _, key := range []string{"tick", "moves", "reactions", "primary", "secondary"} {
		if p, ok := snap.Lookup(key); ok {
			line += fmt.Sprintf("%s %s  ", key, p.Value)
		}
	}
	if f.world.Paused() {
		line += "[paused]"
	}
	f.putString(0, f.gridRows()+sand.MenuRows, line, tcell.StyleDefault, len(line))
}

func (f *Frontend) putString(x, y int, s string, style tcell.Style, width int) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		f.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
