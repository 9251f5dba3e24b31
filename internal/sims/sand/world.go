package sand

import (
	"image/color"

	"sandfall/internal/core"
)

// Rule advances the particle at (x, y) and returns the coordinate that holds
// it afterwards.
type Rule func(w *World, x, y int) (int, int)

// World is the simulation context handed to every rule: the grid, the pause
// flag, the random source and the per-tick counters.
type World struct {
	cfg  Config
	grid *Grid

	rng    core.Source
	seeded *core.RNG

	paused bool
	tick   uint64
	stats  Stats
	sel    Selection

	rules   [maxMaterial + 1]Rule
	display []uint8
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	grid := NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		grid:    grid,
		rng:     rng,
		seeded:  rng,
		sel:     NewSelection(cfg),
		display: make([]uint8, grid.W*grid.H),
	}
	w.rules[Air] = updateInert
	w.rules[Glass] = updateInert
	w.rules[Sand] = updateSand
	w.rules[Fire] = updateFire
	w.rules[Lava] = updateLava
	w.rules[Torch] = updateTorch
	w.rules[Spout] = updateSpout
	if cfg.Water {
		w.rules[Water] = updateWater
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the cell grid.
func (w *World) Grid() *Grid { return w.grid }

// SetSource replaces the random source. Reset no longer reseeds it.
func (w *World) SetSource(src core.Source) {
	if src == nil {
		return
	}
	w.rng = src
	w.seeded = nil
}

// Paused reports whether movement and reactions are frozen.
func (w *World) Paused() bool { return w.paused }

// SetPaused sets the pause flag.
func (w *World) SetPaused(p bool) { w.paused = p }

// TogglePause flips the pause flag.
func (w *World) TogglePause() { w.paused = !w.paused }

// Tick returns the number of completed ticks since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Stats returns the counters of the most recent tick.
func (w *World) Stats() Stats { return w.stats }

// Selection exposes the pen/material selection.
func (w *World) Selection() *Selection { return &w.sel }

// Reset clears the grid and reseeds the owned random source. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if w.seeded != nil {
		w.seeded.Seed(effective)
	}
	w.grid.Clear()
	w.tick = 0
	w.stats = Stats{}
}

// Clear empties the grid without touching the tick counter or the random source.
func (w *World) Clear() { w.grid.Clear() }

// Step runs one tick: a pass clearing every updated flag, then a sweep over
// columns left to right and rows bottom to top dispatching each cell to its
// material rule. A coordinate whose particle already moved there this tick
// is not dispatched again.
func (w *World) Step() {
	g := w.grid
	w.stats = Stats{Tick: w.tick + 1}

	for i := range g.cells {
		g.cells[i].updated = false
	}

	for x := 0; x < g.W; x++ {
		for y := g.H - 1; y >= 0; y-- {
			nx, ny := x, y
			c := &g.cells[g.Index(x, y)]
			if rule := w.rules[c.material]; rule != nil && !c.updated {
				nx, ny = rule(w, x, y)
			}
			g.At(x, y).updated = true
			g.At(nx, ny).updated = true
			w.stats.Processed++
		}
	}
	w.tick++
}

// Update runs one full tick for a frontend: the sweep, then painting with
// the current selection.
func (w *World) Update(in Input) {
	w.Step()
	w.Apply(in)
}

// Cells exposes the palette index of every cell, row-major.
func (w *World) Cells() []uint8 {
	for i := range w.grid.cells {
		w.display[i] = w.grid.cells[i].color
	}
	return w.display
}

// Palette exposes the colors the display indices refer to.
func (w *World) Palette() []color.RGBA { return DefaultPalette() }

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
