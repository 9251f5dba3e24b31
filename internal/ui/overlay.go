//go:build ebiten

package ui

import (
	"fmt"

	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging text on top of the simulation. F3
// toggles it.
type Overlay struct {
	world *sand.World
	show  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *sand.World) *Overlay {
	return &Overlay{world: world}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.show = !o.show
	}
}

// Draw prints frame timing and the counters of the last tick.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	lines := append(StatsLines(o.world), fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 2, 2+i*14)
	}
}
