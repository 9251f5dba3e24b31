//go:build ebiten

package app

import (
	"time"

	"sandfall/internal/logx"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the sandbox to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	ctrl    *ui.Controller
	painter *render.GridPainter
	menu    *ui.MenuBar
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *logx.Logger

	scale    int
	hudWidth int
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64, hudWidth int, log *logx.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	ctrl := ui.NewController(world)
	size := world.Size()
	return &Game{
		world:    world,
		ctrl:     ctrl,
		painter:  render.NewGridPainter(size.W, size.H),
		menu:     ui.NewMenuBar(ctrl, scale),
		hud:      ui.NewHUD(world, hudWidth),
		overlay:  ui.NewOverlay(world),
		log:      log,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.log.Infof("reset with seed %d", seed)
}

// Update handles per-frame input and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	mx, my := ebiten.CursorPosition()
	in := pointer(mx, my, g.scale,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	)
	if f := g.ctrl.Tick(in); f.Changed {
		g.log.Debugf("menu item %d (%s)", f.Picked, f.Picked.Label())
	}

	g.hud.Update()
	g.overlay.Update()
	return nil
}

// Draw renders the grid, the menu bar and the optional panels.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.world.Palette()
	g.painter.Blit(screen, g.world.Cells(), palette, g.scale)
	g.menu.Draw(screen, palette)
	size := g.ctrl.Layout.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.Layout.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
