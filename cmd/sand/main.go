//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/logx"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	world, ok := factory(cfg.SimOptions()).(*sand.World)
	if !ok {
		log.Fatalf("sim %q has no interactive frontend", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	logger := logx.New(log.Writer(), logx.LevelFromString(cfg.LogLevel))
	game := app.New(world, cfg.Scale, cfg.Seed, cfg.HUD, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
