package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/logx"
	"sandfall/internal/sims/sand"
	"sandfall/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	sound := flag.Bool("sound", false, "play sound cues (needs the audio build tag)")
	flag.Parse()

	// The terminal belongs to tcell, so logs only go to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	logger := logx.New(out, logx.LevelFromString(cfg.LogLevel))

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	world, ok := factory(cfg.SimOptions()).(*sand.World)
	if !ok {
		log.Fatalf("sim %q has no interactive frontend", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	var cues term.Cues = term.Silent{}
	if *sound {
		c, err := term.NewSpeaker()
		if err != nil {
			// Non-fatal, the sandbox runs without sound.
			logger.Warnf("audio initialization failed: %v", err)
		}
		cues = c
	}
	defer cues.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fe := term.New(screen, world, term.Options{TPS: cfg.TPS, Seed: cfg.Seed, Log: logger, Cues: cues})
	err = fe.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
