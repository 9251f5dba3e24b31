package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"
)

type soakResult struct {
	seed       int64
	ticks      int
	violations int
	moves      int
	reactions  int
	particles  int
}

func main() {
	trials := flag.Int("trials", 20000, "trials per rate scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "base seed")
	only := flag.String("scenario", "", "measure a single scenario by name")
	soak := flag.Int("soak", 0, "number of random worlds to soak test (0 skips)")
	steps := flag.Int("steps", 500, "ticks per soak world")
	width := flag.Int("w", 160, "soak world width")
	height := flag.Int("h", 120, "soak world height")
	flag.Parse()

	list := sand.Scenarios()
	if *only != "" {
		s, ok := sand.ScenarioByName(*only)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown scenario %q\n", *only)
			os.Exit(2)
		}
		list = []sand.Scenario{s}
	}

	fmt.Printf("Measuring %d scenarios (%d trials, %d workers)\n", len(list), *trials, *workers)
	start := time.Now()
	results := sand.MeasureRates(list, *trials, *workers, *seed)
	sort.Slice(results, func(i, j int) bool {
		return math.Abs(results[i].Rate-results[i].Expected) > math.Abs(results[j].Rate-results[j].Expected)
	})
	for _, r := range results {
		fmt.Printf("%-18s rate=%.4f expected=%.2f diff=%+.4f hits=%d/%d\n",
			r.Scenario, r.Rate, r.Expected, r.Rate-r.Expected, r.Hits, r.Opportunities)
	}
	fmt.Printf("elapsed %s\n", time.Since(start).Round(time.Millisecond))

	if *soak > 0 {
		if bad := runSoak(*soak, *steps, *width, *height, *workers, *seed); bad > 0 {
			os.Exit(1)
		}
	}
}

// runSoak drives random worlds with random painting and reports how many
// ticks broke the scheduler's bookkeeping.
func runSoak(worlds, steps, w, h, workers int, seed int64) int {
	fmt.Printf("\nSoaking %d worlds (%dx%d, %d steps, %d workers)\n", worlds, w, h, steps, workers)

	jobs := make(chan int64)
	results := make(chan soakResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- soakWorld(s, steps, w, h)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < worlds; i++ {
			jobs <- seed + int64(i)
		}
		close(jobs)
	}()

	var all []soakResult
	bad := 0
	for res := range results {
		all = append(all, res)
		bad += res.violations
		if res.violations > 0 {
			fmt.Printf("seed %d: %d bad ticks\n", res.seed, res.violations)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].reactions > all[j].reactions })
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d ticks=%d moves=%d reactions=%d particles=%d\n",
			i+1, res.seed, res.ticks, res.moves, res.reactions, res.particles)
	}
	fmt.Printf("violations: %d\n", bad)
	return bad
}

var paintable = []sand.MenuItem{1, 2, 3, 4, 5, 6, 7, 13}

func soakWorld(seed int64, steps, w, h int) soakResult {
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Seed = seed
	cfg.Water = seed%2 == 0
	world := sand.NewWithConfig(cfg)
	world.Reset(seed)

	rng := core.NewRNG(seed ^ 0x5eed)
	res := soakResult{seed: seed}
	for i := 0; i < steps; i++ {
		if rng.IntN(10) == 0 {
			world.Pick(paintable[rng.IntN(len(paintable))], sand.ButtonLeft)
		}
		if rng.IntN(50) == 0 {
			world.Pick(sand.MenuPen, sand.ButtonLeft)
		}
		in := sand.Input{X: rng.IntN(w), Y: rng.IntN(h / 2)}
		if rng.Bool() {
			in.Buttons = sand.ButtonLeft
		}
		world.Update(in)

		st := world.Stats()
		res.ticks++
		res.moves += st.Moves
		res.reactions += st.Reactions()
		if st.Processed != w*h || !allUpdated(world.Grid()) {
			res.violations++
		}
	}
	for _, c := range world.Grid().Cells() {
		if c.Material() != sand.Air {
			res.particles++
		}
	}
	return res
}

func allUpdated(g *sand.Grid) bool {
	for _, c := range g.Cells() {
		if !c.Updated() {
			return false
		}
	}
	return true
}
