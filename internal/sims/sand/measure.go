package sand

import "sync"

// Scenario is a tiny single-tick setup used to measure how often a rule fires.
type Scenario struct {
	Name     string
	Expected float64

	width, height int
	run           func(w *World) (hits, opportunities int)
}

// RateResult aggregates the outcome of many trials of one scenario.
type RateResult struct {
	Scenario      string
	Trials        int
	Opportunities int
	Hits          int
	Rate          float64
	Expected      float64
}

var scenarios = []Scenario{
	{
		Name: "lava-melt-down", Expected: 0.03, width: 3, height: 2,
		run: func(w *World) (int, int) {
			w.grid.Set(1, 0, NewCell(Lava))
			w.grid.Set(1, 1, NewCell(Glass))
			w.Step()
			return boolHit(w.grid.MaterialAt(1, 1) == Sand), 1
		},
	},
	{
		Name: "lava-melt-side", Expected: 0.02, width: 3, height: 1,
		run: func(w *World) (int, int) {
			w.grid.Set(0, 0, NewCell(Glass))
			w.grid.Set(1, 0, NewCell(Lava))
			w.grid.Set(2, 0, NewCell(Glass))
			w.Step()
			return w.grid.Count(Sand), 2
		},
	},
	{
		Name: "lava-ignite-down", Expected: 0.70, width: 3, height: 2,
		run: func(w *World) (int, int) {
			w.grid.Set(1, 0, NewCell(Lava))
			w.grid.Set(1, 1, NewCell(Sand))
			w.Step()
			return boolHit(w.grid.MaterialAt(1, 1) == Fire), 1
		},
	},
	{
		Name: "lava-ignite-side", Expected: 0.20, width: 3, height: 1,
		run: func(w *World) (int, int) {
			w.grid.Set(0, 0, NewCell(Sand))
			w.grid.Set(1, 0, NewCell(Lava))
			w.grid.Set(2, 0, NewCell(Sand))
			w.Step()
			return w.grid.Count(Fire), 2
		},
	},
	{
		Name: "lava-decay", Expected: 0.05, width: 1, height: 1,
		run: func(w *World) (int, int) {
			c := NewCell(Lava)
			c.SetAge(maxAge)
			w.grid.Set(0, 0, c)
			w.Step()
			return boolHit(w.grid.MaterialAt(0, 0) == Air), 1
		},
	},
	{
		Name: "fire-ignite-down", Expected: 0.40, width: 3, height: 3,
		run: func(w *World) (int, int) {
			c := NewCell(Fire)
			c.SetAge(4)
			w.grid.Set(1, 1, c)
			w.grid.Set(1, 2, NewCell(Sand))
			w.Step()
			return boolHit(w.grid.MaterialAt(1, 2) == Fire), 1
		},
	},
	{
		Name: "fire-ignite-side", Expected: 0.20, width: 3, height: 3,
		run: func(w *World) (int, int) {
			for x := 0; x < 3; x++ {
				w.grid.Set(x, 2, NewCell(Glass))
			}
			c := NewCell(Fire)
			c.SetAge(4)
			w.grid.Set(1, 1, c)
			w.grid.Set(0, 1, NewCell(Sand))
			w.grid.Set(2, 1, NewCell(Sand))
			w.Step()
			return w.grid.Count(Fire) - 1, 2
		},
	},
	{
		Name: "torch-emit", Expected: 0.30, width: 3, height: 3,
		run: func(w *World) (int, int) {
			w.grid.Set(1, 1, NewCell(Torch))
			w.Step()
			return w.grid.Count(Fire), 4
		},
	},
	{
		Name: "spout-drip", Expected: 0.20, width: 1, height: 2,
		run: func(w *World) (int, int) {
			w.grid.Set(0, 0, NewCell(Spout))
			w.Step()
			return boolHit(w.grid.Get(0, 1).Color() == colorMist), 1
		},
	},
	{
		Name: "pen-scatter", Expected: 0.40, width: 4, height: 4,
		run: func(w *World) (int, int) {
			w.Paint(1, 1, Sand, 2)
			return w.grid.Count(Sand), 4
		},
	},
}

// Scenarios lists the built-in rate experiments.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// ScenarioByName looks up a built-in scenario.
func ScenarioByName(name string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

// MeasureRate runs trials of s on one world seeded with seed.
func MeasureRate(s Scenario, trials int, seed int64) RateResult {
	res := RateResult{Scenario: s.Name, Expected: s.Expected}
	if trials <= 0 || s.run == nil {
		return res
	}
	cfg := DefaultConfig()
	cfg.Width = s.width
	cfg.Height = s.height
	cfg.Seed = seed
	w := NewWithConfig(cfg)
	for i := 0; i < trials; i++ {
		w.grid.Clear()
		hits, opps := s.run(w)
		res.Hits += hits
		res.Opportunities += opps
	}
	res.Trials = trials
	res.finish()
	return res
}

// MeasureRates splits the trials of every scenario into chunks evaluated by
// up to workers goroutines. Chunk i is seeded with seed+i, so the result
// does not depend on scheduling.
func MeasureRates(list []Scenario, trials, workers int, seed int64) []RateResult {
	if workers <= 0 {
		workers = 1
	}
	chunks := workers
	if trials < chunks {
		chunks = 1
	}

	partial := make([][]RateResult, len(list))
	for i := range partial {
		partial[i] = make([]RateResult, chunks)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for si, s := range list {
		for ci := 0; ci < chunks; ci++ {
			n := trials / chunks
			if ci < trials%chunks {
				n++
			}
			wg.Add(1)
			sem <- struct{}{}
			go func(si, ci, n int, s Scenario) {
				defer wg.Done()
				partial[si][ci] = MeasureRate(s, n, seed+int64(ci))
				<-sem
			}(si, ci, n, s)
		}
	}
	wg.Wait()

	out := make([]RateResult, len(list))
	for si, s := range list {
		agg := RateResult{Scenario: s.Name, Expected: s.Expected}
		for _, p := range partial[si] {
			agg.Trials += p.Trials
			agg.Hits += p.Hits
			agg.Opportunities += p.Opportunities
		}
		agg.finish()
		out[si] = agg
	}
	return out
}

func (r *RateResult) finish() {
	if r.Opportunities > 0 {
		r.Rate = float64(r.Hits) / float64(r.Opportunities)
	}
}

func boolHit(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
