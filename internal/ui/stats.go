package ui

import (
	"fmt"

	"sandfall/internal/sims/sand"
)

// StatsLines formats the counters of the last tick for debug readouts.
func StatsLines(w *sand.World) []string {
	s := w.Stats()
	state := "running"
	if w.Paused() {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("tick %d  %s", s.Tick, state),
		fmt.Sprintf("moves %d  processed %d", s.Moves, s.Processed),
		fmt.Sprintf("ignite %d  melt %d  emit %d", s.Ignitions, s.Melts, s.Emitted),
		fmt.Sprintf("out %d  drip %d", s.Extinguished, s.Drips),
	}
}
