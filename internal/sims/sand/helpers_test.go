package sand

import (
	"testing"

	"sandfall/internal/core"
)

// newTestWorld builds a w*h world driven by the scripted draws.
func newTestWorld(w, h int, draws ...int) (*World, *core.Sequence) {
	world := New(w, h)
	seq := core.NewSequence(draws...)
	world.SetSource(seq)
	return world, seq
}

func put(w *World, x, y int, m Material, age uint8) {
	c := NewCell(m)
	c.SetAge(age)
	w.grid.Set(x, y, c)
}

func expectMaterial(t *testing.T, w *World, x, y int, want Material) {
	t.Helper()
	if got := w.grid.MaterialAt(x, y); got != want {
		t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
	}
}
