package sand

import "testing"

func TestGridClampReads(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, NewCell(Sand))
	g.Set(2, 1, NewCell(Glass))

	if got := g.MaterialAt(-1, -5); got != Sand {
		t.Fatalf("(-1,-5) should clamp to (0,0), got %v", got)
	}
	if got := g.MaterialAt(9, 9); got != Glass {
		t.Fatalf("(9,9) should clamp to (2,1), got %v", got)
	}
	if x, y := g.Clamp(3, -1); x != 2 || y != 0 {
		t.Fatalf("Clamp(3,-1) = (%d,%d)", x, y)
	}
}

func TestGridWritesOutsideAreDropped(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(-1, 0, NewCell(Lava))
	g.Set(0, 2, NewCell(Lava))
	if n := g.Count(Lava); n != 0 {
		t.Fatalf("out-of-grid Set wrote %d cells", n)
	}
	g.Set(1, 1, NewCell(Sand))
	g.Swap(1, 1, 2, 1)
	if g.MaterialAt(1, 1) != Sand {
		t.Fatal("Swap with an out-of-grid coordinate must be a no-op")
	}
}

func TestGridSwapExchangesFullState(t *testing.T) {
	g := NewGrid(2, 1)
	a := NewCell(Fire)
	a.SetColor(3)
	a.SetAge(7)
	a.SetUpdated(true)
	g.Set(0, 0, a)

	g.Swap(0, 0, 1, 0)
	if g.Get(1, 0) != a {
		t.Fatalf("swapped cell = %+v, want %+v", g.Get(1, 0), a)
	}
	if g.Get(0, 0) != (Cell{}) {
		t.Fatalf("origin should hold the air cell, got %+v", g.Get(0, 0))
	}
	g.Swap(1, 0, 1, 0)
	if g.Get(1, 0) != a {
		t.Fatal("self swap changed the cell")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4, 4)
	for i := range g.Cells() {
		c := NewCell(Torch)
		c.SetColor(2)
		c.SetAge(3)
		c.SetUpdated(true)
		g.Cells()[i] = c
	}
	g.Clear()
	for i, c := range g.Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d not cleared: %+v", i, c)
		}
	}
}

func TestNewGridMinimumSize(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("degenerate grid = %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}
