package sand

import (
	"testing"

	"sandfall/internal/core"
)

func TestSandFallsOneRowPerTick(t *testing.T) {
	w, _ := newTestWorld(5, 6, 0)
	put(w, 2, 0, Sand, 0)

	for tick := 1; tick <= 5; tick++ {
		w.Step()
		expectMaterial(t, w, 2, tick, Sand)
		if w.grid.Count(Sand) != 1 {
			t.Fatalf("tick %d: sand duplicated or lost", tick)
		}
	}
	w.Step()
	expectMaterial(t, w, 2, 5, Sand)
}

func TestSandStopsOnFloorAfterVerticalDistance(t *testing.T) {
	w, _ := newTestWorld(5, 8, 0)
	for x := 0; x < 5; x++ {
		put(w, x, 5, Glass, 0)
	}
	put(w, 2, 1, Sand, 0)

	for i := 0; i < 3; i++ {
		w.Step()
	}
	expectMaterial(t, w, 2, 4, Sand)
	w.Step()
	expectMaterial(t, w, 2, 4, Sand)
}

func TestSandColumnMovesTogether(t *testing.T) {
	w, _ := newTestWorld(1, 6, 0)
	put(w, 0, 0, Sand, 0)
	put(w, 0, 1, Sand, 0)
	put(w, 0, 2, Sand, 0)
	w.Step()
	expectMaterial(t, w, 0, 0, Air)
	expectMaterial(t, w, 0, 1, Sand)
	expectMaterial(t, w, 0, 2, Sand)
	expectMaterial(t, w, 0, 3, Sand)
}

func TestSandSlidesDiagonally(t *testing.T) {
	w, _ := newTestWorld(3, 2, 0)
	put(w, 1, 0, Sand, 0)
	put(w, 1, 1, Glass, 0)
	w.Step()
	expectMaterial(t, w, 0, 1, Sand)

	w, _ = newTestWorld(3, 2, 0)
	put(w, 1, 0, Sand, 0)
	put(w, 1, 1, Glass, 0)
	put(w, 0, 1, Glass, 0)
	w.Step()
	expectMaterial(t, w, 2, 1, Sand)

	// A blocked left side wall keeps the grain from slipping through.
	w, _ = newTestWorld(3, 2, 0)
	put(w, 1, 0, Sand, 0)
	put(w, 1, 1, Glass, 0)
	put(w, 0, 0, Glass, 0)
	put(w, 2, 0, Glass, 0)
	w.Step()
	expectMaterial(t, w, 1, 0, Sand)
}

func TestSandMovedIntoUnvisitedColumnIsNotReprocessed(t *testing.T) {
	w, _ := newTestWorld(2, 3, 0)
	put(w, 0, 0, Sand, 0)
	put(w, 0, 1, Glass, 0)
	w.Step()
	expectMaterial(t, w, 1, 1, Sand)
	expectMaterial(t, w, 1, 2, Air)
}

func TestSandAtEdgesTreatsBorderAsWall(t *testing.T) {
	w, _ := newTestWorld(2, 2, 0)
	put(w, 0, 0, Sand, 0)
	put(w, 0, 1, Glass, 0)
	w.Step()
	expectMaterial(t, w, 1, 1, Sand)

	w, _ = newTestWorld(2, 2, 0)
	put(w, 1, 0, Sand, 0)
	put(w, 1, 1, Glass, 0)
	put(w, 0, 1, Glass, 0)
	w.Step()
	expectMaterial(t, w, 1, 0, Sand)
}

func TestSandColorAndPause(t *testing.T) {
	w, _ := newTestWorld(1, 3, 0)
	put(w, 0, 0, Sand, 0)
	w.SetPaused(true)
	w.Step()
	expectMaterial(t, w, 0, 0, Sand)
	if c := w.grid.Get(0, 0).Color(); c != 1 {
		t.Fatalf("sand color = %d, want 1", c)
	}
}

func TestFireExtinguishesAtMaxAge(t *testing.T) {
	w, _ := newTestWorld(3, 3, 0)
	put(w, 1, 1, Fire, maxAge)
	w.Step()
	c := w.grid.Get(1, 1)
	if c.Material() != Air || c.Color() != 0 || c.Age() != 0 {
		t.Fatalf("fire at age 15 should become plain air, got %+v", c)
	}
	if w.Stats().Extinguished != 1 {
		t.Fatalf("Extinguished = %d, want 1", w.Stats().Extinguished)
	}
}

func TestFireRisesAndAgesOncePerTick(t *testing.T) {
	w, seq := newTestWorld(3, 3, 99)
	put(w, 1, 1, Fire, 3)
	w.Step()
	expectMaterial(t, w, 1, 0, Fire)
	expectMaterial(t, w, 1, 1, Air)
	if age := w.grid.Get(1, 0).Age(); age != 4 {
		t.Fatalf("fire age = %d, want 4", age)
	}
	if seq.Drawn() != 2 {
		t.Fatalf("drew %d values, want 2 (one flicker pass)", seq.Drawn())
	}
}

func TestFireColorBands(t *testing.T) {
	tests := []struct {
		name  string
		age   uint8
		draws []int
		color uint8
		drawn int
	}{
		{"young", 0, []int{99}, 1, 0},
		{"young age 1", 1, []int{0}, 1, 0},
		{"bright flicker", 5, []int{29}, 1, 1},
		{"dark flicker", 5, []int{30, 19}, 0, 2},
		{"hot", 5, []int{30, 20}, 3, 2},
		{"old skips bright draw", 10, []int{0}, 0, 1},
		{"old hot", 12, []int{25}, 3, 1},
	}
	for _, tt := range tests {
		// A 1x1 grid leaves no room to move or ignite, so only the flicker draws.
		w, seq := newTestWorld(1, 1, tt.draws...)
		put(w, 0, 0, Fire, tt.age)
		updateFire(w, 0, 0)
		c := w.grid.Get(0, 0)
		if c.Color() != tt.color {
			t.Errorf("%s: color = %d, want %d", tt.name, c.Color(), tt.color)
		}
		if seq.Drawn() != tt.drawn {
			t.Errorf("%s: drew %d values, want %d", tt.name, seq.Drawn(), tt.drawn)
		}
		if c.Age() != tt.age+1 {
			t.Errorf("%s: age = %d, want %d", tt.name, c.Age(), tt.age+1)
		}
	}
}

func TestFirePausedAtMaxAgeWrapsInsteadOfDying(t *testing.T) {
	w, seq := newTestWorld(3, 3, 0)
	put(w, 1, 1, Fire, maxAge)
	w.SetPaused(true)
	w.Step()
	c := w.grid.Get(1, 1)
	if c.Material() != Fire || c.Color() != 3 || c.Age() != 0 {
		t.Fatalf("paused fire at age 15 = %+v, want fire color 3 age 0", c)
	}
	if w.Stats().Extinguished != 0 || seq.Drawn() != 0 {
		t.Fatalf("paused fire extinguished=%d drawn=%d", w.Stats().Extinguished, seq.Drawn())
	}
}

func TestFireIgnitesSandAbove(t *testing.T) {
	w, _ := newTestWorld(3, 3, 99)
	put(w, 1, 1, Fire, 4)
	put(w, 1, 0, Sand, 6)
	for _, x := range []int{0, 2} {
		put(w, x, 0, Glass, 0)
		put(w, x, 1, Glass, 0)
	}
	w.Step()
	c := w.grid.Get(1, 0)
	if c.Material() != Fire {
		t.Fatalf("sand above fire should always ignite, got %v", c.Material())
	}
	if w.Stats().Ignitions != 1 {
		t.Fatalf("Ignitions = %d, want 1", w.Stats().Ignitions)
	}
}

func TestFireIgnitionKeepsAge(t *testing.T) {
	w, _ := newTestWorld(3, 3, 99)
	put(w, 1, 1, Fire, 4)
	put(w, 1, 0, Sand, 6)
	w.ignite(1, 0)
	c := w.grid.Get(1, 0)
	if c.Material() != Fire || c.Color() != 3 || c.Age() != 6 {
		t.Fatalf("ignited cell = %+v, want fire color 3 age 6", c)
	}
}

func TestFirePausedHoldsStill(t *testing.T) {
	w, seq := newTestWorld(3, 3, 0)
	put(w, 1, 1, Fire, 4)
	w.SetPaused(true)
	w.Step()
	expectMaterial(t, w, 1, 1, Fire)
	c := w.grid.Get(1, 1)
	if c.Color() != 3 || c.Age() != 5 {
		t.Fatalf("paused fire = %+v, want color 3 age 5", c)
	}
	if seq.Drawn() != 0 {
		t.Fatalf("paused fire drew %d random values", seq.Drawn())
	}
}

func TestFireOnTopRowCannotRise(t *testing.T) {
	w, _ := newTestWorld(1, 2, 0)
	put(w, 0, 0, Fire, 4)
	w.Step()
	expectMaterial(t, w, 0, 0, Fire)
}

func TestFireOnBottomRowStaysPut(t *testing.T) {
	w, _ := newTestWorld(3, 2, 0)
	put(w, 1, 1, Fire, 4)
	put(w, 1, 0, Sand, 0)
	updateFire(w, 1, 1)
	expectMaterial(t, w, 1, 1, Fire)
	expectMaterial(t, w, 1, 0, Sand)
}

func TestLavaFallsOnlyPastTheGate(t *testing.T) {
	w, seq := newTestWorld(3, 3, 0, 51)
	put(w, 1, 0, Lava, 0)
	w.Step()
	expectMaterial(t, w, 1, 1, Lava)
	if c := w.grid.Get(1, 1); c.Color() != 1 || c.Age() != 1 {
		t.Fatalf("lava after fall = %+v, want color 1 age 1", c)
	}
	if seq.Drawn() != 2 {
		t.Fatalf("drew %d values, want 2", seq.Drawn())
	}

	w, _ = newTestWorld(3, 3, 0, 50)
	put(w, 1, 0, Lava, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 1, 0, Lava)
}

func TestLavaSideSpreadGates(t *testing.T) {
	w, _ := newTestWorld(3, 1, 0, 80, 60)
	put(w, 1, 0, Lava, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 0, 0, Lava)

	w, _ = newTestWorld(3, 1, 0, 80, 40)
	put(w, 1, 0, Lava, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 1, 0, Lava)

	w, _ = newTestWorld(3, 1, 0, 10, 20, 60)
	put(w, 1, 0, Lava, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 2, 0, Lava)

	w, _ = newTestWorld(3, 1, 0, 10, 30)
	put(w, 1, 0, Lava, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 1, 0, Lava)
}

func TestLavaAtLeftEdgeFlowsRight(t *testing.T) {
	w, _ := newTestWorld(2, 1, 0, 90)
	put(w, 0, 0, Lava, 0)
	updateLava(w, 0, 0)
	expectMaterial(t, w, 1, 0, Lava)
}

func TestLavaFlowingRightIsNotRevisited(t *testing.T) {
	// Glow, then the flow gate; a second visit would glow again and roll decay.
	w, seq := newTestWorld(2, 1, 0, 99, 0, 0)
	put(w, 0, 0, Lava, maxAge-1)
	w.Step()
	expectMaterial(t, w, 0, 0, Air)
	expectMaterial(t, w, 1, 0, Lava)
	if age := w.grid.Get(1, 0).Age(); age != maxAge {
		t.Fatalf("age = %d, want %d", age, maxAge)
	}
	if seq.Drawn() != 2 || w.Stats().Extinguished != 0 {
		t.Fatalf("drawn=%d extinguished=%d, want 2 and 0", seq.Drawn(), w.Stats().Extinguished)
	}
}

func TestLavaIgnitesSandAtTheSides(t *testing.T) {
	// Glow, right side roll hits, left side roll misses.
	w, seq := newTestWorld(3, 1, 0, 19, 20)
	put(w, 0, 0, Sand, 0)
	put(w, 1, 0, Lava, 0)
	put(w, 2, 0, Sand, 0)
	updateLava(w, 1, 0)
	expectMaterial(t, w, 2, 0, Fire)
	expectMaterial(t, w, 0, 0, Sand)
	expectMaterial(t, w, 1, 0, Lava)
	if w.Stats().Ignitions != 1 {
		t.Fatalf("Ignitions = %d, want 1", w.Stats().Ignitions)
	}
	if seq.Drawn() != 3 {
		t.Fatalf("drew %d values, want 3", seq.Drawn())
	}
}

func TestLavaDecayOnlyAtMaxAge(t *testing.T) {
	w, _ := newTestWorld(1, 1, 0)
	put(w, 0, 0, Lava, maxAge)
	w.Step()
	expectMaterial(t, w, 0, 0, Air)

	w, _ = newTestWorld(1, 1, 0)
	put(w, 0, 0, Lava, maxAge-1)
	w.Step()
	expectMaterial(t, w, 0, 0, Lava)
	if age := w.grid.Get(0, 0).Age(); age != maxAge {
		t.Fatalf("age = %d, want %d", age, maxAge)
	}

	// Surviving the decay roll wraps the counter.
	w, _ = newTestWorld(1, 1, 0, 99)
	put(w, 0, 0, Lava, maxAge)
	w.Step()
	expectMaterial(t, w, 0, 0, Lava)
	if age := w.grid.Get(0, 0).Age(); age != 0 {
		t.Fatalf("age = %d, want wrap to 0", age)
	}
}

func TestLavaMeltsGlassBelow(t *testing.T) {
	w, _ := newTestWorld(1, 2, 0)
	put(w, 0, 0, Lava, 0)
	put(w, 0, 1, Glass, 9)
	w.Step()
	c := w.grid.Get(0, 1)
	if c.Material() != Sand || c.Color() != 1 {
		t.Fatalf("melted glass = %+v, want sand color 1", c)
	}
	if w.Stats().Melts != 1 {
		t.Fatalf("Melts = %d, want 1", w.Stats().Melts)
	}
}

func TestLavaPausedFreshCellGlowsOnce(t *testing.T) {
	w, seq := newTestWorld(3, 3, 0)
	put(w, 1, 0, Lava, 0)
	w.SetPaused(true)
	w.Step()
	if seq.Drawn() != 1 {
		t.Fatalf("fresh paused lava drew %d values, want 1", seq.Drawn())
	}
	w.Step()
	if seq.Drawn() != 1 {
		t.Fatalf("glowing paused lava drew again: %d", seq.Drawn())
	}
	expectMaterial(t, w, 1, 0, Lava)
}

func TestTorchScriptedSequence(t *testing.T) {
	w, seq := newTestWorld(3, 3, 10, 5, 50, 29, 99, 95, 0, 30)
	put(w, 1, 1, Torch, 0)

	updateTorch(w, 1, 1)
	if c := w.grid.Get(1, 1).Color(); c != 1 {
		t.Fatalf("torch color = %d, want 1", c)
	}
	up := w.grid.Get(1, 0)
	if up.Material() != Fire || up.Color() != 3 || up.Age() != 0 {
		t.Fatalf("up = %+v, want fresh fire", up)
	}
	expectMaterial(t, w, 1, 2, Air)
	expectMaterial(t, w, 0, 1, Fire)
	expectMaterial(t, w, 2, 1, Air)
	if seq.Drawn() != 5 {
		t.Fatalf("first pass drew %d, want 5", seq.Drawn())
	}

	updateTorch(w, 1, 1)
	if c := w.grid.Get(1, 1).Color(); c != 3 {
		t.Fatalf("torch color = %d, want 3", c)
	}
	expectMaterial(t, w, 1, 2, Fire)
	expectMaterial(t, w, 2, 1, Air)
	if seq.Drawn() != 8 {
		t.Fatalf("second pass drew %d, want 8", seq.Drawn())
	}
	if w.Stats().Emitted != 3 {
		t.Fatalf("Emitted = %d, want 3", w.Stats().Emitted)
	}
	expectMaterial(t, w, 1, 1, Torch)
}

func TestTorchInCornerOnlyEmitsInsideGrid(t *testing.T) {
	w, _ := newTestWorld(2, 2, 0)
	put(w, 0, 0, Torch, 0)
	updateTorch(w, 0, 0)
	expectMaterial(t, w, 0, 0, Torch)
	expectMaterial(t, w, 1, 0, Fire)
	expectMaterial(t, w, 0, 1, Fire)
	expectMaterial(t, w, 1, 1, Air)
}

func TestTorchPausedFreezesAfterFirstGlow(t *testing.T) {
	w, seq := newTestWorld(3, 3, 99)
	put(w, 1, 1, Torch, 0)
	w.SetPaused(true)
	updateTorch(w, 1, 1)
	if seq.Drawn() != 5 {
		t.Fatalf("fresh paused torch drew %d, want 5", seq.Drawn())
	}
	updateTorch(w, 1, 1)
	if seq.Drawn() != 5 {
		t.Fatalf("glowing paused torch drew again: %d", seq.Drawn())
	}
}

func TestSpoutOnlyRecolorsAirBelow(t *testing.T) {
	w, _ := newTestWorld(1, 2, 0)
	put(w, 0, 0, Spout, 0)
	w.Step()
	below := w.grid.Get(0, 1)
	if below.Material() != Air || below.Color() != 2 {
		t.Fatalf("below spout = %+v, want air color 2", below)
	}
	if c := w.grid.Get(0, 0).Color(); c != 2 {
		t.Fatalf("spout color = %d, want 2", c)
	}

	w, _ = newTestWorld(1, 6, 0)
	put(w, 0, 0, Spout, 0)
	for i := 0; i < 50; i++ {
		w.Step()
	}
	if w.grid.Count(Sand) != 0 || w.grid.Count(Spout) != 1 {
		t.Fatal("spout must never emit particles")
	}
}

func TestSpoutPausedDoesNotDrip(t *testing.T) {
	w, seq := newTestWorld(1, 2, 0)
	put(w, 0, 0, Spout, 0)
	w.SetPaused(true)
	w.Step()
	if w.grid.Get(0, 1).Color() != 0 || seq.Drawn() != 0 {
		t.Fatal("paused spout dripped")
	}
}

func TestInertMaterials(t *testing.T) {
	w, seq := newTestWorld(1, 3, 0)
	c := NewCell(Glass)
	c.SetColor(3)
	w.grid.Set(0, 0, c)
	w.grid.Set(0, 1, NewCell(Material(9)))
	w.Step()
	expectMaterial(t, w, 0, 0, Glass)
	expectMaterial(t, w, 0, 1, Material(9))
	if w.grid.Get(0, 0).Color() != 0 {
		t.Fatal("glass color should reset to 0")
	}
	if seq.Drawn() != 0 {
		t.Fatalf("inert cells drew %d values", seq.Drawn())
	}
}

func newWaterWorld(w, h int, draws ...int) *World {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Water = true
	world := NewWithConfig(cfg)
	world.SetSource(core.NewSequence(draws...))
	return world
}

func TestWaterDisabledIsInert(t *testing.T) {
	w, _ := newTestWorld(1, 3, 0)
	put(w, 0, 0, Water, 0)
	w.Step()
	expectMaterial(t, w, 0, 0, Water)
	if w.grid.Get(0, 0).Color() != 0 {
		t.Fatal("inert water should keep color 0")
	}
}

func TestWaterFallsAndSpreads(t *testing.T) {
	w := newWaterWorld(1, 3, 0)
	put(w, 0, 0, Water, 0)
	w.Step()
	expectMaterial(t, w, 0, 1, Water)
	if c := w.grid.Get(0, 1).Color(); c != 2 {
		t.Fatalf("water color = %d, want 2", c)
	}

	w = newWaterWorld(3, 1, 60)
	put(w, 1, 0, Water, 0)
	updateWater(w, 1, 0)
	expectMaterial(t, w, 0, 0, Water)

	w = newWaterWorld(3, 1, 40)
	put(w, 1, 0, Water, 0)
	updateWater(w, 1, 0)
	expectMaterial(t, w, 2, 0, Water)
}

func TestWaterQuenchesFire(t *testing.T) {
	w := newWaterWorld(3, 1, 0)
	put(w, 0, 0, Water, 0)
	put(w, 1, 0, Fire, 4)
	put(w, 2, 0, Glass, 0)
	updateWater(w, 0, 0)
	expectMaterial(t, w, 1, 0, Air)
	if w.Stats().Extinguished != 1 {
		t.Fatalf("Extinguished = %d, want 1", w.Stats().Extinguished)
	}

	w = newWaterWorld(3, 1, 90)
	put(w, 0, 0, Water, 0)
	put(w, 1, 0, Fire, 4)
	put(w, 2, 0, Glass, 0)
	updateWater(w, 0, 0)
	expectMaterial(t, w, 1, 0, Fire)
}
