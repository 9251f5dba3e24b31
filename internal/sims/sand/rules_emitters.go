package sand

var torchNeighbors = [4][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

// updateTorch never moves and ignores the updated flag. While paused it only
// runs for a torch that has not glowed yet.
func updateTorch(w *World, x, y int) (int, int) {
	c := w.grid.At(x, y)
	if c.color != colorDark && w.paused {
		return x, y
	}

	if w.chance(torchGlowBright) {
		c.SetColor(colorBright)
	} else {
		c.SetColor(colorHot)
	}

	for _, d := range torchNeighbors {
		nx, ny := x+d[0], y+d[1]
		if w.is(nx, ny, Air) && w.chance(torchEmit) {
			place(w.grid.At(nx, ny), Fire, colorHot)
			w.stats.Emitted++
		}
	}
	return x, y
}

// updateSpout never moves. The cell below only gets recolored; its material
// stays Air.
func updateSpout(w *World, x, y int) (int, int) {
	w.grid.At(x, y).SetColor(colorMist)
	if w.paused {
		return x, y
	}
	if w.is(x, y+1, Air) && w.chance(spoutDrip) {
		w.grid.At(x, y+1).SetColor(colorMist)
		w.stats.Drips++
	}
	return x, y
}
