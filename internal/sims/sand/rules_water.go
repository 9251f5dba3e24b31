package sand

var waterQuench = [3][2]int{
	{0, 1},
	{-1, 0},
	{1, 0},
}

func updateWater(w *World, x, y int) (int, int) {
	g := w.grid
	c := g.At(x, y)
	c.SetColor(colorMist)

	if c.updated || w.paused {
		return x, y
	}

	canFall := y < g.H-1
	nx, ny := x, y
	switch {
	case canFall && w.is(x, y+1, Air):
		ny = y + 1
	case canFall && w.is(x-1, y+1, Air) && w.is(x+1, y+1, Air):
		ny = y + 1
		if w.roll() > waterDriftGate {
			nx = x - 1
		} else {
			nx = x + 1
		}
	case canFall && w.is(x-1, y+1, Air):
		nx, ny = x-1, y+1
	case canFall && w.is(x+1, y+1, Air):
		nx, ny = x+1, y+1
	case w.is(x-1, y, Air) && w.is(x+1, y, Air):
		if w.roll() > waterDriftGate {
			nx = x - 1
		} else {
			nx = x + 1
		}
	case w.is(x-1, y, Air):
		nx = x - 1
	case w.is(x+1, y, Air):
		nx = x + 1
	}
	nx, ny = w.move(x, y, nx, ny)

	for _, d := range waterQuench {
		fx, fy := nx+d[0], ny+d[1]
		if !w.is(fx, fy, Fire) {
			continue
		}
		if w.chance(waterExtinguish) {
			w.extinguish(g.At(fx, fy))
		}
		break
	}
	return nx, ny
}
