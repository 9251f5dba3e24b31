package sand

func updateSand(w *World, x, y int) (int, int) {
	g := w.grid
	c := g.At(x, y)
	c.SetColor(colorBright)

	if c.updated || y >= g.H-1 || w.paused {
		return x, y
	}

	nx, ny := x, y
	switch {
	case w.is(x, y+1, Air):
		ny = y + 1
	case w.is(x-1, y+1, Air) && w.is(x-1, y, Air):
		nx, ny = x-1, y+1
	case w.is(x+1, y+1, Air) && w.is(x+1, y, Air):
		nx, ny = x+1, y+1
	}
	return w.move(x, y, nx, ny)
}
