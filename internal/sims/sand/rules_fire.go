package sand

func updateFire(w *World, x, y int) (int, int) {
	g := w.grid
	c := g.At(x, y)
	c.SetColor(colorHot)

	if !w.paused {
		switch {
		case c.age < fireYoungAge:
			c.SetColor(colorBright)
		case c.age < fireFlickerAgeLimit && w.chance(fireFlickerBright):
			c.SetColor(colorBright)
		case w.chance(fireFlickerDark):
			c.SetColor(colorDark)
		default:
			c.SetColor(colorHot)
		}

		if c.age == maxAge {
			w.extinguish(c)
			return x, y
		}
	}

	nx, ny := x, y
	if !c.updated && y < g.H-1 && !w.paused {
		if w.is(x, y-1, Sand) {
			w.ignite(x, y-1)
		}
		if w.is(x, y+1, Sand) && w.chance(fireIgniteDown) {
			w.ignite(x, y+1)
		}
		if w.is(x+1, y, Sand) && w.chance(fireIgniteSide) {
			w.ignite(x+1, y)
		}
		if w.is(x-1, y, Sand) && w.chance(fireIgniteSide) {
			w.ignite(x-1, y)
		}

		switch {
		case w.is(x, y-1, Air):
			ny = y - 1
		case w.is(x-1, y, Air) && w.is(x+1, y, Air):
			if w.chance(fireDriftLeft) {
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
	}

	w.grow(nx, ny)
	return nx, ny
}
