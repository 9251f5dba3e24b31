package sand

func updateLava(w *World, x, y int) (int, int) {
	g := w.grid
	c := g.At(x, y)

	// A freshly placed lava cell (color 0) glows once even while paused.
	if c.color == colorDark || !w.paused {
		if w.chance(lavaGlowBright) {
			c.SetColor(colorBright)
		} else {
			c.SetColor(colorHot)
		}

		if c.age == maxAge && w.chance(lavaDecay) {
			w.extinguish(c)
			return x, y
		}
	}

	nx, ny := x, y
	if !c.updated && !w.paused {
		if w.is(x, y+1, Sand) && w.chance(lavaIgniteDown) {
			w.ignite(x, y+1)
		}
		if w.is(x+1, y, Sand) && w.chance(lavaIgniteSide) {
			w.ignite(x+1, y)
		}
		if w.is(x-1, y, Sand) && w.chance(lavaIgniteSide) {
			w.ignite(x-1, y)
		}

		if w.is(x, y+1, Glass) && w.chance(lavaMeltDown) {
			w.melt(x, y+1)
		}
		if w.is(x+1, y, Glass) && w.chance(lavaMeltSide) {
			w.melt(x+1, y)
		}
		if w.is(x-1, y, Glass) && w.chance(lavaMeltSide) {
			w.melt(x-1, y)
		}

		switch {
		case w.is(x, y+1, Air) && y < g.H-1:
			if w.roll() > lavaFlowGate {
				ny = y + 1
			}
		case w.is(x-1, y, Air) && w.is(x+1, y, Air):
			if w.roll() > lavaSpreadHigh {
				if w.roll() > lavaFlowGate {
					nx = x - 1
				}
			} else if w.roll() < lavaSpreadLow {
				if w.roll() > lavaFlowGate {
					nx = x + 1
				}
			}
		case w.is(x-1, y, Air):
			if w.roll() > lavaFlowGate {
				nx = x - 1
			}
		case w.is(x+1, y, Air) && x < g.W-1:
			if w.roll() > lavaFlowGate {
				nx = x + 1
			}
		}
		nx, ny = w.move(x, y, nx, ny)
	}

	w.grow(nx, ny)
	return nx, ny
}
