package app

import "sandfall/internal/sims/sand"

// toGrid converts a screen coordinate into grid cells, rounding toward
// negative infinity so a pointer left of or above the view never lands on
// row or column zero.
func toGrid(v, scale int) int {
	if scale <= 0 {
		scale = 1
	}
	if v < 0 {
		return (v - scale + 1) / scale
	}
	return v / scale
}

// pointer builds the per-frame input from a screen position and button state.
func pointer(mx, my, scale int, left, right, middle bool) sand.Input {
	in := sand.Input{X: toGrid(mx, scale), Y: toGrid(my, scale)}
	if left {
		in.Buttons |= sand.ButtonLeft
	}
	if right {
		in.Buttons |= sand.ButtonRight
	}
	if middle {
		in.Buttons |= sand.ButtonMiddle
	}
	return in
}
