package sand

import "image/color"

// coldfire-gb
var defaultPalette = [4]color.RGBA{
	{R: 0x46, G: 0x42, B: 0x5e, A: 0xff},
	{R: 0xf6, G: 0xc6, B: 0xa8, A: 0xff},
	{R: 0x5b, G: 0x76, B: 0x8d, A: 0xff},
	{R: 0xd1, G: 0x7c, B: 0x7c, A: 0xff},
}

var cursorColors = [16]uint8{1, 2, 3, 3, 0, 3, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// DefaultPalette returns a copy of the four-entry palette.
func DefaultPalette() []color.RGBA {
	out := make([]color.RGBA, len(defaultPalette))
	copy(out, defaultPalette[:])
	return out
}

// CursorColor returns the palette index used to outline the pen for m.
func CursorColor(m Material) uint8 {
	if m == Air {
		return 0
	}
	return cursorColors[(m-1)&maxMaterial]
}
