package render

import "image/color"

// FillPalette converts palette indices into RGBA pixels in buf. Indices past
// the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		base := i * 4
		col := palette[Index(c, last)]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Index clamps a cell value to a palette of last+1 entries.
func Index(c uint8, last int) int {
	idx := int(c)
	if idx > last {
		idx = last
	}
	return idx
}

// Lookup returns the palette color for c, or transparent black when the
// palette is empty.
func Lookup(palette []color.RGBA, c uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	return palette[Index(c, len(palette)-1)]
}
