package sand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Material identifies what a cell contains.
type Material uint8

const (
	Air   Material = 0
	Sand  Material = 1
	Water Material = 2
	Fire  Material = 3
	Lava  Material = 4
	Glass Material = 5
	Torch Material = 6
	Spout Material = 7
	// Erase is a selection-only id. Painting it clears cells to Air; it is
	// never stored in the grid.
	Erase Material = 13
)

// maxMaterial is the largest id the 4-bit material field can carry.
const maxMaterial Material = 15

// ErrUnknownMaterial is returned when a name or id does not map to a material.
var ErrUnknownMaterial = errors.New("unknown material")

var materialNames = map[Material]string{
	Air:   "air",
	Sand:  "sand",
	Water: "water",
	Fire:  "fire",
	Lava:  "lava",
	Glass: "glass",
	Torch: "torch",
	Spout: "spout",
	Erase: "erase",
}

func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return "material(" + strconv.Itoa(int(m)) + ")"
}

// Selectable reports whether m may be picked from the menu.
func (m Material) Selectable() bool {
	return (m >= Sand && m <= Spout) || m == Erase
}

// ParseMaterial accepts a material name or its numeric id.
func ParseMaterial(s string) (Material, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range materialNames {
		if name == s {
			return m, nil
		}
	}
	if id, err := strconv.Atoi(s); err == nil && id >= 0 && id <= int(maxMaterial) {
		if Material(id).Selectable() || Material(id) == Air {
			return Material(id), nil
		}
	}
	return Air, fmt.Errorf("parse material %q: %w", s, ErrUnknownMaterial)
}
