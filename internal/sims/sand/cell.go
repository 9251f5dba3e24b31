package sand

// Cell is the state of one grid coordinate. Each field is independent:
// setters touch only their own field and mask the input into its range.
type Cell struct {
	material Material
	color    uint8
	age      uint8
	updated  bool
}

const (
	colorMask = 0x03
	ageMask   = 0x0f
	// maxAge is the largest representable age; fire and lava key off it.
	maxAge = ageMask
)

// NewCell returns a fresh particle of material m with zero color and age.
func NewCell(m Material) Cell {
	return Cell{material: m & maxMaterial}
}

// Material returns the cell's material id.
func (c Cell) Material() Material { return c.material }

// Color returns the palette index (0-3).
func (c Cell) Color() uint8 { return c.color }

// Age returns the material-specific counter (0-15).
func (c Cell) Age() uint8 { return c.age }

// Updated reports whether the cell was processed in the current sweep.
func (c Cell) Updated() bool { return c.updated }

// SetMaterial replaces the material id. Color and age are left as they are.
func (c *Cell) SetMaterial(m Material) { c.material = m & maxMaterial }

// SetColor stores the low two bits of v.
func (c *Cell) SetColor(v uint8) { c.color = v & colorMask }

// SetAge stores the low four bits of v, so 15+1 wraps to 0.
func (c *Cell) SetAge(v uint8) { c.age = v & ageMask }

// SetUpdated sets the processed-this-sweep flag.
func (c *Cell) SetUpdated(v bool) { c.updated = v }

// Reset turns the cell back into plain Air.
func (c *Cell) Reset() { *c = Cell{} }

// Pack encodes the cell in the 16-bit layout
// mmmm cc aaaa 00000 u (material, color, age, updated).
func (c Cell) Pack() uint16 {
	v := uint16(c.material&maxMaterial) << 12
	v |= uint16(c.color&colorMask) << 10
	v |= uint16(c.age&ageMask) << 6
	if c.updated {
		v |= 1
	}
	return v
}

// Unpack decodes a value produced by Pack.
func Unpack(v uint16) Cell {
	return Cell{
		material: Material(v>>12) & maxMaterial,
		color:    uint8(v>>10) & colorMask,
		age:      uint8(v>>6) & ageMask,
		updated:  v&1 != 0,
	}
}
