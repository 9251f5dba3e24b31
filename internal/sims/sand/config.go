package sand

import "strconv"

// Config controls the sandbox dimensions and initial selection.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Water enables the water rule for id 2. When false id 2 is inert.
	Water bool

	PenSize   int
	Primary   Material
	Secondary Material
}

const (
	minPenSize = 1
	maxPenSize = 4
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     160,
		Height:    120,
		Seed:      42,
		PenSize:   1,
		Primary:   Sand,
		Secondary: Erase,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["water"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Water = parsed
		}
	}
	if v, ok := cfg["pen"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PenSize = clampPen(parsed)
		}
	}
	if v, ok := cfg["primary"]; ok {
		if m, err := ParseMaterial(v); err == nil && m.Selectable() {
			c.Primary = m
		}
	}
	if v, ok := cfg["secondary"]; ok {
		if m, err := ParseMaterial(v); err == nil && m.Selectable() {
			c.Secondary = m
		}
	}
	return c
}

func clampPen(k int) int {
	if k < minPenSize {
		return minPenSize
	}
	if k > maxPenSize {
		return maxPenSize
	}
	return k
}
