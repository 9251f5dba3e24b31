package sand

// MenuItem numbers the 4x4 menu, column-major from 1.
type MenuItem int

const (
	MenuColumns = 4
	MenuRows    = 4

	MenuClear MenuItem = 14
	MenuPause MenuItem = 15
	MenuPen   MenuItem = 16
)

// MenuItemAt maps a menu cell to its item.
func MenuItemAt(col, row int) (MenuItem, bool) {
	if col < 0 || col >= MenuColumns || row < 0 || row >= MenuRows {
		return 0, false
	}
	return MenuItem(col*MenuRows + row + 1), true
}

// Material returns the material an item selects, if any.
func (it MenuItem) Material() (Material, bool) {
	if (it >= MenuItem(Sand) && it <= MenuItem(Spout)) || it == MenuItem(Erase) {
		return Material(it), true
	}
	return Air, false
}

// Label is the short caption drawn in the menu cell.
func (it MenuItem) Label() string {
	if m, ok := it.Material(); ok {
		return m.String()
	}
	switch it {
	case MenuClear:
		return "clear"
	case MenuPause:
		return "pause"
	case MenuPen:
		return "pen"
	}
	return ""
}

// Selection holds the two material slots and the pen size.
type Selection struct {
	Primary   Material
	Secondary Material
	PenSize   int
}

// NewSelection returns the initial selection for cfg.
func NewSelection(cfg Config) Selection {
	return Selection{
		Primary:   cfg.Primary,
		Secondary: cfg.Secondary,
		PenSize:   clampPen(cfg.PenSize),
	}
}

// CyclePen advances the pen size 1 -> 2 -> 3 -> 4 -> 1.
func (s *Selection) CyclePen() {
	s.PenSize++
	if s.PenSize > maxPenSize {
		s.PenSize = minPenSize
	}
}

// Pick applies a menu item. Material items go to the secondary slot when the
// right button is held, otherwise to the primary one. Water is only offered
// when the water rule is enabled. It reports whether anything changed.
func (w *World) Pick(item MenuItem, buttons Buttons) bool {
	if m, ok := item.Material(); ok {
		if m == Water && !w.cfg.Water {
			return false
		}
		if buttons&ButtonRight != 0 {
			w.sel.Secondary = m
		} else {
			w.sel.Primary = m
		}
		return true
	}
	switch item {
	case MenuClear:
		w.Clear()
	case MenuPause:
		w.TogglePause()
	case MenuPen:
		w.sel.CyclePen()
	default:
		return false
	}
	return true
}
