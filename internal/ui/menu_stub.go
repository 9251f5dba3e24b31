//go:build !ebiten

package ui

// MenuBar is a no-op placeholder for headless builds.
type MenuBar struct{}

// NewMenuBar returns nil in the headless build.
func NewMenuBar(*Controller, int) *MenuBar { return nil }

// Draw is a no-op in the headless build.
func (m *MenuBar) Draw(any, any) {}
