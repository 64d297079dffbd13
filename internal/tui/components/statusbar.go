package components

import (
	"strings"

	"github.com/pablasso/tempo/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual key hints.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. Hints are joined
// with a dot separator and the bar is padded to fill the width.
func (s StatusBar) Render(width int, hints []string) string {
	return styles.StatusBarStyle.Width(width).Render(strings.Join(hints, " • "))
}
