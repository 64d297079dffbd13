// Package msgs defines shared message types for TUI view transitions.
package msgs

import (
	"github.com/pablasso/tempo/internal/groom"
	"github.com/pablasso/tempo/internal/nav"
)

// GoToScreenMsg asks the root model to switch to another screen.
type GoToScreenMsg struct {
	Screen nav.Screen
}

// GoBackMsg asks the root model to navigate back.
type GoBackMsg struct{}

// TaskAddedMsg is sent after a task was added from any view.
type TaskAddedMsg struct {
	Title string
}

// GroomDoneMsg carries the outcome of a grooming run.
type GroomDoneMsg struct {
	Result *groom.Result
	Err    error
}

// TasksImportedMsg is sent after groomed tasks were imported into the
// workflow.
type TasksImportedMsg struct {
	Count int
}
