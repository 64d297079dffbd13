// Package nav tracks which screen of the assistant is active, independent of
// any UI toolkit.
package nav

// Screen identifies a navigable screen.
type Screen string

const (
	ScreenMainMenu          Screen = "main_menu"
	ScreenExecutiveFunction Screen = "executive_function"
	ScreenEmotions          Screen = "emotions_management"
	ScreenHabits            Screen = "habits"
	ScreenPomodoro          Screen = "pomodoro"
	ScreenRoutines          Screen = "routines"
	ScreenTodoTimeline      Screen = "todo_timeline"
	ScreenTodoList          Screen = "todo_list"
	ScreenDependencies      Screen = "times_dependencies"
	ScreenTimelineView      Screen = "timeline_view"
)

var validScreens = map[Screen]bool{
	ScreenMainMenu:          true,
	ScreenExecutiveFunction: true,
	ScreenEmotions:          true,
	ScreenHabits:            true,
	ScreenPomodoro:          true,
	ScreenRoutines:          true,
	ScreenTodoTimeline:      true,
	ScreenTodoList:          true,
	ScreenDependencies:      true,
	ScreenTimelineView:      true,
}

// Navigator holds the active screen and the back history. The history starts
// seeded with the main menu so the first GoBack always lands somewhere valid.
type Navigator struct {
	current Screen
	history []Screen
}

// New returns a navigator positioned on the main menu.
func New() *Navigator {
	return &Navigator{
		current: ScreenMainMenu,
		history: []Screen{ScreenMainMenu},
	}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// NavigateTo switches to the given screen, pushing the previous one onto the
// history. Unknown screens are rejected.
func (n *Navigator) NavigateTo(s Screen) bool {
	if !validScreens[s] {
		return false
	}
	if s != n.current {
		n.history = append(n.history, n.current)
	}
	n.current = s
	return true
}

// GoBack returns to the most recently recorded screen. It reports false once
// the history is exhausted.
func (n *Navigator) GoBack() bool {
	if len(n.history) == 0 {
		return false
	}
	n.current = n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	return true
}

// History returns a copy of the back stack, oldest first.
func (n *Navigator) History() []Screen {
	out := make([]Screen, len(n.history))
	copy(out, n.history)
	return out
}

// CanNavigateTo reports whether s is a known screen.
func (n *Navigator) CanNavigateTo(s Screen) bool {
	return validScreens[s]
}
