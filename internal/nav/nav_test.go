package nav

import "testing"

func TestNew_StartsOnMainMenu(t *testing.T) {
	n := New()

	if n.Current() != ScreenMainMenu {
		t.Errorf("expected to start on %q, got %q", ScreenMainMenu, n.Current())
	}
}

func TestNavigateTo(t *testing.T) {
	t.Run("valid screen", func(t *testing.T) {
		n := New()

		if !n.NavigateTo(ScreenTodoList) {
			t.Fatal("expected navigation to a valid screen to succeed")
		}
		if n.Current() != ScreenTodoList {
			t.Errorf("expected current screen %q, got %q", ScreenTodoList, n.Current())
		}
	})

	t.Run("unknown screen is rejected", func(t *testing.T) {
		n := New()

		if n.NavigateTo(Screen("settings")) {
			t.Fatal("expected navigation to an unknown screen to fail")
		}
		if n.Current() != ScreenMainMenu {
			t.Error("failed navigation must not change the current screen")
		}
	})

	t.Run("pushes previous screen onto history", func(t *testing.T) {
		n := New()
		n.NavigateTo(ScreenExecutiveFunction)
		n.NavigateTo(ScreenTodoTimeline)

		hist := n.History()
		if len(hist) != 3 {
			t.Fatalf("expected history of 3, got %d", len(hist))
		}
		if hist[len(hist)-1] != ScreenExecutiveFunction {
			t.Errorf("expected last history entry %q, got %q", ScreenExecutiveFunction, hist[len(hist)-1])
		}
	})

	t.Run("same screen is not pushed twice", func(t *testing.T) {
		n := New()
		n.NavigateTo(ScreenHabits)
		before := len(n.History())

		n.NavigateTo(ScreenHabits)

		if got := len(n.History()); got != before {
			t.Errorf("navigating to the current screen must not grow history: %d -> %d", before, got)
		}
	})
}

func TestGoBack(t *testing.T) {
	t.Run("returns to the previous screen", func(t *testing.T) {
		n := New()
		n.NavigateTo(ScreenExecutiveFunction)
		n.NavigateTo(ScreenTodoTimeline)

		if !n.GoBack() {
			t.Fatal("expected GoBack to succeed")
		}
		if n.Current() != ScreenExecutiveFunction {
			t.Errorf("expected to be back on %q, got %q", ScreenExecutiveFunction, n.Current())
		}
	})

	t.Run("exhausts down to the seed entry", func(t *testing.T) {
		n := New()
		n.NavigateTo(ScreenPomodoro)

		if !n.GoBack() { // back to main menu
			t.Fatal("first GoBack should succeed")
		}
		if !n.GoBack() { // consumes the seed entry
			t.Fatal("seed entry should still be poppable")
		}
		if n.GoBack() {
			t.Error("expected GoBack to fail once history is empty")
		}
		if n.Current() != ScreenMainMenu {
			t.Errorf("expected to end on %q, got %q", ScreenMainMenu, n.Current())
		}
	})
}

func TestCanNavigateTo(t *testing.T) {
	n := New()

	for _, s := range []Screen{ScreenMainMenu, ScreenRoutines, ScreenTimelineView, ScreenDependencies} {
		if !n.CanNavigateTo(s) {
			t.Errorf("expected %q to be navigable", s)
		}
	}
	if n.CanNavigateTo(Screen("nonexistent")) {
		t.Error("expected unknown screen to be rejected")
	}
}
