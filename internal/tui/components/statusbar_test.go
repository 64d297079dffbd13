package components

import (
	"strings"
	"testing"
)

func TestStatusBar_Render_SingleHint(t *testing.T) {
	sb := NewStatusBar()
	result := sb.Render(50, []string{"q quit"})

	if !strings.Contains(result, "q quit") {
		t.Errorf("expected result to contain 'q quit', got: %s", result)
	}
}

func TestStatusBar_Render_JoinsWithSeparator(t *testing.T) {
	sb := NewStatusBar()
	result := sb.Render(60, []string{"a add", "s start", "esc back"})

	if !strings.Contains(result, "a add • s start • esc back") {
		t.Errorf("expected hints joined with ' • ', got: %s", result)
	}
}

func TestStatusBar_Render_NoHints(t *testing.T) {
	sb := NewStatusBar()

	// Must not panic; the styled bar may still carry padding.
	_ = sb.Render(50, nil)
}

func TestStatusBar_Render_NarrowWidth(t *testing.T) {
	sb := NewStatusBar()
	result := sb.Render(10, []string{"a add", "s start", "esc back"})

	if result == "" {
		t.Error("expected non-empty result even with narrow width")
	}
}
