package components

import (
	"strings"
	"testing"
)

func TestProgress_View_NothingDone(t *testing.T) {
	p := NewProgress(0, 10, 8)
	result := p.View()

	if !strings.HasPrefix(result, "□□□□□□□□") {
		t.Errorf("expected all empty boxes, got: %s", result)
	}
	if !strings.HasSuffix(result, "0/10 done") {
		t.Errorf("expected 0/10 done, got: %s", result)
	}
}

func TestProgress_View_HalfDone(t *testing.T) {
	p := NewProgress(5, 10, 8)
	result := p.View()

	if !strings.HasPrefix(result, "■■■■□□□□") {
		t.Errorf("expected half filled ■■■■□□□□, got: %s", result)
	}
	if !strings.HasSuffix(result, "5/10 done") {
		t.Errorf("expected 5/10 done, got: %s", result)
	}
}

func TestProgress_View_AllDone(t *testing.T) {
	p := NewProgress(10, 10, 8)
	result := p.View()

	if !strings.HasPrefix(result, "■■■■■■■■") {
		t.Errorf("expected all filled boxes, got: %s", result)
	}
	if !strings.HasSuffix(result, "10/10 done") {
		t.Errorf("expected 10/10 done, got: %s", result)
	}
}

func TestProgress_View_InvalidDimensions(t *testing.T) {
	if result := NewProgress(5, 0, 8).View(); result != "" {
		t.Errorf("expected empty string for zero total, got: %s", result)
	}
	if result := NewProgress(5, 10, 0).View(); result != "" {
		t.Errorf("expected empty string for zero width, got: %s", result)
	}
}

func TestProgress_View_ClampsDone(t *testing.T) {
	if result := NewProgress(-5, 10, 8).View(); !strings.HasSuffix(result, "0/10 done") {
		t.Errorf("expected negative done clamped to 0, got: %s", result)
	}
	if result := NewProgress(15, 10, 8).View(); !strings.HasSuffix(result, "10/10 done") {
		t.Errorf("expected done clamped to total, got: %s", result)
	}
}

func TestProgress_View_DifferentWidths(t *testing.T) {
	tests := []struct {
		width    int
		done     int
		total    int
		expected string
	}{
		{4, 2, 4, "■■□□ 2/4 done"},
		{10, 3, 10, "■■■□□□□□□□ 3/10 done"},
		{6, 1, 3, "■■□□□□ 1/3 done"},
	}

	for _, tt := range tests {
		p := NewProgress(tt.done, tt.total, tt.width)
		if result := p.View(); result != tt.expected {
			t.Errorf("Progress(%d, %d, %d).View() = %q, want %q",
				tt.done, tt.total, tt.width, result, tt.expected)
		}
	}
}
