package groom

import (
	"strings"
	"testing"
)

func TestSelectPromptType(t *testing.T) {
	tests := []struct {
		name     string
		lines    int
		expected PromptType
	}{
		{"one item", 1, PromptSimple},
		{"three items", 3, PromptSimple},
		{"four items", 4, PromptStandard},
		{"ten items", 10, PromptStandard},
		{"eleven items", 11, PromptLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b strings.Builder
			for i := 0; i < tc.lines; i++ {
				b.WriteString("task\n")
			}
			if got := SelectPromptType(b.String()); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestSelectPromptType_IgnoresBlankLines(t *testing.T) {
	list := "a\n\n\nb\n   \nc\nd\n"
	if got := SelectPromptType(list); got != PromptStandard {
		t.Errorf("expected standard for 4 real lines, got %q", got)
	}
}

func TestGroomingPrompt(t *testing.T) {
	list := "  buy milk\ncall mom  "

	t.Run("embeds the trimmed list", func(t *testing.T) {
		for _, typ := range []PromptType{PromptSimple, PromptStandard, PromptLong} {
			prompt := GroomingPrompt(list, typ)
			if !strings.Contains(prompt, "buy milk\ncall mom") {
				t.Errorf("%s prompt does not embed the list", typ)
			}
		}
	})

	t.Run("long prompt adds grouping guidance", func(t *testing.T) {
		prompt := GroomingPrompt(list, PromptLong)
		if !strings.Contains(prompt, "organizing a large todo list") {
			t.Error("long prompt missing its preamble")
		}
	})

	t.Run("all prompts ask for JSON", func(t *testing.T) {
		for _, typ := range []PromptType{PromptSimple, PromptStandard, PromptLong} {
			if !strings.Contains(GroomingPrompt(list, typ), "groomed_tasks") {
				t.Errorf("%s prompt does not describe the JSON contract", typ)
			}
		}
	})
}
