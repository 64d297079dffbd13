package groom

import (
	"fmt"
	"strings"
)

// PromptVersion is bumped whenever the templates change in a way that affects
// output quality comparisons.
const PromptVersion = "1.0"

// PromptType selects which grooming template to use.
type PromptType string

const (
	PromptStandard PromptType = "standard"
	PromptSimple   PromptType = "simple"
	PromptLong     PromptType = "long"
)

const groomingPromptTemplate = `You are an AI assistant specialized in organizing and optimizing todo lists. Your task is to improve the given todo list by:

1. Clarifying vague or unclear tasks
2. Breaking down large tasks into smaller, actionable items
3. Removing duplicates and consolidating similar items
4. Improving task descriptions for clarity
5. Suggesting logical priority ordering

Input Todo List:
%s

Please respond with a JSON object containing:
{
    "groomed_tasks": [
        {
            "title": "Clear, actionable task description",
            "estimated_time": "HH:MM format (optional)",
            "priority": "high|medium|low",
            "notes": "Any clarification or context",
            "source": "Reference to original input that relates to this task"
        }
    ],
    "suggestions": ["Any general recommendations"],
    "removed_items": ["Duplicate or unnecessary items removed"],
    "processing_notes": "Brief summary of changes made"
}

Ensure all tasks are:
- Specific and actionable
- Clearly worded
- Appropriately sized (can be completed in reasonable time)
- Free of duplicates

Respond ONLY with valid JSON, no additional text.`

const simpleGroomingPrompt = `Improve this todo list by making tasks clearer and removing duplicates:

%s

Respond with JSON:
{
    "groomed_tasks": [
        {"title": "task description", "priority": "medium"}
    ],
    "processing_notes": "what was changed"
}`

const longListPreamble = `You are organizing a large todo list. Focus on:
- Grouping related tasks
- Identifying urgent vs non-urgent items
- Breaking down complex tasks
- Removing duplicates

`

// SelectPromptType picks a template based on the size of the list: short
// lists get the light-weight prompt, long lists get extra grouping guidance.
func SelectPromptType(list string) PromptType {
	lines := nonEmptyLines(list)
	switch {
	case len(lines) > 10:
		return PromptLong
	case len(lines) <= 3:
		return PromptSimple
	default:
		return PromptStandard
	}
}

// GroomingPrompt formats the grooming prompt for the given list.
func GroomingPrompt(list string, typ PromptType) string {
	list = strings.TrimSpace(list)
	switch typ {
	case PromptSimple:
		return fmt.Sprintf(simpleGroomingPrompt, list)
	case PromptLong:
		return longListPreamble + fmt.Sprintf(groomingPromptTemplate, list)
	default:
		return fmt.Sprintf(groomingPromptTemplate, list)
	}
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
