package groom

import (
	"fmt"
	"strconv"
	"strings"
)

// GroomedTask is one cleaned-up entry of the todo list.
type GroomedTask struct {
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes"`
	EstimatedTime string `json:"estimated_time"`
	Source        string `json:"source"`
}

// EstimatedMinutes parses the free-form estimate ("HH:MM" or plain minutes)
// into minutes. It returns 0 when the estimate is absent or unparseable.
func (t GroomedTask) EstimatedMinutes() int {
	est := strings.TrimSpace(t.EstimatedTime)
	if est == "" {
		return 0
	}
	if h, m, ok := strings.Cut(est, ":"); ok {
		hours, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil || hours < 0 {
			return 0
		}
		mins, err := strconv.Atoi(strings.TrimSpace(m))
		if err != nil || mins < 0 {
			return 0
		}
		return hours*60 + mins
	}
	mins, err := strconv.Atoi(est)
	if err != nil || mins < 0 {
		return 0
	}
	return mins
}

// Result is the outcome of a grooming run.
type Result struct {
	Tasks           []GroomedTask
	Suggestions     []string
	RemovedItems    []string
	ProcessingNotes string
	FallbackUsed    bool
}

// FormattedTasks renders the groomed list as numbered lines for display.
func (r *Result) FormattedTasks() string {
	if len(r.Tasks) == 0 {
		return ""
	}

	lines := make([]string, 0, len(r.Tasks))
	for i, t := range r.Tasks {
		title := t.Title
		if title == "" {
			title = "Untitled task"
		}
		line := fmt.Sprintf("%d. %s", i+1, title)
		if t.Priority == "high" || t.Priority == "urgent" {
			line += " [HIGH PRIORITY]"
		}
		if t.Notes != "" {
			line += fmt.Sprintf(" (%s)", t.Notes)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
