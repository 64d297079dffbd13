// Package display renders timeline projections as plain text for
// non-interactive output.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/util"
	"github.com/pablasso/tempo/internal/workflow"
)

// Render returns a plain-text view of the timeline: the active task first,
// then the parallel picks, the remaining ready and blocked tasks, and what is
// already done.
func Render(tl workflow.Timeline) string {
	var b strings.Builder

	b.WriteString("Now\n")
	if tl.Current != nil {
		writeTask(&b, tl.Current)
		if elapsed := runningFor(tl.Current); elapsed != "" {
			b.WriteString("    started " + elapsed + " ago\n")
		}
	} else {
		b.WriteString("  (nothing in progress)\n")
	}

	if len(tl.Parallel) > 0 {
		b.WriteString("\nAlso doable now\n")
		for _, t := range tl.Parallel {
			writeTask(&b, t)
		}
	}

	b.WriteString("\nReady\n")
	if len(tl.Ready) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, t := range tl.Ready {
		writeTask(&b, t)
	}

	if len(tl.Blocked) > 0 {
		b.WriteString("\nBlocked\n")
		for _, t := range tl.Blocked {
			writeTask(&b, t)
		}
	}

	if len(tl.Completed) > 0 {
		b.WriteString("\nDone\n")
		for _, t := range tl.Completed {
			writeTask(&b, t)
		}
	}

	return b.String()
}

// runningFor formats how long the task has been in progress. Empty for tasks
// that never started, finished already, or started under a minute ago.
func runningFor(t *task.Task) string {
	if !t.Started() || t.Completed {
		return ""
	}
	return util.FormatMinutes(int(time.Since(t.StartTime).Minutes()))
}

func writeTask(b *strings.Builder, t *task.Task) {
	line := "  - " + t.Title
	if est := util.FormatMinutes(t.EstimatedMinutes); est != "" {
		line += fmt.Sprintf(" (~%s)", est)
	}
	b.WriteString(line + "\n")
}
