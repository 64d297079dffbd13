// Package task implements the dependency-aware task graph that backs the
// timeline views: task entities, the manager that owns them, and the derived
// readiness projection.
package task

import (
	"sync/atomic"
	"time"
)

// ID uniquely identifies a task within the process. IDs are assigned from a
// monotonic counter at creation and never reused.
type ID int64

var idCounter atomic.Int64

// Task is a single unit of work. Prerequisites are stored as an ordered list
// of task IDs and resolved through the Manager that owns the task.
type Task struct {
	ID               ID
	Title            string
	Description      string
	EstimatedMinutes int
	CreatedAt        time.Time
	Completed        bool
	StartTime        time.Time // zero until the task actually begins
	EndTime          time.Time // zero until the task completes

	deps []ID
}

// New creates a task with a fresh ID. Dependencies are attached afterwards
// via AddDependency.
func New(title, description string, estimatedMinutes int) *Task {
	return &Task{
		ID:               ID(idCounter.Add(1)),
		Title:            title,
		Description:      description,
		EstimatedMinutes: estimatedMinutes,
		CreatedAt:        time.Now(),
	}
}

// AddDependency records dep as a prerequisite of t. Adding a dependency that
// is already present is a no-op. Self-dependencies are not rejected; a task
// that depends on itself simply never becomes startable.
func (t *Task) AddDependency(dep ID) {
	for _, d := range t.deps {
		if d == dep {
			return
		}
	}
	t.deps = append(t.deps, dep)
}

// RemoveDependency removes dep from t's prerequisites. Removing a dependency
// that is not present is a no-op.
func (t *Task) RemoveDependency(dep ID) {
	for i, d := range t.deps {
		if d == dep {
			t.deps = append(t.deps[:i], t.deps[i+1:]...)
			return
		}
	}
}

// DependsOn reports whether dep is a direct prerequisite of t.
func (t *Task) DependsOn(dep ID) bool {
	for _, d := range t.deps {
		if d == dep {
			return true
		}
	}
	return false
}

// Dependencies returns a copy of the prerequisite list in insertion order.
func (t *Task) Dependencies() []ID {
	out := make([]ID, len(t.deps))
	copy(out, t.deps)
	return out
}

// MarkCompleted marks t as done and stamps the end time. Completion is
// terminal; calling it again only re-stamps EndTime.
func (t *Task) MarkCompleted() {
	t.Completed = true
	t.EndTime = time.Now()
}

// Started reports whether the task ever began execution.
func (t *Task) Started() bool {
	return !t.StartTime.IsZero()
}
