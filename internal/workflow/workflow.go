// Package workflow is the ID-keyed façade between the task graph and the
// presentation layer. Lookups by unknown ID answer with false or nil, never
// an error.
package workflow

import "github.com/pablasso/tempo/internal/task"

// Workflow owns one task manager. Construct it explicitly and pass it to
// whatever renders it; there is no shared global instance.
type Workflow struct {
	manager *task.Manager
}

// Timeline extends the core projection with the blocked view: tasks that are
// neither ready nor completed.
type Timeline struct {
	Current   *task.Task
	Ready     []*task.Task
	Parallel  []*task.Task
	Blocked   []*task.Task
	Completed []*task.Task
}

// New returns an empty workflow.
func New() *Workflow {
	return &Workflow{manager: task.NewManager()}
}

// AddTask creates a task and registers it, returning its ID.
func (w *Workflow) AddTask(title, description string, estimatedMinutes int) task.ID {
	t := task.New(title, description, estimatedMinutes)
	w.manager.AddTask(t)
	return t.ID
}

// Task resolves an ID to its task.
func (w *Workflow) Task(id task.ID) (*task.Task, bool) {
	return w.manager.Get(id)
}

// Tasks returns every task in insertion order.
func (w *Workflow) Tasks() []*task.Task {
	return w.manager.Tasks()
}

// CurrentTask returns the active task, or nil.
func (w *Workflow) CurrentTask() *task.Task {
	return w.manager.CurrentTask()
}

// CompletedTasks returns the tasks marked done, in insertion order.
func (w *Workflow) CompletedTasks() []*task.Task {
	return w.manager.CompletedTasks()
}

// CanStart reports whether the task with the given ID is startable.
func (w *Workflow) CanStart(id task.ID) bool {
	t, ok := w.manager.Get(id)
	if !ok {
		return false
	}
	return w.manager.CanStart(t)
}

// SetDependency records dependsOn as a prerequisite of id. Both tasks must be
// known; otherwise nothing changes and false is returned.
func (w *Workflow) SetDependency(id, dependsOn task.ID) bool {
	t, ok := w.manager.Get(id)
	dep, depOK := w.manager.Get(dependsOn)
	if !ok || !depOK {
		return false
	}
	t.AddDependency(dep.ID)
	return true
}

// RemoveDependency undoes SetDependency. Removing an edge that does not exist
// still counts as success as long as the task is known.
func (w *Workflow) RemoveDependency(id, dependsOn task.ID) bool {
	t, ok := w.manager.Get(id)
	if !ok {
		return false
	}
	t.RemoveDependency(dependsOn)
	return true
}

// Start begins work on the task with the given ID and reports whether the
// start took effect.
func (w *Workflow) Start(id task.ID) bool {
	t, ok := w.manager.Get(id)
	if !ok {
		return false
	}
	return w.manager.StartTask(t)
}

// Complete marks the task with the given ID as done, whether or not it was
// ever started.
func (w *Workflow) Complete(id task.ID) bool {
	t, ok := w.manager.Get(id)
	if !ok {
		return false
	}
	t.MarkCompleted()
	return true
}

// CompleteCurrent finishes the active task. It reports whether there was one.
func (w *Workflow) CompleteCurrent() bool {
	if w.manager.CurrentTask() == nil {
		return false
	}
	w.manager.CompleteCurrent()
	return true
}

// Remove deletes the task with the given ID, cleaning up every dependency
// reference to it.
func (w *Workflow) Remove(id task.ID) bool {
	t, ok := w.manager.Get(id)
	if !ok {
		return false
	}
	w.manager.RemoveTask(t)
	return true
}

// Timeline builds the extended projection for display.
func (w *Workflow) Timeline() Timeline {
	core := w.manager.Timeline()
	var blocked []*task.Task
	for _, t := range w.manager.Tasks() {
		if !w.manager.CanStart(t) && !t.Completed {
			blocked = append(blocked, t)
		}
	}
	return Timeline{
		Current:   core.Current,
		Ready:     core.Ready,
		Parallel:  core.Parallel,
		Blocked:   blocked,
		Completed: core.Completed,
	}
}
