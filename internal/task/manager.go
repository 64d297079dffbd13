package task

import "time"

// Manager owns the task collection and the single active task. All queries
// return tasks in insertion order. Every operation is total: invalid requests
// are answered with a false return or a no-op, never an error, so a render
// loop can poll freely.
//
// Manager is not safe for concurrent use; the caller serializes access.
type Manager struct {
	tasks   []*Task
	index   map[ID]*Task
	current *Task
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{index: make(map[ID]*Task)}
}

// AddTask registers t with the manager.
func (m *Manager) AddTask(t *Task) {
	if t == nil {
		return
	}
	m.tasks = append(m.tasks, t)
	m.index[t.ID] = t
}

// RemoveTask removes t from the collection and strips it from every remaining
// task's prerequisite list, so no dangling dependency references survive.
// No-op if t is not registered.
func (m *Manager) RemoveTask(t *Task) {
	if t == nil {
		return
	}
	for i, x := range m.tasks {
		if x == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			delete(m.index, t.ID)
			for _, rest := range m.tasks {
				rest.RemoveDependency(t.ID)
			}
			return
		}
	}
}

// Get returns the registered task with the given ID.
func (m *Manager) Get(id ID) (*Task, bool) {
	t, ok := m.index[id]
	return t, ok
}

// Tasks returns a copy of the collection in insertion order.
func (m *Manager) Tasks() []*Task {
	out := make([]*Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// CurrentTask returns the active task, or nil when nothing is in progress.
func (m *Manager) CurrentTask() *Task {
	return m.current
}

// CanStart reports whether every direct prerequisite of t is completed. A
// task with no prerequisites can always start. Only one level is checked;
// transitive readiness is deliberately not considered. A prerequisite that is
// not registered with the manager counts as incomplete.
func (m *Manager) CanStart(t *Task) bool {
	if t == nil {
		return false
	}
	for _, id := range t.deps {
		dep, ok := m.index[id]
		if !ok || !dep.Completed {
			return false
		}
	}
	return true
}

// ReadyTasks returns the startable tasks: prerequisites met, not completed,
// and not currently active.
func (m *Manager) ReadyTasks() []*Task {
	var ready []*Task
	for _, t := range m.tasks {
		if m.CanStart(t) && !t.Completed && t != m.current {
			ready = append(ready, t)
		}
	}
	return ready
}

// CompletedTasks returns the tasks that have been marked done.
func (m *Manager) CompletedTasks() []*Task {
	var done []*Task
	for _, t := range m.tasks {
		if t.Completed {
			done = append(done, t)
		}
	}
	return done
}

// PendingTasks returns the tasks not yet completed, ready or not.
func (m *Manager) PendingTasks() []*Task {
	var pending []*Task
	for _, t := range m.tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

// StartTask makes t the active task when its prerequisites are met, and
// reports whether that happened. The start timestamp is only stamped on a
// task that is not already completed; a completed task whose prerequisites
// are met can still be selected as current but keeps its history untouched.
func (m *Manager) StartTask(t *Task) bool {
	if !m.CanStart(t) {
		return false
	}
	m.current = t
	if !t.Completed {
		t.StartTime = time.Now()
	}
	return true
}

// CompleteCurrent marks the active task as done and clears the active slot.
// No-op when nothing is in progress.
func (m *Manager) CompleteCurrent() {
	if m.current == nil {
		return
	}
	m.current.MarkCompleted()
	m.current = nil
}
