package task

// Timeline is a point-in-time projection of the task graph for display. It is
// computed fresh on every call and never cached across mutations.
type Timeline struct {
	Current   *Task
	Ready     []*Task
	Parallel  []*Task
	Completed []*Task
}

// Timeline builds the display projection. The parallel slice skips the first
// ready task and takes up to the next two: it answers "what else could be
// picked up besides the obvious next item", not a scheduling priority.
func (m *Manager) Timeline() Timeline {
	ready := m.ReadyTasks()
	tl := Timeline{
		Current:   m.current,
		Ready:     ready,
		Completed: m.CompletedTasks(),
	}
	if len(ready) > 1 {
		end := 3
		if len(ready) < end {
			end = len(ready)
		}
		tl.Parallel = ready[1:end]
	}
	return tl
}
