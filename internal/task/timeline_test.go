package task

import "testing"

func TestTimeline_Empty(t *testing.T) {
	m := NewManager()

	tl := m.Timeline()

	if tl.Current != nil {
		t.Error("expected no current task")
	}
	if len(tl.Ready) != 0 || len(tl.Parallel) != 0 || len(tl.Completed) != 0 {
		t.Error("expected an empty projection")
	}
}

func TestTimeline_SingleReadyTask(t *testing.T) {
	m := NewManager()
	a := addNew(m, "a")

	tl := m.Timeline()

	if len(tl.Ready) != 1 || tl.Ready[0] != a {
		t.Fatalf("expected ready [a], got %d tasks", len(tl.Ready))
	}
	if len(tl.Parallel) != 0 {
		t.Error("a single ready task yields no parallel slice")
	}
}

func TestTimeline_ParallelSliceSkipsFirstReady(t *testing.T) {
	m := NewManager()
	addNew(m, "a")
	b := addNew(m, "b")
	c := addNew(m, "c")

	tl := m.Timeline()

	if len(tl.Ready) != 3 {
		t.Fatalf("expected 3 ready tasks, got %d", len(tl.Ready))
	}
	if len(tl.Parallel) != 2 || tl.Parallel[0] != b || tl.Parallel[1] != c {
		t.Errorf("expected parallel [b c], got %d tasks", len(tl.Parallel))
	}
}

func TestTimeline_ParallelSliceCapsAtTwo(t *testing.T) {
	m := NewManager()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		addNew(m, name)
	}

	tl := m.Timeline()

	if len(tl.Ready) != 5 {
		t.Fatalf("expected 5 ready tasks, got %d", len(tl.Ready))
	}
	if len(tl.Parallel) != 2 {
		t.Errorf("expected parallel slice capped at 2, got %d", len(tl.Parallel))
	}
}

func TestTimeline_TwoReadyTasks(t *testing.T) {
	m := NewManager()
	addNew(m, "a")
	b := addNew(m, "b")

	tl := m.Timeline()

	if len(tl.Parallel) != 1 || tl.Parallel[0] != b {
		t.Errorf("expected parallel [b], got %d tasks", len(tl.Parallel))
	}
}

func TestTimeline_CurrentTaskExcludedFromReady(t *testing.T) {
	m := NewManager()
	a := addNew(m, "a")
	m.StartTask(a)

	tl := m.Timeline()

	if tl.Current != a {
		t.Error("expected a as the current task")
	}
	for _, r := range tl.Ready {
		if r == a {
			t.Error("current task must not appear in the ready list")
		}
	}
}

func TestTimeline_CompletedTasksListed(t *testing.T) {
	m := NewManager()
	a := addNew(m, "a")
	addNew(m, "b")
	a.MarkCompleted()

	tl := m.Timeline()

	if len(tl.Completed) != 1 || tl.Completed[0] != a {
		t.Errorf("expected completed [a], got %d tasks", len(tl.Completed))
	}
}

func TestTimeline_RecomputedAfterMutation(t *testing.T) {
	m := NewManager()
	a := addNew(m, "a")
	b := addNew(m, "b")
	b.AddDependency(a.ID)

	before := m.Timeline()
	if len(before.Ready) != 1 {
		t.Fatalf("expected 1 ready task, got %d", len(before.Ready))
	}

	a.MarkCompleted()
	after := m.Timeline()
	if len(after.Ready) != 1 || after.Ready[0] != b {
		t.Errorf("expected the projection to reflect the completion, got %d ready", len(after.Ready))
	}
}
