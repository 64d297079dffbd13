package display

import (
	"strings"
	"testing"
	"time"

	"github.com/pablasso/tempo/internal/workflow"
)

func TestRender_EmptyWorkflow(t *testing.T) {
	w := workflow.New()

	out := Render(w.Timeline())

	if !strings.Contains(out, "(nothing in progress)") {
		t.Error("expected an empty current section")
	}
	if !strings.Contains(out, "(none)") {
		t.Error("expected an empty ready section")
	}
	if strings.Contains(out, "Blocked") || strings.Contains(out, "Done") {
		t.Error("empty sections should be omitted")
	}
}

func TestRender_FullTimeline(t *testing.T) {
	w := workflow.New()
	a := w.AddTask("Plan the week", "", 30)
	w.AddTask("Email accountant", "", 15)
	w.AddTask("Clean desk", "", 0)
	w.AddTask("Book flights", "", 45)
	blocked := w.AddTask("Pack bags", "", 0)
	w.SetDependency(blocked, a)
	done := w.AddTask("Pay rent", "", 0)
	w.Complete(done)
	w.Start(a)

	out := Render(w.Timeline())

	for _, want := range []string{
		"Now",
		"Plan the week (~30m)",
		"Also doable now",
		"Ready",
		"Blocked",
		"  - Pack bags",
		"Done",
		"  - Pay rent",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Clean desk (~") {
		t.Error("zero estimates must not be rendered")
	}
}

func TestRender_ElapsedTime(t *testing.T) {
	w := workflow.New()
	id := w.AddTask("Plan the week", "", 0)
	w.Start(id)

	out := Render(w.Timeline())
	if strings.Contains(out, "started") {
		t.Errorf("a task under a minute old should not show elapsed time:\n%s", out)
	}

	task, _ := w.Task(id)
	task.StartTime = time.Now().Add(-25 * time.Minute)

	out = Render(w.Timeline())
	if !strings.Contains(out, "started 25m ago") {
		t.Errorf("expected elapsed time for the current task:\n%s", out)
	}
}
