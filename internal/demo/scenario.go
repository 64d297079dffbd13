// Package demo seeds a workflow with a small sample dependency graph so the
// timeline can be shown without entering any data.
package demo

import (
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/workflow"
)

// Seed populates w with a weekend-trip scenario: a diamond of preparations
// around booking, one finished chore and one task already in progress. It
// returns the ID of the started task.
func Seed(w *workflow.Workflow) task.ID {
	book := w.AddTask("Book the cabin", "pick dates with everyone first", 30)
	food := w.AddTask("Plan meals", "", 20)
	gear := w.AddTask("Check hiking gear", "borrow a tent if ours leaks", 45)
	pack := w.AddTask("Pack the car", "", 25)
	w.SetDependency(food, book)
	w.SetDependency(gear, book)
	w.SetDependency(pack, food)
	w.SetDependency(pack, gear)

	laundry := w.AddTask("Do laundry", "", 60)
	w.AddTask("Top up the first aid kit", "", 15)
	w.AddTask("Download offline maps", "", 10)

	w.Complete(laundry)
	w.Start(book)
	return book
}
