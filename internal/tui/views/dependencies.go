package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
	"github.com/pablasso/tempo/internal/workflow"
)

// depPhase tracks which side of the edge is being picked.
type depPhase int

const (
	phasePickTask depPhase = iota
	phasePickPrerequisite
)

// DependenciesModel is the model for the dependency editor: pick a task,
// then pick the task it should wait for.
type DependenciesModel struct {
	workflow *workflow.Workflow
	phase    depPhase
	cursor   int
	chosen   task.ID // task being edited, valid in phasePickPrerequisite
	width    int
	height   int
}

// NewDependenciesModel creates a dependency editor over the given workflow.
func NewDependenciesModel(w *workflow.Workflow) DependenciesModel {
	return DependenciesModel{workflow: w}
}

// Init implements tea.Model.
func (m DependenciesModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DependenciesModel) Update(msg tea.Msg) (DependenciesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		tasks := m.workflow.Tasks()
		switch msg.String() {
		case "esc":
			if m.phase == phasePickPrerequisite {
				m.phase = phasePickTask
				m.cursor = 0
				return m, nil
			}
			return m, func() tea.Msg { return msgs.GoBackMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(tasks)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor >= len(tasks) {
				return m, nil
			}
			picked := tasks[m.cursor]
			if m.phase == phasePickTask {
				m.chosen = picked.ID
				m.phase = phasePickPrerequisite
				m.cursor = 0
				return m, nil
			}
			m.workflow.SetDependency(m.chosen, picked.ID)
			m.phase = phasePickTask
			m.cursor = 0
		case "r":
			if m.phase == phasePickPrerequisite && m.cursor < len(tasks) {
				m.workflow.RemoveDependency(m.chosen, tasks[m.cursor].ID)
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DependenciesModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Dependencies") + "\n")

	tasks := m.workflow.Tasks()
	if len(tasks) == 0 {
		b.WriteString(styles.SubtleStyle.Render("No tasks to link. Add some in the todo list first.") + "\n")
	}

	if m.phase == phasePickTask {
		b.WriteString(styles.SubtleStyle.Render("Pick the task that has to wait:") + "\n")
	} else {
		chosen, _ := m.workflow.Task(m.chosen)
		title := ""
		if chosen != nil {
			title = chosen.Title
		}
		b.WriteString(fmt.Sprintf("%q waits for:\n", title))
	}

	for i, t := range tasks {
		line := t.Title
		if deps := t.Dependencies(); len(deps) > 0 {
			line += styles.SubtleStyle.Render(fmt.Sprintf(" (waits for %s)", m.depTitles(deps)))
		}
		if m.phase == phasePickPrerequisite && t.ID == m.chosen {
			line += styles.SubtleStyle.Render(" (editing)")
		}
		if i == m.cursor {
			line = styles.SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	bar := components.NewStatusBar()
	items := []string{"enter pick", "esc back"}
	if m.phase == phasePickPrerequisite {
		items = []string{"enter link", "r unlink", "esc cancel"}
	}
	b.WriteString("\n" + bar.Render(m.width, items))

	return b.String()
}

func (m DependenciesModel) depTitles(deps []task.ID) string {
	var titles []string
	for _, id := range deps {
		if t, ok := m.workflow.Task(id); ok {
			titles = append(titles, t.Title)
		}
	}
	return strings.Join(titles, ", ")
}
