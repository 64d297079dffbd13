package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
	"github.com/pablasso/tempo/internal/util"
	"github.com/pablasso/tempo/internal/workflow"
)

// TaskListModel is the model for the todo list view: add tasks, start them,
// mark them done.
type TaskListModel struct {
	workflow *workflow.Workflow
	input    textinput.Model
	adding   bool
	cursor   int
	width    int
	height   int
}

// NewTaskListModel creates a task list view over the given workflow.
func NewTaskListModel(w *workflow.Workflow) TaskListModel {
	ti := textinput.New()
	ti.Placeholder = "Task title, optionally with an estimate: \"Write report ~45\""
	ti.CharLimit = 200
	return TaskListModel{
		workflow: w,
		input:    ti,
	}
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m TaskListModel) updateAdding(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case "enter":
		title, minutes := parseTaskInput(m.input.Value())
		m.adding = false
		m.input.Blur()
		m.input.SetValue("")
		if title == "" {
			return m, nil
		}
		m.workflow.AddTask(title, "", minutes)
		return m, func() tea.Msg { return msgs.TaskAddedMsg{Title: title} }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TaskListModel) updateBrowsing(msg tea.KeyMsg) (TaskListModel, tea.Cmd) {
	tasks := m.workflow.Tasks()
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoBackMsg{} }
	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "s":
		if t := m.selected(tasks); t != nil {
			m.workflow.Start(t.ID)
		}
	case "enter", " ":
		if t := m.selected(tasks); t != nil {
			m.workflow.Complete(t.ID)
		}
	case "x":
		if t := m.selected(tasks); t != nil {
			m.workflow.Remove(t.ID)
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m TaskListModel) selected(tasks []*task.Task) *task.Task {
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

// parseTaskInput splits "title ~minutes" into its parts. The estimate suffix
// is optional; a malformed suffix is kept as part of the title.
func parseTaskInput(s string) (title string, minutes int) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, "~")
	if idx == -1 {
		return s, 0
	}
	est, err := strconv.Atoi(strings.TrimSpace(s[idx+1:]))
	if err != nil || est < 0 {
		return s, 0
	}
	return strings.TrimSpace(s[:idx]), est
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Todo List") + "\n")

	tasks := m.workflow.Tasks()
	current := m.workflow.CurrentTask()
	if len(tasks) == 0 && !m.adding {
		b.WriteString(styles.SubtleStyle.Render("No tasks yet. Press a to add one.") + "\n")
	}

	for i, t := range tasks {
		marker := "[ ]"
		style := styles.ReadyStyle
		switch {
		case t.Completed:
			marker = "[x]"
			style = styles.DoneStyle
		case t == current:
			marker = "[>]"
			style = styles.CurrentStyle
		case !m.workflow.CanStart(t.ID):
			marker = "[~]"
			style = styles.BlockedStyle
		}

		line := fmt.Sprintf("%s %s", marker, t.Title)
		if est := util.FormatMinutes(t.EstimatedMinutes); est != "" {
			line += styles.SubtleStyle.Render(" ~" + est)
		}
		if i == m.cursor && !m.adding {
			line = styles.SelectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line) + "\n")
	}

	done := len(m.workflow.CompletedTasks())
	if len(tasks) > 0 {
		progress := components.NewProgress(done, len(tasks), 20)
		b.WriteString("\n" + progress.View() + "\n")
	}

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	bar := components.NewStatusBar()
	b.WriteString("\n" + bar.Render(m.width, []string{
		"a add", "s start", "enter done", "x remove", "esc back",
	}))

	return b.String()
}
