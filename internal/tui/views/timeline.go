package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tempo/internal/task"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
	"github.com/pablasso/tempo/internal/util"
	"github.com/pablasso/tempo/internal/workflow"
)

// TimelineModel is the model for the timeline view. It has no state of its
// own beyond layout: the projection is recomputed from the workflow on every
// render.
type TimelineModel struct {
	workflow *workflow.Workflow
	width    int
	height   int
}

// NewTimelineModel creates a timeline view over the given workflow.
func NewTimelineModel(w *workflow.Workflow) TimelineModel {
	return TimelineModel{workflow: w}
}

// Init implements tea.Model.
func (m TimelineModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TimelineModel) Update(msg tea.Msg) (TimelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return msgs.GoBackMsg{} }
		case "c":
			m.workflow.CompleteCurrent()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m TimelineModel) View() string {
	tl := m.workflow.Timeline()
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Timeline") + "\n")

	current := "(nothing in progress)"
	if tl.Current != nil {
		current = styles.CurrentStyle.Render(taskLine(tl.Current))
	}
	b.WriteString(styles.BoxStyle.Render("Now\n"+current) + "\n")

	if len(tl.Parallel) > 0 {
		b.WriteString(styles.BoxStyle.Render("Also doable now\n"+taskLines(tl.Parallel, styles.ReadyStyle)) + "\n")
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Ready") + "\n")
	if len(tl.Ready) == 0 {
		b.WriteString(styles.SubtleStyle.Render("  (none)") + "\n")
	} else {
		b.WriteString(taskLines(tl.Ready, styles.ReadyStyle) + "\n")
	}

	if len(tl.Blocked) > 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Blocked") + "\n")
		b.WriteString(taskLines(tl.Blocked, styles.BlockedStyle) + "\n")
	}

	if len(tl.Completed) > 0 {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Done") + "\n")
		b.WriteString(taskLines(tl.Completed, styles.DoneStyle) + "\n")
	}

	total := len(m.workflow.Tasks())
	if total > 0 {
		progress := components.NewProgress(len(tl.Completed), total, 20)
		b.WriteString("\n" + progress.View() + "\n")
	}

	bar := components.NewStatusBar()
	b.WriteString("\n" + bar.Render(m.width, []string{"c complete current", "esc back"}))

	return b.String()
}

func taskLine(t *task.Task) string {
	line := t.Title
	if est := util.FormatMinutes(t.EstimatedMinutes); est != "" {
		line += " ~" + est
	}
	return line
}

func taskLines(tasks []*task.Task, style lipgloss.Style) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, style.Render("  - "+taskLine(t)))
	}
	return strings.Join(lines, "\n")
}
