package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/groom"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
	"github.com/pablasso/tempo/internal/workflow"
)

// groomPhase tracks the grooming view state.
type groomPhase int

const (
	groomPhaseInput groomPhase = iota
	groomPhaseRunning
	groomPhaseResult
)

// Groomer is the part of the grooming service the view needs. Narrowed for
// testability.
type Groomer interface {
	Groom(ctx context.Context, list string) (*groom.Result, error)
}

// GroomModel is the model for the grooming view: paste a raw list, run the
// groomer, review the result, optionally import it as tasks.
type GroomModel struct {
	workflow *workflow.Workflow
	service  Groomer
	phase    groomPhase
	input    textarea.Model
	spinner  spinner.Model
	result   *groom.Result
	errMsg   string
	imported int
	width    int
	height   int
}

// NewGroomModel creates a grooming view over the given workflow and service.
func NewGroomModel(w *workflow.Workflow, service Groomer) GroomModel {
	ta := textarea.New()
	ta.Placeholder = "Paste your raw todo list here..."
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return GroomModel{
		workflow: w,
		service:  service,
		input:    ta,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m GroomModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m GroomModel) Update(msg tea.Msg) (GroomModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.GroomDoneMsg:
		m.phase = groomPhaseResult
		m.result = msg.Result
		m.errMsg = ""
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if m.phase == groomPhaseRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case groomPhaseInput:
			return m.updateInput(msg)
		case groomPhaseResult:
			return m.updateResult(msg)
		}
		// Running: keys are ignored until the service answers.
		return m, nil
	}
	return m, nil
}

func (m GroomModel) updateInput(msg tea.KeyMsg) (GroomModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return msgs.GoBackMsg{} }
	case "ctrl+s":
		list := m.input.Value()
		if strings.TrimSpace(list) == "" {
			return m, nil
		}
		m.phase = groomPhaseRunning
		service := m.service
		groomCmd := func() tea.Msg {
			res, err := service.Groom(context.Background(), list)
			return msgs.GroomDoneMsg{Result: res, Err: err}
		}
		return m, tea.Batch(m.spinner.Tick, groomCmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GroomModel) updateResult(msg tea.KeyMsg) (GroomModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.phase = groomPhaseInput
		m.result = nil
		m.errMsg = ""
		m.imported = 0
		return m, nil
	case "i":
		if m.result == nil || m.imported > 0 {
			return m, nil
		}
		for _, t := range m.result.Tasks {
			m.workflow.AddTask(t.Title, t.Notes, t.EstimatedMinutes())
			m.imported++
		}
		count := m.imported
		return m, func() tea.Msg { return msgs.TasksImportedMsg{Count: count} }
	}
	return m, nil
}

// View implements tea.Model.
func (m GroomModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Groom List") + "\n")
	bar := components.NewStatusBar()

	switch m.phase {
	case groomPhaseInput:
		b.WriteString(m.input.View() + "\n")
		b.WriteString(bar.Render(m.width, []string{"ctrl+s groom", "esc back"}))

	case groomPhaseRunning:
		b.WriteString(m.spinner.View() + " Grooming your list...\n")

	case groomPhaseResult:
		if m.errMsg != "" {
			b.WriteString(styles.ErrorStyle.Render("Grooming failed: "+m.errMsg) + "\n")
			b.WriteString(bar.Render(m.width, []string{"esc try again"}))
			break
		}
		b.WriteString(m.result.FormattedTasks() + "\n")
		if m.result.ProcessingNotes != "" {
			b.WriteString("\n" + styles.SubtleStyle.Render(m.result.ProcessingNotes) + "\n")
		}
		for _, s := range m.result.Suggestions {
			b.WriteString(styles.SubtleStyle.Render("tip: "+s) + "\n")
		}
		if m.imported > 0 {
			b.WriteString("\n" + styles.SuccessStyle.Render("Imported into the todo list.") + "\n")
		}
		b.WriteString("\n" + bar.Render(m.width, []string{"i import as tasks", "esc edit again"}))
	}

	return b.String()
}
