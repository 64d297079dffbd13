package tui

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/groom"
	"github.com/pablasso/tempo/internal/nav"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/views"
	"github.com/pablasso/tempo/internal/workflow"
)

// Model is the main Bubble Tea model that owns the workflow and routes
// between views based on the navigator.
type Model struct {
	workflow  *workflow.Workflow
	navigator *nav.Navigator
	width     int
	height    int

	menu     views.MenuModel
	tasks    views.TaskListModel
	deps     views.DependenciesModel
	timeline views.TimelineModel
	groom    views.GroomModel
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(
		NewModel(),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel builds the root model with a fresh workflow. The grooming service
// is configured from the environment; a config error just means local-only
// grooming.
func NewModel() Model {
	wf := workflow.New()

	cfg, err := groom.LoadConfig()
	if err != nil {
		cfg = groom.Config{FallbackEnabled: true}
	}
	// The TUI owns the terminal, so service logs are discarded.
	service := groom.NewService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return Model{
		workflow:  wf,
		navigator: nav.New(),
		menu:      views.NewMenuModel(),
		tasks:     views.NewTaskListModel(wf),
		deps:      views.NewDependenciesModel(wf),
		timeline:  views.NewTimelineModel(wf),
		groom:     views.NewGroomModel(wf, service),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every view tracks its own size.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		cmds = append(cmds, cmd)
		m.tasks, cmd = m.tasks.Update(msg)
		cmds = append(cmds, cmd)
		m.deps, cmd = m.deps.Update(msg)
		cmds = append(cmds, cmd)
		m.timeline, cmd = m.timeline.Update(msg)
		cmds = append(cmds, cmd)
		m.groom, cmd = m.groom.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case msgs.GoToScreenMsg:
		m.navigator.NavigateTo(msg.Screen)
		return m, nil

	case msgs.GoBackMsg:
		m.navigator.GoBack()
		return m, nil

	case msgs.TaskAddedMsg, msgs.TasksImportedMsg:
		return m, nil
	}

	return m.routeToActive(msg)
}

// routeToActive forwards a message to the view for the active screen.
func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.navigator.Current() {
	case nav.ScreenTodoList:
		m.tasks, cmd = m.tasks.Update(msg)
	case nav.ScreenDependencies:
		m.deps, cmd = m.deps.Update(msg)
	case nav.ScreenTimelineView:
		m.timeline, cmd = m.timeline.Update(msg)
	case nav.ScreenTodoTimeline:
		m.groom, cmd = m.groom.Update(msg)
	default:
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.navigator.Current() {
	case nav.ScreenTodoList:
		return m.tasks.View()
	case nav.ScreenDependencies:
		return m.deps.View()
	case nav.ScreenTimelineView:
		return m.timeline.View()
	case nav.ScreenTodoTimeline:
		return m.groom.View()
	default:
		return m.menu.View()
	}
}
