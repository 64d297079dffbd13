package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/tempo/internal/nav"
	"github.com/pablasso/tempo/internal/tui/components"
	"github.com/pablasso/tempo/internal/tui/msgs"
	"github.com/pablasso/tempo/internal/tui/styles"
)

// MenuItem represents a menu option in the main menu.
type MenuItem struct {
	Label       string
	Shortcut    string
	Description string
	Screen      nav.Screen
}

// MenuSection represents a group of related menu items.
type MenuSection struct {
	Title string
	Items []MenuItem
}

// MenuModel is the model for the main menu landing screen.
type MenuModel struct {
	sections []MenuSection
	cursor   int
	width    int
	height   int
}

// NewMenuModel creates the main menu.
func NewMenuModel() MenuModel {
	return MenuModel{
		sections: []MenuSection{
			{
				Title: "Plan",
				Items: []MenuItem{
					{Label: "Todo List", Shortcut: "t", Description: "Add tasks and mark them done", Screen: nav.ScreenTodoList},
					{Label: "Dependencies", Shortcut: "d", Description: "Link tasks that wait on each other", Screen: nav.ScreenDependencies},
					{Label: "Timeline", Shortcut: "v", Description: "See what is workable right now", Screen: nav.ScreenTimelineView},
				},
			},
			{
				Title: "Assist",
				Items: []MenuItem{
					{Label: "Groom List", Shortcut: "g", Description: "Clean up a raw todo list", Screen: nav.ScreenTodoTimeline},
				},
			},
			{
				Title: "",
				Items: []MenuItem{
					{Label: "Quit", Shortcut: "q", Description: ""},
				},
			},
		},
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.totalMenuItems()-1 {
				m.cursor++
			}
		case "enter":
			return m.selectItem(m.itemAtCursor())
		default:
			for _, section := range m.sections {
				for _, item := range section.Items {
					if item.Shortcut == msg.String() {
						return m.selectItem(item)
					}
				}
			}
		}
	}
	return m, nil
}

func (m MenuModel) selectItem(item MenuItem) (MenuModel, tea.Cmd) {
	if item.Shortcut == "q" {
		return m, tea.Quit
	}
	if item.Screen == "" {
		return m, nil
	}
	screen := item.Screen
	return m, func() tea.Msg { return msgs.GoToScreenMsg{Screen: screen} }
}

func (m MenuModel) totalMenuItems() int {
	total := 0
	for _, section := range m.sections {
		total += len(section.Items)
	}
	return total
}

func (m MenuModel) itemAtCursor() MenuItem {
	i := 0
	for _, section := range m.sections {
		for _, item := range section.Items {
			if i == m.cursor {
				return item
			}
			i++
		}
	}
	return MenuItem{}
}

// Cursor returns the current cursor position.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// View implements tea.Model.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("tempo") + "\n\n")

	i := 0
	for _, section := range m.sections {
		if section.Title != "" {
			b.WriteString(styles.SubtleStyle.Render(section.Title) + "\n")
		}
		for _, item := range section.Items {
			line := "  " + item.Label + " [" + item.Shortcut + "]"
			if item.Description != "" {
				line += "  " + styles.SubtleStyle.Render(item.Description)
			}
			if i == m.cursor {
				line = styles.SelectedStyle.Render("> ") + strings.TrimPrefix(line, "  ")
			}
			b.WriteString(line + "\n")
			i++
		}
		b.WriteString("\n")
	}

	bar := components.NewStatusBar()
	b.WriteString(bar.Render(m.width, []string{"↑/↓ move", "enter select", "q quit"}))

	return b.String()
}
