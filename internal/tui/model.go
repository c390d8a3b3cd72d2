package tui

import (
	"fmt"
	"strings"

	"github.com/andy/piecework/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenEntry Screen = iota
	ScreenSummary
	ScreenEmployees
	ScreenSettings
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenEntry:
		return "Pay Entry"
	case ScreenSummary:
		return "Summary"
	case ScreenEmployees:
		return "Employees"
	case ScreenSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	// Screen models (lazy initialized)
	entry     tea.Model
	summary   tea.Model
	employees tea.Model
	settings  tea.Model

	err error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenEntry,
		entry:         NewEntryModel(a),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.entry != nil {
		return m.entry.Init()
	}
	return nil
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	slot := m.screenSlot(screen)
	if slot == nil {
		return nil
	}
	if *slot == nil {
		switch screen {
		case ScreenEntry:
			*slot = NewEntryModel(m.app)
		case ScreenSummary:
			*slot = NewSummaryModel(m.app)
		case ScreenEmployees:
			*slot = NewEmployeesModel(m.app)
		case ScreenSettings:
			*slot = NewSettingsModel(m.app)
		}
		return (*slot).Init()
	}
	return func() tea.Msg { return RefreshDataMsg{} }
}

func (m *Model) screenSlot(screen Screen) *tea.Model {
	switch screen {
	case ScreenEntry:
		return &m.entry
	case ScreenSummary:
		return &m.summary
	case ScreenEmployees:
		return &m.employees
	case ScreenSettings:
		return &m.settings
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global navigation keys (E, S, W, Q) are suppressed.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	slot := m.screenSlot(m.currentScreen)
	if slot == nil {
		return false
	}
	if ic, ok := (*slot).(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

func (m Model) switchTo(screen Screen) (tea.Model, tea.Cmd) {
	m.currentScreen = screen
	m.err = nil
	cmd := m.initScreen(screen)
	return m, cmd
}

// Update implements tea.Model - routes keys to screens
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		// Skip global navigation when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				return m, tea.Quit
			case key.Matches(msg, DefaultKeyMap.Entry):
				return m.switchTo(ScreenEntry)
			case key.Matches(msg, DefaultKeyMap.Summary):
				return m.switchTo(ScreenSummary)
			case key.Matches(msg, DefaultKeyMap.Employees):
				return m.switchTo(ScreenEmployees)
			case key.Matches(msg, DefaultKeyMap.Settings):
				return m.switchTo(ScreenSettings)
			}
		}

	case SwitchScreenMsg:
		return m.switchTo(msg.Screen)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	if slot := m.screenSlot(m.currentScreen); slot != nil && *slot != nil {
		*slot, cmd = (*slot).Update(msg)
	}
	return m, cmd
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("piecework - %s", m.currentScreen.String()))
	footer := footerStyle.Render("[E]ntry  [S]ummary  [W] Employees  [,] Settings  [Q]uit")

	content := "Loading..."
	if slot := m.screenSlot(m.currentScreen); slot != nil && *slot != nil {
		content = (*slot).View()
	}

	errorDisplay := ""
	if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
