package tui

import (
	"fmt"
	"strings"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/domain"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zapcore"
)

type settingsMode int

const (
	settingsModeView settingsMode = iota
	settingsModeEdit
)

// settings form field indices
const (
	settingsFieldCurrency = iota
	settingsFieldLogLevel
	settingsFieldCount
)

type settingsSavedMsg struct {
	err error
}

// SettingsModel shows the rate table and edits display and logging settings
type SettingsModel struct {
	app        *app.App
	mode       settingsMode
	fields     []textinput.Model
	fieldFocus int
	err        error
	statusMsg  string
}

// NewSettingsModel creates a new settings screen
func NewSettingsModel(a *app.App) tea.Model {
	return &SettingsModel{
		app:  a,
		mode: settingsModeView,
	}
}

// IsCapturingInput returns true when the edit form is active
func (m *SettingsModel) IsCapturingInput() bool {
	return m.mode == settingsModeEdit
}

func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

func (m *SettingsModel) initForm() {
	m.fields = make([]textinput.Model, settingsFieldCount)
	cfg := m.app.Config

	m.fields[settingsFieldCurrency] = textinput.New()
	m.fields[settingsFieldCurrency].Placeholder = "$"
	m.fields[settingsFieldCurrency].CharLimit = 5
	m.fields[settingsFieldCurrency].Width = 10
	m.fields[settingsFieldCurrency].SetValue(cfg.Payroll.CurrencySymbol)

	m.fields[settingsFieldLogLevel] = textinput.New()
	m.fields[settingsFieldLogLevel].Placeholder = "info"
	m.fields[settingsFieldLogLevel].CharLimit = 10
	m.fields[settingsFieldLogLevel].Width = 10
	m.fields[settingsFieldLogLevel].SetValue(cfg.Log.Level)

	m.fieldFocus = settingsFieldCurrency
	m.fields[settingsFieldCurrency].Focus()
}

func (m *SettingsModel) saveSettings() tea.Cmd {
	return func() tea.Msg {
		symbol := strings.TrimSpace(m.fields[settingsFieldCurrency].Value())
		level := strings.ToLower(strings.TrimSpace(m.fields[settingsFieldLogLevel].Value()))

		if symbol == "" {
			return settingsSavedMsg{err: fmt.Errorf("currency symbol is required")}
		}
		if _, err := zapcore.ParseLevel(level); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("log level must be one of debug, info, warn, error")}
		}

		m.app.Config.Payroll.CurrencySymbol = symbol
		m.app.Config.Log.Level = level

		if err := m.app.SaveConfig(); err != nil {
			return settingsSavedMsg{err: fmt.Errorf("failed to save config: %w", err)}
		}

		return settingsSavedMsg{err: m.app.SetLogLevel(level)}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == settingsModeEdit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.err = nil
		switch {
		case msg.String() == "enter":
			m.mode = settingsModeEdit
			m.statusMsg = ""
			m.initForm()
			return m, m.fields[m.fieldFocus].Focus()
		}
	}

	return m, nil
}

func (m *SettingsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.mode = settingsModeView
		m.statusMsg = "Settings saved"
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.mode = settingsModeView
			m.err = nil
			return m, nil

		case "tab", "down":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "shift+tab", "up":
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case "enter":
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.saveSettings()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case "ctrl+s":
			return m, m.saveSettings()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	if m.mode == settingsModeEdit {
		return m.viewForm()
	}
	return m.viewSettings()
}

func (m *SettingsModel) viewSettings() string {
	var s string
	s += titleStyle.Render("Settings") + "\n\n"

	if m.statusMsg != "" {
		s += statusStyle.Render("  "+m.statusMsg) + "\n\n"
	}

	cfg := m.app.Config

	s += subtitleStyle.Render("  Payroll") + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Currency Symbol:"), valueStyle.Render(cfg.Payroll.CurrencySymbol))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Log Level:"), valueStyle.Render(cfg.Log.Level))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Database:"), subtitleStyle.Render(cfg.Database.Path))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Log File:"), subtitleStyle.Render(cfg.Log.Path))

	s += "\n" + subtitleStyle.Render("  Pay Rates") + "\n\n"
	for _, t := range domain.Tiers() {
		span := fmt.Sprintf("%s+", formatCount(int64(t.Min)))
		if t.Max > 0 {
			span = fmt.Sprintf("%s - %s", formatCount(int64(t.Min)), formatCount(int64(t.Max-1)))
		}
		s += fmt.Sprintf("  %s %s per message\n", labelStyle.Render(span), valueStyle.Render(t.Rate.String()))
	}

	s += "\n" + helpStyle.Render("  enter: edit settings")

	return s
}

func (m *SettingsModel) viewForm() string {
	var s string
	s += titleStyle.Render("Edit Settings") + "\n\n"

	labels := []string{"Currency Symbol:", "Log Level (debug/info/warn/error):"}
	for i, label := range labels {
		indicator := "  "
		if i == m.fieldFocus {
			indicator = "> "
		}
		style := subtitleStyle
		if i == m.fieldFocus {
			style = focusStyle
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, style.Render(label), m.fields[i].View())
	}

	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
