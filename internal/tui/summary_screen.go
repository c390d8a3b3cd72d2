package tui

import (
	"context"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SummaryModel shows payroll totals and offers a confirmed reset
type SummaryModel struct {
	app     *app.App
	summary *domain.Summary
	loading bool
	err     error

	// Non-empty while waiting for y/N on a reset
	pendingReset domain.ResetScope
	statusMsg    string
}

type summaryDataMsg struct {
	summary *domain.Summary
	err     error
}

type resetDoneMsg struct {
	scope domain.ResetScope
	err   error
}

// NewSummaryModel creates a new summary screen model
func NewSummaryModel(a *app.App) tea.Model {
	return &SummaryModel{
		app:     a,
		loading: true,
	}
}

// IsCapturingInput holds global keys back while a reset is awaiting confirmation
func (m *SummaryModel) IsCapturingInput() bool {
	return m.pendingReset != ""
}

func (m *SummaryModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *SummaryModel) loadData() tea.Cmd {
	return func() tea.Msg {
		s, err := m.app.SummaryService.Summary(context.Background())
		return summaryDataMsg{summary: s, err: err}
	}
}

func (m *SummaryModel) reset(scope domain.ResetScope) tea.Cmd {
	return func() tea.Msg {
		err := m.app.PayrollService.Reset(context.Background(), scope)
		return resetDoneMsg{scope: scope, err: err}
	}
}

func (m *SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case summaryDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.summary = msg.summary
		}
		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.scope == domain.ResetAll {
			m.statusMsg = "All data deleted"
		} else {
			m.statusMsg = "Ledger entries deleted"
		}
		m.loading = true
		return m, m.loadData()

	case tea.KeyMsg:
		if m.pendingReset != "" {
			scope := m.pendingReset
			m.pendingReset = ""
			if key.Matches(msg, DefaultKeyMap.Confirm) {
				return m, m.reset(scope)
			}
			m.statusMsg = "Reset cancelled"
			return m, nil
		}

		if m.loading {
			return m, nil
		}
		m.statusMsg = ""
		m.err = nil

		switch {
		case key.Matches(msg, DefaultKeyMap.ResetPay):
			m.pendingReset = domain.ResetLedger
		case key.Matches(msg, DefaultKeyMap.ResetAll):
			m.pendingReset = domain.ResetAll
		}
	}

	return m, nil
}

func (m *SummaryModel) View() string {
	if m.loading && m.summary == nil {
		return "Loading summary..."
	}

	s := titleStyle.Render("Payroll Summary") + "\n\n"

	if m.statusMsg != "" {
		s += statusStyle.Render("  "+m.statusMsg) + "\n\n"
	}
	if m.err != nil {
		s += errorStyle.Render("  Error: "+m.err.Error()) + "\n\n"
	}

	if m.summary != nil {
		s += renderTotals(m.summary, currencySymbol(m.app)) + "\n\n"
	}

	switch m.pendingReset {
	case domain.ResetLedger:
		s += warningStyle.Render("  Delete ALL ledger entries? Employees are kept. [y/N]")
	case domain.ResetAll:
		s += warningStyle.Render("  Delete ALL data, ledger entries and employees? [y/N]")
	default:
		s += helpStyle.Render("  x: reset entries  X: reset everything")
	}
	return s
}
