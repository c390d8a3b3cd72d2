package tui

import (
	"context"
	"fmt"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// EmployeesModel lists employees and drills into one employee's ledger
type EmployeesModel struct {
	app       *app.App
	employees []*domain.Employee
	cursor    int
	loading   bool
	err       error

	// History view; nil while showing the list
	selected *domain.Employee
	entries  []*domain.LedgerEntry
}

type employeesDataMsg struct {
	employees []*domain.Employee
	err       error
}

type historyDataMsg struct {
	employee *domain.Employee
	entries  []*domain.LedgerEntry
	err      error
}

// NewEmployeesModel creates a new employees screen model
func NewEmployeesModel(a *app.App) tea.Model {
	return &EmployeesModel{
		app:     a,
		loading: true,
	}
}

func (m *EmployeesModel) Init() tea.Cmd {
	return m.loadEmployees()
}

func (m *EmployeesModel) loadEmployees() tea.Cmd {
	return func() tea.Msg {
		employees, err := m.app.PayrollService.Employees(context.Background())
		return employeesDataMsg{employees: employees, err: err}
	}
}

func (m *EmployeesModel) loadHistory(id int64) tea.Cmd {
	return func() tea.Msg {
		employee, entries, err := m.app.PayrollService.History(context.Background(), id)
		return historyDataMsg{employee: employee, entries: entries, err: err}
	}
}

func (m *EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		m.selected = nil
		m.entries = nil
		return m, m.loadEmployees()

	case employeesDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.employees = msg.employees
			if m.cursor >= len(m.employees) {
				m.cursor = max(0, len(m.employees)-1)
			}
		}
		return m, nil

	case historyDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.selected = msg.employee
			m.entries = msg.entries
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		m.err = nil

		if m.selected != nil {
			if key.Matches(msg, DefaultKeyMap.Back) {
				m.selected = nil
				m.entries = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, DefaultKeyMap.Down):
			if m.cursor < len(m.employees)-1 {
				m.cursor++
			}
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.employees) > 0 && m.cursor < len(m.employees) {
				m.loading = true
				return m, m.loadHistory(m.employees[m.cursor].ID)
			}
		}
	}

	return m, nil
}

func (m *EmployeesModel) View() string {
	if m.loading {
		return "Loading employees..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.selected != nil {
		return m.viewHistory()
	}
	return m.viewList()
}

func (m *EmployeesModel) viewList() string {
	s := titleStyle.Render("Employees") + "\n\n"

	if len(m.employees) == 0 {
		s += subtitleStyle.Render("  No employees yet. Record a pay entry to add one.") + "\n"
		return s
	}

	for i, e := range m.employees {
		line := fmt.Sprintf("%-10d %-30s %s", e.ID, truncateStr(e.FullName(), 30), e.StartDate.Local().Format("2006-01-02"))
		if i == m.cursor {
			s += "> " + selectedStyle.Render(line) + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}

	s += "\n" + helpStyle.Render("  j/k: navigate  enter: ledger history")
	return s
}

func (m *EmployeesModel) viewHistory() string {
	e := m.selected
	symbol := currencySymbol(m.app)

	s := titleStyle.Render(fmt.Sprintf("%s (ID: %d)", e.FullName(), e.ID)) + "\n"
	s += subtitleStyle.Render("  Started "+e.StartDate.Local().Format("2006-01-02")) + "\n\n"

	if len(m.entries) == 0 {
		s += subtitleStyle.Render("  No ledger entries.") + "\n"
	}

	var units int64
	pay := decimal.Zero
	for _, entry := range m.entries {
		s += fmt.Sprintf("  %-17s %10s %14s\n",
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			formatCount(int64(entry.UnitsSent)),
			formatMoney(symbol, entry.Pay),
		)
		units += int64(entry.UnitsSent)
		pay = pay.Add(entry.Pay)
	}
	if len(m.entries) > 0 {
		s += fmt.Sprintf("\n  %-17s %10s %14s\n", "Total", formatCount(units), valueStyle.Render(formatMoney(symbol, pay)))
	}

	s += "\n" + helpStyle.Render("  esc: back to list")
	return s
}
