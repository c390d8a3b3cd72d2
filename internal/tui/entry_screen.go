package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type entryMode int

const (
	entryModeForm entryMode = iota
	entryModeView
)

// entry form field indices
const (
	entryFieldID = iota
	entryFieldName
	entryFieldUnits
	entryFieldCount
)

var entryFieldKeys = [entryFieldCount]domain.Field{domain.FieldID, domain.FieldName, domain.FieldUnits}

// EntryModel is the pay entry form with the last receipt and running totals
type EntryModel struct {
	app        *app.App
	mode       entryMode
	fields     []textinput.Model
	fieldFocus int
	submitting bool

	fieldErrors map[domain.Field]domain.ValidationErrors
	err         error

	lastWorker *domain.Worker
	lastEntry  *domain.LedgerEntry
	summary    *domain.Summary
}

type entryTotalsMsg struct {
	summary *domain.Summary
	err     error
}

type entrySubmittedMsg struct {
	worker  *domain.Worker
	entry   *domain.LedgerEntry
	summary *domain.Summary
	err     error
}

// NewEntryModel creates the pay entry screen with the form focused
func NewEntryModel(a *app.App) tea.Model {
	m := &EntryModel{
		app:         a,
		fieldErrors: make(map[domain.Field]domain.ValidationErrors),
	}
	m.initForm()
	return m
}

// IsCapturingInput returns true while the form has focus
func (m *EntryModel) IsCapturingInput() bool {
	return m.mode == entryModeForm
}

func (m *EntryModel) Init() tea.Cmd {
	return tea.Batch(m.loadTotals(), textinput.Blink)
}

func (m *EntryModel) loadTotals() tea.Cmd {
	return func() tea.Msg {
		s, err := m.app.SummaryService.Summary(context.Background())
		return entryTotalsMsg{summary: s, err: err}
	}
}

func (m *EntryModel) initForm() {
	m.fields = make([]textinput.Model, entryFieldCount)

	m.fields[entryFieldID] = textinput.New()
	m.fields[entryFieldID].Placeholder = "Employee ID"
	m.fields[entryFieldID].CharLimit = 19
	m.fields[entryFieldID].Width = 20

	m.fields[entryFieldName] = textinput.New()
	m.fields[entryFieldName].Placeholder = "First Last"
	m.fields[entryFieldName].CharLimit = 100
	m.fields[entryFieldName].Width = 40

	m.fields[entryFieldUnits] = textinput.New()
	m.fields[entryFieldUnits].Placeholder = fmt.Sprintf("%d-%d", domain.MinUnits, domain.MaxUnits)
	m.fields[entryFieldUnits].CharLimit = 10
	m.fields[entryFieldUnits].Width = 15

	m.mode = entryModeForm
	m.fieldErrors = make(map[domain.Field]domain.ValidationErrors)
	m.err = nil
	m.fieldFocus = entryFieldID
	m.fields[entryFieldID].Focus()
}

func (m *EntryModel) submit() tea.Cmd {
	idText := m.fields[entryFieldID].Value()
	nameText := m.fields[entryFieldName].Value()
	unitsText := m.fields[entryFieldUnits].Value()
	m.submitting = true

	return func() tea.Msg {
		ctx := context.Background()

		worker, entry, err := m.app.PayrollService.Submit(ctx, idText, nameText, unitsText)
		if err != nil {
			return entrySubmittedMsg{err: err}
		}

		// Totals are best effort; the entry is already committed
		s, _ := m.app.SummaryService.Summary(ctx)
		return entrySubmittedMsg{worker: worker, entry: entry, summary: s}
	}
}

func (m *EntryModel) focus(i int) tea.Cmd {
	m.fields[m.fieldFocus].Blur()
	m.fieldFocus = i
	return m.fields[m.fieldFocus].Focus()
}

func (m *EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		return m, m.loadTotals()

	case entryTotalsMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.summary = msg.summary
		return m, nil

	case entrySubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, m.showErrors(msg.err)
		}
		m.lastWorker = msg.worker
		m.lastEntry = msg.entry
		if msg.summary != nil {
			m.summary = msg.summary
		}
		m.initForm()
		m.fields[m.fieldFocus].Blur()
		m.mode = entryModeView
		return m, nil
	}

	if m.mode == entryModeView {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, DefaultKeyMap.New) || key.Matches(msg, DefaultKeyMap.Select) {
				m.initForm()
				return m, m.fields[m.fieldFocus].Focus()
			}
		}
		return m, nil
	}

	return m.updateForm(msg)
}

// showErrors attaches validation errors to their fields and focuses the first one
func (m *EntryModel) showErrors(err error) tea.Cmd {
	m.fieldErrors = make(map[domain.Field]domain.ValidationErrors)
	m.err = nil

	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		m.err = err
		return nil
	}

	first := -1
	for i, f := range entryFieldKeys {
		if fe := verrs.ForField(f); len(fe) > 0 {
			m.fieldErrors[f] = fe
			if first < 0 {
				first = i
			}
		}
	}
	if first < 0 {
		return nil
	}
	return m.focus(first)
}

func (m *EntryModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.submitting {
			return m, nil
		}

		switch {
		case msg.String() == "esc":
			m.fields[m.fieldFocus].Blur()
			m.mode = entryModeView
			return m, nil

		case key.Matches(msg, DefaultKeyMap.NextField):
			return m, m.focus((m.fieldFocus + 1) % entryFieldCount)

		case key.Matches(msg, DefaultKeyMap.PrevField):
			return m, m.focus((m.fieldFocus - 1 + entryFieldCount) % entryFieldCount)

		case msg.String() == "enter":
			if m.fieldFocus == entryFieldCount-1 {
				return m, m.submit()
			}
			return m, m.focus(m.fieldFocus + 1)

		case key.Matches(msg, DefaultKeyMap.Submit):
			return m, m.submit()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *EntryModel) View() string {
	var s string
	if m.mode == entryModeForm {
		s = m.viewForm()
	} else {
		s = m.viewReceipt()
	}
	return s + "\n" + m.viewTotals()
}

func (m *EntryModel) viewForm() string {
	s := titleStyle.Render("New Pay Entry") + "\n\n"

	labels := []string{"Employee ID:", "Name (First Last):", "Messages sent:"}
	for i, label := range labels {
		indicator := "  "
		style := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			style = focusStyle
		}
		s += fmt.Sprintf("%s%s\n  %s\n", indicator, style.Render(label), m.fields[i].View())
		for _, e := range m.fieldErrors[entryFieldKeys[i]] {
			s += errorStyle.Render("  ✗ "+e.Message) + "\n"
		}
		s += "\n"
	}

	if m.fields[entryFieldUnits].Value() != "" {
		if rate, pay, err := domain.Quote(m.fields[entryFieldUnits].Value()); err == nil {
			s += subtitleStyle.Render(fmt.Sprintf("  Rate %s per message, pay %s",
				rate, formatMoney(currencySymbol(m.app), pay))) + "\n\n"
		}
	}

	if m.submitting {
		s += subtitleStyle.Render("  Saving...") + "\n\n"
	}
	if m.err != nil {
		s += errorStyle.Render(fmt.Sprintf("  Error: %v", m.err)) + "\n\n"
	}

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: submit  enter: next/submit  esc: leave form")
	return s
}

func (m *EntryModel) viewReceipt() string {
	s := titleStyle.Render("Pay Entry") + "\n\n"

	if m.lastWorker == nil {
		s += subtitleStyle.Render("  No entry recorded this session.") + "\n\n"
		s += helpStyle.Render("  n/enter: new entry")
		return s
	}

	w := m.lastWorker
	symbol := currencySymbol(m.app)
	s += statusStyle.Render(fmt.Sprintf("  ✓ Recorded %s (ID: %d)", w.FullName(), w.ID)) + "\n\n"
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Messages:"), valueStyle.Render(formatCount(int64(w.UnitsSent))))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Rate:"), valueStyle.Render(w.Rate.String()))
	s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Pay:"), valueStyle.Render(formatMoney(symbol, w.Pay)))
	if m.lastEntry != nil {
		s += fmt.Sprintf("  %s %s\n", labelStyle.Render("Reference:"), subtitleStyle.Render(m.lastEntry.Reference.String()))
	}

	s += "\n" + helpStyle.Render("  n/enter: new entry")
	return s
}

func (m *EntryModel) viewTotals() string {
	if m.summary == nil {
		return subtitleStyle.Render("  Loading totals...")
	}
	return renderTotals(m.summary, currencySymbol(m.app))
}
