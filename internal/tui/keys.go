package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// Navigation
	Entry     key.Binding
	Summary   key.Binding
	Employees key.Binding
	Settings  key.Binding

	// Actions
	Select    key.Binding
	New       key.Binding
	ResetPay  key.Binding
	ResetAll  key.Binding
	Confirm   key.Binding
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Entry:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "entry")),
	Summary:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "summary")),
	Employees: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "employees")),
	Settings:  key.NewBinding(key.WithKeys(","), key.WithHelp(",", "settings")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
	ResetPay:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset entries")),
	ResetAll:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "reset all")),
	Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
}
