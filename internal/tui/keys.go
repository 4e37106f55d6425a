package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Log     key.Binding
	Amend   key.Binding
	NewGoal key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	PDF     key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Log: key.NewBinding(
		key.WithKeys("enter", "l"),
		key.WithHelp("enter", "log today"),
	),
	Amend: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "amend missed day"),
	),
	NewGoal: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new goal"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit goal"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete goal"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "dashboard"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "report"),
	),
	PDF: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pdf report"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Log, k.Amend, k.NewGoal, k.Tab2, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Log, k.Amend},
		{k.NewGoal, k.Edit, k.Delete, k.Tab1},
		{k.Tab2, k.PDF, k.Back, k.Quit},
	}
}
