package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit     key.Binding
	Open     key.Binding
	CopyOpen key.Binding
	OpenHelp key.Binding
	Close    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o/enter", "open dialog"),
	),
	CopyOpen: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy description & open"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close dialog"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Open,
		k.CopyOpen,
		k.OpenHelp,
		k.Close,
		k.Quit,
	}
}
