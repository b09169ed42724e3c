package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the clock's key bindings with their help text.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Spoken key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Spoken: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "spoken line"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Spoken, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Spoken}, {k.Help, k.Quit}}
}
