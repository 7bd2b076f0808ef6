package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the non-letter key bindings for a game session.
// Plain letters (including q and r) feed the guess buffer, so quitting is
// bound to esc/ctrl+c and restart only fires once the game is over.
type KeyMap struct {
	Submit  key.Binding
	Erase   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Erase, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Erase},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit guess"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
