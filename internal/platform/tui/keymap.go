package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// KeyMap defines the key bindings for the device buttons.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "go up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "go down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "power off"),
		),
	}
}

// MapKey translates a key message to a device command.
// Keys outside the steering set become CommandAny, which the screens
// accept as "any button". Returns whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CommandNone, true
	case key.Matches(msg, k.Left):
		return core.CommandLeft, false
	case key.Matches(msg, k.Right):
		return core.CommandRight, false
	case key.Matches(msg, k.Up):
		return core.CommandUp, false
	case key.Matches(msg, k.Down):
		return core.CommandDown, false
	}
	return core.CommandAny, false
}
