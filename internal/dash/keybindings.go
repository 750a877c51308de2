package dash

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit       key.Binding
	FocusNext  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	Up         key.Binding
	Down       key.Binding
	First      key.Binding
	Last       key.Binding
	Refresh    key.Binding
	Help       key.Binding
	Close      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch pane"),
	),
	FocusLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "categories pane"),
	),
	FocusRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "devices pane"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first entry"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last entry"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh devices"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.FocusNext, k.Refresh, k.Help}
}

// FullHelp returns the binding rows shown in the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.FocusNext, k.FocusLeft, k.FocusRight},
		{k.Up, k.Down, k.First, k.Last},
		{k.Refresh, k.Help, k.Close},
	}
}

// handleKey processes keyboard input. Returns true if the key was
// handled, false otherwise.
func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// While help is open, only quit and close work
	if m.showHelp {
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return true, tea.Quit
		case key.Matches(msg, keys.Close):
			m.showHelp = false
		}
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.FocusNext):
		if m.focus == PaneCategories {
			m.focus = PaneDevices
		} else {
			m.focus = PaneCategories
		}
		return true, nil

	case key.Matches(msg, keys.FocusLeft):
		m.focus = PaneCategories
		return true, nil

	case key.Matches(msg, keys.FocusRight):
		m.focus = PaneDevices
		return true, nil

	case key.Matches(msg, keys.Up):
		m.moveSelection(-1)
		return true, nil

	case key.Matches(msg, keys.Down):
		m.moveSelection(1)
		return true, nil

	case key.Matches(msg, keys.First):
		m.jumpSelection(false)
		return true, nil

	case key.Matches(msg, keys.Last):
		m.jumpSelection(true)
		return true, nil

	case key.Matches(msg, keys.Refresh):
		// Update's category comparison rebuilds the list.
		m.lastCategory = ""
		return true, nil
	}

	return false, nil
}
