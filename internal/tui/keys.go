package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/petcli/internal/events"
)

type keyMap struct {
	Quit   key.Binding
	Home   key.Binding
	List   key.Binding
	Add    key.Binding
	Delete key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Home:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		List:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pets")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

// translate maps a terminal key press onto the controller's key names.
// Unbound keys pass through under their bubbletea name.
func (k keyMap) translate(msg tea.KeyMsg) events.Key {
	switch {
	case key.Matches(msg, k.Quit):
		if msg.Type == tea.KeyCtrlC {
			return events.KeyCtrlC
		}
		return events.KeyQuit
	case key.Matches(msg, k.Home):
		return events.KeyHome
	case key.Matches(msg, k.List):
		return events.KeyList
	case key.Matches(msg, k.Add):
		return events.KeyAdd
	case key.Matches(msg, k.Delete):
		return events.KeyDelete
	case key.Matches(msg, k.Up):
		return events.KeyUp
	case key.Matches(msg, k.Down):
		return events.KeyDown
	default:
		return events.Key(msg.String())
	}
}
