// Package tui is the terminal surface: a bubbletea program that forwards
// key presses to the event source and draws whatever frame the controller
// last posted.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/petcli/internal/events"
	"github.com/csheth/petcli/internal/view"
)

// KeySink receives every key press. events.Source implements it.
type KeySink interface {
	Send(key events.Key)
}

type frameMsg struct {
	frame view.Frame
}

type model struct {
	sink     KeySink
	keys     keyMap
	layout   pageLayout
	frame    view.Frame
	hasFrame bool
}

func newModel(sink KeySink) *model {
	return &model{
		sink:   sink,
		keys:   defaultKeyMap(),
		layout: newPageLayout(),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

// Update never quits on its own; the controller decides when the session
// ends and the Session stops the program.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
	case frameMsg:
		m.frame = msg.frame
		m.hasFrame = true
	case tea.KeyMsg:
		if m.sink != nil {
			m.sink.Send(m.keys.translate(msg))
		}
	}
	return m, nil
}

func (m *model) View() string {
	if !m.hasFrame {
		return ""
	}
	return renderFrame(m.frame, m.layout)
}
