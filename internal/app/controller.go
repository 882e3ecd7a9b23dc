// Package app runs the interactive loop: draw the current state, wait for
// the next event, dispatch it, repeat until the user quits.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/csheth/petcli/internal/cursor"
	"github.com/csheth/petcli/internal/events"
	"github.com/csheth/petcli/internal/store"
	"github.com/csheth/petcli/internal/view"
)

// Store is the subset of store.Store the controller needs.
type Store interface {
	LoadAll() ([]store.Record, error)
	AppendRandom() ([]store.Record, error)
	RemoveAt(index int) error
}

// Events yields the merged key and tick stream.
type Events interface {
	Next(ctx context.Context) (events.Event, error)
}

// Surface draws frames.
type Surface interface {
	Draw(frame view.Frame) error
}

type state int

const (
	stateRunning state = iota
	stateExiting
)

// Config wires the controller's collaborators.
type Config struct {
	Store   Store
	Events  Events
	Surface Surface
}

// Controller owns the UI mode and the cursor. It is not safe for
// concurrent use; only the goroutine calling Run touches it.
type Controller struct {
	store   Store
	events  Events
	surface Surface

	state  state
	mode   view.Mode
	cursor cursor.Cursor
}

// New returns a controller on the Home tab with the first row selected.
func New(config Config) *Controller {
	c := &Controller{
		store:   config.Store,
		events:  config.Events,
		surface: config.Surface,
		state:   stateRunning,
		mode:    view.ModeHome,
	}
	c.cursor.SelectFirst()
	return c
}

// Mode returns the active tab.
func (c *Controller) Mode() view.Mode { return c.mode }

// Cursor returns the current selection.
func (c *Controller) Cursor() cursor.Cursor { return c.cursor }

// Exiting reports whether a quit key was handled.
func (c *Controller) Exiting() bool { return c.state == stateExiting }

// Run loops until the user quits or an error occurs. Every error is fatal
// and returned as is.
func (c *Controller) Run(ctx context.Context) error {
	log.Printf("[app] loop started")
	for c.state == stateRunning {
		if err := c.draw(); err != nil {
			return err
		}
		ev, err := c.events.Next(ctx)
		if err != nil {
			return fmt.Errorf("wait for event: %w", err)
		}
		if err := c.Handle(ev); err != nil {
			return err
		}
	}
	log.Printf("[app] loop finished")
	return nil
}

// Frame composes the frame for the current state, loading records only
// when the list tab needs them.
func (c *Controller) Frame() (view.Frame, error) {
	var records []store.Record
	if c.mode == view.ModeList {
		var err error
		records, err = c.store.LoadAll()
		if err != nil {
			return view.Frame{}, err
		}
	}
	return view.Compose(c.mode, records, c.cursor), nil
}

func (c *Controller) draw() error {
	frame, err := c.Frame()
	if err != nil {
		return err
	}
	return c.surface.Draw(frame)
}

// Handle applies a single event.
func (c *Controller) Handle(ev events.Event) error {
	if ev.Kind == events.Tick {
		return nil
	}
	switch ev.Key {
	case events.KeyQuit, events.KeyCtrlC:
		c.state = stateExiting
	case events.KeyHome:
		c.mode = view.ModeHome
	case events.KeyList:
		c.mode = view.ModeList
	case events.KeyAdd:
		if _, err := c.store.AppendRandom(); err != nil {
			return fmt.Errorf("add record: %w", err)
		}
	case events.KeyDelete:
		return c.deleteSelected()
	case events.KeyUp, events.KeyDown:
		records, err := c.store.LoadAll()
		if err != nil {
			return fmt.Errorf("move selection: %w", err)
		}
		if ev.Key == events.KeyUp {
			c.cursor.MoveUp(len(records))
		} else {
			c.cursor.MoveDown(len(records))
		}
	}
	return nil
}

func (c *Controller) deleteSelected() error {
	idx, ok := c.cursor.Selected()
	if !ok {
		return nil
	}
	if err := c.store.RemoveAt(idx); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	records, err := c.store.LoadAll()
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	c.cursor.RemoveSelectedAdjust(len(records))
	log.Printf("[app] deleted index=%d, cursor now %s", idx, c.cursor)
	return nil
}
