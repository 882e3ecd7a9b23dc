// Package events merges a periodic tick with key presses into one ordered
// stream that a single consumer reads one event at a time.
package events

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// DefaultTickInterval is the redraw period when none is configured.
const DefaultTickInterval = 200 * time.Millisecond

// ErrClosed is returned by Next once the source has stopped.
var ErrClosed = errors.New("events: source closed")

// Kind tells key presses and ticks apart.
type Kind int

const (
	KeyPress Kind = iota
	Tick
)

func (k Kind) String() string {
	switch k {
	case KeyPress:
		return "key"
	case Tick:
		return "tick"
	default:
		return "unknown"
	}
}

// Key is a normalized key name such as "q", "up" or "down".
type Key string

const (
	KeyQuit   Key = "q"
	KeyHome   Key = "h"
	KeyList   Key = "p"
	KeyAdd    Key = "a"
	KeyDelete Key = "d"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyCtrlC  Key = "ctrl+c"
)

// Event is one entry of the stream. Key is empty for ticks.
type Event struct {
	Kind Kind
	Key  Key
	At   time.Time
}

// Source owns the producer goroutine. All timing state lives inside that
// goroutine; the rest of the program only talks to it through channels.
type Source struct {
	interval time.Duration
	keys     chan Key
	out      chan Event
	done     chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSource returns a stopped source ticking every interval. A non-positive
// interval uses DefaultTickInterval.
func NewSource(interval time.Duration) *Source {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Source{
		interval: interval,
		keys:     make(chan Key, 64),
		out:      make(chan Event),
		done:     make(chan struct{}),
	}
}

// Interval returns the tick period.
func (s *Source) Interval() time.Duration {
	return s.interval
}

// Start launches the producer. It runs until ctx is cancelled or Stop is
// called. Calling Start more than once has no effect.
func (s *Source) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.run(ctx)
	})
}

// Stop terminates the producer. Safe to call repeatedly.
func (s *Source) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// Send hands a key press to the producer. It never blocks once the source
// has stopped.
func (s *Source) Send(key Key) {
	select {
	case s.keys <- key:
	case <-s.done:
	}
}

// Next blocks until the next event is available.
func (s *Source) Next(ctx context.Context) (Event, error) {
	select {
	case ev := <-s.out:
		return ev, nil
	case <-s.done:
		return Event{}, ErrClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

func (s *Source) run(ctx context.Context) {
	defer s.Stop()

	var queue []Event
	lastTick := time.Now()
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		wait := s.interval - time.Since(lastTick)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)

		// Only offer the head of the queue when there is one; a nil channel
		// disables that select case.
		var out chan Event
		var head Event
		if len(queue) > 0 {
			out = s.out
			head = queue[0]
		}

		select {
		case <-ctx.Done():
			log.Printf("[events] source stopped: %v (pending=%d)", ctx.Err(), len(queue))
			return
		case <-s.done:
			return
		case key := <-s.keys:
			queue = append(queue, Event{Kind: KeyPress, Key: key, At: time.Now()})
		case <-timer.C:
			if time.Since(lastTick) >= s.interval {
				lastTick = time.Now()
				queue = append(queue, Event{Kind: Tick, At: lastTick})
			}
		case out <- head:
			queue[0] = Event{}
			queue = queue[1:]
		}
	}
}
