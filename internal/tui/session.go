package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/petcli/internal/view"
)

// ErrSessionClosed is wrapped by Draw once the program has ended.
var ErrSessionClosed = errors.New("terminal session closed")

// TerminalError reports a failure to take over, draw on, or give back the
// terminal.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal: %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

// Options configures a Session.
type Options struct {
	Sink      KeySink
	AltScreen bool
	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Session owns the terminal for as long as it is open. bubbletea switches
// the terminal to raw mode when the program starts and restores it when
// the program returns, panics included. Callers must Close the session on
// every exit path.
type Session struct {
	program *tea.Program
	done    chan struct{}
	runErr  error

	closeOnce sync.Once
	closeErr  error
}

// Open starts the program in the background.
func Open(opts Options) *Session {
	programOpts := []tea.ProgramOption{}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	s := &Session{
		program: tea.NewProgram(newModel(opts.Sink), programOpts...),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_, err := s.program.Run()
		s.runErr = err
		log.Printf("[tui] program exited (err=%v)", err)
	}()
	return s
}

// Done is closed once the program has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Draw posts a frame to the program. It fails once the program has ended.
func (s *Session) Draw(frame view.Frame) error {
	select {
	case <-s.done:
		return s.closedErr("draw")
	default:
	}
	s.program.Send(frameMsg{frame: frame})
	return nil
}

// Close stops the program, waits for the terminal to be restored, and
// reports how the program ended. Safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.program.Quit()
		<-s.done
		if s.runErr != nil && !errors.Is(s.runErr, tea.ErrProgramKilled) {
			s.closeErr = &TerminalError{Op: "run", Err: s.runErr}
		}
	})
	return s.closeErr
}

func (s *Session) closedErr(op string) error {
	if s.runErr != nil {
		return &TerminalError{Op: op, Err: fmt.Errorf("%w: %w", ErrSessionClosed, s.runErr)}
	}
	return &TerminalError{Op: op, Err: ErrSessionClosed}
}
