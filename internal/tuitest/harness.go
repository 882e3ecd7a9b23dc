// Package tuitest runs a terminal program inside a pseudo terminal, types a
// scripted sequence of keys into it and records everything it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 30
	defaultTimeout = 10 * time.Second
)

var (
	// KeyCtrlC is the interrupt byte raw-mode programs receive as a key.
	KeyCtrlC = []byte{3}
	// KeyUp and KeyDown are the ANSI cursor key sequences.
	KeyUp   = []byte("\x1b[A")
	KeyDown = []byte("\x1b[B")
)

// Step writes Input after waiting Delay.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Press returns one step per key, each written after delay. Keys go out
// separately so an escape sequence never merges with the next key.
func Press(delay time.Duration, keys ...[]byte) []Step {
	steps := make([]Step, 0, len(keys))
	for _, key := range keys {
		steps = append(steps, Step{Delay: delay, Input: key})
	}
	return steps
}

// Runes turns plain characters into individual key presses.
func Runes(s string) [][]byte {
	keys := make([][]byte, 0, len(s))
	for _, r := range s {
		keys = append(keys, []byte(string(r)))
	}
	return keys
}

// Config describes the program to run and the script to replay.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
}

// Recording is the raw terminal stream plus the exit code.
type Recording struct {
	Raw      []byte
	ExitCode int
	Duration time.Duration
}

// Plain returns the recording with escape sequences removed.
func (r *Recording) Plain() string {
	if r == nil {
		return ""
	}
	return stripANSI(string(r.Raw))
}

// Contains reports whether the program ever drew substr.
func (r *Recording) Contains(substr string) bool {
	return bytes.Contains([]byte(r.Plain()), []byte(substr))
}

// Run starts the command in a PTY of the configured size, replays the
// steps and waits for the program to exit. A non-zero exit code is an
// error unless listed in AllowedExitCodes.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = append(append(os.Environ(), "TERM=xterm-256color"), cfg.Env...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Height), Cols: uint16(cfg.Width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var output bytes.Buffer
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		answer := newResponder(ptmx)
		buf := make([]byte, 4096)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				answer.scan(buf[:n])
				output.Write(buf[:n])
			}
			if readErr != nil {
				return
			}
		}
	}()

	start := time.Now()
	for _, step := range cfg.Steps {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
		case <-time.After(step.Delay):
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return nil, fmt.Errorf("tuitest: write input: %w", err)
		}
	}

	waitErr := make(chan error, 1)
	go func() { waitErr <- cmd.Wait() }()

	exitCode := 0
	select {
	case err := <-waitErr:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			if !allowed(exitCode, cfg.AllowedExitCodes) {
				return nil, fmt.Errorf("tuitest: program exited with code %d", exitCode)
			}
		} else if err != nil {
			return nil, fmt.Errorf("tuitest: wait: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: program did not exit: %w", ctx.Err())
	}

	_ = ptmx.Close()
	<-drained
	return &Recording{Raw: output.Bytes(), ExitCode: exitCode, Duration: time.Since(start)}, nil
}

func allowed(code int, codes []int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
