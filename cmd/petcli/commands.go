package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/csheth/petcli/internal/app"
	"github.com/csheth/petcli/internal/config"
	"github.com/csheth/petcli/internal/events"
	"github.com/csheth/petcli/internal/store"
	"github.com/csheth/petcli/internal/tui"
	"github.com/csheth/petcli/internal/view"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petcli",
		Short: "Browse, add and delete pets in a JSON file from the terminal.",
		Example: `
petcli
petcli --db ~/pets.json --no-alt-screen
petcli list`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), cfg, nil, nil)
		},
	}
	config.RegisterFlags(cmd.PersistentFlags())
	cmd.AddCommand(newListCommand())
	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "print the stored pets as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log.SetOutput(io.Discard)
			records, err := store.New(cfg.DBPath, nil).LoadAll()
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}
}

// runUI drives the interactive session. A nil in or out uses the process
// terminal.
func runUI(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	st := store.New(cfg.DBPath, nil)
	if err := st.Ensure(); err != nil {
		return err
	}
	unlock, err := st.Lock()
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	source := events.NewSource(cfg.TickInterval)
	source.Start(ctx)
	defer source.Stop()

	session := tui.Open(tui.Options{Sink: source, AltScreen: cfg.AltScreen, Input: in, Output: out})
	defer func() {
		if closeErr := session.Close(); closeErr != nil && (err == nil || endedBySession(err)) {
			err = closeErr
		}
	}()
	go func() {
		select {
		case <-session.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Printf("[main] db=%s tick=%s alt-screen=%t", cfg.DBPath, cfg.TickInterval, cfg.AltScreen)
	controller := app.New(app.Config{Store: st, Events: source, Surface: session})
	return controller.Run(ctx)
}

// endedBySession reports whether err only says the loop stopped because the
// terminal session went away first.
func endedBySession(err error) bool {
	return errors.Is(err, events.ErrClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, tui.ErrSessionClosed)
}

// setupLogging routes the standard logger to path, or discards it when
// path is empty, since the terminal belongs to the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "petcli")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { _ = f.Close() }, nil
}

func printRecords(w io.Writer, records []store.Record) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Category"), bold.Sprint("Age"), bold.Sprint("Created At"))
	for _, r := range records {
		tbl.AddRow(r.ID, r.Name, r.Category, r.Age, view.FormatCreatedAt(r.CreatedAt))
	}
	tbl.RightAlign(0)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(w, tbl)
}
