package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/memmark/internal/platform"
	"github.com/aretw0/memmark/pkg/adapters/fs"
	markevents "github.com/aretw0/memmark/pkg/adapters/lifecycle"
	"github.com/aretw0/memmark/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the marks every time the side-file changes",
	Long: `Print the marks every time the side-file changes.

The watcher only reads: a missing or unreadable side-file is reported and
left untouched for the process that owns it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s, err := slot()
		if err != nil {
			fatal("Error opening marks", err)
		}
		repo := fs.NewRepository(fs.Config{Slot: s, Logger: slog.Default()})
		store, err := platform.New(s,
			platform.WithRepository(repo),
			platform.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Error opening marks", err)
		}

		events, err := repo.Watch(ctx)
		if err != nil {
			fatal("Error watching marks", err)
		}
		src := markevents.NewSource(events)
		if err := src.Start(ctx); err != nil {
			fatal("Error watching marks", err)
		}
		refreshMarks(ctx, store, os.Stdout, os.Stderr)

		for ev := range src.Events() {
			slog.Debug("side-file event", "event", ev.String())
			e, ok := ev.(core.Event)
			if !ok {
				continue
			}
			if e.Type == core.EventDelete {
				fmt.Fprintln(os.Stdout, "-- side-file removed")
				continue
			}
			refreshMarks(ctx, store, os.Stdout, os.Stderr)
		}
	},
}

// refreshMarks rereads the side-file and prints the marks to out. It never
// writes: read failures go to errOut and the last good marks are kept.
func refreshMarks(ctx context.Context, store *core.Store, out, errOut io.Writer) {
	if err := store.Reload(ctx); err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			fmt.Fprintln(errOut, "-- no side-file yet")
		case errors.Is(err, core.ErrCorrupt):
			fmt.Fprintf(errOut, "Warning: side-file unreadable, keeping last marks: %v\n", err)
		default:
			fmt.Fprintf(errOut, "Warning: reading side-file: %v\n", err)
		}
		return
	}
	printMarks(out, store)
}

func printMarks(w io.Writer, store *core.Store) {
	fmt.Fprintf(w, "-- %d marks\n", store.Len())
	for _, k := range store.Keys() {
		fmt.Fprintf(w, "%s %s\n", store.GetKey(k), k)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
