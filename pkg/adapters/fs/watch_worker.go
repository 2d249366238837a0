package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/memmark/pkg/core"
)

// Watch reports external changes to the side-file until ctx is cancelled.
// The save directory is watched rather than the file itself because atomic
// writes replace the file on every save.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(r.Path())); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(r.Path()), err)
	}

	w := &watchWorker{
		repo:    r,
		target:  filepath.Clean(r.Path()),
		watcher: watcher,
		events:  make(chan core.Event, 16),
	}
	r.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.handleWatcherError(fmt.Errorf("watcher panic: %w", err))
	}))

	return w.events, nil
}

type watchWorker struct {
	repo    *Repository
	target  string
	watcher *fsnotify.Watcher
	events  chan core.Event
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.repo.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}

// processFilesystemEvent forwards events that touch the side-file.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	if isTempFor(filepath.Clean(event.Name), w.target) {
		// The rename that follows reports the finished file.
		return false
	}
	if filepath.Clean(event.Name) != w.target {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.repo.config.Logger.Debug("side-file changed", "path", event.Name, "op", event.Op.String())

	select {
	case w.events <- core.Event{Type: eType, Path: w.target, Timestamp: time.Now().Unix()}:
		return true
	case <-ctx.Done():
		return false
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	}
	return ""
}

// handleWatcherError processes errors from the fsnotify watcher.
func (w *watchWorker) handleWatcherError(err error) {
	w.repo.config.Logger.Error("fsnotify error", "error", err)
	if w.repo.config.ErrorHandler != nil {
		w.repo.config.ErrorHandler(err)
	}
}
