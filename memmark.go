package memmark

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/memmark/internal/platform"
	"github.com/aretw0/memmark/pkg/adapters/fs"
	"github.com/aretw0/memmark/pkg/core"
)

// --- Types ---

// Store is a public alias for the mark store.
type Store = core.Store

// Mark is a public alias for a single mark digit.
type Mark = core.Mark

// Key is a public alias for an item identity.
type Key = core.Key

// Item is a public alias for the host item contract.
type Item = core.Item

// SaveSlot is a public alias for the save location of one character.
type SaveSlot = core.SaveSlot

// Blank is returned for unmarked items.
const Blank = core.Blank

// --- Configuration ---

// Option defines a functional option for configuring a store.
type Option = platform.Option

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithFileMode sets the permissions of written side-files.
func WithFileMode(perm os.FileMode) Option {
	return platform.WithFileMode(perm)
}

// WithWatcherErrorHandler registers a callback for side-file watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates an empty store for slot. Call Load before use.
func New(slot SaveSlot, opts ...Option) (*Store, error) {
	return platform.New(slot, opts...)
}

// Open creates a store for slot and loads its side-file.
func Open(ctx context.Context, slot SaveSlot, opts ...Option) (*Store, error) {
	return platform.Open(ctx, slot, opts...)
}

// NewRepository creates the side-file repository for slot.
func NewRepository(slot SaveSlot, logger *slog.Logger) *fs.Repository {
	return fs.NewRepository(fs.Config{Slot: slot, Logger: logger})
}

// FindWorldRoot looks upwards from startDir for a world folder.
func FindWorldRoot(startDir string) (string, error) {
	return platform.FindWorldRoot(startDir)
}
