// Package fs stores marks in a JSON side-file next to a player's save.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aretw0/memmark/pkg/core"
)

// Repository implements core.Repository on top of a side-file.
type Repository struct {
	Slot   core.SaveSlot
	config Config
	codec  Codec

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
}

// Config holds the configuration for the side-file repository.
type Config struct {
	Slot         core.SaveSlot
	Logger       *slog.Logger
	Perm         os.FileMode  // defaults to 0644
	ErrorHandler func(error) // receives watcher failures
}

// NewRepository creates a side-file repository for the given slot.
func NewRepository(config Config) *Repository {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	return &Repository{
		Slot:   config.Slot,
		config: config,
		codec:  JSONCodec{},
	}
}

// Path returns the side-file path.
func (r *Repository) Path() string {
	return r.Slot.SideFile()
}

// SaveExists reports whether the owning save has been written to disk.
func (r *Repository) SaveExists() bool {
	info, err := os.Stat(r.Slot.SaveFile())
	return err == nil && !info.IsDir()
}

// Read decodes the side-file.
func (r *Repository) Read(ctx context.Context) ([]core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read side-file: %w", err)
	}

	records, err := r.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path(), err)
	}
	return records, nil
}

// Write encodes records and replaces the side-file atomically. Nothing is
// written while the owning save does not exist.
func (r *Repository) Write(ctx context.Context, records []core.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.SaveExists() {
		return core.ErrNotSaved
	}

	data, err := r.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("failed to encode marks: %w", err)
	}

	if err := writeFileAtomic(r.Path(), data, r.config.Perm); err != nil {
		return err
	}

	r.recordWrite()
	r.config.Logger.Debug("side-file written", "path", r.Path(), "records", len(records))
	return nil
}

// Discard removes the side-file if present.
func (r *Repository) Discard(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove side-file: %w", err)
	}
	n, err := removeStaleTemps(r.Path())
	if n > 0 {
		r.config.Logger.Info("removed interrupted side-file writes", "path", r.Path(), "count", n)
	}
	if err != nil {
		return fmt.Errorf("failed to remove interrupted writes: %w", err)
	}
	return nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
