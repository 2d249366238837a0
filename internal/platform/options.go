package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/memmark/pkg/core"
)

// options holds the internal configuration for a mark store.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	perm         os.FileMode
	errorHandler func(error)
}

// Option defines a functional option for configuring a mark store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
		perm:   0644,
	}
}

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, remote).
// If provided, the side-file adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithFileMode sets the permissions of written side-files.
func WithFileMode(perm os.FileMode) Option {
	return func(o *options) {
		o.perm = perm
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while
// watching the side-file.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
