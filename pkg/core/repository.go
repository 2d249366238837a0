package core

import "context"

// Repository persists the records of one save slot.
// Adhering to this interface keeps the store independent of the storage
// mechanism (side-file, in-memory, remote).
type Repository interface {
	// Read returns the stored records. It returns ErrNotFound when nothing is
	// stored and an error wrapping ErrCorrupt when the data cannot be decoded.
	Read(ctx context.Context) ([]Record, error)

	// Write replaces the stored records atomically. It returns ErrNotSaved
	// when the owning save does not exist yet and nothing was written.
	Write(ctx context.Context, records []Record) error

	// Discard removes any stored data. Missing data is not an error.
	Discard(ctx context.Context) error

	// Path identifies the storage location, for logs and tooling.
	Path() string
}

// Watchable is implemented by repositories that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
