package core

import "errors"

// Common errors.
var (
	// ErrNotFound is returned by a Repository when no side-file exists.
	ErrNotFound = errors.New("side-file not found")
	// ErrCorrupt wraps decode failures of a side-file.
	ErrCorrupt = errors.New("side-file is corrupt")
	// ErrNotSaved is returned by Repository.Write when the owning save has
	// never been written, so there is nothing to attach marks to yet.
	ErrNotSaved = errors.New("save has not been written yet")
	// ErrInvalidMark reports a value outside '1'..'9'.
	ErrInvalidMark = errors.New("invalid mark")
	// ErrEmptyKey reports a record or key with no identity.
	ErrEmptyKey = errors.New("identity key cannot be empty")
)
