package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Store maps item identities to marks for one save slot.
// It is owned by the active session and must be cleared before switching
// characters.
type Store struct {
	repo     Repository
	resolver Resolver
	logger   *slog.Logger

	mu     sync.RWMutex
	marks  map[Key]Mark
	loaded bool
}

// NewStore creates an empty, not-loaded store backed by repo.
func NewStore(repo Repository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		repo:   repo,
		logger: logger,
		marks:  make(map[Key]Mark),
	}
}

// Resolver returns the identity resolver used by the store.
func (s *Store) Resolver() Resolver {
	return s.resolver
}

// Get returns the mark of the item's identity, or Blank.
func (s *Store) Get(it Item) Mark {
	return s.GetKey(s.resolver.Resolve(it))
}

// GetKey returns the mark stored under k, or Blank.
func (s *Store) GetKey(k Key) Mark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if m, ok := s.marks[k]; ok {
		return m
	}
	return Blank
}

// Increment raises the item's mark by one, wrapping 9 to 1. An unmarked
// item becomes 1. The resulting mark is copied onto the transform target.
func (s *Store) Increment(it Item) Mark {
	return s.step(it, Mark.next)
}

// Decrement lowers the item's mark by one, wrapping 1 to 9. An unmarked
// item becomes 9. The resulting mark is copied onto the transform target.
func (s *Store) Decrement(it Item) Mark {
	return s.step(it, Mark.prev)
}

func (s *Store) step(it Item, fn func(Mark) Mark) Mark {
	k := s.resolver.Resolve(it)
	if k == "" {
		// An empty key would be rejected on the next load.
		s.logger.Debug("ignoring mark on item without identity")
		return Blank
	}
	target, linked := s.resolver.TransformKey(it)

	s.mu.Lock()
	defer s.mu.Unlock()

	m := fn(s.current(k))
	s.marks[k] = m
	if linked {
		s.marks[target] = m
	}

	s.logger.Debug("mark changed", "item", k, "mark", m.String(), "linked", target)
	return m
}

// current must be called with mu held.
func (s *Store) current(k Key) Mark {
	if m, ok := s.marks[k]; ok {
		return m
	}
	return Blank
}

// SetKey stores m under k directly.
func (s *Store) SetKey(k Key, m Mark) error {
	if k == "" {
		return ErrEmptyKey
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMark, rune(m))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[k] = m
	return nil
}

// Remove unmarks the item and its transform target. Unmarked items are a no-op.
func (s *Store) Remove(it Item) {
	k := s.resolver.Resolve(it)
	if k == "" {
		return
	}
	target, linked := s.resolver.TransformKey(it)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.marks, k)
	if linked {
		delete(s.marks, target)
	}
}

// RemoveKey unmarks k only.
func (s *Store) RemoveKey(k Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.marks, k)
}

// Clear empties the store and resets the loaded flag.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.marks = make(map[Key]Mark)
	s.loaded = false
}

// Loaded reports whether Load has completed since the last Clear.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Len returns the number of marked identities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.marks)
}

// Keys returns the marked identities in sorted order.
func (s *Store) Keys() []Key {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]Key, 0, len(s.marks))
	for k := range s.marks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ToRecords returns the mapping as records sorted by identity.
func (s *Store) ToRecords() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recordsLocked()
}

func (s *Store) recordsLocked() []Record {
	records := make([]Record, 0, len(s.marks))
	for k, m := range s.marks {
		records = append(records, Record{Item: string(k), Value: int(m)})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Item < records[j].Item })
	return records
}

// FromRecords replaces the mapping with records. A single malformed record
// fails the whole batch and leaves the store untouched.
func (s *Store) FromRecords(records []Record) error {
	marks, err := decodeRecords(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks = marks
	return nil
}

func decodeRecords(records []Record) (map[Key]Mark, error) {
	marks := make(map[Key]Mark, len(records))
	for i, r := range records {
		if r.Item == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyKey)
		}
		m, err := r.Mark()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		marks[Key(r.Item)] = m
	}
	return marks, nil
}

// Save writes the mapping to the repository. A save that has never been
// written to disk is a vacuous success: nothing is persisted and Save
// reports true. Write failures report false with the cause.
func (s *Store) Save(ctx context.Context) (bool, error) {
	if _, err := s.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// save reports whether records actually reached the repository.
func (s *Store) save(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Snapshot under the read lock so no mutation is observed half-applied.
	s.mu.RLock()
	records := s.recordsLocked()
	s.mu.RUnlock()

	err := s.repo.Write(ctx, records)
	switch {
	case errors.Is(err, ErrNotSaved):
		s.logger.Debug("save not written yet, skipping marks", "path", s.repo.Path())
		return false, nil
	case err != nil:
		s.logger.Error("failed to save marks", "path", s.repo.Path(), "error", err)
		return false, fmt.Errorf("save marks: %w", err)
	}

	s.logger.Info("marks saved", "path", s.repo.Path(), "count", len(records))
	return true, nil
}

// Load replaces the mapping with the repository's contents. A missing or
// corrupt side-file leaves the store empty; the store then attempts a save,
// and when that save was vacuous any stray side-file is discarded. The store
// is marked loaded in every case. Only context cancellation is returned.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		s.mu.Lock()
		s.loaded = true
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()

	records, err := s.repo.Read(ctx)
	if err == nil {
		if err = s.FromRecords(records); err != nil {
			err = fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug("no marks stored", "path", s.repo.Path())
		} else {
			s.logger.Warn("discarding unreadable marks", "path", s.repo.Path(), "error", err)
		}
		s.reset(ctx)
	} else {
		s.logger.Info("marks loaded", "path", s.repo.Path(), "count", len(records))
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Reload replaces the mapping with the repository's contents without ever
// writing. Unlike Load, a missing or unreadable side-file is reported and
// the current mapping is kept, so observers of a file another process is
// writing cannot clobber it.
func (s *Store) Reload(ctx context.Context) error {
	records, err := s.repo.Read(ctx)
	if err != nil {
		return err
	}
	if err := s.FromRecords(records); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// reset empties the mapping and reconciles the side-file with it.
func (s *Store) reset(ctx context.Context) {
	s.mu.Lock()
	s.marks = make(map[Key]Mark)
	s.mu.Unlock()

	written, err := s.save(ctx)
	if err != nil || written {
		return
	}
	if err := s.repo.Discard(ctx); err != nil {
		s.logger.Warn("failed to discard stray marks file", "path", s.repo.Path(), "error", err)
	}
}
