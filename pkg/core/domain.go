// Package core holds the marks domain: item identities, the bounded mark
// counter and the store that maps one to the other.
package core

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
)

// Mark is a single digit '1'..'9' attached to an item identity.
// The zero value is not a valid mark; unmarked identities report Blank.
type Mark byte

const (
	// Blank is returned for identities that carry no mark. It is never stored.
	Blank Mark = ' '

	MinMark Mark = '1'
	MaxMark Mark = '9'
)

// Valid reports whether m is one of '1'..'9'.
func (m Mark) Valid() bool {
	return m >= MinMark && m <= MaxMark
}

// Level returns the numeric level of the mark (1..9), or 0 for Blank and
// anything else outside the digit range.
func (m Mark) Level() int {
	if !m.Valid() {
		return 0
	}
	return int(m-MinMark) + 1
}

func (m Mark) String() string {
	return string(rune(m))
}

// MarkFromLevel converts a level 1..9 to its Mark.
func MarkFromLevel(level int) (Mark, error) {
	if level < 1 || level > 9 {
		return Blank, fmt.Errorf("%w: level %d", ErrInvalidMark, level)
	}
	return MinMark + Mark(level-1), nil
}

// next steps m up one level, wrapping 9 to 1. Unmarked enters from 0.
func (m Mark) next() Mark {
	if !m.Valid() {
		return MinMark
	}
	if m == MaxMark {
		return MinMark
	}
	return m + 1
}

// prev steps m down one level, wrapping 1 to 9. Unmarked enters from 10.
func (m Mark) prev() Mark {
	if !m.Valid() || m == MinMark {
		return MaxMark
	}
	return m - 1
}

// Key is the canonical identity an item instance resolves to.
type Key string

// Record is the persisted form of one mapping entry.
// Value is the ASCII ordinal of the mark digit (49..57).
type Record struct {
	Item  string `json:"item" yaml:"item"`
	Value int    `json:"value" yaml:"value"`
}

// Mark returns the record's value as a Mark, failing for anything outside '1'..'9'.
func (r Record) Mark() (Mark, error) {
	if r.Value < int(MinMark) || r.Value > int(MaxMark) {
		return Blank, fmt.Errorf("%w: value %d for %q", ErrInvalidMark, r.Value, r.Item)
	}
	return Mark(r.Value), nil
}

const (
	// SideFileSuffix is appended to a save's base path to name the marks file.
	SideFileSuffix = ".idr.json"
	// SaveFileSuffix names the main save whose presence gates writing.
	SaveFileSuffix = ".sav"
)

// SaveSlot locates one player's files inside a world folder.
type SaveSlot struct {
	WorldDir string
	Player   string
}

// Base returns the path prefix shared by every per-character file.
// Player names are base64url encoded so any name is a valid file name.
func (s SaveSlot) Base() string {
	return filepath.Join(s.WorldDir, base64.URLEncoding.EncodeToString([]byte(s.Player)))
}

// SideFile is the marks file of the slot.
func (s SaveSlot) SideFile() string {
	return s.Base() + SideFileSuffix
}

// SaveFile is the main save of the slot.
func (s SaveSlot) SaveFile() string {
	return s.Base() + SaveFileSuffix
}

// EventType represents the kind of change seen on a side-file.
type EventType string

const (
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an on-disk change of a side-file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
