package core_test

import (
	"context"
	"sort"

	"github.com/aretw0/memmark/pkg/core"
)

// fakeItem implements core.Item and every optional capability.
type fakeItem struct {
	id        string
	label     string
	corpseOf  string
	corpse    bool
	contents  []core.Item
	transform string
}

func (f *fakeItem) TypeID() string    { return f.id }
func (f *fakeItem) Label() string     { return f.label }
func (f *fakeItem) IsCorpse() bool    { return f.corpse }
func (f *fakeItem) CorpseOf() string  { return f.corpseOf }
func (f *fakeItem) StackCount() int   { return len(f.contents) }
func (f *fakeItem) SoleContent() core.Item {
	if len(f.contents) != 1 {
		return nil
	}
	return f.contents[0]
}
func (f *fakeItem) TransformTarget() (string, bool) {
	return f.transform, f.transform != ""
}

func item(id string) *fakeItem { return &fakeItem{id: id, label: id} }

// MockRepository implements core.Repository in memory.
type MockRepository struct {
	records  []core.Record
	readErr  error
	writeErr error
	exists   bool

	writes   int
	discards int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

func (m *MockRepository) Read(ctx context.Context) ([]core.Record, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if !m.exists {
		return nil, core.ErrNotFound
	}
	out := append([]core.Record(nil), m.records...)
	sort.Slice(out, func(i, j int) bool { return out[i].Item < out[j].Item })
	return out, nil
}

func (m *MockRepository) Write(ctx context.Context, records []core.Record) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.records = append([]core.Record(nil), records...)
	m.exists = true
	return nil
}

func (m *MockRepository) Discard(ctx context.Context) error {
	m.discards++
	m.records = nil
	m.exists = false
	return nil
}

func (m *MockRepository) Path() string { return "mock://marks" }
