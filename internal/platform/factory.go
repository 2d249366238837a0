package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/memmark/pkg/adapters/fs"
	"github.com/aretw0/memmark/pkg/core"
)

// New creates an empty, not-loaded mark store for slot.
//
//	store, err := memmark.New(core.SaveSlot{WorldDir: dir, Player: name})
func New(slot core.SaveSlot, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if strings.TrimSpace(slot.WorldDir) == "" {
			return nil, fmt.Errorf("world directory is required")
		}
		if slot.Player == "" {
			return nil, fmt.Errorf("player name is required")
		}
		repo = fs.NewRepository(fs.Config{
			Slot:         slot,
			Logger:       o.logger,
			Perm:         o.perm,
			ErrorHandler: o.errorHandler,
		})
	}

	return core.NewStore(repo, o.logger), nil
}

// Open creates a store for slot and loads it.
func Open(ctx context.Context, slot core.SaveSlot, opts ...Option) (*core.Store, error) {
	store, err := New(slot, opts...)
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
