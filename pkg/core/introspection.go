package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Loaded         bool   `json:"loaded"`
	Marks          int    `json:"marks"`
	Path           string `json:"path"`
	RepositoryType string `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	path := ""
	if s.repo != nil {
		repoType = "repository"
		path = s.repo.Path()
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return StoreState{
		Loaded:         s.loaded,
		Marks:          len(s.marks),
		Path:           path,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "mark-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
