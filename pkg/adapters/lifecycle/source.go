// Package lifecycle exposes side-file changes as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/memmark/pkg/core"
)

type markSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits side-file events.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &markSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *markSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *markSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event.
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
