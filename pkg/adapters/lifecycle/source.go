// Package lifecycle bridges store change events into the generic
// lifecycle event stream, so an application supervisor can react to
// note changes like any other lifecycle source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

type storeSource struct {
	in  <-chan core.Event
	out chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits note change events.
// It bridges the typed store event channel to the generic lifecycle
// Event interface; core.Event satisfies it through String.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &storeSource{
		in:  events,
		out: make(chan lifecycle.Event, 1),
	}
}

func (s *storeSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start launches the forwarding goroutine, tracked and panic-safe via
// lifecycle.Go.
func (s *storeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.forward)
	return nil
}

// forward pumps store events downstream until the input closes or the
// context ends, then closes the output.
func (s *storeSource) forward(ctx context.Context) error {
	defer close(s.out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-s.in:
			if !ok {
				return nil
			}
			select {
			case s.out <- e:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
