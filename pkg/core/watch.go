package core

import (
	"context"
	"sort"

	"github.com/aretw0/lifecycle"
)

// Watch observes the collection for changes made outside this store,
// such as another process writing the same data file. It requires a
// Watchable backend.
//
// On every backend change signal the store reloads the collection and
// diffs it against its previous snapshot, emitting one event per
// created, modified or deleted note. This is best-effort notification
// only: rapid successive writes may coalesce into a single diff, and
// nothing protects concurrent writers from clobbering each other.
//
// The returned channel closes when ctx is done or the backend stops
// signalling.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.backend.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}

	signals, err := w.Watch(ctx, pattern)
	if err != nil {
		return nil, err
	}

	events := make(chan Event, s.eventBufferSize)
	snapshot := indexByID(s.load(ctx))

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-signals:
				if !ok {
					return nil
				}
				next := indexByID(s.load(ctx))
				for _, e := range s.diff(snapshot, next) {
					select {
					case events <- e:
					case <-ctx.Done():
						return nil
					}
				}
				snapshot = next
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.logger != nil {
			s.logger.Error("watch reconcile panic", "error", err)
		}
	}))

	return events, nil
}

func indexByID(notes []Note) map[string]Note {
	m := make(map[string]Note, len(notes))
	for _, n := range notes {
		m[n.ID] = n
	}
	return m
}

// diff compares two snapshots of the collection and produces per-note
// events, ordered by ID for determinism.
func (s *Store) diff(prev, next map[string]Note) []Event {
	now := s.clock().Unix()
	var events []Event

	for id, n := range next {
		old, existed := prev[id]
		switch {
		case !existed:
			events = append(events, Event{Type: EventCreate, ID: id, Timestamp: now})
		case !old.UpdatedAt.Equal(n.UpdatedAt) || old.Deleted != n.Deleted || old.IsDraft != n.IsDraft:
			events = append(events, Event{Type: EventModify, ID: id, Timestamp: now})
		}
	}
	for id := range prev {
		if _, still := next[id]; !still {
			events = append(events, Event{Type: EventDelete, ID: id, Timestamp: now})
		}
	}

	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}
