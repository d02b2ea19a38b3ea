package core

import "context"

// Backend defines the contract for persisting the note collection.
// The entire collection round-trips as one unit on every call; there is
// no per-note persistence. Adhering to this interface keeps the store
// independent of the underlying storage mechanism (filesystem, memory,
// or anything else that can hold a serialized blob).
type Backend interface {
	// Load reads the whole collection. A backend with no data yet
	// returns an empty slice, not an error.
	Load(ctx context.Context) ([]Note, error)

	// Save rewrites the whole collection.
	Save(ctx context.Context, notes []Note) error
}

// Watchable is implemented by backends that can signal external changes
// to the collection (another process writing the same data file).
type Watchable interface {
	// Watch emits an event whenever the stored collection changes
	// outside this process. The pattern filters which underlying
	// storage units are observed (glob over file names for the fs
	// backend). The channel closes when ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan ChangeSignal, error)
}

// ChangeSignal marks an external modification of the stored collection.
// It carries no detail; consumers re-read through the store.
type ChangeSignal struct {
	Name string // storage unit that changed, backend-specific
}
