// Package memory provides an in-memory backend, primarily for tests and
// ephemeral runs. It deep-copies the collection on both Load and Save so
// callers can never alias the stored state.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

// Backend implements core.Backend in memory.
type Backend struct {
	mu    sync.RWMutex
	notes []core.Note

	// FailLoads and FailSaves force subsequent operations to error,
	// exercising the store's degrade paths in tests.
	FailLoads bool
	FailSaves bool

	// Saves counts successful Save calls, so tests can assert that a
	// no-op operation performed no write.
	Saves int
}

// NewBackend creates an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Load returns a copy of the stored collection.
func (b *Backend) Load(ctx context.Context) ([]core.Note, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.FailLoads {
		return nil, errors.New("memory backend: loads disabled")
	}
	return copyNotes(b.notes), nil
}

// Save replaces the stored collection with a copy of notes.
func (b *Backend) Save(ctx context.Context, notes []core.Note) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FailSaves {
		return errors.New("memory backend: saves disabled")
	}
	b.notes = copyNotes(notes)
	b.Saves++
	return nil
}

func copyNotes(notes []core.Note) []core.Note {
	out := make([]core.Note, len(notes))
	for i, n := range notes {
		n.Tags = append([]string(nil), n.Tags...)
		out[i] = n
	}
	return out
}

var _ core.Backend = (*Backend)(nil)
