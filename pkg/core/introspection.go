package core

import (
	"context"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	EventBufferSize int    `json:"event_buffer_size"`
	BackendType     string `json:"backend_type"`
	NoteCount       int    `json:"note_count"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	backendType := "backend"
	if comp, ok := s.backend.(introspection.Component); ok {
		backendType = comp.ComponentType()
	}

	return StoreState{
		EventBufferSize: s.eventBufferSize,
		BackendType:     backendType,
		NoteCount:       len(s.load(context.Background())),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
