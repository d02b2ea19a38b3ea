package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdyhakash/quick-drop/pkg/core"
)

func TestSource_BridgesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 2)
	src := NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventCreate, ID: "a"}
	in <- core.Event{Type: core.EventDelete, ID: "b"}

	select {
	case e := <-src.Events():
		assert.Equal(t, "CREATE a", e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bridged event")
	}

	select {
	case e := <-src.Events():
		assert.Equal(t, "DELETE b", e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestSource_ClosesWhenInputCloses(t *testing.T) {
	ctx := context.Background()

	in := make(chan core.Event)
	src := NewSource(in)
	require.NoError(t, src.Start(ctx))

	close(in)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel never closed")
	}
}
