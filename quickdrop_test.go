package quickdrop_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdyhakash/quick-drop"
	"github.com/mdyhakash/quick-drop/pkg/adapters/memory"
	"github.com/mdyhakash/quick-drop/pkg/core"
)

func TestNew_FullLifecycleOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := quickdrop.New(dir, quickdrop.WithForceTemp(true))
	require.NoError(t, err)

	note := store.SaveNote(ctx, core.NotePatch{
		Title:   core.String("Shopping"),
		Content: core.String("milk, eggs"),
	})

	require.True(t, store.DeleteNote(ctx, note.ID))
	require.True(t, store.RestoreNote(ctx, note.ID))

	// A second store over the same directory sees the persisted state.
	reopened, err := quickdrop.New(dir, quickdrop.WithForceTemp(true))
	require.NoError(t, err)

	active := reopened.ActiveNotes(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "Shopping", active[0].Title)

	require.True(t, reopened.PermanentlyDeleteNote(ctx, note.ID))
	assert.Empty(t, reopened.AllNotes(ctx))
}

func TestNew_InjectedBackendSkipsFilesystem(t *testing.T) {
	backend := memory.NewBackend()

	store, err := quickdrop.New("", quickdrop.WithBackend(backend))
	require.NoError(t, err)

	store.SaveNote(context.Background(), core.NotePatch{Title: core.String("in memory")})
	assert.Equal(t, 1, backend.Saves)
}

func TestNew_CustomFileName(t *testing.T) {
	dir := t.TempDir()

	store, err := quickdrop.New(dir,
		quickdrop.WithForceTemp(true),
		quickdrop.WithFileName("scratch.json"),
	)
	require.NoError(t, err)
	store.SaveNote(context.Background(), core.NotePatch{})

	assert.FileExists(t, filepath.Join(dir, "scratch.json"))
}

func TestNew_MustExistRejectsMissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := quickdrop.New(missing,
		quickdrop.WithForceTemp(true),
		quickdrop.WithMustExist(true),
	)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(quickdrop.Version))
}
