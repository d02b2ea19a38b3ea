package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdyhakash/quick-drop/pkg/adapters/memory"
	"github.com/mdyhakash/quick-drop/pkg/core"
)

// fakeClock hands out strictly increasing timestamps one second apart,
// so updatedAt comparisons are deterministic.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newTestStore(t *testing.T) (*core.Store, *memory.Backend) {
	t.Helper()
	backend := memory.NewBackend()
	store := core.NewStore(backend, core.WithClock(newFakeClock().Now))
	return store, backend
}

func TestSaveNote_CreateAppliesDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	note := store.SaveNote(ctx, core.NotePatch{})

	require.NotEmpty(t, note.ID)
	assert.Equal(t, "Untitled", note.Title)
	assert.Equal(t, "text", note.Category)
	assert.Equal(t, []string{}, note.Tags)
	assert.Empty(t, note.Description)
	assert.Empty(t, note.Content)
	assert.False(t, note.Pinned)
	assert.False(t, note.IsDraft)
	assert.False(t, note.Deleted)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestSaveNote_IDsAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		note := store.SaveNote(ctx, core.NotePatch{Title: core.String("n")})
		require.False(t, seen[note.ID], "duplicate ID %s", note.ID)
		seen[note.ID] = true
	}
}

func TestSaveNote_PartialUpdatePreservesFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created := store.SaveNote(ctx, core.NotePatch{Title: core.String("A")})
	updated := store.SaveNote(ctx, core.NotePatch{ID: created.ID, Content: core.String("B")})

	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "B", updated.Content)
	assert.Equal(t, created.ID, updated.ID)
}

func TestSaveNote_TimestampSemantics(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created := store.SaveNote(ctx, core.NotePatch{Title: core.String("t")})
	first := store.SaveNote(ctx, core.NotePatch{ID: created.ID, Content: core.String("x")})
	second := store.SaveNote(ctx, core.NotePatch{ID: created.ID, Content: core.String("y")})

	assert.Equal(t, created.CreatedAt, first.CreatedAt, "createdAt must never change")
	assert.Equal(t, created.CreatedAt, second.CreatedAt)
	assert.True(t, first.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestSaveNote_UnknownIDCreatesFreshNote(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	note := store.SaveNote(ctx, core.NotePatch{ID: "no-such-id", Title: core.String("ghost")})

	assert.NotEqual(t, "no-such-id", note.ID)
	assert.Equal(t, "ghost", note.Title)
	assert.Len(t, store.AllNotes(ctx), 1)
}

func TestDeleteAndRestore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	note := store.SaveNote(ctx, core.NotePatch{
		Title:   core.String("Shopping"),
		Content: core.String("milk, eggs"),
	})

	active := store.ActiveNotes(ctx)
	require.Len(t, active, 1)
	assert.Equal(t, "Shopping", active[0].Title)

	require.True(t, store.DeleteNote(ctx, note.ID))
	assert.Empty(t, store.ActiveNotes(ctx))
	deleted := store.DeletedNotes(ctx)
	require.Len(t, deleted, 1)
	assert.True(t, deleted[0].UpdatedAt.After(note.UpdatedAt))

	require.True(t, store.RestoreNote(ctx, note.ID))
	restored := store.ActiveNotes(ctx)
	require.Len(t, restored, 1)
	assert.Empty(t, store.DeletedNotes(ctx))
	assert.Equal(t, note.CreatedAt, restored[0].CreatedAt)
	assert.True(t, restored[0].UpdatedAt.After(deleted[0].UpdatedAt))
}

func TestDeleteNote_UnknownIDIsNoOp(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	store.SaveNote(ctx, core.NotePatch{Title: core.String("keep")})
	writes := backend.Saves

	assert.False(t, store.DeleteNote(ctx, "nonexistent"))
	assert.Equal(t, writes, backend.Saves, "a miss must not write")
	assert.Len(t, store.AllNotes(ctx), 1)
}

func TestPermanentlyDeleteNote(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	note := store.SaveNote(ctx, core.NotePatch{Title: core.String("gone")})

	require.True(t, store.PermanentlyDeleteNote(ctx, note.ID))
	assert.Nil(t, store.NoteByID(ctx, note.ID))

	writes := backend.Saves
	assert.False(t, store.PermanentlyDeleteNote(ctx, note.ID))
	assert.Equal(t, writes, backend.Saves)
}

func TestAutoSaveDraft(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	note := store.AutoSaveDraft(ctx, core.NotePatch{
		Title:   core.String(""),
		Content: core.String("hello"),
	})

	assert.Equal(t, "Draft", note.Title)
	assert.True(t, note.IsDraft)
	assert.Equal(t, "hello", note.Content)

	// Whitespace-only titles get the sentinel too.
	ws := store.AutoSaveDraft(ctx, core.NotePatch{Title: core.String("   ")})
	assert.Equal(t, "Draft", ws.Title)

	// A real title survives.
	titled := store.AutoSaveDraft(ctx, core.NotePatch{Title: core.String("WIP idea")})
	assert.Equal(t, "WIP idea", titled.Title)
}

func TestAutoSaveDraft_UpdatesExistingDraft(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("v1")})
	second := store.AutoSaveDraft(ctx, core.NotePatch{ID: first.ID, Content: core.String("v2")})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "v2", second.Content)
	assert.Len(t, store.AllNotes(ctx), 1)
}

func TestPublishDraft(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	draft := store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("body")})
	require.Equal(t, "Draft", draft.Title)

	published := store.PublishDraft(ctx, draft.ID)
	require.NotNil(t, published)
	assert.False(t, published.IsDraft)
	assert.Equal(t, "Untitled", published.Title, "sentinel title is rewritten")

	// Publishing is one-way: a second publish is a no-op miss.
	writes := backend.Saves
	assert.Nil(t, store.PublishDraft(ctx, draft.ID))
	assert.Equal(t, writes, backend.Saves)
}

func TestPublishDraft_CustomTitlePreserved(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	draft := store.AutoSaveDraft(ctx, core.NotePatch{Title: core.String("My idea")})
	published := store.PublishDraft(ctx, draft.ID)

	require.NotNil(t, published)
	assert.Equal(t, "My idea", published.Title)
}

func TestPublishDraft_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Nil(t, store.PublishDraft(context.Background(), "nope"))
}

func TestDraftNotes_IncludesDeletedDrafts(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	draft := store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("wip")})
	require.True(t, store.DeleteNote(ctx, draft.ID))

	// A deleted draft shows up in both the drafts and trash views.
	assert.Len(t, store.DraftNotes(ctx), 1)
	assert.Len(t, store.DeletedNotes(ctx), 1)
	assert.Empty(t, store.ActiveNotes(ctx))
}

func TestDeleteAllDrafts(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("a")})
	deleted := store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("b")})
	store.DeleteNote(ctx, deleted.ID)
	store.SaveNote(ctx, core.NotePatch{Title: core.String("published")})

	assert.Equal(t, 2, store.DeleteAllDrafts(ctx), "removes deleted drafts too")
	assert.Len(t, store.AllNotes(ctx), 1)

	writes := backend.Saves
	assert.Equal(t, 0, store.DeleteAllDrafts(ctx))
	assert.Equal(t, writes, backend.Saves, "no write when nothing removed")
}

func TestEmptyTrash(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	keep := store.SaveNote(ctx, core.NotePatch{Title: core.String("keep")})
	trashedNote := store.SaveNote(ctx, core.NotePatch{Title: core.String("old")})
	store.DeleteNote(ctx, trashedNote.ID)
	trashedDraft := store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("wip")})
	store.DeleteNote(ctx, trashedDraft.ID)

	writes := backend.Saves
	assert.Equal(t, 2, store.EmptyTrash(ctx))
	assert.Equal(t, writes+1, backend.Saves, "bulk removal is a single write")

	remaining := store.AllNotes(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	writes = backend.Saves
	assert.Equal(t, 0, store.EmptyTrash(ctx))
	assert.Equal(t, writes, backend.Saves, "no write when trash is empty")
}

func TestSearchNotes(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	store.SaveNote(ctx, core.NotePatch{Title: core.String("Shopping list"), Content: core.String("milk, eggs")})
	store.SaveNote(ctx, core.NotePatch{Title: core.String("Meeting"), Description: core.String("weekly SYNC notes")})
	store.SaveNote(ctx, core.NotePatch{Title: core.String("Tagged"), Tags: []string{"milk"}})
	store.AutoSaveDraft(ctx, core.NotePatch{Content: core.String("milk thoughts")})
	trashed := store.SaveNote(ctx, core.NotePatch{Content: core.String("milk history")})
	store.DeleteNote(ctx, trashed.ID)

	milk := store.SearchNotes(ctx, "MILK")
	require.Len(t, milk, 1, "drafts, trash and tags are not searched")
	assert.Equal(t, "Shopping list", milk[0].Title)

	sync := store.SearchNotes(ctx, "sync")
	require.Len(t, sync, 1)
	assert.Equal(t, "Meeting", sync[0].Title)
}

func TestStore_DegradesOnBackendFailure(t *testing.T) {
	store, backend := newTestStore(t)
	ctx := context.Background()

	store.SaveNote(ctx, core.NotePatch{Title: core.String("x")})

	backend.FailLoads = true
	assert.Empty(t, store.AllNotes(ctx), "unreadable backend degrades to empty")
	assert.Nil(t, store.NoteByID(ctx, "anything"))
	assert.False(t, store.DeleteNote(ctx, "anything"))

	backend.FailLoads = false
	backend.FailSaves = true
	// A failed persist is swallowed; the operation still reports its
	// in-memory result.
	note := store.SaveNote(ctx, core.NotePatch{Title: core.String("y")})
	assert.Equal(t, "y", note.Title)
	assert.Len(t, store.AllNotes(ctx), 1, "dropped write never reached the backend")
}
