package core

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store owns the canonical collection of notes (active, draft and
// soft-deleted) and provides atomic-per-call operations over it.
//
// Every operation reads the full collection from the backend, mutates an
// in-memory copy, and writes the full collection back before returning.
// That makes a single logical writer safe and keeps the backend the sole
// source of truth; concurrent writers are last-write-wins at the
// granularity of the whole collection.
//
// The store never returns errors for its documented failure modes:
// unreadable or corrupt backend data degrades to an empty collection, a
// failed write is logged and dropped, and operations targeting an unknown
// ID report false/nil instead of failing.
type Store struct {
	backend Backend
	logger  *slog.Logger
	clock   func() time.Time

	eventBufferSize int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for degrade-path diagnostics.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithClock overrides the time source. Intended for tests that need
// deterministic timestamps.
func WithClock(clock func() time.Time) StoreOption {
	return func(s *Store) { s.clock = clock }
}

// WithEventBuffer sets the buffer size of channels returned by Watch.
func WithEventBuffer(size int) StoreOption {
	return func(s *Store) { s.eventBufferSize = size }
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend, opts ...StoreOption) *Store {
	s := &Store{
		backend:         backend,
		clock:           time.Now,
		eventBufferSize: 16,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// load reads the whole collection, degrading to empty on any backend
// failure. This is the silent recovery path: the caller never sees the
// error, only an empty result.
func (s *Store) load(ctx context.Context) []Note {
	notes, err := s.backend.Load(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to load notes, treating collection as empty", "error", err)
		}
		return []Note{}
	}
	if notes == nil {
		return []Note{}
	}
	return notes
}

// persist rewrites the whole collection. A failed write is logged and
// otherwise dropped; the in-memory result of the operation still stands.
func (s *Store) persist(ctx context.Context, notes []Note) {
	if err := s.backend.Save(ctx, notes); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to persist notes, write dropped", "error", err)
		}
	}
}

// AllNotes returns every note in the collection, regardless of state.
func (s *Store) AllNotes(ctx context.Context) []Note {
	return s.load(ctx)
}

// ActiveNotes returns notes that are neither deleted nor drafts.
// This is the main list view.
func (s *Store) ActiveNotes(ctx context.Context) []Note {
	return filter(s.load(ctx), Note.Active)
}

// DraftNotes returns every draft, including deleted ones. A deleted
// draft therefore shows up in both the drafts view and the trash view;
// that mirrors the shipped behavior and is kept deliberately.
func (s *Store) DraftNotes(ctx context.Context) []Note {
	return filter(s.load(ctx), func(n Note) bool { return n.IsDraft })
}

// DeletedNotes returns soft-deleted notes (the trash view).
func (s *Store) DeletedNotes(ctx context.Context) []Note {
	return filter(s.load(ctx), func(n Note) bool { return n.Deleted })
}

// NoteByID returns the note with the given ID, or nil if none exists.
func (s *Store) NoteByID(ctx context.Context, id string) *Note {
	notes := s.load(ctx)
	for i := range notes {
		if notes[i].ID == id {
			n := notes[i]
			return &n
		}
	}
	return nil
}

// SaveNote creates or updates a note.
//
// When the patch carries an ID matching an existing note, the patch is
// merged over it field by field; untouched fields are preserved and
// UpdatedAt is refreshed. Otherwise a new note is created: a fresh ID is
// generated (a supplied but unmatched ID is discarded), unset fields
// receive their defaults, and CreatedAt/UpdatedAt are both set to now.
//
// The store performs no validation of titles or content; permissive
// defaulting is the contract, strictness belongs to the caller.
func (s *Store) SaveNote(ctx context.Context, patch NotePatch) Note {
	notes := s.load(ctx)
	now := s.clock().UTC()

	if patch.ID != "" {
		for i := range notes {
			if notes[i].ID == patch.ID {
				patch.Apply(&notes[i])
				notes[i].UpdatedAt = now
				s.persist(ctx, notes)
				return notes[i]
			}
		}
	}

	note := Note{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Category:  DefaultCategory,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	patch.ID = ""
	patch.Apply(&note)

	notes = append(notes, note)
	s.persist(ctx, notes)
	return note
}

// DeleteNote soft-deletes a note. It reports whether a note was found;
// an unknown ID is a no-op with no write.
func (s *Store) DeleteNote(ctx context.Context, id string) bool {
	return s.setDeleted(ctx, id, true)
}

// RestoreNote clears the soft-delete flag, undoing DeleteNote.
func (s *Store) RestoreNote(ctx context.Context, id string) bool {
	return s.setDeleted(ctx, id, false)
}

func (s *Store) setDeleted(ctx context.Context, id string, deleted bool) bool {
	notes := s.load(ctx)
	for i := range notes {
		if notes[i].ID == id {
			notes[i].Deleted = deleted
			notes[i].UpdatedAt = s.clock().UTC()
			s.persist(ctx, notes)
			return true
		}
	}
	return false
}

// PermanentlyDeleteNote physically removes a note from the collection.
// Irreversible. Reports whether a note was actually removed.
func (s *Store) PermanentlyDeleteNote(ctx context.Context, id string) bool {
	notes := s.load(ctx)
	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		return false
	}
	s.persist(ctx, kept)
	return true
}

// AutoSaveDraft saves in-progress edits as a draft. It forces IsDraft
// and substitutes the draft title sentinel when no usable title was
// supplied. Callers trigger this on their own schedule (debounced
// editors, background timers); the store itself does not debounce.
func (s *Store) AutoSaveDraft(ctx context.Context, patch NotePatch) Note {
	patch.IsDraft = Bool(true)
	if patch.Title == nil || strings.TrimSpace(*patch.Title) == "" {
		patch.Title = String(DraftTitle)
	}
	return s.SaveNote(ctx, patch)
}

// PublishDraft turns a draft into a regular note. It returns nil, with
// no write, when the ID is unknown or the note is not a draft. A title
// still carrying the draft sentinel is rewritten to the default title.
func (s *Store) PublishDraft(ctx context.Context, id string) *Note {
	notes := s.load(ctx)
	for i := range notes {
		if notes[i].ID == id {
			if !notes[i].IsDraft {
				return nil
			}
			notes[i].IsDraft = false
			if notes[i].Title == DraftTitle {
				notes[i].Title = DefaultTitle
			}
			notes[i].UpdatedAt = s.clock().UTC()
			s.persist(ctx, notes)
			n := notes[i]
			return &n
		}
	}
	return nil
}

// DeleteAllDrafts physically removes every draft, regardless of its
// deleted state, and returns the count removed. Nothing is written when
// there are no drafts.
func (s *Store) DeleteAllDrafts(ctx context.Context) int {
	notes := s.load(ctx)
	kept := notes[:0]
	for _, n := range notes {
		if !n.IsDraft {
			kept = append(kept, n)
		}
	}
	removed := len(notes) - len(kept)
	if removed == 0 {
		return 0
	}
	s.persist(ctx, kept)
	return removed
}

// EmptyTrash physically removes every soft-deleted note in one pass and
// returns the count removed. Nothing is written when the trash is empty.
func (s *Store) EmptyTrash(ctx context.Context) int {
	notes := s.load(ctx)
	kept := notes[:0]
	for _, n := range notes {
		if !n.Deleted {
			kept = append(kept, n)
		}
	}
	removed := len(notes) - len(kept)
	if removed == 0 {
		return 0
	}
	s.persist(ctx, kept)
	return removed
}

// SearchNotes performs a case-insensitive substring match over the
// title, description and content of active notes. Drafts and deleted
// notes are excluded; tags and category are deliberately not searched.
func (s *Store) SearchNotes(ctx context.Context, query string) []Note {
	q := strings.ToLower(query)
	return filter(s.ActiveNotes(ctx), func(n Note) bool {
		return strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Description), q) ||
			strings.Contains(strings.ToLower(n.Content), q)
	})
}

func filter(notes []Note, keep func(Note) bool) []Note {
	out := []Note{}
	for _, n := range notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
