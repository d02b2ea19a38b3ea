// Package quickdrop is the Composition Root for the quick-drop application.
//
// It connects the core note store (Domain Layer) with the storage
// backends (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// quick-drop is a local-first note keeper. The entire collection of
// notes (active, drafts and trash) lives in one serialized blob behind
// a tiny Backend interface, and every operation is a synchronous
// read-modify-write of that blob. That keeps a single logical writer
// trivially correct, at the cost of last-writer-wins when two processes
// share the same data file.
//
// Features:
//
//   - **Soft delete**: notes move to a trash bin and can be restored or
//     purged permanently.
//   - **Drafts**: in-progress notes are auto-saved as drafts and
//     published exactly once.
//   - **Pinning, tags, categories**: display-time organization with
//     sorting and filtering helpers.
//   - **Default Backend (single JSON file)**: atomic whole-collection
//     writes, change notification via fsnotify.
//   - **Extensible**: any storage that can hold a serialized blob can
//     implement core.Backend (memory adapter included).
//
// Usage:
//
//	// Build a store over the default per-user data directory
//	store, err := quickdrop.New("",
//		quickdrop.WithLogger(logger),
//	)
//
//	// Create a note
//	note := store.SaveNote(ctx, core.NotePatch{
//		Title:   core.String("Shopping"),
//		Content: core.String("milk, eggs"),
//	})
package quickdrop
