package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"
)

// editCmd opens a note in $EDITOR. While the editor is running, a
// background loop snapshots the scratch file into a draft on the
// configured autosave interval, so a crashed editor session leaves a
// recoverable draft behind. A clean exit saves (and publishes) the note.
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note in your editor",
	Long: `Edit a note's body in your configured editor. Without an ID a new note
is created. In-progress changes are periodically auto-saved as a draft;
exiting the editor cleanly publishes the result.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, config := openStore()
		ctx := context.Background()

		var initial string
		var noteID string
		var keepTitle *string
		if len(args) == 1 {
			note := store.NoteByID(ctx, args[0])
			if note == nil {
				fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
				os.Exit(1)
			}
			noteID = note.ID
			initial = note.Content
			// Autosave patches must carry the current title, or the
			// draft title sentinel would overwrite it.
			keepTitle = core.String(note.Title)
		}

		scratch := filepath.Join(os.TempDir(), fmt.Sprintf("quickdrop-edit-%d.md", os.Getpid()))
		if err := os.WriteFile(scratch, []byte(initial), 0600); err != nil {
			fatal("Failed to create scratch file", err)
		}
		defer os.Remove(scratch)

		// draftID tracks the note receiving autosaves: the edited note
		// itself, or the draft created by the first autosave. Guarded
		// because the autosave goroutine updates it.
		var mu sync.Mutex
		draftID := noteID
		autosaveCtx, stopAutosave := context.WithCancel(ctx)
		lifecycle.Go(autosaveCtx, func(ctx context.Context) error {
			ticker := time.NewTicker(config.AutosaveInterval)
			defer ticker.Stop()

			last := initial
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					data, err := os.ReadFile(scratch)
					if err != nil {
						continue
					}
					content := string(data)
					if content == last {
						continue
					}
					last = content
					mu.Lock()
					saved := autosaveTick(ctx, store, draftID, keepTitle, content)
					draftID = saved.ID
					mu.Unlock()
					slog.Debug("auto-saved draft", "id", saved.ID)
				}
			}
		})

		editor := exec.Command(config.Editor, scratch)
		editor.Stdin = os.Stdin
		editor.Stdout = os.Stdout
		editor.Stderr = os.Stderr
		err := editor.Run()
		stopAutosave()
		mu.Lock()
		finalID := draftID
		mu.Unlock()
		if err != nil {
			if finalID != "" {
				fatal(fmt.Sprintf("Editor exited with an error; draft %s keeps your changes", finalID), err)
			}
			fatal("Editor exited with an error", err)
		}

		data, err := os.ReadFile(scratch)
		if err != nil {
			fatal("Failed to read scratch file", err)
		}

		note := finishEditSession(ctx, store, finalID, string(data))
		fmt.Printf("Saved %q (%s)\n", note.Title, note.ID)
	},
}

// autosaveTick promotes the scratch buffer into a draft. The title is
// carried along when a titled note is being edited; for a fresh session
// it stays nil so the first tick creates a sentinel-titled draft.
func autosaveTick(ctx context.Context, store *core.Store, id string, title *string, content string) core.Note {
	return store.AutoSaveDraft(ctx, core.NotePatch{
		ID:      id,
		Title:   title,
		Content: core.String(content),
	})
}

// finishEditSession writes the final buffer and, when the session left a
// draft behind, publishes it so sentinel titles become the default title.
func finishEditSession(ctx context.Context, store *core.Store, id, content string) core.Note {
	note := store.SaveNote(ctx, core.NotePatch{
		ID:      id,
		Content: core.String(content),
	})
	if note.IsDraft {
		if published := store.PublishDraft(ctx, note.ID); published != nil {
			note = *published
		}
	}
	return note
}

func init() {
	rootCmd.AddCommand(editCmd)
}
