package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"
)

var (
	newTitle       string
	newDescription string
	newContent     string
	newCategory    string
	newTags        []string
	newPinned      bool
	newStdin       bool
	newDraft       bool
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a new note. The body comes from --content or, with --stdin, from standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		store, config := openStore()

		content := newContent
		if newStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		patch := core.NotePatch{
			Content: core.String(content),
			Pinned:  core.Bool(newPinned),
		}
		if newTitle != "" {
			patch.Title = core.String(newTitle)
		}
		if newDescription != "" {
			patch.Description = core.String(newDescription)
		}
		if newCategory != "" {
			patch.Category = core.String(newCategory)
		} else if config.DefaultCategory != "" {
			patch.Category = core.String(config.DefaultCategory)
		}
		if len(newTags) > 0 {
			patch.Tags = newTags
		}

		ctx := context.Background()
		var note core.Note
		if newDraft {
			note = store.AutoSaveDraft(ctx, patch)
		} else {
			note = store.SaveNote(ctx, patch)
		}

		fmt.Printf("Created %q (%s)\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "Short description")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note body")
	newCmd.Flags().StringVar(&newCategory, "category", "", "Category (text, code, json, ...)")
	newCmd.Flags().StringSliceVar(&newTags, "tag", nil, "Tags (repeatable)")
	newCmd.Flags().BoolVar(&newPinned, "pin", false, "Pin the note")
	newCmd.Flags().BoolVar(&newStdin, "stdin", false, "Read the body from standard input")
	newCmd.Flags().BoolVar(&newDraft, "draft", false, "Save as a draft instead of publishing")
}
