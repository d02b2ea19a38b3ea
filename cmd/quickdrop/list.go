package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"
)

var (
	listJSON       bool
	listDrafts     bool
	listTrash      bool
	listAll        bool
	listSort       string
	listQuery      string
	listCategories []string
	listTags       []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List active notes (the main view). --drafts and --trash switch to the
drafts and trash views; --all lists everything regardless of state.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		ctx := context.Background()

		var notes []core.Note
		switch {
		case listAll:
			notes = store.AllNotes(ctx)
		case listDrafts:
			notes = store.DraftNotes(ctx)
		case listTrash:
			notes = store.DeletedNotes(ctx)
		default:
			notes = store.ActiveNotes(ctx)
		}

		notes = core.FilterNotes(notes, core.Filter{
			Query:      listQuery,
			Categories: listCategories,
			Tags:       listTags,
		})
		core.SortNotes(notes, core.SortOption(listSort))

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			fmt.Println(formatLine(note))
		}
	},
}

func formatLine(note core.Note) string {
	var flags []string
	if note.Pinned {
		flags = append(flags, "pinned")
	}
	if note.IsDraft {
		flags = append(flags, "draft")
	}
	if note.Deleted {
		flags = append(flags, "deleted")
	}

	line := fmt.Sprintf("%s  %s [%s]", note.ID, note.Title, note.Category)
	if len(note.Tags) > 0 {
		line += " #" + strings.Join(note.Tags, " #")
	}
	if len(flags) > 0 {
		line += " (" + strings.Join(flags, ", ") + ")"
	}
	return line
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listDrafts, "drafts", false, "List drafts (including deleted ones)")
	listCmd.Flags().BoolVar(&listTrash, "trash", false, "List soft-deleted notes")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List every note regardless of state")
	listCmd.Flags().StringVar(&listSort, "sort", "recent", "Sort order: recent, code, text, json")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter by free-text query (matches tags and category too)")
	listCmd.Flags().StringSliceVar(&listCategories, "category", nil, "Filter by category (repeatable)")
	listCmd.Flags().StringSliceVar(&listTags, "tag", nil, "Filter by tag (repeatable)")
}
