package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List drafts",
	Long:  `List every draft, including drafts sitting in the trash.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		for _, note := range store.DraftNotes(context.Background()) {
			fmt.Println(formatLine(note))
		}
	},
}

var draftsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Permanently delete every draft",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		removed := store.DeleteAllDrafts(context.Background())
		fmt.Printf("Removed %d draft(s)\n", removed)
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish [id]",
	Short: "Publish a draft",
	Long:  `Turn a draft into a regular note. A draft still titled "Draft" gets the default title.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()

		note := store.PublishDraft(context.Background(), args[0])
		if note == nil {
			fmt.Fprintf(os.Stderr, "No draft with ID: %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Published %q (%s)\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(draftsCmd)
	draftsCmd.AddCommand(draftsClearCmd)
	rootCmd.AddCommand(publishCmd)
}
