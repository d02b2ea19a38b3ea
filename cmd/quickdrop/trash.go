package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "List notes in the trash",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		for _, note := range store.DeletedNotes(context.Background()) {
			fmt.Println(formatLine(note))
		}
	},
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently delete everything in the trash",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()

		removed := store.EmptyTrash(context.Background())
		fmt.Printf("Removed %d note(s) from trash\n", removed)
	},
}

func init() {
	rootCmd.AddCommand(trashCmd)
	trashCmd.AddCommand(trashEmptyCmd)
}
