package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [id]",
	Short: "Pin a note to the top of the list",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setPinned(args[0], true)
	},
}

var unpinCmd = &cobra.Command{
	Use:   "unpin [id]",
	Short: "Unpin a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setPinned(args[0], false)
	},
}

func setPinned(id string, pinned bool) {
	store, _ := openStore()
	ctx := context.Background()

	if store.NoteByID(ctx, id) == nil {
		fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
		os.Exit(1)
	}

	store.SaveNote(ctx, core.NotePatch{ID: id, Pinned: core.Bool(pinned)})
	if pinned {
		fmt.Printf("Pinned %s\n", id)
	} else {
		fmt.Printf("Unpinned %s\n", id)
	}
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}
