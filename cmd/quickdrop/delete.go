package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deletePurge bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Move a note to the trash",
	Long: `Soft-delete a note: it moves to the trash bin and can be restored with
'quickdrop restore'. With --purge the note is removed permanently instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()
		ctx := context.Background()
		id := args[0]

		if deletePurge {
			if !store.PermanentlyDeleteNote(ctx, id) {
				fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
				os.Exit(1)
			}
			fmt.Printf("Permanently deleted %s\n", id)
			return
		}

		if !store.DeleteNote(ctx, id) {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", id)
			os.Exit(1)
		}
		fmt.Printf("Moved %s to trash\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deletePurge, "purge", false, "Delete permanently instead of moving to trash")
}
