package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a note from the trash",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()

		if !store.RestoreNote(context.Background(), args[0]) {
			fmt.Fprintf(os.Stderr, "Note not found: %s\n", args[0])
			os.Exit(1)
		}
		fmt.Printf("Restored %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
