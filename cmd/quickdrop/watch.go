package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream note change events",
	Long: `Watch the data file for changes made by other processes and print one
line per created, modified or deleted note. Useful while a second
quickdrop (or anything else) writes the same data directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		events, err := store.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		fmt.Fprintln(os.Stderr, "Watching for changes (Ctrl-C to stop)...")
		for event := range events {
			fmt.Println(event)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob over data file names to watch (default: the collection file)")
}
