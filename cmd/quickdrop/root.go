package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mdyhakash/quick-drop/pkg/core"
	"github.com/spf13/cobra"

	quickdrop "github.com/mdyhakash/quick-drop"
)

var (
	verbose bool
	dataDir string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quickdrop",
	Short: "A local-first note keeper with drafts, tags and a trash bin",
	Long: `quickdrop keeps all of your notes in a single local data file.
Notes can be pinned, tagged, auto-saved as drafts, soft-deleted into a
trash bin and restored, searched, and exported as Markdown.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: user config dir)")
}

// openStore builds the store from the config file and global flags.
func openStore() (*core.Store, quickdrop.Config) {
	config, err := quickdrop.LoadConfig()
	if err != nil {
		fatal("Failed to load config", err)
	}

	path := dataDir
	if path == "" {
		path = config.DataDir
	}

	store, err := quickdrop.New(path, quickdrop.WithLogger(slog.Default()))
	if err != nil {
		fatal("Failed to open note store", err)
	}
	return store, config
}
