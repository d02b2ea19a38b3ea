package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	quickdrop "github.com/mdyhakash/quick-drop"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quickdrop",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("quickdrop version %s\n", strings.TrimSpace(quickdrop.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
