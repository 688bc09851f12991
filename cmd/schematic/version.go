package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sabinadams/schematic"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of schematic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("schematic version %s\n", strings.TrimSpace(schematic.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
