package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the persisted state snapshot",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the snapshot written by the last generate run",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		docPath := requireSchema()

		gen, err := newGenerator()
		if err != nil {
			fatal("Error loading config", err)
		}

		snap, err := gen.LoadPrevious(context.Background(), docPath)
		if err != nil {
			fatal("Error loading state", err)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snap); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
}
