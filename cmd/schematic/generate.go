package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateConfig bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the state snapshot and write it next to the model document",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		docPath := requireSchema()

		gen, err := newGenerator()
		if err != nil {
			fatal("Error loading config", err)
		}
		if validateConfig {
			if err := gen.Config().Validate(); err != nil {
				fatal("Invalid config", err)
			}
		}

		snap, err := gen.Generate(context.Background(), docPath)
		if err != nil {
			fatal("Error generating state", err)
		}

		fmt.Printf("Wrote %s (%d indexes, schema %s)\n", gen.StatePath(docPath), len(snap.Indexes), snap.SchemaHash[:12])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVar(&validateConfig, "strict-config", false, "Fail when the database provider is not configured")
}
