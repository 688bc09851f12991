package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/sabinadams/schematic"
	"github.com/sabinadams/schematic/pkg/extract"
	"github.com/sabinadams/schematic/pkg/schema"
)

type extraction struct {
	Document string `json:"document"`
	*extract.Result
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the validated annotations of one or more model documents",
	Long: `Extract parses and validates every annotation in the model documents matched by
--schema (a path or a doublestar pattern such as "prisma/**/*.json") and prints them as JSON.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		files, err := schematic.ResolveDocuments(requireSchema())
		if err != nil {
			fatal("Error resolving model documents", err)
		}

		gen, err := newGenerator()
		if err != nil {
			fatal("Error loading config", err)
		}

		out := make([]extraction, 0, len(files))
		for _, f := range files {
			doc, err := schema.ReadFile(f)
			if err != nil {
				fatal("Error reading model document", err)
			}
			res, err := gen.Extract(doc)
			if err != nil {
				fatal("Error extracting annotations from "+f, err)
			}
			out = append(out, extraction{Document: f, Result: res})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Error encoding JSON", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
