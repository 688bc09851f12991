package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the state snapshot whenever the model document changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		docPath := requireSchema()

		gen, err := newGenerator()
		if err != nil {
			fatal("Error loading config", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if _, err := gen.Generate(ctx, docPath); err != nil {
			slog.Warn("initial build failed", "error", err)
		}

		results, err := gen.Watch(ctx, docPath)
		if err != nil {
			fatal("Error starting watcher", err)
		}

		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", docPath)
		for res := range results {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", res.Err)
				continue
			}
			fmt.Printf("Rebuilt %s (%d indexes)\n", gen.StatePath(docPath), len(res.Snapshot.Indexes))
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
