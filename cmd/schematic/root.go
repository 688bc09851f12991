package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sabinadams/schematic"
	"github.com/sabinadams/schematic/pkg/config"
)

var (
	verbose    bool
	configPath string
	prefix     string
	schemaPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "schematic",
	Short: "Extract database intent from schema annotations",
	Long: `schematic reads @schematic.<kind>(...) annotations from the documentation of
your data models, validates them and records them in a content-hashed state file.`,
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
	SilenceErrors: true,
}

// Execute runs the root command. Errors are returned, not printed, so that
// main reports them through fatal like every other failure.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to schematic.yaml (searched upwards by default)")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "", "Annotation prefix (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&schemaPath, "schema", "s", "", "Path to the model document (JSON or YAML)")
}

// loadConfig resolves the configuration file and applies flag overrides.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, err
		}
		if found, err := schematic.FindConfig(wd); err == nil {
			path = found
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		slog.Debug("config loaded", "path", path)
	}
	if prefix != "" {
		cfg.AnnotationPrefix = prefix
	}
	return cfg, nil
}

// newGenerator builds a Generator from the resolved configuration.
func newGenerator() (*schematic.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return schematic.New(
		schematic.WithConfig(cfg),
		schematic.WithLogger(slog.Default()),
	), nil
}

func requireSchema() string {
	if schemaPath == "" {
		fatal("Missing model document", fmt.Errorf("--schema is required"))
	}
	return schemaPath
}
