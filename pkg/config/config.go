// Package config holds the generator configuration.
//
// Only AnnotationPrefix and StateFilePath are read by the annotation pipeline;
// the remaining settings are passed through to SQL and migration collaborators.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/sabinadams/schematic/pkg/core"
)

// Default values.
const (
	DefaultAnnotationPrefix = "schematic"
	DefaultStateFilePath    = "./.schematic-state.json"
	DefaultOutputPath       = "./migrations"
)

// Providers lists the supported database providers.
var Providers = []string{"postgresql", "mysql", "sqlite", "sqlserver", "cockroachdb"}

var identifier = regexp.MustCompile(`^\w+$`)

// Config is the configuration surface of the generator.
type Config struct {
	AnnotationPrefix     string `yaml:"annotationPrefix" json:"annotationPrefix"`
	StateFilePath        string `yaml:"stateFilePath" json:"stateFilePath"`
	OutputPath           string `yaml:"outputPath" json:"outputPath"`
	AutoIndexForeignKeys bool   `yaml:"autoIndexForeignKeys" json:"autoIndexForeignKeys"`
	DatabaseProvider     string `yaml:"databaseProvider" json:"databaseProvider"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		AnnotationPrefix: DefaultAnnotationPrefix,
		StateFilePath:    DefaultStateFilePath,
		OutputPath:       DefaultOutputPath,
	}
}

// Load reads a YAML configuration file over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.AnnotationPrefix == "" {
		c.AnnotationPrefix = DefaultAnnotationPrefix
	}
	if c.StateFilePath == "" {
		c.StateFilePath = DefaultStateFilePath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
}

// Validate checks the settings needed to generate migrations.
func (c Config) Validate() error {
	if !identifier.MatchString(c.AnnotationPrefix) {
		return &core.ConfigError{Key: "annotationPrefix", Reason: fmt.Sprintf("%q is not an identifier", c.AnnotationPrefix)}
	}
	if c.StateFilePath == "" {
		return &core.ConfigError{Key: "stateFilePath", Reason: "is required"}
	}
	if c.DatabaseProvider == "" {
		return &core.ConfigError{Key: "databaseProvider", Reason: "is required"}
	}
	for _, p := range Providers {
		if c.DatabaseProvider == p {
			return nil
		}
	}
	return &core.ConfigError{Key: "databaseProvider", Reason: fmt.Sprintf("unsupported provider %q", c.DatabaseProvider)}
}
