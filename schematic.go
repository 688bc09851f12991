package schematic

import (
	"context"
	"log/slog"
	"time"

	"github.com/sabinadams/schematic/internal/platform"
	"github.com/sabinadams/schematic/pkg/config"
	"github.com/sabinadams/schematic/pkg/core"
	"github.com/sabinadams/schematic/pkg/extract"
	"github.com/sabinadams/schematic/pkg/schema"
	"github.com/sabinadams/schematic/pkg/state"
)

// --- Types ---

// Generator is a public alias for the platform generator.
type Generator = platform.Generator

// GeneratorState is a public alias for the generator's introspection state.
type GeneratorState = platform.GeneratorState

// BuildResult is a public alias for the outcome of a watched rebuild.
type BuildResult = platform.BuildResult

// --- Configuration ---

// Option defines a functional option for configuring the Generator.
type Option = platform.Option

// WithConfig replaces the whole configuration.
func WithConfig(cfg config.Config) Option {
	return platform.WithConfig(cfg)
}

// WithPrefix sets the annotation prefix (default "schematic").
func WithPrefix(prefix string) Option {
	return platform.WithPrefix(prefix)
}

// WithStateFile sets the state file path, relative to the model document.
func WithStateFile(path string) Option {
	return platform.WithStateFile(path)
}

// WithLogger sets the logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithDebounce sets the settle time used by Watch.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithStateReader overrides how previous snapshots are read.
func WithStateReader(read state.ReadFunc) Option {
	return platform.WithStateReader(read)
}

// --- Factory ---

// New creates a new Generator.
func New(opts ...Option) *Generator {
	return platform.New(opts...)
}

// --- Operations ---

// Extract returns the validated annotations of doc for the given prefix.
func Extract(doc *schema.Document, prefix string) (*extract.Result, error) {
	return extract.Extract(doc, prefix)
}

// Build creates a snapshot of doc.
func Build(doc *schema.Document, cfg config.Config) (*core.Snapshot, error) {
	return state.Build(doc, state.Settings{AnnotationPrefix: cfg.AnnotationPrefix})
}

// Load reads the snapshot at snapshotPath, resolved against documentPath's directory.
func Load(ctx context.Context, snapshotPath, documentPath string) (*core.Snapshot, error) {
	return state.Load(ctx, snapshotPath, documentPath)
}

// Hash returns the SHA-256 content digest used as Snapshot.SchemaHash.
func Hash(v any) (string, error) {
	return state.Hash(v)
}

// --- Utils ---

// FindConfig looks upwards from startDir for a schematic.yaml file.
func FindConfig(startDir string) (string, error) {
	return platform.FindConfig(startDir)
}

// ResolveDocuments expands a path or doublestar pattern into model document files.
func ResolveDocuments(pattern string) ([]string, error) {
	return platform.ResolveDocuments(pattern)
}
