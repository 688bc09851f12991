package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/sabinadams/schematic/pkg/annotation"
	"github.com/sabinadams/schematic/pkg/config"
	"github.com/sabinadams/schematic/pkg/core"
	"github.com/sabinadams/schematic/pkg/extract"
	"github.com/sabinadams/schematic/pkg/schema"
	"github.com/sabinadams/schematic/pkg/state"
)

// Generator ties extraction, snapshot building and state persistence together.
type Generator struct {
	opts *options

	mu        sync.RWMutex
	builds    int
	lastHash  string
	lastBuild *time.Time
	watching  bool
}

// New creates a Generator. Unset options fall back to the defaults.
//
//	gen := schematic.New(schematic.WithPrefix("db"))
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.config.AnnotationPrefix == "" {
		o.config.AnnotationPrefix = annotation.DefaultPrefix
	}
	if o.config.StateFilePath == "" {
		o.config.StateFilePath = state.DefaultFile
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	if o.debounce <= 0 {
		o.debounce = 100 * time.Millisecond
	}
	if o.read == nil {
		o.read = state.ReadJSONFile
	}
	return &Generator{opts: o}
}

// Config returns the effective configuration.
func (g *Generator) Config() config.Config {
	return g.opts.config
}

// StatePath returns where the snapshot for documentPath lives.
func (g *Generator) StatePath(documentPath string) string {
	return state.ResolvePath(g.opts.config.StateFilePath, documentPath)
}

// Extract returns the validated annotations of doc.
func (g *Generator) Extract(doc *schema.Document) (*extract.Result, error) {
	return extract.New(g.opts.config.AnnotationPrefix, extract.WithLogger(g.opts.logger)).Extract(doc)
}

// Build creates a snapshot of doc without persisting it.
func (g *Generator) Build(doc *schema.Document) (*core.Snapshot, error) {
	b := &state.Builder{
		Prefix: g.opts.config.AnnotationPrefix,
		Clock:  g.opts.clock,
		Logger: g.opts.logger,
	}
	return b.Build(doc)
}

// Generate reads the model document at documentPath, builds its snapshot and
// writes it to the configured state file.
func (g *Generator) Generate(ctx context.Context, documentPath string) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := schema.ReadFile(documentPath)
	if err != nil {
		return nil, err
	}

	snap, err := g.Build(doc)
	if err != nil {
		return nil, err
	}

	path := g.StatePath(documentPath)
	if err := state.Write(path, snap); err != nil {
		return nil, fmt.Errorf("failed to write state file: %w", err)
	}

	g.record(snap)
	g.opts.logger.Info("snapshot written", "path", path, "schema_hash", snap.SchemaHash, "indexes", len(snap.Indexes))
	return snap, nil
}

// LoadPrevious loads the snapshot persisted for documentPath by an earlier run.
func (g *Generator) LoadPrevious(ctx context.Context, documentPath string) (*core.Snapshot, error) {
	l := &state.Loader{Read: g.opts.read}
	return l.Load(ctx, g.opts.config.StateFilePath, documentPath)
}

func (g *Generator) record(snap *core.Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.opts.clock()
	g.builds++
	g.lastHash = snap.SchemaHash
	g.lastBuild = &now
}

func (g *Generator) setWatching(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watching = active
}
