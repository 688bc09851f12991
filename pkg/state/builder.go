// Package state builds, persists and loads snapshots of extracted annotations.
package state

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sabinadams/schematic/pkg/annotation"
	"github.com/sabinadams/schematic/pkg/core"
	"github.com/sabinadams/schematic/pkg/extract"
	"github.com/sabinadams/schematic/pkg/schema"
)

// TimeFormat is the layout of Snapshot.GeneratedAt (ISO-8601, UTC, milliseconds).
const TimeFormat = "2006-01-02T15:04:05.000Z"

// Settings is the part of the configuration the builder consumes.
type Settings struct {
	AnnotationPrefix string
}

// Builder assembles snapshots from model documents.
type Builder struct {
	Prefix string
	Clock  func() time.Time
	Logger *slog.Logger
}

// NewBuilder creates a Builder for the given annotation prefix.
func NewBuilder(prefix string) *Builder {
	return &Builder{Prefix: prefix}
}

// Build is a shorthand for NewBuilder(settings.AnnotationPrefix).Build(doc).
func Build(doc *schema.Document, settings Settings) (*core.Snapshot, error) {
	return NewBuilder(settings.AnnotationPrefix).Build(doc)
}

// Build hashes the whole document, extracts its annotations and stamps the
// current time. Only "index" records are kept in the snapshot.
func (b *Builder) Build(doc *schema.Document) (*core.Snapshot, error) {
	if doc == nil {
		return nil, fmt.Errorf("model document is nil")
	}

	hash, err := Hash(doc)
	if err != nil {
		return nil, err
	}

	prefix := b.Prefix
	if prefix == "" {
		prefix = annotation.DefaultPrefix
	}
	res, err := extract.New(prefix, extract.WithLogger(b.Logger)).Extract(doc)
	if err != nil {
		return nil, err
	}

	// TODO: carry non-index partitions once a second kind is registered.
	indexes := make([]core.IndexRecord, 0, len(res.Indexes))
	indexes = append(indexes, res.Indexes...)

	snap := &core.Snapshot{
		GeneratedAt: b.now().UTC().Format(TimeFormat),
		SchemaHash:  hash,
		Indexes:     indexes,
	}
	b.logger().Debug("snapshot built", "schema_hash", hash, "indexes", len(indexes))
	return snap, nil
}

func (b *Builder) now() time.Time {
	if b.Clock != nil {
		return b.Clock()
	}
	return time.Now()
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
