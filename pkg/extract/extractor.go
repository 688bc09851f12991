// Package extract pulls annotations out of model documentation and validates them.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sabinadams/schematic/pkg/annotation"
	"github.com/sabinadams/schematic/pkg/core"
	"github.com/sabinadams/schematic/pkg/registry"
	"github.com/sabinadams/schematic/pkg/schema"
)

// Result holds the validated records of one extraction, in document order.
type Result struct {
	// Records contains every validated record regardless of kind.
	Records []core.Record `json:"-"`
	// Indexes is the partition of Records whose kind is "index".
	Indexes []core.IndexRecord `json:"indexes"`
}

// Extractor walks a model document and returns its validated annotations.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	parser *annotation.Parser
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Extractor for the given annotation prefix.
func New(prefix string, opts ...Option) *Extractor {
	e := &Extractor{
		parser: annotation.NewParser(prefix),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract is a shorthand for New(prefix).Extract(doc).
func Extract(doc *schema.Document, prefix string) (*Result, error) {
	return New(prefix).Extract(doc)
}

// Extract parses and validates every annotation line of every model.
// The first malformed, unknown or invalid annotation aborts the whole extraction.
func (e *Extractor) Extract(doc *schema.Document) (*Result, error) {
	res := &Result{
		Records: []core.Record{},
		Indexes: []core.IndexRecord{},
	}
	if doc == nil {
		return res, nil
	}

	for _, model := range doc.Models() {
		if model.Documentation == "" {
			continue
		}
		for _, line := range strings.Split(model.Documentation, "\n") {
			line = strings.TrimSuffix(line, "\r")
			if !e.parser.Matches(line) {
				continue
			}
			rec, err := e.extractLine(model.Name, line)
			if err != nil {
				return nil, err
			}
			e.logger.Debug("annotation extracted", "model", model.Name, "kind", rec.Kind())
			res.add(rec)
		}
	}
	return res, nil
}

func (e *Extractor) extractLine(model, line string) (core.Record, error) {
	raw, err := e.parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", model, err)
	}

	validate, ok := registry.Lookup(raw.Kind)
	if !ok {
		return nil, &core.UnknownKindError{Kind: raw.Kind, Model: model}
	}

	rec, err := validate(raw)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", model, err)
	}
	return rec.WithOwner(model), nil
}

func (r *Result) add(rec core.Record) {
	r.Records = append(r.Records, rec)
	if idx, ok := rec.(core.IndexRecord); ok {
		r.Indexes = append(r.Indexes, idx)
	}
}
