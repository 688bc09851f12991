package platform

import (
	"time"

	"github.com/aretw0/introspection"
)

// GeneratorState exposes internal state for observability.
type GeneratorState struct {
	AnnotationPrefix string     `json:"annotation_prefix"`
	StateFilePath    string     `json:"state_file_path"`
	Builds           int        `json:"builds"`
	LastSchemaHash   string     `json:"last_schema_hash,omitempty"`
	LastBuild        *time.Time `json:"last_build,omitempty"`
	Watching         bool       `json:"watching"`
}

// State implements introspection.Introspectable.
func (g *Generator) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GeneratorState{
		AnnotationPrefix: g.opts.config.AnnotationPrefix,
		StateFilePath:    g.opts.config.StateFilePath,
		Builds:           g.builds,
		LastSchemaHash:   g.lastHash,
		LastBuild:        g.lastBuild,
		Watching:         g.watching,
	}
}

// ComponentType implements introspection.Component.
func (g *Generator) ComponentType() string {
	return "generator"
}

var _ introspection.Introspectable = (*Generator)(nil)
var _ introspection.Component = (*Generator)(nil)
