// Package schematic is the Composition Root for the schematic generator.
//
// It connects the annotation pipeline (parse, validate, extract) with state
// persistence, exposing a single Generator configured with functional options.
//
// Philosophy:
//
// The host schema language cannot express every piece of database intent.
// schematic lets model documentation carry that intent as annotations such as
//
//	@schematic.index(fields: ["email"], type: "unique", where: "deleted_at IS NULL")
//
// and turns them into a deterministic, content-hashed snapshot that later
// runs can compare against.
//
// Features:
//
//   - **Strict Annotations**: Every kind has a closed contract; unknown kinds and fields fail the run.
//   - **Quote-aware Arguments**: Commas inside strings and nested literals never split arguments.
//   - **Deterministic Snapshots**: The schema hash depends only on the model document.
//   - **Watch Mode**: Rebuilds the snapshot whenever the model document changes.
//
// Usage:
//
//	gen := schematic.New(
//		schematic.WithPrefix("schematic"),
//		schematic.WithLogger(logger),
//	)
//
//	snap, err := gen.Generate(ctx, "./prisma/dmmf.json")
package schematic
