package state

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sabinadams/schematic/pkg/core"
)

// DefaultFile is the state file path used when none is configured.
const DefaultFile = "./.schematic-state.json"

// ReadFunc reads a snapshot from path.
// A nil snapshot with a nil error means nothing usable was found.
type ReadFunc func(ctx context.Context, path string) (*core.Snapshot, error)

// ReadJSONFile is the default ReadFunc. Missing, unreadable, empty and
// malformed files all yield (nil, nil); only a done context is an error.
func ReadJSONFile(ctx context.Context, path string) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		return nil, nil
	}

	var snap *core.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil
	}
	return snap, nil
}

// ResolvePath resolves snapshotPath against the directory containing documentPath.
// Absolute snapshot paths are returned unchanged.
func ResolvePath(snapshotPath, documentPath string) string {
	if filepath.IsAbs(snapshotPath) {
		return snapshotPath
	}
	return filepath.Join(filepath.Dir(documentPath), snapshotPath)
}

// Loader loads the snapshot of a previous run.
type Loader struct {
	Read ReadFunc
}

// NewLoader creates a Loader reading JSON files from disk.
func NewLoader() *Loader {
	return &Loader{Read: ReadJSONFile}
}

// Load is a shorthand for NewLoader().Load(ctx, snapshotPath, documentPath).
func Load(ctx context.Context, snapshotPath, documentPath string) (*core.Snapshot, error) {
	return NewLoader().Load(ctx, snapshotPath, documentPath)
}

// Load resolves and reads the snapshot. A failing read is reported as
// *core.LoadError and a read that finds nothing as *core.EmptyStateError.
func (l *Loader) Load(ctx context.Context, snapshotPath, documentPath string) (*core.Snapshot, error) {
	path := ResolvePath(snapshotPath, documentPath)

	read := l.Read
	if read == nil {
		read = ReadJSONFile
	}

	snap, err := read(ctx, path)
	if err != nil {
		return nil, &core.LoadError{Path: path, Cause: err}
	}
	if snap == nil {
		return nil, &core.EmptyStateError{Path: path}
	}
	return snap, nil
}
