package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sabinadams/schematic/pkg/core"
)

// TempFilePrefix is the prefix of the in-progress snapshot file.
const TempFilePrefix = ".schematic-tmp-"

// Write persists snap as indented JSON at path, creating parent directories.
// The previous state file is replaced only once the new one is fully on disk.
func Write(path string, snap *core.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("snapshot is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmpPath, err := encodeSnapshot(dir, snap)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", path, err)
	}
	return syncDir(dir)
}

// encodeSnapshot streams snap into a synced temp file in dir and returns its path.
// Predicates are written without HTML escaping so "<" and "&" stay readable.
func encodeSnapshot(dir string, snap *core.Snapshot) (string, error) {
	f, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp state file: %w", err)
	}
	name := f.Name()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	err = f.Chmod(0644)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to flush temp state file: %w", err)
	}
	return name, nil
}

// syncDir makes the rename durable. Directories cannot be synced on Windows.
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open state directory: %w", err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("failed to sync state directory: %w", err)
	}
	return nil
}
