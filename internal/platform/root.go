package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ConfigFileNames are the configuration files FindConfig looks for, in order.
var ConfigFileNames = []string{"schematic.yaml", "schematic.yml"}

// FindConfig looks upwards from startDir for a configuration file and returns
// its absolute path. The search stops at the first directory containing a
// .git directory or at the filesystem root.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigFileNames {
			if hasFile(dir, name) {
				return filepath.Join(dir, name), nil
			}
		}
		if hasFile(dir, ".git") {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config not found")
}

// ResolveDocuments expands a model document path or doublestar pattern
// (e.g. "prisma/**/*.json") into a sorted list of files.
func ResolveDocuments(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %s", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no model document matches %s", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
