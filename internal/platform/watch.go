package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/sabinadams/schematic/pkg/core"
)

// BuildResult is the outcome of one rebuild triggered by Watch.
type BuildResult struct {
	Snapshot *core.Snapshot
	Err      error
}

// Watch regenerates the snapshot whenever the model document at documentPath
// changes. Writes are debounced. The returned channel is closed when ctx is done.
func (g *Generator) Watch(ctx context.Context, documentPath string) (<-chan BuildResult, error) {
	target, err := filepath.Abs(documentPath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	results := make(chan BuildResult)
	g.setWatching(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(results)
		defer g.setWatching(false)
		defer watcher.Close()
		return g.watchLoop(ctx, watcher, target, results)
	}, lifecycle.WithErrorHandler(func(err error) {
		g.opts.logger.Error("watcher stopped", "error", err)
	}))

	return results, nil
}

func (g *Generator) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, results chan<- BuildResult) error {
	timer := time.NewTimer(g.opts.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !g.isDocumentChange(event, target) {
				continue
			}
			g.opts.logger.Debug("model document changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(g.opts.debounce)

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			g.opts.logger.Error("fsnotify error", "error", wErr)

		case <-timer.C:
			snap, err := g.Generate(ctx, target)
			if err != nil {
				g.opts.logger.Warn("rebuild failed", "error", err)
			}
			select {
			case results <- BuildResult{Snapshot: snap, Err: err}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (g *Generator) isDocumentChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
