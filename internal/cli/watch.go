package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long the manifest must stay quiet before it is
// regenerated. Editors often write a file in several steps.
const watchSettle = 100 * time.Millisecond

// Watch generates from the manifest at path, then regenerates each time the
// manifest changes, until ctx is cancelled. A failed generation is reported
// and the watcher keeps waiting for a fix.
func Watch(ctx context.Context, env Env, path string, out Output) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	// The directory is watched rather than the file: editors that save by
	// renaming a temporary file replace the inode being watched.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	logger := env.logger().With("path", path)
	logger.Info("Starting Watcher")

	regenerate := func() {
		if err := Generate(env, path, out); err != nil {
			logger.Error("Generation failed", "err", err)
			env.status().Fail("%v", err)
			return
		}
		logger.Debug("Generation finished")
	}
	regenerate()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			logger.Debug("Change detected", "op", event.Op.String())
			settle = time.After(watchSettle)
		case <-settle:
			settle = nil
			if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
				// Removed, or renamed away by an editor that has not yet
				// written the replacement.
				logger.Warn("Manifest missing")
				env.status().Warn("%s is gone, waiting for it to reappear", path)
				continue
			}
			regenerate()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "err", err)
			env.status().Warn("watcher: %v", err)
		}
	}
}
