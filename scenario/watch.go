package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce groups the several write events editors emit for one save.
const debounce = 100 * time.Millisecond

// WatchHandler receives the outcomes of a re-run file.
type WatchHandler func(path string, outcomes []Outcome, err error)

// Watch re-runs scenario files under dir whenever they are written or
// created, until ctx is cancelled.
func Watch(ctx context.Context, logger *zap.Logger, runner Runner, dir string, handle WatchHandler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, dir, nil); err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// files may land in the new directory before it is watched
					err := addTree(watcher, event.Name, func(path string) {
						pending[path] = time.Now()
					})
					if err != nil && logger != nil {
						logger.Warn("Error watching new directory", zap.String("dir", event.Name), zap.Error(err))
					}
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && hasDesiredExtension(event.Name) {
				pending[event.Name] = time.Now()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if logger != nil {
				logger.Warn("Watcher error", zap.Error(err))
			}

		case now := <-ticker.C:
			for path, seen := range pending {
				if now.Sub(seen) < debounce {
					continue
				}
				delete(pending, path)
				if logger != nil {
					logger.Debug("Re-running scenario", zap.String("file", path))
				}
				outcomes, err := runner.RunFile(path)
				handle(path, outcomes, err)
			}
		}
	}
}

// addTree watches root and every directory below it. found, when set, is
// called for each scenario file already present.
func addTree(watcher *fsnotify.Watcher, root string, found func(path string)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		if found != nil && hasDesiredExtension(path) {
			found(path)
		}
		return nil
	})
}
