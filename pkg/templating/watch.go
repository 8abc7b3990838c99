package templating

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoOverrideDir is returned by Watch when there is nothing to watch.
var ErrNoOverrideDir = errors.New("templating: no override directory configured")

// Watch reloads the templates whenever a file in the override directory is
// written, created, removed or renamed. Bursts of events are collapsed into a
// single Refresh after the configured debounce. Watch blocks until ctx is done.
func (tm *TemplateManager) Watch(ctx context.Context) error {
	cfg := tm.GetConfig()
	if cfg.OverrideDir == "" {
		return ErrNoOverrideDir
	}
	debounce := time.Duration(cfg.ReloadDebounceMs) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create template watcher: %w", err)
	}
	defer func(watcher *fsnotify.Watcher) {
		_ = watcher.Close()
	}(watcher)

	if err = watcher.Add(cfg.OverrideDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.OverrideDir, err)
	}
	tm.logger.Info("Watching template overrides", "dir", cfg.OverrideDir)

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			tm.logger.Debug("Template change detected", "file", event.Name, "op", event.Op.String())
			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if err := tm.Refresh(); err != nil {
					tm.logger.Error("Template reload failed, keeping previous templates", "error", err)
					return
				}
				tm.logger.Info("Templates reloaded")
			})
			timerMu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			tm.logger.Warn("Template watcher error", "error", err)
		}
	}
}
