// Package watch re-runs an action whenever a file is rewritten.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors one file via fsnotify and calls an action, debounced,
// after every write to it.
type Watcher struct {
	path     string
	debounce time.Duration
	action   func()
	log      zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	running sync.WaitGroup
}

// New returns a Watcher for path.
func New(path string, debounce time.Duration, log zerolog.Logger, action func()) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		action:   action,
		log:      log,
	}
}

// Run watches the directory containing the file until ctx is done.  The
// directory is watched rather than the file itself so that editors which
// replace the file by renaming keep triggering the action.  Run does not
// return while an action is still running, and no action starts after it
// returns.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.log.Debug().Str("dir", dir).Str("file", w.path).Msg("watching")

	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug().Str("op", event.Op.String()).Msg("input changed")
			w.schedule()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.running.Add(1)
	w.mu.Unlock()

	defer w.running.Done()
	w.action()
}

// stopTimer cancels any pending action and waits for a running one.
func (w *Watcher) stopTimer() {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.running.Wait()
}
