// Package watcher reports debounced changes of point files so fits can be
// recomputed while a scan is being edited.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches point files. The parent directory is watched so that
// editors replacing a file by rename are noticed as well.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	files   map[string]struct{}
	pending map[string]*time.Timer
}

// New creates a watcher. A nil logger discards diagnostics.
func New(debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		fs:       fs,
		debounce: debounce,
		logger:   logger,
		files:    make(map[string]struct{}),
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Add starts watching path
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.fs.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}
	w.files[abs] = struct{}{}
	return nil
}

// Run calls onChange with the absolute path of every changed file until ctx
// is cancelled or the watcher is closed. Calls for one file never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	var calls sync.Mutex
	for {
		select {
		case <-ctx.Done():
			w.stopPending()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule(event.Name, func(path string) {
				calls.Lock()
				defer calls.Unlock()
				onChange(path)
			})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) schedule(name string, fire func(string)) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.files[abs]; !ok {
		return
	}
	if timer, ok := w.pending[abs]; ok {
		timer.Stop()
	}
	w.logger.Debug("file changed", "path", abs)
	w.pending[abs] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, abs)
		w.mu.Unlock()
		fire(abs)
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}

// Close releases the underlying watcher and ends Run
func (w *Watcher) Close() error {
	w.stopPending()
	return w.fs.Close()
}
