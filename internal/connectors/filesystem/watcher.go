// Package filesystem watches local exports so counts can be refreshed
// when the file is saved.
package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor emits on save.
const DefaultDebounce = 100 * time.Millisecond

// ChangeType identifies what happened to the watched file.
type ChangeType string

const (
	// ChangeUpdated means the file was written or replaced.
	ChangeUpdated ChangeType = "updated"
	// ChangeDeleted means the file was removed or renamed away.
	ChangeDeleted ChangeType = "deleted"
)

// Change is a debounced event for the watched file.
type Change struct {
	Type ChangeType
	Path string
}

// Watcher reports changes to a single file. The parent directory is
// watched so that editors which save by renaming a temp file over the
// original are still seen.
type Watcher struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	return &Watcher{path: abs, debounce: DefaultDebounce}, nil
}

// WithDebounce sets how long to wait for further events before reporting.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of changes. The channel is
// closed when ctx is cancelled, the watcher is closed, or fsnotify fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", w.path, err)
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()

	changes := make(chan Change)
	go w.loop(ctx, fw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, changes chan<- Change) {
	defer close(changes)
	defer fw.Close()

	var (
		pending ChangeType
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			change, ok := w.classify(event)
			if !ok {
				continue
			}
			pending = change
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			select {
			case changes <- Change{Type: pending, Path: w.path}:
			case <-ctx.Done():
				return
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// classify maps a raw fsnotify event to a change of the watched file.
// Events for other files in the directory and chmod-only events are ignored.
func (w *Watcher) classify(event fsnotify.Event) (ChangeType, bool) {
	if filepath.Clean(event.Name) != w.path {
		return "", false
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return ChangeUpdated, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return ChangeDeleted, true
	default:
		return "", false
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
