package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mcscript/pkg/logging"
)

const subsystem = "Watch"

// DefaultDebounce is how long the watcher waits for further changes.
const DefaultDebounce = 300 * time.Millisecond

// Action is called with the path that changed last.
type Action func(ctx context.Context, path string)

// Watcher calls an Action when watched files are written or created.
type Watcher struct {
	mu sync.Mutex

	// files holds the cleaned absolute paths being watched
	files map[string]bool
	dirs  map[string]bool

	debounce time.Duration
	action   Action

	// pending is the debounce timer, nil when nothing is queued
	pending *time.Timer
	last    string
	wg      sync.WaitGroup
}

// New creates a watcher for files. A zero debounce uses DefaultDebounce.
func New(files []string, debounce time.Duration, action Action) (*Watcher, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: debounce,
		action:   action,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}
		w.files[abs] = true
		w.dirs[filepath.Dir(abs)] = true
	}
	return w, nil
}

// Run watches until ctx is cancelled. Pending calls are dropped on return.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logging.Debug(subsystem, "Watching directory: %s", dir)
	}

	defer func() {
		w.stopPending()
		w.wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Error(subsystem, err, "Filesystem watcher error")
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}
	logging.Debug(subsystem, "%s %s", event.Op, abs)
	w.schedule(ctx, abs)
}

// schedule (re)starts the debounce timer.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.last = path
	if w.pending != nil && w.pending.Stop() {
		w.wg.Done()
	}

	w.wg.Add(1)
	w.pending = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		path := w.last
		w.pending = nil
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.action(ctx, path)
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil && w.pending.Stop() {
		w.wg.Done()
	}
	w.pending = nil
}
