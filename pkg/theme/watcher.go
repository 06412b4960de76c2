package theme

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/iddl/pkg/errors"
)

// DefaultDebounce collapses bursts of file events into one reload.
const DefaultDebounce = 500 * time.Millisecond

// ReloadCallback receives every successfully reloaded theme. A returned error
// is logged and does not stop other callbacks.
type ReloadCallback func(*Theme) error

// Watcher reloads a theme file when it changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file over the original are picked up.
// A reload that fails validation is logged and the previous theme stays in
// effect.
type Watcher struct {
	path     string
	loader   *Loader
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	debounce time.Duration

	mu        sync.Mutex
	callbacks []ReloadCallback
	timer     *time.Timer
	stopOnce  sync.Once
	done      chan struct{}
}

// WatcherOption configures a [Watcher].
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce period.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the watcher logger.
func WithLogger(l *log.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher creates a watcher for the theme at path. The loader must read
// the OS filesystem: change notifications come from the operating system.
func NewWatcher(path string, loader *Loader, opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "resolve %s", path)
	}
	if loader == nil {
		loader = NewLoader(nil)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "watch %s", filepath.Dir(abs))
	}

	w := &Watcher{
		path:     abs,
		loader:   loader,
		watcher:  fw,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// OnReload registers a callback to be called when the theme is reloaded.
func (w *Watcher) OnReload(cb ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Run watches until ctx is cancelled or Stop is called.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("theme file changed", "file", event.Name, "op", event.Op.String())
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

// Stop ends watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		w.watcher.Close()
	})
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.reload(ctx) })
}

func (w *Watcher) reload(ctx context.Context) {
	select {
	case <-w.done:
		return
	default:
	}

	t, err := w.loader.Reload(ctx, w.path)
	if err != nil {
		w.logger.Error("theme reload failed, keeping previous theme", "error", err)
		return
	}
	w.logger.Info("theme reloaded", "name", t.Name, "fingerprint", t.Short())

	w.mu.Lock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, cb := range callbacks {
		if err := cb(t); err != nil {
			w.logger.Warn("theme reload callback failed", "error", err)
		}
	}
}
