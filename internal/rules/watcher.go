package rules

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/keywatch/internal/dispatch"
)

// DefaultDebounce is how long the watcher waits after the last file event
// before reloading. Editors often write a file several times in quick
// succession.
const DefaultDebounce = 100 * time.Millisecond

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the reload debounce interval.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithErrorHandler sets a handler for reload failures. Without one, reload
// failures leave the previous rule set in place silently.
func WithErrorHandler(h func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = h
	}
}

// Watcher reloads a rules file on change and swaps the result into a
// dispatcher. The watch covers the file's directory so editors that
// replace the file (rename-over-write) are still observed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	loader   *Loader
	path     string
	action   ActionFunc
	target   *dispatch.Dispatcher
	debounce time.Duration
	onError  func(error)

	done chan struct{}
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// WatchFile starts watching path and swapping reloaded rule sets into
// target. The initial load is the caller's responsibility; the watcher
// only reacts to changes.
func WatchFile(path string, loader *Loader, action ActionFunc, target *dispatch.Dispatcher, opts ...WatcherOption) (*Watcher, error) {
	if loader == nil {
		loader = NewLoader(nil)
	}
	if target == nil {
		return nil, fmt.Errorf("watch %s: nil dispatcher", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		loader:   loader,
		path:     abs,
		action:   action,
		target:   target,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and releases the underlying watch.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

// run is the event loop. A debounce timer coalesces bursts of writes into
// a single reload.
func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reportError(fmt.Errorf("watching %s: %w", w.path, err))

		case <-timerC:
			w.reload()
		}
	}
}

// relevant reports whether a file event concerns the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// reload loads the file and swaps the rule set. On failure the previous
// rule set stays in effect.
func (w *Watcher) reload() {
	rules, err := w.loader.LoadFile(w.path, w.action)
	if err != nil {
		w.reportError(err)
		return
	}
	w.target.SetRules(rules)
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
