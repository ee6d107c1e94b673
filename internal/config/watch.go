package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/muurk/headcursor/internal/logging"
)

// Watcher reloads a Store when its file changes on disk, e.g. when another
// process switches the active profile.
type Watcher struct {
	store     *Store
	fsw       *fsnotify.Watcher
	debouncer *debouncer
	onChange  func()

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Watch starts watching the directory holding store's file. onChange runs
// on the watcher goroutine after each reload that actually changed the
// store; it must not touch UI state directly.
func Watch(store *Store, debounce time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// The directory, not the file: atomic saves replace the inode.
	dir := filepath.Dir(store.Path())
	if err := os.MkdirAll(dir, 0700); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		store:     store,
		fsw:       fsw,
		debouncer: newDebouncer(debounce),
		onChange:  onChange,
		done:      make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	logging.Debug("Watching config", zap.String("dir", dir))
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logging.Debug("Config file event", zap.String("op", event.Op.String()))
			w.debouncer.trigger(w.reload)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("Config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	changed, err := w.store.Reload()
	if err != nil {
		// Half-written files from editors land here; the next event retries.
		logging.Warn("Config reload failed", zap.Error(err))
		return
	}
	if changed && w.onChange != nil {
		w.onChange()
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.cancel()
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
