// Package watcher re-runs the summary pipeline when the source export
// changes on disk. The pipeline itself stays a one-shot subprocess; the
// only state shared between trigger and run is the file contents.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the directory containing a single file and fires
// onChange for write/create events on that file. Rapid successive events
// inside the debounce window collapse into one trigger.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	stop     chan struct{}
	wg       sync.WaitGroup

	mu   sync.Mutex
	last time.Time
}

// New builds a watcher for the file at path. onChange runs on the watcher
// goroutine; a slow callback delays later events, which is what keeps
// triggered runs from overlapping.
func New(path string, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		stop:     make(chan struct{}),
	}
}

// Start begins watching. The containing directory is watched rather than
// the file itself so that editors which replace the file are still seen.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				w.handleEvent(event)
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			case <-w.stop:
				fsw.Close()
				return
			}
		}
	}()

	return nil
}

// Stop signals the watch goroutine to exit and waits for it to finish.
func (w *Watcher) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
		return
	}

	now := time.Now()
	w.mu.Lock()
	if now.Sub(w.last) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.last = now
	w.mu.Unlock()

	w.onChange()
}
