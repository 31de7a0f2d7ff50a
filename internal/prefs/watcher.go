package prefs

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Event conveys an externally changed preference or a watch error.
type Event struct {
	Language Language
	Err      error
}

// Watcher observes the preference file and publishes reloads when it
// changes outside the process (another instance, a dotfile sync).
type Watcher struct {
	store *Store
	fs    *fsnotify.Watcher

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher starts watching the store's directory. The directory is
// watched rather than the file so atomic rename-in-place updates are
// still observed.
func NewWatcher(store *Store) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(store.Path())
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		store:  store,
		fs:     fs,
		events: make(chan Event, 4),
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Events returns the channel of preference events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait when a clean drain is required
// (e.g. in tests).
func (w *Watcher) Stop() {
	close(w.done)
	w.fs.Close()
}

// Wait blocks until the watch goroutine has exited and the events
// channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.events)

	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			lang, err := w.store.Load()
			if err == nil {
				w.store.apply(lang)
			}
			select {
			case <-w.done:
				return
			case w.events <- Event{Language: lang, Err: err}:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case <-w.done:
				return
			case w.events <- Event{Err: err}:
			}
		}
	}
}
