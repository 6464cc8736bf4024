package cfg

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchError represents an error encountered by a profile watcher.
type WatchError struct {
	Err   error
	Fatal bool
}

// Watcher sends notifications whenever a profile file is updated. The
// directory containing the file is watched so that editors which replace
// the file on save are handled.
type Watcher struct {
	Errors  chan WatchError
	Updates chan fsnotify.Event

	file    string
	stopch  chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a new Watcher for the given file.
func NewWatcher(file string) *Watcher {
	return &Watcher{
		Errors:  make(chan WatchError, 32),
		Updates: make(chan fsnotify.Event, 32),

		file:   filepath.Clean(file),
		stopch: make(chan struct{}),
	}
}

// Watch spawns a goroutine which will send a notification whenever the
// file it is watching is updated.
func (w *Watcher) Watch() error {
	if w.watcher != nil {
		return errors.New("watcher is already running")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.file)); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	go func() {
		defer w.watcher.Close()
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.Errors <- WatchError{
						Err:   errors.New("watcher closed"),
						Fatal: true,
					}
					return
				}
				if w.relevant(event) {
					w.Updates <- event
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.Errors <- WatchError{
						Err:   errors.New("watcher closed"),
						Fatal: true,
					}
					return
				}
				w.Errors <- WatchError{Err: err}
			case <-w.stopch:
				return
			}
		}
	}()
	return nil
}

// Stop stops the watcher. It must only be called once.
func (w *Watcher) Stop() {
	close(w.stopch)
}

// relevant returns whether an event in the watched directory concerns the
// watched file's contents.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.file {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
