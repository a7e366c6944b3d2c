package config

import (
	"errors"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned for operations on a closed watcher.
var ErrWatcherClosed = errors.New("config: watcher closed")

// Watcher reloads a profile when its file changes on disk. The parent
// directory is watched rather than the file itself so that
// rename-into-place editors still trigger a reload.
type Watcher struct {
	mu sync.Mutex

	path    string
	watcher *fsnotify.Watcher
	reload  func(*Profile)

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// NewWatcher watches the profile at path and invokes reload with each
// successfully loaded new profile. Load errors are logged and the
// previous profile stays active.
func NewWatcher(path string, reload func(*Profile)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		watcher: fsw,
		reload:  reload,
		closeCh: make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched profile path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.doneWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Name != w.path {
		return
	}
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	profile, err := Load(w.path)
	if err != nil {
		log.Printf("config: reload of %s failed: %v", w.path, err)
		return
	}
	w.reload(profile)
}
