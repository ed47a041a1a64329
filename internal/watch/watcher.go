// SPDX-License-Identifier: MIT

// Package watch reports settled changes to edge-list files in an input folder.
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeWritten ChangeKind = iota // created or modified, file exists
	ChangeRemoved                   // file is gone
)

func (k ChangeKind) String() string {
	if k == ChangeRemoved {
		return "removed"
	}
	return "written"
}

// Change is one settled event for an edge-list file.
type Change struct {
	Kind ChangeKind
	File string
}

// minTick bounds the debounce ticker from below.
const minTick = 10 * time.Millisecond

// Watcher monitors a folder for *.txt changes using fsnotify. Bursts of events
// on one file are folded into a single Change once the file has been quiet for
// the debounce window.
type Watcher struct {
	Dir     string
	Changes <-chan Change // read-only external channel

	changes  chan Change
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// NewWatcher creates a watcher for dir. A non-positive debounce uses minTick.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	if debounce < minTick {
		debounce = minTick
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 64)
	return &Watcher{
		Dir:      dir,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: debounce,
	}, nil
}

// Start begins watching the folder.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher, waits for the loop and closes Changes.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

// IsEdgeList reports whether name is an input the batch pipeline consumes.
func IsEdgeList(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".txt") && !strings.HasPrefix(base, ".")
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.emit(file, false)
				}
				return
			}
			if !IsEdgeList(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.emit(file, true)
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emit classifies file by its current presence. When block is false the
// change is dropped if nobody is reading.
func (w *Watcher) emit(file string, block bool) {
	c := Change{Kind: ChangeWritten, File: file}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		c.Kind = ChangeRemoved
	}
	if block {
		w.changes <- c
		return
	}
	select {
	case w.changes <- c:
	default:
	}
}
