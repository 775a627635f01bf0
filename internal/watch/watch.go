// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package watch reports changes to a set of files, debounced.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when New gets a non-positive one.
const DefaultDebounce = 250 * time.Millisecond

// ErrNoFiles is returned by New when there is nothing to watch.
var ErrNoFiles = errors.New("watch: no files")

// Watcher calls a function once a burst of changes to any watched file
// has been quiet for the debounce period.
//
// The directories holding the files are watched rather than the files,
// so editors that save by writing a temporary file and renaming it over
// the watched file are seen as a change.
type Watcher struct {
	fs *fsnotify.Watcher

	mu    sync.Mutex
	files map[string]bool // absolute paths
	dirs  map[string]bool
	debounce time.Duration
	onChange func() error
	onError  func(error)

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// New creates a watcher for paths. onChange runs on the watcher's
// goroutine; its error, and any watch error, goes to onError when set.
func New(paths []string, debounce time.Duration, onChange func() error, onError func(error)) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watch: %w", err)
		}
	}

	return &Watcher{
		fs:        fsw,
		files:     files,
		dirs:      dirs,
		debounce:  debounce,
		onChange:  onChange,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Add watches more files. Paths already watched are ignored. It may be
// called from onChange.
func (w *Watcher) Add(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		if w.files[abs] {
			continue
		}
		dir := filepath.Dir(abs)
		if !w.dirs[dir] {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			w.dirs[dir] = true
		}
		w.files[abs] = true
	}
	return nil
}

// watching reports whether path is one of the watched files.
func (w *Watcher) watching(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[filepath.Clean(path)]
}

// Start begins watching in a new goroutine. Later calls do nothing.
func (w *Watcher) Start() {
	w.startOnce.Do(func() {
		go w.loop()
	})
}

// Stop ends watching and waits for the goroutine to exit. A pending
// change that has not fired yet is dropped. Stop may be called more
// than once, and before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		// Never started: nothing else closes these.
		w.startOnce.Do(func() {
			w.fs.Close()
			close(w.stoppedCh)
		})
	})
	<-w.stoppedCh
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.Start()
	select {
	case <-ctx.Done():
	case <-w.stoppedCh:
	}
	w.Stop()
	return ctx.Err()
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer w.fs.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.watching(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			if w.onChange != nil {
				if err := w.onChange(); err != nil {
					w.report(err)
				}
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) report(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
