// Copyright 2014 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package watch turns filesystem change notifications into calls of
// the callbacks registered for the changed path; Observe runs them on
// its own goroutine.
package watch

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rjeczalik/notify"

	"github.com/freshedit/fresh/backend/log"
)

// Watcher multiplexes actions onto filesystem paths: each path may
// have several registered actions, and watching a directory subsumes
// any path already known to live under it.
type Watcher struct {
	watched  map[string][]func() // every watched path's registered actions
	chans    map[string]chan notify.EventInfo
	watchers []string // paths we hold a live notify watchpoint on
	dirs     []string // of watchers, the ones that are directories
	out      chan notify.EventInfo
	lock     sync.Mutex
}

// NewWatcher creates an empty Watcher. Call Observe in its own
// goroutine to start dispatching events.
func NewWatcher() *Watcher {
	return &Watcher{
		watched: make(map[string][]func()),
		chans:   make(map[string]chan notify.EventInfo),
		out:     make(chan notify.EventInfo, 64),
	}
}

// Watch registers action to run whenever path changes. If path
// doesn't exist yet, its parent directory is watched instead so
// action fires once the file is created. A directory watch subsumes
// any child paths already being watched directly.
func (w *Watcher) Watch(path string, action func()) {
	fi, err := os.Stat(path)
	dir := err == nil && fi.IsDir()
	if !dir && os.IsNotExist(err) {
		w.Watch(filepath.Dir(path), nil)
	}
	if !dir && action == nil {
		log.Error("No action for watching the file")
		return
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if exist(w.watchers, path) {
		if action != nil {
			w.watched[path] = append(w.watched[path], action)
		}
		return
	}
	if !dir && exist(w.dirs, filepath.Dir(path)) {
		w.watched[path] = append(w.watched[path], action)
		return
	}

	c := make(chan notify.EventInfo, 16)
	if err := notify.Watch(path, c, notify.All); err != nil {
		log.Error("Could not watch: %s", err)
		return
	}
	go forward(c, w.events())

	w.chans[path] = c
	w.watchers = append(w.watchers, path)
	w.watched[path] = append(w.watched[path], action)

	if dir {
		w.dirs = append(w.dirs, path)
		for _, p := range append([]string{}, w.watchers...) {
			if filepath.Dir(p) != path || p == path {
				continue
			}
			w.stopWatchpoint(p)
			w.watchers = remove(w.watchers, p)
		}
	}
}

// UnWatch removes every action registered for path and, if it held a
// live watchpoint, stops it -- re-watching any child paths the
// directory had subsumed so they keep getting their own events.
func (w *Watcher) UnWatch(path string) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !exist(w.watchers, path) {
		return
	}
	if exist(w.dirs, path) {
		for p := range w.watched {
			if filepath.Dir(p) == path && !exist(w.watchers, p) {
				c := make(chan notify.EventInfo, 16)
				if err := notify.Watch(p, c, notify.All); err != nil {
					log.Error("Could not watch: %s", err)
					continue
				}
				go forward(c, w.events())
				w.chans[p] = c
				w.watchers = append(w.watchers, p)
			}
		}
	}
	w.stopWatchpoint(path)
	w.watchers = remove(w.watchers, path)
	w.dirs = remove(w.dirs, path)
	delete(w.watched, path)
}

func (w *Watcher) stopWatchpoint(path string) {
	if c, ok := w.chans[path]; ok {
		notify.Stop(c)
		delete(w.chans, path)
	}
}

// events returns the fan-in channel every per-path notify channel is
// forwarded onto, read by Observe.
func (w *Watcher) events() chan notify.EventInfo { return w.out }

func forward(src, dst chan notify.EventInfo) {
	for ei := range src {
		dst <- ei
	}
}

// Observe blocks, dispatching a changed path's registered actions as
// events arrive. Run it in its own goroutine.
func (w *Watcher) Observe() {
	for ei := range w.events() {
		name := ei.Path()
		func() {
			if ei.Event() == notify.Remove {
				w.lock.Lock()
				w.watchers = remove(w.watchers, name)
				w.lock.Unlock()
				w.Watch(filepath.Dir(name), nil)
			}
			w.lock.Lock()
			defer w.lock.Unlock()
			actions, ok := w.watched[name]
			if !ok {
				return
			}
			for _, action := range actions {
				if action != nil {
					action()
				}
			}
			if !exist(w.dirs, name) {
				return
			}
			for p, actions := range w.watched {
				if filepath.Dir(p) == name && !exist(w.watchers, p) {
					for _, action := range actions {
						action()
					}
				}
			}
		}()
	}
}

func exist(paths []string, path string) bool {
	for _, p := range paths {
		if p == path {
			return true
		}
	}
	return false
}

func remove(slice []string, path string) []string {
	for i, el := range slice {
		if el == path {
			slice[i], slice = slice[len(slice)-1], slice[:len(slice)-1]
			break
		}
	}
	return slice
}
