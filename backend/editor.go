// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"sync"

	"github.com/freshedit/fresh/backend/render"
)

// Frontend is the terminal host's side of the contract: the core
// hands it a rendered Frame once per turn and calls back into it for
// anything that must reach the user synchronously (a reload
// confirmation, a close-with-unsaved-changes prompt). Producing ANSI,
// doing terminal I/O, and diffing frames against the previous one are
// the frontend's job, not the core's.
type Frontend interface {
	// Draw writes text into the frontend's current frame at (row, col).
	Draw(row, col int, text string, fg, bg render.Color, bold, underline bool)

	// SetCursor positions the terminal cursor.
	SetCursor(row, col int)

	// ClearRect blanks a rectangle of the frame.
	ClearRect(row, col, width, height int)

	// OkCancelDialog presents msg with an Ok button labeled okName and
	// a Cancel button, returning true if the user chose Ok.
	OkCancelDialog(msg, okName string) bool

	// StatusMessage shows a transient message in the host's status line.
	StatusMessage(msg string)
}

// DummyFrontend is a no-op Frontend used by tests and by any embedder
// that hasn't wired up a real terminal yet.
type DummyFrontend struct {
	defaultAction bool
}

// SetDefaultAction controls what OkCancelDialog returns.
func (f *DummyFrontend) SetDefaultAction(b bool) { f.defaultAction = b }

func (f *DummyFrontend) Draw(row, col int, text string, fg, bg render.Color, bold, underline bool) {
}
func (f *DummyFrontend) SetCursor(row, col int)                 {}
func (f *DummyFrontend) ClearRect(row, col, width, height int)  {}
func (f *DummyFrontend) OkCancelDialog(msg, okName string) bool { return f.defaultAction }
func (f *DummyFrontend) StatusMessage(msg string)               {}

// Editor is the process-wide singleton owning every open Window, the
// global settings chain every Window's Settings parents onto, and the
// Frontend the core talks back to.
type Editor struct {
	mu       sync.Mutex
	windows  []*Window
	nextID   WindowID
	frontend Frontend
	Settings *Settings
}

var (
	editorOnce sync.Once
	editor     *Editor
)

// GetEditor returns the process-wide Editor, creating it on first call.
func GetEditor() *Editor {
	editorOnce.Do(func() {
		editor = &Editor{
			Settings: NewSettings(),
			frontend: &DummyFrontend{defaultAction: true},
		}
	})
	return editor
}

// Frontend returns the currently registered Frontend.
func (e *Editor) Frontend() Frontend { return e.frontend }

// SetFrontend registers the terminal host implementation.
func (e *Editor) SetFrontend(f Frontend) { e.frontend = f }

// NewWindow creates and registers a new Window.
func (e *Editor) NewWindow() *Window {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	w := newWindow(e.nextID, e.Settings)
	e.windows = append(e.windows, w)
	return w
}

// Windows returns every open Window.
func (e *Editor) Windows() []*Window {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Window, len(e.windows))
	copy(out, e.windows)
	return out
}

// remove drops w from the Editor's window list, called by Window.Close.
func (e *Editor) remove(w *Window) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, ww := range e.windows {
		if ww == w {
			e.windows = append(e.windows[:i], e.windows[i+1:]...)
			return
		}
	}
}
