// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"errors"
	"io/ioutil"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/freshedit/fresh/backend/log"
)

// ErrFileOpenCancelled is returned by OpenFile when a before-file-open
// handler returns false.
var ErrFileOpenCancelled = errors.New("backend: file open cancelled by a plugin handler")

// WindowID identifies a Window for its lifetime.
type WindowID uint64

// Window owns a set of open buffers and the splits that view them.
// Where the teacher's Window held a flat []*View, Fresh's splits each
// own their own BufferViewState per buffer (see SplitViewManager), so
// the Window's job narrows to buffer lifetime and which split is
// focused.
type Window struct {
	id       WindowID
	Settings *Settings
	states   map[BufferID]*EditorState
	splits   *SplitViewManager
	active   SplitID
	lock     sync.Mutex
}

func newWindow(id WindowID, parent *Settings) *Window {
	s := NewSettings()
	s.SetParent(parent)
	w := &Window{
		id:       id,
		Settings: s,
		states:   make(map[BufferID]*EditorState),
		splits:   NewSplitViewManager(),
	}
	first := w.splits.NewSplitIn()
	w.active = first.ID
	return w
}

func (w *Window) Id() WindowID { return w.id }

// NewFile creates an empty buffer, opens it in the active split, and
// makes it the window's active view.
func (w *Window) NewFile() (*EditorState, *BufferViewState) {
	w.lock.Lock()
	defer w.lock.Unlock()

	buf := NewBuffer()
	state := NewEditorState(buf)
	w.states[buf.Id()] = state

	split := w.splits.Split(w.active)
	vs := split.Show(buf, func() *BufferViewState { return NewBufferViewState(buf, w.Settings) })
	return state, vs
}

// OpenFile reads filename into a new buffer and shows it in the
// active split. A before-file-open handler returning false cancels
// the open before anything is read off disk.
func (w *Window) OpenFile(filename string) (*EditorState, *BufferViewState, error) {
	if !Hooks.FireBeforeFileOpen(filename) {
		return nil, nil, ErrFileOpenCancelled
	}
	state, vs := w.NewFile()
	if fn, err := filepath.Abs(filename); err != nil {
		state.Buffer().SetFileName(filename)
	} else {
		state.Buffer().SetFileName(fn)
	}
	d, err := ioutil.ReadFile(filename)
	if err != nil {
		log.Error("Couldn't load file %s: %s", filename, err)
		return state, vs, err
	}
	if err := state.Buffer().Insert(0, string(d)); err != nil {
		return state, vs, err
	}
	state.Buffer().ClearDirty()
	Hooks.FireAfterFileOpen(filename)
	return state, vs, nil
}

// ShowBufferInSplit registers buf with this window (if it isn't
// already) and shows it in splitID rather than the active split,
// which create_virtual_buffer_in_split uses to place generated content
// in a caller-chosen pane.
func (w *Window) ShowBufferInSplit(buf *Buffer, splitID SplitID) (*EditorState, *BufferViewState) {
	w.lock.Lock()
	state, ok := w.states[buf.Id()]
	if !ok {
		state = NewEditorState(buf)
		w.states[buf.Id()] = state
	}
	split := w.splits.Split(splitID)
	w.lock.Unlock()
	if split == nil {
		return state, nil
	}
	vs := split.Show(buf, func() *BufferViewState { return NewBufferViewState(buf, w.Settings) })
	return state, vs
}

// ActiveSplit returns the split the window's commands target.
func (w *Window) ActiveSplit() *Split {
	return w.splits.Split(w.active)
}

// SetActiveSplit changes which split subsequent dispatcher actions
// target.
func (w *Window) SetActiveSplit(id SplitID) {
	w.active = id
}

// Splits returns the window's SplitViewManager.
func (w *Window) Splits() *SplitViewManager { return w.splits }

// State returns the EditorState for an open buffer, or nil.
func (w *Window) State(id BufferID) *EditorState { return w.states[id] }

// CloseBuffer removes a buffer from every split and drops its
// EditorState.
func (w *Window) CloseBuffer(id BufferID) {
	w.lock.Lock()
	state := w.states[id]
	w.splits.CloseBuffer(id)
	delete(w.states, id)
	w.lock.Unlock()
	if state != nil {
		Hooks.FireBufferClosed(state.Buffer().Name())
	}
}

// CloseAllBuffers closes every buffer open in this window.
func (w *Window) CloseAllBuffers() {
	w.lock.Lock()
	ids := make([]BufferID, 0, len(w.states))
	for id := range w.states {
		ids = append(ids, id)
	}
	w.lock.Unlock()
	for _, id := range ids {
		w.CloseBuffer(id)
	}
}

// Close closes every buffer and unregisters the window from the Editor.
func (w *Window) Close() {
	w.CloseAllBuffers()
	GetEditor().remove(w)
}

// runCommand invokes a WindowCommand, recovering from panics the way
// the teacher's View.runCommand guards command execution -- a single
// broken command or plugin-provided handler must not take down the
// main loop.
func (w *Window) runCommand(c WindowCommand, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("Panicked while running window command %s %v: %v\n%s", name, c, r, string(debug.Stack()))
		}
	}()
	return c.Run(w)
}

// WindowCommand is a command that operates on a Window rather than a
// specific buffer, e.g. opening a new split.
type WindowCommand interface {
	Run(w *Window) error
}
