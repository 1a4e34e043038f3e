// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"strconv"

	"github.com/freshedit/fresh/backend/layout"
)

// SplitID identifies one pane of the window layout.
type SplitID uint64

// ViewMode selects how a buffer's content is rendered in a split:
// raw source, or a compose-mode derived view (e.g. rendered markdown).
type ViewMode int

const (
	ViewModeSource ViewMode = iota
	ViewModeCompose
)

// BufferViewState is everything about showing one buffer in one split
// that is NOT shared with any other split showing the same buffer:
// cursors, viewport, view mode, and plugin-attached state. Buffer
// content and its EventLog are shared; view state is not.
type BufferViewState struct {
	Buffer       *Buffer
	Cursors      *Cursors
	Viewport     Viewport
	ViewMode     ViewMode
	ComposeWidth int
	Settings     *Settings
	PluginState  map[string]interface{}
	status       map[string]string
}

// SetStatus sets a status bar key/value pair, e.g. a line/column
// indicator or a linter's current diagnostic count.
func (s *BufferViewState) SetStatus(key, value string) {
	if s.status == nil {
		s.status = make(map[string]string)
	}
	s.status[key] = value
}

// GetStatus returns the value set for key, or "" if unset.
func (s *BufferViewState) GetStatus(key string) string {
	return s.status[key]
}

// EraseStatus removes key from the status bar.
func (s *BufferViewState) EraseStatus(key string) {
	delete(s.status, key)
}

// NewBufferViewState creates view state for buf with a single cursor
// at the origin and a default viewport, the state a freshly opened
// split gets even if another split already has buf open.
func NewBufferViewState(buf *Buffer, parent *Settings) *BufferViewState {
	s := NewSettings()
	s.SetParent(parent)
	return &BufferViewState{
		Buffer:      buf,
		Cursors:     NewCursors(layout.Position{SourceByte: 0}),
		Viewport:    NewViewport(80, 24),
		Settings:    s,
		PluginState: make(map[string]interface{}),
	}
}

// Split is one pane: the buffer it currently shows, plus every
// BufferViewState it has ever shown, keyed by buffer so switching back
// to a previously viewed buffer restores cursors/viewport/view_mode.
type Split struct {
	ID          SplitID
	active      BufferID
	keyedStates map[BufferID]*BufferViewState
}

// NewSplit creates an empty split.
func NewSplit(id SplitID) *Split {
	return &Split{ID: id, keyedStates: make(map[BufferID]*BufferViewState)}
}

// Active returns the BufferViewState for the split's current buffer,
// or nil if the split has no buffer open.
func (s *Split) Active() *BufferViewState {
	return s.keyedStates[s.active]
}

// ActiveBufferID returns the id of the buffer currently shown.
func (s *Split) ActiveBufferID() BufferID { return s.active }

// Show switches the split to buf. If the split has shown buf before,
// its prior BufferViewState (cursors, viewport, view mode) is
// restored; otherwise a fresh one is created via newState.
func (s *Split) Show(buf *Buffer, newState func() *BufferViewState) *BufferViewState {
	st, ok := s.keyedStates[buf.Id()]
	if !ok {
		st = newState()
		s.keyedStates[buf.Id()] = st
	}
	s.active = buf.Id()
	Hooks.FireBufferActivated(buf.Name())
	Hooks.FireViewportChanged(splitIDString(s.ID), st.Viewport.AnchorByte, st.Viewport.TopViewLine)
	return st
}

func splitIDString(id SplitID) string {
	return strconv.FormatUint(uint64(id), 10)
}

// CloseBuffer removes buf's BufferViewState from this split. If buf
// was active, the split is left with no active buffer.
func (s *Split) CloseBuffer(id BufferID) {
	delete(s.keyedStates, id)
	if s.active == id {
		s.active = 0
	}
}

// SplitViewManager owns every split in a window and the mapping from
// buffer to the splits currently showing it, so closing a buffer can
// remove its BufferViewState everywhere at once.
type SplitViewManager struct {
	splits map[SplitID]*Split
	nextID SplitID
}

// NewSplitViewManager creates a manager with no splits.
func NewSplitViewManager() *SplitViewManager {
	return &SplitViewManager{splits: make(map[SplitID]*Split)}
}

// NewSplitIn creates a new split and registers it.
func (m *SplitViewManager) NewSplitIn() *Split {
	m.nextID++
	s := NewSplit(m.nextID)
	m.splits[s.ID] = s
	return s
}

// Split returns the split with the given id, or nil.
func (m *SplitViewManager) Split(id SplitID) *Split { return m.splits[id] }

// Splits returns every split, in no particular order.
func (m *SplitViewManager) Splits() []*Split {
	out := make([]*Split, 0, len(m.splits))
	for _, s := range m.splits {
		out = append(out, s)
	}
	return out
}

// CloseBuffer removes buf's BufferViewState from every split that has
// ever shown it.
func (m *SplitViewManager) CloseBuffer(id BufferID) {
	for _, s := range m.splits {
		s.CloseBuffer(id)
	}
}

// CloseSplit removes a split entirely.
func (m *SplitViewManager) CloseSplit(id SplitID) {
	delete(m.splits, id)
}
