// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"time"

	"github.com/freshedit/fresh/backend/layout"
)

// EditorState owns one buffer's piece tree, its view-line layout, and
// its undo history. It never holds a view's cursors or viewport --
// those live in BufferViewState and flow through Apply by value, per
// the Split View State Manager design: many splits can share one
// EditorState while keeping independent cursors.
type EditorState struct {
	buffer    *Buffer
	log       *EventLog
	wrap      layout.WrapConfig
	compose   layout.ComposeConfig
	layout    *layout.Layout
	builtFrom int // buffer.ChangeCount() the cached layout was built from
	overlays  []Overlay
}

// Overlay is plugin-injected content rendered at a source byte without
// existing in the buffer -- the add_overlay and add_virtual_text
// commands' backing store. Column < 0 means "append after the line's
// own content" rather than at a fixed column.
type Overlay struct {
	SourceByte int
	Column     int
	Text       string
}

// AddOverlay records o and re-derives the current layout's virtual
// segments to include it. Overlays are anchored to a source byte
// rather than a view line so they keep tracking the same content
// across edits and wrap changes, the same anchoring the viewport's
// AnchorByte uses.
func (s *EditorState) AddOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
	s.refreshLayout()
	s.applyOverlays()
}

func (s *EditorState) applyOverlays() {
	for _, o := range s.overlays {
		pos := s.layout.SourceToView(o.SourceByte)
		if pos.SourceByte < 0 {
			continue
		}
		s.layout.AddVirtual(pos.ViewLine, o.Column, o.Text)
	}
}

// NewEditorState creates editor state for buf.
func NewEditorState(buf *Buffer) *EditorState {
	s := &EditorState{buffer: buf, log: NewEventLog(), builtFrom: -1}
	s.refreshLayout()
	return s
}

func (s *EditorState) Buffer() *Buffer     { return s.buffer }
func (s *EditorState) EventLog() *EventLog { return s.log }

// SetWrap updates the word-wrap policy and invalidates the cached
// layout.
func (s *EditorState) SetWrap(w layout.WrapConfig) {
	s.wrap = w
	s.builtFrom = -1
}

// SetCompose updates the compose-mode configuration and invalidates
// the cached layout.
func (s *EditorState) SetCompose(c layout.ComposeConfig) {
	s.compose = c
	s.builtFrom = -1
}

// Layout returns the current view-line layout, rebuilding it if the
// buffer has changed since it was last built.
func (s *EditorState) Layout() *layout.Layout {
	s.refreshLayout()
	return s.layout
}

func (s *EditorState) refreshLayout() {
	if s.builtFrom == s.buffer.ChangeCount() && s.layout != nil {
		return
	}
	text, _ := s.buffer.Substr(0, s.buffer.Size())
	s.layout = layout.Build(text, s.wrap, s.compose)
	s.builtFrom = s.buffer.ChangeCount()
	s.applyOverlays()
}

// Apply commits event against the buffer, appends it to the event
// log, and returns cursors/viewport projected through the edit. The
// editor never reads cursors or viewport off EditorState itself --
// callers always thread their own copy through Apply.
func (s *EditorState) Apply(e Event, cursors *Cursors, viewport Viewport) (*Cursors, Viewport, error) {
	if err := s.commit(e); err != nil {
		return cursors, viewport, err
	}
	s.log.Append(e, time.Now())
	s.fireEditHooks(e)
	s.projectEdit(e, cursors)
	s.refreshLayout()
	viewport = viewport.RebaseAnchor(s.layout)
	cursors.RefreshViewCoords(s.layout)
	if primary := cursors.Primary(); primary != nil {
		viewport = viewport.FollowCursor(primary.Position)
		Hooks.FireCursorMoved(s.buffer.Name())
	}
	viewport = viewport.SetAnchor(s.layout)
	Hooks.FireBufferModified(s.buffer.Name())
	return cursors, viewport, nil
}

// fireEditHooks delivers after-insert/after-delete for e's content
// effect, recursing into a Batch's members so each sub-edit the
// Dispatcher grouped into one undo step still gets its own event.
func (s *EditorState) fireEditHooks(e Event) {
	switch e.Kind {
	case EventInsert:
		Hooks.FireAfterInsert(s.buffer.Name(), e.Pos, e.Pos+len(e.Text))
	case EventDelete:
		Hooks.FireAfterDelete(s.buffer.Name(), e.Pos, e.DeleteEnd())
	case EventBatch:
		for _, sub := range e.Events {
			s.fireEditHooks(sub)
		}
	}
}

// commit applies e's content effect to the buffer, without touching
// cursors, viewport, or the log -- used by both Apply and Undo/Redo.
func (s *EditorState) commit(e Event) error {
	switch e.Kind {
	case EventInsert:
		return s.buffer.Insert(e.Pos, e.Text)
	case EventDelete:
		return s.buffer.Erase(e.Pos, e.DeleteEnd())
	case EventBatch:
		for _, sub := range e.Events {
			if err := s.commit(sub); err != nil {
				return err
			}
		}
		return nil
	case EventBulkEdit:
		s.buffer.SetTree(e.NewTree)
		return nil
	case EventMoveCursor:
		return nil
	}
	return nil
}

// projectEdit adjusts cursors for e's content effect. MoveCursor
// events carry their own destination and don't need projection.
func (s *EditorState) projectEdit(e Event, cursors *Cursors) {
	switch e.Kind {
	case EventInsert:
		cursors.AdjustForEdit(e.Pos, e.Pos, len(e.Text))
	case EventDelete:
		cursors.AdjustForEdit(e.Pos, e.DeleteEnd(), 0)
	case EventBatch:
		for _, sub := range e.Events {
			s.projectEdit(sub, cursors)
		}
	case EventBulkEdit:
		if e.NewCursors != nil {
			*cursors = *e.NewCursors
		}
	}
}

// Undo steps the event log back one entry and applies its inverse.
func (s *EditorState) Undo(cursors *Cursors, viewport Viewport) (*Cursors, Viewport, error) {
	err := s.log.Undo(func(inv Event) error {
		if inv.Kind == EventBulkEdit && inv.OldCursors != nil {
			*cursors = *inv.OldCursors
		}
		if cerr := s.commit(inv); cerr != nil {
			return cerr
		}
		s.fireEditHooks(inv)
		if inv.Kind != EventBulkEdit {
			s.projectEdit(inv, cursors)
		}
		return nil
	})
	if err != nil {
		return cursors, viewport, err
	}
	s.refreshLayout()
	viewport = viewport.RebaseAnchor(s.layout)
	cursors.RefreshViewCoords(s.layout)
	if primary := cursors.Primary(); primary != nil {
		viewport = viewport.FollowCursor(primary.Position)
		Hooks.FireCursorMoved(s.buffer.Name())
	}
	Hooks.FireBufferModified(s.buffer.Name())
	return cursors, viewport, nil
}

// Redo re-applies the entry Undo most recently stepped past.
func (s *EditorState) Redo(cursors *Cursors, viewport Viewport) (*Cursors, Viewport, error) {
	err := s.log.Redo(func(e Event) error {
		if e.Kind == EventBulkEdit && e.NewCursors != nil {
			*cursors = *e.NewCursors
		}
		if cerr := s.commit(e); cerr != nil {
			return cerr
		}
		s.fireEditHooks(e)
		if e.Kind != EventBulkEdit {
			s.projectEdit(e, cursors)
		}
		return nil
	})
	if err != nil {
		return cursors, viewport, err
	}
	s.refreshLayout()
	viewport = viewport.RebaseAnchor(s.layout)
	cursors.RefreshViewCoords(s.layout)
	if primary := cursors.Primary(); primary != nil {
		viewport = viewport.FollowCursor(primary.Position)
		Hooks.FireCursorMoved(s.buffer.Name())
	}
	Hooks.FireBufferModified(s.buffer.Name())
	return cursors, viewport, nil
}
