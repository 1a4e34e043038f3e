// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"errors"
	"strings"
	"time"
)

// groupWindow is the maximum gap between two same-cursor edits that
// still lets them join the same undo step.
const groupWindow = 500 * time.Millisecond

// entry pairs a logged Event with the wall-clock time it was appended,
// used only to decide whether the next event can be grouped with it.
type entry struct {
	event Event
	at    time.Time
}

// EventLog is a per-buffer ordered history with an undo cursor,
// grounded on the teacher's UndoStack (backend/commands/undoredo.go,
// glue.go) generalized from a stack of Commands to this spec's Event
// union.
type EventLog struct {
	entries []entry
	pos     int // index one past the last applied entry; redo tail is entries[pos:]

	glueMark    int
	glueMarked  bool
}

// NewEventLog creates an empty log.
func NewEventLog() *EventLog {
	return &EventLog{pos: 0, glueMark: -1}
}

// Position reports the undo cursor, the number of entries that have
// been applied and not undone.
func (l *EventLog) Position() int { return l.pos }

// Append records e as the most recently applied event, first
// discarding any redo tail, then tries to fold it into the previous
// entry per the grouping heuristic. now should be time.Now() from the
// caller so tests can supply a fixed clock.
func (l *EventLog) Append(e Event, now time.Time) {
	l.entries = l.entries[:l.pos]
	if l.pos > 0 && groupable(l.entries[l.pos-1], entry{event: e, at: now}) {
		prev := l.entries[l.pos-1]
		merged := mergeInto(prev.event, e)
		l.entries[l.pos-1] = entry{event: merged, at: now}
		return
	}
	l.entries = append(l.entries, entry{event: e, at: now})
	l.pos++
}

// groupable reports whether next can be folded into prev per the
// 500ms same-cursor contiguous-edit rule.
func groupable(prev entry, next entry) bool {
	if next.at.Sub(prev.at) > groupWindow {
		return false
	}
	p, n := lastLeaf(prev.event), next.event
	if p.CursorID != n.CursorID {
		return false
	}
	switch {
	case p.Kind == EventInsert && n.Kind == EventInsert:
		return p.Pos+len(p.Text) == n.Pos && !strings.Contains(n.Text, "\n")
	case p.Kind == EventDelete && n.Kind == EventDelete:
		// Same direction: either both eating forward from a fixed
		// point (delete-forward holds Pos steady) or both eating the
		// text right before the cursor (backspace moves Pos back by the
		// deleted length).
		return p.Pos == n.Pos || p.Pos == n.Pos+len(n.Text)
	}
	return false
}

// lastLeaf returns the event a grouping decision should compare
// against: for a Batch this is its last member, since that's the edit
// most recently applied.
func lastLeaf(e Event) Event {
	for e.Kind == EventBatch && len(e.Events) > 0 {
		e = e.Events[len(e.Events)-1]
	}
	return e
}

// mergeInto folds next into prev, producing a Batch if prev wasn't
// already one.
func mergeInto(prev, next Event) Event {
	if prev.Kind == EventBatch {
		prev.Events = append(prev.Events, next)
		return prev
	}
	return Event{Kind: EventBatch, Events: []Event{prev, next}}
}

var errNothingToUndo = errors.New("backend: nothing to undo")
var errNothingToRedo = errors.New("backend: nothing to redo")

// Undo applies the inverse of the most recent entry and steps the
// cursor back; a grouped Batch undoes as one step. When there is
// nothing to undo it returns an error without calling apply.
func (l *EventLog) Undo(apply func(Event) error) error {
	if l.pos == 0 {
		return errNothingToUndo
	}
	l.pos--
	return apply(l.entries[l.pos].event.Inverse())
}

// Redo re-applies the entry that Undo most recently stepped past.
func (l *EventLog) Redo(apply func(Event) error) error {
	if l.pos >= len(l.entries) {
		return errNothingToRedo
	}
	e := l.entries[l.pos].event
	l.pos++
	return apply(e)
}

// MarkUndoGroupsForGluing records the current position as the start
// of a future glue, overwriting any existing mark.
func (l *EventLog) MarkUndoGroupsForGluing() {
	l.glueMark = l.pos
	l.glueMarked = true
}

// MaybeMarkUndoGroupsForGluing sets the mark only if one isn't already
// set.
func (l *EventLog) MaybeMarkUndoGroupsForGluing() {
	if !l.glueMarked {
		l.MarkUndoGroupsForGluing()
	}
}

// UnmarkUndoGroupsForGluing clears any glue mark.
func (l *EventLog) UnmarkUndoGroupsForGluing() {
	l.glueMarked = false
	l.glueMark = -1
}

// GlueMarkedUndoGroups collapses every entry from the mark to the
// current position into a single Batch event.
func (l *EventLog) GlueMarkedUndoGroups() error {
	if !l.glueMarked {
		return errors.New("backend: no glue mark set in this buffer")
	}
	mark := l.glueMark
	if mark < 0 || mark >= l.pos || l.pos-mark <= 1 {
		return nil
	}
	events := make([]Event, 0, l.pos-mark)
	for i := mark; i < l.pos; i++ {
		events = append(events, l.entries[i].event)
	}
	glued := Event{Kind: EventBatch, Events: events}
	at := l.entries[l.pos-1].at
	l.entries = append(l.entries[:mark], entry{event: glued, at: at})
	l.pos = mark + 1
	return nil
}
