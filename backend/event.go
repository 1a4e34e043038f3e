// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import "github.com/freshedit/fresh/backend/piecetree"

// EventKind tags the union of events a buffer's history can hold.
type EventKind int

const (
	EventInsert EventKind = iota
	EventDelete
	EventBatch
	EventBulkEdit
	EventMoveCursor
)

// Event is the tagged union the event log stores. Only the fields
// relevant to Kind are populated; the zero value of the others is
// ignored.
type Event struct {
	Kind EventKind

	// EventInsert / EventDelete
	Pos  int
	Text string // inserted text, or the text a delete removed (for its inverse)

	// EventBatch
	Events []Event

	// EventBulkEdit
	OldTree    *piecetree.Tree
	NewTree    *piecetree.Tree
	OldCursors *Cursors
	NewCursors *Cursors

	// EventMoveCursor
	From, To ViewPosition

	// CursorID attributes an Insert/Delete to the cursor that caused
	// it, used by the grouping heuristic to decide whether the next
	// event can join this one.
	CursorID CursorID
}

// Inverse returns the event that undoes e.
func (e Event) Inverse() Event {
	switch e.Kind {
	case EventInsert:
		return Event{Kind: EventDelete, Pos: e.Pos, Text: e.Text, CursorID: e.CursorID}
	case EventDelete:
		return Event{Kind: EventInsert, Pos: e.Pos, Text: e.Text, CursorID: e.CursorID}
	case EventBatch:
		inv := make([]Event, len(e.Events))
		for i, sub := range e.Events {
			inv[len(e.Events)-1-i] = sub.Inverse()
		}
		return Event{Kind: EventBatch, Events: inv}
	case EventBulkEdit:
		return Event{
			Kind:       EventBulkEdit,
			OldTree:    e.NewTree,
			NewTree:    e.OldTree,
			OldCursors: e.NewCursors,
			NewCursors: e.OldCursors,
		}
	case EventMoveCursor:
		return Event{Kind: EventMoveCursor, From: e.To, To: e.From}
	}
	return e
}

// DeleteEnd returns the byte one past the end of the range a Delete
// event removed.
func (e Event) DeleteEnd() int { return e.Pos + len(e.Text) }
