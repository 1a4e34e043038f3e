// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"testing"
	"time"
)

func TestEventLogGroupsContiguousInsertsWithinWindow(t *testing.T) {
	l := NewEventLog()
	t0 := time.Now()
	l.Append(Event{Kind: EventInsert, Pos: 0, Text: "a", CursorID: 1}, t0)
	l.Append(Event{Kind: EventInsert, Pos: 1, Text: "b", CursorID: 1}, t0.Add(10*time.Millisecond))

	if l.Position() != 1 {
		t.Fatalf("expected the two inserts to group into one undo step, position=%d", l.Position())
	}
	if l.entries[0].event.Kind != EventBatch || len(l.entries[0].event.Events) != 2 {
		t.Fatalf("expected a Batch of 2 events, got %+v", l.entries[0].event)
	}
}

func TestEventLogDoesNotGroupAcrossWindow(t *testing.T) {
	l := NewEventLog()
	t0 := time.Now()
	l.Append(Event{Kind: EventInsert, Pos: 0, Text: "a", CursorID: 1}, t0)
	l.Append(Event{Kind: EventInsert, Pos: 1, Text: "b", CursorID: 1}, t0.Add(time.Second))

	if l.Position() != 2 {
		t.Errorf("expected two separate undo steps after the grouping window elapsed, got %d", l.Position())
	}
}

func TestEventLogDoesNotGroupNewlineInserts(t *testing.T) {
	l := NewEventLog()
	t0 := time.Now()
	l.Append(Event{Kind: EventInsert, Pos: 0, Text: "a", CursorID: 1}, t0)
	l.Append(Event{Kind: EventInsert, Pos: 1, Text: "\n", CursorID: 1}, t0.Add(time.Millisecond))

	if l.Position() != 2 {
		t.Errorf("expected a newline insert to start a new undo step, got position %d", l.Position())
	}
}

func TestEventLogUndoRedo(t *testing.T) {
	l := NewEventLog()
	l.Append(Event{Kind: EventInsert, Pos: 0, Text: "x"}, time.Now())

	var applied []Event
	apply := func(e Event) error { applied = append(applied, e); return nil }

	if err := l.Undo(apply); err != nil {
		t.Fatal(err)
	}
	if applied[0].Kind != EventDelete || applied[0].Pos != 0 || applied[0].Text != "x" {
		t.Errorf("expected inverse Delete, got %+v", applied[0])
	}
	if err := l.Undo(apply); err == nil {
		t.Errorf("expected an error undoing past the start of history")
	}
	if err := l.Redo(apply); err != nil {
		t.Fatal(err)
	}
	if applied[1].Kind != EventInsert || applied[1].Text != "x" {
		t.Errorf("expected redo to reapply the original Insert, got %+v", applied[1])
	}
}

func TestEventLogGlueMarks(t *testing.T) {
	l := NewEventLog()
	l.Append(Event{Kind: EventInsert, Pos: 0, Text: "a"}, time.Now())
	l.MarkUndoGroupsForGluing()
	l.Append(Event{Kind: EventInsert, Pos: 1, Text: "\n"}, time.Now())
	l.Append(Event{Kind: EventInsert, Pos: 2, Text: "\n"}, time.Now())

	if err := l.GlueMarkedUndoGroups(); err != nil {
		t.Fatal(err)
	}
	if l.Position() != 2 {
		t.Fatalf("expected glue to collapse the marked span into one step, position=%d", l.Position())
	}
	if l.entries[1].event.Kind != EventBatch || len(l.entries[1].event.Events) != 2 {
		t.Errorf("expected the glued entry to be a 2-event Batch, got %+v", l.entries[1].event)
	}
}
