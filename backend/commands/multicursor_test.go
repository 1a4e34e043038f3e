// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import "testing"

func TestAddCursorBelowSameColumn(t *testing.T) {
	state, vs := newTestView("ab\ncd\nef", 1) // primary at 'b', view line 0 col 1
	if err := Run("add_cursor_below", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	if vs.Cursors.Len() != 2 {
		t.Fatalf("expected 2 cursors, got %d", vs.Cursors.Len())
	}
	p := vs.Cursors.Primary().Position
	if p.ViewLine != 1 || p.Column != 1 {
		t.Errorf("expected new primary at line 1 col 1, got line %d col %d", p.ViewLine, p.Column)
	}
}

func TestAddCursorBelowClampsToShorterLine(t *testing.T) {
	state, vs := newTestView("abcd\nef", 3) // primary at col 3, line 0
	if err := Run("add_cursor_below", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	p := vs.Cursors.Primary().Position
	if p.ViewLine != 1 || p.Column != 2 {
		t.Errorf("expected clamp to line 1 col 2 (end of \"ef\"), got line %d col %d", p.ViewLine, p.Column)
	}
}

func TestAddCursorAboveAtTopIsNoop(t *testing.T) {
	state, vs := newTestView("abc", 1)
	if err := Run("add_cursor_above", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	if vs.Cursors.Len() != 1 {
		t.Errorf("expected no new cursor at the first view line, got %d cursors", vs.Cursors.Len())
	}
}

func TestAddCursorAtNextMatchExpandsWordAndFindsNext(t *testing.T) {
	state, vs := newTestView("foo bar foo baz foo", 0) // primary inside first "foo"
	if err := Run("add_cursor_at_next_match", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	if vs.Cursors.Len() != 2 {
		t.Fatalf("expected 2 cursors, got %d", vs.Cursors.Len())
	}
	p := vs.Cursors.Primary()
	if p.Position.SourceByte != 11 {
		t.Errorf("expected new primary at byte 11 (end of second \"foo\"), got %d", p.Position.SourceByte)
	}
	if p.Anchor == nil || p.Anchor.SourceByte != 8 {
		t.Errorf("expected anchor at byte 8 (start of second \"foo\")")
	}
}

func TestAddCursorAtNextMatchNoFurtherMatchIsNoop(t *testing.T) {
	state, vs := newTestView("foo bar", 0)
	if err := Run("add_cursor_at_next_match", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	if vs.Cursors.Len() != 1 {
		t.Errorf("expected no new cursor when there is no further match, got %d cursors", vs.Cursors.Len())
	}
}
