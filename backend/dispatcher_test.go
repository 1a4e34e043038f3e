// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"testing"

	"github.com/freshedit/fresh/backend/piecetree"
)

func TestDispatcherBatchForFewCursors(t *testing.T) {
	// Padded well past 3/0.1% so only the cursor-count threshold is in
	// play here; the percentage threshold is exercised by a buffer
	// sized to cross it in TestDispatcherBulkForManyCursors.
	padding := make([]byte, 4000)
	for i := range padding {
		padding[i] = 'a'
	}
	buf := NewBufferFromText("HelloWorldFoo!!" + string(padding))
	s := NewEditorState(buf)
	vs := NewBufferViewState(buf, nil)
	vs.Cursors = NewCursors(ViewPosition{SourceByte: 0})
	vs.Cursors.Insert(ViewPosition{SourceByte: 5})
	vs.Cursors.Insert(ViewPosition{SourceByte: 10})

	var d Dispatcher
	err := d.Dispatch(s, vs, func(sel Selection) piecetree.Edit {
		return piecetree.Edit{Pos: sel.Start.SourceByte, Insert: "X"}
	})
	if err != nil {
		t.Fatal(err)
	}
	text, _ := buf.Substr(0, buf.Size())
	if text[:18] != "XHelloXWorldXFoo!!" {
		t.Fatalf("expected XHelloXWorldXFoo!! prefix, got %q", text[:18])
	}
	if s.EventLog().Position() != 1 {
		t.Errorf("expected 3 cursor edits to collapse into one undo step, got position %d", s.EventLog().Position())
	}
}

func TestDispatcherBulkForManyCursors(t *testing.T) {
	buf := NewBufferFromText("0123456789")
	s := NewEditorState(buf)
	vs := NewBufferViewState(buf, nil)
	vs.Cursors = NewCursors(ViewPosition{SourceByte: 0})
	for _, b := range []int{2, 4, 6, 8, 9} {
		vs.Cursors.Insert(ViewPosition{SourceByte: b})
	}
	if vs.Cursors.Len() != 6 {
		t.Fatalf("setup: expected 6 cursors, got %d", vs.Cursors.Len())
	}

	var d Dispatcher
	err := d.Dispatch(s, vs, func(sel Selection) piecetree.Edit {
		return piecetree.Edit{Pos: sel.Start.SourceByte, Insert: "-"}
	})
	if err != nil {
		t.Fatal(err)
	}
	text, _ := buf.Substr(0, buf.Size())
	want := "-01-23-45-67-8-9"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
	last := s.EventLog().entries[s.EventLog().Position()-1].event
	if last.Kind != EventBulkEdit {
		t.Errorf("expected the 6-cursor edit to log as a BulkEdit, got kind %v", last.Kind)
	}
}
