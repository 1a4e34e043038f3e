// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package piecetree

import "testing"

func TestInsertIntoEmpty(t *testing.T) {
	tr := NewTree("")
	tr2, err := tr.Insert(0, "abc")
	if err != nil {
		t.Fatal(err)
	}
	if tr2.Len() != 3 {
		t.Errorf("expected len 3, got %d", tr2.Len())
	}
	s, err := tr2.Slice(0, 3)
	if err != nil {
		t.Fatal(err)
	}
	if s != "abc" {
		t.Errorf("expected abc, got %s", s)
	}
}

func TestBulkInsertFourCursors(t *testing.T) {
	tr := NewTree("HelloWorldFoo!!")
	edits := []Edit{
		{Pos: 0, Insert: "X"},
		{Pos: 5, Insert: "X"},
		{Pos: 10, Insert: "X"},
		{Pos: 15, Insert: "X"},
	}
	tr2, err := tr.ApplyBulkEdits(edits)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := tr2.Slice(0, tr2.Len())
	want := "XHelloXWorldXFoo!!X"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if tr2.Len() != 19 {
		t.Errorf("expected len 19, got %d", tr2.Len())
	}
	// The pre-edit tree must still read as the original content: this
	// is the snapshot-sharing property undo relies on.
	orig, _ := tr.Slice(0, tr.Len())
	if orig != "HelloWorldFoo!!" {
		t.Errorf("original tree mutated: %q", orig)
	}
}

func TestBulkEditEquivalence(t *testing.T) {
	edits := []Edit{
		{Pos: 0, Insert: "X"},
		{Pos: 5, Insert: "X"},
		{Pos: 10, Insert: "X"},
		{Pos: 15, Insert: "X"},
	}
	bulk := NewTree("HelloWorldFoo!!")
	bulkResult, err := bulk.ApplyBulkEdits(edits)
	if err != nil {
		t.Fatal(err)
	}

	seq := NewTree("HelloWorldFoo!!")
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		var err error
		if e.DeleteLen > 0 {
			seq, err = seq.Delete(e.Pos, e.Pos+e.DeleteLen)
			if err != nil {
				t.Fatal(err)
			}
		}
		seq, err = seq.Insert(e.Pos, e.Insert)
		if err != nil {
			t.Fatal(err)
		}
	}

	bulkText, _ := bulkResult.Slice(0, bulkResult.Len())
	seqText, _ := seq.Slice(0, seq.Len())
	if bulkText != seqText {
		t.Errorf("bulk edit %q != sequential descending-order edit %q", bulkText, seqText)
	}
}

func TestDeleteMerge(t *testing.T) {
	tr := NewTree("abcdef")
	tr2, err := tr.Delete(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := tr2.Slice(0, tr2.Len())
	if got != "abf" {
		t.Errorf("expected abf, got %s", got)
	}
}

func TestLineAt(t *testing.T) {
	tr := NewTree("0123456789ABCDEF\nnext line\n")
	start, text, err := tr.LineAt(12)
	if err != nil {
		t.Fatal(err)
	}
	if start != 0 {
		t.Errorf("expected line start 0, got %d", start)
	}
	if text != "0123456789ABCDEF\n" {
		t.Errorf("unexpected line text %q", text)
	}
}

func TestNewlineCountInvariant(t *testing.T) {
	tr := NewTree("a\nb\nc")
	tr, _ = tr.Insert(1, "x\ny")
	text, _ := tr.Slice(0, tr.Len())
	expected := 0
	for _, r := range text {
		if r == '\n' {
			expected++
		}
	}
	if tr.NewlineCount() != expected {
		t.Errorf("expected %d newlines, got %d", expected, tr.NewlineCount())
	}
	if tr.Len() != len(text) {
		t.Errorf("expected len %d, got %d", len(text), tr.Len())
	}
}

func TestInvalidUTF8Boundary(t *testing.T) {
	tr := NewTree("h\xc3\xa9llo") // "héllo"
	// byte 2 is the continuation byte of é, splitting it is invalid.
	if _, err := tr.Insert(2, "x"); err != ErrInvalidUTF8Boundary {
		t.Errorf("expected ErrInvalidUTF8Boundary, got %v", err)
	}
}

func TestBulkEditsOverlapRejected(t *testing.T) {
	tr := NewTree("0123456789")
	_, err := tr.ApplyBulkEdits([]Edit{
		{Pos: 0, DeleteLen: 5, Insert: "x"},
		{Pos: 2, DeleteLen: 2, Insert: "y"},
	})
	if err != ErrEditsOverlap {
		t.Errorf("expected ErrEditsOverlap, got %v", err)
	}
}

func TestPositionOutOfRange(t *testing.T) {
	tr := NewTree("abc")
	if _, err := tr.Insert(10, "x"); err != ErrPositionOutOfRange {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
	if _, err := tr.Delete(0, 10); err != ErrPositionOutOfRange {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
}
