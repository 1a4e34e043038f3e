// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"reflect"
	"testing"
)

// These tests once drove a View wrapping a plain string Buffer plus a
// live TextMate parse thread (textmate.LoadTheme/Transform/ScopeName).
// That surface doesn't survive this module's redesign: content lives
// in Buffer/EditorState, cursors in Cursors, and the syntax-grammar
// engine is out of scope (see DESIGN.md). What does survive --
// word/line classification and the per-split status bar -- is covered
// below against the new types. rubex itself lives on in
// commands.ReplaceAllCommand's regex mode.

func TestClassifyWordBoundaries(t *testing.T) {
	b := NewBufferFromText("abc Hi -test lime")
	tests := []struct {
		point int
		want  int
	}{
		{0, ClassLineStart | ClassWordStart},
		{3, ClassWordEnd},
		{4, ClassWordStart},
		{7, ClassPunctuationStart},
		{8, ClassPunctuationEnd | ClassWordStart},
	}
	for i, test := range tests {
		if got := b.Classify(test.point); got&test.want != test.want {
			t.Errorf("test %d: Classify(%d) = %d, want it to include %d", i, test.point, got, test.want)
		}
	}
}

func TestFindByClassForward(t *testing.T) {
	b := NewBufferFromText("abc Hi -test lime")
	if got := b.FindByClass(0, true, ClassWordStart); got != 4 {
		t.Errorf("expected next word start at 4, got %d", got)
	}
}

func TestFindByClassBackward(t *testing.T) {
	b := NewBufferFromText("abc Hi -test lime")
	if got := b.FindByClass(9, false, ClassWordStart); got != 8 {
		t.Errorf("expected previous word start at 8, got %d", got)
	}
}

func TestExpandByClassWord(t *testing.T) {
	b := NewBufferFromText("abc Hi -test lime")
	got := b.ExpandByClass(Region{A: 1, B: 2}, ClassWordStart|ClassWordEnd)
	want := Region{A: 0, B: 3}
	if got != want {
		t.Errorf("ExpandByClass({1,2}) = %v, want %v", got, want)
	}
}

func TestSetGetEraseStatus(t *testing.T) {
	vs := NewBufferViewState(NewBuffer(), nil)
	vs.SetStatus("a", "b")
	vs.SetStatus("", "c")
	vs.SetStatus("d", "")
	want := map[string]string{"a": "b", "": "c", "d": ""}
	if !reflect.DeepEqual(vs.status, want) {
		t.Errorf("expected %v, got %v", want, vs.status)
	}
	if vs.GetStatus("a") != "b" {
		t.Errorf("GetStatus(a) = %q, want b", vs.GetStatus("a"))
	}
	vs.EraseStatus("a")
	if vs.GetStatus("a") != "" {
		t.Errorf("expected a erased, got %q", vs.GetStatus("a"))
	}
}
