// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import "testing"

func TestWindowNewFile(t *testing.T) {
	w := GetEditor().NewWindow()
	defer w.Close()

	w.NewFile()
	if got := len(w.states); got != 1 {
		t.Errorf("expected 1 open buffer, got %d", got)
	}
}

func TestWindowCloseBuffer(t *testing.T) {
	w := GetEditor().NewWindow()
	defer w.Close()

	state, _ := w.NewFile()
	l := len(w.states)

	w.CloseBuffer(state.Buffer().Id())
	if got := len(w.states); got != l-1 {
		t.Errorf("expected %d open buffers, got %d", l-1, got)
	}
}

func TestWindowActiveView(t *testing.T) {
	w := GetEditor().NewWindow()
	defer w.Close()

	w.NewFile()
	_, vs1 := w.NewFile()

	if w.ActiveSplit().Active() != vs1 {
		t.Error("expected the second file's state to be active")
	}
}

func TestWindowClose(t *testing.T) {
	ed := GetEditor()
	l := len(ed.Windows())
	w := ed.NewWindow()
	w.NewFile()

	w.Close()

	if len(ed.Windows()) != l {
		t.Errorf("expected window to close, still have %d open", len(ed.Windows()))
	}
}

func TestWindowCloseAllBuffers(t *testing.T) {
	w := GetEditor().NewWindow()
	defer w.Close()

	w.NewFile()
	w.NewFile()

	w.CloseAllBuffers()

	if got := len(w.states); got != 0 {
		t.Errorf("expected 0 open buffers, got %d", got)
	}
}
