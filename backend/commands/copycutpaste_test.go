// Copyright 2014 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshedit/fresh/backend"
)

func withFakeClipboard(t *testing.T) *string {
	t.Helper()
	clip := new(string)
	SetClipboardFuncs(
		func(s string) error { *clip = s; return nil },
		func() (string, error) { return *clip, nil },
	)
	t.Cleanup(ResetClipboardFuncs)
	return clip
}

func newTestView(text string, cursorBytes ...int) (*backend.EditorState, *backend.BufferViewState) {
	buf := backend.NewBufferFromText(text)
	state := backend.NewEditorState(buf)
	vs := backend.NewBufferViewState(buf, nil)
	vs.Cursors = backend.NewCursors(backend.ViewPosition{SourceByte: cursorBytes[0]})
	for _, b := range cursorBytes[1:] {
		vs.Cursors.Insert(backend.ViewPosition{SourceByte: b})
	}
	vs.Cursors.RefreshViewCoords(state.Layout())
	return state, vs
}

func TestCopyNonEmptySelection(t *testing.T) {
	clip := withFakeClipboard(t)
	state, vs := newTestView("test string", 1)
	pos := vs.Cursors.Primary().Position
	anchor := backend.ViewPosition{SourceByte: 3}
	vs.Cursors.Primary().Position = backend.ViewPosition{SourceByte: 1}
	vs.Cursors.Primary().Anchor = &anchor
	_ = pos

	require.NoError(t, Run("copy", state, vs, nil))
	assert.Equal(t, "es", *clip)
	text, _ := state.Buffer().Substr(0, state.Buffer().Size())
	assert.Equal(t, "test string", text, "copy must not modify the buffer")
}

func TestCopyEmptySelectionCopiesLine(t *testing.T) {
	clip := withFakeClipboard(t)
	state, vs := newTestView("test string", 3)

	require.NoError(t, Run("copy", state, vs, nil))
	assert.Equal(t, "test string", *clip, "expected whole line copied")
}

func TestCutRemovesSelection(t *testing.T) {
	clip := withFakeClipboard(t)
	state, vs := newTestView("test string", 1)
	anchor := backend.ViewPosition{SourceByte: 3}
	vs.Cursors.Primary().Anchor = &anchor

	require.NoError(t, Run("cut", state, vs, nil))
	assert.Equal(t, "es", *clip)
	text, _ := state.Buffer().Substr(0, state.Buffer().Size())
	assert.Equal(t, "tt string", text)
}

func TestPasteInsertsAtCursor(t *testing.T) {
	clip := withFakeClipboard(t)
	*clip = "XY"
	state, vs := newTestView("test string", 4)

	if err := Run("paste", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	text, _ := state.Buffer().Substr(0, state.Buffer().Size())
	if text != "testXY string" {
		t.Errorf("expected testXY string, got %q", text)
	}
}

func TestPasteReplacesSelection(t *testing.T) {
	clip := withFakeClipboard(t)
	*clip = "XY"
	state, vs := newTestView("test string", 1)
	anchor := backend.ViewPosition{SourceByte: 3}
	vs.Cursors.Primary().Anchor = &anchor

	if err := Run("paste", state, vs, nil); err != nil {
		t.Fatal(err)
	}
	text, _ := state.Buffer().Substr(0, state.Buffer().Size())
	if text != "tXYt string" {
		t.Errorf("expected tXYt string, got %q", text)
	}
}
