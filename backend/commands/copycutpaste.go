// Copyright 2014 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/piecetree"
)

// writeClipboard and readClipboard are package vars so tests can
// substitute a fake clipboard instead of touching the host OS's,
// mirroring the teacher's Editor.SetClipboardFuncs.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// SetClipboardFuncs overrides the clipboard backend, for tests.
func SetClipboardFuncs(write func(string) error, read func() (string, error)) {
	writeClipboard = write
	readClipboard = read
}

// ResetClipboardFuncs restores the real OS clipboard.
func ResetClipboardFuncs() {
	writeClipboard = clipboard.WriteAll
	readClipboard = clipboard.ReadAll
}

type rng struct{ start, end int }

// selectionRanges returns each cursor's selection in source-byte
// space, widening an empty selection to its containing line (plus
// trailing newline) the way Sublime's copy/cut do when nothing is
// selected.
func selectionRanges(state *backend.EditorState, view *backend.BufferViewState) []rng {
	cursors := view.Cursors.Iter()
	out := make([]rng, len(cursors))
	for i, c := range cursors {
		sel := c.Selection().Normalized()
		start, end := sel.Start.SourceByte, sel.End.SourceByte
		if sel.IsEmpty() {
			start, end = state.Buffer().FullLine(start)
		}
		out[i] = rng{start, end}
	}
	return out
}

// CopyCommand copies every cursor's selection (or containing line, if
// the selection is empty) to the clipboard, joined by newlines.
type CopyCommand struct{}

func (c *CopyCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	ranges := selectionRanges(state, view)
	texts := make([]string, len(ranges))
	for i, r := range ranges {
		s, err := state.Buffer().Substr(r.start, r.end)
		if err != nil {
			return err
		}
		texts[i] = s
	}
	return writeClipboard(strings.Join(texts, "\n"))
}

// CutCommand copies then deletes every cursor's selection (or line).
type CutCommand struct{}

func (c *CutCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	ranges := selectionRanges(state, view)
	texts := make([]string, len(ranges))
	for i, r := range ranges {
		s, err := state.Buffer().Substr(r.start, r.end)
		if err != nil {
			return err
		}
		texts[i] = s
	}
	if err := writeClipboard(strings.Join(texts, "\n")); err != nil {
		return err
	}
	i := 0
	var d backend.Dispatcher
	return d.Dispatch(state, view, func(sel backend.Selection) piecetree.Edit {
		r := ranges[i]
		i++
		return piecetree.Edit{Pos: r.start, DeleteLen: r.end - r.start}
	})
}

// PasteCommand inserts the clipboard's content at every cursor,
// replacing each cursor's selection if it has one.
type PasteCommand struct{}

func (c *PasteCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	text, err := readClipboard()
	if err != nil {
		return err
	}
	var d backend.Dispatcher
	return d.Dispatch(state, view, func(sel backend.Selection) piecetree.Edit {
		sel = sel.Normalized()
		return piecetree.Edit{Pos: sel.Start.SourceByte, DeleteLen: sel.End.SourceByte - sel.Start.SourceByte, Insert: text}
	})
}

func init() {
	register("copy", &CopyCommand{})
	register("cut", &CutCommand{})
	register("paste", &PasteCommand{})
}
