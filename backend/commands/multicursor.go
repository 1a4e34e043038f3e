// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import (
	"strings"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/layout"
)

// lineEndColumn returns the column one past the last byte of viewLine,
// the fallback add_cursor_above/below use when the primary's column
// would land past a shorter target line.
func lineEndColumn(l *layout.Layout, viewLine int) int {
	line, ok := l.Line(viewLine)
	if !ok || line.SourceStart < 0 {
		return 0
	}
	return line.SourceEnd - line.SourceStart
}

// addCursorVertical creates a new cursor delta view lines away from
// the primary, at the primary's column or the target line's end
// column, whichever is smaller.
func addCursorVertical(state *backend.EditorState, view *backend.BufferViewState, delta int) error {
	l := state.Layout()
	primary := view.Cursors.Primary().Position
	target := primary.ViewLine + delta
	if target < 0 || target >= l.ViewLineCount() {
		return nil
	}
	col := primary.Column
	if end := lineEndColumn(l, target); col > end {
		col = end
	}
	pos := layout.Position{ViewLine: target, Column: col}
	if b, ok := l.ViewToSource(pos); ok {
		pos.SourceByte = b
	} else {
		pos.SourceByte = -1
	}
	view.Cursors.Insert(pos)
	return nil
}

// AddCursorAboveCommand creates a new cursor one view line above the
// primary, becoming the new primary.
type AddCursorAboveCommand struct{}

func (c *AddCursorAboveCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	return addCursorVertical(state, view, -1)
}

// AddCursorBelowCommand creates a new cursor one view line below the
// primary, becoming the new primary.
type AddCursorBelowCommand struct{}

func (c *AddCursorBelowCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	return addCursorVertical(state, view, 1)
}

// AddCursorAtNextMatchCommand extracts the primary selection's text
// (expanding an empty selection to its containing word first), then
// searches forward for the next occurrence and adds a cursor there
// with a matching selection, becoming the new primary.
type AddCursorAtNextMatchCommand struct{}

func (c *AddCursorAtNextMatchCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	primary := view.Cursors.Primary()
	sel := primary.Selection().Normalized()
	start, end := sel.Start.SourceByte, sel.End.SourceByte

	buf := state.Buffer()
	if start == end {
		region := buf.ExpandByClass(
			backend.Region{A: start, B: end},
			backend.ClassWordStart|backend.ClassWordEnd,
		)
		start, end = region.Begin(), region.End()
	}
	if start == end {
		return nil
	}

	needle, err := buf.Substr(start, end)
	if err != nil {
		return err
	}

	full, err := buf.Substr(0, buf.Size())
	if err != nil {
		return err
	}
	idx := strings.Index(full[end:], needle)
	if idx < 0 {
		return nil
	}
	matchStart := end + idx
	matchEnd := matchStart + len(needle)

	l := state.Layout()
	anchorPos := l.SourceToView(matchStart)
	posPos := l.SourceToView(matchEnd)

	cur := view.Cursors.Insert(posPos)
	cur.Anchor = &anchorPos
	return nil
}

func init() {
	register("add_cursor_above", &AddCursorAboveCommand{})
	register("add_cursor_below", &AddCursorBelowCommand{})
	register("add_cursor_at_next_match", &AddCursorAtNextMatchCommand{})
}
