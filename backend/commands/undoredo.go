// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import "github.com/freshedit/fresh/backend"

type (
	// UndoCommand steps the buffer's event log back one entry.
	UndoCommand struct{}
	// RedoCommand re-applies the entry Undo most recently stepped past.
	RedoCommand struct{}
)

func (c *UndoCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	cursors, viewport, err := state.Undo(view.Cursors, view.Viewport)
	if err != nil {
		return err
	}
	view.Cursors, view.Viewport = cursors, viewport
	return nil
}

func (c *RedoCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	cursors, viewport, err := state.Redo(view.Cursors, view.Viewport)
	if err != nil {
		return err
	}
	view.Cursors, view.Viewport = cursors, viewport
	return nil
}

func init() {
	register("undo", &UndoCommand{})
	register("redo", &RedoCommand{})
	// soft_undo/soft_redo bypass the grouping heuristic in the teacher
	// by undoing a single logged entry instead of a glued group; here
	// grouping already happens at append time, so both names share the
	// same behavior.
	register("soft_undo", &UndoCommand{})
	register("soft_redo", &RedoCommand{})
}
