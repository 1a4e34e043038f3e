// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import "github.com/freshedit/fresh/backend"

type (
	// MarkUndoGroupsForGluingCommand marks the current position in the
	// undo stack as the start of commands to glue, overwriting any
	// existing mark.
	MarkUndoGroupsForGluingCommand struct{}

	// GlueMarkedUndoGroupsCommand merges every entry from the mark to
	// the current position into a single undo step.
	GlueMarkedUndoGroupsCommand struct{}

	// MaybeMarkUndoGroupsForGluingCommand sets the mark only if one
	// isn't already set.
	MaybeMarkUndoGroupsForGluingCommand struct{}

	// UnmarkUndoGroupsForGluingCommand clears any glue mark.
	UnmarkUndoGroupsForGluingCommand struct{}
)

func (c *MarkUndoGroupsForGluingCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	state.EventLog().MarkUndoGroupsForGluing()
	return nil
}

func (c *UnmarkUndoGroupsForGluingCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	state.EventLog().UnmarkUndoGroupsForGluing()
	return nil
}

func (c *GlueMarkedUndoGroupsCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	return state.EventLog().GlueMarkedUndoGroups()
}

func (c *MaybeMarkUndoGroupsForGluingCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	state.EventLog().MaybeMarkUndoGroupsForGluing()
	return nil
}

func init() {
	register("mark_undo_groups_for_gluing", &MarkUndoGroupsForGluingCommand{})
	register("glue_marked_undo_groups", &GlueMarkedUndoGroupsCommand{})
	register("maybe_mark_undo_groups_for_gluing", &MaybeMarkUndoGroupsForGluingCommand{})
	register("unmark_undo_groups_for_gluing", &UnmarkUndoGroupsForGluingCommand{})
}
