// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"sort"
	"time"

	"github.com/limetext/util"

	"github.com/freshedit/fresh/backend/piecetree"
)

// bulkEditCursorThreshold and bulkEditSizeFraction set the point past
// which the dispatcher emits a BulkEdit instead of a semantically
// grouped Batch: whichever threshold an action's edit count crosses
// first wins.
const (
	bulkEditCursorThreshold = 4
	bulkEditSizeFraction    = 0.001 // 0.1%
)

// EditFunc computes the concrete source-byte edit a single cursor's
// action turns into. It receives the cursor's pre-edit Selection and
// must not read any other cursor's position -- the Dispatcher is the
// only thing allowed to reason about interactions between cursors.
type EditFunc func(sel Selection) piecetree.Edit

// Dispatcher turns a per-cursor action into events against one
// EditorState/BufferViewState pair, choosing between a Batch (small
// cursor counts, grouped into one semantic undo step) and a BulkEdit
// (large counts, one tree rebuild) per the size thresholds above.
type Dispatcher struct{}

// Dispatch computes editFor(cursor.Selection()) for every cursor (in
// left-to-right source order so earlier edits don't invalidate later
// ones before they're captured) and applies the result as a single
// undo step.
func (d Dispatcher) Dispatch(state *EditorState, view *BufferViewState, editFor EditFunc) error {
	cursors := view.Cursors.Iter()
	if len(cursors) == 0 {
		return nil
	}
	edits := make([]piecetree.Edit, 0, len(cursors))
	cursorIDs := make([]CursorID, 0, len(cursors))
	for _, c := range cursors {
		e := editFor(c.Selection())
		edits = append(edits, e)
		cursorIDs = append(cursorIDs, c.ID)
	}

	bufSize := state.Buffer().Size()
	useBulk := len(edits) > bulkEditCursorThreshold
	if bufSize > 0 && float64(len(edits))/float64(bufSize) > bulkEditSizeFraction {
		useBulk = true
	}

	if useBulk {
		return d.dispatchBulk(state, view, edits)
	}
	return d.dispatchBatch(state, view, edits, cursorIDs)
}

// DispatchEdits applies a caller-computed list of edits as a single
// undo step, choosing bulk vs batch by the same thresholds as
// Dispatch. Unlike Dispatch, the edits need not correspond 1:1 to the
// view's current cursors -- toggle_line_comment, indent_selection,
// and replace_all compute one edit per affected line or match rather
// than per cursor.
func (d Dispatcher) DispatchEdits(state *EditorState, view *BufferViewState, edits []piecetree.Edit) error {
	if len(edits) == 0 {
		return nil
	}
	bufSize := state.Buffer().Size()
	useBulk := len(edits) > bulkEditCursorThreshold
	if bufSize > 0 && float64(len(edits))/float64(bufSize) > bulkEditSizeFraction {
		useBulk = true
	}
	if useBulk {
		return d.dispatchBulk(state, view, edits)
	}
	return d.dispatchBatch(state, view, edits, make([]CursorID, len(edits)))
}

// dispatchBatch applies edits one at a time, in descending position
// order so each edit's byte offsets are still valid when it commits,
// wrapped in a single Batch undo entry.
func (d Dispatcher) dispatchBatch(state *EditorState, view *BufferViewState, edits []piecetree.Edit, cursorIDs []CursorID) error {
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return edits[order[i]].Pos > edits[order[j]].Pos })

	subs := make([]Event, 0, len(edits)*2)
	for _, i := range order {
		e := edits[i]
		cid := cursorIDs[i]
		if e.DeleteLen > 0 {
			deleted, err := state.Buffer().Substr(e.Pos, e.Pos+e.DeleteLen)
			if err != nil {
				return err
			}
			subs = append(subs, Event{Kind: EventDelete, Pos: e.Pos, Text: deleted, CursorID: cid})
		}
		if e.Insert != "" {
			subs = append(subs, Event{Kind: EventInsert, Pos: e.Pos, Text: e.Insert, CursorID: cid})
		}
	}
	if len(subs) == 0 {
		return nil
	}
	batch := Event{Kind: EventBatch, Events: subs}
	cursors, viewport, err := state.Apply(batch, view.Cursors, view.Viewport)
	if err != nil {
		return err
	}
	view.Cursors = cursors
	view.Viewport = viewport
	return nil
}

// dispatchBulk applies every edit in one tree rebuild via
// piecetree.ApplyBulkEdits, then derives the post-edit cursor
// positions by replaying the same edits in descending order against a
// clone of the pre-edit cursors -- the equivalence the piece tree's
// bulk algorithm itself guarantees for buffer content applies equally
// to cursor projection.
func (d Dispatcher) dispatchBulk(state *EditorState, view *BufferViewState, edits []piecetree.Edit) error {
	p := util.Prof.Enter("dispatcher.bulk")
	defer p.Exit()

	oldTree := state.Buffer().Tree()
	oldCursors := view.Cursors.Clone()

	newTree, err := oldTree.ApplyBulkEdits(edits)
	if err != nil {
		return err
	}

	newCursors := oldCursors.Clone()
	order := make([]int, len(edits))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return edits[order[i]].Pos > edits[order[j]].Pos })
	for _, i := range order {
		e := edits[i]
		newCursors.AdjustForEdit(e.Pos, e.Pos+e.DeleteLen, len(e.Insert))
	}

	ev := Event{
		Kind:       EventBulkEdit,
		OldTree:    oldTree,
		NewTree:    newTree,
		OldCursors: oldCursors,
		NewCursors: newCursors,
	}
	state.log.Append(ev, time.Now())
	state.buffer.SetTree(newTree)
	for _, e := range edits {
		if e.DeleteLen > 0 {
			Hooks.FireAfterDelete(state.buffer.Name(), e.Pos, e.Pos+e.DeleteLen)
		}
		if e.Insert != "" {
			Hooks.FireAfterInsert(state.buffer.Name(), e.Pos, e.Pos+len(e.Insert))
		}
	}
	state.refreshLayout()
	view.Viewport = view.Viewport.RebaseAnchor(state.layout)
	newCursors.RefreshViewCoords(state.layout)
	view.Cursors = newCursors
	if primary := newCursors.Primary(); primary != nil {
		view.Viewport = view.Viewport.FollowCursor(primary.Position)
		Hooks.FireCursorMoved(state.buffer.Name())
	}
	view.Viewport = view.Viewport.SetAnchor(state.layout)
	Hooks.FireBufferModified(state.buffer.Name())
	return nil
}
