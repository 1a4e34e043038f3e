// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package piecetree

import (
	"errors"
	"sort"
)

// Edit is one member of a bulk edit: delete DeleteLen bytes starting
// at Pos, then insert Insert there.
type Edit struct {
	Pos       int
	DeleteLen int
	Insert    string
}

// ErrEditsOverlap is returned by ApplyBulkEdits when the edit list
// isn't sorted by position or two edits touch overlapping ranges --
// the bulk edit algorithm's correctness (observational equivalence to
// applying edits one at a time in descending position order) depends
// on the edits being independent.
var ErrEditsOverlap = errors.New("piecetree: bulk edits overlap or are unsorted")

// ApplyBulkEdits applies every edit in one O(pieces + edits) pass
// instead of the O(edits * pieces) cost of applying them one at a
// time. edits must already be sorted by Pos and must not overlap.
func (t *Tree) ApplyBulkEdits(edits []Edit) (*Tree, error) {
	if len(edits) == 0 {
		return t, nil
	}
	for i, e := range edits {
		if e.Pos < 0 || e.Pos+e.DeleteLen > t.Len() {
			return nil, ErrPositionOutOfRange
		}
		if i > 0 && e.Pos < edits[i-1].Pos+edits[i-1].DeleteLen {
			return nil, ErrEditsOverlap
		}
		if !boundaryOK(t, e.Pos) || !boundaryOK(t, e.Pos+e.DeleteLen) {
			return nil, ErrInvalidUTF8Boundary
		}
	}

	// Step 1: collect split points (every edit's Pos and Pos+DeleteLen).
	splitPoints := make([]int, 0, len(edits)*2)
	for _, e := range edits {
		splitPoints = append(splitPoints, e.Pos, e.Pos+e.DeleteLen)
	}
	sort.Ints(splitPoints)
	splitPoints = dedupInts(splitPoints)

	// Step 2: one traversal, splitting any piece that crosses a split
	// point, merging the sorted split-point stream with the sorted
	// piece-span stream so this stays O(pieces + len(splitPoints)).
	spans := t.flatten()
	var split2 []pieceSpan
	spi := 0
	for _, span := range spans {
		pieceStart, pieceEnd := span.start, span.start+span.piece.Length
		cur := span.piece
		curStart := pieceStart
		for spi < len(splitPoints) && splitPoints[spi] <= curStart {
			spi++
		}
		for spi < len(splitPoints) && splitPoints[spi] < pieceEnd {
			sp := splitPoints[spi]
			before, after := split(t.store, cur, sp-curStart)
			if before.Length > 0 {
				split2 = append(split2, pieceSpan{piece: before, start: curStart})
			}
			cur = after
			curStart = sp
			spi++
		}
		if cur.Length > 0 {
			split2 = append(split2, pieceSpan{piece: cur, start: curStart})
		}
	}

	// Step 3: walk edits and the split pieces in tandem.
	var out []Piece
	pi := 0
	for _, e := range edits {
		editEnd := e.Pos + e.DeleteLen
		for pi < len(split2) && split2[pi].start+split2[pi].piece.Length <= e.Pos {
			out = append(out, split2[pi].piece)
			pi++
		}
		for pi < len(split2) && split2[pi].start >= e.Pos && split2[pi].start+split2[pi].piece.Length <= editEnd {
			pi++ // dropped: fully inside the deleted range
		}
		if e.Insert != "" {
			out = append(out, Piece{Buffer: AddBuffer, Start: t.store.Append(e.Insert), Length: len(e.Insert), Newlines: countNewlines(e.Insert)})
		}
	}
	for ; pi < len(split2); pi++ {
		out = append(out, split2[pi].piece)
	}

	// Step 4: build once.
	return t.derive(out), nil
}

func dedupInts(s []int) []int {
	if len(s) == 0 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
