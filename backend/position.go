// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import "github.com/freshedit/fresh/backend/layout"

// ViewPosition is a coordinate in the rendered layout: a view line and
// column, plus the source byte it maps to when it isn't inside
// injected/virtual content. It is the position type storage and
// search use once the dispatcher has translated an event's view-space
// position into source bytes.
type ViewPosition = layout.Position

// ViewEventPosition is the view-space position type input Events
// carry, kept distinct from ViewPosition per the two-type split in
// the design notes: the dispatcher is the only place allowed to
// translate between view space (used for rendering continuity across
// an edit) and source bytes (used for storage and search).
type ViewEventPosition struct {
	ViewLine int
	Column   int
}

// Selection is an ordered pair of positions describing a span of text.
// Start and End need not already be ordered; call Normalized to get a
// Selection with Start <= End.
type Selection struct {
	Start ViewPosition
	End   ViewPosition
}

// Normalized returns a Selection with Start <= End by source byte,
// falling back to view-line/column order for virtual positions.
func (s Selection) Normalized() Selection {
	if s.before(s.End, s.Start) {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

func (s Selection) before(a, b ViewPosition) bool {
	if a.HasSource() && b.HasSource() {
		return a.SourceByte < b.SourceByte
	}
	return a.Less(b)
}

// IsEmpty reports whether the selection spans zero width.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}
