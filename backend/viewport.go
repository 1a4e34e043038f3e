// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import "github.com/freshedit/fresh/backend/layout"

// Viewport tracks what part of a view is currently scrolled into
// frame. It never reads the cursor itself -- EditorState.Apply passes
// the primary cursor's view position in and gets back an adjusted
// Viewport, keeping the scroll-off policy out of the cursor model.
type Viewport struct {
	TopViewLine int
	AnchorByte  int
	Width       int
	Height      int
	LeftColumn  int

	// ScrollOff is the minimum number of lines/columns kept between the
	// cursor and the viewport edge during cursor-driven navigation.
	ScrollOff int
}

// NewViewport creates a Viewport of the given size with a 2-line
// scroll-off, matching common terminal editor defaults.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: width, Height: height, ScrollOff: 2}
}

// FollowCursor applies the scroll-off policy: if primary's view line
// falls outside [TopViewLine, TopViewLine+Height), or within ScrollOff
// lines of an edge, the viewport scrolls minimally to restore the
// margin. Explicit scroll commands should mutate TopViewLine directly
// instead of calling this.
func (v Viewport) FollowCursor(primary layout.Position) Viewport {
	if v.Height <= 0 {
		return v
	}
	top := v.TopViewLine
	off := v.ScrollOff
	if off*2 >= v.Height {
		off = 0
	}
	if primary.ViewLine < top+off {
		top = primary.ViewLine - off
	} else if primary.ViewLine >= top+v.Height-off {
		top = primary.ViewLine - v.Height + off + 1
	}
	if top < 0 {
		top = 0
	}
	v.TopViewLine = top

	left := v.LeftColumn
	if v.Width > 0 {
		if primary.Column < left {
			left = primary.Column
		} else if primary.Column >= left+v.Width {
			left = primary.Column - v.Width + 1
		}
		if left < 0 {
			left = 0
		}
	}
	v.LeftColumn = left
	return v
}

// ScrollTo sets TopViewLine directly, bypassing scroll-off, for
// explicit scroll commands (e.g. page up/down, scroll wheel).
func (v Viewport) ScrollTo(viewLine int) Viewport {
	if viewLine < 0 {
		viewLine = 0
	}
	v.TopViewLine = viewLine
	return v
}

// RebaseAnchor recomputes TopViewLine from AnchorByte against a freshly
// rebuilt Layout, so that content visible above the viewport staying
// put after an edit keeps the viewport's first visible line stable.
func (v Viewport) RebaseAnchor(l *layout.Layout) Viewport {
	pos := l.SourceToView(v.AnchorByte)
	if pos.HasSource() || pos.SourceByte != -1 {
		v.TopViewLine = pos.ViewLine
	}
	return v
}

// SetAnchor records the source byte that should anchor the top of the
// viewport across future edits -- typically the byte mapped from the
// current TopViewLine.
func (v Viewport) SetAnchor(l *layout.Layout) Viewport {
	if line, ok := l.Line(v.TopViewLine); ok && line.SourceStart >= 0 {
		v.AnchorByte = line.SourceStart
	}
	return v
}

// Visible reports whether viewLine is within the current frame.
func (v Viewport) Visible(viewLine int) bool {
	return viewLine >= v.TopViewLine && viewLine < v.TopViewLine+v.Height
}
