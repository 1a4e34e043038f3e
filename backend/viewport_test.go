// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"testing"

	"github.com/freshedit/fresh/backend/layout"
)

func TestViewportFollowCursorScrollsDown(t *testing.T) {
	v := NewViewport(80, 10)
	v.ScrollOff = 2
	v = v.FollowCursor(layout.Position{ViewLine: 20, Column: 0})
	if v.TopViewLine != 13 {
		t.Errorf("expected top view line 13 (20-10+2+1), got %d", v.TopViewLine)
	}
}

func TestViewportFollowCursorScrollsUp(t *testing.T) {
	v := NewViewport(80, 10)
	v.TopViewLine = 20
	v.ScrollOff = 2
	v = v.FollowCursor(layout.Position{ViewLine: 19, Column: 0})
	if v.TopViewLine != 17 {
		t.Errorf("expected top view line 17 (19-2), got %d", v.TopViewLine)
	}
}

func TestViewportVisible(t *testing.T) {
	v := NewViewport(80, 10)
	v.TopViewLine = 5
	if !v.Visible(5) || !v.Visible(14) {
		t.Errorf("expected lines 5 and 14 visible for top=5 height=10")
	}
	if v.Visible(15) || v.Visible(4) {
		t.Errorf("expected lines 15 and 4 not visible")
	}
}
