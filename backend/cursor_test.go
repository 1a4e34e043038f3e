// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import "testing"

func TestCursorsAdjustForEditMergesAndKeepsOlderPrimary(t *testing.T) {
	c := NewCursors(ViewPosition{SourceByte: 1})
	first := c.Primary().ID
	c.Insert(ViewPosition{SourceByte: 3})
	c.Insert(ViewPosition{SourceByte: 5})

	// Deleting [2,5) of "abcdef" -> "abf": 1 stays, 3 and 5 both
	// collapse to 2 and must merge, keeping the oldest id.
	c.AdjustForEdit(2, 5, 0)

	if c.Len() != 2 {
		t.Fatalf("expected 2 cursors after merge, got %d", c.Len())
	}
	positions := map[int]bool{}
	for _, cur := range c.Iter() {
		positions[cur.Position.SourceByte] = true
	}
	if !positions[1] || !positions[2] {
		t.Errorf("expected cursors at {1,2}, got %v", c.Iter())
	}
	survivorAt2 := CursorID(0)
	for id, cur := range c.byID {
		if cur.Position.SourceByte == 2 {
			survivorAt2 = id
		}
	}
	if c.Primary().ID != survivorAt2 {
		t.Errorf("expected primary to be the merge survivor %d, got %d", survivorAt2, c.Primary().ID)
	}
	if c.Primary().ID == first {
		t.Errorf("the untouched cursor at byte 1 should not have become primary")
	}
}

func TestCursorsInsertBecomesPrimary(t *testing.T) {
	c := NewCursors(ViewPosition{SourceByte: 0})
	second := c.Insert(ViewPosition{SourceByte: 10})
	if c.Primary().ID != second.ID {
		t.Errorf("expected newly inserted cursor to be primary")
	}
}

func TestCursorsRemoveFallsBackToOldest(t *testing.T) {
	c := NewCursors(ViewPosition{SourceByte: 0})
	first := c.Primary().ID
	second := c.Insert(ViewPosition{SourceByte: 5})
	if c.Primary().ID != second.ID {
		t.Fatalf("setup: expected second cursor to be primary")
	}
	c.Remove(second.ID)
	if c.Primary().ID != first {
		t.Errorf("expected primary to fall back to oldest remaining cursor %d, got %d", first, c.Primary().ID)
	}
}

func TestCursorSelectionEmptyWithoutAnchor(t *testing.T) {
	cur := Cursor{Position: ViewPosition{SourceByte: 5}}
	if !cur.Selection().IsEmpty() {
		t.Errorf("expected empty selection for cursor with no anchor")
	}
}
