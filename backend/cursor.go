// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"sort"

	"github.com/freshedit/fresh/backend/layout"
)

// CursorID identifies a Cursor for its lifetime. IDs are assigned
// monotonically, so comparing IDs tells you which cursor is older.
type CursorID uint64

// Cursor is a single insertion point plus an optional anchor; when
// Anchor is non-nil the pair describes a selection running from
// Anchor to Position (Position always holds the actual caret).
type Cursor struct {
	ID       CursorID
	Position ViewPosition
	Anchor   *ViewPosition
}

// Selection returns the Cursor's selected range. A cursor with no
// anchor has an empty selection at its own position.
func (c Cursor) Selection() Selection {
	if c.Anchor == nil {
		return Selection{Start: c.Position, End: c.Position}
	}
	return Selection{Start: *c.Anchor, End: c.Position}
}

// Cursors owns a set of Cursor values keyed by CursorID, with one
// distinguished primary.
type Cursors struct {
	byID    map[CursorID]*Cursor
	primary CursorID
	nextID  CursorID
}

// NewCursors creates a Cursors collection with a single cursor at pos,
// which becomes primary.
func NewCursors(pos ViewPosition) *Cursors {
	c := &Cursors{byID: make(map[CursorID]*Cursor)}
	id := c.allocID()
	c.byID[id] = &Cursor{ID: id, Position: pos}
	c.primary = id
	return c
}

func (c *Cursors) allocID() CursorID {
	id := c.nextID
	c.nextID++
	return id
}

// Primary returns the distinguished primary cursor.
func (c *Cursors) Primary() *Cursor {
	return c.byID[c.primary]
}

// Insert adds a new cursor at pos and makes it primary -- the
// behavior add_cursor_above/below and add_cursor_at_next_match rely
// on, since each successive invocation should extend from the cursor
// it just created.
func (c *Cursors) Insert(pos ViewPosition) *Cursor {
	id := c.allocID()
	cur := &Cursor{ID: id, Position: pos}
	c.byID[id] = cur
	c.primary = id
	return cur
}

// Remove deletes the cursor with the given id. If it was primary, the
// oldest remaining cursor becomes primary.
func (c *Cursors) Remove(id CursorID) {
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	if c.primary == id {
		c.primary = c.oldestID()
	}
}

func (c *Cursors) oldestID() CursorID {
	var best CursorID
	found := false
	for id := range c.byID {
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best
}

// Len returns the number of cursors.
func (c *Cursors) Len() int { return len(c.byID) }

// Clone returns a deep copy, used by the dispatcher to snapshot
// old_cursors before a BulkEdit so undo can restore them in O(1).
func (c *Cursors) Clone() *Cursors {
	out := &Cursors{byID: make(map[CursorID]*Cursor, len(c.byID)), primary: c.primary, nextID: c.nextID}
	for id, cur := range c.byID {
		cp := *cur
		if cur.Anchor != nil {
			a := *cur.Anchor
			cp.Anchor = &a
		}
		out.byID[id] = &cp
	}
	return out
}

// Iter returns every cursor ordered by source byte (virtual-only
// cursors sort after all source-backed ones, then by view position).
// This is the order the Dispatcher processes cursors in so that each
// cursor's edit is applied before adjusting the ones after it.
func (c *Cursors) Iter() []*Cursor {
	out := make([]*Cursor, 0, len(c.byID))
	for _, cur := range c.byID {
		out = append(out, cur)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Position, out[j].Position
		if a.HasSource() != b.HasSource() {
			return a.HasSource()
		}
		if a.HasSource() {
			return a.SourceByte < b.SourceByte
		}
		return a.Less(b)
	})
	return out
}

// IterByID returns every cursor ordered by creation order (ID).
func (c *Cursors) IterByID() []*Cursor {
	out := make([]*Cursor, 0, len(c.byID))
	for _, cur := range c.byID {
		out = append(out, cur)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AdjustForEdit projects every cursor's source byte through an edit
// that deleted [deleteStart, deleteEnd) and inserted insertLen bytes
// at deleteStart, then merges any cursors that collapsed onto the same
// position, keeping the older id as primary if either was primary.
func (c *Cursors) AdjustForEdit(deleteStart, deleteEnd, insertLen int) {
	for _, cur := range c.byID {
		if b, ok := layout.AdjustForEdit(cur.Position.SourceByte, cur.Position.HasSource(), deleteStart, deleteEnd, insertLen); ok {
			cur.Position.SourceByte = b
		}
		if cur.Anchor != nil {
			if b, ok := layout.AdjustForEdit(cur.Anchor.SourceByte, cur.Anchor.HasSource(), deleteStart, deleteEnd, insertLen); ok {
				cur.Anchor.SourceByte = b
			}
		}
	}
	c.Deduplicate()
}

// RefreshViewCoords recomputes each source-backed cursor's ViewLine
// and Column from a freshly rebuilt Layout, leaving SourceByte (the
// authoritative coordinate after AdjustForEdit) untouched.
func (c *Cursors) RefreshViewCoords(l *layout.Layout) {
	for _, cur := range c.byID {
		if cur.Position.HasSource() {
			b := cur.Position.SourceByte
			cur.Position = l.SourceToView(b)
		}
		if cur.Anchor != nil && cur.Anchor.HasSource() {
			b := cur.Anchor.SourceByte
			v := l.SourceToView(b)
			cur.Anchor = &v
		}
	}
}

// Deduplicate merges cursors that share a position, keeping the older
// (numerically smaller) id.
func (c *Cursors) Deduplicate() {
	type key struct {
		hasSource bool
		source    int
		viewLine  int
		column    int
	}
	groups := make(map[key][]CursorID)
	for id, cur := range c.byID {
		k := key{hasSource: cur.Position.HasSource()}
		if k.hasSource {
			k.source = cur.Position.SourceByte
		} else {
			k.viewLine, k.column = cur.Position.ViewLine, cur.Position.Column
		}
		groups[k] = append(groups[k], id)
	}
	for _, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		survivor := ids[0]
		for _, dead := range ids[1:] {
			delete(c.byID, dead)
			if c.primary == dead {
				c.primary = survivor
			}
		}
	}
}
