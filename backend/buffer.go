// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

import (
	"strings"
	"sync/atomic"

	"github.com/freshedit/fresh/backend/piecetree"
)

// BufferID identifies a Buffer for its lifetime.
type BufferID uint64

var nextBufferID uint64

func allocBufferID() BufferID {
	return BufferID(atomic.AddUint64(&nextBufferID, 1))
}

// BufferObserver is notified whenever a Buffer's content changes, the
// same role the teacher's BufferChangedCallback played for View: it
// lets a view adjust its regions and selections without the Buffer
// itself knowing anything about views.
type BufferObserver interface {
	Inserted(pos, length int)
	Erased(pos, length int)
}

// Buffer is a piece tree plus the metadata the spec calls out: the
// file it was loaded from (if any), whether it has unsaved changes,
// and the add-buffer allocator the piece tree shares across every
// snapshot taken from it.
type Buffer struct {
	id          BufferID
	tree        *piecetree.Tree
	path        string
	name        string
	dirty       bool
	changeCount int
	observers   []BufferObserver
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{id: allocBufferID(), tree: piecetree.NewTree("")}
}

// NewBufferFromText creates a Buffer whose original content is text.
func NewBufferFromText(text string) *Buffer {
	return &Buffer{id: allocBufferID(), tree: piecetree.NewTree(text)}
}

func (b *Buffer) Id() BufferID      { return b.id }
func (b *Buffer) Size() int         { return b.tree.Len() }
func (b *Buffer) ChangeCount() int  { return b.changeCount }
func (b *Buffer) IsDirty() bool     { return b.dirty }
func (b *Buffer) FileName() string  { return b.path }
func (b *Buffer) Name() string      { return b.name }
func (b *Buffer) NewlineCount() int { return b.tree.NewlineCount() }
func (b *Buffer) SetName(n string)  { b.name = n }

func (b *Buffer) SetFileName(n string) { b.path = n }

// ClearDirty marks the buffer as matching what's on disk, called after
// a successful save.
func (b *Buffer) ClearDirty() { b.dirty = false }

// Tree returns the current piece tree snapshot. Because the piece
// tree is persistent, holding on to the returned *piecetree.Tree after
// a further edit is safe -- it keeps reading the content as of this
// call. This is what a BulkEdit event's old-tree field stores for
// O(1) undo.
func (b *Buffer) Tree() *piecetree.Tree { return b.tree }

// SetTree replaces the buffer's tree wholesale, used by undo/redo of a
// BulkEdit event to restore a prior snapshot in O(1).
func (b *Buffer) SetTree(t *piecetree.Tree) {
	b.tree = t
	b.changeCount++
	b.dirty = true
}

func (b *Buffer) AddObserver(ob BufferObserver) { b.observers = append(b.observers, ob) }

func (b *Buffer) notify(pos, insertedLen, deletedLen int) {
	for _, ob := range b.observers {
		if insertedLen > 0 {
			ob.Inserted(pos, insertedLen)
		}
		if deletedLen > 0 {
			ob.Erased(pos, deletedLen)
		}
	}
}

// Substr returns the document text in [start, end).
func (b *Buffer) Substr(start, end int) (string, error) {
	return b.tree.Slice(start, end)
}

// Insert inserts text at byte offset pos.
func (b *Buffer) Insert(pos int, text string) error {
	t, err := b.tree.Insert(pos, text)
	if err != nil {
		return err
	}
	b.tree = t
	b.changeCount++
	b.dirty = true
	b.notify(pos, len(text), 0)
	return nil
}

// Erase removes the bytes in [start, end).
func (b *Buffer) Erase(start, end int) error {
	t, err := b.tree.Delete(start, end)
	if err != nil {
		return err
	}
	b.tree = t
	b.changeCount++
	b.dirty = true
	b.notify(start, 0, end-start)
	return nil
}

// ApplyBulkEdits applies every edit in one tree rebuild.
func (b *Buffer) ApplyBulkEdits(edits []piecetree.Edit) error {
	t, err := b.tree.ApplyBulkEdits(edits)
	if err != nil {
		return err
	}
	b.tree = t
	b.changeCount++
	b.dirty = true
	for _, e := range edits {
		b.notify(e.Pos, len(e.Insert), e.DeleteLen)
	}
	return nil
}

// RowCol converts a byte offset to a 0-indexed (row, column) pair.
func (b *Buffer) RowCol(point int) (row, col int) {
	s, err := b.tree.Slice(0, clamp(0, b.tree.Len(), point))
	if err != nil {
		return 0, 0
	}
	row = strings.Count(s, "\n")
	if idx := strings.LastIndexByte(s, '\n'); idx >= 0 {
		col = len(s) - idx - 1
	} else {
		col = len(s)
	}
	return
}

// TextPoint converts a 0-indexed (row, column) pair to a byte offset.
func (b *Buffer) TextPoint(row, col int) int {
	full, _ := b.tree.Slice(0, b.tree.Len())
	lines := strings.SplitAfter(full, "\n")
	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len(lines[i])
	}
	if row >= 0 && row < len(lines) {
		line := strings.TrimSuffix(lines[row], "\n")
		if col > len(line) {
			col = len(line)
		}
	}
	if col < 0 {
		col = 0
	}
	return offset + col
}

// Line returns the byte range of the line containing off, excluding
// any trailing newline.
func (b *Buffer) Line(off int) (start, end int) {
	s, text, err := b.tree.LineAt(off)
	if err != nil {
		return 0, 0
	}
	return s, s + len(strings.TrimSuffix(text, "\n"))
}

// FullLine returns the byte range of the line containing off,
// including its trailing newline if present.
func (b *Buffer) FullLine(off int) (start, end int) {
	s, text, err := b.tree.LineAt(off)
	if err != nil {
		return 0, 0
	}
	return s, s + len(text)
}

func clamp(lo, hi, v int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
