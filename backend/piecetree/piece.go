// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package piecetree implements Fresh's persistent, rope-like document
// buffer: a balanced tree of pieces, each an immutable reference into
// either the file's original content or an append-only add buffer.
//
// Every mutating operation returns a new *Tree that shares the Store
// (the original text plus the add buffer) with its predecessor and
// never rewrites bytes already handed out by a Piece, so older Trees
// remain valid content snapshots indefinitely -- the property the
// event log's undo/redo and the bulk edit engine's O(1) tree-swap
// both depend on.
package piecetree

import (
	"errors"
	"strings"
)

// BufferID identifies which backing store a Piece's bytes live in.
type BufferID uint8

const (
	// OriginalBuffer is the immutable text the Tree was created with
	// (typically a file's on-disk contents at open time).
	OriginalBuffer BufferID = iota
	// AddBuffer is the append-only store that all insertions, of any
	// age, are allocated into.
	AddBuffer
)

// Piece is an immutable reference into the original or add buffer. It
// never straddles the two, and a Tree never holds a zero-length Piece.
type Piece struct {
	Buffer   BufferID
	Start    int
	Length   int
	Newlines int
}

var (
	// ErrPositionOutOfRange is returned when an operation's byte
	// position or range falls outside the current content.
	ErrPositionOutOfRange = errors.New("piecetree: position out of range")
	// ErrInvalidUTF8Boundary is returned when an edit would split a
	// UTF-8 code point.
	ErrInvalidUTF8Boundary = errors.New("piecetree: edit splits a utf8 code point")
)

// Store holds the two backing buffers a Tree's pieces reference. It is
// shared by every Tree derived from a common ancestor; Append is its
// only mutator, and it never invalidates offsets already handed out.
type Store struct {
	original string
	add      strings.Builder
}

// NewStore creates a Store whose OriginalBuffer is the given text.
func NewStore(original string) *Store {
	return &Store{original: original}
}

// Append writes text to the add buffer and returns the offset it was
// written at.
func (s *Store) Append(text string) int {
	start := s.add.Len()
	s.add.WriteString(text)
	return start
}

// Slice returns the bytes of a (bufferID, start, length) reference.
func (s *Store) Slice(id BufferID, start, length int) string {
	if id == OriginalBuffer {
		return s.original[start : start+length]
	}
	return s.add.String()[start : start+length]
}

// Text returns the full contents of a Piece.
func (s *Store) Text(p Piece) string {
	return s.Slice(p.Buffer, p.Start, p.Length)
}

func countNewlines(s string) int {
	return strings.Count(s, "\n")
}

// split divides a Piece at a byte offset relative to its own start,
// producing the (possibly empty) pieces before and after the cut. It
// reads p's bytes from store to recompute each half's newline count.
func split(store *Store, p Piece, at int) (before, after Piece) {
	text := store.Text(p)
	before = Piece{Buffer: p.Buffer, Start: p.Start, Length: at, Newlines: countNewlines(text[:at])}
	after = Piece{Buffer: p.Buffer, Start: p.Start + at, Length: p.Length - at, Newlines: countNewlines(text[at:])}
	return
}
