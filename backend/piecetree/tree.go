// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package piecetree

import (
	"math/rand"
	"strings"
)

// node is one piece of a treap keyed implicitly by byte offset:
// in-order position, not a stored key, determines where a piece falls
// in the document. priority is assigned once, at the node's creation,
// and never changes; split and merge keep the heap-ordered-by-priority
// invariant among whatever nodes they're handed, which is what lets a
// single Insert or Delete touch only the O(log n) nodes on its split
// and merge paths rather than rebuilding the whole tree.
//
// Nodes are immutable: a mutation builds new nodes for the spine it
// touches and reuses every other subtree pointer untouched, which is
// what lets an older *Tree (and thus an older node graph) keep working
// as a read-only snapshot after a newer Tree is derived from it.
type node struct {
	piece       Piece
	left, right *node
	subLen      int
	subNL       int
	priority    uint32
}

func nlen(n *node) int {
	if n == nil {
		return 0
	}
	return n.subLen
}

func nnl(n *node) int {
	if n == nil {
		return 0
	}
	return n.subNL
}

func newNode(piece Piece, left, right *node, priority uint32) *node {
	return &node{
		piece:    piece,
		left:     left,
		right:    right,
		priority: priority,
		subLen:   nlen(left) + piece.Length + nlen(right),
		subNL:    nnl(left) + piece.Newlines + nnl(right),
	}
}

func newLeaf(piece Piece) *node {
	return newNode(piece, nil, nil, rand.Uint32())
}

// merge joins two treaps into one, assuming every offset in a precedes
// every offset in b. The node chosen as root at each level is whichever
// of a/b carries the higher priority, so the merge path length -- and
// thus the number of nodes rebuilt -- is bounded by the treap's
// expected O(log n) height rather than the combined size of a and b.
func merge(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority > b.priority {
		return newNode(a.piece, a.left, merge(a.right, b), a.priority)
	}
	return newNode(b.piece, merge(a, b.left), b.right, b.priority)
}

// splitAt splits the treap rooted at n by byte offset pos into (left,
// right) such that left holds offsets [0, pos) and right holds
// [pos, nlen(n)). When pos falls inside a piece, that piece is cut in
// two; both halves become fresh leaves since the original piece-node's
// identity doesn't survive the cut. Every other node on the path keeps
// its original priority, and every subtree not on the path is returned
// unchanged, so splitAt only allocates along one root-to-piece path.
func splitAt(store *Store, n *node, pos int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	leftLen := nlen(n.left)
	pieceEnd := leftLen + n.piece.Length
	switch {
	case pos <= leftLen:
		l, r := splitAt(store, n.left, pos)
		return l, merge(merge(r, newNode(n.piece, nil, nil, n.priority)), n.right)
	case pos >= pieceEnd:
		l, r := splitAt(store, n.right, pos-pieceEnd)
		return merge(merge(n.left, newNode(n.piece, nil, nil, n.priority)), l), r
	default:
		before, after := split(store, n.piece, pos-leftLen)
		return merge(n.left, newLeaf(before)), merge(newLeaf(after), n.right)
	}
}

// Tree is a persistent, rope-like document buffer. The zero value is
// not usable; construct one with NewTree.
type Tree struct {
	store *Store
	root  *node
}

// NewTree creates a Tree whose OriginalBuffer is the given text.
func NewTree(initial string) *Tree {
	store := NewStore(initial)
	var root *node
	if len(initial) > 0 {
		root = newLeaf(Piece{Buffer: OriginalBuffer, Start: 0, Length: len(initial), Newlines: countNewlines(initial)})
	}
	return &Tree{store: store, root: root}
}

// Len returns the document's length in bytes.
func (t *Tree) Len() int { return nlen(t.root) }

// NewlineCount returns the number of '\n' bytes in the document.
func (t *Tree) NewlineCount() int { return nnl(t.root) }

// pieceSpan is a Piece paired with its absolute start offset, produced
// by an in-order flatten.
type pieceSpan struct {
	piece Piece
	start int
}

func flatten(n *node, base int, out *[]pieceSpan) {
	if n == nil {
		return
	}
	flatten(n.left, base, out)
	start := base + nlen(n.left)
	*out = append(*out, pieceSpan{piece: n.piece, start: start})
	flatten(n.right, start+n.piece.Length, out)
}

func (t *Tree) flatten() []pieceSpan {
	var out []pieceSpan
	flatten(t.root, 0, &out)
	return out
}

// buildBalanced builds a tree from an ordered piece list by repeated
// midpoint split, bounding height to O(log pieces) regardless of the
// order pieces were produced in. Used by the bulk edit path, which
// rebuilds wholesale in exchange for doing every edit in one
// O(pieces + edits) pass rather than the O(log n) per-edit path below.
func buildBalanced(pieces []Piece) *node {
	if len(pieces) == 0 {
		return nil
	}
	mid := len(pieces) / 2
	left := buildBalanced(pieces[:mid])
	right := buildBalanced(pieces[mid+1:])
	return newNode(pieces[mid], left, right, rand.Uint32())
}

func (t *Tree) derive(pieces []Piece) *Tree {
	return &Tree{store: t.store, root: buildBalanced(pieces)}
}

// Slice returns the document text in [start, end).
func (t *Tree) Slice(start, end int) (string, error) {
	if start < 0 || end > t.Len() || start > end {
		return "", ErrPositionOutOfRange
	}
	if start == end {
		return "", nil
	}
	var b strings.Builder
	for _, span := range t.flatten() {
		pieceEnd := span.start + span.piece.Length
		if pieceEnd <= start {
			continue
		}
		if span.start >= end {
			break
		}
		lo := max(0, start-span.start)
		hi := min(span.piece.Length, end-span.start)
		b.WriteString(t.store.Text(span.piece)[lo:hi])
	}
	return b.String(), nil
}

// ByteAt returns the byte at the given offset, walking the tree
// top-down in O(log n) rather than flattening it; used internally to
// validate that an edit doesn't split a UTF-8 code point.
func (t *Tree) ByteAt(at int) (byte, bool) {
	if at < 0 || at >= t.Len() {
		return 0, false
	}
	n := t.root
	for n != nil {
		leftLen := nlen(n.left)
		switch {
		case at < leftLen:
			n = n.left
		case at < leftLen+n.piece.Length:
			return t.store.Text(n.piece)[at-leftLen], true
		default:
			at -= leftLen + n.piece.Length
			n = n.right
		}
	}
	return 0, false
}

// LineAt returns the start offset and text (including its trailing
// newline, if any) of the line containing byte offset at.
func (t *Tree) LineAt(at int) (lineStart int, text string, err error) {
	if at < 0 || at > t.Len() {
		return 0, "", ErrPositionOutOfRange
	}
	whole, err := t.Slice(0, t.Len())
	if err != nil {
		return 0, "", err
	}
	start := strings.LastIndexByte(whole[:at], '\n') + 1
	end := strings.IndexByte(whole[at:], '\n')
	if end == -1 {
		return start, whole[start:], nil
	}
	return start, whole[start : at+end+1], nil
}

func boundaryOK(t *Tree, at int) bool {
	if at <= 0 || at >= t.Len() {
		return true
	}
	b, ok := t.ByteAt(at)
	if !ok {
		return true
	}
	// A continuation byte (10xxxxxx) means `at` is mid-rune.
	return b&0xC0 != 0x80
}

// Insert returns a new Tree with text inserted at byte offset at. The
// edit splits the treap at at and merges a new leaf for text back in,
// touching only the O(log n) nodes on the split/merge path; every
// subtree untouched by the cut is shared with t's node graph.
func (t *Tree) Insert(at int, text string) (*Tree, error) {
	if at < 0 || at > t.Len() {
		return nil, ErrPositionOutOfRange
	}
	if !boundaryOK(t, at) {
		return nil, ErrInvalidUTF8Boundary
	}
	if text == "" {
		return t, nil
	}
	newPiece := Piece{Buffer: AddBuffer, Start: t.store.Append(text), Length: len(text), Newlines: countNewlines(text)}
	left, right := splitAt(t.store, t.root, at)
	root := merge(merge(left, newLeaf(newPiece)), right)
	return &Tree{store: t.store, root: root}, nil
}

// Delete returns a new Tree with the bytes in [start, end) removed, by
// splitting the treap twice (at start and at end) and merging the
// outer two parts back together, again touching only the split/merge
// path rather than the whole tree.
func (t *Tree) Delete(start, end int) (*Tree, error) {
	if start < 0 || end > t.Len() || start > end {
		return nil, ErrPositionOutOfRange
	}
	if !boundaryOK(t, start) || !boundaryOK(t, end) {
		return nil, ErrInvalidUTF8Boundary
	}
	if start == end {
		return t, nil
	}
	left, rest := splitAt(t.store, t.root, start)
	_, right := splitAt(t.store, rest, end-start)
	return &Tree{store: t.store, root: merge(left, right)}, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
