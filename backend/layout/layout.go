// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package layout turns a document's source bytes into the view-line
// index the renderer and the cursor/viewport machinery consult: the
// word-wrap policy, compose-mode's derived view, and virtual text
// injection all live here. A Layout is immutable; it is rebuilt
// whenever the buffer's content version or the wrap configuration
// changes (see backend.EditorState).
package layout

import "unicode/utf8"

// Position is a coordinate in the rendered layout. SourceByte is -1
// when the position falls inside injected/virtual content that has no
// backing source byte.
type Position struct {
	ViewLine   int
	Column     int
	SourceByte int
}

// HasSource reports whether this Position maps back to a real byte in
// the document, as opposed to virtual/injected content.
func (p Position) HasSource() bool { return p.SourceByte >= 0 }

// Less orders positions first by ViewLine, then by Column.
func (p Position) Less(o Position) bool {
	if p.ViewLine != o.ViewLine {
		return p.ViewLine < o.ViewLine
	}
	return p.Column < o.Column
}

// VirtualSegment is injected text rendered at a column within a view
// line without existing in the source.
type VirtualSegment struct {
	Column int
	Text   string
}

// Line is one entry in the view-line index.
type Line struct {
	SourceStart        int
	SourceEnd          int
	IsWrapContinuation bool
	IndentPrefixCols   int
	Virtual            []VirtualSegment
}

// WrapConfig configures the wrap policy. Width <= 0 disables wrapping.
type WrapConfig struct {
	Width int
}

// ComposeConfig replaces raw source rendering with a derived view
// (e.g. rendered markdown). Render must return, for every byte of the
// rendered text, the source byte it corresponds to, or -1 for bytes
// that only exist in the rendered form.
type ComposeConfig struct {
	Enabled bool
	Render  func(source string) (rendered string, sourceOf []int)
}

// Layout is the view-line index for one (content, wrap config) pair.
type Layout struct {
	lines     []Line
	sourceLen int
}

// Build constructs a Layout for source under the given wrap and
// compose configuration.
func Build(source string, wrap WrapConfig, compose ComposeConfig) *Layout {
	text := source
	var sourceOf []int
	if compose.Enabled && compose.Render != nil {
		rendered, m := compose.Render(source)
		text = rendered
		sourceOf = m
	}

	l := &Layout{sourceLen: len(source)}

	lineStart := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			end := i
			if i < len(text) {
				end = i + 1 // include the newline in the logical line's range
			}
			l.appendLogicalLine(text, lineStart, end, wrap, sourceOf, compose.Enabled)
			lineStart = end
			if i == len(text) {
				break
			}
		}
	}
	if len(text) == 0 {
		l.appendLogicalLine(text, 0, 0, wrap, sourceOf, compose.Enabled)
	}
	return l
}

func toSource(renderedPos int, sourceOf []int, enabled bool) int {
	if !enabled {
		return renderedPos
	}
	if renderedPos < 0 || renderedPos >= len(sourceOf) {
		return -1
	}
	return sourceOf[renderedPos]
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			n++
			continue
		}
		break
	}
	return n
}

// appendLogicalLine splits one logical (newline-delimited) line of the
// rendered text into one or more view lines per the wrap policy.
func (l *Layout) appendLogicalLine(text string, start, end int, wrap WrapConfig, sourceOf []int, composed bool) {
	indent := indentOf(text[start:end])
	segStart := start
	col := 0
	continuation := false
	flush := func(segEnd int) {
		line := Line{
			SourceStart:        toSource(segStart, sourceOf, composed),
			SourceEnd:          toSource(segEnd, sourceOf, composed),
			IsWrapContinuation: continuation,
			IndentPrefixCols:   indent,
		}
		if composed {
			// In compose mode a segment boundary may fall inside a
			// virtual (non-source) run; best-effort: if either edge
			// lacks a source byte, report None rather than guessing.
			if line.SourceStart < 0 {
				line.SourceStart = -1
			}
			if line.SourceEnd < 0 {
				line.SourceEnd = -1
			}
		}
		l.lines = append(l.lines, line)
		continuation = true
		segStart = segEnd
		col = 0
	}

	if wrap.Width <= 0 {
		flush(end)
		return
	}
	i := start
	for i < end {
		r, size := utf8.DecodeRuneInString(text[i:end])
		if col >= wrap.Width && i > segStart {
			flush(i)
		}
		if r == '\n' {
			i += size
			continue
		}
		col++
		i += size
	}
	flush(end)
}

// AddVirtual appends a VirtualSegment to viewLine's rendered content.
// column < 0 means "after whatever source content the line already
// has" rather than a fixed column, which is what add_overlay uses to
// append a banner without needing to know the line's width.
func (l *Layout) AddVirtual(viewLine, column int, text string) {
	if viewLine < 0 || viewLine >= len(l.lines) {
		return
	}
	if column < 0 {
		line := l.lines[viewLine]
		column = line.SourceEnd - line.SourceStart
	}
	l.lines[viewLine].Virtual = append(l.lines[viewLine].Virtual, VirtualSegment{Column: column, Text: text})
}

// ViewLineCount returns the number of view lines in the layout.
func (l *Layout) ViewLineCount() int { return len(l.lines) }

// Line returns the view-line index entry for viewLine.
func (l *Layout) Line(viewLine int) (Line, bool) {
	if viewLine < 0 || viewLine >= len(l.lines) {
		return Line{}, false
	}
	return l.lines[viewLine], true
}

// ViewToSource maps a view Position to a source byte, if it has one.
func (l *Layout) ViewToSource(pos Position) (int, bool) {
	line, ok := l.Line(pos.ViewLine)
	if !ok || line.SourceStart < 0 {
		return 0, false
	}
	b := line.SourceStart + pos.Column
	if b < line.SourceStart || b > line.SourceEnd {
		return 0, false
	}
	return b, true
}

// SourceToView maps a source byte to a view Position, preferring the
// leftmost (topmost) segment among any that could claim the boundary,
// i.e. a byte exactly at a wrap or logical-line boundary is reported
// as column 0 of the segment it begins, not the trailing column of
// the segment before it.
func (l *Layout) SourceToView(b int) Position {
	for i, line := range l.lines {
		if line.SourceStart < 0 {
			continue
		}
		if b >= line.SourceStart && b < line.SourceEnd {
			return Position{ViewLine: i, Column: b - line.SourceStart, SourceByte: b}
		}
		if line.SourceStart == line.SourceEnd && b == line.SourceStart {
			return Position{ViewLine: i, Column: 0, SourceByte: b}
		}
	}
	// b is the end-of-document boundary: report it at the end of the
	// last real segment.
	for i := len(l.lines) - 1; i >= 0; i-- {
		line := l.lines[i]
		if line.SourceStart < 0 {
			continue
		}
		if b == line.SourceEnd {
			return Position{ViewLine: i, Column: b - line.SourceStart, SourceByte: b}
		}
	}
	return Position{SourceByte: -1}
}

// AdjustForEdit projects a cached Position through a content edit, per
// the same rule the cursor and viewport apply: an insert at b of
// length L shifts source bytes >= b forward by L; a delete of [a,b)
// collapses source bytes in that range to a and shifts those >= b back
// by b-a. Positions with no source byte are untouched; the ViewLine
// and Column must still be re-derived from a fresh Layout afterwards,
// this only adjusts the SourceByte so that re-derivation is possible.
func AdjustForEdit(sourceByte int, hasSource bool, deleteStart, deleteEnd, insertLen int) (int, bool) {
	if !hasSource {
		return sourceByte, false
	}
	switch {
	case sourceByte >= deleteEnd:
		return sourceByte - (deleteEnd - deleteStart) + insertLen, true
	case sourceByte >= deleteStart:
		return deleteStart + insertLen, true
	default:
		return sourceByte, true
	}
}
