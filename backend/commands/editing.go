// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import (
	"strings"

	"github.com/limetext/rubex"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/piecetree"
)

// lineStarts returns the start byte of every line touched by [start,
// end], in ascending order, so a per-cursor selection spanning
// multiple lines yields one entry per line rather than one per
// cursor.
func lineStarts(buf *backend.Buffer, start, end int) []int {
	var starts []int
	off := start
	for {
		ls, le := buf.Line(off)
		starts = append(starts, ls)
		if le >= end {
			break
		}
		off = le + 1
		if off > buf.Size() {
			break
		}
	}
	return starts
}

// coveredLineStarts merges every cursor's touched lines into one
// deduplicated, ascending list.
func coveredLineStarts(buf *backend.Buffer, view *backend.BufferViewState) []int {
	seen := make(map[int]bool)
	var out []int
	for _, c := range view.Cursors.Iter() {
		sel := c.Selection().Normalized()
		for _, ls := range lineStarts(buf, sel.Start.SourceByte, sel.End.SourceByte) {
			if !seen[ls] {
				seen[ls] = true
				out = append(out, ls)
			}
		}
	}
	return out
}

func leadingWhitespaceLen(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// ToggleLineCommentCommand comments every line touched by any cursor's
// selection if any is uncommented, otherwise uncomments all of them --
// the common "comment toggle applies to the whole block" behavior.
type ToggleLineCommentCommand struct{}

func (c *ToggleLineCommentCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	prefix := view.Settings.String("line_comment", "//")
	buf := state.Buffer()
	starts := coveredLineStarts(buf, view)
	if len(starts) == 0 {
		return nil
	}

	allCommented := true
	for _, ls := range starts {
		_, le := buf.Line(ls)
		line, err := buf.Substr(ls, le)
		if err != nil {
			return err
		}
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, prefix) {
			allCommented = false
			break
		}
	}

	edits := make([]piecetree.Edit, 0, len(starts))
	for _, ls := range starts {
		_, le := buf.Line(ls)
		line, err := buf.Substr(ls, le)
		if err != nil {
			return err
		}
		indent := leadingWhitespaceLen(line)
		if allCommented {
			trimmed := line[indent:]
			if !strings.HasPrefix(trimmed, prefix) {
				continue
			}
			delLen := len(prefix)
			if strings.HasPrefix(trimmed[delLen:], " ") {
				delLen++
			}
			edits = append(edits, piecetree.Edit{Pos: ls + indent, DeleteLen: delLen})
		} else {
			edits = append(edits, piecetree.Edit{Pos: ls + indent, Insert: prefix + " "})
		}
	}

	var d backend.Dispatcher
	return d.DispatchEdits(state, view, edits)
}

// indentUnit computes a single indentation step from settings,
// defaulting to a tab or, when translate_tabs_to_spaces is set, that
// many spaces.
func indentUnit(s *backend.Settings) string {
	if s.Bool("translate_tabs_to_spaces", false) {
		return strings.Repeat(" ", s.Int("tab_size", 4))
	}
	return "\t"
}

// IndentSelectionCommand inserts one indent unit at the start of every
// line touched by any cursor's selection.
type IndentSelectionCommand struct{}

func (c *IndentSelectionCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	unit := indentUnit(view.Settings)
	buf := state.Buffer()
	starts := coveredLineStarts(buf, view)
	edits := make([]piecetree.Edit, len(starts))
	for i, ls := range starts {
		edits[i] = piecetree.Edit{Pos: ls, Insert: unit}
	}
	var d backend.Dispatcher
	return d.DispatchEdits(state, view, edits)
}

// DedentSelectionCommand removes up to one indent unit's worth of
// leading whitespace from every line touched by any cursor's
// selection.
type DedentSelectionCommand struct{}

func (c *DedentSelectionCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	unitWidth := len(indentUnit(view.Settings))
	buf := state.Buffer()
	starts := coveredLineStarts(buf, view)
	edits := make([]piecetree.Edit, 0, len(starts))
	for _, ls := range starts {
		_, le := buf.Line(ls)
		line, err := buf.Substr(ls, le)
		if err != nil {
			return err
		}
		n := leadingWhitespaceLen(line)
		if n == 0 {
			continue
		}
		if n > unitWidth {
			n = unitWidth
		}
		edits = append(edits, piecetree.Edit{Pos: ls, DeleteLen: n})
	}
	var d backend.Dispatcher
	return d.DispatchEdits(state, view, edits)
}

// ReplaceAllCommand replaces every non-overlapping occurrence of
// args["find"] with args["replace"] across the whole buffer. When
// args["regex"] is true, find is an Oniguruma pattern (via rubex) and
// replace may reference capture groups the same way regexp.Expand does.
type ReplaceAllCommand struct{}

func (c *ReplaceAllCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	find, _ := args["find"].(string)
	if find == "" {
		return nil
	}
	replace, _ := args["replace"].(string)
	useRegex, _ := args["regex"].(bool)

	buf := state.Buffer()
	text, err := buf.Substr(0, buf.Size())
	if err != nil {
		return err
	}

	var edits []piecetree.Edit
	if useRegex {
		re, err := rubex.Compile(find)
		if err != nil {
			return err
		}
		for _, m := range re.FindAllStringIndex(text, -1) {
			start, end := m[0], m[1]
			edits = append(edits, piecetree.Edit{
				Pos:       start,
				DeleteLen: end - start,
				Insert:    re.ReplaceAllString(text[start:end], replace),
			})
		}
	} else {
		off := 0
		for {
			idx := strings.Index(text[off:], find)
			if idx < 0 {
				break
			}
			pos := off + idx
			edits = append(edits, piecetree.Edit{Pos: pos, DeleteLen: len(find), Insert: replace})
			off = pos + len(find)
		}
	}
	if len(edits) == 0 {
		return nil
	}
	var d backend.Dispatcher
	return d.DispatchEdits(state, view, edits)
}

func init() {
	register("toggle_line_comment", &ToggleLineCommentCommand{})
	register("indent_selection", &IndentSelectionCommand{})
	register("dedent_selection", &DedentSelectionCommand{})
	register("replace_all", &ReplaceAllCommand{})
}
