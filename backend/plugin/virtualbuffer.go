// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package plugin

import "sync"

// Property attaches arbitrary JSON-like data to a byte range of a
// VirtualBuffer -- how a review/diff plugin tags a line with a hunk
// id and recovers it later from the cursor's position.
type Property struct {
	Start, End int
	Data       map[string]interface{}
}

func (p Property) covers(pos int) bool { return pos >= p.Start && pos < p.End }

// VirtualBuffer is a write-through content store a plugin owns
// outside the piece-tree buffer model: plain text plus a set of
// property ranges over it. create_virtual_buffer_in_split gives a
// plugin one of these to render in a split without involving the
// undo log or the Dispatcher.
type VirtualBuffer struct {
	mu              sync.Mutex
	text            string
	properties      []Property
	EditingDisabled bool
}

// NewVirtualBuffer creates a VirtualBuffer with the given initial text.
func NewVirtualBuffer(text string) *VirtualBuffer {
	return &VirtualBuffer{text: text}
}

// Text returns the buffer's current content.
func (v *VirtualBuffer) Text() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.text
}

// SetText replaces the buffer's content. A no-op while
// EditingDisabled is set, so a plugin can present read-only content
// (e.g. a diff view) that editing actions can't mutate.
func (v *VirtualBuffer) SetText(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.EditingDisabled {
		return
	}
	v.text = text
}

// AddProperty attaches data to the byte range [start, end).
func (v *VirtualBuffer) AddProperty(start, end int, data map[string]interface{}) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.properties = append(v.properties, Property{Start: start, End: end, Data: data})
}

// PropertiesAt returns every property range covering pos, innermost
// (narrowest range) first, the order get_text_properties_at_cursor
// promises so a plugin finds its most specific tag first.
func (v *VirtualBuffer) PropertiesAt(pos int) []Property {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []Property
	for _, p := range v.properties {
		if p.covers(pos) {
			out = append(out, p)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && (out[j].End-out[j].Start) < (out[j-1].End-out[j-1].Start); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
