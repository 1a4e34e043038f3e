// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package keys

// Mode is a buffer-local keymap: a set of KeyPress -> action name
// bindings that inherits whatever its parent doesn't override, the
// way a plugin's define_mode call describes a mode's bindings plus an
// optional parent to fall back to.
type Mode struct {
	Name     string
	ReadOnly bool
	parent   *Mode
	bindings map[int]string
}

// NewMode creates a mode with the given parent (nil for none).
func NewMode(name string, parent *Mode, readOnly bool) *Mode {
	return &Mode{Name: name, ReadOnly: readOnly, parent: parent, bindings: make(map[int]string)}
}

// Bind assigns a key press to an action name in this mode only.
func (m *Mode) Bind(kp KeyPress, action string) {
	m.bindings[kp.Index()] = action
}

// Lookup returns the action bound to kp, checking this mode first and
// then walking up the parent chain, plus whether any mode in the
// chain bound it at all.
func (m *Mode) Lookup(kp KeyPress) (string, bool) {
	for mode := m; mode != nil; mode = mode.parent {
		if action, ok := mode.bindings[kp.Index()]; ok {
			return action, true
		}
	}
	return "", false
}
