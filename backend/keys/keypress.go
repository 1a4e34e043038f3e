// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package keys models a single key event and the bindings lookup that
// maps one to an action name: KeyPress is the comparable/hashable
// value a mode's keymap index is keyed by.
package keys

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a single physical key. Printable keys use their rune
// value; keys with no rune representation use a negative sentinel so
// they never collide with a valid rune.
type Key rune

// Non-character keys, valued below any valid rune so IsCharacter can
// tell them apart without a lookup table.
const (
	F1 Key = -(iota + 1)
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Insert
	Delete
	Backspace
	Tab
	Enter
	Escape
)

// Modifier bits, shifted well above any valid Unicode code point so
// Index can add them straight onto a Key's rune value.
const (
	shift = 1 << 24
	super = 1 << 25
	alt   = 1 << 26
	ctrl  = 1 << 27
)

// KeyPress is one key event: a key plus whichever modifiers were held.
type KeyPress struct {
	Key   Key
	Shift bool
	Super bool
	Alt   bool
	Ctrl  bool
}

// Index returns a value unique to this exact (key, modifiers)
// combination, suitable as a map key for a mode's binding table.
func (k KeyPress) Index() int {
	idx := int(k.Key)
	if k.Shift {
		idx += shift
	}
	if k.Super {
		idx += super
	}
	if k.Alt {
		idx += alt
	}
	if k.Ctrl {
		idx += ctrl
	}
	return idx
}

// IsCharacter reports whether this key press represents a plain
// typed character: a printable key with no Super, Alt, or Ctrl held
// (Shift alone just selects the upper-case/shifted glyph).
func (k KeyPress) IsCharacter() bool {
	if k.Super || k.Alt || k.Ctrl {
		return false
	}
	return k.Key >= 0
}

// fix normalizes an upper-case ASCII letter key into its lower-case
// form with Shift forced on, so KeyPress{'A'} and
// KeyPress{'a', Shift: true} compare and hash identically.
func (k *KeyPress) fix() {
	r := rune(k.Key)
	if unicode.IsUpper(r) {
		k.Key = Key(unicode.ToLower(r))
		k.Shift = true
	}
}

var specialNames = map[Key]string{
	F1: "f1", F2: "f2", F3: "f3", F4: "f4", F5: "f5", F6: "f6",
	F7: "f7", F8: "f8", F9: "f9", F10: "f10", F11: "f11", F12: "f12",
	Up: "up", Down: "down", Left: "left", Right: "right",
	Home: "home", End: "end", PageUp: "pageup", PageDown: "pagedown",
	Insert: "insert", Delete: "delete", Backspace: "backspace",
	Tab: "tab", Enter: "enter", Escape: "escape",
}

// String renders a key binding in "ctrl+alt+super+shift+key" order,
// omitting any modifier that isn't held.
func (k KeyPress) String() string {
	var parts []string
	if k.Ctrl {
		parts = append(parts, "ctrl")
	}
	if k.Alt {
		parts = append(parts, "alt")
	}
	if k.Super {
		parts = append(parts, "super")
	}
	if k.Shift {
		parts = append(parts, "shift")
	}
	if name, ok := specialNames[k.Key]; ok {
		parts = append(parts, name)
	} else {
		parts = append(parts, fmt.Sprintf("%c", rune(k.Key)))
	}
	return strings.Join(parts, "+")
}
