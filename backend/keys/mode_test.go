// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package keys

import "testing"

func TestModeLookupFallsBackToParent(t *testing.T) {
	base := NewMode("base", nil, false)
	base.Bind(KeyPress{Key: 's', Ctrl: true}, "save")

	child := NewMode("child", base, false)
	child.Bind(KeyPress{Key: 'k', Ctrl: true}, "delete_line")

	if action, ok := child.Lookup(KeyPress{Key: 'k', Ctrl: true}); !ok || action != "delete_line" {
		t.Errorf("expected child's own binding to win, got %q, %v", action, ok)
	}
	if action, ok := child.Lookup(KeyPress{Key: 's', Ctrl: true}); !ok || action != "save" {
		t.Errorf("expected fallback to parent binding, got %q, %v", action, ok)
	}
	if _, ok := child.Lookup(KeyPress{Key: 'z', Ctrl: true}); ok {
		t.Error("expected no binding for an unbound key")
	}
}

func TestModeChildOverridesParent(t *testing.T) {
	base := NewMode("base", nil, false)
	base.Bind(KeyPress{Key: 's', Ctrl: true}, "save")

	child := NewMode("child", base, false)
	child.Bind(KeyPress{Key: 's', Ctrl: true}, "save_as")

	if action, _ := child.Lookup(KeyPress{Key: 's', Ctrl: true}); action != "save_as" {
		t.Errorf("expected child override, got %q", action)
	}
}
