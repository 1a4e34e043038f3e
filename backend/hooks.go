// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package backend

// HookSink receives editor lifecycle notifications -- the core's half
// of the plugin host boundary. The plugin host implements this
// interface and installs itself via SetHooks; EditorState, Window, and
// the commands package call through the package-level Hooks variable
// rather than importing the plugin package directly, which would close
// an import cycle (the plugin package already imports backend for its
// API surface).
//
// The "Before"-prefixed methods return false to cancel the action they
// precede; every other method is a fire-and-forget notification.
type HookSink interface {
	FireBeforeFileOpen(path string) bool
	FireAfterFileOpen(path string)
	FireBeforeFileSave(path string) bool
	FireAfterFileSave(path string)
	FireBufferSave(buffer string)
	FireBufferModified(buffer string)
	FireBufferActivated(buffer string)
	FireBufferClosed(buffer string)
	FireCursorMoved(buffer string)
	FireViewportChanged(splitID string, topByte, topViewLine int)
	FireAfterInsert(buffer string, start, end int)
	FireAfterDelete(buffer string, start, end int)
	FirePreCommand(name string) bool
	FirePostCommand(name string)
}

// noopHooks is the default Hooks value before a plugin host installs
// itself, so every call site can fire unconditionally instead of
// nil-checking.
type noopHooks struct{}

func (noopHooks) FireBeforeFileOpen(string) bool       { return true }
func (noopHooks) FireAfterFileOpen(string)             {}
func (noopHooks) FireBeforeFileSave(string) bool       { return true }
func (noopHooks) FireAfterFileSave(string)             {}
func (noopHooks) FireBufferSave(string)                {}
func (noopHooks) FireBufferModified(string)            {}
func (noopHooks) FireBufferActivated(string)           {}
func (noopHooks) FireBufferClosed(string)              {}
func (noopHooks) FireCursorMoved(string)               {}
func (noopHooks) FireViewportChanged(string, int, int) {}
func (noopHooks) FireAfterInsert(string, int, int)     {}
func (noopHooks) FireAfterDelete(string, int, int)     {}
func (noopHooks) FirePreCommand(string) bool           { return true }
func (noopHooks) FirePostCommand(string)               {}

// Hooks is the process-wide sink every edit/lifecycle event notifies.
// It defaults to a no-op so the core runs standalone; cmd/fresh installs
// the real plugin host via SetHooks during startup.
var Hooks HookSink = noopHooks{}

// SetHooks installs h as the process-wide HookSink.
func SetHooks(h HookSink) {
	if h == nil {
		h = noopHooks{}
	}
	Hooks = h
}
