// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package plugin

import (
	"os"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/commands"
	"github.com/freshedit/fresh/backend/piecetree"
)

// API is the surface a registered command or hook handler receives to
// act on the editor: set_status, open_file, insert_text/delete_range,
// and the filesystem primitives a plugin is allowed to touch directly
// rather than through spawn_process.
type API struct {
	host *Host
}

// SetStatus sets a status bar key/value pair on the given view.
func (a API) SetStatus(view *backend.BufferViewState, key, value string) {
	view.SetStatus(key, value)
}

// OpenFile opens filename in w, the same as the "open_file" command.
func (a API) OpenFile(w *backend.Window, filename string) (*backend.EditorState, *backend.BufferViewState, error) {
	return w.OpenFile(filename)
}

// InsertText inserts text at pos in state's buffer as its own undo
// step, bypassing the Dispatcher's per-cursor semantics since a
// plugin-driven insert isn't tied to any cursor.
func (a API) InsertText(state *backend.EditorState, view *backend.BufferViewState, pos int, text string) error {
	var d backend.Dispatcher
	return d.DispatchEdits(state, view, []piecetree.Edit{{Pos: pos, Insert: text}})
}

// DeleteRange deletes [start, end) from state's buffer as its own undo step.
func (a API) DeleteRange(state *backend.EditorState, view *backend.BufferViewState, start, end int) error {
	var d backend.Dispatcher
	return d.DispatchEdits(state, view, []piecetree.Edit{{Pos: start, DeleteLen: end - start}})
}

// ReadFile reads a file's content. A script awaits this.
func (a API) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

// WriteFile writes content to path. A script awaits this.
func (a API) WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// FSStat reports whether path exists and, if so, its info.
func (a API) FSStat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir lists a directory's entries.
func (a API) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// SetViewState stores a plugin-private JSON-ish value under key in
// view's PluginState, the per-(split,buffer) scratch space review and
// diff plugins use to remember what they've already annotated.
func (a API) SetViewState(view *backend.BufferViewState, key string, value interface{}) {
	if view.PluginState == nil {
		view.PluginState = make(map[string]interface{})
	}
	view.PluginState[key] = value
}

// GetViewState returns the value SetViewState last stored under key.
func (a API) GetViewState(view *backend.BufferViewState, key string) interface{} {
	return view.PluginState[key]
}

// RegisterCommand adds c to the command palette under name, reachable
// from any of contexts (e.g. "source", "command_palette").
func (a API) RegisterCommand(name, description string, c commands.TextCommand, contexts []string) {
	a.host.registerCommand(name, description, c, contexts)
}

// AddOverlay renders text after sourceByte's line, the "add_overlay"
// command -- a plugin-drawn banner (a diagnostic, a git blame line)
// that doesn't exist in the buffer and can't be selected or edited.
func (a API) AddOverlay(state *backend.EditorState, sourceByte int, text string) {
	state.AddOverlay(backend.Overlay{SourceByte: sourceByte, Column: -1, Text: text})
}

// AddVirtualText renders text at a specific column of sourceByte's
// line, the "add_virtual_text" command -- an inline annotation (an
// inlay type hint, an inline diff marker) anchored mid-line rather
// than appended after it.
func (a API) AddVirtualText(state *backend.EditorState, sourceByte, column int, text string) {
	state.AddOverlay(backend.Overlay{SourceByte: sourceByte, Column: column, Text: text})
}

// CreateVirtualBufferInSplit creates a named VirtualBuffer and shows
// it in splitID, the "create_virtual_buffer_in_split" command.
func (a API) CreateVirtualBufferInSplit(w *backend.Window, splitID backend.SplitID, name, text string) (*VirtualBuffer, *backend.BufferViewState) {
	return a.host.CreateVirtualBufferInSplit(w, splitID, name, text)
}
