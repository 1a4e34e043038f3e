// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package commands supplies the concrete TextCommand/WindowCommand
// implementations the Dispatcher's Action values name: undo/redo,
// clipboard, glue marks, multi-cursor creation, and the bulk-edit
// actions (toggle-line-comment, indent/dedent, replace-all).
package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freshedit/fresh/backend"
)

// Args is the argument bag a command receives, mirroring the
// teacher's backend.Args map used to pass e.g. a replace-all pattern.
type Args map[string]interface{}

// TextCommand operates on one buffer's editor/view state.
type TextCommand interface {
	Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error
}

var registry = make(map[string]TextCommand)

// register installs name under the global command registry. Commands
// register themselves from an init() in their own file, the way the
// teacher's backend/commands package does.
func register(name string, c TextCommand) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("commands: %q registered twice", name))
	}
	registry[name] = c
}

// Register installs a plugin-supplied command under name, for the
// plugin host's register_command; it panics on a duplicate name the
// same way the built-in init() registrations do.
func Register(name string, c TextCommand) { register(name, c) }

// Get returns the command registered under name, or nil.
func Get(name string) TextCommand { return registry[name] }

// Names returns every registered command name, sorted, for populating
// a command palette.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Run looks up name and runs it, returning an error if it isn't
// registered. A pre-command handler returning false cancels the run
// before the command's Run method is ever called.
func Run(name string, state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	c := Get(name)
	if c == nil {
		return fmt.Errorf("commands: %q is not registered", name)
	}
	if !backend.Hooks.FirePreCommand(name) {
		return ErrCommandCancelled
	}
	err := c.Run(state, view, args)
	backend.Hooks.FirePostCommand(name)
	return err
}

// ErrCommandCancelled is returned by Run when a pre-command handler
// returns false.
var ErrCommandCancelled = errors.New("commands: cancelled by a plugin handler")
