// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package plugin is the host a script's registrations and hook
// handlers run against: command/mode registration, the editor API
// surface, async resumption via a main-loop-drained queue, and
// write-through virtual buffers for plugin-owned content.
package plugin

import (
	"sync"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/commands"
	"github.com/freshedit/fresh/backend/keys"
	"github.com/freshedit/fresh/backend/log"
)

// CommandSpec is a registered command's palette metadata.
type CommandSpec struct {
	Name        string
	Description string
	Contexts    []string
}

// Handler runs when a subscribed Event fires, and reports whether the
// action should continue: for the cancelable events (the "Before"/
// "Pre" members of Event) a false return stops the action outright;
// for every other event the return value is informational only.
// Subscriptions are by name, not closure -- mirroring a script/host
// boundary where a handler can't carry state across it other than
// what it's given.
type Handler func(payload interface{}) bool

// Host owns every plugin registration: the command palette additions,
// buffer-local modes and their key bindings, hook subscriptions, the
// async task queue, and any virtual buffers plugins have created. It
// also implements backend.HookSink, so cmd/fresh installs one Host as
// the editor's process-wide notification sink via backend.SetHooks.
type Host struct {
	mu       sync.Mutex
	commands map[string]CommandSpec
	modes    map[string]*keys.Mode
	handlers map[string]Handler
	hooks    map[Event][]string // handler names subscribed to each event
	vbuffers map[string]*VirtualBuffer

	languagePacks map[string]LanguagePack

	Queue Queue
}

var _ backend.HookSink = (*Host)(nil)

// NewHost creates an empty Host.
func NewHost() *Host {
	return &Host{
		commands:      make(map[string]CommandSpec),
		modes:         make(map[string]*keys.Mode),
		handlers:      make(map[string]Handler),
		hooks:         make(map[Event][]string),
		vbuffers:      make(map[string]*VirtualBuffer),
		languagePacks: make(map[string]LanguagePack),
	}
}

// API returns the editor API surface bound to this host, for
// RegisterCommand to route new commands back through.
func (h *Host) API() API { return API{host: h} }

func (h *Host) registerCommand(name, description string, c commands.TextCommand, contexts []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	commands.Register(name, c)
	h.commands[name] = CommandSpec{Name: name, Description: description, Contexts: contexts}
}

// Commands returns every registered command's palette metadata.
func (h *Host) Commands() []CommandSpec {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]CommandSpec, 0, len(h.commands))
	for _, c := range h.commands {
		out = append(out, c)
	}
	return out
}

// DefineMode creates a buffer-local mode named name, inheriting
// parent's bindings (nil for none), and binds every (key, action)
// pair given.
func (h *Host) DefineMode(name string, parent *keys.Mode, bindings []keys.KeyPress, actions []string, readOnly bool) *keys.Mode {
	m := keys.NewMode(name, parent, readOnly)
	for i, kp := range bindings {
		if i < len(actions) {
			m.Bind(kp, actions[i])
		}
	}
	h.mu.Lock()
	h.modes[name] = m
	h.mu.Unlock()
	return m
}

// Mode returns the mode registered under name, or nil.
func (h *Host) Mode(name string) *keys.Mode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.modes[name]
}

// RegisterHandler installs fn under name so On can subscribe it to
// events by that name.
func (h *Host) RegisterHandler(name string, fn Handler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[name] = fn
}

// On subscribes the handler registered under handlerName to event.
func (h *Host) On(event Event, handlerName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range h.hooks[event] {
		if n == handlerName {
			return
		}
	}
	h.hooks[event] = append(h.hooks[event], handlerName)
}

// Off unsubscribes handlerName from event.
func (h *Host) Off(event Event, handlerName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := h.hooks[event]
	for i, n := range names {
		if n == handlerName {
			h.hooks[event] = append(names[:i], names[i+1:]...)
			return
		}
	}
}

// Fire runs every handler subscribed to event, in subscription order,
// passing payload. Handlers run synchronously on the caller -- the
// main loop, between turns -- and any editor action a handler wants
// to take must go through Queue.Enqueue instead of acting directly, so
// it applies after the firing turn completes.
//
// For a cancelable event (see Event), the first handler to return
// false stops delivery and Fire itself returns false, so the caller
// can veto whatever action the event precedes. For every other event
// the return value is always true; a handler that returns false there
// is logged, since it's a likely sign the handler assumed the wrong
// event was cancelable.
func (h *Host) Fire(event Event, payload interface{}) bool {
	h.mu.Lock()
	names := append([]string{}, h.hooks[event]...)
	h.mu.Unlock()
	for _, name := range names {
		h.mu.Lock()
		fn, ok := h.handlers[name]
		h.mu.Unlock()
		if !ok {
			log.Warn("plugin: handler %q no longer registered for %s", name, event)
			continue
		}
		if cont := fn(payload); !cont {
			if cancelable[event] {
				return false
			}
			log.Warn("plugin: handler %q returned false for non-cancelable event %s", name, event)
		}
	}
	return true
}

// FireBeforeFileOpen, FireAfterFileOpen, FireBeforeFileSave,
// FireAfterFileSave, FireBufferSave, FireBufferModified,
// FireBufferActivated, FireBufferClosed, FireCursorMoved,
// FireViewportChanged, FireAfterInsert, FireAfterDelete,
// FirePreCommand, and FirePostCommand implement backend.HookSink by
// wrapping the matching Event in its documented payload and routing it
// through Fire.

func (h *Host) FireBeforeFileOpen(path string) bool {
	return h.Fire(BeforeFileOpen, FileEventPayload{Path: path})
}

func (h *Host) FireAfterFileOpen(path string) {
	h.Fire(AfterFileOpen, FileEventPayload{Path: path})
}

func (h *Host) FireBeforeFileSave(path string) bool {
	return h.Fire(BeforeFileSave, FileEventPayload{Path: path})
}

func (h *Host) FireAfterFileSave(path string) {
	h.Fire(AfterFileSave, FileEventPayload{Path: path})
}

func (h *Host) FireBufferSave(buffer string) {
	h.Fire(BufferSave, BufferPayload{Buffer: buffer})
}

func (h *Host) FireBufferModified(buffer string) {
	h.Fire(BufferModified, BufferPayload{Buffer: buffer})
}

func (h *Host) FireBufferActivated(buffer string) {
	h.Fire(BufferActivated, BufferPayload{Buffer: buffer})
}

func (h *Host) FireBufferClosed(buffer string) {
	h.Fire(BufferClosed, BufferPayload{Buffer: buffer})
}

func (h *Host) FireCursorMoved(buffer string) {
	h.Fire(CursorMoved, BufferPayload{Buffer: buffer})
}

func (h *Host) FireViewportChanged(splitID string, topByte, topViewLine int) {
	h.Fire(ViewportChanged, ViewportChangedPayload{SplitID: splitID, TopByte: topByte, TopViewLine: topViewLine})
}

func (h *Host) FireAfterInsert(buffer string, start, end int) {
	h.Fire(AfterInsert, EditRangePayload{Buffer: buffer, Start: start, End: end})
}

func (h *Host) FireAfterDelete(buffer string, start, end int) {
	h.Fire(AfterDelete, EditRangePayload{Buffer: buffer, Start: start, End: end})
}

func (h *Host) FirePreCommand(name string) bool {
	return h.Fire(PreCommand, CommandEventPayload{Name: name})
}

func (h *Host) FirePostCommand(name string) {
	h.Fire(PostCommand, CommandEventPayload{Name: name})
}

// CreateVirtualBuffer creates a named VirtualBuffer, a plugin-owned
// text and property store (see PropertiesAt), without showing it
// anywhere. Overlays go through EditorState.AddOverlay, not here.
func (h *Host) CreateVirtualBuffer(name, text string) *VirtualBuffer {
	vb := NewVirtualBuffer(text)
	h.mu.Lock()
	h.vbuffers[name] = vb
	h.mu.Unlock()
	return vb
}

// CreateVirtualBufferInSplit creates a named VirtualBuffer and shows
// its initial content in splitID via a plain (piece-tree backed)
// buffer, the split-scoped half of create_virtual_buffer_in_split:
// property lookups go through the returned VirtualBuffer, rendering
// goes through the returned BufferViewState.
func (h *Host) CreateVirtualBufferInSplit(w *backend.Window, splitID backend.SplitID, name, text string) (*VirtualBuffer, *backend.BufferViewState) {
	vb := h.CreateVirtualBuffer(name, text)
	buf := backend.NewBufferFromText(text)
	buf.SetName(name)
	_, vs := w.ShowBufferInSplit(buf, splitID)
	return vb, vs
}

// VirtualBuffer returns the named virtual buffer, or nil.
func (h *Host) VirtualBuffer(name string) *VirtualBuffer {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.vbuffers[name]
}
