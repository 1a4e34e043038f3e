// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package plugin

// Event names one of the notifications the plugin host delivers to
// subscribed handlers. The "Before"/"Pre" members are cancelable: a
// handler returning false from Fire stops the action the event
// precedes and short-circuits any handler still queued behind it.
type Event string

const (
	BufferSave      Event = "buffer_save"
	BufferModified  Event = "buffer_modified"
	CursorMoved     Event = "cursor_moved"
	BufferActivated Event = "buffer_activated"
	BufferClosed    Event = "buffer_closed"
	ViewportChanged Event = "viewport_changed"
	BeforeFileOpen  Event = "before-file-open"
	AfterFileOpen   Event = "after-file-open"
	BeforeFileSave  Event = "before-file-save"
	AfterFileSave   Event = "after-file-save"
	AfterInsert     Event = "after-insert"
	AfterDelete     Event = "after-delete"
	PreCommand      Event = "pre-command"
	PostCommand     Event = "post-command"
)

// cancelable is the set of events a handler can veto by returning
// false; every other event is a fire-and-forget notification.
var cancelable = map[Event]bool{
	BeforeFileOpen: true,
	BeforeFileSave: true,
	PreCommand:     true,
}

// ViewportChangedPayload is delivered with ViewportChanged.
type ViewportChangedPayload struct {
	SplitID     string
	TopByte     int
	TopViewLine int
}

// EditRangePayload is delivered with AfterInsert and AfterDelete.
type EditRangePayload struct {
	Buffer string
	Start  int
	End    int
}

// BufferPayload is delivered with every event whose only datum is
// which buffer it concerns (buffer_save, buffer_modified,
// cursor_moved, buffer_activated, buffer_closed).
type BufferPayload struct {
	Buffer string
}

// FileEventPayload is delivered with the before/after-file-open and
// before/after-file-save events.
type FileEventPayload struct {
	Path string
}

// CommandEventPayload is delivered with pre-command and post-command.
type CommandEventPayload struct {
	Name string
}
