// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"io/ioutil"

	"github.com/freshedit/fresh/backend"
)

// ErrNoFileName is returned by SaveCommand when the buffer has never
// been associated with a path -- save_as isn't implemented here, so
// there's nowhere to write to.
var ErrNoFileName = errors.New("commands: buffer has no file name to save to")

// SaveCommand writes state's buffer to the path it was opened from. A
// before-file-save handler returning false cancels the write, the same
// way a before-file-open handler cancels OpenFile.
type SaveCommand struct{}

func (c *SaveCommand) Run(state *backend.EditorState, view *backend.BufferViewState, args Args) error {
	buf := state.Buffer()
	path := buf.FileName()
	if path == "" {
		return ErrNoFileName
	}
	if !backend.Hooks.FireBeforeFileSave(path) {
		return nil
	}
	text, err := buf.Substr(0, buf.Size())
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, []byte(text), 0644); err != nil {
		return err
	}
	buf.ClearDirty()
	backend.Hooks.FireAfterFileSave(path)
	backend.Hooks.FireBufferSave(buf.Name())
	return nil
}

func init() {
	register("save", &SaveCommand{})
}
