// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Package persist saves and restores a workspace's layout as JSON: one
// file per workspace recording each split's open buffers and their
// view state, so reopening a workspace puts cursors, scroll position,
// and plugin state back where the user left them.
package persist

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/freshedit/fresh/backend/log"
)

// FileState is one buffer's persisted view state within a split.
type FileState struct {
	ViewMode      int                    `json:"view_mode"`
	ComposeWidth  int                    `json:"compose_width"`
	PrimaryCursor int                    `json:"primary_cursor"`
	ScrollTop     int                    `json:"scroll"`
	PluginState   map[string]interface{} `json:"plugin_state"`
}

// SplitState is one split's persisted layout: its active file and
// every file it has ever shown, keyed by path.
type SplitState struct {
	Active     string               `json:"active"`
	FileStates map[string]FileState `json:"file_states"`
}

// Workspace is the full persisted document for one workspace root.
type Workspace struct {
	Splits []SplitState `json:"splits"`
}

// pathFor returns the JSON file a workspace rooted at root persists
// to: one file in stateDir, named after root's absolute path so
// unrelated workspaces never collide.
func pathFor(stateDir, root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	name := workspaceFileName(abs)
	return filepath.Join(stateDir, name+".json")
}

// workspaceFileName turns an absolute workspace path into a
// filesystem-safe name by replacing path separators.
func workspaceFileName(abs string) string {
	out := make([]byte, 0, len(abs))
	for i := 0; i < len(abs); i++ {
		switch c := abs[i]; c {
		case filepath.Separator, ':':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Save writes ws to the workspace file for root under stateDir,
// creating stateDir if necessary.
func Save(stateDir, root string, ws Workspace) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return err
	}
	path := pathFor(stateDir, root)
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error("persist: couldn't save workspace state: %s", err)
		return err
	}
	return nil
}

// Load reads the workspace file for root under stateDir. A missing
// file is not an error: it returns a zero-value Workspace, the state
// a never-before-seen workspace starts from.
func Load(stateDir, root string) (Workspace, error) {
	path := pathFor(stateDir, root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Workspace{}, nil
	}
	if err != nil {
		return Workspace{}, err
	}
	var ws Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return Workspace{}, err
	}
	return ws, nil
}
