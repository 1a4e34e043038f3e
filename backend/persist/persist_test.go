// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package persist

import "testing"

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	root := "/some/workspace"

	ws := Workspace{
		Splits: []SplitState{
			{
				Active: "/some/workspace/main.go",
				FileStates: map[string]FileState{
					"/some/workspace/main.go": {
						ViewMode:      0,
						ComposeWidth:  80,
						PrimaryCursor: 42,
						ScrollTop:     3,
						PluginState:   map[string]interface{}{"linter": "clean"},
					},
				},
			},
		},
	}

	if err := Save(dir, root, ws); err != nil {
		t.Fatal(err)
	}

	got, err := Load(dir, root)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Splits) != 1 {
		t.Fatalf("expected 1 split, got %d", len(got.Splits))
	}
	fs := got.Splits[0].FileStates["/some/workspace/main.go"]
	if fs.PrimaryCursor != 42 || fs.ScrollTop != 3 {
		t.Errorf("got %+v", fs)
	}
	if fs.PluginState["linter"] != "clean" {
		t.Errorf("expected plugin state to round-trip, got %v", fs.PluginState)
	}
}

func TestLoadMissingWorkspaceReturnsZeroValue(t *testing.T) {
	dir := t.TempDir()
	ws, err := Load(dir, "/never/saved")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws.Splits) != 0 {
		t.Errorf("expected empty workspace, got %+v", ws)
	}
}
