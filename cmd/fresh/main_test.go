// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowPathsPrintsThreePaths(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--show-paths"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, want := range []string{"config:", "state:", "log:"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
}

func TestInitScaffoldsLanguagePack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--init", "zig"})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	cfg, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(cfg, "packages", "zig", "language.yaml")
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("expected manifest at %s: %s", manifest, err)
	}
	if !strings.Contains(string(data), "name: zig") {
		t.Errorf("expected manifest to name the language, got %q", data)
	}
}

func TestRunEditorOpensGivenFiles(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	if err := os.WriteFile(path, []byte("hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{path})

	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1 buffer(s) open") {
		t.Errorf("expected a report of one buffer opened, got %q", out.String())
	}
}

func TestRunEditorMissingFileIsRuntimeFailure(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{filepath.Join(t.TempDir(), "does-not-exist.txt")})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error opening a nonexistent file")
	}
	var rerr *runtimeError
	if !errors.As(err, &rerr) {
		t.Errorf("expected a *runtimeError (exit 1), got %T: %s", err, err)
	}
}
