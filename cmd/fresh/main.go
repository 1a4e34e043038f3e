// Copyright 2013 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

// Command fresh is the CLI entry point: it wires the editor core to a
// terminal frontend, scaffolds new language packs, and reports the
// paths the host environment uses for config, logs, and persisted
// workspace state.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/limetext/log4go"
	"github.com/spf13/cobra"

	"github.com/freshedit/fresh/backend"
	"github.com/freshedit/fresh/backend/log"
	"github.com/freshedit/fresh/backend/persist"
	"github.com/freshedit/fresh/backend/plugin"
	"github.com/freshedit/fresh/backend/watch"
)

// runtimeError marks a RunE failure as a runtime failure (exit 1)
// rather than a bad invocation (exit 2).
type runtimeError struct{ err error }

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &runtimeError{err: err}
}

// Exit codes per the CLI surface: 0 success, 1 runtime failure, 2 bad
// invocation.
const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fresh"), nil
}

func stateDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fresh", "workspaces"), nil
}

func logPath() (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dir), "fresh.log"), nil
}

func runShowPaths(cmd *cobra.Command, args []string) error {
	cfg, err := configDir()
	if err != nil {
		return fail(err)
	}
	state, err := stateDir()
	if err != nil {
		return fail(err)
	}
	lg, err := logPath()
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config: %s\nstate:  %s\nlog:    %s\n", cfg, state, lg)
	return nil
}

func runInit(cmd *cobra.Command, language string) error {
	cfg, err := configDir()
	if err != nil {
		return fail(err)
	}
	packDir := filepath.Join(cfg, "packages", language)
	if err := os.MkdirAll(packDir, 0755); err != nil {
		return fail(err)
	}
	manifest := fmt.Sprintf("name: %s\nfile_extensions: []\nline_comment: \"//\"\n", language)
	if err := os.WriteFile(filepath.Join(packDir, "language.yaml"), []byte(manifest), 0644); err != nil {
		return fail(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created language pack at %s\n", packDir)
	return nil
}

// runEditor opens the given files (or a single empty buffer) in a new
// window and persists the workspace layout on exit. The actual
// terminal rendering loop is the frontend's responsibility (see
// backend.Frontend) and isn't implemented here.
func runEditor(cmd *cobra.Command, files []string) error {
	if p, err := logPath(); err == nil {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err == nil {
			log.AddFilter("file", log4go.INFO, log4go.NewFileLogWriter(p, true))
		}
	}

	ed := backend.GetEditor()
	w := ed.NewWindow()

	root, err := os.Getwd()
	if err != nil {
		return fail(err)
	}
	sd, err := stateDir()
	if err != nil {
		return fail(err)
	}
	ws, err := persist.Load(sd, root)
	if err != nil {
		log.Warn("couldn't load persisted workspace state: %s", err)
	}
	_ = ws // restoring per-file cursor/scroll state is the frontend's responsibility once wired up.

	host := plugin.NewHost()
	backend.SetHooks(host)
	if cfg, err := configDir(); err == nil {
		packagesDir := filepath.Join(cfg, "packages")
		if err := os.MkdirAll(packagesDir, 0755); err == nil {
			packageWatcher := watch.NewWatcher()
			if err := host.WatchLanguagePacks(packageWatcher, packagesDir); err != nil {
				log.Warn("couldn't load language packs from %s: %s", packagesDir, err)
			} else {
				go packageWatcher.Observe()
			}
		}
	}

	if len(files) == 0 {
		w.NewFile()
	} else {
		for _, f := range files {
			if _, _, err := w.OpenFile(f); err != nil {
				return fail(fmt.Errorf("opening %s: %w", f, err))
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fresh: %d window(s), %d buffer(s) open\n", len(ed.Windows()), len(files))
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		initLang  string
		showPaths bool
	)

	root := &cobra.Command{
		Use:   "fresh [files...]",
		Short: "Fresh is a terminal text editor core",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case initLang != "":
				return runInit(cmd, initLang)
			case showPaths:
				return runShowPaths(cmd, args)
			default:
				return runEditor(cmd, args)
			}
		},
	}
	root.Flags().StringVar(&initLang, "init", "", "scaffold a new language pack")
	root.Flags().BoolVar(&showPaths, "show-paths", false, "print config/log/state paths and exit")
	return root
}

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var rerr *runtimeError
		if errors.As(err, &rerr) {
			os.Exit(exitFailure)
		}
		os.Exit(exitUsage)
	}
	os.Exit(exitSuccess)
}
