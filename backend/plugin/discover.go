// Copyright 2016 The lime Authors.
// Use of this source code is governed by a 2-clause
// BSD-style license that can be found in the LICENSE file.

package plugin

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/freshedit/fresh/backend/log"
	"github.com/freshedit/fresh/backend/watch"
)

// LanguagePack is one language.yaml manifest, as scaffolded by the CLI
// surface's --init. The Host loads packs and keys them by name (see
// LanguagePacks); no other package reads their fields.
type LanguagePack struct {
	Name           string   `yaml:"name"`
	FileExtensions []string `yaml:"file_extensions"`
	LineComment    string   `yaml:"line_comment"`

	path string
}

// Path is the manifest file this pack was loaded from.
func (p LanguagePack) Path() string { return p.path }

func loadLanguagePack(manifestPath string) (LanguagePack, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return LanguagePack{}, err
	}
	var p LanguagePack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return LanguagePack{}, err
	}
	p.path = manifestPath
	return p, nil
}

// DiscoverLanguagePacks scans dir for immediate subdirectories
// containing a language.yaml manifest, the layout --init scaffolds.
// Unreadable or malformed manifests are logged and skipped rather than
// failing the whole scan, so one broken pack doesn't blind the editor
// to every other one.
func DiscoverLanguagePacks(dir string) ([]LanguagePack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var packs []LanguagePack
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		manifest := filepath.Join(dir, e.Name(), "language.yaml")
		if _, err := os.Stat(manifest); err != nil {
			continue
		}
		p, err := loadLanguagePack(manifest)
		if err != nil {
			log.Warn("plugin: couldn't load language pack %s: %s", manifest, err)
			continue
		}
		packs = append(packs, p)
	}
	return packs, nil
}

// LanguagePacks returns every pack last loaded by LoadLanguagePacks,
// keyed by name.
func (h *Host) LanguagePacks() map[string]LanguagePack {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(map[string]LanguagePack, len(h.languagePacks))
	for k, v := range h.languagePacks {
		out[k] = v
	}
	return out
}

// LoadLanguagePacks scans dir and replaces the host's current set of
// known language packs with what it finds.
func (h *Host) LoadLanguagePacks(dir string) error {
	packs, err := DiscoverLanguagePacks(dir)
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.languagePacks = make(map[string]LanguagePack, len(packs))
	for _, p := range packs {
		h.languagePacks[p.Name] = p
	}
	h.mu.Unlock()
	return nil
}

// WatchLanguagePacks registers dir with w so that any new or changed
// pack under it triggers a rescan, picking up packages --init scaffolds
// or a user hand-edits while the editor is running.
func (h *Host) WatchLanguagePacks(w *watch.Watcher, dir string) error {
	if err := h.LoadLanguagePacks(dir); err != nil {
		return err
	}
	w.Watch(dir, func() {
		if err := h.LoadLanguagePacks(dir); err != nil {
			log.Error("plugin: rescanning language packs in %s: %s", dir, err)
		}
	})
	return nil
}
