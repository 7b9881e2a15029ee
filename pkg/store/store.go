// Zaparoo SimLaunch
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo SimLaunch.
//
// Zaparoo SimLaunch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo SimLaunch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo SimLaunch.  If not, see <http://www.gnu.org/licenses/>.

// Package store persists resolved target paths and user selections in a
// small INI document that stays readable and hand-editable.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	SectionPaths    = "AppPaths"
	SectionSettings = "Settings"

	KeySelectedGame = "selected_game"
	enabledSuffix   = "_enabled"
)

var loadOpts = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
}

// Store is the single in-memory copy of the persisted state. Every mutation
// is written to disk before the call returns.
type Store struct {
	fs   afero.Fs
	file *ini.File
	path string
	last []byte
	mu   syncutil.RWMutex
}

// Open loads the store at path. A missing file gives an empty store; the
// file is created on the first mutation.
func Open(fs afero.Fs, path string) (*Store, error) {
	s := &Store{fs: fs, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) FilePath() string {
	return s.path
}

// Reload discards the in-memory copy and reads the file again.
func (s *Store) Reload() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		data = nil
	} else if err != nil {
		return fmt.Errorf("failed to read path store: %w", err)
	}

	f, err := ini.LoadSources(loadOpts, data)
	if err != nil {
		return fmt.Errorf("failed to parse path store %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.file = f
	s.last = data
	s.mu.Unlock()
	return nil
}

// Path returns the stored path or URL for key.
func (s *Store) Path(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec := s.file.Section(SectionPaths)
	if !sec.HasKey(key) {
		return "", false
	}
	v := sec.Key(key).String()
	return v, v != ""
}

func (s *Store) SetPath(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := s.file.Section(SectionPaths)
	if sec.HasKey(key) && sec.Key(key).String() == value {
		return nil
	}
	sec.Key(key).SetValue(value)
	return s.save()
}

func (s *Store) DeletePath(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := s.file.Section(SectionPaths)
	if !sec.HasKey(key) {
		return nil
	}
	sec.DeleteKey(key)
	return s.save()
}

// Enabled returns the enabled flag for key, or fallback when it was never
// set or cannot be parsed.
func (s *Store) Enabled(key string, fallback bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec := s.file.Section(SectionSettings)
	name := key + enabledSuffix
	if !sec.HasKey(name) {
		return fallback
	}
	v, err := sec.Key(name).Bool()
	if err != nil {
		log.Warn().Err(err).Str("key", name).Msg("invalid enabled flag in path store")
		return fallback
	}
	return v
}

func (s *Store) SetEnabled(key string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := s.file.Section(SectionSettings).Key(key + enabledSuffix)
	k.SetValue(fmt.Sprintf("%t", enabled))
	return s.save()
}

// SelectedGame returns the selected game name, "" when none is selected.
func (s *Store) SelectedGame() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.file.Section(SectionSettings).Key(KeySelectedGame).String()
}

func (s *Store) SetSelectedGame(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file.Section(SectionSettings).Key(KeySelectedGame).SetValue(name)
	return s.save()
}

// save must be called with the write lock held.
func (s *Store) save() error {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode path store: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create path store directory: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write path store: %w", err)
	}
	s.last = buf.Bytes()
	log.Debug().Str("path", s.path).Msg("saved path store")
	return nil
}
