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

package store

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const watchDebounce = 200 * time.Millisecond

// Watch reloads the store when the file is changed by something other
// than this store, then calls onChange. The containing directory must
// exist. Watch returns once the watcher is running; it stops when ctx is
// done.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create path store watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Debug().Str("path", s.path).Msg("watching path store")

	go s.watchLoop(ctx, watcher, onChange)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onChange func()) {
	defer func() {
		if err := watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close path store watcher")
		}
	}()

	name := filepath.Clean(s.path)
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debounce.Reset(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("path store watcher error")
		case <-debounce.C:
			if !s.changedOnDisk() {
				continue
			}
			if err := s.Reload(); err != nil {
				log.Warn().Err(err).Msg("failed to reload edited path store")
				continue
			}
			log.Info().Str("path", s.path).Msg("path store edited externally, reloaded")
			if onChange != nil {
				onChange()
			}
		}
	}
}

// changedOnDisk reports whether the file differs from what was last read
// or written by this store.
func (s *Store) changedOnDisk() bool {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !bytes.Equal(data, s.last)
}
