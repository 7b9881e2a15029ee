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

package helpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	// Note: Cannot use t.Parallel() because InitLogging modifies global log.Logger
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	t.Run("creates_nested_log_dir", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "state", "SimLaunch")

		require.NoError(t, InitLogging(logDir, false, nil))

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("writes_to_extra_writers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, InitLogging(t.TempDir(), true, []io.Writer{&buf}))

		log.Debug().Str("target", "SimHub").Msg("resolved target")

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
		assert.Contains(t, buf.String(), `"target":"SimHub"`)
		assert.Contains(t, buf.String(), "resolved target")
	})

	t.Run("filtered_writer_drops_low_levels", func(t *testing.T) {
		var buf bytes.Buffer
		console := &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: &buf},
			Level:  zerolog.WarnLevel,
		}
		require.NoError(t, InitLogging(t.TempDir(), false, []io.Writer{console}))

		log.Info().Msg("launch sequence finished")
		log.Warn().Msg("failed to cache resolved path")

		assert.NotContains(t, buf.String(), "launch sequence finished")
		assert.Contains(t, buf.String(), "failed to cache resolved path")
	})

	t.Run("fails_on_invalid_dir", func(t *testing.T) {
		err := InitLogging("/proc/invalid\x00path", false, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}

func TestDirs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SimLaunch", filepath.Base(ConfigDir()))
	assert.Equal(t, "SimLaunch", filepath.Base(LogDir()))
}
