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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CfgFile), []byte(contents), 0o600))
	return dir
}

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, CfgFile))
	require.NoError(t, statErr)
	assert.Equal(t, DefaultTimings, cfg.LaunchTimings())
	assert.False(t, cfg.DebugLogging())
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
config_schema = 1
debug_logging = true

[launch]
protocol_settle = "5s"
poll_interval = "250ms"

[search]
steam_dir = 'D:\Steam'
shortcut_dirs = ['D:\Shortcuts']

[search.known_paths]
"SimHub" = ['D:\SimHub\SimHubWPF.exe']
`)

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	timings := cfg.LaunchTimings()
	assert.Equal(t, 5*time.Second, timings.ProtocolSettle)
	assert.Equal(t, 250*time.Millisecond, timings.PollInterval)
	assert.Equal(t, DefaultTimings.DirectTimeout, timings.DirectTimeout)
	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, `D:\Steam`, cfg.SteamDir())
	assert.Equal(t, []string{`D:\Shortcuts`}, cfg.ShortcutDirs())
	assert.Equal(t, map[string][]string{"SimHub": {`D:\SimHub\SimHubWPF.exe`}}, cfg.ExtraKnownPaths())
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, `
config_schema = 1

[launch]
direct_settle = "soon"
shell_timeout = "-4s"
`)

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	timings := cfg.LaunchTimings()
	assert.Equal(t, DefaultTimings.DirectSettle, timings.DirectSettle)
	assert.Equal(t, DefaultTimings.ShellTimeout, timings.ShellTimeout)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "config_schema = 7\n")

	_, err := NewConfig(dir, BaseDefaults)

	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestSave_RoundTripsDebugLogging(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)
	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, filepath.Join(dir, CfgFile), reloaded.Path())
}

func TestExtraKnownPaths_ReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := &Instance{vals: Values{Search: Search{
		KnownPaths: map[string][]string{"Bloops": {"a"}},
	}}}

	paths := cfg.ExtraKnownPaths()
	paths["Bloops"][0] = "changed"

	assert.Equal(t, "a", cfg.ExtraKnownPaths()["Bloops"][0])
}

func TestDurationValidator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "empty is allowed", value: "", valid: true},
		{name: "seconds", value: "3s", valid: true},
		{name: "millis", value: "500ms", valid: true},
		{name: "garbage", value: "three", valid: false},
		{name: "negative", value: "-1s", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate.Struct(Launch{PollInterval: tt.value})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
