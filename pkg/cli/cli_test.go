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

package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	enabled  map[string]bool
	browsed  map[string]string
	selected string
	calls    []string
	toggleOn bool
}

func newFakeOrchestrator() *fakeOrchestrator {
	return &fakeOrchestrator{
		enabled: map[string]bool{},
		browsed: map[string]string{},
	}
}

var fakeNames = []string{"SimHub", "Crew Chief V4", "iRacing"}

func (f *fakeOrchestrator) lookup(name string) error {
	for _, n := range fakeNames {
		if n == name {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", catalog.ErrUnknownTarget, name)
}

func (f *fakeOrchestrator) LaunchAll(context.Context) lifecycle.Summary {
	f.calls = append(f.calls, "launch")
	return lifecycle.Summary{}
}

func (f *fakeOrchestrator) CloseAll(context.Context) lifecycle.Summary {
	f.calls = append(f.calls, "close")
	return lifecycle.Summary{}
}

func (f *fakeOrchestrator) BrowseOverride(name, path string) error {
	f.calls = append(f.calls, "browse")
	if err := f.lookup(name); err != nil {
		return err
	}
	f.browsed[name] = path
	return nil
}

func (f *fakeOrchestrator) SetEnabled(name string, enabled bool) error {
	f.calls = append(f.calls, "enable")
	if err := f.lookup(name); err != nil {
		return err
	}
	f.enabled[name] = enabled
	return nil
}

func (f *fakeOrchestrator) ToggleAll() (bool, error) {
	f.calls = append(f.calls, "toggle")
	return f.toggleOn, nil
}

func (f *fakeOrchestrator) SelectGame(name string) error {
	f.calls = append(f.calls, "game")
	if name != "" {
		if err := f.lookup(name); err != nil {
			return err
		}
	}
	f.selected = name
	return nil
}

func (f *fakeOrchestrator) Selection() string { return f.selected }

func (f *fakeOrchestrator) Targets() []lifecycle.TargetState {
	return []lifecycle.TargetState{
		{Name: "SimHub", Kind: catalog.KindApp, Status: lifecycle.Running, Enabled: true, Path: `C:\SimHub\SimHubWPF.exe`},
		{Name: "Crew Chief V4", Kind: catalog.KindApp, Status: lifecycle.Unconfigured},
		{Name: "iRacing", Kind: catalog.KindGame, Status: lifecycle.Idle, Selected: true, Enabled: true},
	}
}

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("simlaunch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := SetupFlags(fs)
	require.NoError(t, f.Parse(args))
	return f
}

func TestPre(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	assert.True(t, parse(t, "-version").Pre(&out))
	assert.Contains(t, out.String(), "SimLaunch v")

	out.Reset()
	assert.False(t, parse(t, "-launch").Pre(&out))
	assert.Empty(t, out.String())
}

func TestPostOrder(t *testing.T) {
	t.Parallel()

	o := newFakeOrchestrator()
	var out bytes.Buffer
	f := parse(t, "-launch", "-game", "iRacing", "-enable", "SimHub", "-toggle-all")

	require.NoError(t, f.Post(context.Background(), o, &out))

	assert.Equal(t, []string{"enable", "toggle", "game", "launch"}, o.calls)
	assert.Equal(t, "iRacing", o.selected)
	assert.True(t, o.enabled["SimHub"])
	assert.Contains(t, out.String(), "Selected game: iRacing")
	assert.NotContains(t, out.String(), "STATUS", "no table unless asked")
}

func TestPostDefaultsToStatus(t *testing.T) {
	t.Parallel()

	o := newFakeOrchestrator()
	var out bytes.Buffer

	require.NoError(t, parse(t).Post(context.Background(), o, &out))

	assert.Empty(t, o.calls)
	assert.Contains(t, out.String(), "STATUS")
	assert.Contains(t, out.String(), "running")
	assert.NotContains(t, out.String(), "PATH")
}

func TestPostList(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, parse(t, "-list").Post(context.Background(), newFakeOrchestrator(), &out))

	assert.Contains(t, out.String(), "PATH")
	assert.Contains(t, out.String(), `C:\SimHub\SimHubWPF.exe`)
	assert.Contains(t, out.String(), "selected")
}

func TestPostClearGame(t *testing.T) {
	t.Parallel()

	o := newFakeOrchestrator()
	o.selected = "iRacing"
	var out bytes.Buffer

	require.NoError(t, parse(t, "-game", "").Post(context.Background(), o, &out))

	assert.Empty(t, o.selected)
	assert.Contains(t, out.String(), "Game selection cleared")
}

func TestPostBrowse(t *testing.T) {
	t.Parallel()

	t.Run("requires_path", func(t *testing.T) {
		t.Parallel()
		o := newFakeOrchestrator()
		err := parse(t, "-browse", "SimHub").Post(context.Background(), o, io.Discard)
		require.ErrorIs(t, err, ErrMissingPath)
		assert.Empty(t, o.calls)
	})

	t.Run("sets_path", func(t *testing.T) {
		t.Parallel()
		o := newFakeOrchestrator()
		err := parse(t, "-browse", "SimHub", "-path", "/x/SimHubWPF.exe").
			Post(context.Background(), o, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "/x/SimHubWPF.exe", o.browsed["SimHub"])
	})
}

func TestPostUnknownTargetSuggests(t *testing.T) {
	t.Parallel()

	err := parse(t, "-disable", "simhb").Post(context.Background(), newFakeOrchestrator(), io.Discard)

	require.ErrorIs(t, err, catalog.ErrUnknownTarget)
	assert.Contains(t, err.Error(), `did you mean "SimHub"?`)
}

func TestPostLaunchAndCloseExclusive(t *testing.T) {
	t.Parallel()

	o := newFakeOrchestrator()
	require.NoError(t, parse(t, "-launch", "-close").Post(context.Background(), o, io.Discard))
	assert.Equal(t, []string{"launch"}, o.calls)
}

func TestToggleAllMessage(t *testing.T) {
	t.Parallel()

	o := newFakeOrchestrator()
	o.toggleOn = true
	var out bytes.Buffer
	require.NoError(t, parse(t, "-toggle-all").Post(context.Background(), o, &out))
	assert.Equal(t, "Enabled all configured apps\n", out.String())
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	names := []string{"SimHub", "Crew Chief V4", "Garage61", "iRacing", "Le Mans Ultimate"}
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "typo", query: "simhb", want: "SimHub"},
		{name: "missing_suffix", query: "crew chief", want: "Crew Chief V4"},
		{name: "case", query: "IRACING", want: "iRacing"},
		{name: "unrelated", query: "zzzz", want: ""},
		{name: "empty", query: "  ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Suggest(tt.query, names))
		})
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewPrinter(&out)
	at := time.Date(2026, 3, 1, 18, 4, 5, 0, time.UTC)

	p.Event(lifecycle.Event{Level: lifecycle.LevelDivider, Time: at})
	p.Event(lifecycle.Event{Level: lifecycle.LevelSuccess, Time: at, Message: "SimHub started successfully"})

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "----")
	assert.Equal(t, "[18:04:05] SimHub started successfully", string(lines[1]))
}
