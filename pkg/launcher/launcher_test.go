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

package launcher

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/config"
	"github.com/ZaparooProject/simlaunch/pkg/helpers/command"
	"github.com/ZaparooProject/simlaunch/pkg/resolver"
	testhelpers "github.com/ZaparooProject/simlaunch/pkg/testing/helpers"
	"github.com/ZaparooProject/simlaunch/pkg/testing/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const step = 500 * time.Millisecond

var simhubExe = filepath.Join("/", "apps", "SimHub", "SimHubWPF.exe")

type env struct {
	clock *clockwork.FakeClock
	fs    *testhelpers.FSHelper
	cmd   *mocks.MockCommandExecutor
	procs *mocks.MockProcessMonitor
	l     *Launcher
}

func newEnv(t *testing.T, goos string) *env {
	t.Helper()
	e := &env{
		clock: clockwork.NewFakeClock(),
		fs:    testhelpers.NewMemoryFS(),
		cmd:   testhelpers.NewMockCommandExecutor(),
		procs: &mocks.MockProcessMonitor{},
	}
	require.NoError(t, e.fs.CreateFiles(simhubExe))
	e.l = New(e.cmd, e.procs,
		WithClock(e.clock),
		WithFs(e.fs.Fs),
		WithGOOS(goos),
		WithTimings(config.DefaultTimings),
	)
	return e
}

type launchResult struct {
	err     error
	outcome Outcome
	elapsed time.Duration
}

// launch runs Launch in the background and advances the fake clock one
// poll step at a time whenever the launcher is waiting on it.
func (e *env) launch(t *testing.T, exe string, res resolver.Result) launchResult {
	t.Helper()
	start := e.clock.Now()
	done := make(chan launchResult, 1)
	go func() {
		outcome, err := e.l.Launch(context.Background(), exe, res)
		done <- launchResult{outcome: outcome, err: err, elapsed: e.clock.Since(start)}
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-done:
			return r
		case <-deadline:
			t.Fatal("launch did not finish")
		default:
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		err := e.clock.BlockUntilContext(ctx, 1)
		cancel()
		if err == nil {
			e.clock.Advance(step)
		}
	}
}

func TestDirectLaunchRunning(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	e.cmd.ExpectedCalls = nil
	e.cmd.On("StartWithOptions", mock.Anything,
		command.StartOptions{Dir: filepath.Dir(simhubExe), Detached: true},
		simhubExe, []string(nil),
	).Return(nil).Once()
	e.procs.On("IsRunning", "SimHubWPF.exe").Return(true)

	r := e.launch(t, "SimHubWPF.exe", resolver.Result{Kind: resolver.Known, Value: simhubExe})

	require.NoError(t, r.err)
	assert.Equal(t, Running, r.outcome)
	assert.Equal(t, config.DefaultTimings.DirectSettle, r.elapsed)
	e.cmd.AssertExpectations(t)
}

func TestSlowStartIsPolled(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	e.procs.On("IsRunning", "SimHubWPF.exe").Return(false).Times(3)
	e.procs.On("IsRunning", "SimHubWPF.exe").Return(true)

	r := e.launch(t, "SimHubWPF.exe", resolver.Result{Kind: resolver.Known, Value: simhubExe})

	require.NoError(t, r.err)
	assert.Equal(t, Running, r.outcome)
	assert.Equal(t, config.DefaultTimings.DirectSettle+3*step, r.elapsed)
	e.procs.AssertNumberOfCalls(t, "IsRunning", 4)
}

func TestNeverSeenTimesOut(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	e.procs.On("IsRunning", "SimHubWPF.exe").Return(false)

	r := e.launch(t, "SimHubWPF.exe", resolver.Result{Kind: resolver.Known, Value: simhubExe})

	require.NoError(t, r.err)
	assert.Equal(t, TimedOut, r.outcome)
	assert.Equal(t, config.DefaultTimings.DirectTimeout, r.elapsed)
}

func TestSpawnFailureReturnsImmediately(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	e.cmd.ExpectedCalls = nil
	e.cmd.On("StartWithOptions", mock.Anything, mock.Anything, simhubExe, mock.Anything).
		Return(errors.New("permission denied"))

	outcome, err := e.l.Launch(context.Background(), "SimHubWPF.exe",
		resolver.Result{Kind: resolver.Known, Value: simhubExe})

	require.Error(t, err)
	assert.Equal(t, SpawnFailed, outcome)
	e.procs.AssertNotCalled(t, "IsRunning", mock.Anything)
}

func TestMissingPathIsSpawnFailure(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "windows")
	gone := filepath.Join("/", "gone", "Bloops.exe")

	outcome, err := e.l.Launch(context.Background(), "Bloops.exe",
		resolver.Result{Kind: resolver.Cached, Value: gone})

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, SpawnFailed, outcome)
	e.cmd.AssertNotCalled(t, "StartWithOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnresolved(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	outcome, err := e.l.Launch(context.Background(), "x.exe", resolver.Result{})
	require.ErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, SpawnFailed, outcome)
}

func TestProtocolLaunch(t *testing.T) {
	t.Parallel()

	url := "steam://rungameid/266410"
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{goos: "windows", name: "cmd", args: []string{"/c", "start", "", url}},
		{goos: "linux", name: "xdg-open", args: []string{url}},
		{goos: "darwin", name: "open", args: []string{url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t, tt.goos)
			e.cmd.ExpectedCalls = nil
			e.cmd.On("StartWithOptions", mock.Anything,
				command.StartOptions{HideWindow: true, Detached: true}, tt.name, tt.args,
			).Return(nil).Once()
			e.procs.On("IsRunning", "iRacingUI.exe").Return(true)

			r := e.launch(t, "iRacingUI.exe", resolver.Result{Kind: resolver.Protocol, Value: url})

			require.NoError(t, r.err)
			assert.Equal(t, Running, r.outcome)
			assert.Equal(t, config.DefaultTimings.ProtocolSettle, r.elapsed)
			e.cmd.AssertExpectations(t)
		})
	}
}

func TestShellLaunch(t *testing.T) {
	t.Parallel()

	t.Run("windows_shortcut", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, "windows")
		lnk := filepath.Join("/", "menu", "iRacing.lnk")
		require.NoError(t, e.fs.CreateFiles(lnk))
		e.cmd.ExpectedCalls = nil
		e.cmd.On("StartWithOptions", mock.Anything, mock.Anything,
			"cmd", []string{"/c", "start", "", lnk},
		).Return(nil).Once()
		e.procs.On("IsRunning", "iRacingUI.exe").Return(false).Once()
		e.procs.On("IsRunning", "iRacingUI.exe").Return(true)

		r := e.launch(t, "iRacingUI.exe",
			resolver.Result{Kind: resolver.Shortcut, Value: lnk, Indirection: true})

		require.NoError(t, r.err)
		assert.Equal(t, Running, r.outcome)
		assert.Equal(t, config.DefaultTimings.ShellSettle+step, r.elapsed)
	})

	t.Run("desktop_entry", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t, "linux")
		entry := filepath.Join("/", "apps", "simhub.desktop")
		require.NoError(t, e.fs.CreateFiles(entry))
		e.cmd.ExpectedCalls = nil
		e.cmd.On("StartWithOptions", mock.Anything, mock.Anything,
			"gio", []string{"launch", entry},
		).Return(nil).Once()
		e.procs.On("IsRunning", "SimHubWPF.exe").Return(false)

		r := e.launch(t, "SimHubWPF.exe", resolver.Result{Kind: resolver.Cached, Value: entry})

		require.NoError(t, r.err)
		assert.Equal(t, TimedOut, r.outcome)
		assert.Equal(t, config.DefaultTimings.ShellTimeout, r.elapsed)
	})
}

func TestCancelledContextChecksOnce(t *testing.T) {
	t.Parallel()

	e := newEnv(t, "linux")
	e.procs.On("IsRunning", "SimHubWPF.exe").Return(false).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := e.l.Launch(ctx, "SimHubWPF.exe", resolver.Result{Kind: resolver.Known, Value: simhubExe})

	require.NoError(t, err)
	assert.Equal(t, TimedOut, outcome)
	e.procs.AssertNumberOfCalls(t, "IsRunning", 1)
}

func TestOpenCommand(t *testing.T) {
	t.Parallel()

	name, args := openCommand("linux", "/x/App.DESKTOP")
	assert.Equal(t, "gio", name)
	assert.Equal(t, []string{"launch", "/x/App.DESKTOP"}, args)

	name, args = openCommand("freebsd", "steam://rungameid/1")
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"steam://rungameid/1"}, args)
}
