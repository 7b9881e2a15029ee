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

// Package launcher starts a resolved target and checks that its process
// appears.
//
// Verification only watches the process table: a target that is slower than
// the timeout is reported TimedOut even if it starts later, and one that
// crashes right after being seen is still reported Running.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/config"
	"github.com/ZaparooProject/simlaunch/pkg/helpers/command"
	"github.com/ZaparooProject/simlaunch/pkg/resolver"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	ErrUnresolved = errors.New("target has no resolved path")
	ErrNotFound   = errors.New("launch path does not exist")
)

type Outcome int

const (
	// Running means the process was seen before the timeout.
	Running Outcome = iota
	// TimedOut means the launch was dispatched but the process was not
	// seen. It may still be starting.
	TimedOut
	// SpawnFailed means nothing was started.
	SpawnFailed
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case TimedOut:
		return "timed out"
	default:
		return "spawn failed"
	}
}

// ProcessChecker reports whether a process with the image name is alive.
type ProcessChecker interface {
	IsRunning(exe string) bool
}

type Launcher struct {
	cmd     command.Executor
	procs   ProcessChecker
	clock   clockwork.Clock
	fs      afero.Fs
	goos    string
	timings config.LaunchTimings
}

type Option func(*Launcher)

func WithClock(c clockwork.Clock) Option {
	return func(l *Launcher) {
		l.clock = c
	}
}

func WithTimings(t config.LaunchTimings) Option {
	return func(l *Launcher) {
		l.timings = t
	}
}

func WithFs(fs afero.Fs) Option {
	return func(l *Launcher) {
		l.fs = fs
	}
}

// WithGOOS selects the OS whose opener commands are used.
func WithGOOS(goos string) Option {
	return func(l *Launcher) {
		l.goos = goos
	}
}

func New(cmd command.Executor, procs ProcessChecker, opts ...Option) *Launcher {
	l := &Launcher{
		cmd:     cmd,
		procs:   procs,
		clock:   clockwork.NewRealClock(),
		fs:      afero.NewOsFs(),
		goos:    runtime.GOOS,
		timings: config.DefaultTimings,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.timings.PollInterval <= 0 {
		l.timings.PollInterval = config.DefaultTimings.PollInterval
	}
	return l
}

// Launch starts res and waits for a process named exe. The error is set
// only with SpawnFailed, which returns without waiting. ctx bounds the
// wait; a started process is never stopped by it.
func (l *Launcher) Launch(ctx context.Context, exe string, res resolver.Result) (Outcome, error) {
	if !res.Resolved() {
		return SpawnFailed, ErrUnresolved
	}

	mode := res.Mode()
	settle, timeout := l.modeTimings(mode)

	start := l.clock.Now()
	if err := l.dispatch(ctx, mode, res.Value); err != nil {
		log.Error().Err(err).Str("exe", exe).Stringer("mode", mode).Msg("failed to start target")
		return SpawnFailed, err
	}
	log.Info().Str("exe", exe).Stringer("mode", mode).Str("value", res.Value).Msg("launch dispatched")

	outcome := l.verify(ctx, exe, start.Add(timeout), settle)
	log.Info().
		Str("exe", exe).
		Stringer("outcome", outcome).
		Dur("elapsed", l.clock.Since(start)).
		Msg("launch verified")
	return outcome, nil
}

func (l *Launcher) modeTimings(mode resolver.Mode) (settle, timeout time.Duration) {
	t := l.timings
	switch mode {
	case resolver.ModeProtocol:
		return t.ProtocolSettle, t.ProtocolTimeout
	case resolver.ModeShell:
		return t.ShellSettle, t.ShellTimeout
	default:
		return t.DirectSettle, t.DirectTimeout
	}
}

func (l *Launcher) dispatch(ctx context.Context, mode resolver.Mode, value string) error {
	if mode != resolver.ModeProtocol {
		if ok, err := afero.Exists(l.fs, value); err != nil || !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, value)
		}
	}

	var err error
	switch mode {
	case resolver.ModeProtocol, resolver.ModeShell:
		name, args := openCommand(l.goos, value)
		err = l.cmd.StartWithOptions(ctx, command.StartOptions{
			HideWindow: true,
			Detached:   true,
		}, name, args...)
	default:
		err = l.cmd.StartWithOptions(ctx, command.StartOptions{
			Dir:      filepath.Dir(value),
			Detached: true,
		}, value)
	}
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", value, err)
	}
	return nil
}

// verify waits out the settle delay, then polls until deadline.
func (l *Launcher) verify(ctx context.Context, exe string, deadline time.Time, settle time.Duration) Outcome {
	if !l.sleep(ctx, settle) {
		return l.check(exe)
	}

	for {
		if l.procs.IsRunning(exe) {
			return Running
		}
		remaining := deadline.Sub(l.clock.Now())
		if remaining <= 0 {
			return TimedOut
		}
		if !l.sleep(ctx, min(l.timings.PollInterval, remaining)) {
			return l.check(exe)
		}
	}
}

func (l *Launcher) check(exe string) Outcome {
	if l.procs.IsRunning(exe) {
		return Running
	}
	return TimedOut
}

// sleep returns false if ctx ended first.
func (l *Launcher) sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	t := l.clock.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.Chan():
		return true
	case <-ctx.Done():
		return false
	}
}
