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

// Package command runs external programs behind an interface so launch code
// can be exercised without spawning anything.
package command

import (
	"context"
	"errors"
	"os/exec"
)

// ErrEmptyCommand is returned when no program name is given.
var ErrEmptyCommand = errors.New("empty command")

type StartOptions struct {
	// Dir sets the working directory of the new process. Empty inherits ours.
	Dir string

	// HideWindow prevents a console window from appearing (Windows-only).
	HideWindow bool

	// Detached starts the process with no standard streams, in its own
	// process group/session, and not bound to the context passed to
	// StartWithOptions. The process outlives the caller.
	Detached bool
}

type Executor interface {
	// Run executes a command and waits for it to complete.
	Run(ctx context.Context, name string, args ...string) error

	// Output runs a command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Start starts a command without waiting for it to complete.
	Start(ctx context.Context, name string, args ...string) error

	// StartWithOptions starts a command with platform-specific options.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error
}

type RealExecutor struct{}

var _ Executor = (*RealExecutor)(nil)

func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (*RealExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (*RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}

func (*RealExecutor) StartWithOptions(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	if name == "" {
		return ErrEmptyCommand
	}

	var cmd *exec.Cmd
	if opts.Detached {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context errors are returned as-is
		}
		// exec.CommandContext would kill the child when ctx ends.
		cmd = exec.Command(name, args...) //nolint:gosec,noctx // detached on purpose
	} else {
		cmd = exec.CommandContext(ctx, name, args...)
	}
	cmd.Dir = opts.Dir
	cmd.SysProcAttr = sysProcAttr(opts)

	if err := cmd.Start(); err != nil {
		return err //nolint:wrapcheck // callers wrap with launch context
	}

	if opts.Detached {
		// Reap the child if it exits while we are still alive.
		go func() { _ = cmd.Wait() }()
	}
	return nil
}
