//go:build !windows

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

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("executes_successful_command", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, executor.Run(context.Background(), "true"))
	})

	t.Run("returns_error_for_failed_command", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, executor.Run(context.Background(), "false"))
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()
		require.Error(t, executor.Run(context.Background(), "nonexistent_command_that_should_not_exist_12345"))
	})
}

func TestRealExecutor_StartWithOptions(t *testing.T) {
	t.Parallel()

	executor := &RealExecutor{}

	t.Run("starts_attached_command", func(t *testing.T) {
		t.Parallel()

		err := executor.StartWithOptions(context.Background(), StartOptions{}, "true")

		assert.NoError(t, err)
	})

	t.Run("starts_detached_command_in_dir", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{Detached: true, Dir: t.TempDir()}
		err := executor.StartWithOptions(context.Background(), opts, "true")

		assert.NoError(t, err)
	})

	t.Run("detached_refuses_cancelled_context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := executor.StartWithOptions(ctx, StartOptions{Detached: true}, "true")

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		t.Parallel()

		err := executor.StartWithOptions(context.Background(), StartOptions{}, "")

		require.ErrorIs(t, err, ErrEmptyCommand)
	})

	t.Run("returns_error_for_nonexistent_command", func(t *testing.T) {
		t.Parallel()

		opts := StartOptions{Detached: true}
		err := executor.StartWithOptions(context.Background(), opts, "nonexistent_command_that_should_not_exist_12345")

		require.Error(t, err)
	})
}

func TestSysProcAttr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, sysProcAttr(StartOptions{}))

	attr := sysProcAttr(StartOptions{Detached: true})
	require.NotNil(t, attr)
	assert.True(t, attr.Setsid)
}
