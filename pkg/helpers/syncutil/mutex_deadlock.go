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

//go:build deadlock

package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether this build carries the deadlock detector.
const DeadlockEnabled = true

func init() {
	// A launch batch can legitimately hold the orchestrator lock for the
	// longest protocol timeout, so the detector has to wait longer than that.
	deadlock.Opts.DeadlockTimeout = 2 * time.Minute
}

// Mutex reports lock cycles and long waits in deadlock builds.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex reports lock cycles and long waits in deadlock builds.
type RWMutex struct {
	deadlock.RWMutex
}
