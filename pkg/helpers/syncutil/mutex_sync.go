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

//go:build !deadlock

// Package syncutil wraps the sync mutexes used by the settings and path
// stores so a development build can swap in deadlock detection with
// -tags=deadlock without touching call sites.
package syncutil

import "sync"

// DeadlockEnabled reports whether this build carries the deadlock detector.
const DeadlockEnabled = false

// Mutex is a plain sync.Mutex in release builds.
type Mutex struct {
	sync.Mutex //nolint:forbidigo // wrapper type
}

// RWMutex is a plain sync.RWMutex in release builds.
type RWMutex struct {
	sync.RWMutex //nolint:forbidigo // wrapper type
}
