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

package lifecycle

import (
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/google/uuid"
)

// Status is the displayed state of one target.
type Status int

const (
	Unconfigured Status = iota
	Idle
	Starting
	Running
	Failed
	Stopping
	Stopped
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Failed:
		return "failed"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	default:
		return "not configured"
	}
}

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelLaunch  Level = "launch"
	LevelClose   Level = "close"
	LevelDivider Level = "divider"
)

// Event is one line of the activity log.
type Event struct {
	Time    time.Time
	Message string
	// Target is empty for batch-level messages.
	Target string
	Level  Level
	// Run groups the events of one orchestrator operation.
	Run uuid.UUID
}

// Sink receives events synchronously, while the orchestrator lock is
// held. It must not call back into the orchestrator.
type Sink func(Event)

// StatusSink is told about every status change, under the same rules as
// Sink.
type StatusSink func(target string, status Status)

// Summary counts what a batch operation did.
type Summary struct {
	Run            uuid.UUID
	Started        int
	AlreadyRunning int
	Unconfigured   int
	Failed         int
	TimedOut       int
	Closed         int
	NotRunning     int
	StillRunning   int
}

// TargetState is a snapshot of one target for display.
type TargetState struct {
	Name     string
	Path     string
	Kind     catalog.Kind
	Status   Status
	Enabled  bool
	Selected bool
}
