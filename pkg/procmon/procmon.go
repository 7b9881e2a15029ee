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

// Package procmon finds and terminates processes by executable image name.
//
// Every call works on a fresh snapshot of the process table, so answers can
// be stale by the time the caller acts on them.
package procmon

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// Process is the part of a live process the monitor needs.
type Process interface {
	Name() (string, error)
	Kill() error
}

// Lister takes a snapshot of the live processes.
type Lister func(ctx context.Context) ([]Process, error)

// Monitor matches processes by image name, ignoring case.
type Monitor struct {
	list Lister
}

// New returns a Monitor backed by the OS process table.
func New() *Monitor {
	return NewWithLister(SystemProcesses)
}

func NewWithLister(list Lister) *Monitor {
	return &Monitor{list: list}
}

// SystemProcesses lists OS processes through gopsutil.
func SystemProcesses(ctx context.Context) ([]Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, &osProcess{ctx: ctx, p: p})
	}
	return out, nil
}

type osProcess struct {
	ctx context.Context //nolint:containedctx // bound to one snapshot
	p   *process.Process
}

func (o *osProcess) Name() (string, error) {
	return o.p.NameWithContext(o.ctx) //nolint:wrapcheck // skipped by caller
}

func (o *osProcess) Kill() error {
	return o.p.KillWithContext(o.ctx) //nolint:wrapcheck // skipped by caller
}

func (m *Monitor) snapshot() []Process {
	procs, err := m.list(context.Background())
	if err != nil {
		log.Warn().Err(err).Msg("failed to list processes")
		return nil
	}
	return procs
}

// IsRunning reports whether any process has the image name exe.
func (m *Monitor) IsRunning(exe string) bool {
	for _, p := range m.snapshot() {
		name, err := p.Name()
		if err != nil {
			// exited or inaccessible since the snapshot
			continue
		}
		if strings.EqualFold(name, exe) {
			return true
		}
	}
	return false
}

// Kill terminates every process named exe and reports whether at least
// one was killed.
func (m *Monitor) Kill(exe string) bool {
	killed := 0
	for _, p := range m.snapshot() {
		name, err := p.Name()
		if err != nil || !strings.EqualFold(name, exe) {
			continue
		}
		if err := p.Kill(); err != nil {
			log.Debug().Err(err).Str("exe", exe).Msg("skipping process that could not be killed")
			continue
		}
		killed++
	}
	if killed > 0 {
		log.Info().Str("exe", exe).Int("count", killed).Msg("killed processes")
	}
	return killed > 0
}

// Running checks several image names against one snapshot.
func (m *Monitor) Running(exes ...string) map[string]bool {
	want := make(map[string]string, len(exes))
	out := make(map[string]bool, len(exes))
	for _, exe := range exes {
		want[strings.ToLower(exe)] = exe
		out[exe] = false
	}

	for _, p := range m.snapshot() {
		name, err := p.Name()
		if err != nil {
			continue
		}
		if exe, ok := want[strings.ToLower(name)]; ok {
			out[exe] = true
		}
	}
	return out
}
