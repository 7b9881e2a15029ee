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

package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// TestScreen wraps a SimulationScreen with helper methods for testing.
type TestScreen struct {
	tcell.SimulationScreen
	t *testing.T
}

// NewTestScreen creates and initializes a simulation screen for testing.
func NewTestScreen(t *testing.T, width, height int) *TestScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NotNil(t, sim, "failed to create simulation screen")

	err := sim.Init()
	require.NoError(t, err, "failed to initialize simulation screen")

	sim.SetSize(width, height)

	return &TestScreen{
		SimulationScreen: sim,
		t:                t,
	}
}

// InjectEnter simulates pressing the Enter key.
func (s *TestScreen) InjectEnter() {
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
}

// InjectTab simulates pressing the Tab key.
func (s *TestScreen) InjectTab() {
	s.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
}

// GetScreenText returns all screen content as a single string.
func (s *TestScreen) GetScreenText() string {
	cells, width, height := s.GetContents()
	var sb strings.Builder
	for y := range height {
		for x := range width {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				sb.WriteRune(cell.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		if y < height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ContainsText checks if the screen contains the specified text anywhere.
func (s *TestScreen) ContainsText(text string) bool {
	return strings.Contains(s.GetScreenText(), text)
}
