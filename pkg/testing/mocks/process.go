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

package mocks

import "github.com/stretchr/testify/mock"

// MockProcessMonitor is a testify mock for the process checks used by the
// launcher and lifecycle packages.
//
// Liveness sequences can be scripted with Once():
//
//	m.On("IsRunning", "SimHubWPF.exe").Return(false).Once()
//	m.On("IsRunning", "SimHubWPF.exe").Return(true)
type MockProcessMonitor struct {
	mock.Mock
}

func (m *MockProcessMonitor) IsRunning(exe string) bool {
	return m.Called(exe).Bool(0)
}

func (m *MockProcessMonitor) Kill(exe string) bool {
	return m.Called(exe).Bool(0)
}
