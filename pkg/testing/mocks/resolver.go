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

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockShortcutFinder is a testify mock for resolver.ShortcutFinder.
type MockShortcutFinder struct {
	mock.Mock
}

func (m *MockShortcutFinder) Find(ctx context.Context, names []string) []string {
	called := m.Called(ctx, names)
	out, _ := called.Get(0).([]string)
	return out
}

// MockInstallRegistry is a testify mock for resolver.InstallRegistry.
type MockInstallRegistry struct {
	mock.Mock
}

func (m *MockInstallRegistry) IsInstalled(id string) bool {
	return m.Called(id).Bool(0)
}
