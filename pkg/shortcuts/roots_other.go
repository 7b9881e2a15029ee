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

package shortcuts

import (
	"path/filepath"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/adrg/xdg"
)

// DefaultRoots returns the user then system XDG application directories,
// followed by extra.
func DefaultRoots(_ catalog.Env, extra []string) []string {
	roots := []string{filepath.Join(xdg.DataHome, "applications")}
	for _, dir := range xdg.DataDirs {
		roots = append(roots, filepath.Join(dir, "applications"))
	}
	return dedupeRoots(append(roots, extra...))
}
