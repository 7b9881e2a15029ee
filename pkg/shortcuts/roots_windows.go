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
)

var startMenu = filepath.Join("Microsoft", "Windows", "Start Menu", "Programs")

// DefaultRoots returns the per-user then per-machine start menus, followed
// by extra.
func DefaultRoots(env catalog.Env, extra []string) []string {
	var roots []string
	for _, key := range []string{catalog.EnvAppData, catalog.EnvProgramData} {
		if base, ok := env.LookupEnv(key); ok && base != "" {
			roots = append(roots, filepath.Join(base, startMenu))
		}
	}
	return dedupeRoots(append(roots, extra...))
}
