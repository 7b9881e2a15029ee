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

package steam

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

const uninstallKeyPrefix = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\Steam App `

func uninstallKeyExists(id string) bool {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, uninstallKeyPrefix+id, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	if closeErr := key.Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("error closing registry key")
	}
	return true
}

// defaultSteamDirs returns the Steam install path from the registry, then
// the stock install location.
func defaultSteamDirs() []string {
	var dirs []string
	for _, path := range []string{`SOFTWARE\Wow6432Node\Valve\Steam`, `SOFTWARE\Valve\Steam`} {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		installPath, _, err := key.GetStringValue("InstallPath")
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
		if err == nil && installPath != "" {
			dirs = append(dirs, installPath)
		}
	}
	return append(dirs, `C:\Program Files (x86)\Steam`, `C:\Program Files\Steam`)
}
