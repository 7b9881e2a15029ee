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
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// stateFullyInstalled is the StateFlags bit Steam sets once an app's files
// are complete on disk.
const stateFullyInstalled = 4

// Registry reports Steam install presence. On Windows the uninstall
// registry entry Steam writes per app is checked first; every platform
// then falls back to the app manifests in the Steam libraries.
type Registry struct {
	fs           afero.Fs
	uninstallKey func(id string) bool
	steamDirs    []string
}

// NewRegistry builds a registry probe. An empty steamDir means the usual
// install locations for this platform.
func NewRegistry(fs afero.Fs, steamDir string) *Registry {
	dirs := defaultSteamDirs()
	if steamDir != "" {
		dirs = append([]string{steamDir}, dirs...)
	}
	return &Registry{
		fs:           fs,
		steamDirs:    dirs,
		uninstallKey: uninstallKeyExists,
	}
}

// IsInstalled reports whether Steam lists the app as installed. It does not
// check that the game files are usable.
func (r *Registry) IsInstalled(id string) bool {
	if err := ValidateID(id); err != nil {
		log.Warn().Err(err).Msg("skipping Steam install check")
		return false
	}

	if r.uninstallKey != nil && r.uninstallKey(id) {
		log.Debug().Str("appID", id).Msg("Steam app found in uninstall registry")
		return true
	}

	for _, dir := range r.steamDirs {
		if r.installedInLibraries(FindSteamAppsDir(r.fs, dir), id) {
			log.Debug().Str("appID", id).Str("steamDir", dir).Msg("Steam app found in library")
			return true
		}
	}

	log.Debug().Str("appID", id).Msg("Steam app not installed")
	return false
}

// FindSteamAppsDir finds the steamapps directory under a Steam root.
func FindSteamAppsDir(fs afero.Fs, steamDir string) string {
	for _, candidate := range []string{"steamapps", "SteamApps"} {
		path := filepath.Join(steamDir, candidate)
		if ok, err := afero.DirExists(fs, path); err == nil && ok {
			return path
		}
	}
	return filepath.Join(steamDir, "steamapps")
}

func (r *Registry) installedInLibraries(mainSteamApps, id string) bool {
	if r.manifestInstalled(mainSteamApps, id) {
		return true
	}

	for _, lib := range r.libraryFolders(mainSteamApps, id) {
		if r.manifestInstalled(filepath.Join(lib, "steamapps"), id) {
			return true
		}
	}
	return false
}

// libraryFolders returns the extra library roots listed in
// libraryfolders.vdf that claim to hold the app.
func (r *Registry) libraryFolders(mainSteamApps, id string) []string {
	m, err := parseVDFFile(r.fs, filepath.Join(mainSteamApps, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("no Steam library folders")
		return nil
	}

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		return nil
	}

	// folder entries are keyed "0", "1", ...
	var paths []string
	for i := 0; ; i++ {
		v, ok := lfs[strconv.Itoa(i)]
		if !ok {
			break
		}
		ls, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if apps, ok := ls["apps"].(map[string]any); ok {
			if _, has := apps[id]; !has {
				continue
			}
		}
		if p, ok := ls["path"].(string); ok && p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (r *Registry) manifestInstalled(steamApps, id string) bool {
	path := filepath.Join(steamApps, fmt.Sprintf("appmanifest_%s.acf", id))
	m, err := parseVDFFile(r.fs, path)
	if err != nil {
		return false
	}

	state, ok := m["appstate"].(map[string]any)
	if !ok {
		log.Warn().Str("path", path).Msg("AppState not found in manifest")
		return false
	}

	if appID, ok := state["appid"].(string); ok && appID != id {
		return false
	}

	flags, ok := state["stateflags"].(string)
	if !ok {
		return true
	}
	n, err := strconv.Atoi(flags)
	if err != nil {
		return true
	}
	return n&stateFullyInstalled != 0
}
