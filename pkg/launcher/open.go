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

package launcher

import (
	"path/filepath"
	"strings"
)

// openCommand returns the command that hands target to the OS shell:
// protocol URLs, shortcut files and desktop entries.
func openCommand(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		// the empty argument is start's window title
		return "cmd", []string{"/c", "start", "", target}
	case "darwin":
		return "open", []string{target}
	default:
		if strings.EqualFold(filepath.Ext(target), ".desktop") {
			return "gio", []string{"launch", target}
		}
		return "xdg-open", []string{target}
	}
}
