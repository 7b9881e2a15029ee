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
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

var (
	ErrUnsupported = errors.New("unsupported shortcut type")
	ErrNoTarget    = errors.New("shortcut has no target")
)

var iniOpts = ini.LoadOptions{
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
	KeyValueDelimiters:      "=",
}

// Dereference returns what the shortcut at path launches: an executable
// path for .lnk and .desktop files, a URL for .url files.
func Dereference(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lnk":
		return readLink(path)
	case ".desktop":
		return readDesktopEntry(path)
	case ".url":
		return readInternetShortcut(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
}

func readDesktopEntry(path string) (string, error) {
	f, err := ini.LoadSources(iniOpts, path)
	if err != nil {
		return "", fmt.Errorf("failed to read desktop entry: %w", err)
	}
	exec := f.Section("Desktop Entry").Key("Exec").String()
	target := execProgram(exec)
	if target == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTarget, path)
	}
	return target, nil
}

func readInternetShortcut(path string) (string, error) {
	f, err := ini.LoadSources(iniOpts, path)
	if err != nil {
		return "", fmt.Errorf("failed to read internet shortcut: %w", err)
	}
	url := strings.TrimSpace(f.Section("InternetShortcut").Key("URL").String())
	if url == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTarget, path)
	}
	return url, nil
}

// execProgram returns the program of a desktop entry Exec line, dropping
// arguments and field codes.
func execProgram(exec string) string {
	exec = strings.TrimSpace(exec)
	if exec == "" {
		return ""
	}
	if exec[0] == '"' {
		if end := strings.IndexByte(exec[1:], '"'); end >= 0 {
			return exec[1 : end+1]
		}
		return strings.Trim(exec, `"`)
	}
	if i := strings.IndexAny(exec, " \t"); i >= 0 {
		return exec[:i]
	}
	return exec
}
