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

// Package steam answers whether a Steam game is installed and builds the
// protocol URLs used to start it through the Steam client.
package steam

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Scheme    = "steam"
	runPrefix = "steam://rungameid/"
)

var ErrInvalidID = errors.New("invalid Steam app ID")

// BuildSteamURL returns the run URL for a Steam app.
func BuildSteamURL(id string) string {
	return runPrefix + id
}

// ExtractAndValidateID returns the numeric app ID of a run URL.
func ExtractAndValidateID(url string) (string, error) {
	if len(url) < len(runPrefix) || !strings.EqualFold(url[:len(runPrefix)], runPrefix) {
		return "", fmt.Errorf("%w: not a run URL: %s", ErrInvalidID, url)
	}
	id := url[len(runPrefix):]
	if err := ValidateID(id); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateID checks that id is a plain decimal app ID.
func ValidateID(id string) error {
	if _, err := strconv.ParseUint(id, 10, 32); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
