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

package cli

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

const minSimilarity = 0.8

// Suggest returns the candidate closest to query by Jaro-Winkler
// similarity, or "" if nothing is close enough.
func Suggest(query string, candidates []string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	var best string
	var bestScore float32
	for _, c := range candidates {
		score := edlib.JaroWinklerSimilarity(q, strings.ToLower(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < minSimilarity {
		return ""
	}
	return best
}
