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

package resolver

import (
	"strings"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
)

// Kind records which strategy produced a Result.
type Kind int

const (
	Unresolved Kind = iota
	Cached
	Shortcut
	Known
	Protocol
)

func (k Kind) String() string {
	switch k {
	case Cached:
		return "cached"
	case Shortcut:
		return "shortcut"
	case Known:
		return "known"
	case Protocol:
		return "protocol"
	default:
		return "unresolved"
	}
}

// Mode is how a resolved value has to be started.
type Mode int

const (
	ModeDirect Mode = iota
	ModeShell
	ModeProtocol
)

func (m Mode) String() string {
	switch m {
	case ModeShell:
		return "shell"
	case ModeProtocol:
		return "protocol"
	default:
		return "direct"
	}
}

// Result is the outcome of resolving one target.
type Result struct {
	Value string
	Kind  Kind
	// Indirection marks shortcut files that must be opened through the
	// OS shell so their embedded arguments are kept.
	Indirection bool
}

func (r Result) Resolved() bool {
	return r.Kind != Unresolved && r.Value != ""
}

func (r Result) Mode() Mode {
	switch {
	case IsURL(r.Value):
		return ModeProtocol
	case r.Indirection, catalog.IsShortcutFile(r.Value):
		return ModeShell
	default:
		return ModeDirect
	}
}

// IsURL reports whether v starts with a URL scheme such as steam://.
// Single letter schemes are treated as Windows drive letters.
func IsURL(v string) bool {
	i := strings.Index(v, "://")
	if i < 2 {
		return false
	}
	for j, c := range v[:i] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
