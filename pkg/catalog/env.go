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

package catalog

import (
	"os"
	"path/filepath"
)

// Env answers environment lookups used to build per-user install paths.
type Env interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv reads the process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is a fixed environment, mostly for tests.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// envPath joins elem onto the directory named by the environment variable.
// An unset or empty variable yields no path.
func envPath(env Env, key string, elem ...string) (string, bool) {
	root, ok := env.LookupEnv(key)
	if !ok || root == "" {
		return "", false
	}
	return filepath.Join(append([]string{root}, elem...)...), true
}

func appendEnvPath(paths []string, env Env, key string, elem ...string) []string {
	if p, ok := envPath(env, key, elem...); ok {
		return append(paths, p)
	}
	return paths
}
