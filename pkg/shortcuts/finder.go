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

// Package shortcuts searches the OS start-menu directories for shortcut
// files and reads the executable a shortcut points to.
package shortcuts

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Finder walks a fixed list of root directories.
type Finder struct {
	roots []string
}

func NewFinder(roots []string) *Finder {
	return &Finder{roots: roots}
}

func (f *Finder) Roots() []string {
	return f.roots
}

// Find returns every file under the roots whose base name matches one of
// names, ignoring case. Results are ordered by root, then by the position
// of the matched name, then by path.
func (f *Finder) Find(ctx context.Context, names []string) []string {
	if len(names) == 0 {
		return nil
	}

	index := make(map[string]int, len(names))
	for i, n := range names {
		key := strings.ToLower(n)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	if ctx.Err() != nil {
		return nil
	}

	results := make([][]string, len(f.roots))
	var g errgroup.Group
	for i, root := range f.roots {
		g.Go(func() error {
			results[i] = f.findInRoot(ctx, root, index, len(names))
			return nil
		})
	}
	_ = g.Wait()

	var out []string
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func (*Finder) findInRoot(ctx context.Context, root string, index map[string]int, n int) []string {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil
	}

	var mu syncutil.Mutex
	byName := make([][]string, n)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// unreadable subdirectories are skipped
			return nil //nolint:nilerr // partial results are fine
		}
		if d.IsDir() {
			return nil
		}

		i, ok := index[strings.ToLower(d.Name())]
		if !ok {
			return nil
		}
		mu.Lock()
		byName[i] = append(byName[i], p)
		mu.Unlock()
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Debug().Err(err).Str("root", root).Msg("shortcut search stopped early")
	}

	var out []string
	for _, paths := range byName {
		sort.Strings(paths)
		out = append(out, paths...)
	}
	return out
}

// dedupeRoots drops empty and repeated directories, keeping order.
func dedupeRoots(roots []string) []string {
	seen := make(map[string]bool, len(roots))
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		if r == "" {
			continue
		}
		clean := filepath.Clean(r)
		key := strings.ToLower(clean)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, clean)
	}
	return out
}
