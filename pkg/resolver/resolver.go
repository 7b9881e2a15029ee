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

// Package resolver turns a catalog target into something launchable by
// trying, in order: the path cache, start-menu shortcuts, known install
// paths and, for games, the Steam install registry.
package resolver

import (
	"context"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/shortcuts"
	"github.com/ZaparooProject/simlaunch/pkg/steam"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Cache is the persisted key to path/URL mapping.
type Cache interface {
	Path(key string) (string, bool)
	SetPath(key, value string) error
	DeletePath(key string) error
}

// ShortcutFinder returns shortcut files matching names, best first.
type ShortcutFinder interface {
	Find(ctx context.Context, names []string) []string
}

// InstallRegistry answers whether a Steam app is installed.
type InstallRegistry interface {
	IsInstalled(id string) bool
}

// Dereferencer reads the target of a shortcut file.
type Dereferencer func(path string) (string, error)

type Resolver struct {
	fs       afero.Fs
	cache    Cache
	finder   ShortcutFinder
	registry InstallRegistry
	deref    Dereferencer
}

type Option func(*Resolver)

func WithDereferencer(d Dereferencer) Option {
	return func(r *Resolver) {
		r.deref = d
	}
}

// New builds a resolver. finder and registry may be nil to skip those
// strategies.
func New(fs afero.Fs, cache Cache, finder ShortcutFinder, registry InstallRegistry, opts ...Option) *Resolver {
	r := &Resolver{
		fs:       fs,
		cache:    cache,
		finder:   finder,
		registry: registry,
		deref:    shortcuts.Dereference,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs the strategy chain. The first hit is written to the cache
// before it is returned.
func (r *Resolver) Resolve(ctx context.Context, t catalog.Target) Result {
	if res := r.Lookup(t); res.Resolved() {
		return res
	}

	for _, strategy := range []func(context.Context, catalog.Target) Result{
		r.fromShortcuts,
		r.fromKnownPaths,
		r.fromRegistry,
	} {
		res := strategy(ctx, t)
		if !res.Resolved() {
			continue
		}
		log.Info().
			Str("target", t.Name()).
			Stringer("via", res.Kind).
			Str("value", res.Value).
			Msg("resolved target")
		if err := r.cache.SetPath(t.Key(), res.Value); err != nil {
			log.Warn().Err(err).Str("target", t.Name()).Msg("failed to cache resolved path")
		}
		return res
	}

	log.Info().Str("target", t.Name()).Msg("target could not be resolved")
	return Result{Kind: Unresolved}
}

// Lookup checks only the cache. A cached filesystem path that no longer
// exists is removed. Cached URLs are returned without any check.
func (r *Resolver) Lookup(t catalog.Target) Result {
	key := t.Key()
	v, ok := r.cache.Path(key)
	if !ok {
		return Result{Kind: Unresolved}
	}

	if IsURL(v) {
		return Result{Kind: Cached, Value: v}
	}

	if r.exists(v) {
		return Result{
			Kind:        Cached,
			Value:       v,
			Indirection: t.Kind() == catalog.KindGame && catalog.IsShortcutFile(v),
		}
	}

	log.Debug().Str("target", t.Name()).Str("path", v).Msg("dropping stale cached path")
	if err := r.cache.DeletePath(key); err != nil {
		log.Warn().Err(err).Str("target", t.Name()).Msg("failed to drop stale cached path")
	}
	return Result{Kind: Unresolved}
}

func (r *Resolver) fromShortcuts(ctx context.Context, t catalog.Target) Result {
	if r.finder == nil || len(t.ShortcutNames()) == 0 {
		return Result{}
	}

	for _, lnk := range r.finder.Find(ctx, t.ShortcutNames()) {
		if t.Kind() == catalog.KindGame {
			return Result{Kind: Shortcut, Value: lnk, Indirection: true}
		}

		target, err := r.deref(lnk)
		if err != nil {
			log.Debug().Err(err).Str("shortcut", lnk).Msg("skipping unreadable shortcut")
			continue
		}
		if r.exists(target) {
			return Result{Kind: Shortcut, Value: target}
		}
		log.Debug().Str("shortcut", lnk).Str("target", target).Msg("shortcut target missing")
	}
	return Result{}
}

func (r *Resolver) fromKnownPaths(_ context.Context, t catalog.Target) Result {
	for _, p := range t.KnownPaths() {
		if p != "" && r.exists(p) {
			return Result{Kind: Known, Value: p}
		}
	}
	return Result{}
}

func (r *Resolver) fromRegistry(_ context.Context, t catalog.Target) Result {
	g, ok := t.(*catalog.Game)
	if !ok || g.SteamAppID == "" || r.registry == nil {
		return Result{}
	}
	if !r.registry.IsInstalled(g.SteamAppID) {
		return Result{}
	}
	return Result{Kind: Protocol, Value: steam.BuildSteamURL(g.SteamAppID)}
}

func (r *Resolver) exists(path string) bool {
	ok, err := afero.Exists(r.fs, path)
	return err == nil && ok
}
