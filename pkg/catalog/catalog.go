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

// Package catalog defines the fixed set of companion apps and racing games
// SimLaunch knows how to find, start and stop.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	KindApp Kind = iota
	KindGame
)

func (k Kind) String() string {
	if k == KindGame {
		return "game"
	}
	return "app"
}

// GameKeyPrefix separates game entries from app entries in the path cache.
const GameKeyPrefix = "game_"

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrDuplicateName = errors.New("duplicate target name")
)

// Target is the behaviour shared by apps and games.
type Target interface {
	Name() string
	Kind() Kind
	// Executable is the process image name used to detect and kill the target.
	Executable() string
	ShortcutNames() []string
	KnownPaths() []string
	// Key is the normalized name used for persisted state.
	Key() string
}

// App is a companion tool started alongside a sim.
type App struct {
	DisplayName string   `validate:"required"`
	Exe         string   `validate:"required,excludesall=/\\"`
	Agent       string   `validate:"omitempty,excludesall=/\\"`
	Shortcuts   []string `validate:"dive,required"`
	Paths       []string `validate:"dive,required"`
}

// Game is a racing sim. At most one is selected at a time and games are
// never force-closed.
type Game struct {
	DisplayName string   `validate:"required"`
	Exe         string   `validate:"required,excludesall=/\\"`
	SteamAppID  string   `validate:"omitempty,numeric"`
	Shortcuts   []string `validate:"dive,required"`
	Paths       []string `validate:"dive,required"`
}

var (
	_ Target = (*App)(nil)
	_ Target = (*Game)(nil)
)

func (a *App) Name() string            { return a.DisplayName }
func (*App) Kind() Kind                { return KindApp }
func (a *App) Executable() string      { return a.Exe }
func (a *App) ShortcutNames() []string { return a.Shortcuts }
func (a *App) KnownPaths() []string    { return a.Paths }
func (a *App) Key() string             { return NormalizeKey(a.DisplayName) }

func (g *Game) Name() string            { return g.DisplayName }
func (*Game) Kind() Kind                { return KindGame }
func (g *Game) Executable() string      { return g.Exe }
func (g *Game) ShortcutNames() []string { return g.Shortcuts }
func (g *Game) KnownPaths() []string    { return g.Paths }
func (g *Game) Key() string             { return GameKeyPrefix + NormalizeKey(g.DisplayName) }

// NormalizeKey lowercases a name and replaces spaces with underscores.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// IsShortcutFile reports whether path names a shell shortcut that has to be
// opened through the OS rather than executed.
func IsShortcutFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lnk", ".url", ".desktop":
		return true
	default:
		return false
	}
}

// Catalog is an ordered, immutable list of apps and games.
type Catalog struct {
	byName map[string]Target
	apps   []*App
	games  []*Game
}

func New(apps []*App, games []*Game) (*Catalog, error) {
	c := &Catalog{
		apps:   apps,
		games:  games,
		byName: make(map[string]Target, len(apps)+len(games)),
	}
	for _, t := range c.Targets() {
		key := strings.ToLower(t.Name())
		if _, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, t.Name())
		}
		c.byName[key] = t
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every descriptor's fields.
func (c *Catalog) Validate() error {
	for _, a := range c.apps {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("invalid app %q: %w", a.DisplayName, err)
		}
	}
	for _, g := range c.games {
		if err := validate.Struct(g); err != nil {
			return fmt.Errorf("invalid game %q: %w", g.DisplayName, err)
		}
	}
	return nil
}

func (c *Catalog) Apps() []*App { return c.apps }

func (c *Catalog) Games() []*Game { return c.games }

// Targets returns apps then games, in catalog order.
func (c *Catalog) Targets() []Target {
	out := make([]Target, 0, len(c.apps)+len(c.games))
	for _, a := range c.apps {
		out = append(out, a)
	}
	for _, g := range c.games {
		out = append(out, g)
	}
	return out
}

// Lookup finds a target by name, ignoring case.
func (c *Catalog) Lookup(name string) (Target, error) {
	t, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
	}
	return t, nil
}

// Game returns the named game, or nil.
func (c *Catalog) Game(name string) *Game {
	t, err := c.Lookup(name)
	if err != nil {
		return nil
	}
	g, _ := t.(*Game)
	return g
}

// Names returns every target name in catalog order.
func (c *Catalog) Names() []string {
	targets := c.Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name()
	}
	return names
}
