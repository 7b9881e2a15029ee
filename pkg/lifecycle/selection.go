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

package lifecycle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// BrowseOverride stores a manually chosen path for a target. The file name
// must match the target's executable; games also accept any shortcut file.
// A rejected path emits one error event and changes nothing.
func (o *Orchestrator) BrowseOverride(name, path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t, err := o.cat.Lookup(name)
	if err != nil {
		return err //nolint:wrapcheck // already names the target
	}
	r := o.newRun()
	name = t.Name()

	shortcut := t.Kind() == catalog.KindGame && catalog.IsShortcutFile(path)
	if !shortcut {
		if got := filepath.Base(path); !strings.EqualFold(got, t.Executable()) {
			r.emit(LevelError, name, "Invalid file selected. Expected %s, got %s", t.Executable(), got)
			return fmt.Errorf("%w: expected %s, got %s", ErrInvalidSelection, t.Executable(), got)
		}
	}

	if ok, statErr := afero.Exists(o.fs, path); statErr != nil || !ok {
		r.emit(LevelError, name, "Selected file does not exist: %s", path)
		return fmt.Errorf("%w: %s", ErrNotExist, path)
	}

	if err := o.store.SetPath(t.Key(), path); err != nil {
		r.emit(LevelError, name, "Failed to save %s path", name)
		return fmt.Errorf("failed to save override: %w", err)
	}
	if t.Kind() == catalog.KindApp {
		if err := o.store.SetEnabled(t.Key(), true); err != nil {
			log.Error().Err(err).Str("target", name).Msg("failed to enable app")
		}
	}

	o.setStatus(name, Idle)
	r.emit(LevelSuccess, name, "%s path configured: %s", name, path)
	return nil
}

// SetEnabled checks or unchecks an app. Apps that are not configured
// cannot be enabled.
func (o *Orchestrator) SetEnabled(name string, enabled bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	t, err := o.cat.Lookup(name)
	if err != nil {
		return err //nolint:wrapcheck // already names the target
	}
	if t.Kind() != catalog.KindApp {
		return fmt.Errorf("%w: %s", ErrNotApp, t.Name())
	}
	if enabled && !o.res.Lookup(t).Resolved() {
		return fmt.Errorf("%w: %s", ErrUnconfigured, t.Name())
	}
	return o.store.SetEnabled(t.Key(), enabled) //nolint:wrapcheck // store errors carry context
}

// ToggleAll enables every configured app, or disables them all when they
// are already all enabled. It returns the new state.
func (o *Orchestrator) ToggleAll() (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var configured []*catalog.App
	allOn := true
	for _, a := range o.cat.Apps() {
		if !o.res.Lookup(a).Resolved() {
			continue
		}
		configured = append(configured, a)
		if !o.store.Enabled(a.Key(), true) {
			allOn = false
		}
	}

	enable := !allOn
	for _, a := range configured {
		if err := o.store.SetEnabled(a.Key(), enable); err != nil {
			return enable, fmt.Errorf("failed to update %s: %w", a.Name(), err)
		}
	}
	return enable, nil
}

// SelectGame selects the game launched after the apps. An empty name
// clears the selection.
func (o *Orchestrator) SelectGame(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if name == "" {
		return o.store.SetSelectedGame("") //nolint:wrapcheck // store errors carry context
	}

	t, err := o.cat.Lookup(name)
	if err != nil {
		return err //nolint:wrapcheck // already names the target
	}
	if t.Kind() != catalog.KindGame {
		return fmt.Errorf("%w: %s", ErrNotGame, t.Name())
	}
	if !o.res.Lookup(t).Resolved() {
		return fmt.Errorf("%w: %s", ErrUnconfigured, t.Name())
	}
	return o.store.SetSelectedGame(t.Name()) //nolint:wrapcheck // store errors carry context
}

// Selection returns the selected game, "" for none.
func (o *Orchestrator) Selection() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	if g := o.selectedGame(); g != nil {
		return g.Name()
	}
	return ""
}

func (o *Orchestrator) Status(name string) (Status, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	t, err := o.cat.Lookup(name)
	if err != nil {
		return Unconfigured, err //nolint:wrapcheck // already names the target
	}
	return o.status[t.Name()], nil
}

// Targets lists every target in catalog order with its current state.
func (o *Orchestrator) Targets() []TargetState {
	o.mu.Lock()
	defer o.mu.Unlock()

	selected := o.store.SelectedGame()
	targets := o.cat.Targets()
	out := make([]TargetState, 0, len(targets))
	for _, t := range targets {
		st := TargetState{
			Name:   t.Name(),
			Kind:   t.Kind(),
			Status: o.status[t.Name()],
			Path:   o.res.Lookup(t).Value,
		}
		if t.Kind() == catalog.KindGame {
			st.Selected = t.Name() == selected
			st.Enabled = st.Selected
		} else {
			st.Enabled = o.store.Enabled(t.Key(), true)
		}
		out = append(out, st)
	}
	return out
}
