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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/config"
	"github.com/ZaparooProject/simlaunch/pkg/helpers"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrMissingPath = errors.New("browse flag requires -path")

// Orchestrator is the part of lifecycle.Orchestrator the CLI drives.
type Orchestrator interface {
	LaunchAll(ctx context.Context) lifecycle.Summary
	CloseAll(ctx context.Context) lifecycle.Summary
	BrowseOverride(name, path string) error
	SetEnabled(name string, enabled bool) error
	ToggleAll() (bool, error)
	SelectGame(name string) error
	Selection() string
	Targets() []lifecycle.TargetState
}

type Flags struct {
	set       *flag.FlagSet
	List      *bool
	Status    *bool
	Launch    *bool
	Close     *bool
	ToggleAll *bool
	TUI       *bool
	Version   *bool
	Enable    *string
	Disable   *string
	Game      *string
	Browse    *string
	Path      *string
}

// SetupFlags defines all CLI flags on fs.
func SetupFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		set: fs,
		List: fs.Bool(
			"list",
			false,
			"list all apps and games with their resolved paths",
		),
		Status: fs.Bool(
			"status",
			false,
			"print the status of every app and game",
		),
		Launch: fs.Bool(
			"launch",
			false,
			"launch all enabled apps, then the selected game",
		),
		Close: fs.Bool(
			"close",
			false,
			"close all enabled apps",
		),
		ToggleAll: fs.Bool(
			"toggle-all",
			false,
			"enable all configured apps, or disable them if all are enabled",
		),
		TUI: fs.Bool(
			"tui",
			false,
			"start the text ui",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		Enable: fs.String(
			"enable",
			"",
			"enable the named app",
		),
		Disable: fs.String(
			"disable",
			"",
			"disable the named app",
		),
		Game: fs.String(
			"game",
			"",
			"select the game to launch after the apps (empty clears)",
		),
		Browse: fs.String(
			"browse",
			"",
			"set the path of the named app or game, used with -path",
		),
		Path: fs.String(
			"path",
			"",
			"executable or shortcut file for -browse",
		),
	}
}

func (f *Flags) Parse(args []string) error {
	return f.set.Parse(args) //nolint:wrapcheck // flag errors are already printed
}

// Passed reports whether the named flag was set on the command line.
func (f *Flags) Passed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Pre actions flags that don't need any setup. Returns true if the
// program should exit.
func (f *Flags) Pre(w io.Writer) bool {
	if *f.Version {
		_, _ = fmt.Fprintf(w, "%s v%s\n", config.AppName, config.AppVersion)
		return true
	}
	return false
}

// Post applies settings flags in order, then runs a launch or close
// batch, then prints the requested listing. With no action flags the
// status is printed.
func (f *Flags) Post(ctx context.Context, o Orchestrator, w io.Writer) error {
	acted := false

	if f.Passed("browse") {
		if *f.Path == "" {
			return ErrMissingPath
		}
		if err := o.BrowseOverride(*f.Browse, *f.Path); err != nil {
			return withSuggestion(err, *f.Browse, o)
		}
		acted = true
	}

	if f.Passed("enable") {
		if err := o.SetEnabled(*f.Enable, true); err != nil {
			return withSuggestion(err, *f.Enable, o)
		}
		_, _ = fmt.Fprintf(w, "Enabled %s\n", *f.Enable)
		acted = true
	}

	if f.Passed("disable") {
		if err := o.SetEnabled(*f.Disable, false); err != nil {
			return withSuggestion(err, *f.Disable, o)
		}
		_, _ = fmt.Fprintf(w, "Disabled %s\n", *f.Disable)
		acted = true
	}

	if *f.ToggleAll {
		on, err := o.ToggleAll()
		if err != nil {
			return fmt.Errorf("failed to toggle apps: %w", err)
		}
		if on {
			_, _ = fmt.Fprintln(w, "Enabled all configured apps")
		} else {
			_, _ = fmt.Fprintln(w, "Disabled all apps")
		}
		acted = true
	}

	if f.Passed("game") {
		if err := o.SelectGame(*f.Game); err != nil {
			return withSuggestion(err, *f.Game, o)
		}
		if sel := o.Selection(); sel != "" {
			_, _ = fmt.Fprintf(w, "Selected game: %s\n", sel)
		} else {
			_, _ = fmt.Fprintln(w, "Game selection cleared")
		}
		acted = true
	}

	switch {
	case *f.Launch:
		sum := o.LaunchAll(ctx)
		log.Debug().Str("run", sum.Run.String()).Msg("cli launch finished")
		acted = true
	case *f.Close:
		sum := o.CloseAll(ctx)
		log.Debug().Str("run", sum.Run.String()).Msg("cli close finished")
		acted = true
	}

	switch {
	case *f.List:
		PrintTargets(w, o.Targets(), true)
	case *f.Status || !acted:
		PrintTargets(w, o.Targets(), false)
	}
	return nil
}

func withSuggestion(err error, name string, o Orchestrator) error {
	if !errors.Is(err, catalog.ErrUnknownTarget) {
		return err
	}
	states := o.Targets()
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.Name)
	}
	if s := Suggest(name, names); s != "" {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}

// Setup initializes logging and the user config. Returns a user config
// object.
func Setup(writers []io.Writer) *config.Instance {
	err := helpers.InitLogging(helpers.LogDir(), false, writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(helpers.ConfigDir(), config.BaseDefaults)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("config", cfg.Path()).
		Msg("simlaunch starting")

	return cfg
}
