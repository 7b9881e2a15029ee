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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/cli"
	"github.com/ZaparooProject/simlaunch/pkg/config"
	"github.com/ZaparooProject/simlaunch/pkg/helpers"
	"github.com/ZaparooProject/simlaunch/pkg/helpers/command"
	"github.com/ZaparooProject/simlaunch/pkg/launcher"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/ZaparooProject/simlaunch/pkg/procmon"
	"github.com/ZaparooProject/simlaunch/pkg/resolver"
	"github.com/ZaparooProject/simlaunch/pkg/shortcuts"
	"github.com/ZaparooProject/simlaunch/pkg/steam"
	"github.com/ZaparooProject/simlaunch/pkg/store"
	"github.com/ZaparooProject/simlaunch/pkg/ui/tui"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := cli.SetupFlags(flag.CommandLine)
	if err := flags.Parse(os.Args[1:]); err != nil {
		return 2
	}
	if flags.Pre(os.Stdout) {
		return 0
	}

	var writers []io.Writer
	if !*flags.TUI {
		// events are printed separately, the console only shows problems
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{Out: os.Stderr}},
			Level:  zerolog.WarnLevel,
		})
	}
	cfg := cli.Setup(writers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	osFs := afero.NewOsFs()
	env := catalog.OSEnv{}

	cat, err := catalog.Default(env, cfg.ExtraKnownPaths())
	if err != nil {
		log.Error().Err(err).Msg("invalid catalog")
		_, _ = fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return 1
	}

	storePath := filepath.Join(helpers.ConfigDir(), config.PathsFile)
	st, err := store.Open(osFs, storePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open path cache")
		_, _ = fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", storePath, err)
		return 1
	}

	finder := shortcuts.NewFinder(shortcuts.DefaultRoots(env, cfg.ShortcutDirs()))
	log.Debug().
		Str("paths", st.FilePath()).
		Strs("shortcut_roots", finder.Roots()).
		Msg("resolver sources")

	res := resolver.New(osFs, st, finder, steam.NewRegistry(osFs, cfg.SteamDir()))
	mon := procmon.New()
	l := launcher.New(
		&command.RealExecutor{},
		mon,
		launcher.WithTimings(cfg.LaunchTimings()),
		launcher.WithFs(osFs),
	)

	if *flags.TUI {
		app := tview.NewApplication()
		screen := tui.NewScreen(ctx, app)
		o := lifecycle.New(cat, res, l, mon, st,
			lifecycle.WithFs(osFs),
			lifecycle.WithSink(screen.Event),
			lifecycle.WithStatusSink(screen.Status),
		)
		go func() {
			<-ctx.Done()
			app.Stop()
		}()
		if err := st.Watch(ctx, screen.StoreChanged); err != nil {
			log.Warn().Err(err).Msg("path store will not reload on external edits")
		}
		if err := tui.Run(screen, o, cfg.TUITheme()); err != nil {
			log.Error().Err(err).Msg("tui exited with error")
			_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
			return 1
		}
		return 0
	}

	printer := cli.NewPrinter(os.Stdout)
	o := lifecycle.New(cat, res, l, mon, st,
		lifecycle.WithFs(osFs),
		lifecycle.WithSink(printer.Event),
	)
	o.Refresh(ctx)

	if err := flags.Post(ctx, o, os.Stdout); err != nil {
		log.Error().Err(err).Msg("command failed")
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
