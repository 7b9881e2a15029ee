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

// Package lifecycle sequences resolving, launching and closing the whole
// catalog and reports progress as a stream of events.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/ZaparooProject/simlaunch/pkg/launcher"
	"github.com/ZaparooProject/simlaunch/pkg/resolver"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var (
	ErrInvalidSelection = errors.New("selected file does not match the target executable")
	ErrNotExist         = errors.New("selected file does not exist")
	ErrUnconfigured     = errors.New("target is not configured")
	ErrNotApp           = errors.New("target is not an app")
	ErrNotGame          = errors.New("target is not a game")
)

type Resolver interface {
	Resolve(ctx context.Context, t catalog.Target) resolver.Result
	Lookup(t catalog.Target) resolver.Result
}

type Launcher interface {
	Launch(ctx context.Context, exe string, res resolver.Result) (launcher.Outcome, error)
}

type ProcessMonitor interface {
	IsRunning(exe string) bool
	Kill(exe string) bool
}

// Store holds the persisted selections and manual path overrides.
type Store interface {
	SetPath(key, value string) error
	Enabled(key string, fallback bool) bool
	SetEnabled(key string, enabled bool) error
	SelectedGame() string
	SetSelectedGame(name string) error
}

// Orchestrator owns the status of every target. Its methods are
// serialized; a batch that has started always runs to the end.
type Orchestrator struct {
	cat      *catalog.Catalog
	res      Resolver
	launch   Launcher
	procs    ProcessMonitor
	store    Store
	fs       afero.Fs
	clock    clockwork.Clock
	sink     Sink
	onStatus StatusSink
	status   map[string]Status
	mu       syncutil.Mutex
}

type Option func(*Orchestrator)

func WithSink(s Sink) Option {
	return func(o *Orchestrator) {
		o.sink = s
	}
}

func WithStatusSink(s StatusSink) Option {
	return func(o *Orchestrator) {
		o.onStatus = s
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(o *Orchestrator) {
		o.clock = c
	}
}

// WithFs sets the filesystem used to check manually selected paths.
func WithFs(fs afero.Fs) Option {
	return func(o *Orchestrator) {
		o.fs = fs
	}
}

// New returns an orchestrator with every target Unconfigured until
// Refresh runs.
func New(
	cat *catalog.Catalog,
	res Resolver,
	l Launcher,
	procs ProcessMonitor,
	st Store,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		cat:    cat,
		res:    res,
		launch: l,
		procs:  procs,
		store:  st,
		fs:     afero.NewOsFs(),
		clock:  clockwork.NewRealClock(),
		status: make(map[string]Status),
	}
	for _, opt := range opts {
		opt(o)
	}
	for _, t := range cat.Targets() {
		o.status[t.Name()] = Unconfigured
	}
	return o
}

// run is the event context of one operation.
type run struct {
	o   *Orchestrator
	sum *Summary
	id  uuid.UUID
}

func (o *Orchestrator) newRun() *run {
	id := uuid.New()
	return &run{o: o, id: id, sum: &Summary{Run: id}}
}

func (r *run) emit(level Level, target, format string, args ...any) {
	ev := Event{
		Time:    r.o.clock.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		Target:  target,
		Run:     r.id,
	}
	log.Debug().
		Str("run", r.id.String()).
		Str("level", string(level)).
		Str("target", target).
		Msg(ev.Message)
	if r.o.sink != nil {
		r.o.sink(ev)
	}
}

func (r *run) divider() {
	r.emit(LevelDivider, "", "")
}

func (o *Orchestrator) setStatus(name string, s Status) {
	if o.status[name] == s {
		return
	}
	o.status[name] = s
	if o.onStatus != nil {
		o.onStatus(name, s)
	}
}

func (o *Orchestrator) enabled(t catalog.Target) bool {
	switch t.Kind() {
	case catalog.KindGame:
		return o.store.SelectedGame() == t.Name()
	default:
		return o.store.Enabled(t.Key(), true)
	}
}

func (o *Orchestrator) selectedGame() *catalog.Game {
	name := o.store.SelectedGame()
	if name == "" {
		return nil
	}
	return o.cat.Game(name)
}

// Refresh resolves every target and sets its initial status. Apps that
// cannot be resolved are disabled.
func (o *Orchestrator) Refresh(ctx context.Context) Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.newRun()
	r.divider()
	r.emit(LevelInfo, "", "Checking application status...")

	for _, t := range o.cat.Targets() {
		o.refreshStep(ctx, r, t)
	}

	if name := o.store.SelectedGame(); name != "" && o.cat.Game(name) == nil {
		log.Warn().Str("game", name).Msg("clearing unknown selected game")
		if err := o.store.SetSelectedGame(""); err != nil {
			log.Error().Err(err).Msg("failed to clear selected game")
		}
	}
	return *r.sum
}

func (o *Orchestrator) refreshStep(ctx context.Context, r *run, t catalog.Target) {
	name := t.Name()
	res := o.res.Resolve(ctx, t)
	if !res.Resolved() {
		o.setStatus(name, Unconfigured)
		r.sum.Unconfigured++
		r.emit(LevelWarning, name, "%s - not configured", name)
		if t.Kind() == catalog.KindApp {
			if err := o.store.SetEnabled(t.Key(), false); err != nil {
				log.Error().Err(err).Str("target", name).Msg("failed to disable unconfigured app")
			}
		}
		return
	}

	if o.procs.IsRunning(t.Executable()) {
		o.setStatus(name, Running)
		r.sum.AlreadyRunning++
		r.emit(LevelSuccess, name, "%s - already running", name)
		return
	}
	o.setStatus(name, Idle)
	r.emit(LevelInfo, name, "%s - configured", name)
}

// LaunchAll starts every enabled app in catalog order, then the selected
// game. ctx only bounds how long each launch waits for its process.
func (o *Orchestrator) LaunchAll(ctx context.Context) Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.newRun()
	r.divider()
	r.emit(LevelLaunch, "", "Starting launch sequence...")

	for _, a := range o.cat.Apps() {
		if !o.enabled(a) {
			continue
		}
		o.launchStep(ctx, r, a)
	}
	r.emit(LevelSuccess, "", "All apps launched!")

	if g := o.selectedGame(); g != nil {
		o.launchStep(ctx, r, g)
	}

	r.emit(LevelSuccess, "", "Launch sequence complete!")
	log.Info().Interface("summary", r.sum).Msg("launch sequence finished")
	return *r.sum
}

func (o *Orchestrator) launchStep(ctx context.Context, r *run, t catalog.Target) {
	name := t.Name()
	res := o.res.Resolve(ctx, t)
	if !res.Resolved() {
		o.setStatus(name, Unconfigured)
		r.sum.Unconfigured++
		r.emit(LevelWarning, name, "Skipping %s - not configured", name)
		return
	}

	if o.procs.IsRunning(t.Executable()) {
		o.setStatus(name, Running)
		r.sum.AlreadyRunning++
		r.emit(LevelInfo, name, "Skipping %s - already running", name)
		return
	}

	o.setStatus(name, Starting)
	level := LevelInfo
	if t.Kind() == catalog.KindGame {
		level = LevelLaunch
	}
	r.emit(level, name, "Launching %s...", name)

	outcome, err := o.launch.Launch(ctx, t.Executable(), res)
	switch outcome {
	case launcher.Running:
		o.setStatus(name, Running)
		r.sum.Started++
		r.emit(LevelSuccess, name, "%s started successfully", name)
		return
	case launcher.TimedOut:
		o.setStatus(name, Failed)
		r.sum.TimedOut++
		r.emit(LevelWarning, name, "%s not confirmed running - it may still be starting", name)
	default:
		log.Error().Err(err).Str("target", name).Msg("launch failed")
		o.setStatus(name, Failed)
		r.sum.Failed++
		r.emit(LevelError, name, "%s failed to start", name)
	}

	if t.Kind() == catalog.KindGame {
		r.emit(LevelWarning, name, "Try reinstalling %s or selecting a different path", name)
	} else {
		r.emit(LevelWarning, name, "Try reinstalling %s", name)
	}
}

// CloseAll kills every enabled app. The selected game is never killed; the
// user is told to close it if it is still running.
func (o *Orchestrator) CloseAll(_ context.Context) Summary {
	o.mu.Lock()
	defer o.mu.Unlock()

	r := o.newRun()
	r.divider()
	r.emit(LevelClose, "", "Closing applications...")

	var agents []*catalog.App
	for _, a := range o.cat.Apps() {
		if !o.enabled(a) {
			continue
		}
		o.closeStep(r, a)
		if a.Agent != "" {
			agents = append(agents, a)
		}
	}

	for _, a := range agents {
		o.closeAgent(r, a)
	}

	if g := o.selectedGame(); g != nil {
		o.closeGameStep(r, g)
	}

	r.emit(LevelSuccess, "", "All apps closed!")
	log.Info().Interface("summary", r.sum).Msg("close sequence finished")
	return *r.sum
}

func (o *Orchestrator) closeStep(r *run, a *catalog.App) {
	name := a.Name()
	configured := o.res.Lookup(a).Resolved()

	var killed bool
	if !configured {
		// stray process of an app we cannot find; otherwise leave it alone
		if killed = o.procs.Kill(a.Executable()); !killed {
			return
		}
	}

	o.setStatus(name, Stopping)
	r.emit(LevelInfo, name, "Closing %s...", name)

	if configured {
		killed = o.procs.Kill(a.Executable())
	}

	switch {
	case killed:
		o.setStatus(name, Stopped)
		r.sum.Closed++
		r.emit(LevelSuccess, name, "%s closed", name)
	case configured:
		o.setStatus(name, Idle)
		r.sum.NotRunning++
		r.emit(LevelWarning, name, "%s was not running", name)
	}
}

func (o *Orchestrator) closeAgent(r *run, a *catalog.App) {
	label := a.Name() + " Agent"
	r.emit(LevelInfo, a.Name(), "Closing %s...", label)
	if o.procs.Kill(a.Agent) {
		r.emit(LevelSuccess, a.Name(), "%s closed", label)
		return
	}
	r.emit(LevelWarning, a.Name(), "%s was not running", label)
}

func (o *Orchestrator) closeGameStep(r *run, g *catalog.Game) {
	name := g.Name()
	if o.procs.IsRunning(g.Executable()) {
		r.sum.StillRunning++
		r.emit(LevelWarning, name, "%s is still running - please close it manually", name)
		return
	}
	if o.res.Lookup(g).Resolved() {
		o.setStatus(name, Idle)
	} else {
		o.setStatus(name, Unconfigured)
	}
}
