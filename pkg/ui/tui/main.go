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

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/config"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	PageMain   = "main"
	PageBrowse = "browse"

	dividerWidth = 30
)

// Orchestrator is the part of lifecycle.Orchestrator the TUI drives.
type Orchestrator interface {
	Refresh(ctx context.Context) lifecycle.Summary
	LaunchAll(ctx context.Context) lifecycle.Summary
	CloseAll(ctx context.Context) lifecycle.Summary
	BrowseOverride(name, path string) error
	SetEnabled(name string, enabled bool) error
	ToggleAll() (bool, error)
	SelectGame(name string) error
	Targets() []lifecycle.TargetState
}

// Screen is the main TUI page. Its Event and Status methods are the
// orchestrator's sinks and may be called from any goroutine; all other
// state is owned by the tview event loop.
type Screen struct {
	ctx      context.Context
	app      *tview.Application
	o        Orchestrator
	pages    *tview.Pages
	apps     *tview.List
	games    *tview.List
	logView  *tview.TextView
	helpText *tview.TextView
	lastList *tview.List
	focus    []tview.Primitive
	appRows  []lifecycle.TargetState
	gameRows []lifecycle.TargetState
	busy     bool
}

func NewScreen(ctx context.Context, app *tview.Application) *Screen {
	return &Screen{ctx: ctx, app: app}
}

// Event is a lifecycle.Sink.
func (s *Screen) Event(ev lifecycle.Event) {
	line := formatEvent(CurrentTheme(), ev)
	s.app.QueueUpdateDraw(func() {
		s.appendLog(line)
	})
}

// Status is a lifecycle.StatusSink.
func (s *Screen) Status(target string, st lifecycle.Status) {
	s.app.QueueUpdateDraw(func() {
		s.setStatus(target, st)
	})
}

func formatEvent(theme *Theme, ev lifecycle.Event) string {
	color := theme.LevelColor(ev.Level)
	if ev.Level == lifecycle.LevelDivider {
		return fmt.Sprintf("[%s]%s[-]", color, strings.Repeat("─", dividerWidth))
	}
	return fmt.Sprintf("[%s]%s[-] [%s]%s[-]",
		theme.LabelColorName,
		ev.Time.Format("15:04:05"),
		color,
		tview.Escape(ev.Message),
	)
}

func appLabel(theme *Theme, st lifecycle.TargetState) string {
	box := "[ ]"
	if st.Enabled {
		box = "[x]"
	}
	return fmt.Sprintf("%s [%s]●[-] %s [%s](%s)[-]",
		tview.Escape(box),
		theme.StatusColor(st.Status),
		tview.Escape(st.Name),
		theme.LabelColorName,
		st.Status,
	)
}

func gameLabel(theme *Theme, st lifecycle.TargetState) string {
	radio := "( )"
	if st.Selected {
		radio = "(•)"
	}
	return fmt.Sprintf("%s [%s]●[-] %s [%s](%s)[-]",
		radio,
		theme.StatusColor(st.Status),
		tview.Escape(st.Name),
		theme.LabelColorName,
		st.Status,
	)
}

// Build creates the main page for o.
func (s *Screen) Build(o Orchestrator) tview.Primitive {
	s.o = o
	s.pages = tview.NewPages()

	s.apps = tview.NewList().ShowSecondaryText(false)
	s.apps.SetBorder(true).SetTitle(" Apps ")
	s.apps.SetSelectedFunc(func(i int, _, _ string, _ rune) {
		s.toggleApp(i)
	})
	s.apps.SetFocusFunc(func() {
		s.lastList = s.apps
		s.setHelp("Enter: enable or disable app. Tab: next section.")
	})

	s.games = tview.NewList().ShowSecondaryText(false)
	s.games.SetBorder(true).SetTitle(" Game ")
	s.games.SetSelectedFunc(func(i int, _, _ string, _ rune) {
		s.toggleGame(i)
	})
	s.games.SetFocusFunc(func() {
		s.lastList = s.games
		s.setHelp("Enter: select game to launch after the apps.")
	})
	s.lastList = s.apps

	s.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	s.logView.SetBorder(true).SetTitle(" Log ")

	s.helpText = tview.NewTextView().SetDynamicColors(true)

	launchButton := tview.NewButton("Launch").SetSelectedFunc(func() {
		s.runBatch(s.o.LaunchAll)
	})
	closeButton := tview.NewButton("Close").SetSelectedFunc(func() {
		s.runBatch(s.o.CloseAll)
	})
	toggleButton := tview.NewButton("Toggle all").SetSelectedFunc(s.toggleAll)
	browseButton := tview.NewButton("Set path").SetSelectedFunc(s.showBrowse)
	refreshButton := tview.NewButton("Refresh").SetSelectedFunc(func() {
		s.runBatch(s.o.Refresh)
	})
	exitButton := tview.NewButton("Exit").SetSelectedFunc(s.app.Stop)

	buttons := tview.NewFlex()
	for i, b := range []*tview.Button{
		launchButton, closeButton, toggleButton, browseButton, refreshButton, exitButton,
	} {
		if i > 0 {
			buttons.AddItem(tview.NewBox(), 1, 0, false)
		}
		buttons.AddItem(b, 0, 1, false)
	}

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.apps, 0, 2, true).
		AddItem(s.games, 0, 1, false)

	body := tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(s.logView, 0, 1, false)

	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, true).
		AddItem(buttons, 1, 0, false).
		AddItem(s.helpText, 1, 0, false)
	main.SetTitle(" " + config.AppName + " v" + config.AppVersion + " ").
		SetTitleAlign(tview.AlignCenter)

	s.focus = []tview.Primitive{
		s.apps, s.games, launchButton, closeButton, toggleButton,
		browseButton, refreshButton, exitButton,
	}
	main.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() { //nolint:exhaustive
		case tcell.KeyTab:
			s.cycleFocus(1)
			return nil
		case tcell.KeyBacktab:
			s.cycleFocus(-1)
			return nil
		case tcell.KeyEscape:
			s.app.Stop()
			return nil
		}
		return event
	})

	pageDefaults(PageMain, s.pages, main)
	return s.pages
}

func (s *Screen) cycleFocus(delta int) {
	current := 0
	for i, p := range s.focus {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + delta + len(s.focus)) % len(s.focus)
	s.app.SetFocus(s.focus[next])
}

func (s *Screen) setHelp(text string) {
	s.helpText.SetText(text)
}

func (s *Screen) appendLog(line string) {
	_, _ = fmt.Fprintln(s.logView, line)
	s.logView.ScrollToEnd()
}

// Start runs an initial refresh in the background.
func (s *Screen) Start() {
	s.runBatch(s.o.Refresh)
}

// StoreChanged is called from outside the event loop when the path store
// was edited on disk.
func (s *Screen) StoreChanged() {
	s.app.QueueUpdateDraw(func() {
		s.appendLog(fmt.Sprintf("[%s]%s[-]", CurrentTheme().AccentColorName,
			tview.Escape("Paths file changed on disk, refreshing")))
		s.runBatch(s.o.Refresh)
	})
}

// runBatch runs fn off the event loop. Only one batch runs at a time.
func (s *Screen) runBatch(fn func(context.Context) lifecycle.Summary) {
	if s.busy {
		s.setHelp("Please wait for the current operation to finish.")
		return
	}
	s.busy = true
	go func() {
		sum := fn(s.ctx)
		log.Debug().Str("run", sum.Run.String()).Msg("tui batch finished")
		states := s.o.Targets()
		s.app.QueueUpdateDraw(func() {
			s.busy = false
			s.setStates(states)
		})
	}()
}

func (s *Screen) reload() {
	s.setStates(s.o.Targets())
}

func (s *Screen) setStates(states []lifecycle.TargetState) {
	s.appRows = s.appRows[:0]
	s.gameRows = s.gameRows[:0]
	for _, st := range states {
		if st.Kind == catalog.KindGame {
			s.gameRows = append(s.gameRows, st)
		} else {
			s.appRows = append(s.appRows, st)
		}
	}
	s.render()
}

func (s *Screen) setStatus(target string, st lifecycle.Status) {
	for i := range s.appRows {
		if s.appRows[i].Name == target {
			s.appRows[i].Status = st
		}
	}
	for i := range s.gameRows {
		if s.gameRows[i].Name == target {
			s.gameRows[i].Status = st
		}
	}
	s.render()
}

func (s *Screen) render() {
	theme := CurrentTheme()
	renderList(s.apps, s.appRows, func(st lifecycle.TargetState) string {
		return appLabel(theme, st)
	})
	renderList(s.games, s.gameRows, func(st lifecycle.TargetState) string {
		return gameLabel(theme, st)
	})
}

func renderList(l *tview.List, rows []lifecycle.TargetState, label func(lifecycle.TargetState) string) {
	if l.GetItemCount() != len(rows) {
		current := l.GetCurrentItem()
		l.Clear()
		for _, st := range rows {
			l.AddItem(label(st), "", 0, nil)
		}
		if current < len(rows) {
			l.SetCurrentItem(current)
		}
		return
	}
	for i, st := range rows {
		l.SetItemText(i, label(st), "")
	}
}

func (s *Screen) reportError(name string, err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, lifecycle.ErrUnconfigured):
		msg = name + " is not configured - use Set path first"
	case errors.Is(err, lifecycle.ErrInvalidSelection), errors.Is(err, lifecycle.ErrNotExist):
		// already reported as an event
		return
	}
	s.appendLog(fmt.Sprintf("[%s]%s[-]", CurrentTheme().ErrorColorName, tview.Escape(msg)))
}

func (s *Screen) toggleApp(i int) {
	if s.busy || i < 0 || i >= len(s.appRows) {
		return
	}
	st := s.appRows[i]
	if err := s.o.SetEnabled(st.Name, !st.Enabled); err != nil {
		s.reportError(st.Name, err)
		return
	}
	s.reload()
}

func (s *Screen) toggleGame(i int) {
	if s.busy || i < 0 || i >= len(s.gameRows) {
		return
	}
	st := s.gameRows[i]
	name := st.Name
	if st.Selected {
		name = ""
	}
	if err := s.o.SelectGame(name); err != nil {
		s.reportError(st.Name, err)
		return
	}
	s.reload()
}

func (s *Screen) toggleAll() {
	if s.busy {
		return
	}
	if _, err := s.o.ToggleAll(); err != nil {
		s.reportError("", err)
		return
	}
	s.reload()
}

// selectedTarget is the highlighted row of the list that last had focus.
func (s *Screen) selectedTarget() (lifecycle.TargetState, bool) {
	rows := s.appRows
	if s.lastList == s.games {
		rows = s.gameRows
	}
	i := s.lastList.GetCurrentItem()
	if i < 0 || i >= len(rows) {
		return lifecycle.TargetState{}, false
	}
	return rows[i], true
}

func (s *Screen) showBrowse() {
	if s.busy {
		return
	}
	st, ok := s.selectedTarget()
	if !ok {
		return
	}

	input := tview.NewInputField().
		SetLabel("Path").
		SetText(st.Path).
		SetFieldWidth(60)
	form := tview.NewForm().AddFormItem(input)
	closeForm := func() {
		s.pages.RemovePage(PageBrowse)
		s.pages.SwitchToPage(PageMain)
		s.app.SetFocus(s.lastList)
	}
	form.AddButton("Save", func() {
		path := strings.TrimSpace(input.GetText())
		if err := s.o.BrowseOverride(st.Name, path); err != nil {
			s.reportError(st.Name, err)
		}
		closeForm()
		s.reload()
	})
	form.AddButton("Cancel", closeForm)
	form.SetCancelFunc(closeForm)
	form.SetTitle(" Set path: " + st.Name + " ").SetTitleAlign(tview.AlignCenter)

	s.pages.AddPage(PageBrowse, CenterWidget(76, 7, form), true, true)
	form.SetBorder(true)
	s.app.SetFocus(form)
}

// Run builds the screen for o, starts the initial refresh and blocks
// until the user exits.
func Run(s *Screen, o Orchestrator, theme string) error {
	if !SetCurrentTheme(theme) {
		ApplyTheme(CurrentTheme())
	}
	root := s.Build(o)
	s.app.SetRoot(root, true).EnableMouse(true)
	s.Start()
	if err := s.app.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
