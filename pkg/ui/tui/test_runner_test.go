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
	"testing"
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/rivo/tview"
)

// TestAppRunner runs a tview app on a SimulationScreen in a goroutine.
type TestAppRunner struct {
	app     *tview.Application
	screen  *TestScreen
	stopMu  syncutil.Mutex
	stopped bool
}

func NewTestAppRunner(t *testing.T, width, height int) *TestAppRunner {
	t.Helper()

	screen := NewTestScreen(t, width, height)
	app := tview.NewApplication()
	app.SetScreen(screen.SimulationScreen)

	return &TestAppRunner{
		app:    app,
		screen: screen,
	}
}

// Start runs the app in a goroutine with the given root primitive.
func (r *TestAppRunner) Start(root tview.Primitive) {
	r.app.SetRoot(root, true)
	go func() {
		_ = r.app.Run()
		r.stopMu.Lock()
		r.stopped = true
		r.stopMu.Unlock()
	}()
	time.Sleep(20 * time.Millisecond)
}

// Stop stops the application. tview finalizes the screen itself.
func (r *TestAppRunner) Stop() {
	r.stopMu.Lock()
	alreadyStopped := r.stopped
	r.stopped = true
	r.stopMu.Unlock()

	if !alreadyStopped {
		r.app.Stop()
		time.Sleep(20 * time.Millisecond)
	}
}

func (r *TestAppRunner) Screen() *TestScreen {
	return r.screen
}

func (r *TestAppRunner) App() *tview.Application {
	return r.app
}

// Draw forces a draw and waits briefly for it to complete.
func (r *TestAppRunner) Draw() {
	r.app.Draw()
	time.Sleep(10 * time.Millisecond)
}

// QueueUpdateDraw queues a UI update and waits briefly for the draw.
func (r *TestAppRunner) QueueUpdateDraw(f func()) {
	r.app.QueueUpdateDraw(f)
	time.Sleep(10 * time.Millisecond)
}

func (*TestAppRunner) WaitForCondition(condition func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForText waits for text to appear on screen.
func (r *TestAppRunner) WaitForText(text string, timeout time.Duration) bool {
	return r.WaitForCondition(func() bool {
		r.Draw()
		return r.screen.ContainsText(text)
	}, timeout)
}
