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
	"fmt"
	"io"
	"strings"

	"github.com/ZaparooProject/simlaunch/pkg/catalog"
	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const dividerWidth = 40

// Printer writes orchestrator events to a terminal, coloured by level
// when the writer supports it.
type Printer struct {
	w      io.Writer
	styles map[lifecycle.Level]lipgloss.Style
	time   lipgloss.Style
	mu     syncutil.Mutex
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return &Printer{
		w: w,
		styles: map[lifecycle.Level]lipgloss.Style{
			lifecycle.LevelInfo:    r.NewStyle(),
			lifecycle.LevelSuccess: color("10"),
			lifecycle.LevelWarning: color("11"),
			lifecycle.LevelError:   color("9").Bold(true),
			lifecycle.LevelLaunch:  color("12").Bold(true),
			lifecycle.LevelClose:   color("13").Bold(true),
			lifecycle.LevelDivider: color("8"),
		},
		time: color("8"),
	}
}

// Event is a lifecycle.Sink.
func (p *Printer) Event(ev lifecycle.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	style := p.styles[ev.Level]
	if ev.Level == lifecycle.LevelDivider {
		_, _ = fmt.Fprintln(p.w, style.Render(strings.Repeat("-", dividerWidth)))
		return
	}
	_, _ = fmt.Fprintf(p.w, "%s %s\n",
		p.time.Render("["+ev.Time.Format("15:04:05")+"]"),
		style.Render(ev.Message),
	)
}

// PrintTargets writes a table of targets. Paths are included when
// withPaths is set.
func PrintTargets(w io.Writer, states []lifecycle.TargetState, withPaths bool) {
	headers := []string{"NAME", "KIND", "ENABLED", "STATUS"}
	if withPaths {
		headers = append(headers, "PATH")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, s := range states {
		row := []string{s.Name, s.Kind.String(), enabledLabel(s), s.Status.String()}
		if withPaths {
			row = append(row, s.Path)
		}
		t.Row(row...)
	}
	_, _ = fmt.Fprintln(w, t.Render())
}

func enabledLabel(s lifecycle.TargetState) string {
	switch {
	case s.Kind == catalog.KindGame && s.Selected:
		return "selected"
	case s.Enabled:
		return "yes"
	default:
		return "no"
	}
}
