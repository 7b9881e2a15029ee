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
	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/ZaparooProject/simlaunch/pkg/lifecycle"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme defines all colors used in the TUI. Color names are for tview
// color tags.
type Theme struct {
	Name                     string
	DisplayName              string
	AccentColorName          string
	TextColorName            string
	SuccessColorName         string
	WarningColorName         string
	ErrorColorName           string
	LabelColorName           string
	PrimitiveBackgroundColor tcell.Color
	ContrastBackgroundColor  tcell.Color
	BorderColor              tcell.Color
	PrimaryTextColor         tcell.Color
	SecondaryTextColor       tcell.Color
	InverseTextColor         tcell.Color
}

// ThemeDefault is the dark blue/yellow theme.
var ThemeDefault = Theme{
	Name:        "default",
	DisplayName: "Default (Dark Blue)",

	PrimitiveBackgroundColor: tcell.ColorDarkBlue,
	ContrastBackgroundColor:  tcell.ColorBlue,
	BorderColor:              tcell.ColorLightYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorGray,
	InverseTextColor:         tcell.ColorDarkBlue,

	AccentColorName:  "yellow",
	TextColorName:    "white",
	SuccessColorName: "green",
	WarningColorName: "yellow",
	ErrorColorName:   "red",
	LabelColorName:   "gray",
}

// ThemeHighContrast uses true black background with bright yellow for accessibility.
var ThemeHighContrast = Theme{
	Name:        "high_contrast",
	DisplayName: "High Contrast",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x000000),
	ContrastBackgroundColor:  tcell.NewHexColor(0x000000),
	BorderColor:              tcell.ColorYellow,
	PrimaryTextColor:         tcell.ColorWhite,
	SecondaryTextColor:       tcell.ColorWhite,
	InverseTextColor:         tcell.NewHexColor(0x000000),

	AccentColorName:  "yellow",
	TextColorName:    "white",
	SuccessColorName: "lime",
	WarningColorName: "yellow",
	ErrorColorName:   "red",
	LabelColorName:   "white",
}

// ThemeNord uses the Nord arctic color palette.
var ThemeNord = Theme{
	Name:        "nord",
	DisplayName: "Nord",

	PrimitiveBackgroundColor: tcell.NewHexColor(0x2E3440),
	ContrastBackgroundColor:  tcell.NewHexColor(0x3B4252),
	BorderColor:              tcell.NewHexColor(0x88C0D0),
	PrimaryTextColor:         tcell.NewHexColor(0xECEFF4),
	SecondaryTextColor:       tcell.NewHexColor(0xD8DEE9),
	InverseTextColor:         tcell.NewHexColor(0x2E3440),

	AccentColorName:  "#88c0d0",
	TextColorName:    "#eceff4",
	SuccessColorName: "#a3be8c",
	WarningColorName: "#ebcb8b",
	ErrorColorName:   "#bf616a",
	LabelColorName:   "#4c566a",
}

// AvailableThemes maps theme names to theme definitions.
var AvailableThemes = map[string]*Theme{
	"default":       &ThemeDefault,
	"high_contrast": &ThemeHighContrast,
	"nord":          &ThemeNord,
}

var (
	currentTheme = &ThemeDefault
	themeMu      syncutil.RWMutex
)

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the current theme by name.
// Returns false if the theme name is not found.
func SetCurrentTheme(name string) bool {
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	currentTheme = theme
	themeMu.Unlock()
	ApplyTheme(theme)
	return true
}

// ApplyTheme applies the given theme to tview's global styles.
func ApplyTheme(theme *Theme) {
	tview.Styles.PrimitiveBackgroundColor = theme.PrimitiveBackgroundColor
	tview.Styles.ContrastBackgroundColor = theme.ContrastBackgroundColor
	tview.Styles.BorderColor = theme.BorderColor
	tview.Styles.PrimaryTextColor = theme.PrimaryTextColor
	tview.Styles.SecondaryTextColor = theme.SecondaryTextColor
	tview.Styles.InverseTextColor = theme.InverseTextColor
}

// LevelColor is the color tag name for log lines of a level.
func (t *Theme) LevelColor(level lifecycle.Level) string {
	switch level {
	case lifecycle.LevelSuccess:
		return t.SuccessColorName
	case lifecycle.LevelWarning:
		return t.WarningColorName
	case lifecycle.LevelError:
		return t.ErrorColorName
	case lifecycle.LevelLaunch, lifecycle.LevelClose:
		return t.AccentColorName
	case lifecycle.LevelDivider:
		return t.LabelColorName
	default:
		return t.TextColorName
	}
}

// StatusColor is the color tag name for a target's status indicator.
func (t *Theme) StatusColor(s lifecycle.Status) string {
	switch s {
	case lifecycle.Running:
		return t.SuccessColorName
	case lifecycle.Starting, lifecycle.Stopping:
		return t.WarningColorName
	case lifecycle.Failed:
		return t.ErrorColorName
	case lifecycle.Idle, lifecycle.Stopped:
		return t.TextColorName
	default:
		return t.LabelColorName
	}
}
