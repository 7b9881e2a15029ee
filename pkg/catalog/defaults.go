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

package catalog

import "strings"

const (
	EnvAppData      = "APPDATA"
	EnvLocalAppData = "LOCALAPPDATA"
	EnvProgramData  = "ProgramData"
)

// Garage61Agent is the telemetry agent the Garage61 launcher leaves behind.
const Garage61Agent = "garage61-agent.exe"

func defaultApps(env Env) []*App {
	return []*App{
		{
			DisplayName: "Fanatec",
			Exe:         "Fanatec.exe",
			Shortcuts:   []string{"Fanatec.lnk", "Fanatec Control Panel.lnk"},
			Paths: []string{
				`C:\Program Files\Fanatec\FanatecUI\UI\Fanatec.exe`,
				`C:\Program Files (x86)\Fanatec\FanatecUI\UI\Fanatec.exe`,
			},
		},
		{
			DisplayName: "Crew Chief V4",
			Exe:         "CrewChiefV4.exe",
			Shortcuts:   []string{"Crew Chief V4.lnk", "CrewChiefV4.lnk"},
			Paths: []string{
				`C:\Program Files (x86)\Britton IT Ltd\CrewChiefV4\CrewChiefV4.exe`,
				`C:\Program Files\Britton IT Ltd\CrewChiefV4\CrewChiefV4.exe`,
			},
		},
		{
			DisplayName: "Trading Paints",
			Exe:         "Trading Paints.exe",
			Shortcuts:   []string{"Trading Paints.lnk"},
			Paths: []string{
				`C:\Program Files (x86)\Rhinode LLC\Trading Paints\Trading Paints.exe`,
				`C:\Program Files\Rhinode LLC\Trading Paints\Trading Paints.exe`,
			},
		},
		{
			DisplayName: "SimHub",
			Exe:         "SimHubWPF.exe",
			Shortcuts:   []string{"SimHub.lnk"},
			Paths: []string{
				`C:\Program Files (x86)\SimHub\SimHubWPF.exe`,
				`C:\Program Files\SimHub\SimHubWPF.exe`,
			},
		},
		{
			DisplayName: "Garage61",
			Exe:         "garage61-launcher.exe",
			Agent:       Garage61Agent,
			Shortcuts:   []string{"Garage 61 Telemetry Agent.lnk", "Garage61.lnk", "garage61.lnk"},
			Paths:       appendEnvPath(nil, env, EnvAppData, "garage61-install", "garage61-launcher.exe"),
		},
		{
			DisplayName: "Bloops",
			Exe:         "Bloops.exe",
			Shortcuts:   []string{"Bloops.lnk"},
			Paths:       appendEnvPath(nil, env, EnvLocalAppData, "Bloops", "current", "Bloops.exe"),
		},
		{
			DisplayName: "TrackTitan",
			Exe:         "TrackTitanDesktopApplication.exe",
			Shortcuts:   []string{"TrackTitan.lnk", "Track Titan.lnk"},
			Paths: appendEnvPath(nil, env, EnvLocalAppData,
				"Programs", "track-titan-ghost-application", "TrackTitanDesktopApplication.exe"),
		},
	}
}

func defaultGames() []*Game {
	return []*Game{
		{
			DisplayName: "iRacing",
			Exe:         "iRacingUI.exe",
			SteamAppID:  "266410",
			Shortcuts:   []string{"iRacing UI.lnk", "iRacing.lnk"},
			Paths:       []string{`C:\Program Files (x86)\iRacing\ui\iRacingUI.exe`},
		},
		{
			DisplayName: "Assetto Corsa Competizione",
			Exe:         "AC2-Win64-Shipping.exe",
			SteamAppID:  "805550",
			Shortcuts:   []string{"Assetto Corsa Competizione.lnk"},
		},
		{
			DisplayName: "Automobilista 2",
			Exe:         "AMS2AVX.exe",
			SteamAppID:  "1066890",
			Shortcuts:   []string{"Automobilista 2.lnk"},
		},
		{
			DisplayName: "Le Mans Ultimate",
			Exe:         "Le Mans Ultimate.exe",
			SteamAppID:  "2399420",
			Shortcuts:   []string{"Le Mans Ultimate.lnk"},
		},
		{
			DisplayName: "rFactor 2",
			Exe:         "rFactor2.exe",
			SteamAppID:  "365960",
			Shortcuts:   []string{"rFactor 2.lnk"},
		},
		{
			DisplayName: "Assetto Corsa",
			Exe:         "acs.exe",
			SteamAppID:  "244210",
			Shortcuts:   []string{"Assetto Corsa.lnk"},
		},
	}
}

// Default builds the built-in catalog. Paths in extra are keyed by target
// name (any case) and are probed before the built-in known paths.
func Default(env Env, extra map[string][]string) (*Catalog, error) {
	apps := defaultApps(env)
	games := defaultGames()

	for name, paths := range extra {
		for _, a := range apps {
			if strings.EqualFold(a.DisplayName, name) {
				a.Paths = append(append([]string(nil), paths...), a.Paths...)
			}
		}
		for _, g := range games {
			if strings.EqualFold(g.DisplayName, name) {
				g.Paths = append(append([]string(nil), paths...), g.Paths...)
			}
		}
	}

	return New(apps, games)
}
