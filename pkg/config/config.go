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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ZaparooProject/simlaunch/pkg/helpers/syncutil"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
)

const (
	SchemaVersion = 1
	CfgEnv        = "SIMLAUNCH_CFG"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Search       Search `toml:"search,omitempty"`
	Launch       Launch `toml:"launch"`
	ConfigSchema int    `toml:"config_schema"`
	TUITheme     string `toml:"tui_theme,omitempty"`
	DebugLogging bool   `toml:"debug_logging"`
}

// Launch holds the per-mode verification timings as Go duration strings.
type Launch struct {
	PollInterval    string `toml:"poll_interval" validate:"duration"`
	ProtocolSettle  string `toml:"protocol_settle" validate:"duration"`
	ProtocolTimeout string `toml:"protocol_timeout" validate:"duration"`
	ShellSettle     string `toml:"shell_settle" validate:"duration"`
	ShellTimeout    string `toml:"shell_timeout" validate:"duration"`
	DirectSettle    string `toml:"direct_settle" validate:"duration"`
	DirectTimeout   string `toml:"direct_timeout" validate:"duration"`
}

type Search struct {
	KnownPaths   map[string][]string `toml:"known_paths,omitempty"`
	SteamDir     string              `toml:"steam_dir,omitempty"`
	ShortcutDirs []string            `toml:"shortcut_dirs,omitempty,multiline"`
}

// LaunchTimings is the parsed form of Launch.
type LaunchTimings struct {
	PollInterval    time.Duration
	ProtocolSettle  time.Duration
	ProtocolTimeout time.Duration
	ShellSettle     time.Duration
	ShellTimeout    time.Duration
	DirectSettle    time.Duration
	DirectTimeout   time.Duration
}

var DefaultTimings = LaunchTimings{
	PollInterval:    500 * time.Millisecond,
	ProtocolSettle:  3 * time.Second,
	ProtocolTimeout: 30 * time.Second,
	ShellSettle:     2 * time.Second,
	ShellTimeout:    15 * time.Second,
	DirectSettle:    2 * time.Second,
	DirectTimeout:   10 * time.Second,
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	TUITheme:     "default",
	Launch: Launch{
		PollInterval:    DefaultTimings.PollInterval.String(),
		ProtocolSettle:  DefaultTimings.ProtocolSettle.String(),
		ProtocolTimeout: DefaultTimings.ProtocolTimeout.String(),
		ShellSettle:     DefaultTimings.ShellSettle.String(),
		ShellTimeout:    DefaultTimings.ShellTimeout.String(),
		DirectSettle:    DefaultTimings.DirectSettle.String(),
		DirectTimeout:   DefaultTimings.DirectTimeout.String(),
	},
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		d, err := time.ParseDuration(val)
		return err == nil && d >= 0
	})
	return v
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfgPath
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := validate.Struct(newVals.Launch); err != nil {
		// Invalid timings fall back to defaults in LaunchTimings.
		log.Warn().Err(err).Msg("invalid launch timings in config")
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

func (c *Instance) TUITheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.TUITheme
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Warn().Str("value", value).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

// LaunchTimings returns the launch verification timings, substituting the
// default for any value that is missing or unparsable.
func (c *Instance) LaunchTimings() LaunchTimings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	l := c.vals.Launch
	d := DefaultTimings
	return LaunchTimings{
		PollInterval:    parseDuration(l.PollInterval, d.PollInterval),
		ProtocolSettle:  parseDuration(l.ProtocolSettle, d.ProtocolSettle),
		ProtocolTimeout: parseDuration(l.ProtocolTimeout, d.ProtocolTimeout),
		ShellSettle:     parseDuration(l.ShellSettle, d.ShellSettle),
		ShellTimeout:    parseDuration(l.ShellTimeout, d.ShellTimeout),
		DirectSettle:    parseDuration(l.DirectSettle, d.DirectSettle),
		DirectTimeout:   parseDuration(l.DirectTimeout, d.DirectTimeout),
	}
}

// ShortcutDirs returns extra directories searched for shortcuts after the
// platform's start menu locations.
func (c *Instance) ShortcutDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	dirs := make([]string, len(c.vals.Search.ShortcutDirs))
	copy(dirs, c.vals.Search.ShortcutDirs)
	return dirs
}

func (c *Instance) SteamDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Search.SteamDir
}

// ExtraKnownPaths returns user-configured known paths keyed by target name.
func (c *Instance) ExtraKnownPaths() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string][]string, len(c.vals.Search.KnownPaths))
	for name, paths := range c.vals.Search.KnownPaths {
		out[name] = append([]string(nil), paths...)
	}
	return out
}
