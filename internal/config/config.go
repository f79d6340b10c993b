// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package config loads the pispigot TOML configuration.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const (
	defaultDigitCount        = 100
	defaultGuard             = 10
	defaultMaxDigits         = 1000000
	defaultFormat            = FormatPlain
	defaultGroupSize         = 10
	defaultProgress          = ProgressAuto
	defaultProgressThreshold = 2000
	defaultDisplayWidth      = 4
	defaultFrameDelayMillis  = 400
	defaultLogLevel          = "warn"
	defaultLogFormat         = "console"
)

// Output formats for the digits command.
const (
	FormatPlain   = "plain"
	FormatDecimal = "decimal"
	FormatTable   = "table"
)

// Progress bar modes.
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// Digits configures the computation and its output.
type Digits struct {
	Count             int    `toml:"count"`
	Guard             int    `toml:"guard"`
	MaxDigits         int    `toml:"max_digits"`
	Format            string `toml:"format"`
	GroupSize         int    `toml:"group_size"`
	Progress          string `toml:"progress"`
	ProgressThreshold int    `toml:"progress_threshold"`
}

// Display configures the simulated 7-segment marquee.
type Display struct {
	Width            int `toml:"width"`
	FrameDelayMillis int `toml:"frame_delay_ms"`
}

// Logging configures the slog logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full pispigot configuration.
type Config struct {
	Digits  Digits  `toml:"digits"`
	Display Display `toml:"display"`
	Logging Logging `toml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Digits: Digits{
			Count:             defaultDigitCount,
			Guard:             defaultGuard,
			MaxDigits:         defaultMaxDigits,
			Format:            defaultFormat,
			GroupSize:         defaultGroupSize,
			Progress:          defaultProgress,
			ProgressThreshold: defaultProgressThreshold,
		},
		Display: Display{
			Width:            defaultDisplayWidth,
			FrameDelayMillis: defaultFrameDelayMillis,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// DefaultPath returns the location of the configuration file when none is
// given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "user config dir")
	}
	return filepath.Join(dir, "pispigot", "config.toml"), nil
}

// Load reads and validates the configuration at path, falling back to
// DefaultPath when path is empty. A missing file yields the defaults; the
// second return value reports whether a file was read.
func Load(path string) (*Config, bool, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, false, err
		}
		path = p
	}

	file, err := os.Open(path)
	exists := err == nil
	switch {
	case exists:
		defer file.Close()
		dec := toml.NewDecoder(file)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, false, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err) && !explicit:
		// No file at the default location is fine.
	default:
		return nil, false, errors.Wrap(err, "open config")
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return &cfg, exists, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}

func (c *Config) normalize() {
	c.Digits.Format = strings.ToLower(strings.TrimSpace(c.Digits.Format))
	c.Digits.Progress = strings.ToLower(strings.TrimSpace(c.Digits.Progress))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Digits.Format == "" {
		c.Digits.Format = defaultFormat
	}
	if c.Digits.Progress == "" {
		c.Digits.Progress = defaultProgress
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
