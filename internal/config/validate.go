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

package config

import (
	"github.com/pkg/errors"

	"github.com/cockroachdb/spigot"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDigits(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDigits() error {
	d := c.Digits
	if d.MaxDigits < 1 || d.MaxDigits > spigot.MaxDigits {
		return errors.Errorf("digits.max_digits must be between 1 and %d", spigot.MaxDigits)
	}
	if d.Count < 1 || d.Count > d.MaxDigits {
		return errors.Errorf("digits.count must be between 1 and digits.max_digits (%d)", d.MaxDigits)
	}
	if d.Guard < 1 {
		return errors.New("digits.guard must be positive")
	}
	switch d.Format {
	case FormatPlain, FormatDecimal, FormatTable:
	default:
		return errors.Errorf("digits.format: unsupported value %q", d.Format)
	}
	if d.GroupSize < 1 {
		return errors.New("digits.group_size must be positive")
	}
	switch d.Progress {
	case ProgressAuto, ProgressAlways, ProgressNever:
	default:
		return errors.Errorf("digits.progress: unsupported value %q", d.Progress)
	}
	if d.ProgressThreshold < 0 {
		return errors.New("digits.progress_threshold must not be negative")
	}
	return nil
}

func (c *Config) validateDisplay() error {
	if c.Display.Width < 1 {
		return errors.New("display.width must be positive")
	}
	if c.Display.FrameDelayMillis < 0 {
		return errors.New("display.frame_delay_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
