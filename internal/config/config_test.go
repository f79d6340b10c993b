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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Digits.Count)
	assert.Equal(t, 4, cfg.Display.Width)
	assert.Equal(t, FormatPlain, cfg.Digits.Format)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, exists, err := Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open config")
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
[digits]
count = 762
format = " Table "
group_size = 5

[display]
width = 6
frame_delay_ms = 0

[logging]
level = "DEBUG"
format = "json"
`)
	cfg, exists, err := Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 762, cfg.Digits.Count)
	assert.Equal(t, FormatTable, cfg.Digits.Format)
	assert.Equal(t, 5, cfg.Digits.GroupSize)
	assert.Equal(t, 6, cfg.Display.Width)
	assert.Equal(t, 0, cfg.Display.FrameDelayMillis)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, Default().Digits.Guard, cfg.Digits.Guard)
	assert.Equal(t, ProgressAuto, cfg.Digits.Progress)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, `
[digits]
trim = 2
`)
	_, _, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero count", func(c *Config) { c.Digits.Count = 0 }, "digits.count"},
		{"count above max", func(c *Config) { c.Digits.MaxDigits = 50; c.Digits.Count = 51 }, "digits.count"},
		{"zero max", func(c *Config) { c.Digits.MaxDigits = 0 }, "digits.max_digits"},
		{"zero guard", func(c *Config) { c.Digits.Guard = 0 }, "digits.guard"},
		{"format", func(c *Config) { c.Digits.Format = "hex" }, "digits.format"},
		{"group size", func(c *Config) { c.Digits.GroupSize = 0 }, "digits.group_size"},
		{"progress", func(c *Config) { c.Digits.Progress = "sometimes" }, "digits.progress"},
		{"threshold", func(c *Config) { c.Digits.ProgressThreshold = -1 }, "digits.progress_threshold"},
		{"width", func(c *Config) { c.Display.Width = 0 }, "display.width"},
		{"delay", func(c *Config) { c.Display.FrameDelayMillis = -5 }, "display.frame_delay_ms"},
		{"level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Digits.Count = 1234
	cfg.Display.Width = 8

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "[digits]")

	loaded, exists, err := Load(writeConfig(t, buf.String()))
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, cfg, *loaded)
}
