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

package main

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/spigot"
	"github.com/cockroachdb/spigot/internal/config"
	"github.com/cockroachdb/spigot/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

// ensureConfig loads the configuration once, applies the logging flags, and
// builds the logger writing to logOut.
func (c *commandContext) ensureConfig(logOut io.Writer) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, exists, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if v := flagValue(c.logLevelFlag); v != "" {
			cfg.Logging.Level = strings.ToLower(v)
		}
		if v := flagValue(c.logFormatFlag); v != "" {
			cfg.Logging.Format = strings.ToLower(v)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			Output: logOut,
		})
		if err != nil {
			c.configErr = err
			return
		}
		logger.Debug("configuration loaded", "from_file", exists)
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerValue() *slog.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}

func flagValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// digitCount returns the positional digit count, or fallback without one.
func digitCount(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, errors.Wrapf(spigot.ErrInvalidArgument, "digit count %q", args[0])
	}
	return n, nil
}

// compute runs the spigot for n digits, reporting progress on the command's
// error stream.
func (c *commandContext) compute(
	cmd *cobra.Command, cfg *config.Config, n int, progressMode string,
) (spigot.Digits, error) {
	logger := c.loggerValue()
	sc := spigot.Context{
		MaxDigits: cfg.Digits.MaxDigits,
		Guard:     cfg.Digits.Guard,
	}

	bufBytes, err := sc.BufferBytes(n)
	if err != nil {
		return nil, err
	}
	stream, err := spigot.NewStream(n)
	if err != nil {
		return nil, err
	}
	logger.Debug("computing digits",
		"digits", n,
		"guard", sc.Guard,
		"buffer", humanize.Bytes(bufBytes),
	)

	bar := newProgress(cmd.ErrOrStderr(), logger, n, progressMode, cfg.Digits.ProgressThreshold)
	if bar != nil {
		sc.Progress = bar.update
	}
	start := time.Now()
	res, err := sc.Spigot(cmd.Context(), n, stream)
	bar.finish()
	if err != nil {
		logger.Warn("computation stopped", "digits", res.Digits, "error", err)
		return nil, err
	}

	logger.Info("computed digits",
		"digits", humanize.Comma(int64(res.Digits)),
		"passes", res.Passes,
		"carries", res.Carries,
		"longest_nines", res.LongestNines,
		"restarts", res.Restarts,
		"buffer", humanize.Bytes(res.BufferBytes()),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return stream.Digits(), nil
}
