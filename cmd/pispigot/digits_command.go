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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/spigot/internal/config"
)

func newDigitsCommand(ctx *commandContext) *cobra.Command {
	var format string
	var progressMode string

	cmd := &cobra.Command{
		Use:   "digits [N]",
		Short: "Print the first N decimal digits of π",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			n, err := digitCount(args, cfg.Digits.Count)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Digits.Format
			}
			if progressMode == "" {
				progressMode = cfg.Digits.Progress
			}
			format = strings.ToLower(strings.TrimSpace(format))
			switch format {
			case config.FormatPlain, config.FormatDecimal, config.FormatTable:
			default:
				return errors.Errorf("unsupported format %q", format)
			}

			ds, err := ctx.compute(cmd, cfg, n, progressMode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case config.FormatDecimal:
				fmt.Fprintln(out, ds.Decimal())
			case config.FormatTable:
				fmt.Fprintln(out, renderDigitTable(ds, cfg.Digits.GroupSize))
			default:
				fmt.Fprintln(out, ds.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (plain, decimal, table)")
	cmd.Flags().StringVar(&progressMode, "progress", "", "Progress bar (auto, always, never)")
	return cmd
}
