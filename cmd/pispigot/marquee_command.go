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
	"time"

	"github.com/spf13/cobra"

	"github.com/cockroachdb/spigot/segment"
)

func newMarqueeCommand(ctx *commandContext) *cobra.Command {
	var width int
	var delay time.Duration
	var textOnly bool

	cmd := &cobra.Command{
		Use:   "marquee [N]",
		Short: "Scroll the digits across a simulated 7-segment display",
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
			if !cmd.Flags().Changed("width") {
				width = cfg.Display.Width
			}
			if !cmd.Flags().Changed("delay") {
				delay = time.Duration(cfg.Display.FrameDelayMillis) * time.Millisecond
			}

			ds, err := ctx.compute(cmd, cfg, n, cfg.Digits.Progress)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			animate := isTerminal(out)
			m := segment.NewMarquee(ds, width)
			ctx.loggerValue().Debug("scrolling marquee", "frames", m.Frames(), "width", m.Width(), "animate", animate)

			for i := 0; i < m.Frames(); i++ {
				frame := m.Text(i)
				if !textOnly {
					frame = segment.Render(m.Frame(i))
				}
				if animate && i > 0 {
					// Redraw the previous frame in place.
					fmt.Fprintf(out, "\x1b[%dA", strings.Count(frame, "\n")+1)
				}
				fmt.Fprintln(out, frame)
				if !animate {
					if !textOnly {
						fmt.Fprintln(out)
					}
					continue
				}
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(delay):
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Number of display digits")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Time each frame is shown on a terminal")
	cmd.Flags().BoolVar(&textOnly, "text", false, "Print plain digits instead of segment art")
	return cmd
}
