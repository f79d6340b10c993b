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
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/cockroachdb/spigot/internal/config"
)

// progress reports finalized digits on a terminal progress bar. A nil
// *progress reports nothing.
type progress struct {
	bar *progressbar.ProgressBar
	log *slog.Logger
}

func newProgress(w io.Writer, log *slog.Logger, total int, mode string, threshold int) *progress {
	switch mode {
	case config.ProgressNever:
		return nil
	case config.ProgressAuto:
		if total < threshold || !isTerminal(w) {
			return nil
		}
	}
	return &progress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("digits"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	), log: log}
}

func (p *progress) update(done, total int) {
	if p == nil {
		return
	}
	// A failed redraw leaves the computation unaffected.
	if err := p.bar.Set(done); err != nil {
		p.log.Debug("progress update failed", "done", done, "error", err)
	}
}

func (p *progress) finish() {
	if p == nil {
		return
	}
	if err := p.bar.Finish(); err != nil {
		p.log.Debug("progress finish failed", "error", err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
