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

package spigot

import (
	"context"

	"github.com/pkg/errors"
)

// pending holds the digits a pass has seen but cannot finalize yet.
type pending struct {
	// predigit is the most recent candidate digit, or Blank before the first
	// pass. It is revised upward by one if a later pass carries.
	predigit Digit
	// nines is the number of raw 9s seen since predigit. They become 9s if
	// the next raw digit is below 9 and 0s if it is 10.
	nines int
}

// loop runs extraction passes at one working precision.
type loop struct {
	c   *Context
	buf buffer
	out *errSink
	res *Result

	maxPasses int // Passes available before the working precision runs out.
	pending
}

func (c *Context) newLoop(m int, out *errSink, res *Result) (*loop, error) {
	buf, err := newBuffer(m)
	if err != nil {
		return nil, err
	}
	res.BufferLen = len(buf)
	return &loop{
		c:         c,
		buf:       buf,
		out:       out,
		res:       res,
		maxPasses: m,
		pending:   pending{predigit: Blank},
	}, nil
}

// run performs passes until every requested digit is finalized or the
// working precision is exhausted. It reports whether all digits were
// finalized.
func (l *loop) run(ctx context.Context) (bool, error) {
	for pass := 0; pass < l.maxPasses && !l.out.done(); pass++ {
		if err := ctx.Err(); err != nil {
			return false, errors.Wrapf(err, "after %d of %d digits", l.out.delivered, l.out.n)
		}
		l.resolve(l.buf.extract())
		l.res.Passes++
		if l.out.Err != nil {
			return false, l.out.Err
		}
		if l.c.Progress != nil {
			l.c.Progress(l.out.delivered, l.out.n)
		}
	}
	return l.out.done(), nil
}

// resolve finalizes whatever the raw digit q settles.
func (l *loop) resolve(q int64) {
	switch {
	case q == 9:
		l.nines++
		if l.nines > l.res.LongestNines {
			l.res.LongestNines = l.nines
		}
	case q == 10:
		// The carry rounds the predigit up and every pending 9 over to 0.
		l.res.Carries++
		if l.predigit.Valid() {
			l.out.Append(l.predigit + 1)
		}
		for k := 0; k < l.nines; k++ {
			l.out.Append(0)
		}
		l.predigit = 0
		l.nines = 0
	default:
		if l.predigit.Valid() {
			l.out.Append(l.predigit)
		}
		for k := 0; k < l.nines; k++ {
			l.out.Append(9)
		}
		l.predigit = Digit(q)
		l.nines = 0
	}
}
