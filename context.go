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

const (
	// MaxDigits is the largest digit count the int64 accumulator and the
	// platform int both support.
	MaxDigits = maxPrecision - DefaultGuard
	// DefaultGuard is the number of extra digits of working precision used
	// to settle the last requested digit.
	DefaultGuard = 10
)

// Context maintains options for digit computations. A Context holds no
// state between computations and may be shared.
type Context struct {
	// MaxDigits limits the digit count of a single computation. MaxDigits
	// (the package constant) is used if zero.
	MaxDigits int
	// Guard is the extra working precision of the first attempt.
	// DefaultGuard is used if zero. A computation whose last digit is
	// followed by a run of 9s longer than the guard restarts with the guard
	// doubled.
	Guard int
	// Progress, if set, is called after every pass with the number of digits
	// finalized so far and the number requested.
	Progress func(done, total int)
}

// BaseContext is a useful default Context.
var BaseContext = Context{
	MaxDigits: MaxDigits,
	Guard:     DefaultGuard,
}

// WithProgress returns a copy of c but with the specified progress callback.
func (c *Context) WithProgress(fn func(done, total int)) Context {
	r := *c
	r.Progress = fn
	return r
}

func (c *Context) maxDigits() int {
	if c.MaxDigits <= 0 || c.MaxDigits > MaxDigits {
		return MaxDigits
	}
	return c.MaxDigits
}

func (c *Context) guard() int {
	if c.Guard <= 0 {
		return DefaultGuard
	}
	return c.Guard
}

// Compute returns the first n decimal digits of π using BaseContext.
func Compute(n int) (Digits, error) {
	return BaseContext.Compute(n)
}

// Compute returns the first n decimal digits of π.
func (c *Context) Compute(n int) (Digits, error) {
	return c.ComputeContext(context.Background(), n)
}

// ComputeContext returns the first n decimal digits of π. ctx is checked
// between passes. On error no digits are returned.
func (c *Context) ComputeContext(ctx context.Context, n int) (Digits, error) {
	if err := c.Check(n); err != nil {
		return nil, err
	}
	s, err := NewStream(n)
	if err != nil {
		return nil, err
	}
	if _, err := c.Spigot(ctx, n, s); err != nil {
		return nil, err
	}
	if !s.Complete() {
		return nil, errors.Errorf("spigot: produced %d of %d digits", s.Len(), n)
	}
	return s.Digits(), nil
}

// Check returns the error a computation of n digits would fail with before
// allocating anything, or nil.
func (c *Context) Check(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrInvalidArgument, "%d digits", n)
	}
	if limit := c.maxDigits(); n > limit {
		return errors.Wrapf(ErrNumericRange, "%d digits exceeds limit of %d", n, limit)
	}
	return nil
}

// BufferBytes returns the size of the working buffer the first attempt at n
// digits allocates. Restarts at a higher guard allocate more.
func (c *Context) BufferBytes(n int) (uint64, error) {
	if err := c.Check(n); err != nil {
		return 0, err
	}
	l, err := bufferLen(n + c.guard())
	if err != nil {
		return 0, err
	}
	return uint64(l) * 8, nil
}

// Spigot computes the first n decimal digits of π and appends each to sink
// as soon as it is finalized. sink receives exactly n digits unless an error
// is returned; in that case it holds a correct prefix.
func (c *Context) Spigot(ctx context.Context, n int, sink Sink) (Result, error) {
	var res Result
	if err := c.Check(n); err != nil {
		return res, err
	}
	if sink == nil {
		return res, errors.New("spigot: nil sink")
	}
	out := &errSink{sink: sink, n: n}
	for guard := c.guard(); ; guard *= 2 {
		if guard > MaxDigits {
			return res, errors.Wrapf(ErrNumericRange, "guard of %d digits", guard)
		}
		res.Guard = guard
		l, err := c.newLoop(n+guard, out, &res)
		if err != nil {
			return res, err
		}
		done, err := l.run(ctx)
		res.Digits = out.delivered
		if err != nil {
			return res, err
		}
		if done {
			return res, nil
		}
		res.Restarts++
		out.restart()
	}
}
