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

import "github.com/pkg/errors"

// Sink receives finalized digits in strictly increasing position order. A
// non-nil error aborts the computation.
type Sink interface {
	Append(d Digit) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Digit) error

// Append calls f(d).
func (f SinkFunc) Append(d Digit) error {
	return f(d)
}

// Stream is an append-only accumulator of finalized digits with a capacity
// fixed at construction. It is safe to read with At while a computation is
// appending to it from the same goroutine.
type Stream struct {
	digits []Digit
}

// NewStream returns an empty Stream that accepts exactly n digits.
func NewStream(n int) (s *Stream, err error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "stream capacity %d", n)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, errors.Wrapf(ErrAllocation, "stream of %d digits: %v", n, r)
		}
	}()
	return &Stream{digits: make([]Digit, 0, n)}, nil
}

// Append adds d at the next position. Appending to a complete Stream is an
// error: it means the producer emitted more digits than were requested.
func (s *Stream) Append(d Digit) error {
	if !d.Valid() {
		return errors.Wrapf(ErrInvalidDigit, "append %d at position %d", d, len(s.digits))
	}
	if len(s.digits) == cap(s.digits) {
		return errors.Wrapf(ErrStreamFull, "capacity %d", cap(s.digits))
	}
	s.digits = append(s.digits, d)
	return nil
}

// Complete reports whether all Cap digits have been appended.
func (s *Stream) Complete() bool {
	return len(s.digits) == cap(s.digits)
}

// Len returns the number of digits appended so far.
func (s *Stream) Len() int { return len(s.digits) }

// Cap returns the number of digits the Stream accepts.
func (s *Stream) Cap() int { return cap(s.digits) }

// At returns the digit at position i, or Blank if position i has not been
// finalized.
func (s *Stream) At(i int) Digit {
	if i < 0 || i >= len(s.digits) {
		return Blank
	}
	return s.digits[i]
}

// Digits returns a copy of the digits appended so far.
func (s *Stream) Digits() Digits {
	ds := make(Digits, len(s.digits))
	copy(ds, s.digits)
	return ds
}
