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

var (
	// ErrInvalidArgument is returned for a digit count less than one.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumericRange is returned when the working buffer for a digit count
	// would let the int64 accumulator overflow.
	ErrNumericRange = errors.New("digit count out of numeric range")
	// ErrAllocation is returned when the working buffer or output cannot be
	// allocated.
	ErrAllocation = errors.New("allocation failed")
	// ErrStreamFull is returned by Stream.Append past the Stream's capacity.
	ErrStreamFull = errors.New("stream is full")
	// ErrInvalidDigit is returned when a value outside 0-9 is appended or
	// parsed.
	ErrInvalidDigit = errors.New("invalid digit")
)

// errSink forwards digits to a Sink and collects the first error. If an
// error is already set, the append is skipped. It is used for the runs of
// digits a single pass can finalize, with one error check per pass.
//
// Across restarts at a higher guard, positions below delivered were already
// handed to the sink and are not sent again.
type errSink struct {
	sink Sink
	// n is the number of digits requested.
	n int
	// pos is the number of digits finalized in the current attempt.
	pos int
	// delivered is the number of digits the sink has accepted overall.
	delivered int
	Err       error
}

func (e *errSink) Append(d Digit) {
	if e.Err != nil || e.pos >= e.n {
		return
	}
	if e.pos == e.delivered {
		if err := e.sink.Append(d); err != nil {
			e.Err = errors.Wrapf(err, "sink at position %d", e.pos)
			return
		}
		e.delivered++
	}
	e.pos++
}

// done reports whether all n digits have been finalized.
func (e *errSink) done() bool {
	return e.pos >= e.n
}

// restart rewinds the current attempt.
func (e *errSink) restart() {
	e.pos = 0
}
