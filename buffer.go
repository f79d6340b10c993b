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
	"math"

	"github.com/pkg/errors"
)

// buffer is the mixed-radix working state. Slot i-1 holds a coefficient in
// radix 2i-1, so the buffer as a whole encodes a truncated series for π.
//
// Every slot above the first stays below its radix between passes, so
// a[i-1] <= 2i-2 for i >= 2, and a[0] <= 9. The carry entering slot i is
// at most 30 (q_out < 10 + q_in*i/(2i-1), and i/(2i-1) <= 2/3 for i >= 2),
// which bounds the accumulator by 50*len.
type buffer []int64

// accumulatorFactor bounds x/len(buffer) for every x a pass computes.
const accumulatorFactor = 50

// maxBufferLen is the longest buffer whose accumulator fits in an int64.
const maxBufferLen = math.MaxInt64 / accumulatorFactor

// maxPrecision is the largest working precision whose buffer length fits
// both the accumulator bound and the platform int.
const maxPrecision = min(maxBufferLen, math.MaxInt) / 4

// bufferLen returns the buffer length needed for m digits of working
// precision: floor(10m/3)+1.
func bufferLen(m int) (int64, error) {
	if m < 1 || int64(m) > maxPrecision {
		return 0, errors.Wrapf(ErrNumericRange, "working precision of %d digits", m)
	}
	return int64(m)*10/3 + 1, nil
}

// newBuffer allocates the working buffer for m digits of working precision
// with every slot set to 2.
func newBuffer(m int) (b buffer, err error) {
	l, err := bufferLen(m)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, errors.Wrapf(ErrAllocation, "buffer of %d slots: %v", l, r)
		}
	}()
	b = make(buffer, int(l))
	for i := range b {
		b[i] = 2
	}
	return b, nil
}

// extract runs one pass of long division by 10 across every radix position,
// from the least significant slot to the most, and returns the raw digit.
// The raw digit is in 0-10; 10 is a carry into the previous digit.
func (b buffer) extract() int64 {
	var q int64
	for i := int64(len(b)); i > 0; i-- {
		x := 10*b[i-1] + q*i
		r := 2*i - 1
		b[i-1] = x % r
		q = x / r
	}
	b[0] = q % 10
	return q / 10
}
