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

// Package spigot computes the decimal digits of π one at a time using the
// Rabinowitz-Wagon spigot algorithm. No arbitrary-precision arithmetic is
// used: each digit is extracted from a mixed-radix buffer of int64 values
// whose length grows linearly with the number of digits requested.
package spigot

import (
	"strings"

	"github.com/pkg/errors"
)

// Digit is a single decimal digit. Values outside 0-9 are not digits; Blank
// is the one reserved marker for a position that has no finalized digit.
type Digit int8

// Blank marks a position that is out of range or not yet finalized. Displays
// render it with every segment off.
const Blank Digit = -1

// Valid reports whether d is a decimal digit.
func (d Digit) Valid() bool {
	return d >= 0 && d <= 9
}

// Digits is a finalized, ordered sequence of decimal digits. Index 0 is the
// integer part of π.
type Digits []Digit

// Len returns the number of digits.
func (ds Digits) Len() int { return len(ds) }

// At returns the digit at position i, or Blank if i is out of range.
func (ds Digits) At(i int) Digit {
	if i < 0 || i >= len(ds) {
		return Blank
	}
	return ds[i]
}

// String returns the digits without a decimal point, such as "31415".
// Positions that are not digits are written as '-'.
func (ds Digits) String() string {
	var b strings.Builder
	b.Grow(len(ds))
	for _, d := range ds {
		if d.Valid() {
			b.WriteByte('0' + byte(d))
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Decimal returns the digits with a decimal point after the first, such as
// "3.1415".
func (ds Digits) Decimal() string {
	s := ds.String()
	if len(s) <= 1 {
		return s
	}
	return s[:1] + "." + s[1:]
}

// ParseDigits parses a string of decimal digits. A single decimal point after
// the first digit is accepted so that the output of Decimal round-trips.
func ParseDigits(s string) (Digits, error) {
	if len(s) > 2 && s[1] == '.' {
		s = s[:1] + s[2:]
	}
	ds := make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrInvalidDigit, "parse %q at position %d", s, i)
		}
		ds[i] = Digit(c - '0')
	}
	return ds, nil
}
