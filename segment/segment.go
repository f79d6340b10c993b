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

// Package segment models a multi-digit 7-segment LED display that shows a
// sliding window over a digit sequence. Positions without a finalized digit
// are shown with every segment off.
package segment

import (
	"strings"

	"github.com/cockroachdb/spigot"
)

// Segment is one of the seven bars of a digit, a through g.
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
type Segment uint8

// Segments in wiring order.
const (
	SegA Segment = iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
	NumSegments
)

// Pattern is the set of lit segments of one digit; bit i is Segment i.
type Pattern uint8

// Off is the pattern with every segment dark.
const Off Pattern = 0

var digitPatterns = [10]Pattern{
	0x3f, // 0: a b c d e f
	0x06, // 1: b c
	0x5b, // 2: a b d e g
	0x4f, // 3: a b c d g
	0x66, // 4: b c f g
	0x6d, // 5: a c d f g
	0x7d, // 6: a c d e f g
	0x07, // 7: a b c
	0x7f, // 8: all
	0x6f, // 9: a b c d f g
}

// Encode returns the pattern for d. Blank and any other non-digit value
// encode to Off.
func Encode(d spigot.Digit) Pattern {
	if !d.Valid() {
		return Off
	}
	return digitPatterns[d]
}

// Lit reports whether s is on in p.
func (p Pattern) Lit(s Segment) bool {
	return s < NumSegments && p&(1<<s) != 0
}

// Levels returns the on/off state of every segment in wiring order.
func (p Pattern) Levels() [NumSegments]bool {
	var l [NumSegments]bool
	for s := SegA; s < NumSegments; s++ {
		l[s] = p.Lit(s)
	}
	return l
}

// Render draws patterns as three lines of ASCII art, one 3-column cell per
// digit separated by a space.
func Render(ps []Pattern) string {
	var rows [3]strings.Builder
	for i, p := range ps {
		if i > 0 {
			for r := range rows {
				rows[r].WriteByte(' ')
			}
		}
		rows[0].WriteByte(' ')
		rows[0].WriteByte(mark(p, SegA, '_'))
		rows[0].WriteByte(' ')

		rows[1].WriteByte(mark(p, SegF, '|'))
		rows[1].WriteByte(mark(p, SegG, '_'))
		rows[1].WriteByte(mark(p, SegB, '|'))

		rows[2].WriteByte(mark(p, SegE, '|'))
		rows[2].WriteByte(mark(p, SegD, '_'))
		rows[2].WriteByte(mark(p, SegC, '|'))
	}
	return rows[0].String() + "\n" + rows[1].String() + "\n" + rows[2].String()
}

func mark(p Pattern, s Segment, c byte) byte {
	if p.Lit(s) {
		return c
	}
	return ' '
}
