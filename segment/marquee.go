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

package segment

import (
	"strings"

	"github.com/cockroachdb/spigot"
)

// DefaultWidth is the digit count of a common 4-digit display module.
const DefaultWidth = 4

// Reader gives positional access to digits. *spigot.Stream and
// spigot.Digits both satisfy it; At must return spigot.Blank for positions
// it cannot answer.
type Reader interface {
	At(i int) spigot.Digit
	Len() int
}

// Marquee scrolls a fixed-width window across a Reader one position at a
// time.
type Marquee struct {
	src   Reader
	width int
}

// NewMarquee returns a Marquee over src. A width below one means
// DefaultWidth.
func NewMarquee(src Reader, width int) *Marquee {
	if width < 1 {
		width = DefaultWidth
	}
	return &Marquee{src: src, width: width}
}

// Width returns the number of digits shown at once.
func (m *Marquee) Width() int { return m.width }

// Frames returns the number of window positions needed to show every digit
// src holds now. A source shorter than the window still has one frame.
func (m *Marquee) Frames() int {
	if n := m.src.Len() - m.width + 1; n > 1 {
		return n
	}
	return 1
}

// Frame returns the patterns of the window starting at position i.
func (m *Marquee) Frame(i int) []Pattern {
	ps := make([]Pattern, m.width)
	for j := range ps {
		ps[j] = Encode(m.src.At(i + j))
	}
	return ps
}

// Text returns the window starting at position i as characters, with a
// space for every blank position.
func (m *Marquee) Text(i int) string {
	var b strings.Builder
	for j := 0; j < m.width; j++ {
		if d := m.src.At(i + j); d.Valid() {
			b.WriteByte('0' + byte(d))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
