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

// Result describes the work done by one computation.
type Result struct {
	// Digits is the number of digits handed to the sink.
	Digits int
	// Passes counts extraction passes over every attempt.
	Passes int
	// Carries counts passes whose raw digit was 10.
	Carries int
	// LongestNines is the longest run of raw 9s held back at once.
	LongestNines int
	// Restarts counts attempts abandoned because the guard ran out while a
	// run of 9s was still pending.
	Restarts int
	// Guard is the guard of the final attempt.
	Guard int
	// BufferLen is the working buffer length of the final attempt.
	BufferLen int
}

// BufferBytes returns the size of the final attempt's working buffer.
func (r Result) BufferBytes() uint64 {
	return uint64(r.BufferLen) * 8
}
