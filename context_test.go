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
	"fmt"
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/pkg/errors"
)

const pi100 = "3141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067"

// machinPi returns the first n digits of π from Machin's formula,
// π = 16·atan(1/5) − 4·atan(1/239), in fixed point with guard digits.
func machinPi(n int) string {
	unity := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n+10)), nil)
	atanInv := func(x int64) *big.Int {
		bx := big.NewInt(x)
		x2 := big.NewInt(x * x)
		term := new(big.Int).Quo(unity, bx)
		sum := new(big.Int).Set(term)
		tmp := new(big.Int)
		for k, sign := int64(3), -1; term.Sign() != 0; k, sign = k+2, -sign {
			term.Quo(term, x2)
			tmp.Quo(term, big.NewInt(k))
			if sign < 0 {
				sum.Sub(sum, tmp)
			} else {
				sum.Add(sum, tmp)
			}
		}
		return sum
	}
	pi := new(big.Int).Mul(atanInv(5), big.NewInt(16))
	pi.Sub(pi, new(big.Int).Mul(atanInv(239), big.NewInt(4)))
	return pi.String()[:n]
}

func TestMachinOracle(t *testing.T) {
	if got := machinPi(100); got != pi100 {
		t.Fatalf("oracle: expected %s, got %s", pi100, got)
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		n      int
		expect string
	}{
		{1, "3"},
		{2, "31"},
		{5, "31415"},
		{10, "3141592653"},
		{31, "3141592653589793238462643383279"},
		{32, "31415926535897932384626433832795"},
		{50, pi100[:50]},
		{100, pi100},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			ds, err := Compute(tc.n)
			if err != nil {
				t.Fatal(err)
			}
			if ds.Len() != tc.n {
				t.Fatalf("expected %d digits, got %d", tc.n, ds.Len())
			}
			if s := ds.String(); s != tc.expect {
				t.Errorf("expected %s, got %s", tc.expect, s)
			}
		})
	}
}

func TestComputeTen(t *testing.T) {
	ds, err := Compute(10)
	if err != nil {
		t.Fatal(err)
	}
	expect := Digits{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	for i := range expect {
		if ds[i] != expect[i] {
			t.Fatalf("position %d: expected %d, got %d (%s)", i, expect[i], ds[i], ds)
		}
	}
}

func TestComputeAgainstOracle(t *testing.T) {
	const n = 1200
	ds, err := Compute(n)
	if err != nil {
		t.Fatal(err)
	}
	expect := machinPi(n)
	got := ds.String()
	for i := 0; i < n; i++ {
		if got[i] != expect[i] {
			t.Fatalf("first difference at position %d: expected %c, got %c", i, expect[i], got[i])
		}
	}
}

func TestComputeDigitRange(t *testing.T) {
	for n := 1; n <= 120; n++ {
		ds, err := Compute(n)
		if err != nil {
			t.Fatalf("%d: %+v", n, err)
		}
		if len(ds) != n {
			t.Fatalf("%d: got %d digits", n, len(ds))
		}
		if ds[0] != 3 {
			t.Fatalf("%d: first digit %d", n, ds[0])
		}
		for i, d := range ds {
			if !d.Valid() {
				t.Fatalf("%d: position %d holds %d", n, i, d)
			}
		}
	}
}

func TestComputePrefix(t *testing.T) {
	full, err := Compute(300)
	if err != nil {
		t.Fatal(err)
	}
	want := full.String()
	for n := 1; n < 300; n++ {
		ds, err := Compute(n)
		if err != nil {
			t.Fatal(err)
		}
		if s := ds.String(); s != want[:n] {
			t.Fatalf("%d: expected %s, got %s", n, want[:n], s)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	a, err := Compute(200)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(200)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatalf("repeated computation differs:\n%s\n%s", a, b)
	}
}

func TestComputeInvalid(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			ds, err := Compute(n)
			if errors.Cause(err) != ErrInvalidArgument {
				t.Fatalf("expected invalid argument, got %v", err)
			}
			if ds != nil {
				t.Fatalf("expected no digits, got %s", ds)
			}
		})
	}
}

func TestComputeNumericRange(t *testing.T) {
	c := Context{MaxDigits: 50}
	if _, err := c.Compute(51); errors.Cause(err) != ErrNumericRange {
		t.Fatalf("expected numeric range error, got %v", err)
	}
	if _, err := c.Compute(50); err != nil {
		t.Fatal(err)
	}
	if _, err := Compute(MaxDigits + 1); errors.Cause(err) != ErrNumericRange {
		t.Fatalf("expected numeric range error, got %v", err)
	}
}

// The six 9s at decimal places 762-767 are held back as one carry run.
func TestFeynmanPoint(t *testing.T) {
	want := machinPi(780)
	for _, n := range []int{761, 762, 763, 765, 767, 768, 769, 780} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			s, err := NewStream(n)
			if err != nil {
				t.Fatal(err)
			}
			res, err := BaseContext.Spigot(context.Background(), n, s)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Digits().String(); got != want[:n] {
				t.Fatalf("tail: expected %s, got %s", want[n-10:n], got[n-10:])
			}
			if n > 762 && res.LongestNines < 6 {
				t.Errorf("expected a run of at least 6 nines, got %d", res.LongestNines)
			}
		})
	}
	if got := want[762:768]; got != "999999" {
		t.Fatalf("oracle: expected 999999 at 762, got %s", got)
	}
}

func TestGuardRestart(t *testing.T) {
	c := Context{Guard: 1}
	s, err := NewStream(762)
	if err != nil {
		t.Fatal(err)
	}
	var appended int
	sink := SinkFunc(func(d Digit) error {
		appended++
		return s.Append(d)
	})
	res, err := c.Spigot(context.Background(), 762, sink)
	if err != nil {
		t.Fatal(err)
	}
	if res.Restarts != 3 || res.Guard != 8 {
		t.Errorf("expected 3 restarts ending at guard 8, got %d at guard %d", res.Restarts, res.Guard)
	}
	if appended != 762 || res.Digits != 762 {
		t.Errorf("expected 762 appends, got %d (result %d)", appended, res.Digits)
	}
	if got, want := s.Digits().String(), machinPi(762); got != want {
		t.Errorf("expected %s, got %s", want[740:], got[740:])
	}
}

func TestSpigotResult(t *testing.T) {
	res, err := BaseContext.Spigot(context.Background(), 10, SinkFunc(func(Digit) error { return nil }))
	if err != nil {
		t.Fatal(err)
	}
	expect := Result{
		Digits:       10,
		Passes:       11,
		LongestNines: 1,
		Guard:        DefaultGuard,
		BufferLen:    (10+DefaultGuard)*10/3 + 1,
	}
	if res != expect {
		t.Errorf("expected %+v, got %+v", expect, res)
	}
	if res.BufferBytes() != uint64(expect.BufferLen)*8 {
		t.Errorf("unexpected buffer size %d", res.BufferBytes())
	}
}

func TestSpigotSinkError(t *testing.T) {
	errStop := errors.New("stop")
	var got Digits
	sink := SinkFunc(func(d Digit) error {
		if len(got) == 4 {
			return errStop
		}
		got = append(got, d)
		return nil
	})
	res, err := BaseContext.Spigot(context.Background(), 20, sink)
	if errors.Cause(err) != errStop {
		t.Fatalf("expected sink error, got %v", err)
	}
	if got.String() != "3141" || res.Digits != 4 {
		t.Fatalf("expected prefix 3141, got %s (%d)", got, res.Digits)
	}
}

func TestSpigotStreamFull(t *testing.T) {
	s, err := NewStream(5)
	if err != nil {
		t.Fatal(err)
	}
	_, err = BaseContext.Spigot(context.Background(), 6, s)
	if errors.Cause(err) != ErrStreamFull {
		t.Fatalf("expected stream full, got %v", err)
	}
	if s.Digits().String() != "31415" {
		t.Fatalf("unexpected stream %s", s.Digits())
	}
}

func TestSpigotNilSink(t *testing.T) {
	if _, err := BaseContext.Spigot(context.Background(), 5, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestSpigotCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := BaseContext.WithProgress(func(done, total int) {
		if done >= 25 {
			cancel()
		}
	})
	s, err := NewStream(500)
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Spigot(ctx, 500, s)
	if errors.Cause(err) != context.Canceled {
		t.Fatalf("expected cancellation, got %v", err)
	}
	if s.Complete() {
		t.Fatal("expected a partial stream")
	}
	if got, want := s.Digits().String(), machinPi(s.Len()); got != want {
		t.Fatalf("partial digits: expected %s, got %s", want, got)
	}

	if _, err := c.ComputeContext(ctx, 10); errors.Cause(err) != context.Canceled {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestProgress(t *testing.T) {
	var calls, last int
	c := BaseContext.WithProgress(func(done, total int) {
		if total != 40 {
			t.Fatalf("expected total 40, got %d", total)
		}
		if done < last {
			t.Fatalf("progress went backwards: %d after %d", done, last)
		}
		calls++
		last = done
	})
	if _, err := c.Compute(40); err != nil {
		t.Fatal(err)
	}
	if last != 40 || calls < 40 {
		t.Fatalf("expected at least 40 calls ending at 40, got %d ending at %d", calls, last)
	}
}

func TestBufferLen(t *testing.T) {
	tests := []struct {
		m      int
		expect int64
	}{
		{1, 4},
		{3, 11},
		{10, 34},
		{11, 37},
	}
	for _, tc := range tests {
		l, err := bufferLen(tc.m)
		if err != nil {
			t.Fatal(err)
		}
		if l != tc.expect {
			t.Errorf("%d: expected %d, got %d", tc.m, tc.expect, l)
		}
	}
	for _, m := range []int{0, -1, MaxDigits + DefaultGuard + 1} {
		if _, err := bufferLen(m); errors.Cause(err) != ErrNumericRange {
			t.Errorf("%d: expected numeric range error, got %v", m, err)
		}
	}
}

func TestBufferExtract(t *testing.T) {
	b, err := newBuffer(5)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range b {
		if v != 2 {
			t.Fatalf("slot %d: expected 2, got %d", i, v)
		}
	}
	if q := b.extract(); q != 3 {
		t.Fatalf("expected first raw digit 3, got %d", q)
	}
	for i := 1; i < len(b); i++ {
		if r := int64(2*i + 1); b[i] < 0 || b[i] >= r {
			t.Errorf("slot %d: %d outside radix %d", i, b[i], r)
		}
	}
}

func TestMaxDigits(t *testing.T) {
	limit, guard := int64(MaxDigits), int64(DefaultGuard)
	if limit+guard > math.MaxInt/4 {
		t.Fatalf("MaxDigits %d leaves no room to double the guard in an int", limit)
	}
	l, err := bufferLen(MaxDigits + DefaultGuard)
	if err != nil {
		t.Fatal(err)
	}
	if l > maxBufferLen || l > math.MaxInt {
		t.Fatalf("buffer of %d slots overflows", l)
	}
	if _, err := Compute(MaxDigits + 1); errors.Cause(err) != ErrNumericRange {
		t.Fatalf("expected numeric range error, got %v", err)
	}
}

func TestComputeAllocation(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("every size in range may be allocatable")
	}
	n := MaxDigits
	ds, err := Compute(n)
	if errors.Cause(err) != ErrAllocation {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if ds != nil {
		t.Fatalf("expected no digits, got %d", len(ds))
	}

	var count int
	discard := SinkFunc(func(Digit) error {
		count++
		return nil
	})
	res, err := BaseContext.Spigot(context.Background(), n, discard)
	if errors.Cause(err) != ErrAllocation {
		t.Fatalf("expected allocation error, got %v", err)
	}
	if count != 0 || res.Digits != 0 || res.Passes != 0 {
		t.Fatalf("expected no work, got %d digits and %+v", count, res)
	}
}

func TestBufferBytes(t *testing.T) {
	for _, n := range []int{1, 10, 100, 762} {
		got, err := BaseContext.BufferBytes(n)
		if err != nil {
			t.Fatal(err)
		}
		res, err := BaseContext.Spigot(context.Background(), n, SinkFunc(func(Digit) error { return nil }))
		if err != nil {
			t.Fatal(err)
		}
		if res.Restarts == 0 && got != res.BufferBytes() {
			t.Errorf("%d: expected %d bytes, got %d", n, res.BufferBytes(), got)
		}
		if got > res.BufferBytes() {
			t.Errorf("%d: first attempt of %d bytes exceeds final %d", n, got, res.BufferBytes())
		}
	}
	if _, err := BaseContext.BufferBytes(0); errors.Cause(err) != ErrInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := BaseContext.BufferBytes(MaxDigits + 1); errors.Cause(err) != ErrNumericRange {
		t.Fatalf("expected numeric range error, got %v", err)
	}
}
