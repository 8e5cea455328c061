// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"math"
	"testing"
)

func TestJulian(t *testing.T) {
	for i, tc := range []struct {
		y, m, d  int
		epochDay int64
	}{
		{1, 1, 1, -719164},
		{1752, 9, 2, -79367},
		{1752, 9, 3, -79366},
		{284, 8, 29, -615558},
		{1582, 10, 4, -141428},
	} {
		if got, want := julianEpochDay(tc.y, tc.m, tc.d), tc.epochDay; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		y, m, d := julianFromEpochDay(tc.epochDay)
		if y != tc.y || m != tc.m || d != tc.d {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", i, y, m, d, tc.y, tc.m, tc.d)
		}
	}
	for ed := int64(-2_000_000); ed < 200_000; ed += 7 {
		y, m, d := julianFromEpochDay(ed)
		if got, want := julianEpochDay(y, m, d), ed; got != want {
			t.Fatalf("%v-%v-%v: got %v, want %v", y, m, d, got, want)
		}
	}
}

func TestFloorDivMod(t *testing.T) {
	for i, tc := range []struct {
		a, b, div, mod int64
	}{
		{7, 4, 1, 3},
		{-7, 4, -2, 1},
		{-8, 4, -2, 0},
		{0, 4, 0, 0},
		{-1, 293, -1, 292},
	} {
		if got, want := floorDiv(tc.a, tc.b), tc.div; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := floorMod(tc.a, tc.b), tc.mod; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestExactArithmetic(t *testing.T) {
	if _, err := addExact(math.MaxInt64, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow: %v", err)
	}
	if _, err := addExact(math.MinInt64, -1); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow: %v", err)
	}
	if _, err := mulExact(math.MaxInt64/2, 3); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow: %v", err)
	}
	if got, err := mulExact(-3, 7); err != nil || got != -21 {
		t.Errorf("got %v, %v, want -21", got, err)
	}
}
