// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"runtime"
	"testing"

	"cloudeng.io/calendars"
)

func iso(y, m, d int) calendars.ISODate {
	return calendars.ISODate{Year: y, Month: m, Day: d}
}

func assertDate(t *testing.T, got calendars.Date, err error, y, m, d int) {
	t.Helper()
	if err != nil {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: unexpected error: %v", line, err)
		return
	}
	if got.Year() != y || got.Month() != m || got.Day() != d {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: got %v, want %v-%v-%v", line, got, y, m, d)
	}
}

func assertInvalid(t *testing.T, err error, field calendars.Field) {
	t.Helper()
	var ide *calendars.InvalidDateComponentError
	if !errors.As(err, &ide) {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: expected an InvalidDateComponentError, got: %v", line, err)
		return
	}
	if got, want := ide.Field, field; got != want {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func assertRange(t *testing.T, d calendars.Date, f calendars.Field, min, max int64) {
	t.Helper()
	r, err := d.Range(f)
	if err != nil {
		t.Errorf("%v: %v: %v", d, f, err)
		return
	}
	if r.Min != min || r.Max != max {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: %v: %v: got %v, want %v - %v", line, d, f, r, min, max)
	}
}

func assertGet(t *testing.T, d calendars.Date, f calendars.Field, want int64) {
	t.Helper()
	got, err := d.Get(f)
	if err != nil {
		t.Errorf("%v: %v: %v", d, f, err)
		return
	}
	if got != want {
		_, _, line, _ := runtime.Caller(1)
		t.Errorf("line %v: %v: %v: got %v, want %v", line, d, f, got, want)
	}
}
