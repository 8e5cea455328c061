// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"

	"cloudeng.io/calendars"
)

func TestCopticISO(t *testing.T) {
	c := calendars.Coptic
	for i, tc := range []struct {
		y, m, d int
		iso     calendars.ISODate
	}{
		{1, 1, 1, iso(284, 8, 29)},
		{1740, 1, 1, iso(2023, 9, 12)},
		{1727, 13, 6, iso(2011, 9, 11)},
		{1728, 1, 1, iso(2011, 9, 12)},
	} {
		d, err := c.Date(tc.y, tc.m, tc.d)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := d.ISO(), tc.iso; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		fromISO, err := c.DateFromISO(tc.iso)
		assertDate(t, fromISO, err, tc.y, tc.m, tc.d)
	}
}

func TestCopticRules(t *testing.T) {
	c := calendars.Coptic
	for _, y := range []int{3, 7, 1727, 1739, 1743} {
		if !c.IsLeapYear(y) {
			t.Errorf("%v: expected a leap year", y)
		}
		if got, want := c.LengthOfMonth(y, 13), 6; got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
		if got, want := c.LengthOfYear(y), 366; got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
	}
	for _, y := range []int{1, 2, 4, 1740} {
		if c.IsLeapYear(y) {
			t.Errorf("%v: unexpected leap year", y)
		}
		if got, want := c.LengthOfMonth(y, 13), 5; got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
	}
	if got, want := c.MonthsInYear(), 13; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.LengthOfMonth(1740, 12), 30; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err := c.Date(0, 1, 1)
	assertInvalid(t, err, calendars.Year)
	_, err = c.Date(-1, 1, 1)
	assertInvalid(t, err, calendars.Year)
	_, err = c.Date(1740, 13, 6)
	assertInvalid(t, err, calendars.DayOfMonth)
	_, err = c.Date(1740, 14, 1)
	assertInvalid(t, err, calendars.MonthOfYear)
	_, err = c.Date(1740, 1, 31)
	assertInvalid(t, err, calendars.DayOfMonth)
}

func TestCopticFields(t *testing.T) {
	c := calendars.Coptic
	d := c.MustDate(1727, 13, 6)
	assertGet(t, d, calendars.DayOfYear, 366)
	assertGet(t, d, calendars.ProlepticMonth, 1727*13+12)
	assertGet(t, d, calendars.AlignedWeekOfMonth, 1)
	assertGet(t, d, calendars.AlignedWeekOfYear, 53)
	assertGet(t, d, calendars.YearOfEra, 1727)
	assertGet(t, d, calendars.EraOfYear, 1)
	assertRange(t, d, calendars.DayOfMonth, 1, 6)
	assertRange(t, d, calendars.AlignedWeekOfMonth, 1, 1)
	assertRange(t, c.MustDate(1740, 13, 1), calendars.DayOfMonth, 1, 5)
	assertRange(t, c.MustDate(1740, 1, 1), calendars.AlignedWeekOfMonth, 1, 5)
	assertRange(t, c.MustDate(1740, 1, 1), calendars.DayOfYear, 1, 365)

	// Sunday 2011-09-11.
	assertGet(t, d, calendars.DayOfWeek, 7)

	nd, err := d.With(calendars.Year, 1728)
	assertDate(t, nd, err, 1728, 13, 5)
	nd, err = d.Plus(1, calendars.Years)
	assertDate(t, nd, err, 1728, 13, 5)
	nd, err = d.Plus(1, calendars.Days)
	assertDate(t, nd, err, 1728, 1, 1)
	nd, err = c.MustDate(1731, 12, 6).With(calendars.MonthOfYear, 13)
	assertDate(t, nd, err, 1731, 13, 6)
	_, err = c.MustDate(1729, 12, 6).With(calendars.MonthOfYear, 13)
	assertInvalid(t, err, calendars.DayOfMonth)

	if got, want := c.MustDate(1, 1, 1).String(), "Coptic AM 1-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.String(), "Coptic AM 1727-13-06"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(c.Eras()), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = c.MustDate(1, 1, 1).Minus(1, calendars.Days)
	assertInvalid(t, err, calendars.EpochDay)
}
