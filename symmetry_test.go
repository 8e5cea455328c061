// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"

	"cloudeng.io/calendars"
)

func TestSymmetryLeapYears(t *testing.T) {
	leap := map[int]bool{}
	for _, y := range []int{-8, -2, 3, 9, 1992, 1998, 2004, 2009, 2015, 2021, 2026} {
		leap[y] = true
	}
	for _, c := range []calendars.Chronology{calendars.Symmetry010, calendars.Symmetry454} {
		for _, y := range []int{-8, -2, 0, 1, 2, 3, 9, 1992, 1998, 1999, 2000, 2004, 2009, 2015, 2016, 2020, 2021, 2026} {
			if got, want := c.IsLeapYear(y), leap[y]; got != want {
				t.Errorf("%v: %v: got %v, want %v", c, y, got, want)
			}
			want := 364
			if leap[y] {
				want = 371
			}
			if got := c.LengthOfYear(y); got != want {
				t.Errorf("%v: %v: got %v, want %v", c, y, got, want)
			}
		}
	}
	// 52 leap years in every 293 year cycle.
	n := 0
	for y := 1; y <= 293; y++ {
		if calendars.Symmetry010.IsLeapYear(y) {
			n++
		}
	}
	if got, want := n, 52; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSymmetry010(t *testing.T) {
	c := calendars.Symmetry010
	d := c.MustDate(1999, 12, 29)
	if got, want := d.ISO(), iso(2000, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	fromISO, err := c.DateFromISO(iso(2000, 1, 1))
	assertDate(t, fromISO, err, 1999, 12, 29)
	if got, want := c.MustDate(1, 1, 1).ISO(), iso(1, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.LengthOfMonth(2004, 12), 37; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, want := range []int{30, 31, 30, 30, 31, 30, 30, 31, 30, 30, 31, 30} {
		if got := c.LengthOfMonth(2003, i+1); got != want {
			t.Errorf("%v: got %v, want %v", i+1, got, want)
		}
	}

	leapWeek := c.MustDate(2015, 12, 37)
	nd, err := leapWeek.With(calendars.Year, 2013)
	assertDate(t, nd, err, 2013, 12, 30)
	nd, err = leapWeek.Plus(-2, calendars.Years)
	assertDate(t, nd, err, 2013, 12, 30)
	nd, err = leapWeek.Plus(1, calendars.Days)
	assertDate(t, nd, err, 2016, 1, 1)
	assertGet(t, leapWeek, calendars.DayOfYear, 371)
	assertGet(t, leapWeek, calendars.AlignedWeekOfMonth, 6)
	assertGet(t, leapWeek, calendars.AlignedWeekOfYear, 53)
	assertRange(t, leapWeek, calendars.DayOfMonth, 1, 37)
	assertRange(t, leapWeek, calendars.AlignedWeekOfMonth, 1, 6)
	assertRange(t, c.MustDate(2016, 12, 1), calendars.DayOfMonth, 1, 30)
	assertRange(t, c.MustDate(2016, 2, 1), calendars.DayOfMonth, 1, 31)
	assertRange(t, c.MustDate(2016, 2, 1), calendars.AlignedWeekOfYear, 1, 52)

	_, err = c.Date(2016, 12, 31)
	assertInvalid(t, err, calendars.DayOfMonth)
	_, err = c.Date(2016, 1, 31)
	assertInvalid(t, err, calendars.DayOfMonth)

	// Every year starts on a Monday.
	for y := 1990; y < 2030; y++ {
		assertGet(t, c.MustDate(y, 1, 1), calendars.DayOfWeek, 1)
	}
	if got, want := c.MustDate(1, 1, 1).String(), "Sym010 CE 1/01/01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.MustDate(0, 12, 30).String(), "Sym010 BCE 1/12/30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSymmetry454(t *testing.T) {
	c := calendars.Symmetry454
	d, err := c.MustDate(2015, 12, 28).Plus(8, calendars.Days)
	assertDate(t, d, err, 2016, 1, 1)
	if got, want := d.ISO(), iso(2016, 1, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, want := range []int{28, 35, 28, 28, 35, 28, 28, 35, 28, 28, 35, 35} {
		if got := c.LengthOfMonth(2015, i+1); got != want {
			t.Errorf("%v: got %v, want %v", i+1, got, want)
		}
	}
	if got, want := c.LengthOfMonth(2016, 12), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	nd, err := c.MustDate(2015, 12, 35).With(calendars.Year, 2016)
	assertDate(t, nd, err, 2016, 12, 28)
	nd, err = c.MustDate(2016, 2, 35).Plus(1, calendars.Months)
	assertDate(t, nd, err, 2016, 3, 28)
	assertGet(t, c.MustDate(2016, 2, 35), calendars.DayOfYear, 63)
	assertGet(t, c.MustDate(2016, 4, 1), calendars.DayOfYear, 92)
	// Every month starts on a Monday.
	for m := 1; m <= 12; m++ {
		assertGet(t, c.MustDate(2016, m, 1), calendars.DayOfWeek, 1)
	}
	if got, want := c.MustDate(2016, 1, 1).String(), "Sym454 CE 2016/01/01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
