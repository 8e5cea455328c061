// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"cloudeng.io/calendars"
)

func TestParsePeriod(t *testing.T) {
	c := calendars.Coptic
	for i, tc := range []struct {
		input  string
		period calendars.Period
	}{
		{"P1Y", c.Period(1, 0, 0)},
		{"P1Y2M3D", c.Period(1, 2, 3)},
		{"P2W", c.Period(0, 0, 14)},
		{"P1W3D", c.Period(0, 0, 10)},
		{"P-1Y2M", c.Period(-1, 2, 0)},
		{"-P1Y2M3D", c.Period(-1, -2, -3)},
		{"P0D", c.Period(0, 0, 0)},
		{"P+3M", c.Period(0, 3, 0)},
	} {
		p, err := calendars.ParsePeriod(c, tc.input)
		if err != nil {
			t.Errorf("%v: %v: %v", i, tc.input, err)
			continue
		}
		if got, want := p, tc.period; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.input, got, want)
		}
	}
	for i, input := range []string{
		"", "P", "1Y", "-P", "P1H", "PT1H", "P1.5Y", "P1M1Y", "P1D1D", "P1", "PY", "P-D", "P1Y-",
	} {
		_, err := calendars.ParsePeriod(c, input)
		if !errors.Is(err, calendars.ErrInvalidPeriod) {
			t.Errorf("%v: %q: expected an invalid period error: %v", i, input, err)
		}
	}
}

func TestPeriodString(t *testing.T) {
	for i, tc := range []struct {
		period calendars.Period
		want   string
	}{
		{calendars.Period{}, "P0D"},
		{calendars.Period{Years: 1, Days: 3}, "P1Y3D"},
		{calendars.Coptic.Period(0, 0, 0), "Coptic P0D"},
		{calendars.Symmetry454.Period(1, 2, 3), "Sym454 P1Y2M3D"},
		{calendars.InternationalFixed.Period(0, -13, 0), "Ifc P-13M"},
	} {
		if got, want := tc.period.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestPeriodNormalized(t *testing.T) {
	for i, tc := range []struct {
		period, want calendars.Period
	}{
		{calendars.Coptic.Period(0, 13, 1), calendars.Coptic.Period(1, 0, 1)},
		{calendars.Coptic.Period(1, 27, 0), calendars.Coptic.Period(3, 1, 0)},
		{calendars.Coptic.Period(1, -14, 5), calendars.Coptic.Period(0, -1, 5)},
		{calendars.Coptic.Period(-1, 2, 0), calendars.Coptic.Period(0, -11, 0)},
		{calendars.Symmetry010.Period(0, 25, 0), calendars.Symmetry010.Period(2, 1, 0)},
		{calendars.Period{Months: -25}, calendars.Period{Years: -2, Months: -1}},
	} {
		if got, want := tc.period.Normalized(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tc.period.Normalized().TotalMonths(), tc.period.TotalMonths(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestPeriodArithmetic(t *testing.T) {
	c := calendars.Symmetry010
	p := c.Period(1, 2, 3)
	if got, want := p.Negated(), c.Period(-1, -2, -3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, err := p.MultipliedBy(3); err != nil || got != c.Period(3, 6, 9) {
		t.Errorf("got %v, %v, want %v", got, err, c.Period(3, 6, 9))
	}
	if !p.Negated().IsNegative() || p.IsNegative() || p.IsZero() || !c.Period(0, 0, 0).IsZero() {
		t.Errorf("IsNegative or IsZero is incorrect")
	}
	sum, err := p.Plus(calendars.Period{Days: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sum, c.Period(1, 2, 7); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err = p.Plus(calendars.Coptic.Period(1, 0, 0))
	if !errors.Is(err, calendars.ErrIncompatibleChronology) {
		t.Errorf("expected an incompatible chronology error: %v", err)
	}

	d := c.MustDate(2014, 10, 10)
	nd, err := d.PlusPeriod(p)
	assertDate(t, nd, err, 2015, 12, 13)
	back, err := nd.MinusPeriod(p)
	assertDate(t, back, err, 2014, 10, 10)

	d = c.MustDate(2014, 12, 30)
	nd, err = d.PlusPeriod(calendars.Period{Months: 1})
	assertDate(t, nd, err, 2015, 1, 30)
	_, err = d.PlusPeriod(calendars.Coptic.Period(0, 1, 0))
	if !errors.Is(err, calendars.ErrIncompatibleChronology) {
		t.Errorf("expected an incompatible chronology error: %v", err)
	}
}

func TestPeriodOverflow(t *testing.T) {
	c := calendars.Symmetry454
	isOverflow := func(err error) {
		t.Helper()
		if !errors.Is(err, calendars.ErrOverflow) {
			t.Errorf("expected an overflow error: %v", err)
		}
	}
	_, err := c.Period(0, 0, 2).MultipliedBy(math.MaxInt)
	isOverflow(err)
	_, err = c.Period(math.MinInt, 0, 0).MultipliedBy(-1)
	isOverflow(err)
	_, err = c.Period(0, math.MaxInt, 0).Plus(c.Period(0, 1, 0))
	isOverflow(err)
	_, err = c.MustDate(2015, 1, 1).MinusPeriod(c.Period(0, 0, math.MinInt))
	isOverflow(err)

	for _, input := range []string{
		fmt.Sprintf("P%dW", math.MaxInt/7+1),
		fmt.Sprintf("P%dW", math.MinInt/7-1),
		fmt.Sprintf("P1W%dD", math.MaxInt-6),
		fmt.Sprintf("-P%dD", math.MinInt),
	} {
		_, err := calendars.ParsePeriod(c, input)
		isOverflow(err)
	}

	p, err := calendars.ParsePeriod(c, fmt.Sprintf("P%dW", math.MaxInt/7))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Days, (math.MaxInt/7)*7; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
