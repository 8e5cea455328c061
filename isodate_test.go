// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/calendars"
)

func TestISOEpochDay(t *testing.T) {
	for i, tc := range []struct {
		iso      calendars.ISODate
		epochDay int64
	}{
		{calendars.ISODate{Year: 1970, Month: 1, Day: 1}, 0},
		{calendars.ISODate{Year: 1969, Month: 12, Day: 31}, -1},
		{calendars.ISODate{Year: 2000, Month: 1, Day: 1}, 10957},
		{calendars.ISODate{Year: 2000, Month: 3, Day: 1}, 11017},
		{calendars.ISODate{Year: 1, Month: 1, Day: 1}, -719162},
		{calendars.ISODate{Year: 0, Month: 12, Day: 31}, -719163},
		{calendars.ISODate{Year: 1752, Month: 9, Day: 14}, -79366},
		{calendars.ISODate{Year: 284, Month: 8, Day: 29}, -615558},
	} {
		if got, want := tc.iso.EpochDay(), tc.epochDay; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.iso, got, want)
		}
		if got, want := calendars.ISODateFromEpochDay(tc.epochDay), tc.iso; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.epochDay, got, want)
		}
	}
}

func TestISORoundTrip(t *testing.T) {
	for ed := int64(-1_000_000); ed < 1_000_000; ed += 97 {
		iso := calendars.ISODateFromEpochDay(ed)
		if got, want := iso.EpochDay(), ed; got != want {
			t.Fatalf("%v: got %v, want %v", iso, got, want)
		}
	}
	for _, year := range []int{calendars.MinISOYear, -400, 1600, calendars.MaxISOYear} {
		iso := calendars.ISODate{Year: year, Month: 12, Day: 31}
		if got, want := calendars.ISODateFromEpochDay(iso.EpochDay()), iso; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestISOAgreesWithTime(t *testing.T) {
	start := time.Date(1600, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 200_000; day += 13 {
		tm := start.AddDate(0, 0, day)
		iso := calendars.ISODateFromTime(tm)
		ed := tm.Unix() / (24 * 60 * 60)
		if got, want := iso.EpochDay(), ed; got != want {
			t.Fatalf("%v: got %v, want %v", iso, got, want)
		}
		if got, want := iso.Weekday(), tm.Weekday(); got != want {
			t.Fatalf("%v: got %v, want %v", iso, got, want)
		}
		if got, want := iso.DayOfYear(), tm.YearDay(); got != want {
			t.Fatalf("%v: got %v, want %v", iso, got, want)
		}
		if got, want := iso.Time(time.UTC), tm; !got.Equal(want) {
			t.Fatalf("%v: got %v, want %v", iso, got, want)
		}
	}
}

func TestNewISODate(t *testing.T) {
	if _, err := calendars.NewISODate(2024, 2, 29); err != nil {
		t.Fatal(err)
	}
	for i, tc := range []struct {
		y, m, d int
		field   calendars.Field
	}{
		{2023, 2, 29, calendars.DayOfMonth},
		{2023, 13, 1, calendars.MonthOfYear},
		{2023, 4, 31, calendars.DayOfMonth},
		{calendars.MaxISOYear + 1, 1, 1, calendars.Year},
	} {
		_, err := calendars.NewISODate(tc.y, tc.m, tc.d)
		var ide *calendars.InvalidDateComponentError
		if !errors.As(err, &ide) {
			t.Errorf("%v: expected an InvalidDateComponentError: %v", i, err)
			continue
		}
		if got, want := ide.Field, tc.field; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if !errors.Is(err, calendars.ErrInvalidDateComponent) {
			t.Errorf("%v: errors.Is failed for %v", i, err)
		}
	}
	if got, want := (calendars.ISODate{Year: -5, Month: 1, Day: 2}).String(), "-0005-01-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
