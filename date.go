// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"time"
)

// Date represents a date in one of the supported chronologies. Dates
// are immutable, comparable values; two dates are == only if they share
// the same chronology, use IsEqual to compare dates from different
// chronologies.
//
// The zero value is not a valid date. IsZero, Chronology, String and the
// comparison methods accept it, the zero Date is before every valid
// date; all other methods panic when called on it.
type Date struct {
	chrono           Chronology
	year, month, day int
}

// Chronology returns the chronology of the date.
func (d Date) Chronology() Chronology {
	return d.chrono
}

// IsZero returns true for the zero value.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Year returns the proleptic year.
func (d Date) Year() int {
	return d.year
}

// Month returns the 1-based month of the year.
func (d Date) Month() int {
	return d.month
}

// Day returns the 1-based day of the month.
func (d Date) Day() int {
	return d.day
}

// Era returns the era of the date.
func (d Date) Era() Era {
	return Era{chrono: d.chrono, value: d.chrono.desc().eraOf(d.year)}
}

// YearOfEra returns the year within the date's era.
func (d Date) YearOfEra() int {
	return d.chrono.desc().yearOfEra(d.year)
}

// DayOfYear returns the 1-based day of the year.
func (d Date) DayOfYear() int {
	return d.chrono.desc().dayOfYear(d.year, d.month, d.day)
}

// DayOfWeek returns the day of the week, 1 for Monday through to 7 for
// Sunday, or 0 for days that are not part of any week.
func (d Date) DayOfWeek() int {
	return d.chrono.desc().dayOfWeek(d.year, d.month, d.day, d.EpochDay())
}

// IsIntercalary returns true for days that are not part of any week,
// that is, the International Fixed calendar's Year Day and Leap Day.
func (d Date) IsIntercalary() bool {
	return d.chrono.desc().intercalary(d.year, d.month, d.day)
}

// EpochDay returns the number of days since ISO 1970-01-01.
func (d Date) EpochDay() int64 {
	return d.chrono.desc().epochDay(d.year, d.month, d.day)
}

// ProlepticMonth returns the number of months since month 1 of year 0.
func (d Date) ProlepticMonth() int64 {
	return d.chrono.desc().prolepticMonth(d.year, d.month)
}

// IsLeapYear returns true if the date's year is a leap year.
func (d Date) IsLeapYear() bool {
	return d.chrono.desc().isLeapYear(d.year)
}

// LengthOfMonth returns the number of days in the date's month.
func (d Date) LengthOfMonth() int {
	return d.chrono.desc().lengthOfMonth(d.year, d.month)
}

// LengthOfYear returns the number of days in the date's year.
func (d Date) LengthOfYear() int {
	return d.chrono.desc().lengthOfYear(d.year)
}

// ISO returns the equivalent ISO date.
func (d Date) ISO() ISODate {
	return ISODateFromEpochDay(d.EpochDay())
}

// Time returns midnight at the start of the date in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	return d.ISO().Time(loc)
}

// In returns the equivalent date in another chronology.
func (d Date) In(c Chronology) (Date, error) {
	if c == d.chrono {
		return d, nil
	}
	return c.DateEpochDay(d.EpochDay())
}

// Compare returns -1, 0 or +1 depending on whether d is before, the same
// day as, or after other. Dates in different chronologies are compared
// by epoch day. The zero Date is before all other dates.
func (d Date) Compare(other Date) int {
	switch dz, oz := d.IsZero(), other.IsZero(); {
	case dz && oz:
		return 0
	case dz:
		return -1
	case oz:
		return 1
	}
	a, b := d.EpochDay(), other.EpochDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before returns true if d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After returns true if d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// IsEqual returns true if d and other refer to the same day, regardless
// of chronology.
func (d Date) IsEqual(other Date) bool {
	return d.Compare(other) == 0
}

// String returns the date in the form "<chronology> <era> <year-of-era>-<mm>-<dd>",
// eg. "Coptic AM 1740-01-05" or "Sym454 CE 2015/12/35".
func (d Date) String() string {
	if d.IsZero() {
		return "<zero date>"
	}
	desc := d.chrono.desc()
	return fmt.Sprintf("%s %s %d%c%02d%c%02d",
		desc.name, d.Era(), d.YearOfEra(),
		desc.separator, d.month, desc.separator, d.day)
}
