// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinISOYear and MaxISOYear bound the years for which conversions
	// between epoch days and ISODate are exact.
	MinISOYear = -999_999_999
	MaxISOYear = 999_999_999

	// days from ISO 0000-03-01 to 1970-01-01.
	isoShift = 719468

	// days in a 400 year Gregorian era.
	daysPer400Years = 146097

	// epoch day of Julian 0001-01-01.
	julianEpochShift = 719164

	// days in a 4 year Julian cycle.
	daysPer4Years = 1461
)

// ISODate represents a date in the proleptic ISO (Gregorian) calendar and
// is used as the interchange type between chronologies.
type ISODate struct {
	Year  int
	Month int
	Day   int
}

// NewISODate returns the ISODate for the specified year, month and day
// after validating each of them.
func NewISODate(year, month, day int) (ISODate, error) {
	if year < MinISOYear || year > MaxISOYear {
		return ISODate{}, invalidComponent(Year, int64(year), rangeOf(MinISOYear, MaxISOYear))
	}
	if month < 1 || month > 12 {
		return ISODate{}, invalidComponent(MonthOfYear, int64(month), rangeOf(1, 12))
	}
	if dm := gregorianMonthLength(year, month); day < 1 || day > dm {
		return ISODate{}, invalidComponent(DayOfMonth, int64(day), rangeOf(1, int64(dm)))
	}
	return ISODate{Year: year, Month: month, Day: day}, nil
}

// ISODateFromEpochDay returns the ISODate for the specified epoch day.
func ISODateFromEpochDay(epochDay int64) ISODate {
	y, m, d := isoFromEpochDay(epochDay)
	return ISODate{Year: y, Month: m, Day: d}
}

// ISODateFromTime returns the ISODate for the date component of t in
// t's location.
func ISODateFromTime(t time.Time) ISODate {
	y, m, d := t.Date()
	return ISODate{Year: y, Month: int(m), Day: d}
}

// EpochDay returns the number of days since 1970-01-01.
func (d ISODate) EpochDay() int64 {
	return isoEpochDay(d.Year, d.Month, d.Day)
}

// DayOfYear returns the 1-based day of the year.
func (d ISODate) DayOfYear() int {
	return int(d.EpochDay()-isoEpochDay(d.Year, 1, 1)) + 1
}

// Weekday returns the day of the week.
func (d ISODate) Weekday() time.Weekday {
	return time.Weekday(floorMod(d.EpochDay()+4, 7))
}

// IsLeapYear returns true if the date's year is a Gregorian leap year.
func (d ISODate) IsLeapYear() bool {
	return gregorianLeap(d.Year)
}

// Time returns the time.Time for midnight at the start of the date
// in the specified location.
func (d ISODate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (d ISODate) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func gregorianLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

func julianLeap(y int) bool {
	return floorMod(int64(y), 4) == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func monthLength(month int, leap bool) int {
	if month == 2 && leap {
		return 29
	}
	return monthDays[month-1]
}

func gregorianMonthLength(y, m int) int {
	return monthLength(m, gregorianLeap(y))
}

// isoEpochDay converts a proleptic Gregorian date to an epoch day using
// a calendar that starts on March 1st so that the leap day is the
// last day of the year.
func isoEpochDay(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := int64(month) - 3
	if month <= 2 {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - isoShift
}

func isoFromEpochDay(epochDay int64) (year, month, day int) {
	z := epochDay + isoShift
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	month = int(mp + 3)
	if mp >= 10 {
		month = int(mp - 9)
	}
	year = int(yoe + era*400)
	if month <= 2 {
		year++
	}
	return
}

func julianEpochDay(year, month, day int) int64 {
	leap := julianLeap(year)
	doy := day
	for m := 1; m < month; m++ {
		doy += monthLength(m, leap)
	}
	y := int64(year) - 1
	return -julianEpochShift + 365*y + floorDiv(y, 4) + int64(doy) - 1
}

func julianFromEpochDay(epochDay int64) (year, month, day int) {
	zero := epochDay + julianEpochShift
	cycle := floorDiv(zero, daysPer4Years)
	rem := floorMod(zero, daysPer4Years)
	yearInCycle := min(rem/365, 3)
	year = int(1 + 4*cycle + yearInCycle)
	doy := int(rem - 365*yearInCycle)
	leap := julianLeap(year)
	month = 1
	for doy >= monthLength(month, leap) {
		doy -= monthLength(month, leap)
		month++
	}
	return year, month, doy + 1
}

func addExact(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, fmt.Errorf("%v + %v: %w", a, b, ErrOverflow)
	}
	return s, nil
}

func mulExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%v * %v: %w", a, b, ErrOverflow)
	}
	return r, nil
}

// toInt narrows v to an int, failing on platforms where int is 32 bits.
func toInt(v int64) (int, error) {
	if v < math.MinInt || v > math.MaxInt {
		return 0, fmt.Errorf("%v: %w", v, ErrOverflow)
	}
	return int(v), nil
}
