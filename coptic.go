// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The Coptic calendar has 12 months of 30 days followed by a 13th month
// of 5 days, or 6 in leap years. Every fourth year, those for which
// year % 4 == 3, is a leap year. Coptic 0001-01-01 (AM) is Julian
// 0284-08-29.
type coptic struct{}

const copticEpochShift = 615558

var copticDescriptor = descriptor{
	rules:     coptic{},
	name:      "Coptic",
	separator: '-',
	eras:      [2]string{"", "AM"},
	minYear:   1,
	maxYear:   999_999,
	months:    13,
	ranges: map[Field]ValueRange{
		DayOfMonth:         rangeOfVariable(1, 5, 30),
		DayOfYear:          rangeOfVariable(1, 365, 366),
		AlignedWeekOfMonth: rangeOfVariable(1, 1, 5),
		AlignedWeekOfYear:  rangeOfVariable(1, 53, 53),
	},
}

func (coptic) isLeapYear(year int) bool {
	return floorMod(int64(year), 4) == 3
}

func (c coptic) lengthOfMonth(year, month int) int {
	if month != 13 {
		return 30
	}
	if c.isLeapYear(year) {
		return 6
	}
	return 5
}

func (c coptic) lengthOfYear(year int) int {
	if c.isLeapYear(year) {
		return 366
	}
	return 365
}

func (c coptic) maxDayOfMonth(year, month int) int {
	return c.lengthOfMonth(year, month)
}

func (coptic) dayOfYear(_, month, day int) int {
	return (month-1)*30 + day
}

func (coptic) fromYearDay(_, dayOfYear int) (int, int) {
	return (dayOfYear-1)/30 + 1, (dayOfYear-1)%30 + 1
}

func copticYearStart(year int64) int64 {
	return (year-1)*365 + floorDiv(year, 4)
}

func (c coptic) epochDay(year, month, day int) int64 {
	return copticYearStart(int64(year)) + int64(c.dayOfYear(year, month, day)) - 1 - copticEpochShift
}

func (c coptic) fromEpochDay(epochDay int64) (int, int, int) {
	cd := epochDay + copticEpochShift
	year := floorDiv(4*cd+1463, 1461)
	m, d := c.fromYearDay(int(year), int(cd-copticYearStart(year))+1)
	return int(year), m, d
}

func (coptic) intercalary(_, _, _ int) bool {
	return false
}

func (coptic) dayOfWeek(_, _, _ int, epochDay int64) int {
	return isoWeekday(epochDay)
}

func (c coptic) aligned(year, month, day int) alignment {
	return simpleAlignment(c, year, month, day)
}
