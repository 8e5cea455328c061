// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The International Fixed calendar has 13 months of 28 days. Year Day
// follows the last day of the 13th month and, in Gregorian leap years,
// Leap Day follows the last day of the 6th month. Neither belongs to a
// week; they are represented as day 29 of months 13 and 6 respectively.
type ifc struct{}

const (
	ifcDaysInMonth = 28
	ifcLeapMonth   = 6
	ifcYearDayDoy  = 365
	ifcLeapDayDoy  = ifcLeapMonth*ifcDaysInMonth + 1
)

var ifcDescriptor = descriptor{
	rules:     ifc{},
	name:      "Ifc",
	separator: '/',
	eras:      [2]string{"", "CE"},
	minYear:   1,
	maxYear:   1_000_000,
	months:    13,
	ranges: map[Field]ValueRange{
		DayOfWeek:               {Min: 0, LargestMin: 1, SmallestMax: 7, Max: 7},
		AlignedDayOfWeekInMonth: {Min: 0, LargestMin: 1, SmallestMax: 7, Max: 7},
		AlignedDayOfWeekInYear:  {Min: 0, LargestMin: 1, SmallestMax: 7, Max: 7},
		DayOfMonth:              rangeOfVariable(1, 28, 29),
		DayOfYear:               rangeOfVariable(1, 365, 366),
		AlignedWeekOfMonth:      {Min: 0, LargestMin: 1, SmallestMax: 4, Max: 4},
		AlignedWeekOfYear:       {Min: 0, LargestMin: 1, SmallestMax: 52, Max: 52},
	},
}

func (ifc) isLeapYear(year int) bool {
	return gregorianLeap(year)
}

func (i ifc) lengthOfMonth(year, month int) int {
	if month == 13 || (month == ifcLeapMonth && i.isLeapYear(year)) {
		return ifcDaysInMonth + 1
	}
	return ifcDaysInMonth
}

func (i ifc) lengthOfYear(year int) int {
	if i.isLeapYear(year) {
		return 366
	}
	return 365
}

func (i ifc) maxDayOfMonth(year, month int) int {
	return i.lengthOfMonth(year, month)
}

func (i ifc) dayOfYear(year, month, day int) int {
	doy := (month-1)*ifcDaysInMonth + day
	if month > ifcLeapMonth && i.isLeapYear(year) {
		doy++
	}
	return doy
}

func (i ifc) fromYearDay(year, dayOfYear int) (int, int) {
	if i.isLeapYear(year) {
		if dayOfYear == ifcLeapDayDoy {
			return ifcLeapMonth, ifcDaysInMonth + 1
		}
		if dayOfYear > ifcLeapDayDoy {
			dayOfYear--
		}
	}
	if dayOfYear == ifcYearDayDoy {
		return 13, ifcDaysInMonth + 1
	}
	return (dayOfYear-1)/ifcDaysInMonth + 1, (dayOfYear-1)%ifcDaysInMonth + 1
}

func (i ifc) epochDay(year, month, day int) int64 {
	return isoEpochDay(year, 1, 1) + int64(i.dayOfYear(year, month, day)) - 1
}

func (i ifc) fromEpochDay(epochDay int64) (int, int, int) {
	year, _, _ := isoFromEpochDay(epochDay)
	doy := int(epochDay-isoEpochDay(year, 1, 1)) + 1
	m, d := i.fromYearDay(year, doy)
	return year, m, d
}

func (ifc) intercalary(_, _, day int) bool {
	return day > ifcDaysInMonth
}

func (i ifc) dayOfWeek(year, month, day int, _ int64) int {
	if i.intercalary(year, month, day) {
		return 0
	}
	return (day-1)%7 + 1
}

func (ifc) aligned(_, month, day int) alignment {
	return alignment{
		dayOfMonth:  day,
		monthLength: ifcDaysInMonth,
		dayOfYear:   (month-1)*ifcDaysInMonth + day,
		yearLength:  13 * ifcDaysInMonth,
	}
}

// fromAligned maps a day of the 364 day weekly cycle onto the month and
// day that it falls on.
func (ifc) fromAligned(_, alignedDayOfYear int) (int, int) {
	return (alignedDayOfYear-1)/ifcDaysInMonth + 1, (alignedDayOfYear-1)%ifcDaysInMonth + 1
}
