// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The Symmetry010 and Symmetry454 calendars divide the year into four
// identical quarters of 91 days, each of three months. Symmetry010 uses
// months of 30, 31 and 30 days and Symmetry454 months of 4, 5 and 4
// weeks. Leap years add a week to the end of December. A year is a leap
// year when (52 * year + 146) mod 293 < 52, which spaces 52 leap weeks
// evenly over a 293 year cycle. Every year starts on a Monday and
// 0001-01-01 is ISO 0001-01-01.
type symmetry struct {
	pattern [3]int
}

const (
	symDaysInQuarter  = 91
	symDaysInYear     = 364
	symDaysInLeapYear = 371
	symCycleYears     = 293
	symLeapsPerCycle  = 52
	symLeapOffset     = 146

	// epoch day of ISO 0001-01-01.
	symEpochShift = 719162

	// days in a 293 year cycle.
	symDaysPerCycle = symCycleYears*symDaysInYear + symLeapsPerCycle*7
)

var sym010Descriptor = descriptor{
	rules:     symmetry{pattern: [3]int{30, 31, 30}},
	name:      "Sym010",
	separator: '/',
	eras:      [2]string{"BCE", "CE"},
	minYear:   -1_000_000,
	maxYear:   1_000_000,
	months:    12,
	ranges: map[Field]ValueRange{
		DayOfMonth:         rangeOfVariable(1, 30, 37),
		DayOfYear:          rangeOfVariable(1, symDaysInYear, symDaysInLeapYear),
		AlignedWeekOfMonth: rangeOfVariable(1, 5, 6),
		AlignedWeekOfYear:  rangeOfVariable(1, 52, 53),
	},
}

var sym454Descriptor = descriptor{
	rules:     symmetry{pattern: [3]int{28, 35, 28}},
	name:      "Sym454",
	separator: '/',
	eras:      [2]string{"BCE", "CE"},
	minYear:   -1_000_000,
	maxYear:   1_000_000,
	months:    12,
	ranges: map[Field]ValueRange{
		DayOfMonth:         rangeOfVariable(1, 28, 35),
		DayOfYear:          rangeOfVariable(1, symDaysInYear, symDaysInLeapYear),
		AlignedWeekOfMonth: rangeOfVariable(1, 4, 5),
		AlignedWeekOfYear:  rangeOfVariable(1, 52, 53),
	},
}

func (symmetry) isLeapYear(year int) bool {
	return floorMod(symLeapsPerCycle*int64(year)+symLeapOffset, symCycleYears) < symLeapsPerCycle
}

// leapYearsBefore returns the number of leap years between year 1 and
// year-1 inclusive, negative for years before 1.
func leapYearsBefore(year int64) int64 {
	return floorDiv(symLeapsPerCycle*(year-1)+symLeapOffset, symCycleYears)
}

func symYearStart(year int64) int64 {
	return -symEpochShift + symDaysInYear*(year-1) + 7*leapYearsBefore(year)
}

func (s symmetry) lengthOfMonth(year, month int) int {
	n := s.pattern[(month-1)%3]
	if month == 12 && s.isLeapYear(year) {
		n += 7
	}
	return n
}

func (s symmetry) lengthOfYear(year int) int {
	if s.isLeapYear(year) {
		return symDaysInLeapYear
	}
	return symDaysInYear
}

func (s symmetry) maxDayOfMonth(year, month int) int {
	return s.lengthOfMonth(year, month)
}

func (s symmetry) dayOfYear(_, month, day int) int {
	doy := (month-1)/3*symDaysInQuarter + day
	for i := range (month - 1) % 3 {
		doy += s.pattern[i]
	}
	return doy
}

func (s symmetry) fromYearDay(_, dayOfYear int) (int, int) {
	d0 := dayOfYear - 1
	// The leap week extends the last month of the fourth quarter.
	q := min(d0/symDaysInQuarter, 3)
	r := d0 - q*symDaysInQuarter
	switch {
	case r < s.pattern[0]:
		return 3*q + 1, r + 1
	case r < s.pattern[0]+s.pattern[1]:
		return 3*q + 2, r - s.pattern[0] + 1
	}
	return 3*q + 3, r - s.pattern[0] - s.pattern[1] + 1
}

func (s symmetry) epochDay(year, month, day int) int64 {
	return symYearStart(int64(year)) + int64(s.dayOfYear(year, month, day)) - 1
}

func (s symmetry) fromEpochDay(epochDay int64) (int, int, int) {
	year := floorDiv(symCycleYears*(epochDay+symEpochShift), symDaysPerCycle) + 1
	for symYearStart(year) > epochDay {
		year--
	}
	for symYearStart(year+1) <= epochDay {
		year++
	}
	m, d := s.fromYearDay(int(year), int(epochDay-symYearStart(year))+1)
	return int(year), m, d
}

func (symmetry) intercalary(_, _, _ int) bool {
	return false
}

func (symmetry) dayOfWeek(_, _, _ int, epochDay int64) int {
	return isoWeekday(epochDay)
}

func (s symmetry) aligned(year, month, day int) alignment {
	return simpleAlignment(s, year, month, day)
}
