// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// The British cutover calendar follows the Julian calendar until
// 1752-09-02 and the Gregorian calendar from 1752-09-14 onwards. The
// 11 days between them never existed, but dates that fall within the gap
// are accepted and normalized to 1752-09-14.
type britishCutover struct{}

const (
	cutoverYear     = 1752
	cutoverMonth    = 9
	cutoverFirstDay = 3
	cutoverLastDay  = 13
	cutoverDays     = 11

	// ISO 1752-09-14.
	cutoverEpochDay int64 = -79366
)

var britishCutoverDescriptor = descriptor{
	rules:     britishCutover{},
	name:      "BritishCutover",
	separator: '-',
	eras:      [2]string{"BC", "AD"},
	minYear:   -999_998,
	maxYear:   999_999,
	months:    12,
	lenient:   true,
	ranges: map[Field]ValueRange{
		DayOfMonth:         rangeOfVariable(1, 28, 31),
		DayOfYear:          rangeOfVariable(1, 355, 366),
		AlignedWeekOfMonth: rangeOfVariable(1, 3, 5),
		AlignedWeekOfYear:  rangeOfVariable(1, 51, 53),
	},
}

func isCutoverMonth(year, month int) bool {
	return year == cutoverYear && month == cutoverMonth
}

func beforeCutover(year, month, day int) bool {
	if year != cutoverYear {
		return year < cutoverYear
	}
	if month != cutoverMonth {
		return month < cutoverMonth
	}
	return day < cutoverFirstDay
}

func (britishCutover) isLeapYear(year int) bool {
	if year <= cutoverYear {
		return julianLeap(year)
	}
	return gregorianLeap(year)
}

func (b britishCutover) lengthOfMonth(year, month int) int {
	if isCutoverMonth(year, month) {
		return 30 - cutoverDays
	}
	return monthLength(month, b.isLeapYear(year))
}

func (b britishCutover) lengthOfYear(year int) int {
	n := 365
	if b.isLeapYear(year) {
		n++
	}
	if year == cutoverYear {
		n -= cutoverDays
	}
	return n
}

func (b britishCutover) maxDayOfMonth(year, month int) int {
	return monthLength(month, b.isLeapYear(year))
}

func (britishCutover) normalize(year, month, day int) (int, int, int) {
	if isCutoverMonth(year, month) && day >= cutoverFirstDay && day <= cutoverLastDay {
		return year, month, cutoverLastDay + 1
	}
	return year, month, day
}

func (b britishCutover) dayOfYear(year, month, day int) int {
	return int(b.epochDay(year, month, day)-b.epochDay(year, 1, 1)) + 1
}

func (b britishCutover) fromYearDay(year, dayOfYear int) (int, int) {
	_, m, d := b.fromEpochDay(b.epochDay(year, 1, 1) + int64(dayOfYear) - 1)
	return m, d
}

func (britishCutover) epochDay(year, month, day int) int64 {
	if beforeCutover(year, month, day) {
		return julianEpochDay(year, month, day)
	}
	return isoEpochDay(year, month, day)
}

func (britishCutover) fromEpochDay(epochDay int64) (int, int, int) {
	if epochDay >= cutoverEpochDay {
		return isoFromEpochDay(epochDay)
	}
	return julianFromEpochDay(epochDay)
}

func (britishCutover) intercalary(_, _, _ int) bool {
	return false
}

func (britishCutover) dayOfWeek(_, _, _ int, epochDay int64) int {
	return isoWeekday(epochDay)
}

func (b britishCutover) aligned(year, month, day int) alignment {
	a := simpleAlignment(b, year, month, day)
	if isCutoverMonth(year, month) && day > cutoverLastDay {
		a.dayOfMonth -= cutoverDays
	}
	return a
}
