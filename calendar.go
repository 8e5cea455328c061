// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// rules is implemented by each calendar system. All methods are pure
// functions of their arguments and are only called with a year, month
// and day that have already been validated.
type rules interface {
	isLeapYear(year int) bool
	lengthOfMonth(year, month int) int
	lengthOfYear(year int) int
	// maxDayOfMonth is the largest day number accepted for the month,
	// it differs from lengthOfMonth for months with missing days.
	maxDayOfMonth(year, month int) int
	dayOfYear(year, month, day int) int
	fromYearDay(year, dayOfYear int) (month, day int)
	epochDay(year, month, day int) int64
	fromEpochDay(epochDay int64) (year, month, day int)
	// intercalary reports days that are outside of the weekly cycle.
	intercalary(year, month, day int) bool
	dayOfWeek(year, month, day int, epochDay int64) int
	aligned(year, month, day int) alignment
}

// normalizer is implemented by calendars that accept days which do not
// exist and map them onto a day that does.
type normalizer interface {
	normalize(year, month, day int) (int, int, int)
}

// alignedResolver is implemented by calendars whose aligned days are
// not contiguous in epoch days, ie. those with intercalary days.
type alignedResolver interface {
	fromAligned(year, alignedDayOfYear int) (month, day int)
}

// alignment holds the day numbers used for aligned weeks, which always
// start on the first day of the month or year.
type alignment struct {
	dayOfMonth, monthLength int
	dayOfYear, yearLength   int
}

type descriptor struct {
	rules
	name      string
	separator byte

	// eras are indexed by era value; unused eras have an empty name.
	eras             [2]string
	minYear, maxYear int
	months           int
	lenient          bool
	ranges           map[Field]ValueRange
}

var descriptors = [...]*descriptor{
	Coptic:             &copticDescriptor,
	BritishCutover:     &britishCutoverDescriptor,
	InternationalFixed: &ifcDescriptor,
	Symmetry010:        &sym010Descriptor,
	Symmetry454:        &sym454Descriptor,
}

// isoWeekday returns the ISO day of the week, Monday is 1 and Sunday is 7.
func isoWeekday(epochDay int64) int {
	return int(floorMod(epochDay+3, 7)) + 1
}

func simpleAlignment(r rules, year, month, day int) alignment {
	return alignment{
		dayOfMonth:  day,
		monthLength: r.lengthOfMonth(year, month),
		dayOfYear:   r.dayOfYear(year, month, day),
		yearLength:  r.lengthOfYear(year),
	}
}

func weeksIn(days int) int64 {
	return int64((days + 6) / 7)
}

func (d *descriptor) eraOf(year int) int {
	if year >= 1 {
		return 1
	}
	return 0
}

func (d *descriptor) yearOfEra(year int) int {
	if year >= 1 {
		return year
	}
	return 1 - year
}

func (d *descriptor) prolepticMonth(year, month int) int64 {
	return int64(year)*int64(d.months) + int64(month) - 1
}

func (d *descriptor) minEpochDay() int64 {
	return d.epochDay(d.minYear, 1, 1)
}

func (d *descriptor) maxEpochDay() int64 {
	return d.epochDay(d.maxYear, d.months, d.lengthOfMonth(d.maxYear, d.months))
}

func (d *descriptor) fieldRange(f Field) ValueRange {
	if r, ok := d.ranges[f]; ok {
		return r
	}
	switch f {
	case MonthOfYear:
		return rangeOf(1, int64(d.months))
	case Year:
		return rangeOf(int64(d.minYear), int64(d.maxYear))
	case YearOfEra:
		return rangeOfVariable(1, int64(d.maxYear), int64(max(d.maxYear, 1-d.minYear)))
	case EraOfYear:
		return rangeOf(int64(d.eraOf(d.minYear)), 1)
	case ProlepticMonth:
		return rangeOf(d.prolepticMonth(d.minYear, 1), d.prolepticMonth(d.maxYear, d.months))
	case EpochDay:
		return rangeOf(d.minEpochDay(), d.maxEpochDay())
	}
	return rangeOf(1, 7)
}

// validate checks the year, month and day against the calendar's rules
// and applies any lenient normalization.
func (d *descriptor) validate(year, month, day int) (int, int, int, error) {
	if year < d.minYear || year > d.maxYear {
		return 0, 0, 0, invalidComponent(Year, int64(year), d.fieldRange(Year))
	}
	if month < 1 || month > d.months {
		return 0, 0, 0, invalidComponent(MonthOfYear, int64(month), d.fieldRange(MonthOfYear))
	}
	if md := d.maxDayOfMonth(year, month); day < 1 || day > md {
		return 0, 0, 0, invalidComponent(DayOfMonth, int64(day), rangeOf(1, int64(md)))
	}
	if d.lenient {
		year, month, day = d.rules.(normalizer).normalize(year, month, day)
	}
	return year, month, day, nil
}
