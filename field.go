// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "fmt"

// Field identifies a component of a date that can be read using Date.Get,
// written using Date.With and whose valid values are reported by
// Date.Range and Chronology.Range. The time of day fields are defined so
// that they can be rejected with ErrUnsupportedField.
type Field int

const (
	DayOfWeek Field = iota + 1
	AlignedDayOfWeekInMonth
	AlignedDayOfWeekInYear
	DayOfMonth
	DayOfYear
	EpochDay
	AlignedWeekOfMonth
	AlignedWeekOfYear
	MonthOfYear
	ProlepticMonth
	YearOfEra
	Year
	EraOfYear
	NanoOfSecond
	NanoOfDay
	SecondOfMinute
	SecondOfDay
	MinuteOfHour
	MinuteOfDay
	HourOfDay
	AmPmOfDay
	InstantSeconds
	OffsetSeconds
)

var fieldNames = []string{
	"",
	"DayOfWeek",
	"AlignedDayOfWeekInMonth",
	"AlignedDayOfWeekInYear",
	"DayOfMonth",
	"DayOfYear",
	"EpochDay",
	"AlignedWeekOfMonth",
	"AlignedWeekOfYear",
	"MonthOfYear",
	"ProlepticMonth",
	"YearOfEra",
	"Year",
	"Era",
	"NanoOfSecond",
	"NanoOfDay",
	"SecondOfMinute",
	"SecondOfDay",
	"MinuteOfHour",
	"MinuteOfDay",
	"HourOfDay",
	"AmPmOfDay",
	"InstantSeconds",
	"OffsetSeconds",
}

func (f Field) String() string {
	if f > 0 && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// IsDateBased returns true for the fields supported by Date.
func (f Field) IsDateBased() bool {
	return f >= DayOfWeek && f <= EraOfYear
}

// ValueRange represents the valid values for a field. Min and Max are the
// absolute bounds, LargestMin and SmallestMax allow for ranges that vary
// by context, such as the number of days in a month which for the ISO
// calendar is represented as {1, 1, 28, 31}.
type ValueRange struct {
	Min, LargestMin, SmallestMax, Max int64
}

func rangeOf(min, max int64) ValueRange {
	return ValueRange{Min: min, LargestMin: min, SmallestMax: max, Max: max}
}

func rangeOfVariable(min, smallestMax, max int64) ValueRange {
	return ValueRange{Min: min, LargestMin: min, SmallestMax: smallestMax, Max: max}
}

// IsFixed returns true if the range does not vary by context.
func (r ValueRange) IsFixed() bool {
	return r.Min == r.LargestMin && r.SmallestMax == r.Max
}

// IsValidValue returns true if v lies within Min and Max inclusive.
func (r ValueRange) IsValidValue(v int64) bool {
	return v >= r.Min && v <= r.Max
}

func (r ValueRange) String() string {
	lo := fmt.Sprintf("%d", r.Min)
	if r.Min != r.LargestMin {
		lo = fmt.Sprintf("%d/%d", r.Min, r.LargestMin)
	}
	hi := fmt.Sprintf("%d", r.Max)
	if r.SmallestMax != r.Max {
		hi = fmt.Sprintf("%d/%d", r.SmallestMax, r.Max)
	}
	return lo + " - " + hi
}
