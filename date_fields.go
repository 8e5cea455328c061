// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// Range returns the valid values for f given the date's year and month.
// Unlike Chronology.Range, the ranges for DayOfMonth, DayOfYear and the
// aligned week fields reflect the date's own month and year.
func (d Date) Range(f Field) (ValueRange, error) {
	if !f.IsDateBased() {
		return ValueRange{}, &UnsupportedFieldError{Field: f}
	}
	desc := d.chrono.desc()
	intercalary := desc.intercalary(d.year, d.month, d.day)
	switch f {
	case DayOfWeek, AlignedDayOfWeekInMonth, AlignedDayOfWeekInYear:
		if intercalary {
			return rangeOf(0, 0), nil
		}
		return rangeOf(1, 7), nil
	case AlignedWeekOfMonth, AlignedWeekOfYear:
		if intercalary {
			return rangeOf(0, 0), nil
		}
		a := desc.aligned(d.year, d.month, d.day)
		if f == AlignedWeekOfMonth {
			return rangeOf(1, weeksIn(a.monthLength)), nil
		}
		return rangeOf(1, weeksIn(a.yearLength)), nil
	case DayOfMonth:
		return rangeOf(1, int64(desc.maxDayOfMonth(d.year, d.month))), nil
	case DayOfYear:
		return rangeOf(1, int64(desc.lengthOfYear(d.year))), nil
	case YearOfEra:
		if d.year >= 1 {
			return rangeOf(1, int64(desc.maxYear)), nil
		}
		return rangeOf(1, int64(1-desc.minYear)), nil
	}
	return desc.fieldRange(f), nil
}

// Get returns the value of the specified field.
func (d Date) Get(f Field) (int64, error) {
	if !f.IsDateBased() {
		return 0, &UnsupportedFieldError{Field: f}
	}
	desc := d.chrono.desc()
	switch f {
	case DayOfWeek:
		return int64(d.DayOfWeek()), nil
	case AlignedDayOfWeekInMonth, AlignedDayOfWeekInYear, AlignedWeekOfMonth, AlignedWeekOfYear:
		if desc.intercalary(d.year, d.month, d.day) {
			return 0, nil
		}
		a := desc.aligned(d.year, d.month, d.day)
		switch f {
		case AlignedDayOfWeekInMonth:
			return int64((a.dayOfMonth-1)%7 + 1), nil
		case AlignedDayOfWeekInYear:
			return int64((a.dayOfYear-1)%7 + 1), nil
		case AlignedWeekOfMonth:
			return int64((a.dayOfMonth-1)/7 + 1), nil
		}
		return int64((a.dayOfYear-1)/7 + 1), nil
	case DayOfMonth:
		return int64(d.day), nil
	case DayOfYear:
		return int64(d.DayOfYear()), nil
	case EpochDay:
		return d.EpochDay(), nil
	case MonthOfYear:
		return int64(d.month), nil
	case ProlepticMonth:
		return d.ProlepticMonth(), nil
	case YearOfEra:
		return int64(d.YearOfEra()), nil
	case Year:
		return int64(d.year), nil
	}
	return int64(desc.eraOf(d.year)), nil
}

// With returns a copy of the date with the specified field set to value.
// The value must lie within the range returned by Range for the field.
//
// Setting Year, YearOfEra or EraOfYear keeps the month and day, moving
// the day back to the last day of the month if it does not exist in the
// new year. Setting MonthOfYear, DayOfMonth or DayOfYear fails if the
// resulting date is invalid. The week based fields move the date by
// days or weeks within its current month or year, ProlepticMonth moves
// it by months.
func (d Date) With(f Field, value int64) (Date, error) {
	r, err := d.Range(f)
	if err != nil {
		return Date{}, err
	}
	if !r.IsValidValue(value) {
		return Date{}, invalidComponent(f, value, r)
	}
	current, _ := d.Get(f)
	if current == value {
		return d, nil
	}
	c := d.chrono
	switch f {
	case DayOfWeek, AlignedDayOfWeekInMonth, AlignedDayOfWeekInYear:
		return d.plusDays(value - current)
	case AlignedWeekOfMonth, AlignedWeekOfYear:
		if ar, ok := c.desc().rules.(alignedResolver); ok {
			a := c.desc().aligned(d.year, d.month, d.day)
			m, dd := ar.fromAligned(d.year, a.dayOfYear+int(value-current)*7)
			return c.Date(d.year, m, dd)
		}
		return d.plusDays((value - current) * 7)
	case DayOfMonth:
		return c.Date(d.year, d.month, int(value))
	case DayOfYear:
		return c.DateYearDay(d.year, int(value))
	case EpochDay:
		return c.DateEpochDay(value)
	case MonthOfYear:
		return c.Date(d.year, int(value), d.day)
	case ProlepticMonth:
		return d.plusMonths(value - current)
	case YearOfEra:
		if d.year >= 1 {
			return d.resolvePrevious(value, d.month, d.day)
		}
		return d.resolvePrevious(1-value, d.month, d.day)
	case Year:
		return d.resolvePrevious(value, d.month, d.day)
	}
	// EraOfYear, the year of era is retained.
	return d.resolvePrevious(1-int64(d.year), d.month, d.day)
}

// resolvePrevious returns the date for year, month and day, moving the
// day back to the last valid day of the month if needed.
func (d Date) resolvePrevious(year int64, month, day int) (Date, error) {
	desc := d.chrono.desc()
	if r := desc.fieldRange(Year); !r.IsValidValue(year) {
		return Date{}, invalidComponent(Year, year, r)
	}
	y := int(year)
	return d.chrono.Date(y, month, min(day, desc.maxDayOfMonth(y, month)))
}

// Adjuster computes a new date from an existing one.
type Adjuster func(Date) (Date, error)

// Adjust returns the result of applying adj to the date.
func (d Date) Adjust(adj Adjuster) (Date, error) {
	return adj(d)
}

// FirstDayOfMonth is an Adjuster that returns the first day of the month.
func FirstDayOfMonth(d Date) (Date, error) {
	return d.chrono.Date(d.year, d.month, 1)
}

// LastDayOfMonth is an Adjuster that returns the last day of the month.
func LastDayOfMonth(d Date) (Date, error) {
	desc := d.chrono.desc()
	return d.chrono.Date(d.year, d.month, desc.maxDayOfMonth(d.year, d.month))
}

// FirstDayOfYear is an Adjuster that returns the first day of the year.
func FirstDayOfYear(d Date) (Date, error) {
	return d.chrono.DateYearDay(d.year, 1)
}

// LastDayOfYear is an Adjuster that returns the last day of the year.
func LastDayOfYear(d Date) (Date, error) {
	return d.chrono.DateYearDay(d.year, d.LengthOfYear())
}

// FirstDayOfNextMonth is an Adjuster that returns the first day of the
// following month.
func FirstDayOfNextMonth(d Date) (Date, error) {
	f, err := FirstDayOfMonth(d)
	if err != nil {
		return Date{}, err
	}
	return f.plusMonths(1)
}

// FirstDayOfNextYear is an Adjuster that returns the first day of the
// following year.
func FirstDayOfNextYear(d Date) (Date, error) {
	return d.chrono.DateYearDay(d.year+1, 1)
}
