// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "math"

// Plus returns the date that is amount units after d. Days and Weeks are
// exact and always invertible. Months, Years, Decades, Centuries and
// Millennia retain the day of the month unless it does not exist in the
// resulting month, in which case the last day of that month is used, and
// hence Minus may not restore the original date. Eras changes the era
// whilst retaining the year of era.
func (d Date) Plus(amount int64, unit Unit) (Date, error) {
	if !unit.IsDateBased() {
		return Date{}, &UnsupportedUnitError{Unit: unit}
	}
	if amount == 0 {
		return d, nil
	}
	switch unit {
	case Days:
		return d.plusDays(amount)
	case Weeks:
		days, err := mulExact(amount, 7)
		if err != nil {
			return Date{}, err
		}
		return d.plusDays(days)
	case Months:
		return d.plusMonths(amount)
	case Eras:
		era, err := addExact(int64(d.chrono.desc().eraOf(d.year)), amount)
		if err != nil {
			return Date{}, err
		}
		return d.With(EraOfYear, era)
	}
	years, err := mulExact(amount, unit.years())
	if err != nil {
		return Date{}, err
	}
	return d.plusYears(years)
}

// Minus returns the date that is amount units before d.
func (d Date) Minus(amount int64, unit Unit) (Date, error) {
	if amount == math.MinInt64 {
		r, err := d.Plus(math.MaxInt64, unit)
		if err != nil {
			return Date{}, err
		}
		return r.Plus(1, unit)
	}
	return d.Plus(-amount, unit)
}

func (d Date) plusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := addExact(d.EpochDay(), days)
	if err != nil {
		return Date{}, err
	}
	return d.chrono.DateEpochDay(ed)
}

func (d Date) plusMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	pm, err := addExact(d.ProlepticMonth(), months)
	if err != nil {
		return Date{}, err
	}
	n := int64(d.chrono.desc().months)
	return d.resolvePrevious(floorDiv(pm, n), int(floorMod(pm, n))+1, d.day)
}

func (d Date) plusYears(years int64) (Date, error) {
	y, err := addExact(int64(d.year), years)
	if err != nil {
		return Date{}, err
	}
	return d.resolvePrevious(y, d.month, d.day)
}

func (d Date) checkPeriod(p Period) error {
	if p.Chronology != 0 && p.Chronology != d.chrono {
		return &IncompatibleChronologyError{Want: d.chrono, Got: p.Chronology}
	}
	return nil
}

// PlusPeriod adds the period to the date by first adding the years and
// months as a total number of months and then adding the days. The period
// must either belong to the date's chronology or have no chronology.
func (d Date) PlusPeriod(p Period) (Date, error) {
	if err := d.checkPeriod(p); err != nil {
		return Date{}, err
	}
	months, err := mulExact(int64(p.Years), int64(d.chrono.desc().months))
	if err != nil {
		return Date{}, err
	}
	if months, err = addExact(months, int64(p.Months)); err != nil {
		return Date{}, err
	}
	r, err := d.plusMonths(months)
	if err != nil {
		return Date{}, err
	}
	return r.plusDays(int64(p.Days))
}

// MinusPeriod subtracts the period from the date.
func (d Date) MinusPeriod(p Period) (Date, error) {
	if err := d.checkPeriod(p); err != nil {
		return Date{}, err
	}
	np, err := p.MultipliedBy(-1)
	if err != nil {
		return Date{}, err
	}
	return d.PlusPeriod(np)
}

// monthsUntil returns the number of whole months from d to end, the
// result of adding those months to d and the number of days remaining.
// Adding the months never overshoots end, so the remaining days have the
// same sign as the months.
func (d Date) monthsUntil(end Date) (int64, Date, error) {
	months := end.ProlepticMonth() - d.ProlepticMonth()
	for {
		r, err := d.plusMonths(months)
		if err != nil {
			return 0, Date{}, err
		}
		switch {
		case months > 0 && r.After(end):
			months--
		case months < 0 && r.Before(end):
			months++
		default:
			return months, r, nil
		}
	}
}

// Until returns the period between d and end such that
// d.PlusPeriod(p) == end. The period consists of whole years and months
// that do not overshoot end followed by the remaining days, all with the
// same sign. end may belong to any chronology.
func (d Date) Until(end Date) (Period, error) {
	e, err := end.In(d.chrono)
	if err != nil {
		return Period{}, err
	}
	months, r, err := d.monthsUntil(e)
	if err != nil {
		return Period{}, err
	}
	n := int64(d.chrono.desc().months)
	years, err := toInt(months / n)
	if err != nil {
		return Period{}, err
	}
	days, err := toInt(e.EpochDay() - r.EpochDay())
	if err != nil {
		return Period{}, err
	}
	return Period{
		Chronology: d.chrono,
		Years:      years,
		Months:     int(months % n),
		Days:       days,
	}, nil
}

// UntilUnit returns the number of whole units between d and end, it is
// negative if end is before d. Days and Weeks are computed from the
// difference in epoch days, the remaining units from the number of whole
// months as computed by Until, except for Eras which is the difference
// in era values.
func (d Date) UntilUnit(end Date, unit Unit) (int64, error) {
	if !unit.IsDateBased() {
		return 0, &UnsupportedUnitError{Unit: unit}
	}
	e, err := end.In(d.chrono)
	if err != nil {
		return 0, err
	}
	switch unit {
	case Days:
		return e.EpochDay() - d.EpochDay(), nil
	case Weeks:
		return (e.EpochDay() - d.EpochDay()) / 7, nil
	case Eras:
		desc := d.chrono.desc()
		return int64(desc.eraOf(e.year) - desc.eraOf(d.year)), nil
	}
	months, _, err := d.monthsUntil(e)
	if err != nil {
		return 0, err
	}
	if unit == Months {
		return months, nil
	}
	return months / (int64(d.chrono.desc().months) * unit.years()), nil
}
