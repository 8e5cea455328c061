// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strings"
	"time"
)

// Chronology identifies one of the supported calendar systems. The zero
// value is not a valid chronology.
type Chronology uint8

const (
	Coptic Chronology = iota + 1
	BritishCutover
	InternationalFixed
	Symmetry010
	Symmetry454
)

var aliases = map[string]Chronology{
	"coptic":             Coptic,
	"britishcutover":     BritishCutover,
	"british":            BritishCutover,
	"ifc":                InternationalFixed,
	"internationalfixed": InternationalFixed,
	"sym010":             Symmetry010,
	"symmetry010":        Symmetry010,
	"sym454":             Symmetry454,
	"symmetry454":        Symmetry454,
}

// All returns all of the supported chronologies.
func All() []Chronology {
	return []Chronology{Coptic, BritishCutover, InternationalFixed, Symmetry010, Symmetry454}
}

// ByName returns the chronology with the specified name, the comparison
// is case insensitive and accepts both the short names returned by
// Name and the long names of the package level constants.
func ByName(name string) (Chronology, error) {
	if c, ok := aliases[strings.ToLower(name)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownChronology)
}

// IsValid returns true if c is one of the supported chronologies.
func (c Chronology) IsValid() bool {
	return c >= Coptic && c <= Symmetry454
}

func (c Chronology) desc() *descriptor {
	return descriptors[c]
}

// lookup returns the descriptor for c or ErrUnknownChronology.
func (c Chronology) lookup() (*descriptor, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%v: %w", c, ErrUnknownChronology)
	}
	return descriptors[c], nil
}

// Name returns the short name of the chronology, eg. "Coptic" or "Sym454".
func (c Chronology) Name() string {
	if !c.IsValid() {
		return fmt.Sprintf("Chronology(%d)", int(c))
	}
	return c.desc().name
}

func (c Chronology) String() string {
	return c.Name()
}

// MarshalText implements encoding.TextMarshaler.
func (c Chronology) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%v: %w", c, ErrUnknownChronology)
	}
	return []byte(c.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Chronology) UnmarshalText(text []byte) error {
	n, err := ByName(string(text))
	if err != nil {
		return err
	}
	*c = n
	return nil
}

// Date returns the date for the specified proleptic year, month and day.
func (c Chronology) Date(year, month, day int) (Date, error) {
	d, err := c.lookup()
	if err != nil {
		return Date{}, err
	}
	y, m, dd, err := d.validate(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{chrono: c, year: y, month: m, day: dd}, nil
}

// MustDate is like Date but panics on error.
func (c Chronology) MustDate(year, month, day int) Date {
	d, err := c.Date(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateYearDay returns the date for the specified proleptic year and
// 1-based day of the year.
func (c Chronology) DateYearDay(year, dayOfYear int) (Date, error) {
	d, err := c.lookup()
	if err != nil {
		return Date{}, err
	}
	if year < d.minYear || year > d.maxYear {
		return Date{}, invalidComponent(Year, int64(year), d.fieldRange(Year))
	}
	if n := d.lengthOfYear(year); dayOfYear < 1 || dayOfYear > n {
		return Date{}, invalidComponent(DayOfYear, int64(dayOfYear), rangeOf(1, int64(n)))
	}
	m, dd := d.fromYearDay(year, dayOfYear)
	return Date{chrono: c, year: year, month: m, day: dd}, nil
}

// DateEpochDay returns the date for the specified epoch day.
func (c Chronology) DateEpochDay(epochDay int64) (Date, error) {
	d, err := c.lookup()
	if err != nil {
		return Date{}, err
	}
	if r := d.fieldRange(EpochDay); !r.IsValidValue(epochDay) {
		return Date{}, invalidComponent(EpochDay, epochDay, r)
	}
	y, m, dd := d.fromEpochDay(epochDay)
	return Date{chrono: c, year: y, month: m, day: dd}, nil
}

// DateFromISO returns the date that corresponds to the supplied ISO date.
func (c Chronology) DateFromISO(iso ISODate) (Date, error) {
	if _, err := NewISODate(iso.Year, iso.Month, iso.Day); err != nil {
		return Date{}, err
	}
	return c.DateEpochDay(iso.EpochDay())
}

// DateFromTime returns the date that corresponds to the date component
// of t in t's location.
func (c Chronology) DateFromTime(t time.Time) (Date, error) {
	return c.DateFromISO(ISODateFromTime(t))
}

// DateYearOfEra returns the date for the specified era, year of era,
// month and day.
func (c Chronology) DateYearOfEra(era Era, yearOfEra, month, day int) (Date, error) {
	y, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	return c.Date(y, month, day)
}

// IsLeapYear returns true if the proleptic year is a leap year. The
// year is not validated.
func (c Chronology) IsLeapYear(year int) bool {
	return c.IsValid() && c.desc().isLeapYear(year)
}

// MonthsInYear returns the number of months in a year, or zero for an
// invalid chronology.
func (c Chronology) MonthsInYear() int {
	if !c.IsValid() {
		return 0
	}
	return c.desc().months
}

// LengthOfMonth returns the number of days in the specified month, or
// zero if the year or month is invalid.
func (c Chronology) LengthOfMonth(year, month int) int {
	d, err := c.lookup()
	if err != nil {
		return 0
	}
	if year < d.minYear || year > d.maxYear || month < 1 || month > d.months {
		return 0
	}
	return d.lengthOfMonth(year, month)
}

// LengthOfYear returns the number of days in the specified year, or zero
// if the year is invalid.
func (c Chronology) LengthOfYear(year int) int {
	d, err := c.lookup()
	if err != nil {
		return 0
	}
	if year < d.minYear || year > d.maxYear {
		return 0
	}
	return d.lengthOfYear(year)
}

// Range returns the range of values that f may take for any date in
// this chronology.
func (c Chronology) Range(f Field) (ValueRange, error) {
	if !f.IsDateBased() {
		return ValueRange{}, &UnsupportedFieldError{Field: f}
	}
	d, err := c.lookup()
	if err != nil {
		return ValueRange{}, err
	}
	return d.fieldRange(f), nil
}

// Eras returns the eras supported by this chronology in ascending order,
// it returns nil for an invalid chronology.
func (c Chronology) Eras() []Era {
	if !c.IsValid() {
		return nil
	}
	var eras []Era
	for v, n := range c.desc().eras {
		if len(n) > 0 {
			eras = append(eras, Era{chrono: c, value: v})
		}
	}
	return eras
}

// Era returns the era with the specified numeric value, 1 for the current
// era and 0 for the one before it.
func (c Chronology) Era(value int) (Era, error) {
	d, err := c.lookup()
	if err != nil {
		return Era{}, err
	}
	if value < 0 || value >= len(d.eras) || len(d.eras[value]) == 0 {
		return Era{}, invalidComponent(EraOfYear, int64(value), d.fieldRange(EraOfYear))
	}
	return Era{chrono: c, value: value}, nil
}

// ProlepticYear returns the proleptic year for the specified era and
// year of era. The era must belong to this chronology.
func (c Chronology) ProlepticYear(era Era, yearOfEra int) (int, error) {
	d, err := c.lookup()
	if err != nil {
		return 0, err
	}
	if era.chrono != c {
		return 0, &IncompatibleChronologyError{Want: c, Got: era.chrono}
	}
	year := yearOfEra
	if era.value == 0 {
		year = 1 - yearOfEra
	}
	if yearOfEra < 1 || year < d.minYear || year > d.maxYear {
		return 0, invalidComponent(YearOfEra, int64(yearOfEra), d.fieldRange(YearOfEra))
	}
	return year, nil
}

// Period returns a Period for this chronology.
func (c Chronology) Period(years, months, days int) Period {
	return Period{Chronology: c, Years: years, Months: months, Days: days}
}
