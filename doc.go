// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides alternate calendar systems that share the
// proleptic ISO day sequence but present their own year, month and day
// structure. The supported chronologies are:
//
//   - Coptic: 13 months, 12 of 30 days and a short 13th month of 5 or 6 days.
//   - BritishCutover: Julian until 1752-09-02 and Gregorian from 1752-09-14.
//   - InternationalFixed: 13 months of 28 days plus Year Day and Leap Day.
//   - Symmetry010 and Symmetry454: 364 or 371 day years with a leap week.
//
// Every Date maps to exactly one epoch day (days since ISO 1970-01-01) and
// conversions between chronologies are performed via the epoch day or the
// ISODate interchange type:
//
//	d, err := calendars.Coptic.Date(1740, 1, 1)
//	iso := d.ISO()
//	sym, err := calendars.Symmetry454.DateFromISO(iso)
//
// Dates are immutable values; all of the field setters and arithmetic
// operations return new values. Fields are read and written using Get
// and With, and arithmetic is performed using Plus, Minus and Until
// with the date based units defined by Unit.
//
// Errors returned by this package can be tested for using errors.Is with
// ErrInvalidDateComponent, ErrUnsupportedField, ErrUnsupportedUnit,
// ErrIncompatibleChronology and ErrOverflow.
package calendars
