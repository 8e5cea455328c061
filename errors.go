// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidDateComponent is returned, wrapped in an
	// InvalidDateComponentError, when a year, month, day or other field
	// value is outside of the range allowed by a chronology.
	ErrInvalidDateComponent = errors.New("invalid date component")
	// ErrUnsupportedField is returned for fields that are not date based.
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrUnsupportedUnit is returned for units that are not date based.
	ErrUnsupportedUnit = errors.New("unsupported unit")
	// ErrIncompatibleChronology is returned when an era or period from one
	// chronology is used with another.
	ErrIncompatibleChronology = errors.New("incompatible chronology")
	// ErrOverflow is returned when arithmetic exceeds the supported range.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnknownChronology is returned for unrecognised chronology names.
	ErrUnknownChronology = errors.New("unknown chronology")
	// ErrInvalidPeriod is returned by ParsePeriod for malformed input.
	ErrInvalidPeriod = errors.New("invalid period")
)

// InvalidDateComponentError records the field, value and valid range
// of a rejected date component.
type InvalidDateComponentError struct {
	Field Field
	Value int64
	Range ValueRange
}

func invalidComponent(f Field, v int64, r ValueRange) error {
	return &InvalidDateComponentError{Field: f, Value: v, Range: r}
}

func (e *InvalidDateComponentError) Error() string {
	return fmt.Sprintf("%v: %v (valid values %v): %v", ErrInvalidDateComponent, e.Field, e.Range, e.Value)
}

func (e *InvalidDateComponentError) Is(target error) bool {
	return target == ErrInvalidDateComponent
}

// UnsupportedFieldError is returned for fields that a Date cannot supply.
type UnsupportedFieldError struct {
	Field Field
}

func (e *UnsupportedFieldError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnsupportedField, e.Field)
}

func (e *UnsupportedFieldError) Is(target error) bool {
	return target == ErrUnsupportedField
}

// UnsupportedUnitError is returned for units that a Date cannot be
// added to or measured in.
type UnsupportedUnitError struct {
	Unit Unit
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUnsupportedUnit, e.Unit)
}

func (e *UnsupportedUnitError) Is(target error) bool {
	return target == ErrUnsupportedUnit
}

// IncompatibleChronologyError is returned when a value belonging to one
// chronology is supplied to another.
type IncompatibleChronologyError struct {
	Want, Got Chronology
}

func (e *IncompatibleChronologyError) Error() string {
	return fmt.Sprintf("%v: got %v, want %v", ErrIncompatibleChronology, e.Got, e.Want)
}

func (e *IncompatibleChronologyError) Is(target error) bool {
	return target == ErrIncompatibleChronology
}
