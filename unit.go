// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strings"
)

// Unit is a unit of time used for date arithmetic. Only the date based
// units, Days through Eras, are supported by Date.
type Unit int

const (
	Nanos Unit = iota + 1
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
)

var unitNames = []string{
	"",
	"Nanos",
	"Micros",
	"Millis",
	"Seconds",
	"Minutes",
	"Hours",
	"HalfDays",
	"Days",
	"Weeks",
	"Months",
	"Years",
	"Decades",
	"Centuries",
	"Millennia",
	"Eras",
	"Forever",
}

func (u Unit) String() string {
	if u > 0 && int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsDateBased returns true for the units supported by Date.
func (u Unit) IsDateBased() bool {
	return u >= Days && u <= Eras
}

// ParseUnit parses the name of a unit, as returned by String, in a case
// insensitive manner.
func ParseUnit(name string) (Unit, error) {
	for i := 1; i < len(unitNames); i++ {
		if strings.EqualFold(unitNames[i], name) {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown unit: %q: %w", name, ErrUnsupportedUnit)
}

// years per unit for the year based units.
func (u Unit) years() int64 {
	switch u {
	case Years:
		return 1
	case Decades:
		return 10
	case Centuries:
		return 100
	case Millennia:
		return 1000
	}
	return 0
}
