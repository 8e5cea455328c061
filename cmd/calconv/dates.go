// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/calendars"
)

// parseChronology returns the named chronology, the empty string and
// "iso" refer to the ISO calendar and are returned as the zero value.
func parseChronology(name string) (calendars.Chronology, error) {
	if len(name) == 0 || strings.EqualFold(name, "iso") {
		return 0, nil
	}
	return calendars.ByName(name)
}

// parseChronologies parses a comma separated list of chronology names,
// an empty list refers to all chronologies.
func parseChronologies(names string) ([]calendars.Chronology, error) {
	if len(names) == 0 {
		return calendars.All(), nil
	}
	var cl []calendars.Chronology
	for _, n := range strings.Split(names, ",") {
		c, err := calendars.ByName(strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		cl = append(cl, c)
	}
	return cl, nil
}

// parseYMD parses year, month and day from dates of the form y-m-d
// or y/m/d. The year may be negative.
func parseYMD(date string) (year, month, day int, err error) {
	sign := 1
	rest := date
	if strings.HasPrefix(rest, "-") {
		sign, rest = -1, rest[1:]
	}
	parts := strings.FieldsFunc(rest, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%q: expected a date of the form year-month-day or year/month/day", date)
	}
	var ymd [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%q: %w", date, err)
		}
		ymd[i] = v
	}
	return sign * ymd[0], ymd[1], ymd[2], nil
}

// parseISO parses an ISO date.
func parseISO(date string) (calendars.ISODate, error) {
	y, m, d, err := parseYMD(date)
	if err != nil {
		return calendars.ISODate{}, err
	}
	return calendars.NewISODate(y, m, d)
}

// parseDate parses a date in chronology c, if iso is true the date is
// parsed as an ISO date and then converted to c.
func parseDate(c calendars.Chronology, iso bool, date string) (calendars.Date, error) {
	if iso {
		id, err := parseISO(date)
		if err != nil {
			return calendars.Date{}, err
		}
		return c.DateFromISO(id)
	}
	y, m, d, err := parseYMD(date)
	if err != nil {
		return calendars.Date{}, err
	}
	return c.Date(y, m, d)
}

// toISO parses a date in chronology c, or the ISO calendar if c is
// the zero value, and returns the equivalent ISO date.
func toISO(c calendars.Chronology, date string) (calendars.ISODate, error) {
	if c == 0 {
		return parseISO(date)
	}
	d, err := parseDate(c, false, date)
	if err != nil {
		return calendars.ISODate{}, err
	}
	return d.ISO(), nil
}
