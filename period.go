// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
)

// Period represents an amount of time in years, months and days within a
// specific chronology, as returned by Date.Until. A Period with a zero
// Chronology may be added to a date in any chronology.
type Period struct {
	Chronology Chronology
	Years      int
	Months     int
	Days       int
}

// IsZero returns true if all of the components are zero.
func (p Period) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

// IsNegative returns true if any of the components are negative.
func (p Period) IsNegative() bool {
	return p.Years < 0 || p.Months < 0 || p.Days < 0
}

// Negated returns the period with each component negated. Components
// equal to math.MinInt cannot be negated, use MultipliedBy(-1) to detect
// them.
func (p Period) Negated() Period {
	return Period{Chronology: p.Chronology, Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// MultipliedBy returns the period with each component multiplied by n,
// it returns ErrOverflow if any component overflows.
func (p Period) MultipliedBy(n int) (Period, error) {
	r := Period{Chronology: p.Chronology}
	for _, c := range []struct {
		dst *int
		v   int
	}{{&r.Years, p.Years}, {&r.Months, p.Months}, {&r.Days, p.Days}} {
		v, err := mulInt(c.v, n)
		if err != nil {
			return Period{}, err
		}
		*c.dst = v
	}
	return r, nil
}

func mulInt(a, b int) (int, error) {
	v, err := mulExact(int64(a), int64(b))
	if err != nil {
		return 0, err
	}
	return toInt(v)
}

func addInt(a, b int) (int, error) {
	v, err := addExact(int64(a), int64(b))
	if err != nil {
		return 0, err
	}
	return toInt(v)
}

// Plus returns the component wise sum of two periods, which must belong to
// the same chronology unless one of them has no chronology.
func (p Period) Plus(o Period) (Period, error) {
	c := p.Chronology
	switch {
	case c == 0:
		c = o.Chronology
	case o.Chronology != 0 && o.Chronology != c:
		return Period{}, &IncompatibleChronologyError{Want: c, Got: o.Chronology}
	}
	years, err := addInt(p.Years, o.Years)
	if err != nil {
		return Period{}, err
	}
	months, err := addInt(p.Months, o.Months)
	if err != nil {
		return Period{}, err
	}
	days, err := addInt(p.Days, o.Days)
	if err != nil {
		return Period{}, err
	}
	return Period{Chronology: c, Years: years, Months: months, Days: days}, nil
}

func (p Period) monthsInYear() int64 {
	if p.Chronology.IsValid() {
		return int64(p.Chronology.MonthsInYear())
	}
	return 12
}

// TotalMonths returns the years and months of the period as months,
// assuming 12 months per year for periods with no chronology.
func (p Period) TotalMonths() int64 {
	return int64(p.Years)*p.monthsInYear() + int64(p.Months)
}

// Normalized returns a period with whole years moved out of the months
// so that the years and months have the same sign and the absolute value
// of months is less than the number of months in a year. The days are
// not changed.
func (p Period) Normalized() Period {
	n := p.monthsInYear()
	total := p.TotalMonths()
	return Period{
		Chronology: p.Chronology,
		Years:      int(total / n),
		Months:     int(total % n),
		Days:       p.Days,
	}
}

// String returns the period in ISO8601 form, eg. P1Y2M3D, prefixed by
// the chronology name if one is set. A zero period is P0D.
func (p Period) String() string {
	var out strings.Builder
	if p.Chronology.IsValid() {
		out.WriteString(p.Chronology.Name())
		out.WriteByte(' ')
	}
	out.WriteByte('P')
	if p.IsZero() {
		out.WriteString("0D")
		return out.String()
	}
	for _, c := range []struct {
		n int
		d byte
	}{{p.Years, 'Y'}, {p.Months, 'M'}, {p.Days, 'D'}} {
		if c.n != 0 {
			out.WriteString(strconv.Itoa(c.n))
			out.WriteByte(c.d)
		}
	}
	return out.String()
}

func consumeInt(period string) (int, byte, int, error) {
	for i := range period {
		c := period[i]
		if (c >= '0' && c <= '9') || (i == 0 && (c == '-' || c == '+')) {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(period[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", period[:i], period, ErrInvalidPeriod)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %s: %w", period, ErrInvalidPeriod)
}

// ParsePeriod parses a period in the ISO8601 form [-]PnYnMnWnD for the
// specified chronology. Each component may be signed, weeks are
// converted to days and the designators must appear in order.
func ParsePeriod(c Chronology, period string) (Period, error) {
	orig := period
	negate := strings.HasPrefix(period, "-")
	if negate {
		period = period[1:]
	}
	if len(period) < 2 || period[0] != 'P' {
		return Period{}, fmt.Errorf("period must start with P or -P and have at least one component: %q: %w", orig, ErrInvalidPeriod)
	}
	period = period[1:]
	p := Period{Chronology: c}
	order := "YMWD"
	for len(period) > 0 {
		n, designator, idx, err := consumeInt(period)
		if err != nil {
			return Period{}, err
		}
		pos := strings.IndexByte(order, designator)
		if pos < 0 {
			return Period{}, fmt.Errorf("duplicate or out of order designator: %c: %q: %w", designator, orig, ErrInvalidPeriod)
		}
		order = order[pos+1:]
		period = period[idx:]
		switch designator {
		case 'Y':
			p.Years = n
		case 'M':
			p.Months = n
		case 'W':
			if p.Days, err = mulInt(n, 7); err != nil {
				return Period{}, fmt.Errorf("%q: %w", orig, err)
			}
		case 'D':
			if p.Days, err = addInt(p.Days, n); err != nil {
				return Period{}, fmt.Errorf("%q: %w", orig, err)
			}
		}
	}
	if negate {
		np, err := p.MultipliedBy(-1)
		if err != nil {
			return Period{}, fmt.Errorf("%q: %w", orig, err)
		}
		return np, nil
	}
	return p, nil
}
