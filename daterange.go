// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"iter"
)

// DateRange represents an inclusive range of dates in a single chronology.
type DateRange struct {
	From, To Date
}

// NewDateRange returns a DateRange in from's chronology. If from is
// later than to then they are swapped.
func NewDateRange(from, to Date) (DateRange, error) {
	t, err := to.In(from.chrono)
	if err != nil {
		return DateRange{}, err
	}
	if t.Before(from) {
		from, t = t, from
	}
	return DateRange{From: from, To: t}, nil
}

// Days returns the number of days in the range.
func (dr DateRange) Days() int64 {
	return dr.To.EpochDay() - dr.From.EpochDay() + 1
}

// Contains returns true if d, in any chronology, lies within the range.
func (dr DateRange) Contains(d Date) bool {
	return !d.Before(dr.From) && !d.After(dr.To)
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%v - %v", dr.From, dr.To)
}

// Dates returns an iterator that yields each date in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	c := dr.From.chrono
	from, to := dr.From.EpochDay(), dr.To.EpochDay()
	return func(yield func(Date) bool) {
		desc := c.desc()
		for ed := from; ed <= to; ed++ {
			y, m, d := desc.fromEpochDay(ed)
			if !yield(Date{chrono: c, year: y, month: m, day: d}) {
				return
			}
		}
	}
}

// Months returns an iterator that yields the portion of the range that
// falls within each month it spans.
func (dr DateRange) Months() iter.Seq[DateRange] {
	return func(yield func(DateRange) bool) {
		for start := dr.From; !start.After(dr.To); {
			end, err := LastDayOfMonth(start)
			if err != nil {
				return
			}
			if end.After(dr.To) {
				end = dr.To
			}
			if !yield(DateRange{From: start, To: end}) {
				return
			}
			if start, err = end.plusDays(1); err != nil {
				return
			}
		}
	}
}
