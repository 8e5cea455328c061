// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"context"
	"iter"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/calendars"
	"cloudeng.io/logging/ctxlog"
)

// Occurrence represents a single occurrence of an annual event.
type Occurrence struct {
	Event Annual
	Date  calendars.Date // In the event's chronology.
	ISO   calendars.ISODate
}

func (o Occurrence) String() string {
	return o.ISO.String() + " " + o.Event.Name + " (" + o.Date.String() + ")"
}

// cursor tracks the next occurrence of a single event.
type cursor struct {
	order   int
	event   Annual
	year    int
	endYear int
	next    Occurrence
	epoch   int64
}

// Less orders cursors by the epoch day of their next occurrence and then
// by the order in which their events were supplied.
func (c *cursor) Less(o *cursor) bool {
	if c.epoch == o.epoch {
		return c.order < o.order
	}
	return c.epoch < o.epoch
}

// yearBounds returns the range of years of chronology c that overlap
// the epoch days from and to, ok is false if c has no dates within
// that range.
func yearBounds(c calendars.Chronology, from, to int64) (first, last int, ok bool) {
	r, err := c.Range(calendars.EpochDay)
	if err != nil || from > r.Max || to < r.Min {
		return 0, 0, false
	}
	fd, err := c.DateEpochDay(max(from, r.Min))
	if err != nil {
		return 0, 0, false
	}
	td, err := c.DateEpochDay(min(to, r.Max))
	if err != nil {
		return 0, 0, false
	}
	return fd.Year(), td.Year(), true
}

// advance moves the cursor to the next occurrence that falls within
// [from, to], returning false when there are no more.
func (c *cursor) advance(ctx context.Context, from, to int64) bool {
	for ; c.year <= c.endYear; c.year++ {
		d, ok, err := c.event.In(c.year)
		if err != nil {
			ctxlog.Logger(ctx).Warn("annual event failed", "event", c.event.Name, "year", c.year, "error", err)
			continue
		}
		if !ok {
			ctxlog.Logger(ctx).Debug("annual event skipped", "event", c.event.Name, "chronology", c.event.Chronology, "year", c.year)
			continue
		}
		ed := d.EpochDay()
		if ed < from {
			continue
		}
		if ed > to {
			c.year = c.endYear + 1
			return false
		}
		c.next = Occurrence{Event: c.event, Date: d, ISO: d.ISO()}
		c.epoch = ed
		c.year++
		return true
	}
	return false
}

// Occurrences returns an iterator over all of the occurrences of the
// supplied events between the ISO dates from and to inclusive. The
// occurrences are returned in ISO date order, occurrences on the same
// day are returned in the order in which their events were supplied.
// Invalid events are ignored and the iteration stops early if the
// context is canceled.
func Occurrences(ctx context.Context, events Annuals, from, to calendars.ISODate) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		if from.EpochDay() > to.EpochDay() {
			from, to = to, from
		}
		fe, te := from.EpochDay(), to.EpochDay()
		var h heap.Heap[*cursor]
		for i, ev := range events {
			if err := ev.Validate(); err != nil {
				ctxlog.Logger(ctx).Warn("ignoring invalid annual event", "event", ev.Name, "error", err)
				continue
			}
			first, last, ok := yearBounds(ev.Chronology, fe, te)
			if !ok {
				ctxlog.Logger(ctx).Debug("annual event out of range", "event", ev.Name, "chronology", ev.Chronology, "from", from.String(), "to", to.String())
				continue
			}
			c := &cursor{order: i, event: ev, year: first, endYear: last}
			if c.advance(ctx, fe, te) {
				h.Push(c)
			}
		}
		for h.Len() > 0 {
			if ctx.Err() != nil {
				return
			}
			c := h.Pop()
			if !yield(c.next) {
				return
			}
			if c.advance(ctx, fe, te) {
				h.Push(c)
			}
		}
	}
}

// Collect returns all of the occurrences of the supplied events between
// from and to, it is a convenience wrapper around Occurrences.
func Collect(ctx context.Context, events Annuals, from, to calendars.ISODate) []Occurrence {
	var occ []Occurrence
	for o := range Occurrences(ctx, events, from, to) {
		occ = append(occ, o)
	}
	return occ
}
