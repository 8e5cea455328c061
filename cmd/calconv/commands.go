// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/calendars"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func formatDate(d calendars.Date) string {
	return fmt.Sprintf("%v (ISO %v)", d, d.ISO())
}

func (a *app) convert(ctx context.Context, values any, args []string) error {
	fv := values.(*convertFlags)
	ctx, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	from, err := parseChronology(fv.From)
	if err != nil {
		return err
	}
	targets, err := parseChronologies(fv.To)
	if err != nil {
		return err
	}
	var errs errors.M
	for _, arg := range args {
		iso, err := toISO(from, arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		ctxlog.Logger(ctx).Debug("converting", "date", arg, "from", fv.From, "iso", iso.String())
		a.convertISO(iso, targets, &errs)
	}
	return errs.Err()
}

func (a *app) convertISO(iso calendars.ISODate, targets []calendars.Chronology, errs *errors.M) {
	fmt.Fprintf(a.out, "ISO %v\n", iso)
	for _, c := range targets {
		d, err := c.DateFromISO(iso)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %v: %w", iso, c, err))
			continue
		}
		fmt.Fprintf(a.out, "  %v\n", d)
	}
}

func (a *app) info(ctx context.Context, values any, args []string) error {
	fv := values.(*infoFlags)
	_, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	chronologies := calendars.All()
	if len(args) > 0 {
		chronologies = chronologies[:0]
		for _, arg := range args {
			c, err := calendars.ByName(arg)
			if err != nil {
				return err
			}
			chronologies = append(chronologies, c)
		}
	}
	intPrinter := message.NewPrinter(language.English) // commas in epoch days.
	for _, c := range chronologies {
		fmt.Fprintf(a.out, "%v\n", c)
		fmt.Fprintf(a.out, "  months: %v\n", c.MonthsInYear())
		fmt.Fprintf(a.out, "  eras: %v\n", c.Eras())
		ed, err := c.Range(calendars.EpochDay)
		if err != nil {
			return err
		}
		intPrinter.Fprintf(a.out, "  epoch days: %d to %d\n", ed.Min, ed.Max)
		for f := calendars.DayOfWeek; f <= calendars.EraOfYear; f++ {
			r, err := c.Range(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "  %v: %v\n", f, r)
		}
	}
	return nil
}

// arithChronology returns the chronology that arithmetic is to be
// performed in, which must be one of the supported chronologies.
func arithChronology(fv *arithFlags) (calendars.Chronology, error) {
	c, err := parseChronology(fv.Chronology)
	if err != nil {
		return 0, err
	}
	if !c.IsValid() {
		return 0, fmt.Errorf("--chronology must name one of the supported chronologies: %w", calendars.ErrUnknownChronology)
	}
	return c, nil
}

func (a *app) plus(ctx context.Context, values any, args []string) error {
	fv := values.(*arithFlags)
	ctx, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	c, err := arithChronology(fv)
	if err != nil {
		return err
	}
	d, err := parseDate(c, fv.ISO, args[0])
	if err != nil {
		return err
	}
	var result calendars.Date
	if len(fv.Unit) > 0 {
		unit, err := calendars.ParseUnit(fv.Unit)
		if err != nil {
			return err
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%q: %w", args[1], err)
		}
		result, err = d.Plus(amount, unit)
		if err != nil {
			return err
		}
	} else {
		p, err := calendars.ParsePeriod(c, args[1])
		if err != nil {
			return err
		}
		result, err = d.PlusPeriod(p)
		if err != nil {
			return err
		}
	}
	ctxlog.Logger(ctx).Debug("plus", "date", d.String(), "amount", args[1], "unit", fv.Unit, "result", result.String())
	fmt.Fprintln(a.out, formatDate(result))
	return nil
}

func (a *app) until(ctx context.Context, values any, args []string) error {
	fv := values.(*arithFlags)
	_, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	c, err := arithChronology(fv)
	if err != nil {
		return err
	}
	start, err := parseDate(c, fv.ISO, args[0])
	if err != nil {
		return err
	}
	end, err := parseDate(c, fv.ISO, args[1])
	if err != nil {
		return err
	}
	if len(fv.Unit) > 0 {
		unit, err := calendars.ParseUnit(fv.Unit)
		if err != nil {
			return err
		}
		n, err := start.UntilUnit(end, unit)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%v %v\n", n, unit)
		return nil
	}
	p, err := start.Until(end)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, p)
	return nil
}
