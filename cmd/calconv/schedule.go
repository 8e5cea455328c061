// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/schedule"
)

// occurrenceBounds returns the ISO dates to list occurrences between.
func occurrenceBounds(fv *scheduleFlags, now time.Time) (calendars.ISODate, calendars.ISODate, error) {
	from := calendars.ISODate{Year: now.Year(), Month: 1, Day: 1}
	if len(fv.From) > 0 {
		f, err := parseISO(fv.From)
		if err != nil {
			return from, from, err
		}
		from = f
	}
	to := calendars.ISODate{Year: from.Year, Month: 12, Day: 31}
	if len(fv.To) > 0 {
		t, err := parseISO(fv.To)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

func (a *app) schedule(ctx context.Context, values any, args []string) error {
	fv := values.(*scheduleFlags)
	ctx, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	cfg, err := schedule.ParseConfigFile(ctx, args[0])
	if err != nil {
		return err
	}
	from, to, err := occurrenceBounds(fv, time.Now())
	if err != nil {
		return err
	}
	for occ := range schedule.Occurrences(ctx, cfg.Events, from, to) {
		fmt.Fprintln(a.out, occ)
	}
	return ctx.Err()
}
