// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// batchConfig represents a batch of dates to be converted, eg:
//
//	from: coptic
//	to: [sym010, sym454]
//	dates:
//	  - "1740-01-01"
//	  - "1740/13/06"
type batchConfig struct {
	From  string                 `yaml:"from"`
	To    []calendars.Chronology `yaml:"to"`
	Dates []string               `yaml:"dates"`
}

func (a *app) batch(ctx context.Context, values any, args []string) error {
	fv := values.(*batchFlags)
	ctx, done, err := withLogger(ctx, fv.CommonFlags)
	if err != nil {
		return err
	}
	defer done()
	var cfg batchConfig
	if err := cmdyaml.ParseConfigFile(ctx, args[0], &cfg); err != nil {
		return err
	}
	from, err := parseChronology(cfg.From)
	if err != nil {
		return err
	}
	targets := cfg.To
	if len(targets) == 0 {
		targets = calendars.All()
	}
	ctxlog.Logger(ctx).Info("batch conversion", "file", args[0], "from", cfg.From, "dates", len(cfg.Dates))
	var errs errors.M
	for i, date := range cfg.Dates {
		iso, err := toISO(from, date)
		if err != nil {
			errs.Append(fmt.Errorf("%v: entry %v: %w", args[0], i, err))
			continue
		}
		a.convertISO(iso, targets, &errs)
	}
	return errs.Err()
}
