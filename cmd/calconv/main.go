// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts dates between the ISO calendar and the
// chronologies supported by cloudeng.io/calendars, performs date
// arithmetic within a chronology and lists the occurrences of annual
// events defined in any of them.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const cmdSpec = `name: calconv
summary: convert dates between the ISO calendar and alternate chronologies
commands:
  - name: convert
    summary: convert one or more dates to each of the requested chronologies
    arguments:
      - <date>
      - ...
  - name: info
    summary: display the rules of the named chronologies, or all of them
    arguments:
      - ...
  - name: plus
    summary: add a period, or an amount of a unit, to a date
    arguments:
      - <date>
      - <period>
  - name: until
    summary: display the period, or amount of a unit, between two dates
    arguments:
      - <start>
      - <end>
  - name: batch
    summary: convert all of the dates listed in a YAML file
    arguments:
      - <file>
  - name: schedule
    summary: list the occurrences of the annual events defined in a YAML file
    arguments:
      - <file>
`

// CommonFlags are the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type convertFlags struct {
	CommonFlags
	From string `subcmd:"from,iso,'chronology of the dates to be converted'"`
	To   string `subcmd:"to,,'comma separated list of chronologies to convert to, defaults to all'"`
}

type infoFlags struct {
	CommonFlags
}

type arithFlags struct {
	CommonFlags
	Chronology string `subcmd:"chronology,,'chronology to perform the arithmetic in'"`
	ISO        bool   `subcmd:"iso,false,'dates are iso dates that are converted to --chronology before use'"`
	Unit       string `subcmd:"unit,,'unit to use instead of an ISO-8601 period, eg. days, weeks or months'"`
}

type batchFlags struct {
	CommonFlags
}

type scheduleFlags struct {
	CommonFlags
	From string `subcmd:"from,,'first iso date to list occurrences for, defaults to the first day of the current year'"`
	To   string `subcmd:"to,,'last iso date to list occurrences for, defaults to the last day of the year containing --from'"`
}

// app implements the commands, all output is written to out.
type app struct {
	out io.Writer
}

func newCmdSet(a *app) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("convert").MustRunnerAndFlags(a.convert,
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("info").MustRunnerAndFlags(a.info,
		subcmd.MustRegisteredFlagSet(&infoFlags{}))
	cmdSet.Set("plus").MustRunnerAndFlags(a.plus,
		subcmd.MustRegisteredFlagSet(&arithFlags{}))
	cmdSet.Set("until").MustRunnerAndFlags(a.until,
		subcmd.MustRegisteredFlagSet(&arithFlags{}))
	cmdSet.Set("batch").MustRunnerAndFlags(a.batch,
		subcmd.MustRegisteredFlagSet(&batchFlags{}))
	cmdSet.Set("schedule").MustRunnerAndFlags(a.schedule,
		subcmd.MustRegisteredFlagSet(&scheduleFlags{}))
	return cmdSet
}

// withLogger returns a context containing the logger configured by the
// supplied flags and a function to be called to close it.
func withLogger(ctx context.Context, cf CommonFlags) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func main() {
	subcmd.Dispatch(context.Background(), newCmdSet(&app{out: os.Stdout}))
}
