// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for events that recur annually on a
// fixed month and day of one of the chronologies supported by
// cloudeng.io/calendars, and for listing their occurrences in ISO date order.
package schedule

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/calendars"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// MissingDayPolicy determines what happens in years that do not contain
// the day of an annual event, eg. the 6th epagomenal day of the Coptic
// calendar in a non-leap year.
type MissingDayPolicy int

const (
	// Skip omits the event in years that lack its day.
	Skip MissingDayPolicy = iota
	// Previous moves the event to the last day of its month.
	Previous
)

var policyNames = map[string]MissingDayPolicy{
	"skip":     Skip,
	"previous": Previous,
}

func (p MissingDayPolicy) String() string {
	switch p {
	case Skip:
		return "skip"
	case Previous:
		return "previous"
	}
	return fmt.Sprintf("MissingDayPolicy(%d)", int(p))
}

// ParseMissingDayPolicy parses the name of a MissingDayPolicy, the
// comparison is case insensitive.
func ParseMissingDayPolicy(name string) (MissingDayPolicy, error) {
	if p, ok := policyNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return Skip, fmt.Errorf("unrecognised missing day policy: %q", name)
}

// UnmarshalYAML implements yaml.Unmarshaler. An empty value is treated
// as Skip.
func (p *MissingDayPolicy) UnmarshalYAML(node *yaml.Node) error {
	if len(node.Value) == 0 {
		*p = Skip
		return nil
	}
	np, err := ParseMissingDayPolicy(node.Value)
	if err != nil {
		return fmt.Errorf("line %v: %w", node.Line, err)
	}
	*p = np
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p MissingDayPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// Annual represents an event that occurs on the same month and day
// of every year of the specified chronology.
type Annual struct {
	Name       string               `yaml:"name"`
	Chronology calendars.Chronology `yaml:"chronology"`
	Month      int                  `yaml:"month"`
	Day        int                  `yaml:"day"`
	Missing    MissingDayPolicy     `yaml:"missing"`
}

func (a Annual) String() string {
	return fmt.Sprintf("%v: %v %02d-%02d (%v)", a.Name, a.Chronology, a.Month, a.Day, a.Missing)
}

// Validate returns an error if the month or day of the event can never
// occur in its chronology.
func (a Annual) Validate() error {
	if !a.Chronology.IsValid() {
		return fmt.Errorf("%v: %w", a.Name, calendars.ErrUnknownChronology)
	}
	if r, _ := a.Chronology.Range(calendars.MonthOfYear); !r.IsValidValue(int64(a.Month)) {
		return fmt.Errorf("%v: month %v outside of %v: %w", a.Name, a.Month, r, calendars.ErrInvalidDateComponent)
	}
	if r, _ := a.Chronology.Range(calendars.DayOfMonth); !r.IsValidValue(int64(a.Day)) {
		return fmt.Errorf("%v: day %v outside of %v: %w", a.Name, a.Day, r, calendars.ErrInvalidDateComponent)
	}
	switch a.Missing {
	case Skip, Previous:
	default:
		return fmt.Errorf("%v: unsupported missing day policy: %v", a.Name, a.Missing)
	}
	return nil
}

// In returns the date of the event in the specified year of its chronology.
// It returns false if the year does not contain the event's day and
// the Skip policy is in force.
func (a Annual) In(year int) (calendars.Date, bool, error) {
	d, err := a.Chronology.Date(year, a.Month, a.Day)
	if err == nil {
		return d, true, nil
	}
	var ierr *calendars.InvalidDateComponentError
	if !errors.As(err, &ierr) || ierr.Field != calendars.DayOfMonth {
		return calendars.Date{}, false, err
	}
	if a.Missing == Skip {
		return calendars.Date{}, false, nil
	}
	first, err := a.Chronology.Date(year, a.Month, 1)
	if err != nil {
		return calendars.Date{}, false, err
	}
	last, err := first.Adjust(calendars.LastDayOfMonth)
	if err != nil {
		return calendars.Date{}, false, err
	}
	return last, true, nil
}

// Annuals represents a set of annual events.
type Annuals []Annual

// Validate validates all of the events and returns all of the errors
// encountered.
func (as Annuals) Validate() error {
	var errs errors.M
	names := map[string]bool{}
	for _, a := range as {
		errs.Append(a.Validate())
		if names[a.Name] {
			errs.Append(fmt.Errorf("duplicate event name: %q", a.Name))
		}
		names[a.Name] = true
	}
	return errs.Err()
}

// Config represents the YAML configuration for a set of annual events, eg:
//
//	events:
//	  - name: nayrouz
//	    chronology: coptic
//	    month: 1
//	    day: 1
//	  - name: leap-day
//	    chronology: ifc
//	    month: 6
//	    day: 29
//	    missing: skip
type Config struct {
	Events Annuals `yaml:"events"`
}

// ParseConfig parses and validates the supplied YAML configuration.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Events.Validate()
}

// ParseConfigFile is like ParseConfig but reads the configuration from
// the named file using cmdyaml.ParseConfigFileStrict.
func ParseConfigFile(ctx context.Context, filename string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Events.Validate()
}
