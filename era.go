// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// Era represents an era of a specific chronology. Value is 1 for the
// current era (AM, AD or CE) and 0 for the era before it (BC or BCE).
type Era struct {
	chrono Chronology
	value  int
}

// Chronology returns the chronology that the era belongs to.
func (e Era) Chronology() Chronology {
	return e.chrono
}

// Value returns the numeric value of the era.
func (e Era) Value() int {
	return e.value
}

// Name returns the abbreviated name of the era, eg. "AD".
func (e Era) Name() string {
	if !e.chrono.IsValid() {
		return ""
	}
	return e.chrono.desc().eras[e.value]
}

func (e Era) String() string {
	return e.Name()
}
