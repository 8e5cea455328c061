// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule_test

import (
	"context"
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/schedule"
)

func ExampleOccurrences() {
	cfg, err := schedule.ParseConfig([]byte(`events:
  - name: nayrouz
    chronology: coptic
    month: 1
    day: 1
  - name: leap-day
    chronology: ifc
    month: 6
    day: 29
`))
	if err != nil {
		panic(err)
	}
	from := calendars.ISODate{Year: 2024, Month: 1, Day: 1}
	to := calendars.ISODate{Year: 2025, Month: 12, Day: 31}
	for occ := range schedule.Occurrences(context.Background(), cfg.Events, from, to) {
		fmt.Println(occ)
	}
	// Output:
	// 2024-06-17 leap-day (Ifc CE 2024/06/29)
	// 2024-09-11 nayrouz (Coptic AM 1741-01-01)
	// 2025-09-11 nayrouz (Coptic AM 1742-01-01)
}
