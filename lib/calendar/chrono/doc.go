// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chrono assembles calendar systems over a millisecond
// timeline: the proleptic Gregorian and Julian calendars, and the
// historical calendar that switches from Julian to Gregorian at a
// configurable cutover instant.
//
// A Chronology is built bottom-up. A proleptic kernel does the year,
// month and day arithmetic for one leap-year rule. The Julian and
// Gregorian leaves assemble a complete field set over it. The cutover
// composite dispatches every date field to the leaf that owns the
// instant and corrects results that cross the gap of skipped days.
// Decorators then apply traditional century numbering and a time zone.
//
// Chronologies are immutable and are obtained from a Registry, which
// returns the same instance for the same configuration:
//
//	gj, err := chrono.Instance(zone.UTC, chrono.DefaultCutover, true, 4)
//	if err != nil {
//	    return err
//	}
//	instant, err := gj.DateTimeMillis(1582, 10, 15, 0, 0, 0, 0)
//
// Dates inside the cutover gap (1582-10-05 through 1582-10-14 with the
// default cutover) return *field.IllegalInstantError.
package chrono
