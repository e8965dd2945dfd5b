// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

func assertIllegalField(t *testing.T, err error, want field.DateTimeFieldType) {
	t.Helper()
	var illegal *field.IllegalFieldValueError
	if !errors.As(err, &illegal) {
		t.Fatalf("error = %v, want *field.IllegalFieldValueError", err)
	}
	if illegal.Field != want {
		t.Errorf("error field = %s, want %s", illegal.Field, want)
	}
}

func assertIllegalInstant(t *testing.T, err error) {
	t.Helper()
	var illegal *field.IllegalInstantError
	if !errors.As(err, &illegal) {
		t.Fatalf("error = %v, want *field.IllegalInstantError", err)
	}
}

func assertConfigurationError(t *testing.T, err error) {
	t.Helper()
	var configErr *ConfigurationError
	if !errors.As(err, &configErr) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
}

func mustInstance(t *testing.T, z zone.Zone, cutover int64, centuryISO bool, minDays int) Chronology {
	t.Helper()
	chronology, err := NewRegistry(nil).Get(z, cutover, centuryISO, minDays)
	if err != nil {
		t.Fatalf("Get(%v, %d, %v, %d): %v", z, cutover, centuryISO, minDays, err)
	}
	return chronology
}

func mustDate(t *testing.T, c Chronology, year, month, day int) int64 {
	t.Helper()
	instant, err := c.DateTimeMillis(year, month, day, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("%s.DateTimeMillis(%d, %d, %d): %v", c, year, month, day, err)
	}
	return instant
}

type ymd struct{ year, month, day int }

func dateOf(c Chronology, instant int64) ymd {
	fields := c.Fields()
	return ymd{fields.Year.Get(instant), fields.MonthOfYear.Get(instant), fields.DayOfMonth.Get(instant)}
}

// sampleInstants spans several millennia on both sides of the epoch
// and both sides of the default cutover, at irregular times of day.
func sampleInstants() []int64 {
	var instants []int64
	const step = 37*field.MillisPerDay + 5*field.MillisPerHour + 11*field.MillisPerMinute + 7*field.MillisPerSecond + 3
	for instant := int64(-80_000_000_000_000); instant < 80_000_000_000_000; instant += step * 211 {
		instants = append(instants, instant)
	}
	for offset := int64(-40); offset <= 40; offset++ {
		instants = append(instants, DefaultCutover+offset*field.MillisPerDay+offset*3_600_001)
	}
	return append(instants, 0, -1, 1, DefaultCutover, DefaultCutover-1)
}
