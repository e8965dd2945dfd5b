// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"errors"
	"math"
	"testing"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

func TestZonedFixedOffset(t *testing.T) {
	kolkata := zone.Fixed(5*field.MillisPerHour + 30*field.MillisPerMinute)
	zoned := mustInstance(t, kolkata, DefaultCutover, true, 4)
	fields := zoned.Fields()

	if got := zoned.Zone().ID(); got != "+05:30" {
		t.Errorf("zone ID = %q, want +05:30", got)
	}
	instant, err := zoned.DateTimeMillis(1970, 1, 1, 5, 30, 0, 0)
	if err != nil {
		t.Fatalf("DateTimeMillis: %v", err)
	}
	if instant != 0 {
		t.Errorf("1970-01-01T05:30+05:30 = %d, want 0", instant)
	}
	if got := fields.HourOfDay.Get(0); got != 5 {
		t.Errorf("hour at the epoch = %d, want 5", got)
	}
	if got := fields.MinuteOfHour.Get(0); got != 30 {
		t.Errorf("minute at the epoch = %d, want 30", got)
	}

	// 1969-12-31T20:00Z is already January 1st in Kolkata.
	evening := int64(-4 * field.MillisPerHour)
	if got := fields.DayOfMonth.Get(evening); got != 1 {
		t.Errorf("day of month at %d = %d, want 1", evening, got)
	}
	floor, err := fields.DayOfMonth.RoundFloor(evening)
	if err != nil {
		t.Fatalf("RoundFloor: %v", err)
	}
	if want := int64(-5*field.MillisPerHour - 30*field.MillisPerMinute); floor != want {
		t.Errorf("local midnight = %d, want %d", floor, want)
	}

	_, err = zoned.DateTimeMillis(1582, 10, 10, 0, 0, 0, 0)
	assertIllegalInstant(t, err)
}

func TestWithZone(t *testing.T) {
	gregorian := newGregorian(4)
	same, err := WithZone(gregorian, zone.UTC)
	if err != nil {
		t.Fatalf("WithZone(UTC): %v", err)
	}
	if same != Chronology(gregorian) {
		t.Errorf("WithZone(UTC) = %v, want the base chronology", same)
	}

	zoned, err := WithZone(gregorian, zone.Fixed(field.MillisPerHour))
	if err != nil {
		t.Fatalf("WithZone: %v", err)
	}
	_, err = WithZone(zoned, zone.Fixed(2*field.MillisPerHour))
	assertConfigurationError(t, err)
	if got := zoned.CutoverMillis(); got != GregorianCutover {
		t.Errorf("zoned cutover = %d, want %d", got, GregorianCutover)
	}
}

func TestZonedTransitions(t *testing.T) {
	newYork, err := zone.Load("America/New_York")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	zoned := mustInstance(t, newYork, GregorianCutover, true, 4)
	fields := zoned.Fields()

	t.Run("gap", func(t *testing.T) {
		_, err := zoned.DateTimeMillis(2024, 3, 10, 2, 30, 0, 0)
		assertIllegalInstant(t, err)
	})

	t.Run("overlap_prefers_earlier_offset", func(t *testing.T) {
		instant, err := zoned.DateTimeMillis(2024, 11, 3, 1, 30, 0, 0)
		if err != nil {
			t.Fatalf("DateTimeMillis: %v", err)
		}
		utc := mustDate(t, newGregorian(4), 2024, 11, 3) + 5*field.MillisPerHour + 30*field.MillisPerMinute
		if instant != utc {
			t.Errorf("2024-11-03T01:30 New York = %d, want %d (EDT)", instant, utc)
		}
	})

	t.Run("hour_add_is_elapsed_time", func(t *testing.T) {
		start, err := zoned.DateTimeMillis(2024, 3, 10, 1, 30, 0, 0)
		if err != nil {
			t.Fatalf("DateTimeMillis: %v", err)
		}
		result, err := fields.HourOfDay.Add(start, 1)
		if err != nil {
			t.Fatalf("HourOfDay.Add: %v", err)
		}
		if result-start != field.MillisPerHour {
			t.Errorf("one hour added %d ms", result-start)
		}
		if got := fields.HourOfDay.Get(result); got != 3 {
			t.Errorf("01:30 EST + 1 hour reads hour %d, want 3", got)
		}
	})

	t.Run("day_add_keeps_wall_time", func(t *testing.T) {
		start, err := zoned.DateTimeMillis(2024, 3, 9, 12, 0, 0, 0)
		if err != nil {
			t.Fatalf("DateTimeMillis: %v", err)
		}
		for name, add := range map[string]func(int64, int64) (int64, error){
			"field":    fields.DayOfMonth.Add,
			"duration": fields.Days.Add,
		} {
			result, err := add(start, 1)
			if err != nil {
				t.Fatalf("%s add: %v", name, err)
			}
			if result-start != 23*field.MillisPerHour {
				t.Errorf("%s: one day across spring forward lasted %d ms", name, result-start)
			}
			if got := fields.HourOfDay.Get(result); got != 12 {
				t.Errorf("%s: wall time moved to hour %d", name, got)
			}
		}
	})

	t.Run("day_difference_counts_local_days", func(t *testing.T) {
		start, _ := zoned.DateTimeMillis(2024, 3, 9, 12, 0, 0, 0)
		end, _ := zoned.DateTimeMillis(2024, 3, 11, 12, 0, 0, 0)
		days, err := fields.Days.Difference(end, start)
		if err != nil || days != 2 {
			t.Errorf("days between 03-09 and 03-11 = %d, %v; want 2", days, err)
		}
	})
}

func TestZonedArithmeticOverflow(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		instant int64
	}{
		{"ahead_of_utc_near_max", field.MillisPerHour, math.MaxInt64 - 1000},
		{"behind_utc_near_min", -field.MillisPerHour, math.MinInt64 + 1000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fields := mustInstance(t, zone.Fixed(test.offset), GregorianCutover, true, 4).Fields()
			operations := map[string]func() error{
				"HourOfDay.Add": func() error {
					_, err := fields.HourOfDay.Add(test.instant, 1)
					return err
				},
				"DayOfMonth.Add": func() error {
					_, err := fields.DayOfMonth.Add(test.instant, 1)
					return err
				},
				"MillisOfDay.Set": func() error {
					_, err := fields.MillisOfDay.Set(test.instant, 0)
					return err
				},
				"MinuteOfHour.RoundFloor": func() error {
					_, err := fields.MinuteOfHour.RoundFloor(test.instant)
					return err
				},
				"HourOfDay.Remainder": func() error {
					_, err := fields.HourOfDay.Remainder(test.instant)
					return err
				},
				"HourOfDay.Difference": func() error {
					_, err := fields.HourOfDay.Difference(test.instant, 0)
					return err
				},
			}
			for name, operation := range operations {
				if err := operation(); !errors.Is(err, field.ErrOverflow) {
					t.Errorf("%s: error = %v, want ErrOverflow", name, err)
				}
			}
		})
	}
}
