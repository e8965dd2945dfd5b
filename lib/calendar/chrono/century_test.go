// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"testing"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

func TestTraditionalCentury(t *testing.T) {
	traditional := mustInstance(t, zone.UTC, DefaultCutover, false, 4)
	iso := mustInstance(t, zone.UTC, DefaultCutover, true, 4)

	tests := []struct {
		name                 string
		year                 int
		century, yearOfCent  int
		isoCentury, isoOfCen int
	}{
		{"last_year_of_twentieth", 2000, 20, 100, 20, 0},
		{"first_year_of_twentyfirst", 2001, 21, 1, 20, 1},
		{"mid_century", 1950, 20, 50, 19, 50},
		{"first_year_ce", 1, 1, 1, 0, 1},
		{"first_year_bce", -1, 1, 1, 0, 1},
		{"hundredth_year_bce", -100, 1, 100, 1, 0},
		{"hundred_and_first_bce", -101, 2, 1, 1, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			instant := mustDate(t, traditional, test.year, 6, 1)
			fields := traditional.Fields()
			if got := fields.CenturyOfEra.Get(instant); got != test.century {
				t.Errorf("traditional century of %d = %d, want %d", test.year, got, test.century)
			}
			if got := fields.YearOfCentury.Get(instant); got != test.yearOfCent {
				t.Errorf("traditional year of century of %d = %d, want %d", test.year, got, test.yearOfCent)
			}

			isoInstant := mustDate(t, iso, test.year, 6, 1)
			if isoInstant != instant {
				t.Fatalf("century numbering moved %d-06-01", test.year)
			}
			if got := iso.Fields().CenturyOfEra.Get(instant); got != test.isoCentury {
				t.Errorf("ISO century of %d = %d, want %d", test.year, got, test.isoCentury)
			}
			if got := iso.Fields().YearOfCentury.Get(instant); got != test.isoOfCen {
				t.Errorf("ISO year of century of %d = %d, want %d", test.year, got, test.isoOfCen)
			}
		})
	}
}

func TestTraditionalCenturySet(t *testing.T) {
	traditional := mustInstance(t, zone.UTC, GregorianCutover, false, 4)
	fields := traditional.Fields()
	start := mustDate(t, traditional, 2000, 3, 15)

	result, err := fields.CenturyOfEra.Set(start, 19)
	if err != nil {
		t.Fatalf("CenturyOfEra.Set(19): %v", err)
	}
	if got := dateOf(traditional, result); got != (ymd{1900, 3, 15}) {
		t.Errorf("century 19 from 2000-03-15 = %+v, want 1900-03-15", got)
	}

	result, err = fields.YearOfCentury.Set(start, 1)
	if err != nil {
		t.Fatalf("YearOfCentury.Set(1): %v", err)
	}
	if got := dateOf(traditional, result); got != (ymd{1901, 3, 15}) {
		t.Errorf("year of century 1 from 2000-03-15 = %+v, want 1901-03-15", got)
	}

	_, err = fields.YearOfCentury.Set(start, 0)
	assertIllegalField(t, err, fields.YearOfCentury.Type())
}

func TestTraditionalCenturySetAcrossCutover(t *testing.T) {
	gj := mustInstance(t, zone.UTC, DefaultCutover, false, 4)
	fields := gj.Fields()

	tests := []struct {
		name  string
		start ymd
		field field.DateTimeField
		value int
		want  ymd
	}{
		{"century_into_julian", ymd{2000, 3, 15}, fields.CenturyOfEra, 15, ymd{1500, 3, 15}},
		{"century_into_gregorian", ymd{1500, 3, 15}, fields.CenturyOfEra, 20, ymd{2000, 3, 15}},
		{"year_of_century_into_julian", ymd{1590, 3, 15}, fields.YearOfCentury, 70, ymd{1570, 3, 15}},
		{"year_of_century_into_gregorian", ymd{1570, 3, 15}, fields.YearOfCentury, 90, ymd{1590, 3, 15}},
		{"century_down_bce", ymd{-150, 6, 1}, fields.CenturyOfEra, 1, ymd{-50, 6, 1}},
		{"century_up_bce", ymd{-50, 6, 1}, fields.CenturyOfEra, 3, ymd{-250, 6, 1}},
		{"year_of_century_bce", ymd{-150, 6, 1}, fields.YearOfCentury, 1, ymd{-101, 6, 1}},
		{"last_year_of_first_century_bce", ymd{-1, 6, 1}, fields.YearOfCentury, 100, ymd{-100, 6, 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start := mustDate(t, gj, test.start.year, test.start.month, test.start.day)
			result, err := test.field.Set(start, test.value)
			if err != nil {
				t.Fatalf("%s.Set(%+v, %d): %v", test.field.Name(), test.start, test.value, err)
			}
			if got := dateOf(gj, result); got != test.want {
				t.Errorf("%s.Set(%+v, %d) = %+v, want %+v", test.field.Name(), test.start, test.value, got, test.want)
			}
			if got := test.field.Get(result); got != test.value {
				t.Errorf("%s reads %d after Set(%d)", test.field.Name(), got, test.value)
			}
			if got, want := fields.Era.Get(result), fields.Era.Get(start); got != want {
				t.Errorf("era changed from %d to %d", want, got)
			}
		})
	}
}

func TestWithTraditionalCenturyValidation(t *testing.T) {
	gregorian := newGregorian(4)
	traditional, err := WithTraditionalCentury(gregorian)
	if err != nil {
		t.Fatalf("WithTraditionalCentury: %v", err)
	}
	if traditional.IsCenturyISO() {
		t.Error("traditional chronology reports ISO centuries")
	}
	_, err = WithTraditionalCentury(traditional)
	assertConfigurationError(t, err)

	zoned, err := WithZone(gregorian, zone.Fixed(60_000))
	if err != nil {
		t.Fatalf("WithZone: %v", err)
	}
	_, err = WithTraditionalCentury(zoned)
	assertConfigurationError(t, err)
}
