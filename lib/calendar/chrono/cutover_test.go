// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"testing"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

func defaultGJ(t *testing.T) Chronology {
	t.Helper()
	return mustInstance(t, zone.UTC, DefaultCutover, true, 4)
}

func TestCutoverGap(t *testing.T) {
	gj := defaultGJ(t)
	for day := 5; day <= 14; day++ {
		_, err := gj.DateTimeMillis(1582, 10, day, 0, 0, 0, 0)
		assertIllegalInstant(t, err)
	}

	lastJulian := mustDate(t, gj, 1582, 10, 4)
	firstGregorian := mustDate(t, gj, 1582, 10, 15)
	if firstGregorian != DefaultCutover {
		t.Errorf("1582-10-15 = %d, want the cutover %d", firstGregorian, DefaultCutover)
	}
	if firstGregorian-lastJulian != field.MillisPerDay {
		t.Errorf("1582-10-15 follows 1582-10-04 by %d ms, want one day", firstGregorian-lastJulian)
	}
	if got := gj.Fields().DayOfWeek.Get(lastJulian); got != 4 {
		t.Errorf("1582-10-04 was a Thursday, got day of week %d", got)
	}
	if gap := gj.(*cutoverChronology).Gap(); gap != 10*field.MillisPerDay {
		t.Errorf("gap = %d, want ten days", gap)
	}
}

func TestCutoverGapThroughDecorators(t *testing.T) {
	decorated := mustInstance(t, zone.Fixed(field.MillisPerHour), DefaultCutover, false, 4)
	if gap, ok := CutoverGap(decorated); !ok || gap != 10*field.MillisPerDay {
		t.Errorf("CutoverGap(%s) = %d, %v, want ten days", decorated, gap, ok)
	}
	for _, cutover := range []int64{GregorianCutover, JulianCutover} {
		single := mustInstance(t, zone.Fixed(field.MillisPerHour), cutover, false, 4)
		if _, ok := CutoverGap(single); ok {
			t.Errorf("CutoverGap(%s) reported a gap", single)
		}
	}
}

func TestCutoverLeapDays(t *testing.T) {
	gj := defaultGJ(t)
	if _, err := gj.DateTimeMillis(1500, 2, 29, 0, 0, 0, 0); err != nil {
		t.Errorf("1500-02-29 exists before the cutover: %v", err)
	}
	_, err := gj.DateTimeMillis(1700, 2, 29, 0, 0, 0, 0)
	assertIllegalField(t, err, field.DayOfMonth)
}

func TestCutoverContinuity(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	start := mustDate(t, gj, 1582, 1, 1)
	end := mustDate(t, gj, 1583, 3, 1)

	previousYear := fields.Year.Get(start)
	previousDay := fields.DayOfYear.Get(start)
	previousWeek := fields.WeekOfWeekyear.Get(start)
	previousWeekyear := fields.Weekyear.Get(start)
	for instant := start + field.MillisPerDay; instant <= end; instant += field.MillisPerDay {
		if got := fields.Era.Get(instant); got != field.CE {
			t.Fatalf("era at %d = %d", instant, got)
		}
		year, day := fields.Year.Get(instant), fields.DayOfYear.Get(instant)
		switch {
		case year == previousYear && day == previousDay+1:
		case year == previousYear+1 && day == 1:
		default:
			t.Fatalf("(%d, %d) follows (%d, %d)", year, day, previousYear, previousDay)
		}
		weekyear, week := fields.Weekyear.Get(instant), fields.WeekOfWeekyear.Get(instant)
		if weekyear != previousWeekyear || week != previousWeek {
			switch {
			case weekyear == previousWeekyear && week == previousWeek+1:
			case weekyear == previousWeekyear+1 && week == 1:
			default:
				t.Fatalf("week (%d, %d) follows (%d, %d)", weekyear, week, previousWeekyear, previousWeek)
			}
			if fields.DayOfWeek.Get(instant) != 1 {
				t.Fatalf("week (%d, %d) starts on day %d", weekyear, week, fields.DayOfWeek.Get(instant))
			}
		}
		previousYear, previousDay = year, day
		previousWeekyear, previousWeek = weekyear, week
	}
	if got := fields.DayOfYear.MaximumValueAt(mustDate(t, gj, 1582, 12, 31)); got != 355 {
		t.Errorf("1582 has %d days, want 355", got)
	}
}

func TestCutoverAddYearOnGregorianSide(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	result, err := fields.Year.Add(mustDate(t, gj, 1582, 10, 15), 1)
	if err != nil {
		t.Fatalf("Year.Add: %v", err)
	}
	if want := mustDate(t, gj, 1583, 10, 15); result != want {
		t.Errorf("1582-10-15 + 1 year = %+v, want 1583-10-15", dateOf(gj, result))
	}
	result, err = fields.Years.Add(mustDate(t, gj, 1582, 10, 15), 1)
	if err != nil {
		t.Fatalf("Years.Add: %v", err)
	}
	if got := dateOf(gj, result); got != (ymd{1583, 10, 15}) {
		t.Errorf("duration 1582-10-15 + 1 year = %+v, want 1583-10-15", got)
	}
}

func TestCutoverAddAcrossGap(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	tests := []struct {
		name   string
		field  field.DateTimeField
		from   ymd
		amount int64
		want   ymd
	}{
		{"month_forward_into_gregorian", fields.MonthOfYear, ymd{1582, 9, 20}, 1, ymd{1582, 10, 20}},
		{"month_backward_into_julian", fields.MonthOfYear, ymd{1582, 11, 20}, -2, ymd{1582, 9, 20}},
		{"year_backward_into_julian", fields.Year, ymd{1600, 3, 1}, -100, ymd{1500, 3, 1}},
		{"year_forward_into_gregorian", fields.Year, ymd{1500, 3, 1}, 100, ymd{1600, 3, 1}},
		{"day_across_gap", fields.DayOfMonth, ymd{1582, 10, 4}, 1, ymd{1582, 10, 15}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			from := mustDate(t, gj, test.from.year, test.from.month, test.from.day)
			result, err := test.field.Add(from, test.amount)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if got := dateOf(gj, result); got != test.want {
				t.Errorf("%+v + %d = %+v, want %+v", test.from, test.amount, got, test.want)
			}
		})
	}
}

func TestCutoverDifference(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	julianSide := mustDate(t, gj, 1582, 1, 1)
	gregorianSide := mustDate(t, gj, 1583, 1, 1)

	if years, err := fields.Year.Difference(gregorianSide, julianSide); err != nil || years != 1 {
		t.Errorf("years from 1582-01-01 to 1583-01-01 = %d, %v; want 1", years, err)
	}
	if years, err := fields.Year.Difference(julianSide, gregorianSide); err != nil || years != -1 {
		t.Errorf("years from 1583-01-01 to 1582-01-01 = %d, %v; want -1", years, err)
	}
	if months, err := fields.MonthOfYear.Difference(gregorianSide, julianSide); err != nil || months != 12 {
		t.Errorf("months from 1582-01-01 to 1583-01-01 = %d, %v; want 12", months, err)
	}
	if days, err := fields.Days.Difference(gregorianSide, julianSide); err != nil || days != 355 {
		t.Errorf("days from 1582-01-01 to 1583-01-01 = %d, %v; want 355", days, err)
	}
}

func TestCutoverDayOfMonthRange(t *testing.T) {
	gj := defaultGJ(t)
	dayOfMonth := gj.Fields().DayOfMonth

	julianSide := mustDate(t, gj, 1582, 10, 1)
	if got := dayOfMonth.MaximumValueAt(julianSide); got != 4 {
		t.Errorf("maximum day of Julian October 1582 = %d, want 4", got)
	}
	gregorianSide := mustDate(t, gj, 1582, 10, 20)
	if got := dayOfMonth.MinimumValueAt(gregorianSide); got != 15 {
		t.Errorf("minimum day of Gregorian October 1582 = %d, want 15", got)
	}
	if got := dayOfMonth.MaximumValueAt(gregorianSide); got != 31 {
		t.Errorf("maximum day of Gregorian October 1582 = %d, want 31", got)
	}

	_, err := dayOfMonth.Set(julianSide, 10)
	assertIllegalField(t, err, field.DayOfMonth)
	_, err = dayOfMonth.Set(gregorianSide, 10)
	assertIllegalField(t, err, field.DayOfMonth)

	result, err := dayOfMonth.Set(julianSide, 31)
	if err == nil {
		t.Errorf("setting Julian 1582-10-01 to the 31st = %+v, want an error", dateOf(gj, result))
	}
	result, err = dayOfMonth.Set(gregorianSide, 3)
	if err != nil {
		t.Fatalf("setting the 3rd from the Gregorian side: %v", err)
	}
	if got := dateOf(gj, result); got != (ymd{1582, 10, 3}) {
		t.Errorf("setting the 3rd from the Gregorian side = %+v, want 1582-10-03", got)
	}
}

func TestCutoverWeekyearSet(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	start := mustDate(t, gj, 2003, 6, 30)
	if fields.DayOfWeek.Get(start) != 1 || fields.WeekOfWeekyear.Get(start) != 27 {
		t.Fatalf("2003-06-30 is day %d of week %d, want Monday of week 27",
			fields.DayOfWeek.Get(start), fields.WeekOfWeekyear.Get(start))
	}

	result, err := fields.Weekyear.Set(start, -2003)
	if err != nil {
		t.Fatalf("Weekyear.Set(-2003): %v", err)
	}
	if got := fields.Weekyear.Get(result); got != -2003 {
		t.Errorf("weekyear = %d, want -2003", got)
	}
	if got := fields.WeekOfWeekyear.Get(result); got != 27 {
		t.Errorf("week of weekyear = %d, want 27", got)
	}
	if got := fields.DayOfWeek.Get(result); got != 1 {
		t.Errorf("day of week = %d, want 1", got)
	}
	if got := fields.MillisOfDay.Get(result); got != 0 {
		t.Errorf("millis of day = %d, want 0", got)
	}
}

func TestCutoverWeekyearSetClampsWeek53(t *testing.T) {
	gj := defaultGJ(t)
	fields := gj.Fields()
	start := mustDate(t, gj, 2020, 12, 31)
	if got := fields.WeekOfWeekyear.Get(start); got != 53 {
		t.Fatalf("2020-12-31 is in week %d, want 53", got)
	}

	// Find a weekyear with 53 weeks in the Gregorian calendar and 52
	// in the Julian one, so the leaf keeps week 53 and the conversion
	// has to clamp it.
	gregorian, julian := newGregorian(4).Fields(), newJulian(4).Fields()
	target := 0
	for weekyear := 1500; weekyear > 0 && target == 0; weekyear-- {
		inGregorian, err := gregorian.Weekyear.Set(0, weekyear)
		if err != nil {
			t.Fatal(err)
		}
		inJulian, err := julian.Weekyear.Set(0, weekyear)
		if err != nil {
			t.Fatal(err)
		}
		if gregorian.WeekOfWeekyear.MaximumValueAt(inGregorian) == 53 && julian.WeekOfWeekyear.MaximumValueAt(inJulian) == 52 {
			target = weekyear
		}
	}
	if target == 0 {
		t.Fatal("no weekyear before 1500 is longer in the Gregorian calendar")
	}

	result, err := fields.Weekyear.Set(start, target)
	if err != nil {
		t.Fatalf("Weekyear.Set(%d): %v", target, err)
	}
	if got := fields.Weekyear.Get(result); got != target {
		t.Errorf("weekyear = %d, want %d", got, target)
	}
	if got := fields.WeekOfWeekyear.Get(result); got != 52 {
		t.Errorf("week of weekyear = %d, want 52", got)
	}
	if got := fields.DayOfWeek.Get(result); got != 4 {
		t.Errorf("day of week = %d, want Thursday", got)
	}

	// Asking for week 53 itself still fails: that week does not exist.
	_, err = fields.WeekOfWeekyear.Set(result, 53)
	assertIllegalField(t, err, field.WeekOfWeekyear)
}

// weekyearOfCentury moves in weekyears but crosses the cutover by
// date, like the year fields: the Julian result keeps the month and
// day the Gregorian arithmetic produced.
func TestCutoverWeekyearOfCenturyConvertsByDate(t *testing.T) {
	gj := defaultGJ(t)
	gregorian := newGregorian(4)
	start := mustDate(t, gj, 2000, 6, 15)

	result, err := gj.Fields().WeekyearOfCentury.Add(start, -500)
	if err != nil {
		t.Fatalf("WeekyearOfCentury.Add(-500): %v", err)
	}
	intermediate, err := gregorian.Fields().Weekyear.Add(start, -500)
	if err != nil {
		t.Fatalf("Gregorian Weekyear.Add(-500): %v", err)
	}
	want := dateOf(gregorian, intermediate)
	if got := dateOf(gj, result); got != want {
		t.Errorf("500 weekyears before 2000-06-15 = %+v, want the Gregorian date %+v read as Julian", got, want)
	}
}

func TestNewCutoverValidation(t *testing.T) {
	julian4, julian1 := newJulian(4), newJulian(1)
	gregorian4 := newGregorian(4)

	_, err := NewCutover(julian1, gregorian4, DefaultCutover)
	assertConfigurationError(t, err)

	traditional, err := WithTraditionalCentury(julian4)
	if err != nil {
		t.Fatalf("WithTraditionalCentury: %v", err)
	}
	_, err = NewCutover(traditional, gregorian4, DefaultCutover)
	assertConfigurationError(t, err)

	zoned, err := WithZone(gregorian4, zone.Fixed(3_600_000))
	if err != nil {
		t.Fatalf("WithZone: %v", err)
	}
	_, err = NewCutover(julian4, zoned, DefaultCutover)
	assertConfigurationError(t, err)

	yearZero, err := gregorian4.DateTimeMillis(0, 6, 1, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewCutover(julian4, gregorian4, yearZero)
	assertConfigurationError(t, err)

	_, err = NewCutover(julian4, gregorian4, GregorianCutover)
	assertConfigurationError(t, err)

	year1, err := gregorian4.DateTimeMillis(1, 1, 1, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	early, err := NewCutover(julian4, gregorian4, year1)
	if err != nil {
		t.Fatalf("cutover at 0001-01-01: %v", err)
	}
	if got := early.(*cutoverChronology).Gap(); got != -2*field.MillisPerDay {
		t.Errorf("gap at 0001-01-01 = %d days, want -2", got/field.MillisPerDay)
	}
}
