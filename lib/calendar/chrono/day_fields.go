// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

// preciseUnit supplies the arithmetic of fields counted in whole days
// or weeks. Adding and rounding are exact; only the value ranges
// differ between the fields embedding it.
type preciseUnit struct {
	field.Base
	c    *basicChronology
	unit *field.PreciseDurationField

	// shift moves the rounding grid: weeks start on Monday, three days
	// after the epoch's Thursday.
	shift int64
}

func (f *preciseUnit) Add(instant, value int64) (int64, error) {
	return f.unit.Add(instant, value)
}

func (f *preciseUnit) Difference(minuend, subtrahend int64) (int64, error) {
	return f.unit.Difference(minuend, subtrahend)
}

func (f *preciseUnit) DurationField() field.DurationField { return f.unit }

func (f *preciseUnit) RoundFloor(instant int64) (int64, error) {
	return field.PreciseRoundFloor(instant+f.shift, f.unit.UnitMillis()) - f.shift, nil
}

func (f *preciseUnit) RoundCeiling(instant int64) (int64, error) {
	return field.PreciseRoundCeiling(instant+f.shift, f.unit.UnitMillis()) - f.shift, nil
}

func (f *preciseUnit) Remainder(instant int64) (int64, error) {
	return field.PreciseRemainder(instant+f.shift, f.unit.UnitMillis()), nil
}

func (f *preciseUnit) RoundHalfFloor(instant int64) (int64, error) {
	floor, _ := f.RoundFloor(instant)
	ceiling, _ := f.RoundCeiling(instant)
	if ceiling-instant < instant-floor {
		return ceiling, nil
	}
	return floor, nil
}

func (f *preciseUnit) RoundHalfCeiling(instant int64) (int64, error) {
	floor, _ := f.RoundFloor(instant)
	ceiling, _ := f.RoundCeiling(instant)
	if instant-floor < ceiling-instant {
		return floor, nil
	}
	return ceiling, nil
}

// dayOfMonthField runs 1 through the length of the instant's month.
type dayOfMonthField struct {
	preciseUnit
	months field.DurationField
}

func (f *dayOfMonthField) Get(instant int64) int { return f.c.dayOfMonth(instant) }

// Set accepts 1..28 anywhere; larger days are checked against the
// instant's month.
func (f *dayOfMonthField) Set(instant int64, value int) (int64, error) {
	maxForSet := 28
	if value > 28 || value < 1 {
		maxForSet = f.c.daysInMonthAt(instant)
	}
	return field.PreciseSet(f, field.MillisPerDay, instant, value, maxForSet)
}

func (f *dayOfMonthField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *dayOfMonthField) IsLeap(instant int64) bool { return f.c.isLeapDay(instant) }

func (f *dayOfMonthField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *dayOfMonthField) RangeDurationField() field.DurationField { return f.months }
func (f *dayOfMonthField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *dayOfMonthField) MinimumValue() int                       { return 1 }
func (f *dayOfMonthField) MaximumValue() int                       { return 31 }
func (f *dayOfMonthField) MinimumValueAt(int64) int                { return 1 }

func (f *dayOfMonthField) MaximumValueAt(instant int64) int {
	return f.c.daysInMonthAt(instant)
}

func (f *dayOfMonthField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// dayOfYearField runs 1 through 365 or 366.
type dayOfYearField struct {
	preciseUnit
	years field.DurationField
}

func (f *dayOfYearField) Get(instant int64) int { return f.c.dayOfYear(instant) }

func (f *dayOfYearField) Set(instant int64, value int) (int64, error) {
	maxForSet := 365
	if value > 365 || value < 1 {
		maxForSet = f.MaximumValueAt(instant)
	}
	return field.PreciseSet(f, field.MillisPerDay, instant, value, maxForSet)
}

func (f *dayOfYearField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *dayOfYearField) IsLeap(instant int64) bool {
	return f.c.dayOfYear(instant) == 366
}

func (f *dayOfYearField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *dayOfYearField) RangeDurationField() field.DurationField { return f.years }
func (f *dayOfYearField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *dayOfYearField) MinimumValue() int                       { return 1 }
func (f *dayOfYearField) MaximumValue() int                       { return 366 }
func (f *dayOfYearField) MinimumValueAt(int64) int                { return 1 }

func (f *dayOfYearField) MaximumValueAt(instant int64) int {
	return f.c.daysInYear(f.c.year(instant))
}

func (f *dayOfYearField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// dayOfWeekField runs 1 (Monday) through 7 (Sunday).
type dayOfWeekField struct {
	preciseUnit
}

func (f *dayOfWeekField) Get(instant int64) int { return f.c.dayOfWeek(instant) }

func (f *dayOfWeekField) Set(instant int64, value int) (int64, error) {
	return field.PreciseSet(f, field.MillisPerDay, instant, value, 7)
}

func (f *dayOfWeekField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *dayOfWeekField) RangeDurationField() field.DurationField { return weeksDuration }
func (f *dayOfWeekField) MinimumValue() int                       { return 1 }
func (f *dayOfWeekField) MaximumValue() int                       { return 7 }
func (f *dayOfWeekField) MinimumValueAt(int64) int                { return 1 }
func (f *dayOfWeekField) MaximumValueAt(int64) int                { return 7 }

func (f *dayOfWeekField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// weekOfWeekyearField runs 1 through 52 or 53. Weeks start on Monday.
type weekOfWeekyearField struct {
	preciseUnit
	weekyears field.DurationField
}

func (f *weekOfWeekyearField) Get(instant int64) int { return f.c.weekOfWeekyear(instant) }

func (f *weekOfWeekyearField) Set(instant int64, value int) (int64, error) {
	maxForSet := 52
	if value > 52 {
		maxForSet = f.MaximumValueAt(instant)
	}
	return field.PreciseSet(f, field.MillisPerWeek, instant, value, maxForSet)
}

func (f *weekOfWeekyearField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *weekOfWeekyearField) RangeDurationField() field.DurationField { return f.weekyears }
func (f *weekOfWeekyearField) MinimumValue() int                       { return 1 }
func (f *weekOfWeekyearField) MaximumValue() int                       { return 53 }
func (f *weekOfWeekyearField) MinimumValueAt(int64) int                { return 1 }

func (f *weekOfWeekyearField) MaximumValueAt(instant int64) int {
	return f.c.weeksInYear(f.c.weekyear(instant))
}

func (f *weekOfWeekyearField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// weekyearField is the year of the week-based calendar. Week 1 of a
// weekyear is the first week holding at least the chronology's minimum
// number of January days, so the weekyear can begin in late December
// or early January.
type weekyearField struct {
	field.Base
	c *basicChronology
}

// Offset of the start of week 53 from the start of its weekyear.
const week53Millis = 52 * int64(field.MillisPerWeek)

func (f *weekyearField) Get(instant int64) int { return f.c.weekyear(instant) }

// Set keeps the week number and day of week, clamping the week to the
// target weekyear's length. Setting the calendar year lands within a
// week of the target; the result is then corrected by one week if it
// fell into a neighbouring weekyear, moved to the requested week and
// finally restored to the original day of week.
func (f *weekyearField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.Weekyear, value, f.c.minYear(), f.c.maxYear()); err != nil {
		return 0, err
	}
	current := f.Get(instant)
	if current == value {
		return instant, nil
	}
	dayOfWeek := f.c.dayOfWeek(instant)
	week := min(f.c.weekOfWeekyear(instant), f.c.weeksInYear(current), f.c.weeksInYear(value))

	work := f.c.setYear(instant, value)
	switch landed := f.Get(work); {
	case landed < value:
		work += field.MillisPerWeek
	case landed > value:
		work -= field.MillisPerWeek
	}
	work += int64(week-f.c.weekOfWeekyear(work)) * field.MillisPerWeek
	return work + int64(dayOfWeek-f.c.dayOfWeek(work))*field.MillisPerDay, nil
}

func (f *weekyearField) Add(instant, value int64) (int64, error) {
	if value == 0 {
		return instant, nil
	}
	return addYears(f, instant, value)
}

func (f *weekyearField) AddWrapField(instant int64, amount int) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	year, err := field.WrappedValue(f.Get(instant), amount, f.c.minYear(), f.c.maxYear())
	if err != nil {
		return 0, err
	}
	return f.Set(instant, year)
}

func (f *weekyearField) Difference(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		difference, err := f.Difference(subtrahend, minuend)
		return -difference, err
	}
	minuendWeekyear := f.Get(minuend)
	subtrahendWeekyear := f.Get(subtrahend)
	minuendRemainder, err := f.Remainder(minuend)
	if err != nil {
		return 0, err
	}
	subtrahendRemainder, err := f.Remainder(subtrahend)
	if err != nil {
		return 0, err
	}
	// A week-53 subtrahend compares against a 52-week minuend as if it
	// were week 52.
	if subtrahendRemainder >= week53Millis && f.c.weeksInYear(minuendWeekyear) <= 52 {
		subtrahendRemainder -= field.MillisPerWeek
	}
	difference := int64(minuendWeekyear) - int64(subtrahendWeekyear)
	if minuendRemainder < subtrahendRemainder {
		difference--
	}
	return difference, nil
}

func (f *weekyearField) IsLeap(instant int64) bool {
	return f.c.weeksInYear(f.Get(instant)) > 52
}

func (f *weekyearField) LeapAmount(instant int64) int {
	return f.c.weeksInYear(f.Get(instant)) - 52
}

func (f *weekyearField) DurationField() field.DurationField {
	return field.Linked(field.WeekYears, f.c.rules.averageMillisPerYear(), f)
}

func (f *weekyearField) RangeDurationField() field.DurationField { return nil }
func (f *weekyearField) LeapDurationField() field.DurationField  { return weeksDuration }
func (f *weekyearField) MinimumValue() int                       { return f.c.minYear() }
func (f *weekyearField) MaximumValue() int                       { return f.c.maxYear() }
func (f *weekyearField) MinimumValueAt(int64) int                { return f.c.minYear() }
func (f *weekyearField) MaximumValueAt(int64) int                { return f.c.maxYear() }

func (f *weekyearField) RoundFloor(instant int64) (int64, error) {
	weekStart := field.PreciseRoundFloor(instant+3*field.MillisPerDay, field.MillisPerWeek) - 3*field.MillisPerDay
	week := f.c.weekOfWeekyear(weekStart)
	return weekStart - int64(week-1)*field.MillisPerWeek, nil
}

func (f *weekyearField) RoundCeiling(instant int64) (int64, error) {
	return field.RoundCeilingVia(f, instant)
}

func (f *weekyearField) RoundHalfFloor(instant int64) (int64, error) {
	return field.RoundHalfFloorVia(f, instant)
}

func (f *weekyearField) RoundHalfCeiling(instant int64) (int64, error) {
	return field.RoundHalfCeilingVia(f, instant)
}

func (f *weekyearField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

func (f *weekyearField) Remainder(instant int64) (int64, error) {
	return field.RemainderVia(f, instant)
}
