// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

var (
	secondsDuration  = field.NewPreciseDuration(field.Seconds, field.MillisPerSecond)
	minutesDuration  = field.NewPreciseDuration(field.Minutes, field.MillisPerMinute)
	hoursDuration    = field.NewPreciseDuration(field.Hours, field.MillisPerHour)
	halfDaysDuration = field.NewPreciseDuration(field.HalfDays, field.MillisPerHalfDay)
	daysDuration     = field.NewPreciseDuration(field.Days, field.MillisPerDay)
	weeksDuration    = field.NewPreciseDuration(field.Weeks, field.MillisPerWeek)
)

// yearField is the proleptic year, astronomical numbering (year zero
// is 1 BCE).
type yearField struct {
	field.Base
	c *basicChronology
}

func newYearField(c *basicChronology) *yearField {
	return &yearField{Base: field.Base{FieldType: field.Year}, c: c}
}

func (f *yearField) Get(instant int64) int { return f.c.year(instant) }

func (f *yearField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.Year, value, f.c.minYear(), f.c.maxYear()); err != nil {
		return 0, err
	}
	return f.c.setYear(instant, value), nil
}

func (f *yearField) Add(instant, value int64) (int64, error) {
	if value == 0 {
		return instant, nil
	}
	return addYears(f, instant, value)
}

// addYears sets f to its current value plus years. The sum is bounds
// checked by Set, so leaving the year range is an error, never a wrap.
func addYears(f field.DateTimeField, instant, years int64) (int64, error) {
	sum, err := field.SafeAdd(int64(f.Get(instant)), years)
	if err != nil {
		return 0, err
	}
	year, err := field.SafeToInt(sum)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, year)
}

func (f *yearField) AddWrapField(instant int64, amount int) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	year, err := field.WrappedValue(f.Get(instant), amount, f.c.minYear(), f.c.maxYear())
	if err != nil {
		return 0, err
	}
	return f.Set(instant, year)
}

func (f *yearField) Difference(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		return -f.c.yearDifference(subtrahend, minuend), nil
	}
	return f.c.yearDifference(minuend, subtrahend), nil
}

func (f *yearField) IsLeap(instant int64) bool { return f.c.isLeapYear(f.Get(instant)) }

func (f *yearField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *yearField) DurationField() field.DurationField {
	return field.Linked(field.Years, f.c.rules.averageMillisPerYear(), f)
}

func (f *yearField) RangeDurationField() field.DurationField { return nil }
func (f *yearField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *yearField) MinimumValue() int                       { return f.c.minYear() }
func (f *yearField) MaximumValue() int                       { return f.c.maxYear() }
func (f *yearField) MinimumValueAt(int64) int                { return f.c.minYear() }
func (f *yearField) MaximumValueAt(int64) int                { return f.c.maxYear() }

func (f *yearField) RoundFloor(instant int64) (int64, error) {
	return f.c.yearMillis(f.Get(instant)), nil
}

func (f *yearField) RoundCeiling(instant int64) (int64, error) {
	year := f.Get(instant)
	if start := f.c.yearMillis(year); start != instant {
		return f.c.yearMillis(year + 1), nil
	}
	return instant, nil
}

func (f *yearField) RoundHalfFloor(instant int64) (int64, error) {
	return field.RoundHalfFloorVia(f, instant)
}

func (f *yearField) RoundHalfCeiling(instant int64) (int64, error) {
	return field.RoundHalfCeilingVia(f, instant)
}

func (f *yearField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

func (f *yearField) Remainder(instant int64) (int64, error) {
	return instant - f.c.yearMillis(f.Get(instant)), nil
}

// yearOfEraField counts years within the era: 1 CE is year 1 and the
// astronomical year zero is 1 BCE, year 1 of its era.
type yearOfEraField struct {
	field.DateTimeField
	c *basicChronology
}

func (f *yearOfEraField) Type() field.DateTimeFieldType { return field.YearOfEra }
func (f *yearOfEraField) Name() string                  { return field.YearOfEra.String() }

func (f *yearOfEraField) Get(instant int64) int {
	year := f.DateTimeField.Get(instant)
	if year <= 0 {
		return 1 - year
	}
	return year
}

func (f *yearOfEraField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.YearOfEra, value, 1, f.MaximumValue()); err != nil {
		return 0, err
	}
	if f.c.year(instant) <= 0 {
		value = 1 - value
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *yearOfEraField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *yearOfEraField) MinimumValue() int        { return 1 }
func (f *yearOfEraField) MinimumValueAt(int64) int { return 1 }

func (f *yearOfEraField) MaximumValue() int {
	return max(f.DateTimeField.MaximumValue(), 1-f.DateTimeField.MinimumValue())
}

func (f *yearOfEraField) MaximumValueAt(int64) int { return f.MaximumValue() }

func (f *yearOfEraField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// isoYearOfEraField is the magnitude of the year as numbered by the
// wrapped field, so 1 BCE reads as 1 under Julian numbering and 0
// under astronomical numbering. It feeds the ISO century fields.
type isoYearOfEraField struct {
	field.DateTimeField
}

func (f *isoYearOfEraField) Type() field.DateTimeFieldType { return field.YearOfEra }
func (f *isoYearOfEraField) Name() string                  { return field.YearOfEra.String() }

func (f *isoYearOfEraField) Get(instant int64) int {
	year := f.DateTimeField.Get(instant)
	if year < 0 {
		return -year
	}
	return year
}

func (f *isoYearOfEraField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.YearOfEra, value, 0, f.MaximumValue()); err != nil {
		return 0, err
	}
	if f.DateTimeField.Get(instant) < 0 {
		value = -value
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *isoYearOfEraField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *isoYearOfEraField) MinimumValue() int        { return 0 }
func (f *isoYearOfEraField) MinimumValueAt(int64) int { return 0 }
func (f *isoYearOfEraField) MaximumValue() int        { return f.DateTimeField.MaximumValue() }
func (f *isoYearOfEraField) MaximumValueAt(int64) int { return f.DateTimeField.MaximumValue() }

func (f *isoYearOfEraField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

// eraField is BCE for astronomical years up to zero, CE after. It has
// no arithmetic.
type eraField struct {
	field.Base
	c *basicChronology
}

func (f *eraField) Get(instant int64) int {
	if f.c.year(instant) <= 0 {
		return field.BCE
	}
	return field.CE
}

// Set flips the era keeping the year of era: 2000 CE becomes 2000 BCE.
func (f *eraField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.Era, value, field.BCE, field.CE); err != nil {
		return 0, err
	}
	if f.Get(instant) == value {
		return instant, nil
	}
	year := 1 - f.c.year(instant)
	if err := field.VerifyValueBounds(field.Year, year, f.c.minYear(), f.c.maxYear()); err != nil {
		return 0, err
	}
	return f.c.setYear(instant, year), nil
}

func (f *eraField) unsupported(operation string) error {
	return &field.UnsupportedOperationError{Name: f.Name(), Operation: operation}
}

func (f *eraField) Add(int64, int64) (int64, error) { return 0, f.unsupported("Add") }

func (f *eraField) AddWrapField(int64, int) (int64, error) {
	return 0, f.unsupported("AddWrapField")
}

func (f *eraField) Difference(int64, int64) (int64, error) {
	return 0, f.unsupported("Difference")
}

func (f *eraField) RoundFloor(int64) (int64, error)       { return 0, f.unsupported("RoundFloor") }
func (f *eraField) RoundCeiling(int64) (int64, error)     { return 0, f.unsupported("RoundCeiling") }
func (f *eraField) RoundHalfFloor(int64) (int64, error)   { return 0, f.unsupported("RoundHalfFloor") }
func (f *eraField) RoundHalfCeiling(int64) (int64, error) { return 0, f.unsupported("RoundHalfCeiling") }
func (f *eraField) RoundHalfEven(int64) (int64, error)    { return 0, f.unsupported("RoundHalfEven") }
func (f *eraField) Remainder(int64) (int64, error)        { return 0, f.unsupported("Remainder") }

func (f *eraField) DurationField() field.DurationField {
	return field.NewUnsupportedDuration(field.Eras)
}

func (f *eraField) RangeDurationField() field.DurationField { return nil }
func (f *eraField) MinimumValue() int                       { return field.BCE }
func (f *eraField) MaximumValue() int                       { return field.CE }
func (f *eraField) MinimumValueAt(int64) int                { return field.BCE }
func (f *eraField) MaximumValueAt(int64) int                { return field.CE }

// monthOfYearField is the month, 1 through 12. Changing the month keeps
// the day of month where possible and clamps it to the new month's
// length otherwise.
type monthOfYearField struct {
	field.Base
	c     *basicChronology
	years field.DurationField
}

func (f *monthOfYearField) Get(instant int64) int { return f.c.monthOfYear(instant) }

func (f *monthOfYearField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.MonthOfYear, value, 1, 12); err != nil {
		return 0, err
	}
	year := f.c.year(instant)
	day := f.c.dayOfMonthIn(instant, year, f.c.monthOfYearIn(instant, year))
	day = min(day, f.c.daysInYearMonth(year, value))
	return f.c.yearMonthDayMillis(year, value, day) + int64(f.c.millisOfDay(instant)), nil
}

func (f *monthOfYearField) Add(instant, months int64) (int64, error) {
	if months == 0 {
		return instant, nil
	}
	year := f.c.year(instant)
	month := f.c.monthOfYearIn(instant, year)
	day := f.c.dayOfMonthIn(instant, year, month)

	total, err := field.SafeAdd(int64(month-1), months)
	if err != nil {
		return 0, err
	}
	newYear, err := field.SafeAdd(int64(year), field.FloorDiv(total, 12))
	if err != nil {
		return 0, err
	}
	if newYear < int64(f.c.minYear()) || newYear > int64(f.c.maxYear()) {
		return 0, field.NewIllegalFieldValue(field.Year, newYear, int64(f.c.minYear()), int64(f.c.maxYear()))
	}
	newMonth := int(field.FloorMod(total, 12)) + 1
	day = min(day, f.c.daysInYearMonth(int(newYear), newMonth))
	return f.c.yearMonthDayMillis(int(newYear), newMonth, day) + int64(f.c.millisOfDay(instant)), nil
}

func (f *monthOfYearField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *monthOfYearField) Difference(minuend, subtrahend int64) (int64, error) {
	if minuend < subtrahend {
		return -f.c.monthDifference(subtrahend, minuend), nil
	}
	return f.c.monthDifference(minuend, subtrahend), nil
}

func (f *monthOfYearField) IsLeap(instant int64) bool {
	year := f.c.year(instant)
	return f.c.isLeapYear(year) && f.c.monthOfYearIn(instant, year) == 2
}

func (f *monthOfYearField) LeapAmount(instant int64) int {
	if f.IsLeap(instant) {
		return 1
	}
	return 0
}

func (f *monthOfYearField) DurationField() field.DurationField {
	return field.Linked(field.Months, f.c.rules.averageMillisPerMonth(), f)
}

func (f *monthOfYearField) RangeDurationField() field.DurationField { return f.years }
func (f *monthOfYearField) LeapDurationField() field.DurationField  { return daysDuration }
func (f *monthOfYearField) MinimumValue() int                       { return 1 }
func (f *monthOfYearField) MaximumValue() int                       { return 12 }
func (f *monthOfYearField) MinimumValueAt(int64) int                { return 1 }
func (f *monthOfYearField) MaximumValueAt(int64) int                { return 12 }

func (f *monthOfYearField) RoundFloor(instant int64) (int64, error) {
	year := f.c.year(instant)
	return f.c.yearMonthMillis(year, f.c.monthOfYearIn(instant, year)), nil
}

func (f *monthOfYearField) RoundCeiling(instant int64) (int64, error) {
	return field.RoundCeilingVia(f, instant)
}

func (f *monthOfYearField) RoundHalfFloor(instant int64) (int64, error) {
	return field.RoundHalfFloorVia(f, instant)
}

func (f *monthOfYearField) RoundHalfCeiling(instant int64) (int64, error) {
	return field.RoundHalfCeilingVia(f, instant)
}

func (f *monthOfYearField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

func (f *monthOfYearField) Remainder(instant int64) (int64, error) {
	return field.RemainderVia(f, instant)
}

// monthDifference returns whole months from subtrahend to minuend,
// which must not precede it. A minuend on the last day of its month
// counts as a full month from any later day of the subtrahend's month:
// Jan 31 to Feb 28 is one month.
func (c *basicChronology) monthDifference(minuend, subtrahend int64) int64 {
	minuendYear := c.year(minuend)
	minuendMonth := c.monthOfYearIn(minuend, minuendYear)
	subtrahendYear := c.year(subtrahend)
	subtrahendMonth := c.monthOfYearIn(subtrahend, subtrahendYear)

	difference := (int64(minuendYear)-int64(subtrahendYear))*12 + int64(minuendMonth) - int64(subtrahendMonth)

	minuendDay := c.dayOfMonthIn(minuend, minuendYear, minuendMonth)
	if minuendDay == c.daysInYearMonth(minuendYear, minuendMonth) {
		subtrahendDay := c.dayOfMonthIn(subtrahend, subtrahendYear, subtrahendMonth)
		if subtrahendDay > minuendDay {
			subtrahend -= int64(subtrahendDay-minuendDay) * field.MillisPerDay
		}
	}

	minuendRemainder := minuend - c.yearMonthMillis(minuendYear, minuendMonth)
	subtrahendRemainder := subtrahend - c.yearMonthMillis(subtrahendYear, subtrahendMonth)
	if minuendRemainder < subtrahendRemainder {
		difference--
	}
	return difference
}
