// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

// cutoverField reads the Julian field before its cutover and the
// Gregorian field from it on. Arithmetic is plain instant arithmetic,
// which suits fields counted in days.
type cutoverField struct {
	chrono     *cutoverChronology
	julian     field.DateTimeField
	gregorian  field.DateTimeField
	cutover    int64
	byWeekyear bool
	duration   field.DurationField
	rangeField field.DurationField
}

func (c *cutoverChronology) basicField(julian, gregorian field.DateTimeField, rangeField field.DurationField, cutover int64, byWeekyear bool) *cutoverField {
	if rangeField == nil {
		rangeField = gregorian.RangeDurationField()
		if rangeField == nil {
			rangeField = julian.RangeDurationField()
		}
	}
	return &cutoverField{
		chrono:     c,
		julian:     julian,
		gregorian:  gregorian,
		cutover:    cutover,
		byWeekyear: byWeekyear,
		duration:   gregorian.DurationField(),
		rangeField: rangeField,
	}
}

func (f *cutoverField) julianToGregorian(instant int64) (int64, error) {
	if f.byWeekyear {
		return f.chrono.julianToGregorianByWeekyear(instant)
	}
	return f.chrono.julianToGregorianByYear(instant)
}

func (f *cutoverField) gregorianToJulian(instant int64) (int64, error) {
	if f.byWeekyear {
		return f.chrono.gregorianToJulianByWeekyear(instant)
	}
	return f.chrono.gregorianToJulianByYear(instant)
}

func (f *cutoverField) side(instant int64) field.DateTimeField {
	if instant >= f.cutover {
		return f.gregorian
	}
	return f.julian
}

func (f *cutoverField) Type() field.DateTimeFieldType { return f.gregorian.Type() }
func (f *cutoverField) Name() string                  { return f.gregorian.Name() }
func (f *cutoverField) IsSupported() bool             { return true }
func (f *cutoverField) IsLenient() bool               { return false }

func (f *cutoverField) Get(instant int64) int { return f.side(instant).Get(instant) }

// Set sets the field in the calendar of instant. A result that lands
// on the other side of the cutover is carried into the other calendar
// only when it clears the whole gap; either way the value must read
// back, or the requested date does not exist.
func (f *cutoverField) Set(instant int64, value int) (int64, error) {
	var err error
	if instant >= f.cutover {
		if instant, err = f.gregorian.Set(instant, value); err != nil {
			return 0, err
		}
		if instant < f.cutover {
			if instant+f.chrono.gap < f.cutover {
				if instant, err = f.gregorianToJulian(instant); err != nil {
					return 0, err
				}
			}
			if f.Get(instant) != value {
				return 0, f.lost(value)
			}
		}
		return instant, nil
	}
	if instant, err = f.julian.Set(instant, value); err != nil {
		return 0, err
	}
	if instant >= f.cutover {
		if instant-f.chrono.gap >= f.cutover {
			if instant, err = f.julianToGregorian(instant); err != nil {
				return 0, err
			}
		}
		if f.Get(instant) != value {
			return 0, f.lost(value)
		}
	}
	return instant, nil
}

func (f *cutoverField) lost(value int) error {
	return &field.IllegalFieldValueError{
		Field:   f.Type(),
		Value:   int64(value),
		Message: "the value does not exist across the Julian/Gregorian cutover",
	}
}

func (f *cutoverField) Add(instant, value int64) (int64, error) {
	return f.gregorian.Add(instant, value)
}

func (f *cutoverField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

func (f *cutoverField) Difference(minuend, subtrahend int64) (int64, error) {
	return f.gregorian.Difference(minuend, subtrahend)
}

func (f *cutoverField) IsLeap(instant int64) bool    { return f.side(instant).IsLeap(instant) }
func (f *cutoverField) LeapAmount(instant int64) int { return f.side(instant).LeapAmount(instant) }

func (f *cutoverField) DurationField() field.DurationField      { return f.duration }
func (f *cutoverField) RangeDurationField() field.DurationField { return f.rangeField }
func (f *cutoverField) LeapDurationField() field.DurationField  { return f.gregorian.LeapDurationField() }
func (f *cutoverField) MinimumValue() int                       { return f.julian.MinimumValue() }
func (f *cutoverField) MaximumValue() int                       { return f.gregorian.MaximumValue() }

// MinimumValueAt accounts for the cutover shortening the field's range
// at instant: in October 1582 the smallest Gregorian day is the 15th.
func (f *cutoverField) MinimumValueAt(instant int64) int {
	if instant < f.cutover {
		return f.julian.MinimumValueAt(instant)
	}
	minimum := f.gregorian.MinimumValueAt(instant)
	if moved, err := f.gregorian.Set(instant, minimum); err == nil && moved < f.cutover {
		minimum = f.gregorian.Get(f.cutover)
	}
	return minimum
}

// MaximumValueAt is the mirror of MinimumValueAt: in October 1582 the
// largest Julian day is the 4th.
func (f *cutoverField) MaximumValueAt(instant int64) int {
	if instant >= f.cutover {
		return f.gregorian.MaximumValueAt(instant)
	}
	maximum := f.julian.MaximumValueAt(instant)
	if moved, err := f.julian.Set(instant, maximum); err == nil && moved >= f.cutover {
		if before, err := f.julian.Add(f.cutover, -1); err == nil {
			maximum = f.julian.Get(before)
		}
	}
	return maximum
}

func (f *cutoverField) RoundFloor(instant int64) (int64, error) {
	if instant < f.cutover {
		return f.julian.RoundFloor(instant)
	}
	floor, err := f.gregorian.RoundFloor(instant)
	if err != nil {
		return 0, err
	}
	if floor < f.cutover && floor+f.chrono.gap < f.cutover {
		return f.gregorianToJulian(floor)
	}
	return floor, nil
}

func (f *cutoverField) RoundCeiling(instant int64) (int64, error) {
	if instant >= f.cutover {
		return f.gregorian.RoundCeiling(instant)
	}
	ceiling, err := f.julian.RoundCeiling(instant)
	if err != nil {
		return 0, err
	}
	if ceiling >= f.cutover && ceiling-f.chrono.gap >= f.cutover {
		return f.julianToGregorian(ceiling)
	}
	return ceiling, nil
}

func (f *cutoverField) RoundHalfFloor(instant int64) (int64, error) {
	return field.RoundHalfFloorVia(f, instant)
}

func (f *cutoverField) RoundHalfCeiling(instant int64) (int64, error) {
	return field.RoundHalfCeilingVia(f, instant)
}

func (f *cutoverField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

func (f *cutoverField) Remainder(instant int64) (int64, error) {
	return field.RemainderVia(f, instant)
}

// cutoverEraField flips the era through the composite year, in
// historical numbering. The Gregorian side counts 1 BCE as year zero
// and the Julian side has no year zero, so flipping within one
// calendar and converting would lose a year whenever the result
// crosses the cutover.
type cutoverEraField struct {
	*cutoverField
	year      field.DateTimeField
	yearOfEra field.DateTimeField
}

func (f *cutoverEraField) Set(instant int64, value int) (int64, error) {
	if err := field.VerifyValueBounds(field.Era, value, field.BCE, field.CE); err != nil {
		return 0, err
	}
	if f.Get(instant) == value {
		return instant, nil
	}
	year := f.yearOfEra.Get(instant)
	if value == field.BCE {
		year = -year
	}
	return f.year.Set(instant, year)
}

func (f *cutoverEraField) AddWrapField(int64, int) (int64, error) {
	return 0, &field.UnsupportedOperationError{Name: f.Name(), Operation: "AddWrapField"}
}

// impreciseCutoverField is a cutoverField whose arithmetic moves by
// calendar units (months, years). Adding across the cutover converts
// the result into the calendar it lands in, and its duration field is
// a view of the field's own arithmetic.
type impreciseCutoverField struct {
	*cutoverField
	linked bool
}

func (c *cutoverChronology) impreciseField(julian, gregorian field.DateTimeField, duration, rangeField field.DurationField, byWeekyear bool) *impreciseCutoverField {
	f := &impreciseCutoverField{cutoverField: c.basicField(julian, gregorian, rangeField, c.cutover, byWeekyear)}
	if duration != nil {
		f.duration = duration
	} else {
		f.linked = true
	}
	return f
}

func (f *impreciseCutoverField) DurationField() field.DurationField {
	if f.linked {
		unit := f.gregorian.DurationField()
		return field.Linked(unit.Type(), unit.UnitMillis(), f)
	}
	return f.duration
}

func (f *impreciseCutoverField) Add(instant, value int64) (int64, error) {
	var err error
	if instant < f.cutover {
		if instant, err = f.julian.Add(instant, value); err != nil {
			return 0, err
		}
		if instant >= f.cutover && instant-f.chrono.gap >= f.cutover {
			return f.julianToGregorian(instant)
		}
		return instant, nil
	}

	if instant, err = f.gregorian.Add(instant, value); err != nil {
		return 0, err
	}
	if instant >= f.cutover || instant+f.chrono.gap >= f.cutover {
		return instant, nil
	}
	// The Gregorian years up to zero are one behind the Julian years,
	// which skip zero.
	gregorian := f.chrono.gregorian.Fields()
	years := gregorian.Year
	if f.byWeekyear {
		years = gregorian.Weekyear
	}
	if years.Get(instant) <= 0 {
		if instant, err = years.Add(instant, -1); err != nil {
			return 0, err
		}
	}
	return f.gregorianToJulian(instant)
}

func (f *impreciseCutoverField) AddWrapField(instant int64, amount int) (int64, error) {
	return field.AddWrapFieldVia(f, instant, amount)
}

// Difference converts the minuend into the subtrahend's calendar so
// both ends are measured by the same rules.
func (f *impreciseCutoverField) Difference(minuend, subtrahend int64) (int64, error) {
	var err error
	if minuend >= f.cutover {
		if subtrahend >= f.cutover {
			return f.gregorian.Difference(minuend, subtrahend)
		}
		if minuend, err = f.gregorianToJulian(minuend); err != nil {
			return 0, err
		}
		return f.julian.Difference(minuend, subtrahend)
	}
	if subtrahend < f.cutover {
		return f.julian.Difference(minuend, subtrahend)
	}
	if minuend, err = f.julianToGregorian(minuend); err != nil {
		return 0, err
	}
	return f.gregorian.Difference(minuend, subtrahend)
}

func (f *impreciseCutoverField) MinimumValueAt(instant int64) int {
	return f.side(instant).MinimumValueAt(instant)
}

func (f *impreciseCutoverField) MaximumValueAt(instant int64) int {
	return f.side(instant).MaximumValueAt(instant)
}

func (f *impreciseCutoverField) RoundHalfFloor(instant int64) (int64, error) {
	return field.RoundHalfFloorVia(f, instant)
}

func (f *impreciseCutoverField) RoundHalfCeiling(instant int64) (int64, error) {
	return field.RoundHalfCeilingVia(f, instant)
}

func (f *impreciseCutoverField) RoundHalfEven(instant int64) (int64, error) {
	return field.RoundHalfEvenVia(f, instant)
}

func (f *impreciseCutoverField) Remainder(instant int64) (int64, error) {
	return field.RemainderVia(f, instant)
}
