// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "fmt"

// PreciseDateTimeField is a field whose unit and range are both
// precise: millisOfSecond, secondOfMinute, hourOfDay and so on. The
// value is (instant / unit) mod (range / unit).
type PreciseDateTimeField struct {
	Base
	unit       DurationField
	rangeField DurationField
	rangeUnits int
	unitMillis int64
}

// NewPreciseDateTimeField builds a precise field. Both durations must
// be precise and range must be at least two units long.
func NewPreciseDateTimeField(fieldType DateTimeFieldType, unit, rangeField DurationField) (*PreciseDateTimeField, error) {
	if !unit.IsPrecise() || !rangeField.IsPrecise() {
		return nil, fmt.Errorf("field: %s requires precise unit and range durations", fieldType)
	}
	rangeUnits := rangeField.UnitMillis() / unit.UnitMillis()
	if rangeUnits < 2 {
		return nil, fmt.Errorf("field: %s range is shorter than two units", fieldType)
	}
	return &PreciseDateTimeField{
		Base:       Base{FieldType: fieldType},
		unit:       unit,
		rangeField: rangeField,
		rangeUnits: int(rangeUnits),
		unitMillis: unit.UnitMillis(),
	}, nil
}

func (f *PreciseDateTimeField) Get(instant int64) int {
	if instant >= 0 {
		return int((instant / f.unitMillis) % int64(f.rangeUnits))
	}
	return f.rangeUnits - 1 + int(((instant+1)/f.unitMillis)%int64(f.rangeUnits))
}

func (f *PreciseDateTimeField) Set(instant int64, value int) (int64, error) {
	return PreciseSet(f, f.unitMillis, instant, value, f.rangeUnits-1)
}

func (f *PreciseDateTimeField) AddWrapField(instant int64, amount int) (int64, error) {
	current := f.Get(instant)
	wrapped, err := WrappedValue(current, amount, 0, f.rangeUnits-1)
	if err != nil {
		return 0, err
	}
	return instant + int64(wrapped-current)*f.unitMillis, nil
}

func (f *PreciseDateTimeField) Add(instant, value int64) (int64, error) {
	return f.unit.Add(instant, value)
}

func (f *PreciseDateTimeField) Difference(minuend, subtrahend int64) (int64, error) {
	return f.unit.Difference(minuend, subtrahend)
}

func (f *PreciseDateTimeField) DurationField() DurationField      { return f.unit }
func (f *PreciseDateTimeField) RangeDurationField() DurationField { return f.rangeField }
func (f *PreciseDateTimeField) MinimumValue() int                 { return 0 }
func (f *PreciseDateTimeField) MaximumValue() int                 { return f.rangeUnits - 1 }
func (f *PreciseDateTimeField) MinimumValueAt(int64) int          { return 0 }
func (f *PreciseDateTimeField) MaximumValueAt(int64) int          { return f.rangeUnits - 1 }

func (f *PreciseDateTimeField) RoundFloor(instant int64) (int64, error) {
	return PreciseRoundFloor(instant, f.unitMillis), nil
}

func (f *PreciseDateTimeField) RoundCeiling(instant int64) (int64, error) {
	return PreciseRoundCeiling(instant, f.unitMillis), nil
}

func (f *PreciseDateTimeField) RoundHalfFloor(instant int64) (int64, error) {
	return RoundHalfFloorVia(f, instant)
}

func (f *PreciseDateTimeField) RoundHalfCeiling(instant int64) (int64, error) {
	return RoundHalfCeilingVia(f, instant)
}

func (f *PreciseDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return RoundHalfEvenVia(f, instant)
}

func (f *PreciseDateTimeField) Remainder(instant int64) (int64, error) {
	return PreciseRemainder(instant, f.unitMillis), nil
}
