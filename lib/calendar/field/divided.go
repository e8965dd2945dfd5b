// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "fmt"

// DividedDateTimeField is the integer quotient of another field by a
// fixed divisor: centuryOfEra is yearOfEra divided by 100. Negative
// wrapped values divide toward negative infinity.
type DividedDateTimeField struct {
	Base
	wrapped    DateTimeField
	divisor    int
	duration   DurationField
	rangeField DurationField
	min, max   int
}

// NewDividedDateTimeField divides wrapped by divisor. The unit is the
// wrapped unit scaled by divisor; the range is the wrapped range.
func NewDividedDateTimeField(wrapped DateTimeField, fieldType DateTimeFieldType, divisor int) (*DividedDateTimeField, error) {
	if divisor < 2 {
		return nil, fmt.Errorf("field: %s divisor must be at least 2, got %d", fieldType, divisor)
	}
	f := &DividedDateTimeField{
		Base:       Base{FieldType: fieldType},
		wrapped:    wrapped,
		divisor:    divisor,
		duration:   NewScaledDuration(wrapped.DurationField(), fieldType.DurationType(), int64(divisor)),
		rangeField: wrapped.RangeDurationField(),
	}
	f.min = f.quotient(wrapped.MinimumValue())
	f.max = f.quotient(wrapped.MaximumValue())
	return f, nil
}

func (f *DividedDateTimeField) quotient(value int) int {
	if value >= 0 {
		return value / f.divisor
	}
	return (value+1)/f.divisor - 1
}

func (f *DividedDateTimeField) remainder(value int) int {
	if value >= 0 {
		return value % f.divisor
	}
	return f.divisor - 1 + (value+1)%f.divisor
}

func (f *DividedDateTimeField) Get(instant int64) int {
	return f.quotient(f.wrapped.Get(instant))
}

func (f *DividedDateTimeField) Set(instant int64, value int) (int64, error) {
	if err := VerifyValueBounds(f.Type(), value, f.min, f.max); err != nil {
		return 0, err
	}
	return f.wrapped.Set(instant, value*f.divisor+f.remainder(f.wrapped.Get(instant)))
}

func (f *DividedDateTimeField) Add(instant, value int64) (int64, error) {
	scaled, err := SafeMultiply(value, int64(f.divisor))
	if err != nil {
		return 0, err
	}
	return f.wrapped.Add(instant, scaled)
}

func (f *DividedDateTimeField) AddWrapField(instant int64, amount int) (int64, error) {
	wrapped, err := WrappedValue(f.Get(instant), amount, f.min, f.max)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, wrapped)
}

func (f *DividedDateTimeField) Difference(minuend, subtrahend int64) (int64, error) {
	difference, err := f.wrapped.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return difference / int64(f.divisor), nil
}

func (f *DividedDateTimeField) DurationField() DurationField      { return f.duration }
func (f *DividedDateTimeField) RangeDurationField() DurationField { return f.rangeField }
func (f *DividedDateTimeField) MinimumValue() int                 { return f.min }
func (f *DividedDateTimeField) MaximumValue() int                 { return f.max }
func (f *DividedDateTimeField) MinimumValueAt(int64) int          { return f.min }
func (f *DividedDateTimeField) MaximumValueAt(int64) int          { return f.max }

func (f *DividedDateTimeField) RoundFloor(instant int64) (int64, error) {
	start, err := f.wrapped.Set(instant, f.Get(instant)*f.divisor)
	if err != nil {
		return 0, err
	}
	return f.wrapped.RoundFloor(start)
}

func (f *DividedDateTimeField) RoundCeiling(instant int64) (int64, error) {
	return RoundCeilingVia(f, instant)
}

func (f *DividedDateTimeField) RoundHalfFloor(instant int64) (int64, error) {
	return RoundHalfFloorVia(f, instant)
}

func (f *DividedDateTimeField) RoundHalfCeiling(instant int64) (int64, error) {
	return RoundHalfCeilingVia(f, instant)
}

func (f *DividedDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return RoundHalfEvenVia(f, instant)
}

func (f *DividedDateTimeField) Remainder(instant int64) (int64, error) {
	return RemainderVia(f, instant)
}

// RemainderDateTimeField is the remainder of another field by a fixed
// divisor, always in [0, divisor-1]: yearOfCentury is yearOfEra mod 100.
type RemainderDateTimeField struct {
	Base
	wrapped    DateTimeField
	divisor    int
	duration   DurationField
	rangeField DurationField
}

// NewRemainderFromDivided returns the remainder companion of a
// divided field. Its range is the divided field's unit.
func NewRemainderFromDivided(divided *DividedDateTimeField, fieldType DateTimeFieldType) *RemainderDateTimeField {
	return &RemainderDateTimeField{
		Base:       Base{FieldType: fieldType},
		wrapped:    divided.wrapped,
		divisor:    divided.divisor,
		duration:   divided.wrapped.DurationField(),
		rangeField: divided.duration,
	}
}

// NewRemainderDateTimeField returns wrapped mod divisor. Its range is
// the wrapped unit scaled by divisor.
func NewRemainderDateTimeField(wrapped DateTimeField, fieldType DateTimeFieldType, divisor int) (*RemainderDateTimeField, error) {
	if divisor < 2 {
		return nil, fmt.Errorf("field: %s divisor must be at least 2, got %d", fieldType, divisor)
	}
	rangeType, _ := fieldType.RangeDurationType()
	return &RemainderDateTimeField{
		Base:       Base{FieldType: fieldType},
		wrapped:    wrapped,
		divisor:    divisor,
		duration:   wrapped.DurationField(),
		rangeField: NewScaledDuration(wrapped.DurationField(), rangeType, int64(divisor)),
	}, nil
}

func (f *RemainderDateTimeField) Get(instant int64) int {
	value := f.wrapped.Get(instant)
	if value >= 0 {
		return value % f.divisor
	}
	return f.divisor - 1 + (value+1)%f.divisor
}

func (f *RemainderDateTimeField) Set(instant int64, value int) (int64, error) {
	if err := VerifyValueBounds(f.Type(), value, 0, f.divisor-1); err != nil {
		return 0, err
	}
	current := f.wrapped.Get(instant)
	quotient := current / f.divisor
	if current < 0 {
		quotient = (current+1)/f.divisor - 1
	}
	return f.wrapped.Set(instant, quotient*f.divisor+value)
}

func (f *RemainderDateTimeField) Add(instant, value int64) (int64, error) {
	return f.wrapped.Add(instant, value)
}

func (f *RemainderDateTimeField) AddWrapField(instant int64, amount int) (int64, error) {
	wrapped, err := WrappedValue(f.Get(instant), amount, 0, f.divisor-1)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, wrapped)
}

func (f *RemainderDateTimeField) Difference(minuend, subtrahend int64) (int64, error) {
	return f.wrapped.Difference(minuend, subtrahend)
}

func (f *RemainderDateTimeField) DurationField() DurationField      { return f.duration }
func (f *RemainderDateTimeField) RangeDurationField() DurationField { return f.rangeField }
func (f *RemainderDateTimeField) MinimumValue() int                 { return 0 }
func (f *RemainderDateTimeField) MaximumValue() int                 { return f.divisor - 1 }
func (f *RemainderDateTimeField) MinimumValueAt(int64) int          { return 0 }
func (f *RemainderDateTimeField) MaximumValueAt(int64) int          { return f.divisor - 1 }

func (f *RemainderDateTimeField) RoundFloor(instant int64) (int64, error) {
	return f.wrapped.RoundFloor(instant)
}

func (f *RemainderDateTimeField) RoundCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundCeiling(instant)
}

func (f *RemainderDateTimeField) RoundHalfFloor(instant int64) (int64, error) {
	return f.wrapped.RoundHalfFloor(instant)
}

func (f *RemainderDateTimeField) RoundHalfCeiling(instant int64) (int64, error) {
	return f.wrapped.RoundHalfCeiling(instant)
}

func (f *RemainderDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return f.wrapped.RoundHalfEven(instant)
}

func (f *RemainderDateTimeField) Remainder(instant int64) (int64, error) {
	return f.wrapped.Remainder(instant)
}
