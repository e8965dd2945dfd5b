// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

// OffsetDateTimeField shifts another field's values by a constant.
// The embedded field handles everything the shift does not touch.
type OffsetDateTimeField struct {
	DateTimeField
	fieldType DateTimeFieldType
	offset    int
	min, max  int
}

// NewOffsetDateTimeField returns wrapped + offset, reported as
// fieldType.
func NewOffsetDateTimeField(wrapped DateTimeField, fieldType DateTimeFieldType, offset int) *OffsetDateTimeField {
	return &OffsetDateTimeField{
		DateTimeField: wrapped,
		fieldType:     fieldType,
		offset:        offset,
		min:           wrapped.MinimumValue() + offset,
		max:           wrapped.MaximumValue() + offset,
	}
}

func (f *OffsetDateTimeField) Type() DateTimeFieldType { return f.fieldType }
func (f *OffsetDateTimeField) Name() string            { return f.fieldType.String() }

func (f *OffsetDateTimeField) Get(instant int64) int {
	return f.DateTimeField.Get(instant) + f.offset
}

func (f *OffsetDateTimeField) Set(instant int64, value int) (int64, error) {
	if err := VerifyValueBounds(f.fieldType, value, f.min, f.max); err != nil {
		return 0, err
	}
	return f.DateTimeField.Set(instant, value-f.offset)
}

func (f *OffsetDateTimeField) Add(instant, value int64) (int64, error) {
	result, err := f.DateTimeField.Add(instant, value)
	if err != nil {
		return 0, err
	}
	if err := VerifyValueBounds(f.fieldType, f.Get(result), f.min, f.max); err != nil {
		return 0, err
	}
	return result, nil
}

func (f *OffsetDateTimeField) AddWrapField(instant int64, amount int) (int64, error) {
	wrapped, err := WrappedValue(f.Get(instant), amount, f.min, f.max)
	if err != nil {
		return 0, err
	}
	return f.Set(instant, wrapped)
}

func (f *OffsetDateTimeField) MinimumValue() int        { return f.min }
func (f *OffsetDateTimeField) MaximumValue() int        { return f.max }
func (f *OffsetDateTimeField) MinimumValueAt(int64) int { return f.min }
func (f *OffsetDateTimeField) MaximumValueAt(int64) int { return f.max }

func (f *OffsetDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return RoundHalfEvenVia(f, instant)
}

// ZeroIsMaxDateTimeField reads 0 as the field's maximum: clockhourOfDay
// runs 1..24 over hourOfDay's 0..23.
type ZeroIsMaxDateTimeField struct {
	DateTimeField
	fieldType DateTimeFieldType
}

// NewZeroIsMaxDateTimeField wraps a field whose minimum is zero.
func NewZeroIsMaxDateTimeField(wrapped DateTimeField, fieldType DateTimeFieldType) *ZeroIsMaxDateTimeField {
	return &ZeroIsMaxDateTimeField{DateTimeField: wrapped, fieldType: fieldType}
}

func (f *ZeroIsMaxDateTimeField) Type() DateTimeFieldType { return f.fieldType }
func (f *ZeroIsMaxDateTimeField) Name() string            { return f.fieldType.String() }

func (f *ZeroIsMaxDateTimeField) Get(instant int64) int {
	value := f.DateTimeField.Get(instant)
	if value == 0 {
		return f.MaximumValue()
	}
	return value
}

func (f *ZeroIsMaxDateTimeField) Set(instant int64, value int) (int64, error) {
	maximum := f.MaximumValue()
	if err := VerifyValueBounds(f.fieldType, value, 1, maximum); err != nil {
		return 0, err
	}
	if value == maximum {
		value = 0
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *ZeroIsMaxDateTimeField) MinimumValue() int        { return 1 }
func (f *ZeroIsMaxDateTimeField) MaximumValue() int        { return f.DateTimeField.MaximumValue() + 1 }
func (f *ZeroIsMaxDateTimeField) MinimumValueAt(int64) int { return 1 }

func (f *ZeroIsMaxDateTimeField) MaximumValueAt(instant int64) int {
	return f.DateTimeField.MaximumValueAt(instant) + 1
}

func (f *ZeroIsMaxDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return RoundHalfEvenVia(f, instant)
}

// SkipDateTimeField removes one value from another field's sequence.
// Values at or below the skipped one shift down by one on read and up
// by one on write, so the Julian year sequence runs -1, 1 with no
// year zero while the wrapped astronomical field keeps its zero.
type SkipDateTimeField struct {
	DateTimeField
	skip int
	min  int
}

// NewSkipDateTimeField elides skip from wrapped's values.
func NewSkipDateTimeField(wrapped DateTimeField, skip int) *SkipDateTimeField {
	minimum := wrapped.MinimumValue()
	switch {
	case minimum < skip:
		minimum--
	case minimum == skip:
		minimum = skip + 1
	}
	return &SkipDateTimeField{DateTimeField: wrapped, skip: skip, min: minimum}
}

func (f *SkipDateTimeField) Get(instant int64) int {
	value := f.DateTimeField.Get(instant)
	if value <= f.skip {
		value--
	}
	return value
}

func (f *SkipDateTimeField) Set(instant int64, value int) (int64, error) {
	if err := VerifyValueBounds(f.Type(), value, f.min, f.MaximumValue()); err != nil {
		return 0, err
	}
	if value <= f.skip {
		if value == f.skip {
			return 0, &IllegalFieldValueError{Field: f.Type(), Value: int64(value), Message: "value is skipped"}
		}
		value++
	}
	return f.DateTimeField.Set(instant, value)
}

func (f *SkipDateTimeField) MinimumValue() int        { return f.min }
func (f *SkipDateTimeField) MinimumValueAt(int64) int { return f.min }

func (f *SkipDateTimeField) RoundHalfEven(instant int64) (int64, error) {
	return RoundHalfEvenVia(f, instant)
}
