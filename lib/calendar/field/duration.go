// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

// DurationField is a unit of time. Precise fields have a fixed
// millisecond length and ignore the instant arguments; imprecise
// fields (months, years) measure relative to the instant given.
type DurationField interface {
	Type() DurationFieldType
	Name() string
	IsSupported() bool
	IsPrecise() bool

	// UnitMillis is the exact unit length for precise fields, or a
	// rough average for imprecise ones.
	UnitMillis() int64

	// Value converts a millisecond duration, measured from instant,
	// into a count of this unit, truncating toward zero.
	Value(duration, instant int64) (int64, error)

	// Millis converts a count of this unit, measured from instant,
	// into milliseconds.
	Millis(value, instant int64) (int64, error)

	// Add adds value units to instant.
	Add(instant, value int64) (int64, error)

	// Difference returns the whole number of units between two
	// instants, such that Add(subtrahend, result) <= minuend for a
	// non-negative result.
	Difference(minuend, subtrahend int64) (int64, error)
}

// PreciseDurationField is a duration with a fixed millisecond length.
type PreciseDurationField struct {
	fieldType DurationFieldType
	unit      int64
}

// NewPreciseDuration returns a precise duration of unit milliseconds.
func NewPreciseDuration(fieldType DurationFieldType, unit int64) *PreciseDurationField {
	return &PreciseDurationField{fieldType: fieldType, unit: unit}
}

// MillisDuration is the one-millisecond unit shared by every chronology.
var MillisDuration = NewPreciseDuration(Millis, 1)

func (d *PreciseDurationField) Type() DurationFieldType { return d.fieldType }
func (d *PreciseDurationField) Name() string            { return d.fieldType.String() }
func (d *PreciseDurationField) IsSupported() bool       { return true }
func (d *PreciseDurationField) IsPrecise() bool         { return true }
func (d *PreciseDurationField) UnitMillis() int64       { return d.unit }

func (d *PreciseDurationField) Value(duration, _ int64) (int64, error) {
	return duration / d.unit, nil
}

func (d *PreciseDurationField) Millis(value, _ int64) (int64, error) {
	return SafeMultiply(value, d.unit)
}

func (d *PreciseDurationField) Add(instant, value int64) (int64, error) {
	millis, err := SafeMultiply(value, d.unit)
	if err != nil {
		return 0, err
	}
	return SafeAdd(instant, millis)
}

func (d *PreciseDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	difference, err := SafeSubtract(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return difference / d.unit, nil
}

// UnsupportedDurationField is the unit of a field with no arithmetic
// (the era). Every operation fails with UnsupportedOperationError.
type UnsupportedDurationField struct {
	fieldType DurationFieldType
}

// NewUnsupportedDuration returns the unsupported duration of a type.
func NewUnsupportedDuration(fieldType DurationFieldType) *UnsupportedDurationField {
	return &UnsupportedDurationField{fieldType: fieldType}
}

func (d *UnsupportedDurationField) Type() DurationFieldType { return d.fieldType }
func (d *UnsupportedDurationField) Name() string            { return d.fieldType.String() }
func (d *UnsupportedDurationField) IsSupported() bool       { return false }
func (d *UnsupportedDurationField) IsPrecise() bool         { return true }
func (d *UnsupportedDurationField) UnitMillis() int64       { return 0 }

func (d *UnsupportedDurationField) Value(int64, int64) (int64, error) {
	return 0, unsupported(d.Name(), "Value")
}

func (d *UnsupportedDurationField) Millis(int64, int64) (int64, error) {
	return 0, unsupported(d.Name(), "Millis")
}

func (d *UnsupportedDurationField) Add(int64, int64) (int64, error) {
	return 0, unsupported(d.Name(), "Add")
}

func (d *UnsupportedDurationField) Difference(int64, int64) (int64, error) {
	return 0, unsupported(d.Name(), "Difference")
}

// ScaledDurationField multiplies another duration by a constant, e.g.
// centuries as 100 years.
type ScaledDurationField struct {
	wrapped   DurationField
	fieldType DurationFieldType
	scalar    int64
}

// NewScaledDuration returns wrapped scaled by scalar.
func NewScaledDuration(wrapped DurationField, fieldType DurationFieldType, scalar int64) *ScaledDurationField {
	return &ScaledDurationField{wrapped: wrapped, fieldType: fieldType, scalar: scalar}
}

func (d *ScaledDurationField) Type() DurationFieldType { return d.fieldType }
func (d *ScaledDurationField) Name() string            { return d.fieldType.String() }
func (d *ScaledDurationField) IsSupported() bool       { return d.wrapped.IsSupported() }
func (d *ScaledDurationField) IsPrecise() bool         { return d.wrapped.IsPrecise() }
func (d *ScaledDurationField) UnitMillis() int64       { return d.wrapped.UnitMillis() * d.scalar }

func (d *ScaledDurationField) Value(duration, instant int64) (int64, error) {
	value, err := d.wrapped.Value(duration, instant)
	if err != nil {
		return 0, err
	}
	return value / d.scalar, nil
}

func (d *ScaledDurationField) Millis(value, instant int64) (int64, error) {
	scaled, err := SafeMultiply(value, d.scalar)
	if err != nil {
		return 0, err
	}
	return d.wrapped.Millis(scaled, instant)
}

func (d *ScaledDurationField) Add(instant, value int64) (int64, error) {
	scaled, err := SafeMultiply(value, d.scalar)
	if err != nil {
		return 0, err
	}
	return d.wrapped.Add(instant, scaled)
}

func (d *ScaledDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	difference, err := d.wrapped.Difference(minuend, subtrahend)
	if err != nil {
		return 0, err
	}
	return difference / d.scalar, nil
}

// Stepper is the arithmetic half of a DateTimeField: enough for a
// LinkedDurationField to express its unit through the field.
type Stepper interface {
	Add(instant, value int64) (int64, error)
	Difference(minuend, subtrahend int64) (int64, error)
}

// LinkedDurationField is the duration view of an imprecise field.
// Every operation routes back through the field's own Add and
// Difference, so a field and its unit can never disagree. It is a
// small value built on demand by the field's DurationField method
// rather than a second object holding a pointer back.
type LinkedDurationField struct {
	fieldType DurationFieldType
	unit      int64
	field     Stepper
}

// Linked returns the duration view of field.
func Linked(fieldType DurationFieldType, unit int64, field Stepper) LinkedDurationField {
	return LinkedDurationField{fieldType: fieldType, unit: unit, field: field}
}

func (d LinkedDurationField) Type() DurationFieldType { return d.fieldType }
func (d LinkedDurationField) Name() string            { return d.fieldType.String() }
func (d LinkedDurationField) IsSupported() bool       { return true }
func (d LinkedDurationField) IsPrecise() bool         { return false }
func (d LinkedDurationField) UnitMillis() int64       { return d.unit }

func (d LinkedDurationField) Value(duration, instant int64) (int64, error) {
	end, err := SafeAdd(instant, duration)
	if err != nil {
		return 0, err
	}
	return d.field.Difference(end, instant)
}

func (d LinkedDurationField) Millis(value, instant int64) (int64, error) {
	end, err := d.field.Add(instant, value)
	if err != nil {
		return 0, err
	}
	return SafeSubtract(end, instant)
}

func (d LinkedDurationField) Add(instant, value int64) (int64, error) {
	return d.field.Add(instant, value)
}

func (d LinkedDurationField) Difference(minuend, subtrahend int64) (int64, error) {
	return d.field.Difference(minuend, subtrahend)
}
