// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

// DateTimeField reads and writes one calendar component of an instant.
// Implementations are immutable and safe for concurrent use.
type DateTimeField interface {
	Type() DateTimeFieldType
	Name() string
	IsSupported() bool

	// IsLenient reports whether Set accepts values outside the
	// field's range and carries them into larger fields.
	IsLenient() bool

	// Get returns the field value at instant.
	Get(instant int64) int

	// Set returns instant with this field replaced by value. Smaller
	// fields are preserved where possible; larger fields never change
	// except through the cutover and zone corrections of composite
	// fields.
	Set(instant int64, value int) (int64, error)

	// Add adds value field units, carrying into larger fields.
	Add(instant, value int64) (int64, error)

	// AddWrapField adds value units, wrapping within the field's
	// range at instant instead of carrying.
	AddWrapField(instant int64, value int) (int64, error)

	// Difference returns the number of whole field units between two
	// instants.
	Difference(minuend, subtrahend int64) (int64, error)

	IsLeap(instant int64) bool
	LeapAmount(instant int64) int

	// DurationField returns the unit this field counts in.
	DurationField() DurationField

	// RangeDurationField returns the unit this field resets within,
	// or nil for unbounded fields.
	RangeDurationField() DurationField

	// LeapDurationField returns the unit a leap adds, or nil.
	LeapDurationField() DurationField

	MinimumValue() int
	MaximumValue() int
	MinimumValueAt(instant int64) int
	MaximumValueAt(instant int64) int

	RoundFloor(instant int64) (int64, error)
	RoundCeiling(instant int64) (int64, error)
	RoundHalfFloor(instant int64) (int64, error)
	RoundHalfCeiling(instant int64) (int64, error)
	RoundHalfEven(instant int64) (int64, error)

	// Remainder returns instant - RoundFloor(instant).
	Remainder(instant int64) (int64, error)
}

// Base supplies the constant parts of a supported, strict, non-leap
// field. Concrete fields embed it and override what differs.
type Base struct {
	FieldType DateTimeFieldType
}

func (b Base) Type() DateTimeFieldType          { return b.FieldType }
func (b Base) Name() string                     { return b.FieldType.String() }
func (b Base) IsSupported() bool                { return true }
func (b Base) IsLenient() bool                  { return false }
func (b Base) IsLeap(int64) bool                { return false }
func (b Base) LeapAmount(int64) int             { return 0 }
func (b Base) LeapDurationField() DurationField { return nil }

// AddWrapFieldVia implements AddWrapField through Get, Set and the
// field's range at instant.
func AddWrapFieldVia(f DateTimeField, instant int64, amount int) (int64, error) {
	if amount == 0 {
		return instant, nil
	}
	current := f.Get(instant)
	wrapped, err := WrappedValue(current, amount, f.MinimumValueAt(instant), f.MaximumValueAt(instant))
	if err != nil {
		return 0, err
	}
	return f.Set(instant, wrapped)
}

// RoundCeilingVia implements RoundCeiling as the floor plus one unit.
func RoundCeilingVia(f DateTimeField, instant int64) (int64, error) {
	floor, err := f.RoundFloor(instant)
	if err != nil {
		return 0, err
	}
	if floor == instant {
		return instant, nil
	}
	return f.DurationField().Add(floor, 1)
}

// RemainderVia implements Remainder through RoundFloor.
func RemainderVia(f DateTimeField, instant int64) (int64, error) {
	floor, err := f.RoundFloor(instant)
	if err != nil {
		return 0, err
	}
	return instant - floor, nil
}

func floorAndCeiling(f DateTimeField, instant int64) (floor, ceiling int64, err error) {
	if floor, err = f.RoundFloor(instant); err != nil {
		return 0, 0, err
	}
	if ceiling, err = f.RoundCeiling(instant); err != nil {
		return 0, 0, err
	}
	return floor, ceiling, nil
}

// RoundHalfFloorVia rounds to the nearest unit boundary, ties down.
func RoundHalfFloorVia(f DateTimeField, instant int64) (int64, error) {
	floor, ceiling, err := floorAndCeiling(f, instant)
	if err != nil {
		return 0, err
	}
	if ceiling-instant < instant-floor {
		return ceiling, nil
	}
	return floor, nil
}

// RoundHalfCeilingVia rounds to the nearest unit boundary, ties up.
func RoundHalfCeilingVia(f DateTimeField, instant int64) (int64, error) {
	floor, ceiling, err := floorAndCeiling(f, instant)
	if err != nil {
		return 0, err
	}
	if instant-floor < ceiling-instant {
		return floor, nil
	}
	return ceiling, nil
}

// RoundHalfEvenVia rounds to the nearest unit boundary; ties go to
// the boundary whose field value is even.
func RoundHalfEvenVia(f DateTimeField, instant int64) (int64, error) {
	floor, ceiling, err := floorAndCeiling(f, instant)
	if err != nil {
		return 0, err
	}
	fromFloor := instant - floor
	toCeiling := ceiling - instant
	switch {
	case fromFloor < toCeiling:
		return floor, nil
	case toCeiling < fromFloor:
		return ceiling, nil
	case f.Get(ceiling)&1 == 0:
		return ceiling, nil
	default:
		return floor, nil
	}
}

// PreciseRoundFloor rounds instant down to a multiple of unit.
func PreciseRoundFloor(instant, unit int64) int64 {
	if instant >= 0 {
		return instant - instant%unit
	}
	instant++
	return instant - instant%unit - unit
}

// PreciseRoundCeiling rounds instant up to a multiple of unit.
func PreciseRoundCeiling(instant, unit int64) int64 {
	if instant > 0 {
		instant--
		return instant - instant%unit + unit
	}
	return instant - instant%unit
}

// PreciseRemainder returns instant modulo unit, always non-negative.
func PreciseRemainder(instant, unit int64) int64 {
	if instant >= 0 {
		return instant % unit
	}
	return (instant+1)%unit + unit - 1
}

// PreciseSet moves instant by whole units so f reads value. maxForSet
// is the largest value accepted at instant.
func PreciseSet(f DateTimeField, unit, instant int64, value, maxForSet int) (int64, error) {
	if err := VerifyValueBounds(f.Type(), value, f.MinimumValue(), maxForSet); err != nil {
		return 0, err
	}
	return SafeAdd(instant, int64(value-f.Get(instant))*unit)
}
