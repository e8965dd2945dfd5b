// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// zonedChronology evaluates a UTC chronology's fields in local time.
// Instants are shifted to local time before delegating and results
// shifted back.
type zonedChronology struct {
	base   Chronology
	zone   zone.Zone
	fields *Fields
}

// WithZone returns base evaluated in z. base must be UTC. A UTC zone
// returns base unchanged.
func WithZone(base Chronology, z zone.Zone) (Chronology, error) {
	if zone.IsUTC(z) {
		return base, nil
	}
	if !zone.IsUTC(base.Zone()) {
		return nil, configurationErrorf("%s is already zoned", base)
	}
	c := &zonedChronology{base: base, zone: z}
	c.fields = c.assemble(base.Fields())
	return c, nil
}

func (c *zonedChronology) Zone() zone.Zone             { return c.zone }
func (c *zonedChronology) Fields() *Fields             { return c.fields }
func (c *zonedChronology) CutoverMillis() int64        { return c.base.CutoverMillis() }
func (c *zonedChronology) IsCenturyISO() bool          { return c.base.IsCenturyISO() }
func (c *zonedChronology) MinimumDaysInFirstWeek() int { return c.base.MinimumDaysInFirstWeek() }

func (c *zonedChronology) String() string {
	return fmt.Sprintf("Zoned[%s,%s]", c.base, c.zone.ID())
}

func (c *zonedChronology) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	local, err := c.base.DateTimeMillis(year, month, day, hour, minute, second, millis)
	if err != nil {
		return 0, err
	}
	return localToUTC(c.zone, local)
}

func (c *zonedChronology) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	local, err := c.base.DateMillis(year, month, day, millisOfDay)
	if err != nil {
		return 0, err
	}
	return localToUTC(c.zone, local)
}

// localToUTC converts a wall-clock instant to UTC, rejecting wall
// times skipped by an offset transition.
func localToUTC(z zone.Zone, local int64) (int64, error) {
	offset := z.OffsetFromLocal(local)
	instant, err := field.SafeSubtract(local, int64(offset))
	if err != nil {
		return 0, err
	}
	if z.Offset(instant) != offset {
		return 0, &field.IllegalInstantError{
			Instant: local,
			Message: fmt.Sprintf("local time does not exist in %s (offset transition)", z.ID()),
		}
	}
	return instant, nil
}

func utcToLocal(z zone.Zone, instant int64) (int64, error) {
	return field.SafeAdd(instant, int64(z.Offset(instant)))
}

// localToUTCNear converts back from local time, preferring the offset
// in force at original so that a result inside an overlap stays on
// the same side of it.
func localToUTCNear(z zone.Zone, local, original int64) (int64, error) {
	offset := int64(z.Offset(original))
	instant, err := field.SafeSubtract(local, offset)
	if err != nil {
		return 0, err
	}
	if int64(z.Offset(instant)) == offset {
		return instant, nil
	}
	return field.SafeSubtract(local, int64(z.OffsetFromLocal(local)))
}

// timeArithmetic reports whether a unit is short enough that adding
// it can use the offset at the starting instant.
func timeArithmetic(unit field.DurationField) bool {
	return unit != nil && unit.IsPrecise() && unit.UnitMillis() < field.MillisPerHalfDay
}

func (c *zonedChronology) assemble(base *Fields) *Fields {
	durations := make(map[field.DurationFieldType]field.DurationField)
	convert := func(unit field.DurationField) field.DurationField {
		if unit == nil || !unit.IsSupported() || timeArithmetic(unit) {
			return unit
		}
		if converted, ok := durations[unit.Type()]; ok {
			return converted
		}
		converted := &zonedDuration{DurationField: unit, zone: c.zone}
		durations[unit.Type()] = converted
		return converted
	}

	fields := *base
	fields.Days = convert(base.Days)
	fields.Weeks = convert(base.Weeks)
	fields.WeekYears = convert(base.WeekYears)
	fields.Months = convert(base.Months)
	fields.Years = convert(base.Years)
	fields.Centuries = convert(base.Centuries)
	fields.Eras = convert(base.Eras)

	for _, fieldType := range field.DateTimeFieldTypes {
		wrapped := base.Field(fieldType)
		fields.setField(fieldType, &zonedField{
			DateTimeField: wrapped,
			zone:          c.zone,
			duration:      convert(wrapped.DurationField()),
			rangeField:    convert(wrapped.RangeDurationField()),
			leapField:     convert(wrapped.LeapDurationField()),
			timeField:     timeArithmetic(wrapped.DurationField()),
		})
	}
	return &fields
}

// zonedDuration measures a day-or-longer unit in local time.
type zonedDuration struct {
	field.DurationField
	zone zone.Zone
}

func (d *zonedDuration) Add(instant, value int64) (int64, error) {
	local, err := utcToLocal(d.zone, instant)
	if err != nil {
		return 0, err
	}
	if local, err = d.DurationField.Add(local, value); err != nil {
		return 0, err
	}
	return field.SafeSubtract(local, int64(d.zone.OffsetFromLocal(local)))
}

func (d *zonedDuration) Difference(minuend, subtrahend int64) (int64, error) {
	localMinuend, err := utcToLocal(d.zone, minuend)
	if err != nil {
		return 0, err
	}
	localSubtrahend, err := utcToLocal(d.zone, subtrahend)
	if err != nil {
		return 0, err
	}
	return d.DurationField.Difference(localMinuend, localSubtrahend)
}

func (d *zonedDuration) Value(duration, instant int64) (int64, error) {
	end, err := field.SafeAdd(instant, duration)
	if err != nil {
		return 0, err
	}
	return d.Difference(end, instant)
}

func (d *zonedDuration) Millis(value, instant int64) (int64, error) {
	end, err := d.Add(instant, value)
	if err != nil {
		return 0, err
	}
	return field.SafeSubtract(end, instant)
}

// zonedField evaluates a UTC field in local time.
type zonedField struct {
	field.DateTimeField
	zone       zone.Zone
	duration   field.DurationField
	rangeField field.DurationField
	leapField  field.DurationField

	// timeField marks fields with units under half a day. Their
	// arithmetic keeps the offset of the starting instant, so adding
	// an hour across a transition moves exactly one hour.
	timeField bool
}

func (f *zonedField) local(instant int64) (int64, error) {
	return utcToLocal(f.zone, instant)
}

// localValue is local for the accessors that cannot fail. An instant
// whose local time overflows reads as the nearest representable one.
func (f *zonedField) localValue(instant int64) int64 {
	local, err := f.local(instant)
	if err != nil {
		if instant < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return local
}

func (f *zonedField) Get(instant int64) int { return f.DateTimeField.Get(f.localValue(instant)) }

func (f *zonedField) Set(instant int64, value int) (int64, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	if local, err = f.DateTimeField.Set(local, value); err != nil {
		return 0, err
	}
	result, err := localToUTCNear(f.zone, local, instant)
	if err != nil {
		return 0, err
	}
	if f.Get(result) != value {
		return 0, &field.IllegalInstantError{
			Instant: local,
			Message: fmt.Sprintf("%s %d does not exist in %s (offset transition)", f.Name(), value, f.zone.ID()),
		}
	}
	return result, nil
}

// inLocal applies operation to the local time of instant. Time fields
// convert back with the starting offset; the rest re-resolve the
// offset at the result.
func (f *zonedField) inLocal(instant int64, operation func(int64) (int64, error)) (int64, error) {
	offset := int64(f.zone.Offset(instant))
	local, err := field.SafeAdd(instant, offset)
	if err != nil {
		return 0, err
	}
	if local, err = operation(local); err != nil {
		return 0, err
	}
	if f.timeField {
		return field.SafeSubtract(local, offset)
	}
	return localToUTCNear(f.zone, local, instant)
}

func (f *zonedField) Add(instant, value int64) (int64, error) {
	return f.inLocal(instant, func(local int64) (int64, error) {
		return f.DateTimeField.Add(local, value)
	})
}

func (f *zonedField) AddWrapField(instant int64, amount int) (int64, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	if local, err = f.DateTimeField.AddWrapField(local, amount); err != nil {
		return 0, err
	}
	return localToUTCNear(f.zone, local, instant)
}

func (f *zonedField) Difference(minuend, subtrahend int64) (int64, error) {
	offset := int64(f.zone.Offset(subtrahend))
	minuendOffset := offset
	if !f.timeField {
		minuendOffset = int64(f.zone.Offset(minuend))
	}
	localMinuend, err := field.SafeAdd(minuend, minuendOffset)
	if err != nil {
		return 0, err
	}
	localSubtrahend, err := field.SafeAdd(subtrahend, offset)
	if err != nil {
		return 0, err
	}
	return f.DateTimeField.Difference(localMinuend, localSubtrahend)
}

func (f *zonedField) RoundFloor(instant int64) (int64, error) {
	return f.inLocal(instant, f.DateTimeField.RoundFloor)
}

func (f *zonedField) RoundCeiling(instant int64) (int64, error) {
	return f.inLocal(instant, f.DateTimeField.RoundCeiling)
}

func (f *zonedField) RoundHalfFloor(instant int64) (int64, error) {
	return f.inLocal(instant, f.DateTimeField.RoundHalfFloor)
}

func (f *zonedField) RoundHalfCeiling(instant int64) (int64, error) {
	return f.inLocal(instant, f.DateTimeField.RoundHalfCeiling)
}

func (f *zonedField) RoundHalfEven(instant int64) (int64, error) {
	return f.inLocal(instant, f.DateTimeField.RoundHalfEven)
}

func (f *zonedField) Remainder(instant int64) (int64, error) {
	local, err := f.local(instant)
	if err != nil {
		return 0, err
	}
	return f.DateTimeField.Remainder(local)
}

func (f *zonedField) IsLeap(instant int64) bool {
	return f.DateTimeField.IsLeap(f.localValue(instant))
}

func (f *zonedField) LeapAmount(instant int64) int {
	return f.DateTimeField.LeapAmount(f.localValue(instant))
}

func (f *zonedField) MinimumValueAt(instant int64) int {
	return f.DateTimeField.MinimumValueAt(f.localValue(instant))
}

func (f *zonedField) MaximumValueAt(instant int64) int {
	return f.DateTimeField.MaximumValueAt(f.localValue(instant))
}

func (f *zonedField) DurationField() field.DurationField      { return f.duration }
func (f *zonedField) RangeDurationField() field.DurationField { return f.rangeField }
func (f *zonedField) LeapDurationField() field.DurationField  { return f.leapField }
