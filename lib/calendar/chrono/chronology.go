// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// Cutover sentinels. A chronology whose cutover is GregorianCutover is
// pure proleptic Gregorian; JulianCutover selects pure proleptic
// Julian. Neither builds any cutover machinery.
const (
	GregorianCutover int64 = math.MinInt64
	JulianCutover    int64 = math.MaxInt64
)

// DefaultCutover is 1582-10-15T00:00:00Z, the first Gregorian day in
// the papal bull's switchover. The previous day is Julian 1582-10-04.
const DefaultCutover int64 = -12219292800000

// DefaultMinimumDaysInFirstWeek is the ISO-8601 week rule: week 1 is
// the first week with four or more days of January.
const DefaultMinimumDaysInFirstWeek = 4

// Chronology is an assembled calendar system: a complete field set
// plus the configuration it was built from. Implementations are
// immutable and safe for concurrent use.
type Chronology interface {
	// Zone is the zone fields are evaluated in.
	Zone() zone.Zone

	// Fields returns the field set. Callers must not modify it.
	Fields() *Fields

	// DateTimeMillis returns the instant of a wall-clock date-time.
	// Out-of-range components return *field.IllegalFieldValueError;
	// a date inside the cutover gap returns *field.IllegalInstantError.
	DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error)

	// DateMillis is DateTimeMillis with the time given as a
	// millisecond of the day.
	DateMillis(year, month, day, millisOfDay int) (int64, error)

	// CutoverMillis returns the Julian-to-Gregorian cutover instant,
	// or one of the GregorianCutover/JulianCutover sentinels.
	CutoverMillis() int64

	// IsCenturyISO reports whether centuries follow ISO numbering
	// (century = year / 100, years 0..99) rather than the traditional
	// one (century 1 is years 1..100).
	IsCenturyISO() bool

	MinimumDaysInFirstWeek() int

	String() string
}

// Fields is the complete set of fields and durations of a chronology.
type Fields struct {
	Millis    field.DurationField
	Seconds   field.DurationField
	Minutes   field.DurationField
	Hours     field.DurationField
	HalfDays  field.DurationField
	Days      field.DurationField
	Weeks     field.DurationField
	WeekYears field.DurationField
	Months    field.DurationField
	Years     field.DurationField
	Centuries field.DurationField
	Eras      field.DurationField

	MillisOfSecond     field.DateTimeField
	MillisOfDay        field.DateTimeField
	SecondOfMinute     field.DateTimeField
	SecondOfDay        field.DateTimeField
	MinuteOfHour       field.DateTimeField
	MinuteOfDay        field.DateTimeField
	HourOfDay          field.DateTimeField
	ClockhourOfDay     field.DateTimeField
	HourOfHalfday      field.DateTimeField
	ClockhourOfHalfday field.DateTimeField
	HalfdayOfDay       field.DateTimeField

	DayOfWeek         field.DateTimeField
	DayOfMonth        field.DateTimeField
	DayOfYear         field.DateTimeField
	WeekOfWeekyear    field.DateTimeField
	Weekyear          field.DateTimeField
	WeekyearOfCentury field.DateTimeField
	MonthOfYear       field.DateTimeField
	Year              field.DateTimeField
	YearOfEra         field.DateTimeField
	YearOfCentury     field.DateTimeField
	CenturyOfEra      field.DateTimeField
	Era               field.DateTimeField
}

// Field returns the field of the given type.
func (f *Fields) Field(fieldType field.DateTimeFieldType) field.DateTimeField {
	switch fieldType {
	case field.Era:
		return f.Era
	case field.YearOfEra:
		return f.YearOfEra
	case field.CenturyOfEra:
		return f.CenturyOfEra
	case field.YearOfCentury:
		return f.YearOfCentury
	case field.Year:
		return f.Year
	case field.DayOfYear:
		return f.DayOfYear
	case field.MonthOfYear:
		return f.MonthOfYear
	case field.DayOfMonth:
		return f.DayOfMonth
	case field.WeekyearOfCentury:
		return f.WeekyearOfCentury
	case field.Weekyear:
		return f.Weekyear
	case field.WeekOfWeekyear:
		return f.WeekOfWeekyear
	case field.DayOfWeek:
		return f.DayOfWeek
	case field.HalfdayOfDay:
		return f.HalfdayOfDay
	case field.HourOfHalfday:
		return f.HourOfHalfday
	case field.ClockhourOfHalfday:
		return f.ClockhourOfHalfday
	case field.ClockhourOfDay:
		return f.ClockhourOfDay
	case field.HourOfDay:
		return f.HourOfDay
	case field.MinuteOfDay:
		return f.MinuteOfDay
	case field.MinuteOfHour:
		return f.MinuteOfHour
	case field.SecondOfDay:
		return f.SecondOfDay
	case field.SecondOfMinute:
		return f.SecondOfMinute
	case field.MillisOfDay:
		return f.MillisOfDay
	case field.MillisOfSecond:
		return f.MillisOfSecond
	}
	return nil
}

// Duration returns the duration field of the given type.
func (f *Fields) Duration(durationType field.DurationFieldType) field.DurationField {
	switch durationType {
	case field.Millis:
		return f.Millis
	case field.Seconds:
		return f.Seconds
	case field.Minutes:
		return f.Minutes
	case field.Hours:
		return f.Hours
	case field.HalfDays:
		return f.HalfDays
	case field.Days:
		return f.Days
	case field.Weeks:
		return f.Weeks
	case field.WeekYears:
		return f.WeekYears
	case field.Months:
		return f.Months
	case field.Years:
		return f.Years
	case field.Centuries:
		return f.Centuries
	case field.Eras:
		return f.Eras
	}
	return nil
}

// setField stores value under its type. Used by decorators that
// rebuild every field of a wrapped set.
func (f *Fields) setField(fieldType field.DateTimeFieldType, value field.DateTimeField) {
	switch fieldType {
	case field.Era:
		f.Era = value
	case field.YearOfEra:
		f.YearOfEra = value
	case field.CenturyOfEra:
		f.CenturyOfEra = value
	case field.YearOfCentury:
		f.YearOfCentury = value
	case field.Year:
		f.Year = value
	case field.DayOfYear:
		f.DayOfYear = value
	case field.MonthOfYear:
		f.MonthOfYear = value
	case field.DayOfMonth:
		f.DayOfMonth = value
	case field.WeekyearOfCentury:
		f.WeekyearOfCentury = value
	case field.Weekyear:
		f.Weekyear = value
	case field.WeekOfWeekyear:
		f.WeekOfWeekyear = value
	case field.DayOfWeek:
		f.DayOfWeek = value
	case field.HalfdayOfDay:
		f.HalfdayOfDay = value
	case field.HourOfHalfday:
		f.HourOfHalfday = value
	case field.ClockhourOfHalfday:
		f.ClockhourOfHalfday = value
	case field.ClockhourOfDay:
		f.ClockhourOfDay = value
	case field.HourOfDay:
		f.HourOfDay = value
	case field.MinuteOfDay:
		f.MinuteOfDay = value
	case field.MinuteOfHour:
		f.MinuteOfHour = value
	case field.SecondOfDay:
		f.SecondOfDay = value
	case field.SecondOfMinute:
		f.SecondOfMinute = value
	case field.MillisOfDay:
		f.MillisOfDay = value
	case field.MillisOfSecond:
		f.MillisOfSecond = value
	}
}

// ConfigurationError reports a chronology that cannot be assembled
// from the requested parts.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "chronology configuration: " + e.Message
}

func configurationErrorf(format string, args ...any) error {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// Values returns every field value of instant, largest field first.
func Values(c Chronology, instant int64) []FieldValue {
	fields := c.Fields()
	values := make([]FieldValue, 0, len(field.DateTimeFieldTypes))
	for _, fieldType := range field.DateTimeFieldTypes {
		values = append(values, FieldValue{Type: fieldType, Value: fields.Field(fieldType).Get(instant)})
	}
	return values
}

// FieldValue pairs a field type with its value at some instant.
type FieldValue struct {
	Type  field.DateTimeFieldType
	Value int
}

func cutoverString(cutover int64) string {
	switch cutover {
	case GregorianCutover:
		return "gregorian"
	case JulianCutover:
		return "julian"
	}
	return fmt.Sprintf("%d", cutover)
}
