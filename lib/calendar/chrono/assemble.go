// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

// must unwraps a field constructor whose arguments are fixed at
// compile time. Failure is a programming error.
func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func precise(fieldType field.DateTimeFieldType, unit, rangeField field.DurationField) field.DateTimeField {
	return must(field.NewPreciseDateTimeField(fieldType, unit, rangeField))
}

// assembleTimeFields fills the durations and fields below one day.
// They are identical for every calendar.
func assembleTimeFields(fields *Fields) {
	fields.Millis = field.MillisDuration
	fields.Seconds = secondsDuration
	fields.Minutes = minutesDuration
	fields.Hours = hoursDuration
	fields.HalfDays = halfDaysDuration
	fields.Days = daysDuration
	fields.Weeks = weeksDuration

	fields.MillisOfSecond = precise(field.MillisOfSecond, field.MillisDuration, secondsDuration)
	fields.MillisOfDay = precise(field.MillisOfDay, field.MillisDuration, daysDuration)
	fields.SecondOfMinute = precise(field.SecondOfMinute, secondsDuration, minutesDuration)
	fields.SecondOfDay = precise(field.SecondOfDay, secondsDuration, daysDuration)
	fields.MinuteOfHour = precise(field.MinuteOfHour, minutesDuration, hoursDuration)
	fields.MinuteOfDay = precise(field.MinuteOfDay, minutesDuration, daysDuration)
	fields.HourOfDay = precise(field.HourOfDay, hoursDuration, daysDuration)
	fields.HourOfHalfday = precise(field.HourOfHalfday, hoursDuration, halfDaysDuration)
	fields.HalfdayOfDay = precise(field.HalfdayOfDay, halfDaysDuration, daysDuration)
	fields.ClockhourOfDay = field.NewZeroIsMaxDateTimeField(fields.HourOfDay, field.ClockhourOfDay)
	fields.ClockhourOfHalfday = field.NewZeroIsMaxDateTimeField(fields.HourOfHalfday, field.ClockhourOfHalfday)
}

// assemble builds the complete field set of a proleptic calendar.
// publicYear adapts the astronomical year and weekyear fields to the
// calendar's year numbering before anything derived from them is
// built; era and year of era always read the astronomical year.
func (c *basicChronology) assemble(publicYear func(field.DateTimeField) field.DateTimeField) *Fields {
	fields := &Fields{}
	assembleTimeFields(fields)

	astronomicalYear := newYearField(c)
	fields.Year = publicYear(astronomicalYear)
	fields.Years = astronomicalYear.DurationField()
	fields.YearOfEra = &yearOfEraField{DateTimeField: astronomicalYear, c: c}
	fields.Era = &eraField{Base: field.Base{FieldType: field.Era}, c: c}
	fields.Eras = fields.Era.DurationField()

	fields.Weekyear = publicYear(&weekyearField{Base: field.Base{FieldType: field.Weekyear}, c: c})
	fields.WeekYears = fields.Weekyear.DurationField()
	fields.WeekyearOfCentury = must(field.NewRemainderDateTimeField(fields.Weekyear, field.WeekyearOfCentury, 100))

	centuryOfEra := must(field.NewDividedDateTimeField(&isoYearOfEraField{DateTimeField: fields.Year}, field.CenturyOfEra, 100))
	fields.CenturyOfEra = centuryOfEra
	fields.Centuries = centuryOfEra.DurationField()
	fields.YearOfCentury = field.NewRemainderFromDivided(centuryOfEra, field.YearOfCentury)

	months := &monthOfYearField{Base: field.Base{FieldType: field.MonthOfYear}, c: c, years: fields.Years}
	fields.MonthOfYear = months
	fields.Months = months.DurationField()

	fields.DayOfMonth = &dayOfMonthField{
		preciseUnit: c.dayUnit(field.DayOfMonth),
		months:      fields.Months,
	}
	fields.DayOfYear = &dayOfYearField{
		preciseUnit: c.dayUnit(field.DayOfYear),
		years:       fields.Years,
	}
	fields.DayOfWeek = &dayOfWeekField{preciseUnit: c.dayUnit(field.DayOfWeek)}
	fields.WeekOfWeekyear = &weekOfWeekyearField{
		preciseUnit: preciseUnit{
			Base:  field.Base{FieldType: field.WeekOfWeekyear},
			c:     c,
			unit:  weeksDuration,
			shift: 3 * field.MillisPerDay,
		},
		weekyears: fields.WeekYears,
	}
	return fields
}

func (c *basicChronology) dayUnit(fieldType field.DateTimeFieldType) preciseUnit {
	return preciseUnit{Base: field.Base{FieldType: fieldType}, c: c, unit: daysDuration}
}
