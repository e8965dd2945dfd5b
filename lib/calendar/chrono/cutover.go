// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"fmt"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// cutoverChronology joins a Julian calendar before the cutover instant
// to a Gregorian calendar from it on. The Gregorian date of the
// cutover follows the Julian date of the instant before it, so the
// dates in between (the gap) do not exist: with the default cutover,
// Thursday 1582-10-04 is followed by Friday 1582-10-15.
type cutoverChronology struct {
	julian    Chronology
	gregorian Chronology
	cutover   int64

	// gap is the Gregorian date of the cutover minus its Julian date,
	// as a millisecond offset.
	gap    int64
	fields *Fields
}

// NewCutover joins julian and gregorian at the cutover instant. Both
// must be UTC, ISO-century calendars with the same first-week rule,
// and the cutover must be on or after Gregorian 0001-01-01.
func NewCutover(julian, gregorian Chronology, cutover int64) (Chronology, error) {
	if !zone.IsUTC(julian.Zone()) || !zone.IsUTC(gregorian.Zone()) {
		return nil, configurationErrorf("cutover calendars must be UTC, got %s and %s", julian.Zone().ID(), gregorian.Zone().ID())
	}
	if julian.MinimumDaysInFirstWeek() != gregorian.MinimumDaysInFirstWeek() {
		return nil, configurationErrorf("cutover calendars disagree on minimum days in first week: %d and %d",
			julian.MinimumDaysInFirstWeek(), gregorian.MinimumDaysInFirstWeek())
	}
	if julian.IsCenturyISO() != gregorian.IsCenturyISO() {
		return nil, configurationErrorf("cutover calendars disagree on century numbering")
	}
	if cutover == GregorianCutover || cutover == JulianCutover {
		return nil, configurationErrorf("cutover %s selects a single calendar", cutoverString(cutover))
	}
	if year := gregorian.Fields().Year.Get(cutover); year <= 0 {
		return nil, configurationErrorf("cutover year %d is before 0001-01-01", year)
	}

	c := &cutoverChronology{julian: julian, gregorian: gregorian, cutover: cutover}
	converted, err := c.julianToGregorianByYear(cutover)
	if err != nil {
		return nil, configurationErrorf("cutover %d has no Gregorian counterpart: %v", cutover, err)
	}
	c.gap = cutover - converted
	c.assemble()
	return c, nil
}

func (c *cutoverChronology) Zone() zone.Zone             { return zone.UTC }
func (c *cutoverChronology) Fields() *Fields             { return c.fields }
func (c *cutoverChronology) CutoverMillis() int64        { return c.cutover }
func (c *cutoverChronology) IsCenturyISO() bool          { return c.gregorian.IsCenturyISO() }
func (c *cutoverChronology) MinimumDaysInFirstWeek() int { return c.gregorian.MinimumDaysInFirstWeek() }

func (c *cutoverChronology) String() string {
	return fmt.Sprintf("GJ[UTC,cutover=%d,mdfw=%d]", c.cutover, c.MinimumDaysInFirstWeek())
}

// Gap returns the length of the cutover gap in milliseconds.
func (c *cutoverChronology) Gap() int64 { return c.gap }

// CutoverGap returns the gap of the Julian-Gregorian cutover beneath
// c, looking through zone and century decorators. ok is false for the
// single-calendar chronologies.
func CutoverGap(c Chronology) (gap int64, ok bool) {
	for {
		switch typed := c.(type) {
		case *cutoverChronology:
			return typed.gap, true
		case *zonedChronology:
			c = typed.base
		case *centuryChronology:
			c = typed.Chronology
		default:
			return 0, false
		}
	}
}

func (c *cutoverChronology) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	millisOfDay, err := timeMillis(hour, minute, second, millis)
	if err != nil {
		return 0, err
	}
	return c.DateMillis(year, month, day, millisOfDay)
}

// DateMillis reads the date as Gregorian when that lands on or after
// the cutover and as Julian otherwise. A Julian reading that also
// lands on or after the cutover names a day in the gap.
func (c *cutoverChronology) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	instant, err := c.gregorian.DateMillis(year, month, day, millisOfDay)
	if err != nil {
		// Feb 29 of a Julian-only leap year is legal before the cutover.
		if month != 2 || day != 29 {
			return 0, err
		}
		feb28, err28 := c.gregorian.DateMillis(year, month, 28, millisOfDay)
		if err28 != nil || feb28 >= c.cutover {
			return 0, err
		}
		instant = feb28
	}
	if instant >= c.cutover {
		return instant, nil
	}
	instant, err = c.julian.DateMillis(year, month, day, millisOfDay)
	if err != nil {
		return 0, err
	}
	if instant >= c.cutover {
		return 0, &field.IllegalInstantError{
			Instant: instant,
			Message: fmt.Sprintf("%04d-%02d-%02d does not exist: it falls in the Julian/Gregorian cutover gap", year, month, day),
		}
	}
	return instant, nil
}

// convertByYear moves instant to the same year, month, day and time
// of day in the other calendar.
func convertByYear(instant int64, from, to Chronology) (int64, error) {
	fields := from.Fields()
	year := fields.Year.Get(instant)
	month := fields.MonthOfYear.Get(instant)
	day := fields.DayOfMonth.Get(instant)
	return to.DateMillis(year, month, day, fields.MillisOfDay.Get(instant))
}

// convertByWeekyear moves instant to the same weekyear, week, day of
// week and time of day in the other calendar. Week 53 becomes week 52
// when the other calendar's weekyear is a week shorter.
func convertByWeekyear(instant int64, from, to Chronology) (int64, error) {
	source, target := from.Fields(), to.Fields()
	converted, err := target.Weekyear.Set(0, source.Weekyear.Get(instant))
	if err != nil {
		return 0, err
	}
	week := min(source.WeekOfWeekyear.Get(instant), target.WeekOfWeekyear.MaximumValueAt(converted))
	if converted, err = target.WeekOfWeekyear.Set(converted, week); err != nil {
		return 0, err
	}
	if converted, err = target.DayOfWeek.Set(converted, source.DayOfWeek.Get(instant)); err != nil {
		return 0, err
	}
	return target.MillisOfDay.Set(converted, source.MillisOfDay.Get(instant))
}

func (c *cutoverChronology) julianToGregorianByYear(instant int64) (int64, error) {
	return convertByYear(instant, c.julian, c.gregorian)
}

func (c *cutoverChronology) gregorianToJulianByYear(instant int64) (int64, error) {
	return convertByYear(instant, c.gregorian, c.julian)
}

func (c *cutoverChronology) julianToGregorianByWeekyear(instant int64) (int64, error) {
	return convertByWeekyear(instant, c.julian, c.gregorian)
}

func (c *cutoverChronology) gregorianToJulianByWeekyear(instant int64) (int64, error) {
	return convertByWeekyear(instant, c.gregorian, c.julian)
}

// assemble starts from the Gregorian field set and replaces every
// date field with one that dispatches on the cutover. Time of day
// fields are shared: the gap is a whole number of days.
func (c *cutoverChronology) assemble() {
	julian, gregorian := c.julian.Fields(), c.gregorian.Fields()
	fields := *gregorian

	year := c.impreciseField(julian.Year, gregorian.Year, nil, nil, false)
	fields.Year = year
	fields.Years = year.DurationField()
	fields.YearOfEra = c.impreciseField(julian.YearOfEra, gregorian.YearOfEra, fields.Years, nil, false)
	fields.Era = &cutoverEraField{
		cutoverField: c.basicField(julian.Era, gregorian.Era, nil, c.cutover, false),
		year:         fields.Year,
		yearOfEra:    fields.YearOfEra,
	}

	century := c.impreciseField(julian.CenturyOfEra, gregorian.CenturyOfEra, nil, nil, false)
	fields.CenturyOfEra = century
	fields.Centuries = century.DurationField()
	fields.YearOfCentury = c.impreciseField(julian.YearOfCentury, gregorian.YearOfCentury, fields.Years, fields.Centuries, false)

	months := c.impreciseField(julian.MonthOfYear, gregorian.MonthOfYear, nil, fields.Years, false)
	fields.MonthOfYear = months
	fields.Months = months.DurationField()
	fields.DayOfMonth = c.basicField(julian.DayOfMonth, gregorian.DayOfMonth, fields.Months, c.cutover, false)

	weekyear := c.impreciseField(julian.Weekyear, gregorian.Weekyear, nil, nil, true)
	fields.Weekyear = weekyear
	fields.WeekYears = weekyear.DurationField()
	fields.WeekyearOfCentury = c.impreciseField(julian.WeekyearOfCentury, gregorian.WeekyearOfCentury, fields.WeekYears, fields.Centuries, false)

	// The day of year and week of weekyear keep counting up through
	// the end of the cutover year, so they switch calendars at the
	// start of the following year rather than at the cutover itself.
	yearEnd, err := gregorian.Year.RoundCeiling(c.cutover)
	if err != nil {
		yearEnd = c.cutover
	}
	fields.DayOfYear = c.basicField(julian.DayOfYear, gregorian.DayOfYear, fields.Years, yearEnd, false)

	weekyearEnd, err := gregorian.Weekyear.RoundCeiling(c.cutover)
	if err != nil {
		weekyearEnd = c.cutover
	}
	fields.WeekOfWeekyear = c.basicField(julian.WeekOfWeekyear, gregorian.WeekOfWeekyear, fields.WeekYears, weekyearEnd, true)

	c.fields = &fields
}
