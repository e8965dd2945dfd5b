// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"fmt"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// leafChronology is a pure proleptic calendar in UTC: the Gregorian or
// Julian leaf. Zones, non-ISO centuries and cutovers are layered on by
// wrapping it.
type leafChronology struct {
	name    string
	kernel  *basicChronology
	fields  *Fields
	cutover int64

	// publicYear maps a requested year to the kernel's astronomical
	// numbering.
	publicYear func(year int) (int, error)
}

func (c *leafChronology) Zone() zone.Zone             { return zone.UTC }
func (c *leafChronology) Fields() *Fields             { return c.fields }
func (c *leafChronology) CutoverMillis() int64        { return c.cutover }
func (c *leafChronology) IsCenturyISO() bool          { return true }
func (c *leafChronology) MinimumDaysInFirstWeek() int { return c.kernel.minDaysInFirstWeek }

func (c *leafChronology) String() string {
	return fmt.Sprintf("%s[UTC,mdfw=%d]", c.name, c.kernel.minDaysInFirstWeek)
}

func (c *leafChronology) DateTimeMillis(year, month, day, hour, minute, second, millis int) (int64, error) {
	millisOfDay, err := timeMillis(hour, minute, second, millis)
	if err != nil {
		return 0, err
	}
	return c.DateMillis(year, month, day, millisOfDay)
}

func (c *leafChronology) DateMillis(year, month, day, millisOfDay int) (int64, error) {
	year, err := c.publicYear(year)
	if err != nil {
		return 0, err
	}
	return c.kernel.dateTimeMillis(year, month, day, millisOfDay)
}

// newGregorian is the proleptic Gregorian calendar in UTC.
func newGregorian(minDaysInFirstWeek int) *leafChronology {
	kernel := newBasicChronology(gregorianRules{}, minDaysInFirstWeek)
	return &leafChronology{
		name:       "Gregorian",
		kernel:     kernel,
		fields:     kernel.assemble(func(year field.DateTimeField) field.DateTimeField { return year }),
		cutover:    GregorianCutover,
		publicYear: func(year int) (int, error) { return year, nil },
	}
}

// newJulian is the proleptic Julian calendar in UTC. It has no year
// zero: year -1 (1 BCE) is followed by year 1.
func newJulian(minDaysInFirstWeek int) *leafChronology {
	kernel := newBasicChronology(julianRules{}, minDaysInFirstWeek)
	return &leafChronology{
		name:   "Julian",
		kernel: kernel,
		fields: kernel.assemble(func(year field.DateTimeField) field.DateTimeField {
			return field.NewSkipDateTimeField(year, 0)
		}),
		cutover:    JulianCutover,
		publicYear: julianToAstronomical,
	}
}

func julianToAstronomical(year int) (int, error) {
	switch {
	case year == 0:
		return 0, &field.IllegalFieldValueError{Field: field.Year, Value: 0, Message: "the Julian calendar has no year zero"}
	case year < 0:
		return year + 1, nil
	}
	return year, nil
}

func validateMinDays(minDaysInFirstWeek int) error {
	if minDaysInFirstWeek < 1 || minDaysInFirstWeek > 7 {
		return configurationErrorf("minimum days in first week must be in [1,7], got %d", minDaysInFirstWeek)
	}
	return nil
}
