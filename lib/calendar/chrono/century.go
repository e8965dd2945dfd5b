// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"github.com/bureau-foundation/calendar/lib/calendar/field"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// centuryChronology numbers centuries from year 1: the first century
// is years 1 through 100 of the era, and 2000 is the last year of the
// twentieth century. Everything else comes from the wrapped calendar.
type centuryChronology struct {
	Chronology
	fields *Fields
}

// WithTraditionalCentury replaces the ISO century fields of base.
// base must be UTC and use ISO centuries.
func WithTraditionalCentury(base Chronology) (Chronology, error) {
	if !zone.IsUTC(base.Zone()) {
		return nil, configurationErrorf("century numbering must be applied before zone %s", base.Zone().ID())
	}
	if !base.IsCenturyISO() {
		return nil, configurationErrorf("%s already numbers centuries from year 1", base)
	}

	fields := *base.Fields()
	shifted := field.NewOffsetDateTimeField(fields.YearOfEra, field.YearOfEra, 99)
	century, err := field.NewDividedDateTimeField(shifted, field.CenturyOfEra, 100)
	if err != nil {
		return nil, err
	}
	fields.CenturyOfEra = century
	fields.Centuries = century.DurationField()
	fields.YearOfCentury = field.NewOffsetDateTimeField(
		field.NewRemainderFromDivided(century, field.YearOfCentury), field.YearOfCentury, 1)

	return &centuryChronology{Chronology: base, fields: &fields}, nil
}

func (c *centuryChronology) Fields() *Fields    { return c.fields }
func (c *centuryChronology) IsCenturyISO() bool { return false }

func (c *centuryChronology) String() string {
	return "Century[" + c.Chronology.String() + "]"
}
