// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

// DurationFieldType identifies the unit of a DurationField.
type DurationFieldType int

const (
	Eras DurationFieldType = iota
	Centuries
	WeekYears
	Years
	Months
	Weeks
	Days
	HalfDays
	Hours
	Minutes
	Seconds
	Millis
)

var durationFieldNames = [...]string{
	Eras:      "eras",
	Centuries: "centuries",
	WeekYears: "weekyears",
	Years:     "years",
	Months:    "months",
	Weeks:     "weeks",
	Days:      "days",
	HalfDays:  "halfdays",
	Hours:     "hours",
	Minutes:   "minutes",
	Seconds:   "seconds",
	Millis:    "millis",
}

func (t DurationFieldType) String() string {
	if t < 0 || int(t) >= len(durationFieldNames) {
		return "unknown"
	}
	return durationFieldNames[t]
}

// DateTimeFieldType identifies a calendar component. Each type knows
// the unit it counts in and the unit it resets within.
type DateTimeFieldType int

const (
	Era DateTimeFieldType = iota
	YearOfEra
	CenturyOfEra
	YearOfCentury
	Year
	DayOfYear
	MonthOfYear
	DayOfMonth
	WeekyearOfCentury
	Weekyear
	WeekOfWeekyear
	DayOfWeek
	HalfdayOfDay
	HourOfHalfday
	ClockhourOfHalfday
	ClockhourOfDay
	HourOfDay
	MinuteOfDay
	MinuteOfHour
	SecondOfDay
	SecondOfMinute
	MillisOfDay
	MillisOfSecond
)

// DateTimeFieldTypes lists every field type from largest to smallest.
var DateTimeFieldTypes = []DateTimeFieldType{
	Era, YearOfEra, CenturyOfEra, YearOfCentury, Year, DayOfYear,
	MonthOfYear, DayOfMonth, WeekyearOfCentury, Weekyear,
	WeekOfWeekyear, DayOfWeek, HalfdayOfDay, HourOfHalfday,
	ClockhourOfHalfday, ClockhourOfDay, HourOfDay, MinuteOfDay,
	MinuteOfHour, SecondOfDay, SecondOfMinute, MillisOfDay,
	MillisOfSecond,
}

type dateTimeFieldInfo struct {
	name     string
	unit     DurationFieldType
	rangeOf  DurationFieldType
	hasRange bool
}

var dateTimeFieldInfos = [...]dateTimeFieldInfo{
	Era:                {"era", Eras, 0, false},
	YearOfEra:          {"yearOfEra", Years, Eras, true},
	CenturyOfEra:       {"centuryOfEra", Centuries, Eras, true},
	YearOfCentury:      {"yearOfCentury", Years, Centuries, true},
	Year:               {"year", Years, 0, false},
	DayOfYear:          {"dayOfYear", Days, Years, true},
	MonthOfYear:        {"monthOfYear", Months, Years, true},
	DayOfMonth:         {"dayOfMonth", Days, Months, true},
	WeekyearOfCentury:  {"weekyearOfCentury", WeekYears, Centuries, true},
	Weekyear:           {"weekyear", WeekYears, 0, false},
	WeekOfWeekyear:     {"weekOfWeekyear", Weeks, WeekYears, true},
	DayOfWeek:          {"dayOfWeek", Days, Weeks, true},
	HalfdayOfDay:       {"halfdayOfDay", HalfDays, Days, true},
	HourOfHalfday:      {"hourOfHalfday", Hours, HalfDays, true},
	ClockhourOfHalfday: {"clockhourOfHalfday", Hours, HalfDays, true},
	ClockhourOfDay:     {"clockhourOfDay", Hours, Days, true},
	HourOfDay:          {"hourOfDay", Hours, Days, true},
	MinuteOfDay:        {"minuteOfDay", Minutes, Days, true},
	MinuteOfHour:       {"minuteOfHour", Minutes, Hours, true},
	SecondOfDay:        {"secondOfDay", Seconds, Days, true},
	SecondOfMinute:     {"secondOfMinute", Seconds, Minutes, true},
	MillisOfDay:        {"millisOfDay", Millis, Days, true},
	MillisOfSecond:     {"millisOfSecond", Millis, Seconds, true},
}

func (t DateTimeFieldType) String() string {
	if t < 0 || int(t) >= len(dateTimeFieldInfos) {
		return "unknown"
	}
	return dateTimeFieldInfos[t].name
}

// DurationType returns the unit this field type counts in.
func (t DateTimeFieldType) DurationType() DurationFieldType {
	return dateTimeFieldInfos[t].unit
}

// RangeDurationType returns the unit this field type resets within.
// The second result is false for unbounded types (era, year, weekyear).
func (t DateTimeFieldType) RangeDurationType() (DurationFieldType, bool) {
	info := dateTimeFieldInfos[t]
	return info.rangeOf, info.hasRange
}

// Era values.
const (
	BCE = 0
	CE  = 1
)

// Millisecond lengths of the precise units.
const (
	MillisPerSecond  = 1000
	MillisPerMinute  = 60 * MillisPerSecond
	MillisPerHour    = 60 * MillisPerMinute
	MillisPerHalfDay = 12 * MillisPerHour
	MillisPerDay     = 24 * MillisPerHour
	MillisPerWeek    = 7 * MillisPerDay
)
