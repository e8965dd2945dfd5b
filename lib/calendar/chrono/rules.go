// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import "github.com/bureau-foundation/calendar/lib/calendar/field"

// gregorianRules: leap every fourth year except centuries not
// divisible by 400.
type gregorianRules struct{}

const (
	gregorianMinYear = -292275054
	gregorianMaxYear = 292278993

	// 365.2425 days.
	gregorianMillisPerYear  = 31556952000
	gregorianMillisPerMonth = gregorianMillisPerYear / 12

	// Days from 1970-01-01 to 2000-01-01.
	gregorianDays1970To2000 = 10957
)

func (gregorianRules) isLeapYear(year int) bool {
	return year&3 == 0 && (year%100 != 0 || year%400 == 0)
}

// gregorianLeapYearsBefore counts leap years in (-inf, year), shifted
// by a constant that cancels when two counts are subtracted.
// Floor division keeps the count correct for negative years.
func gregorianLeapYearsBefore(year int64) int64 {
	previous := year - 1
	return field.FloorDiv(previous, 4) - field.FloorDiv(previous, 100) + field.FloorDiv(previous, 400)
}

// firstDayOfYearMillis counts days from 2000-01-01, a 400-year cycle
// start, then moves the result to the 1970 epoch.
func (gregorianRules) firstDayOfYearMillis(year int) int64 {
	relative := int64(year) - 2000
	days := relative*365 + gregorianLeapYearsBefore(int64(year)) - gregorianLeapYearsBefore(2000)
	return (days + gregorianDays1970To2000) * field.MillisPerDay
}

func (gregorianRules) minYear() int                 { return gregorianMinYear }
func (gregorianRules) maxYear() int                 { return gregorianMaxYear }
func (gregorianRules) averageMillisPerYear() int64  { return gregorianMillisPerYear }
func (gregorianRules) averageMillisPerMonth() int64 { return gregorianMillisPerMonth }

func (gregorianRules) approxMillisAtEpochDividedByTwo() int64 {
	return 1970 * gregorianMillisPerYear / 2
}

// julianRules: leap every fourth year, no exceptions. Year zero exists
// at this level; the public Julian chronology elides it.
type julianRules struct{}

const (
	// Astronomical numbering: -292269053 is 292269054 BC.
	julianMinYear = -292269053
	julianMaxYear = 292272992

	// 365.25 days.
	julianMillisPerYear  = 31557600000
	julianMillisPerMonth = julianMillisPerYear / 12

	// Days from Julian 1968-01-01 to 1970-01-01 (Gregorian), which is
	// Julian 1969-12-19: 366 days of 1968 plus 352 of 1969.
	julianDays1968ToEpoch = 366 + 352
)

func (julianRules) isLeapYear(year int) bool {
	return year&3 == 0
}

// firstDayOfYearMillis counts from 1968, a Julian leap year.
func (julianRules) firstDayOfYearMillis(year int) int64 {
	relative := int64(year) - 1968
	var leapYears int64
	if relative <= 0 {
		leapYears = (relative + 3) >> 2
	} else {
		leapYears = relative >> 2
		if year&3 != 0 {
			leapYears++
		}
	}
	return (relative*365 + leapYears - julianDays1968ToEpoch) * field.MillisPerDay
}

func (julianRules) minYear() int                 { return julianMinYear }
func (julianRules) maxYear() int                 { return julianMaxYear }
func (julianRules) averageMillisPerYear() int64  { return julianMillisPerYear }
func (julianRules) averageMillisPerMonth() int64 { return julianMillisPerMonth }

func (julianRules) approxMillisAtEpochDividedByTwo() int64 {
	return (1969*julianMillisPerYear + 352*field.MillisPerDay) / 2
}
