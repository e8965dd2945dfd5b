// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"sort"
	"sync/atomic"

	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

// yearRules is what distinguishes one proleptic calendar from another
// at the kernel level: which years are leap years and where each year
// begins. Everything else (month tables, time of day, weeks) is shared.
type yearRules interface {
	isLeapYear(year int) bool

	// firstDayOfYearMillis computes, without caching, the instant at
	// which year begins.
	firstDayOfYearMillis(year int) int64

	minYear() int
	maxYear() int

	// Rough lengths, used only as unit sizes of imprecise durations
	// and as the first guess when locating an instant's year.
	averageMillisPerYear() int64
	averageMillisPerMonth() int64
	approxMillisAtEpochDividedByTwo() int64
}

const (
	yearCacheSize = 1 << 10
	yearCacheMask = yearCacheSize - 1

	// Offset of Feb 29 from the start of a leap year.
	feb29Millis = (31 + 29 - 1) * int64(field.MillisPerDay)

	// 1024 divides the day length, so instant offsets within a year
	// can be scaled down to fit 32 bits without losing whole days.
	millisPerDayOver1024 = field.MillisPerDay >> 10
)

var (
	minDaysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	maxDaysPerMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// Millis from the start of the year to the start of each month.
	minTotalMillisByMonth [12]int64
	maxTotalMillisByMonth [12]int64

	// Day counts from the start of the year to the end of each month,
	// the search keys for monthOfYear.
	minDaysToMonthEnd [12]int
	maxDaysToMonthEnd [12]int
)

func init() {
	var minSum, maxSum int64
	var minDays, maxDays int
	for month := 0; month < 12; month++ {
		minTotalMillisByMonth[month] = minSum
		maxTotalMillisByMonth[month] = maxSum
		minSum += int64(minDaysPerMonth[month]) * field.MillisPerDay
		maxSum += int64(maxDaysPerMonth[month]) * field.MillisPerDay
		minDays += minDaysPerMonth[month]
		maxDays += maxDaysPerMonth[month]
		minDaysToMonthEnd[month] = minDays
		maxDaysToMonthEnd[month] = maxDays
	}
}

// yearInfo caches the start instant of one year. Slots are replaced
// as a whole, so a reader sees either a complete pair or a stale pair
// for another year, never a mix.
type yearInfo struct {
	year           int
	firstDayMillis int64
}

// basicChronology is the proleptic calendar kernel: year, month and
// day arithmetic over a millisecond timeline, parameterized by the
// leap-year rule and first-day-of-year formula of its yearRules.
type basicChronology struct {
	rules              yearRules
	minDaysInFirstWeek int
	yearCache          [yearCacheSize]atomic.Pointer[yearInfo]
}

func newBasicChronology(rules yearRules, minDaysInFirstWeek int) *basicChronology {
	return &basicChronology{rules: rules, minDaysInFirstWeek: minDaysInFirstWeek}
}

func (c *basicChronology) isLeapYear(year int) bool { return c.rules.isLeapYear(year) }
func (c *basicChronology) minYear() int             { return c.rules.minYear() }
func (c *basicChronology) maxYear() int             { return c.rules.maxYear() }

// yearMillis returns the first instant of year.
func (c *basicChronology) yearMillis(year int) int64 {
	slot := &c.yearCache[year&yearCacheMask]
	if info := slot.Load(); info != nil && info.year == year {
		return info.firstDayMillis
	}
	info := &yearInfo{year: year, firstDayMillis: c.rules.firstDayOfYearMillis(year)}
	slot.Store(info)
	return info.firstDayMillis
}

func (c *basicChronology) yearMonthMillis(year, month int) int64 {
	return c.yearMillis(year) + c.totalMillisByYearMonth(year, month)
}

func (c *basicChronology) yearMonthDayMillis(year, month, day int) int64 {
	return c.yearMonthMillis(year, month) + int64(day-1)*field.MillisPerDay
}

func (c *basicChronology) totalMillisByYearMonth(year, month int) int64 {
	if c.isLeapYear(year) {
		return maxTotalMillisByMonth[month-1]
	}
	return minTotalMillisByMonth[month-1]
}

func (c *basicChronology) daysInYearMonth(year, month int) int {
	if c.isLeapYear(year) {
		return maxDaysPerMonth[month-1]
	}
	return minDaysPerMonth[month-1]
}

func (c *basicChronology) daysInYear(year int) int {
	if c.isLeapYear(year) {
		return 366
	}
	return 365
}

// year locates the year containing instant. The estimate from the
// average year length can be off by one near year boundaries, so it
// is checked against the exact start of the estimated year.
func (c *basicChronology) year(instant int64) int {
	// Halve everything so the epoch shift cannot overflow.
	unitMillis := c.rules.averageMillisPerYear() / 2
	halved := (instant >> 1) + c.rules.approxMillisAtEpochDividedByTwo()
	if halved < 0 {
		halved = halved - unitMillis + 1
	}
	year := int(halved / unitMillis)

	yearStart := c.yearMillis(year)
	difference := instant - yearStart
	if difference < 0 {
		year--
	} else if difference >= 365*field.MillisPerDay {
		oneYear := int64(c.daysInYear(year)) * field.MillisPerDay
		if yearStart+oneYear <= instant {
			year++
		}
	}
	return year
}

// monthOfYearIn returns the month of instant, which must fall in year.
func (c *basicChronology) monthOfYearIn(instant int64, year int) int {
	scaled := int((instant - c.yearMillis(year)) >> 10)
	daysToMonthEnd := &minDaysToMonthEnd
	if c.isLeapYear(year) {
		daysToMonthEnd = &maxDaysToMonthEnd
	}
	return 1 + sort.Search(11, func(month int) bool {
		return scaled < daysToMonthEnd[month]*millisPerDayOver1024
	})
}

func (c *basicChronology) monthOfYear(instant int64) int {
	return c.monthOfYearIn(instant, c.year(instant))
}

func (c *basicChronology) dayOfMonthIn(instant int64, year, month int) int {
	return int((instant-c.yearMonthMillis(year, month))/field.MillisPerDay) + 1
}

func (c *basicChronology) dayOfMonth(instant int64) int {
	year := c.year(instant)
	return c.dayOfMonthIn(instant, year, c.monthOfYearIn(instant, year))
}

func (c *basicChronology) dayOfYearIn(instant int64, year int) int {
	return int((instant-c.yearMillis(year))/field.MillisPerDay) + 1
}

func (c *basicChronology) dayOfYear(instant int64) int {
	return c.dayOfYearIn(instant, c.year(instant))
}

// dayOfWeek returns 1 (Monday) through 7 (Sunday). 1970-01-01 was a
// Thursday.
func (c *basicChronology) dayOfWeek(instant int64) int {
	days := field.FloorDiv(instant, field.MillisPerDay)
	return 1 + int(field.FloorMod(days+3, 7))
}

func (c *basicChronology) millisOfDay(instant int64) int {
	return int(field.FloorMod(instant, field.MillisPerDay))
}

// daysInMonthAt returns the length of the month containing instant.
func (c *basicChronology) daysInMonthAt(instant int64) int {
	year := c.year(instant)
	return c.daysInYearMonth(year, c.monthOfYearIn(instant, year))
}

func (c *basicChronology) isLeapDay(instant int64) bool {
	year := c.year(instant)
	if !c.isLeapYear(year) {
		return false
	}
	return instant-c.yearMillis(year) >= feb29Millis &&
		instant-c.yearMillis(year) < feb29Millis+field.MillisPerDay
}

// firstWeekOfYearMillis returns the start of week 1 of year: the
// Monday on or before January 1 when that week holds at least
// minDaysInFirstWeek days of January, otherwise the Monday after.
func (c *basicChronology) firstWeekOfYearMillis(year int) int64 {
	jan1 := c.yearMillis(year)
	jan1DayOfWeek := c.dayOfWeek(jan1)
	if jan1DayOfWeek > 8-c.minDaysInFirstWeek {
		return jan1 + int64(8-jan1DayOfWeek)*field.MillisPerDay
	}
	return jan1 - int64(jan1DayOfWeek-1)*field.MillisPerDay
}

func (c *basicChronology) weeksInYear(year int) int {
	return int((c.firstWeekOfYearMillis(year+1) - c.firstWeekOfYearMillis(year)) / field.MillisPerWeek)
}

// weekOfWeekyearIn compares instant with the first-week boundaries of
// year and year+1: before the first, it is in the previous weekyear's
// last week; at or after the second, it is week 1 of the next.
func (c *basicChronology) weekOfWeekyearIn(instant int64, year int) int {
	firstWeek := c.firstWeekOfYearMillis(year)
	if instant < firstWeek {
		return c.weeksInYear(year - 1)
	}
	if instant >= c.firstWeekOfYearMillis(year+1) {
		return 1
	}
	return int((instant-firstWeek)/field.MillisPerWeek) + 1
}

func (c *basicChronology) weekOfWeekyear(instant int64) int {
	return c.weekOfWeekyearIn(instant, c.year(instant))
}

func (c *basicChronology) weekyear(instant int64) int {
	year := c.year(instant)
	week := c.weekOfWeekyearIn(instant, year)
	switch {
	case week == 1:
		return c.year(instant + field.MillisPerWeek)
	case week > 51:
		return c.year(instant - 2*field.MillisPerWeek)
	default:
		return year
	}
}

// setYear moves instant to year keeping day-of-year and time of day.
// Days after Feb 28 shift by one when leap-ness differs so that the
// month and day stay put.
func (c *basicChronology) setYear(instant int64, year int) int64 {
	thisYear := c.year(instant)
	dayOfYear := c.dayOfYearIn(instant, thisYear)
	millisOfDay := c.millisOfDay(instant)
	if dayOfYear > 31+28 {
		if c.isLeapYear(thisYear) {
			if !c.isLeapYear(year) {
				dayOfYear--
			}
		} else if c.isLeapYear(year) {
			dayOfYear++
		}
	}
	return c.yearMonthDayMillis(year, 1, dayOfYear) + int64(millisOfDay)
}

// yearDifference returns whole years from subtrahend to minuend,
// which must not precede it.
func (c *basicChronology) yearDifference(minuend, subtrahend int64) int64 {
	minuendYear := c.year(minuend)
	subtrahendYear := c.year(subtrahend)
	minuendRemainder := minuend - c.yearMillis(minuendYear)
	subtrahendRemainder := subtrahend - c.yearMillis(subtrahendYear)

	// Align Feb 29 so that leap and common years compare by date.
	if subtrahendRemainder >= feb29Millis {
		if c.isLeapYear(subtrahendYear) {
			if !c.isLeapYear(minuendYear) {
				subtrahendRemainder -= field.MillisPerDay
			}
		} else if minuendRemainder >= feb29Millis && c.isLeapYear(minuendYear) {
			minuendRemainder -= field.MillisPerDay
		}
	}

	difference := int64(minuendYear) - int64(subtrahendYear)
	if minuendRemainder < subtrahendRemainder {
		difference--
	}
	return difference
}

// dateMillis returns midnight of year-month-day, validating each part.
func (c *basicChronology) dateMillis(year, month, day int) (int64, error) {
	if err := field.VerifyValueBounds(field.Year, year, c.minYear(), c.maxYear()); err != nil {
		return 0, err
	}
	if err := field.VerifyValueBounds(field.MonthOfYear, month, 1, 12); err != nil {
		return 0, err
	}
	if err := field.VerifyValueBounds(field.DayOfMonth, day, 1, c.daysInYearMonth(year, month)); err != nil {
		return 0, err
	}
	return c.yearMonthDayMillis(year, month, day), nil
}

// timeMillis returns the millisecond of day for a wall-clock time.
func timeMillis(hour, minute, second, millis int) (int, error) {
	if err := field.VerifyValueBounds(field.HourOfDay, hour, 0, 23); err != nil {
		return 0, err
	}
	if err := field.VerifyValueBounds(field.MinuteOfHour, minute, 0, 59); err != nil {
		return 0, err
	}
	if err := field.VerifyValueBounds(field.SecondOfMinute, second, 0, 59); err != nil {
		return 0, err
	}
	if err := field.VerifyValueBounds(field.MillisOfSecond, millis, 0, 999); err != nil {
		return 0, err
	}
	return hour*field.MillisPerHour + minute*field.MillisPerMinute + second*field.MillisPerSecond + millis, nil
}

func (c *basicChronology) dateTimeMillis(year, month, day, millisOfDay int) (int64, error) {
	if err := field.VerifyValueBounds(field.MillisOfDay, millisOfDay, 0, field.MillisPerDay-1); err != nil {
		return 0, err
	}
	midnight, err := c.dateMillis(year, month, day)
	if err != nil {
		return 0, err
	}
	return field.SafeAdd(midnight, int64(millisOfDay))
}
