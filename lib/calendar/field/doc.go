// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package field defines the calendar field contracts shared by every
// chronology in lib/calendar/chrono, plus the composable building
// blocks those chronologies assemble their fields from.
//
// A [DateTimeField] reads and writes one calendar component (year,
// day-of-month, hour-of-day, ...) of a millisecond instant. A
// [DurationField] is the unit a DateTimeField counts in. Duration
// fields are either precise (a fixed number of milliseconds, such as
// days) or imprecise (months, years), in which case every operation
// needs an anchor instant.
//
// Generic fields:
//
//   - [PreciseDateTimeField] -- value = (instant / unit) mod range
//   - [DividedDateTimeField] and [RemainderDateTimeField] -- quotient
//     and remainder of another field by a fixed divisor (centuries)
//   - [OffsetDateTimeField] -- another field shifted by a constant
//   - [ZeroIsMaxDateTimeField] -- maps 0 to max (clock hours)
//   - [SkipDateTimeField] -- elides one value (year zero)
//
// Callers never need to know which concrete field they hold: leaf,
// composite, and decorated fields all satisfy the same interface.
//
// Errors are typed: [IllegalFieldValueError], [IllegalInstantError],
// [UnsupportedOperationError], and the sentinel [ErrOverflow].
//
// This package depends on no other Bureau packages.
package field
