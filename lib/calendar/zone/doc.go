// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package zone supplies the time zone offsets the calendar engine
// applies around its zone-agnostic chronologies.
//
// The engine needs only two questions answered: the offset in effect
// at a UTC instant ([Zone.Offset]) and the offset to subtract from a
// local wall-clock instant to reach UTC ([Zone.OffsetFromLocal]). Zone
// rules themselves come from Go's time package via [ForLocation];
// [Fixed] and [UTC] cover constant offsets.
package zone
