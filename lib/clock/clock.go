// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the current time for testability. Production code
// injects Real(); tests inject Fake() so "now" is a fixed instant.
//
// Code that would call time.Now should accept a Clock parameter (or
// be a method on a struct with a Clock field) instead.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// NowMillis returns the current instant in milliseconds since
// 1970-01-01T00:00:00Z, the unit every chronology works in.
func NowMillis(c Clock) int64 {
	return c.Now().UnixMilli()
}
