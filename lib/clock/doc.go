// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Production code accepts a Clock instead of calling time.Now. In
// production, Real() provides the standard library behavior. In tests,
// Fake() provides a clock that stays at a fixed instant until Advance
// or Set is called, so output that depends on "now" is reproducible:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	app := &application{clock: c}
//	c.Advance(24 * time.Hour)
package clock
