// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the calendar
// packages.
//
// [RequireReceive] wraps the select-with-timeout pattern for collecting
// results from worker goroutines, so a deadlock fails the test rather
// than hanging it. It is the only place tests wait on the wall clock.
//
// [WriteFile] writes a configuration fixture into a per-test directory
// that is removed when the test completes.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
