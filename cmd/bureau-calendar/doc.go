// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-calendar converts between millisecond instants and Julian or
// Gregorian calendar fields from the command line.
//
// Usage:
//
//	bureau-calendar fields [flags] [instant]
//	bureau-calendar instant [flags] <year> <month> <day> [<hour> <minute> <second> <millis>]
//	bureau-calendar check [flags] <year> <month> <day>
//	bureau-calendar describe [flags]
//	bureau-calendar inspect [file]
//	bureau-calendar version [--full]
//
// The chronology comes from the file named by --config or
// BUREAU_CALENDAR_CONFIG, overridden by --zone, --cutover, --century
// and --min-days. Results print as a table, JSON, or deterministic
// CBOR (--format). Set BUREAU_DEBUG to log chronology builds.
package main
