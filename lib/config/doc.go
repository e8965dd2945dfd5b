// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the file that describes which chronology a
// program uses.
//
// Configuration is loaded from a single file specified by either the
// BUREAU_CALENDAR_CONFIG environment variable (via [Load]) or a
// --config flag (via [LoadFile]). There are no fallbacks and no
// automatic file search. Files ending in .json or .jsonc are parsed as
// JSON with comments; everything else is YAML:
//
//	zone: Europe/London
//	cutover: 1752-09-14
//	century_iso: true
//	minimum_days_in_first_week: 4
//
// Fields missing from the file keep the values of [Default]. The zone
// field expands ${VAR} and ${VAR:-default} from the environment; no
// other environment variable overrides a file value.
//
// [Config.Chronology] validates the file and resolves it through a
// [chrono.Registry], so equal files yield the same chronology
// instance.
package config
