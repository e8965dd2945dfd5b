// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the bureau-calendar command tree.
package commands

import "github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"

// Root builds the complete command tree bound to env.
func Root(env *Environment) *cli.Command {
	return &cli.Command{
		Name: "bureau-calendar",
		Description: `bureau-calendar: Julian and Gregorian calendar fields.

Converts between millisecond instants and calendar fields under a
proleptic Julian calendar, a proleptic Gregorian calendar, or the two
joined at a cutover (by default 1582-10-15). The chronology is chosen by
a config file ($BUREAU_CALENDAR_CONFIG or --config) and per-command
flags.`,
		Output: env.Stderr,
		Subcommands: []*cli.Command{
			fieldsCommand(env),
			instantCommand(env),
			checkCommand(env),
			describeCommand(env),
			inspectCommand(env),
			versionCommand(env),
		},
	}
}
