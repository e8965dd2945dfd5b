// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/calendar/chrono"
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

type describeResult struct {
	Chronology  string        `json:"chronology"`
	Config      chrono.Config `json:"config"`
	Fingerprint string        `json:"fingerprint"`

	// FixedOffset is true when the zone never changes its offset, so
	// every local date and time exists exactly once.
	FixedOffset bool `json:"fixed_offset"`

	// CutoverUTC and GapDays are set only for chronologies that switch
	// calendars.
	CutoverUTC string `json:"cutover_utc,omitempty"`
	GapDays    int64  `json:"gap_days,omitempty"`
}

func describeCommand(env *Environment) *cli.Command {
	var (
		chronology chronologyFlags
		format     cli.Format
	)
	return &cli.Command{
		Name:    "describe",
		Summary: "Show the selected chronology and its fingerprint",
		Description: `Show the configuration the selected chronology was built from, its
fingerprint, and for a Julian-Gregorian chronology the cutover instant
and the number of days the switch skipped.

The fingerprint is a BLAKE3 hash of the configuration. Two processes
print the same fingerprint exactly when they compute the same fields.`,
		Examples: []cli.Example{
			{Description: "The default chronology", Command: "bureau-calendar describe"},
			{Description: "Great Britain switched in 1752", Command: "bureau-calendar describe --zone Europe/London --cutover 1752-09-14"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("describe", pflag.ContinueOnError)
			chronology.register(flagSet)
			formatFlag(flagSet, &format)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs("describe", args)
			}
			c, err := chronology.resolve(env)
			if err != nil {
				return err
			}
			result, err := describeChronology(c)
			if err != nil {
				return err
			}
			return cli.Emit(env.Stdout, format, result, func() *cli.Table {
				zoneLabel := result.Config.Zone
				if !result.FixedOffset {
					zoneLabel += " (transitions)"
				}
				century := "iso"
				if !result.Config.CenturyISO {
					century = "traditional"
				}
				table := &cli.Table{Rows: [][]string{
					{"chronology", result.Chronology},
					{"zone", zoneLabel},
					{"cutover", cutoverLabel(result.Config.Cutover)},
					{"century", century},
					{"min days", strconv.Itoa(result.Config.MinimumDaysInFirstWeek)},
				}}
				if result.CutoverUTC != "" {
					table.Rows = append(table.Rows,
						[]string{"cutover utc", result.CutoverUTC},
						[]string{"gap days", strconv.FormatInt(result.GapDays, 10)},
					)
				}
				table.Rows = append(table.Rows, []string{"fingerprint", result.Fingerprint})
				return table
			})
		},
	}
}

func describeChronology(c chrono.Chronology) (describeResult, error) {
	fingerprint, err := chrono.FingerprintOf(c)
	if err != nil {
		return describeResult{}, err
	}
	result := describeResult{
		Chronology:  c.String(),
		Config:      chrono.ConfigOf(c),
		Fingerprint: fingerprint.String(),
		FixedOffset: c.Zone().IsFixed(),
	}
	if gap, ok := chrono.CutoverGap(c); ok {
		result.CutoverUTC = time.UnixMilli(c.CutoverMillis()).UTC().Format(time.RFC3339)
		result.GapDays = gap / field.MillisPerDay
	}
	return result, nil
}
