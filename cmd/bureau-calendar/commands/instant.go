// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
)

type instantResult struct {
	Chronology string `json:"chronology"`
	Instant    int64  `json:"instant"`
	UTC        string `json:"utc"`
}

var dateTimeArgNames = []string{"year", "month", "day", "hour", "minute", "second", "millis"}

func instantCommand(env *Environment) *cli.Command {
	var (
		chronology chronologyFlags
		format     cli.Format
	)
	return &cli.Command{
		Name:    "instant",
		Summary: "Build an instant from calendar fields",
		Description: `Convert a date, or a date and time, in the selected chronology to
milliseconds since the epoch. The utc column shows the same instant in
the proleptic Gregorian calendar, so a Julian date shows its Gregorian
equivalent.

Dates inside the cutover gap and out-of-range fields are errors.`,
		Usage: "bureau-calendar instant [flags] <year> <month> <day> [<hour> <minute> <second> <millis>]",
		Examples: []cli.Example{
			{Description: "The first Gregorian day", Command: "bureau-calendar instant 1582 10 15"},
			{Description: "A Julian date long after the cutover", Command: "bureau-calendar instant --cutover julian 2024 1 1"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("instant", pflag.ContinueOnError)
			chronology.register(flagSet)
			formatFlag(flagSet, &format)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 && len(args) != 7 {
				return fmt.Errorf("instant takes a date (3 values) or a date and time (7 values), got %d", len(args))
			}
			values, err := parseInts(dateTimeArgNames, args)
			if err != nil {
				return err
			}
			values = append(values, make([]int, 7-len(values))...)

			c, err := chronology.resolve(env)
			if err != nil {
				return err
			}
			instant, err := c.DateTimeMillis(values[0], values[1], values[2], values[3], values[4], values[5], values[6])
			if err != nil {
				return err
			}

			result := instantResult{
				Chronology: c.String(),
				Instant:    instant,
				UTC:        time.UnixMilli(instant).UTC().Format(time.RFC3339Nano),
			}
			return cli.Emit(env.Stdout, format, result, func() *cli.Table {
				return &cli.Table{Rows: [][]string{
					{"instant", strconv.FormatInt(result.Instant, 10)},
					{"utc", result.UTC},
				}}
			})
		},
	}
}
