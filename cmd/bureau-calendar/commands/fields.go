// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/calendar/chrono"
	"github.com/bureau-foundation/calendar/lib/clock"
)

type fieldsResult struct {
	Chronology string     `json:"chronology"`
	Instant    int64      `json:"instant"`
	Fields     []fieldRow `json:"fields"`
}

// fieldRow is one field's value with the bounds that apply at the
// instant, which differ from the absolute bounds for fields such as
// dayOfMonth.
type fieldRow struct {
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Minimum int    `json:"minimum"`
	Maximum int    `json:"maximum"`
}

func fieldsCommand(env *Environment) *cli.Command {
	var (
		chronology chronologyFlags
		format     cli.Format
	)
	return &cli.Command{
		Name:    "fields",
		Summary: "Print every calendar field of an instant",
		Description: `Print every field of an instant, largest first, with the minimum and
maximum the field can take at that instant.

The instant is milliseconds since 1970-01-01T00:00:00Z or an RFC 3339
timestamp, and defaults to now. Put negative millisecond values after
"--" so they are not read as flags.`,
		Usage: "bureau-calendar fields [flags] [instant]",
		Examples: []cli.Example{
			{Description: "Fields of the current instant", Command: "bureau-calendar fields"},
			{Description: "The last Julian day of 1582 in London", Command: "bureau-calendar fields --zone Europe/London -- -12219379200000"},
			{Description: "Machine-readable output", Command: "bureau-calendar fields --format json 2024-02-29T12:00:00Z"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("fields", pflag.ContinueOnError)
			chronology.register(flagSet)
			formatFlag(flagSet, &format)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("fields takes at most one instant, got %d arguments", len(args))
			}
			instant := clock.NowMillis(env.Clock)
			if len(args) == 1 {
				parsed, err := parseInstant(args[0])
				if err != nil {
					return err
				}
				instant = parsed
			}

			c, err := chronology.resolve(env)
			if err != nil {
				return err
			}
			result := describeFields(c, instant)
			return cli.Emit(env.Stdout, format, result, func() *cli.Table {
				table := &cli.Table{Header: []string{"field", "value", "range"}}
				for _, row := range result.Fields {
					table.Rows = append(table.Rows, []string{
						row.Field,
						strconv.Itoa(row.Value),
						fmt.Sprintf("[%d,%d]", row.Minimum, row.Maximum),
					})
				}
				return table
			})
		},
	}
}

func describeFields(c chrono.Chronology, instant int64) fieldsResult {
	fields := c.Fields()
	result := fieldsResult{Chronology: c.String(), Instant: instant}
	for _, value := range chrono.Values(c, instant) {
		f := fields.Field(value.Type)
		result.Fields = append(result.Fields, fieldRow{
			Field:   value.Type.String(),
			Value:   value.Value,
			Minimum: f.MinimumValueAt(instant),
			Maximum: f.MaximumValueAt(instant),
		})
	}
	return result
}
