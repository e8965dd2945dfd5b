// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/calendar/field"
)

func checkCommand(env *Environment) *cli.Command {
	var chronology chronologyFlags
	return &cli.Command{
		Name:    "check",
		Summary: "Exit non-zero if a date does not exist",
		Description: `Report whether a date exists in the selected chronology. Exits 0 if it
does, and 1 if a field is out of range or the date falls in the cutover
gap. Configuration and argument problems exit 1 with an error.`,
		Usage: "bureau-calendar check [flags] <year> <month> <day>",
		Examples: []cli.Example{
			{Description: "A day skipped by the 1582 reform", Command: "bureau-calendar check 1582 10 10"},
			{Description: "A Julian leap day the Gregorian calendar lacks", Command: "bureau-calendar check --cutover julian 1900 2 29"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			chronology.register(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return fmt.Errorf("check takes <year> <month> <day>, got %d arguments", len(args))
			}
			values, err := parseInts(dateTimeArgNames, args)
			if err != nil {
				return err
			}
			c, err := chronology.resolve(env)
			if err != nil {
				return err
			}

			date := fmt.Sprintf("%04d-%02d-%02d", values[0], values[1], values[2])
			instant, err := c.DateTimeMillis(values[0], values[1], values[2], 0, 0, 0, 0)
			var illegalField *field.IllegalFieldValueError
			var illegalInstant *field.IllegalInstantError
			switch {
			case err == nil:
				fmt.Fprintf(env.Stdout, "%s exists in %s: %d\n", date, c, instant)
				return nil
			case errors.As(err, &illegalInstant):
				fmt.Fprintf(env.Stdout, "%s is in the cutover gap of %s\n", date, c)
			case errors.As(err, &illegalField):
				fmt.Fprintf(env.Stdout, "%s does not exist in %s: %v\n", date, c, err)
			default:
				return err
			}
			return &cli.ExitError{Code: 1}
		},
	}
}
