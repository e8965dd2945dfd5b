// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/version"
)

func versionCommand(env *Environment) *cli.Command {
	var full bool
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&full, "full", false, "include Go version, platform, and default chronology")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return errUnexpectedArgs("version", args)
			}
			if !full {
				fmt.Fprintf(env.Stdout, "bureau-calendar %s\n", version.Info())
				return nil
			}
			c, err := env.Registry().GetUTC()
			if err != nil {
				return err
			}
			fmt.Fprintf(env.Stdout, "bureau-calendar %s\n", version.Full(c.String()))
			return nil
		},
	}
}

func errUnexpectedArgs(command string, args []string) error {
	return fmt.Errorf("%s takes no positional arguments, got %q", command, args[0])
}
