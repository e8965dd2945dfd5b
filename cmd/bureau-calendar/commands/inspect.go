// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/codec"
)

func inspectCommand(env *Environment) *cli.Command {
	return &cli.Command{
		Name:    "inspect",
		Summary: "Show CBOR output in diagnostic notation",
		Description: `Read a CBOR sequence, such as the concatenated output of several
"--format cbor" runs, and print each item in RFC 8949 diagnostic
notation, one per line. Reads the named file, or stdin.`,
		Usage: "bureau-calendar inspect [file]",
		Examples: []cli.Example{
			{Description: "Inspect a describe result", Command: "bureau-calendar describe --format cbor | bureau-calendar inspect"},
		},
		Run: func(args []string) error {
			var input io.Reader = env.Stdin
			switch len(args) {
			case 0:
			case 1:
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				input = file
			default:
				return errUnexpectedArgs("inspect", args[1:])
			}
			return diagnoseSequence(input, env.Stdout)
		},
	}
}

func diagnoseSequence(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR data")
	}
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := codec.DiagnoseFirst(remaining)
		if err != nil {
			return fmt.Errorf("diagnose CBOR at byte %d: %w", len(data)-len(remaining), err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}
