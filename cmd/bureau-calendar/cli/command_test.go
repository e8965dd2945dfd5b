// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string
	root := &Command{
		Name: "bureau-calendar",
		Subcommands: []*Command{
			{
				Name: "fields",
				Run: func([]string) error {
					called = "fields"
					return nil
				},
			},
			{
				Name: "describe",
				Run: func([]string) error {
					called = "describe"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"describe"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "describe" {
		t.Errorf("dispatched to %q, want %q", called, "describe")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var zone string
	var received []string
	command := &Command{
		Name: "fields",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("fields", pflag.ContinueOnError)
			flagSet.StringVar(&zone, "zone", "UTC", "zone")
			return flagSet
		},
		Run: func(args []string) error {
			received = args
			return nil
		},
	}

	if err := command.Execute([]string{"--zone", "Europe/Paris", "0"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if zone != "Europe/Paris" {
		t.Errorf("zone = %q, want Europe/Paris", zone)
	}
	if len(received) != 1 || received[0] != "0" {
		t.Errorf("args = %v, want [0]", received)
	}
}

func TestCommand_Execute_NegativePositional(t *testing.T) {
	var received []string
	command := &Command{
		Name: "fields",
		Flags: func() *pflag.FlagSet {
			return pflag.NewFlagSet("fields", pflag.ContinueOnError)
		},
		Run: func(args []string) error {
			received = args
			return nil
		},
	}
	if err := command.Execute([]string{"--", "-12219292800000"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(received) != 1 || received[0] != "-12219292800000" {
		t.Errorf("args = %v, want the negative instant", received)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name:        "bureau-calendar",
		Output:      &bytes.Buffer{},
		Subcommands: []*Command{{Name: "describe", Run: func([]string) error { return nil }}},
	}
	err := root.Execute([]string{"descrbe"})
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "describe"`) {
		t.Errorf("error = %q, want a suggestion", err)
	}

	err = root.Execute([]string{"zzzzzzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion for a distant name", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "fields",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("fields", pflag.ContinueOnError)
			flagSet.String("cutover", "", "")
			return flagSet
		},
		Run: func([]string) error { return nil },
	}
	err := command.Execute([]string{"--cutvoer", "julian"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(err.Error(), "did you mean --cutover?") {
		t.Errorf("error = %q, want a --cutover suggestion", err)
	}
}

func TestCommand_Execute_HelpGoesToOutput(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "bureau-calendar",
		Description: "Calendar fields from the command line.",
		Output:      &help,
		Subcommands: []*Command{
			{
				Name:     "fields",
				Summary:  "Print every field of an instant",
				Examples: []Example{{Description: "Fields now", Command: "bureau-calendar fields"}},
				Run:      func([]string) error { return nil },
			},
		},
	}

	if err := root.Execute([]string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	for _, want := range []string{"Calendar fields from the command line.", "Commands:", "fields", "Print every field of an instant"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("root help missing %q:\n%s", want, help.String())
		}
	}

	help.Reset()
	if err := root.Execute([]string{"fields", "--help"}); err != nil {
		t.Fatalf("Execute(fields --help) error: %v", err)
	}
	for _, want := range []string{"Usage:\n  bureau-calendar fields [flags]", "# Fields now"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("fields help missing %q:\n%s", want, help.String())
		}
	}

	help.Reset()
	if err := root.Execute(nil); err == nil {
		t.Error("expected an error when no subcommand is given")
	}
	if !strings.Contains(help.String(), "Commands:") {
		t.Error("missing subcommand should print help")
	}
}
