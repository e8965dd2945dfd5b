// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/calendar/cmd/bureau-calendar/cli"
	"github.com/bureau-foundation/calendar/lib/calendar/chrono"
	"github.com/bureau-foundation/calendar/lib/clock"
	"github.com/bureau-foundation/calendar/lib/config"
)

// Environment is everything a command touches outside its arguments.
// Tests substitute buffers, a fake clock, and a map-backed Getenv.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
	Getenv func(string) string

	logger   *slog.Logger
	registry *chrono.Registry
}

// ProcessEnvironment returns the environment of the running process.
func ProcessEnvironment() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.Real(),
		Getenv: os.Getenv,
	}
}

// Logger returns the command logger, created on first use.
func (e *Environment) Logger() *slog.Logger {
	if e.logger == nil {
		e.logger = cli.NewCommandLogger(e.Stderr, e.Getenv(cli.DebugEnvironmentVariable) != "")
	}
	return e.logger
}

// Registry returns the chronology registry, created on first use and
// logging through Logger.
func (e *Environment) Registry() *chrono.Registry {
	if e.registry == nil {
		e.registry = chrono.NewRegistry(e.Logger())
	}
	return e.registry
}

// chronologyFlags select the chronology a command works in. A config
// file supplies the base; flags given explicitly override it.
type chronologyFlags struct {
	configPath string
	zone       string
	cutover    string
	century    string
	minDays    int
}

func (f *chronologyFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&f.configPath, "config", "", "calendar config file (default $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&f.zone, "zone", "", "zone: UTC, an offset like +05:30, or an IANA name")
	flagSet.StringVar(&f.cutover, "cutover", "", "Gregorian cutover: default, gregorian, julian, YYYY-MM-DD, RFC 3339, or milliseconds")
	flagSet.StringVar(&f.century, "century", "", "century numbering: iso or traditional")
	flagSet.IntVar(&f.minDays, "min-days", 0, "minimum days in the first week of a weekyear (1-7)")
}

func (f *chronologyFlags) resolve(env *Environment) (chrono.Chronology, error) {
	cfg := config.Default()
	path := f.configPath
	if path == "" {
		path = env.Getenv(config.EnvironmentVariable)
	}
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.zone != "" {
		cfg.Zone = f.zone
	}
	if f.cutover != "" {
		cfg.Cutover = f.cutover
	}
	switch f.century {
	case "":
	case "iso":
		cfg.CenturyISO = true
	case "traditional":
		cfg.CenturyISO = false
	default:
		return nil, fmt.Errorf("--century must be iso or traditional, got %q", f.century)
	}
	if f.minDays != 0 {
		cfg.MinimumDaysInFirstWeek = f.minDays
	}
	return cfg.Chronology(env.Registry())
}

func formatFlag(flagSet *pflag.FlagSet, format *cli.Format) {
	*format = cli.FormatTable
	flagSet.Var(format, "format", "output format: table, json, or cbor")
}

// parseInstant accepts integer milliseconds since the epoch or an
// RFC 3339 timestamp.
func parseInstant(value string) (int64, error) {
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return millis, nil
	}
	timestamp, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return 0, fmt.Errorf("instant %q is neither milliseconds nor RFC 3339", value)
	}
	return timestamp.UnixMilli(), nil
}

func parseInts(names []string, args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%s %q is not an integer", names[i], arg)
		}
		values[i] = value
	}
	return values, nil
}

func cutoverLabel(cutover int64) string {
	switch cutover {
	case chrono.GregorianCutover:
		return config.CutoverGregorian
	case chrono.JulianCutover:
		return config.CutoverJulian
	}
	return strconv.FormatInt(cutover, 10)
}
