// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/calendar/lib/calendar/chrono"
	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// EnvironmentVariable names the configuration file when no --config
// flag is given.
const EnvironmentVariable = "BUREAU_CALENDAR_CONFIG"

// Named cutovers accepted by the cutover field.
const (
	CutoverDefault   = "default"
	CutoverGregorian = "gregorian"
	CutoverJulian    = "julian"
)

// Config describes one chronology.
type Config struct {
	// Zone is "UTC", a fixed offset such as "+05:30", or an IANA zone
	// name. ${VAR} and ${VAR:-default} are expanded.
	// Default: UTC
	Zone string `yaml:"zone" json:"zone"`

	// Cutover is the first instant of the Gregorian calendar: one of
	// "default" (1582-10-15), "gregorian" (Gregorian throughout),
	// "julian" (Julian throughout), a Gregorian date YYYY-MM-DD taken
	// as midnight UTC, an RFC 3339 timestamp, or integer milliseconds
	// since the epoch.
	// Default: default
	Cutover string `yaml:"cutover" json:"cutover"`

	// CenturyISO numbers centuries from year 0 (2000 starts the 20th
	// century). False numbers them from year 1.
	// Default: true
	CenturyISO bool `yaml:"century_iso" json:"century_iso"`

	// MinimumDaysInFirstWeek is how many days of a new year the week
	// containing January 1st needs to count as week 1. ISO 8601 uses 4.
	// Default: 4
	MinimumDaysInFirstWeek int `yaml:"minimum_days_in_first_week" json:"minimum_days_in_first_week"`
}

// Default returns the ISO-style configuration: UTC, the 1582 cutover,
// ISO centuries and ISO weeks. File values are merged over it.
func Default() *Config {
	return &Config{
		Zone:                   "UTC",
		Cutover:                CutoverDefault,
		CenturyISO:             true,
		MinimumDaysInFirstWeek: chrono.DefaultMinimumDaysInFirstWeek,
	}
}

// Load loads configuration from the file named by the
// BUREAU_CALENDAR_CONFIG environment variable.
//
// There is no fallback: if the variable is unset, this fails. Callers
// that want the defaults use Default directly.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a calendar config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file. Files ending in
// .json or .jsonc are JSON with comments and trailing commas allowed;
// anything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the defaults. extension selects the format
// the way LoadFile does.
func Parse(data []byte, extension string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(extension) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing calendar config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing calendar config: %w", err)
		}
	}
	cfg.Zone = expandVars(cfg.Zone)
	return cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zone.Load(c.Zone); err != nil {
		errs = append(errs, fmt.Errorf("zone: %w", err))
	}
	if _, err := ParseCutover(c.Cutover); err != nil {
		errs = append(errs, fmt.Errorf("cutover: %w", err))
	}
	if c.MinimumDaysInFirstWeek < 1 || c.MinimumDaysInFirstWeek > 7 {
		errs = append(errs, fmt.Errorf("minimum_days_in_first_week must be in [1,7], got %d", c.MinimumDaysInFirstWeek))
	}
	return errors.Join(errs...)
}

// Chronology resolves the configuration through registry.
func (c *Config) Chronology(registry *chrono.Registry) (chrono.Chronology, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	z, err := zone.Load(c.Zone)
	if err != nil {
		return nil, err
	}
	cutover, err := ParseCutover(c.Cutover)
	if err != nil {
		return nil, err
	}
	return registry.Get(z, cutover, c.CenturyISO, c.MinimumDaysInFirstWeek)
}

// ParseCutover converts a cutover setting to an instant or one of the
// chrono sentinels.
func ParseCutover(value string) (int64, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", CutoverDefault:
		return chrono.DefaultCutover, nil
	case CutoverGregorian:
		return chrono.GregorianCutover, nil
	case CutoverJulian:
		return chrono.JulianCutover, nil
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return millis, nil
	}
	if timestamp, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return timestamp.UnixMilli(), nil
	}
	if date, err := time.Parse(time.DateOnly, value); err == nil {
		return date.UnixMilli(), nil
	}
	return 0, fmt.Errorf("unrecognized cutover %q: want default, gregorian, julian, YYYY-MM-DD, RFC 3339, or milliseconds", value)
}
