// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package zone

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Zone maps between UTC instants and local wall-clock instants, both
// in milliseconds since 1970-01-01T00:00:00.
type Zone interface {
	// ID is the zone's stable identifier ("UTC", "Europe/Paris",
	// "+05:30"). Chronologies are cached by ID.
	ID() string

	// Offset returns the millisecond offset to add to a UTC instant
	// to get local time.
	Offset(instant int64) int

	// OffsetFromLocal returns the offset to subtract from a local
	// instant to get UTC. Inside an overlap the earlier offset wins;
	// inside a gap the offset before the transition is returned.
	OffsetFromLocal(local int64) int

	// IsFixed reports whether the offset never changes.
	IsFixed() bool
}

type fixedZone struct {
	id     string
	offset int
}

func (z fixedZone) ID() string                { return z.id }
func (z fixedZone) Offset(int64) int          { return z.offset }
func (z fixedZone) OffsetFromLocal(int64) int { return z.offset }
func (z fixedZone) IsFixed() bool             { return true }
func (z fixedZone) String() string            { return z.id }

// UTC is the zero-offset zone every chronology is assembled in.
var UTC Zone = fixedZone{id: "UTC"}

// Fixed returns a zone with a constant offset. A zero offset yields UTC.
func Fixed(offsetMillis int) Zone {
	if offsetMillis == 0 {
		return UTC
	}
	return fixedZone{id: formatOffset(offsetMillis), offset: offsetMillis}
}

// IsUTC reports whether z is nil or the UTC zone.
func IsUTC(z Zone) bool {
	return z == nil || z.ID() == UTC.ID()
}

func formatOffset(offsetMillis int) string {
	sign := '+'
	if offsetMillis < 0 {
		sign = '-'
		offsetMillis = -offsetMillis
	}
	hours := offsetMillis / 3_600_000
	minutes := offsetMillis / 60_000 % 60
	seconds := offsetMillis / 1000 % 60
	millis := offsetMillis % 1000
	id := fmt.Sprintf("%c%02d:%02d", sign, hours, minutes)
	if seconds != 0 || millis != 0 {
		id += fmt.Sprintf(":%02d", seconds)
		if millis != 0 {
			id += fmt.Sprintf(".%03d", millis)
		}
	}
	return id
}

// locationZone answers offsets from a time.Location's rules.
type locationZone struct {
	location *time.Location
}

// ForLocation adapts a time.Location. time.UTC maps to UTC.
func ForLocation(location *time.Location) Zone {
	if location == nil || location == time.UTC || location.String() == "UTC" {
		return UTC
	}
	return locationZone{location: location}
}

func (z locationZone) ID() string     { return z.location.String() }
func (z locationZone) String() string { return z.location.String() }
func (z locationZone) IsFixed() bool  { return false }

func (z locationZone) Offset(instant int64) int {
	_, seconds := time.UnixMilli(instant).In(z.location).Zone()
	return seconds * 1000
}

func (z locationZone) OffsetFromLocal(local int64) int {
	localOffset := z.Offset(local)
	adjustedOffset := z.Offset(local - int64(localOffset))
	if localOffset == adjustedOffset {
		return localOffset
	}
	// Near a transition the two guesses disagree. Prefer whichever
	// offset maps back onto the same local time; the earlier
	// (larger) offset wins an overlap.
	candidates := []int{max(localOffset, adjustedOffset), min(localOffset, adjustedOffset)}
	for _, candidate := range candidates {
		if z.Offset(local-int64(candidate)) == candidate {
			return candidate
		}
	}
	return max(localOffset, adjustedOffset)
}

// Load resolves a zone identifier: "UTC" or "Z", a fixed offset such
// as "+05:30" or "-08:00", or an IANA name known to the time package.
func Load(id string) (Zone, error) {
	id = strings.TrimSpace(id)
	switch {
	case id == "" || strings.EqualFold(id, "UTC") || id == "Z":
		return UTC, nil
	case id[0] == '+' || id[0] == '-':
		offset, err := parseOffset(id)
		if err != nil {
			return nil, err
		}
		return Fixed(offset), nil
	}
	location, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("zone: loading %q: %w", id, err)
	}
	return ForLocation(location), nil
}

func parseOffset(id string) (int, error) {
	sign := 1
	if id[0] == '-' {
		sign = -1
	}
	parts := strings.Split(id[1:], ":")
	if len(parts) < 1 || len(parts) > 2 {
		return 0, fmt.Errorf("zone: invalid offset %q", id)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("zone: invalid offset hours in %q", id)
	}
	minutes := 0
	if len(parts) == 2 {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil || minutes < 0 || minutes > 59 {
			return 0, fmt.Errorf("zone: invalid offset minutes in %q", id)
		}
	}
	return sign * (hours*3_600_000 + minutes*60_000), nil
}
