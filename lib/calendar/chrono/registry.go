// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"log/slog"
	"sync"

	"github.com/bureau-foundation/calendar/lib/calendar/zone"
)

// Registry builds chronologies on first request and returns the same
// instance for every later request with the same configuration, so
// callers may compare chronologies by identity.
//
// Registry is safe for concurrent use. Built chronologies are never
// evicted; the configuration space in practice is a handful of zones.
type Registry struct {
	logger *slog.Logger

	mu        sync.Mutex
	byZone    map[string][]registryEntry
	julian    [8]*leafChronology
	gregorian [8]*leafChronology
}

type registryEntry struct {
	cutover    int64
	centuryISO bool
	minDays    int
	chronology Chronology
}

// NewRegistry returns an empty registry. Builds are logged at debug
// level; a nil logger discards them.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{logger: logger, byZone: make(map[string][]registryEntry)}
}

// Get returns the chronology for a configuration, building it if this
// is the first request. z nil means UTC. cutover is an instant or one
// of GregorianCutover and JulianCutover.
func (r *Registry) Get(z zone.Zone, cutover int64, centuryISO bool, minDaysInFirstWeek int) (Chronology, error) {
	if err := validateMinDays(minDaysInFirstWeek); err != nil {
		return nil, err
	}
	if z == nil {
		z = zone.UTC
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.byZone[z.ID()] {
		if entry.cutover == cutover && entry.centuryISO == centuryISO && entry.minDays == minDaysInFirstWeek {
			return entry.chronology, nil
		}
	}

	chronology, err := r.build(z, cutover, centuryISO, minDaysInFirstWeek)
	if err != nil {
		return nil, err
	}
	r.byZone[z.ID()] = append(r.byZone[z.ID()], registryEntry{
		cutover:    cutover,
		centuryISO: centuryISO,
		minDays:    minDaysInFirstWeek,
		chronology: chronology,
	})
	r.logger.Debug("chronology built",
		"zone", z.ID(),
		"cutover", cutoverString(cutover),
		"century_iso", centuryISO,
		"min_days_in_first_week", minDaysInFirstWeek,
		"chronology", chronology.String(),
	)
	return chronology, nil
}

// GetDefault returns the chronology in z with the default cutover,
// ISO centuries and ISO weeks.
func (r *Registry) GetDefault(z zone.Zone) (Chronology, error) {
	return r.Get(z, DefaultCutover, true, DefaultMinimumDaysInFirstWeek)
}

// GetUTC returns the default chronology in UTC.
func (r *Registry) GetUTC() (Chronology, error) {
	return r.GetDefault(zone.UTC)
}

// build assembles a chronology. Called with r.mu held.
func (r *Registry) build(z zone.Zone, cutover int64, centuryISO bool, minDays int) (Chronology, error) {
	var chronology Chronology
	switch cutover {
	case JulianCutover:
		chronology = r.julianLeaf(minDays)
	case GregorianCutover:
		chronology = r.gregorianLeaf(minDays)
	default:
		composite, err := NewCutover(r.julianLeaf(minDays), r.gregorianLeaf(minDays), cutover)
		if err != nil {
			return nil, err
		}
		chronology = composite
	}

	if !centuryISO {
		decorated, err := WithTraditionalCentury(chronology)
		if err != nil {
			return nil, err
		}
		chronology = decorated
	}
	return WithZone(chronology, z)
}

// Leaves are shared by every composite with the same week rule, so
// their year caches are too.
func (r *Registry) julianLeaf(minDays int) *leafChronology {
	if r.julian[minDays] == nil {
		r.julian[minDays] = newJulian(minDays)
	}
	return r.julian[minDays]
}

func (r *Registry) gregorianLeaf(minDays int) *leafChronology {
	if r.gregorian[minDays] == nil {
		r.gregorian[minDays] = newGregorian(minDays)
	}
	return r.gregorian[minDays]
}

var defaultRegistry = NewRegistry(nil)

// Default returns the process-wide registry used by Instance.
func Default() *Registry { return defaultRegistry }

// Instance returns a chronology from the process-wide registry.
func Instance(z zone.Zone, cutover int64, centuryISO bool, minDaysInFirstWeek int) (Chronology, error) {
	return defaultRegistry.Get(z, cutover, centuryISO, minDaysInFirstWeek)
}

// InstanceUTC returns the default UTC chronology from the process-wide
// registry.
func InstanceUTC() (Chronology, error) {
	return defaultRegistry.GetUTC()
}
