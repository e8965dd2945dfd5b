// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chrono

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/calendar/lib/codec"
)

// Config is the identity of a chronology: two chronologies from the
// same registry are the same instance exactly when their Configs are
// equal. It is printed as JSON by the CLI and hashed as CBOR.
type Config struct {
	Zone                   string `json:"zone"`
	Cutover                int64  `json:"cutover"`
	CenturyISO             bool   `json:"century_iso"`
	MinimumDaysInFirstWeek int    `json:"minimum_days_in_first_week"`
}

// ConfigOf returns the configuration c was built from.
func ConfigOf(c Chronology) Config {
	return Config{
		Zone:                   c.Zone().ID(),
		Cutover:                c.CutoverMillis(),
		CenturyISO:             c.IsCenturyISO(),
		MinimumDaysInFirstWeek: c.MinimumDaysInFirstWeek(),
	}
}

// FingerprintSize is the length of a Fingerprint in bytes.
const FingerprintSize = 32

// Fingerprint is a BLAKE3 digest of a chronology's Config. It is
// stable across processes and releases, so it can key persisted data
// or detect two processes disagreeing about their calendar.
type Fingerprint [FingerprintSize]byte

func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// fingerprintKey is the BLAKE3 key of the fingerprint domain: the
// ASCII domain name zero-padded to 32 bytes.
var fingerprintKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'c', 'a', 'l', 'e', 'n', 'd', 'a', 'r', '.',
	'c', 'h', 'r', 'o', 'n', 'o', 'l', 'o', 'g', 'y', 0, 0, 0, 0, 0, 0,
}

// FingerprintOf hashes the deterministic CBOR encoding of c's Config.
func FingerprintOf(c Chronology) (Fingerprint, error) {
	return ConfigOf(c).Fingerprint()
}

// Fingerprint hashes the deterministic CBOR encoding of the Config.
func (cfg Config) Fingerprint() (Fingerprint, error) {
	encoded, err := codec.Marshal(cfg)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("encoding chronology config: %w", err)
	}
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("chrono: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(encoded)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint, nil
}
