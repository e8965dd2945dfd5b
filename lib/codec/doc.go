// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the calendar's standard CBOR encoding
// configuration.
//
// JSON is used where people read the output (CLI tables and --format
// json, configuration files). CBOR is used where bytes must be stable:
// chronology fingerprints hash the CBOR encoding of a chronology's
// configuration, and the CLI's --format cbor emits field records as a
// CBOR sequence for other programs to consume.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2), so the
// same logical data always produces identical bytes:
//
//	data, err := codec.Marshal(config)
//	err = codec.Unmarshal(data, &config)
//
// For sequences, encode with [NewEncoder] and walk the result item by
// item with [DiagnoseFirst].
//
// # Struct Tag Rules
//
// Types carry `json` tags only. fxamacker/cbor v2 reads `json` tags
// when `cbor` tags are absent, so a single tag names a field in both
// formats. Never use both tags on the same field.
package codec
