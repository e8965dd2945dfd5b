// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// deterministic is Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, shortest integers, definite lengths. Fingerprints
// hash its output, so its options never change.
var deterministic = mustEncMode(cbor.CoreDetEncOptions())

func mustEncMode(options cbor.EncOptions) cbor.EncMode {
	mode, err := options.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	return mode
}

// Marshal encodes v deterministically.
func Marshal(v any) ([]byte, error) {
	return deterministic.Marshal(v)
}

// Unmarshal decodes a single CBOR item into v.
func Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}

// NewEncoder returns an encoder that writes a CBOR sequence (RFC 8742)
// to w, one item per Encode call.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return deterministic.NewEncoder(w)
}

// DiagnoseFirst returns the diagnostic notation (RFC 8949 §8) of the
// first item in data and the bytes after it.
func DiagnoseFirst(data []byte) (notation string, rest []byte, err error) {
	return cbor.DiagnoseFirst(data)
}
