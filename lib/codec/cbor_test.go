// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// fieldRecord mirrors the shape of the records the CLI emits.
type fieldRecord struct {
	Instant int64  `json:"instant"`
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Zone    string `json:"zone,omitempty"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := fieldRecord{Instant: -12219292800000, Field: "dayOfMonth", Value: 15, Zone: "UTC"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded fieldRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	// Map iteration order is random; the encoding must not be.
	value := map[string]int{"year": 1582, "monthOfYear": 10, "dayOfMonth": 15, "era": 1}
	first, err := Marshal(value)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	for range 20 {
		again, err := Marshal(value)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestOmitemptyRespected(t *testing.T) {
	withZone, err := Marshal(fieldRecord{Field: "year", Value: 1, Zone: "+05:30"})
	if err != nil {
		t.Fatal(err)
	}
	withoutZone, err := Marshal(fieldRecord{Field: "year", Value: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(withoutZone) >= len(withZone) {
		t.Errorf("omitempty not effective: without=%d bytes, with=%d bytes", len(withoutZone), len(withZone))
	}
}

func TestSequenceDiagnosis(t *testing.T) {
	records := []fieldRecord{
		{Instant: 0, Field: "year", Value: 1970},
		{Instant: 0, Field: "weekOfWeekyear", Value: 1},
		{Instant: -1, Field: "millisOfSecond", Value: 999, Zone: "UTC"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}
	remaining := buffer.Bytes()
	for i := range records {
		var notation string
		var err error
		notation, remaining, err = DiagnoseFirst(remaining)
		if err != nil {
			t.Fatalf("DiagnoseFirst %d: %v", i, err)
		}
		if !strings.Contains(notation, `"`+records[i].Field+`"`) {
			t.Errorf("notation %q does not name %s", notation, records[i].Field)
		}
	}
	if len(remaining) != 0 {
		t.Errorf("%d bytes left after the sequence", len(remaining))
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record fieldRecord
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := fieldRecord{Instant: 1_700_000_000_000, Field: "weekyear", Value: 2023, Zone: "Europe/Paris"}
	b.ReportAllocs()
	for b.Loop() {
		Marshal(record)
	}
}
