// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := []map[string]string{
		{"name": "Alice", "score": "10"},
		{"name": "Bob", "score": "20"},
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded []map[string]string
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(original))
	}
	for index := range original {
		for key, value := range original[index] {
			if decoded[index][key] != value {
				t.Errorf("record %d key %q = %q, want %q", index, key, decoded[index][key], value)
			}
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := map[string]string{"zeta": "1", "alpha": "2", "mid": "3"}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 20 {
		again, err := Marshal(record)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Marshal produced different bytes for the same value")
		}
	}
}

func TestMarshalSortsKeys(t *testing.T) {
	data, err := Marshal(map[string]string{"bb": "x", "a": "y"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	diagnostic, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	// Core Deterministic Encoding orders the shorter encoded key first.
	if strings.Index(diagnostic, `"a"`) > strings.Index(diagnostic, `"bb"`) {
		t.Errorf("keys not in deterministic order: %s", diagnostic)
	}
}

func TestUnmarshalIntoAny(t *testing.T) {
	data, err := Marshal([]map[string]string{{"k": "v"}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	items, ok := decoded.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("decoded = %#v, want one-element []any", decoded)
	}
	if _, ok := items[0].(map[string]any); !ok {
		t.Errorf("item is %T, want map[string]any", items[0])
	}
}
