// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"reflect"
	"strings"
	"testing"
)

func TestRecord_DuplicateHeaders(t *testing.T) {
	set, err := FromCSV(strings.NewReader("id,tag,name,tag\n1,first,x,second\n"), CSVOptions{})
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	record := set.Records[0]

	if record.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (one per header position)", record.Len())
	}

	value, ok := record.Get("tag")
	if !ok || value != "second" {
		t.Errorf("Get(tag) = (%q, %v), want (\"second\", true)", value, ok)
	}

	want := []Field{
		{Name: "id", Value: "1"},
		{Name: "tag", Value: "second"},
		{Name: "name", Value: "x"},
	}
	if got := record.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
}

func TestRecord_GetMissing(t *testing.T) {
	set, err := FromCSV(strings.NewReader("a\n1\n"), CSVOptions{})
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}
	if _, ok := set.Records[0].Get("b"); ok {
		t.Error("Get(b) reported a value for a missing column")
	}
}

func TestRecord_EntriesKeepsHeaderOrder(t *testing.T) {
	set, err := FromCSV(strings.NewReader("zeta,alpha,mid\n1,2,3\n"), CSVOptions{})
	if err != nil {
		t.Fatalf("FromCSV: %v", err)
	}

	var names []string
	for _, entry := range set.Records[0].Entries() {
		names = append(names, entry.Name)
	}
	if want := []string{"zeta", "alpha", "mid"}; !reflect.DeepEqual(names, want) {
		t.Errorf("entry order = %v, want %v", names, want)
	}
}
