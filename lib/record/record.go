// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

// Field is one (column name, cell value) pair.
type Field struct {
	Name  string
	Value string
}

// Record is one CSV data row keyed by the header names, in header
// order. Len always equals the header's field count.
type Record struct {
	fields []Field
}

// Len returns the number of fields, which equals the header width.
func (r Record) Len() int { return len(r.fields) }

// Fields returns the positional (name, value) pairs, duplicates
// included. The returned slice must not be modified.
func (r Record) Fields() []Field { return r.fields }

// Get returns the value for name. When the header repeats name, the
// value of the last occurrence is returned.
func (r Record) Get(name string) (string, bool) {
	for index := len(r.fields) - 1; index >= 0; index-- {
		if r.fields[index].Name == name {
			return r.fields[index].Value, true
		}
	}
	return "", false
}

// Entries returns the fields with duplicate names collapsed: each
// name appears once, at the position of its first occurrence, with
// the value of its last occurrence. This is the shape rendered as a
// JSON object or YAML mapping.
func (r Record) Entries() []Field {
	entries := make([]Field, 0, len(r.fields))
	position := make(map[string]int, len(r.fields))
	for _, field := range r.fields {
		if index, seen := position[field.Name]; seen {
			entries[index].Value = field.Value
			continue
		}
		position[field.Name] = len(entries)
		entries = append(entries, field)
	}
	return entries
}

// Set is the header plus every data row of one CSV input, in file
// order.
type Set struct {
	Header  []string
	Records []Record
}

// Len returns the number of records.
func (s *Set) Len() int { return len(s.Records) }
