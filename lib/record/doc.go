// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package record maps CSV rows onto ordered name→value records.
//
// The first CSV row is the header. Every later row becomes a [Record]
// that pairs each header name with the field in the same position.
// Pairing is positional and strict: a row with more or fewer fields
// than the header aborts the whole conversion with a
// [fault.KindParse] fault, and no partial [Set] is returned.
//
// Header names are used verbatim. A name that appears more than once
// is kept once per position in the record, but lookups by name and
// the rendered entries resolve to the last occurrence's value, since
// JSON objects and YAML mappings cannot hold duplicate keys.
package record
