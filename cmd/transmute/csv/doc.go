// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package csv implements "transmute csv", which converts a CSV file
// into a JSON, YAML, or CBOR array of objects keyed by the header row.
//
// The conversion is all-or-nothing. The input is read and validated in
// full before anything is written, and the output file is replaced
// atomically, so a malformed row leaves any existing output untouched.
package csv
