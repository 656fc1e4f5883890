// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Transmute converts structured data and text encodings from the
// command line.
//
// Subcommands:
//
//   - csv: convert a CSV file to JSON, YAML, or CBOR, optionally
//     compressed with zstd or lz4
//   - base64 encode, base64 decode: Base64 with the standard or
//     URL-safe alphabet
//   - version: print build information
//
// The optional configuration file named by TRANSMUTE_CONFIG sets the
// log level and flag defaults. Any failure prints "error: <message>" to
// stderr and exits with status 1.
package main
