// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds transmute's byte-level encodings.
//
// Base64 text encoding comes in two alphabets, selected by
// [Base64Format]:
//
//   - [Base64Standard]: the RFC 4648 §4 alphabet (+ and /) with =
//     padding.
//   - [Base64URLSafe]: the RFC 4648 §5 alphabet (- and _) without
//     padding.
//
// Encoding accepts arbitrary bytes. Decoding is strict: the input is
// trimmed of surrounding whitespace once, must not contain interior
// line breaks, must use only the selected alphabet with the selected
// padding rule, and must decode to valid UTF-8 text. Binary payloads
// cannot be recovered through [DecodeBase64].
//
// CBOR encoding uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same logical value always produces identical bytes.
//
//	data, err := codec.Marshal(records)
//	err = codec.Unmarshal(data, &records)
package codec
