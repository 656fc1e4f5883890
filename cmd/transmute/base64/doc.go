// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package base64 implements the "transmute base64" command group.
//
// Both subcommands read their whole input (a file, or stdin for "-"),
// run it through [codec.EncodeBase64] or [codec.DecodeBase64], and write
// the result plus a newline to stdout. Decoded output must be valid
// UTF-8; binary payloads are rejected with an encoding fault.
package base64
