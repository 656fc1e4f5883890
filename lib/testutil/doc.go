// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for transmute packages.
//
// The helpers fail the calling test through [testing.TB] instead of
// returning errors, so fixtures stay one line each at the call site.
package testutil
