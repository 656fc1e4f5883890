// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the transmute binary.
//
// Release builds inject [Version], [GitCommit], [GitDirty], and
// [BuildTime] with -ldflags -X. When a variable was not injected, the
// VCS stamp that the Go toolchain embeds in the binary is used instead,
// so a plain "go build" from a checkout still reports its commit.
// Test binaries carry no stamp and report "unknown".
package version
