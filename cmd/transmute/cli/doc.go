// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for transmute.
//
// The central type is [Command], a named subcommand with optional
// nested [Command.Subcommands], a params struct whose tagged fields
// become pflag flags (see [BindFlags]), and a Run function. Commands
// are assembled into a tree in cmd/transmute/commands and dispatched
// via [Command.Execute], which handles flag parsing, subcommand
// routing, and structured help output with examples.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Framework errors (unknown commands, bad flags) are
// [fault.KindUsage] faults, like the argument errors commands report
// themselves.
package cli
