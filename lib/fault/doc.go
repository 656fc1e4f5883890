// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault provides the tagged error type shared by every
// transmute component.
//
// Each component converts the errors of the libraries it calls into a
// [*Error] at its own boundary, tagging it with a [Kind]: an input file
// that cannot be opened becomes an [KindIO] fault, a CSV row with the
// wrong number of fields becomes a [KindParse] fault, and so on. Errors
// that are already tagged pass through unchanged, so the kind seen at
// the process boundary is the kind assigned where the failure was first
// detected.
//
// Every kind is terminal. The CLI prints the message and exits non-zero
// regardless of kind; the kind exists so that callers and tests can
// assert on the failure class without parsing message text.
package fault
