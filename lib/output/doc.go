// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package output delivers rendered text to its destination.
//
// [WriteFile] replaces a named file atomically: the data is written to
// a temporary file in the destination directory, synced, and renamed
// over the target. A failure at any step removes the temporary file
// and leaves the destination as it was, so a reader never observes a
// half-written conversion. The data may be compressed on the way out
// (see [Compression]). The returned [Result] carries the size and
// BLAKE3 digest of the bytes that reached disk.
//
// [WriteLine] writes one line of text to a stream, for commands whose
// destination is standard output.
//
// All failures are [fault.KindIO] faults.
package output
