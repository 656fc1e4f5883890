// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by the stage of the pipeline that
// detected it.
type Kind string

const (
	// KindIO covers opening, reading, and writing files and standard
	// streams: missing files, permission errors, short writes.
	KindIO Kind = "io"

	// KindParse indicates structurally invalid input, such as a CSV
	// data row whose field count differs from the header row.
	KindParse Kind = "parse"

	// KindCodec indicates text that is not valid in the selected
	// Base64 alphabet.
	KindCodec Kind = "codec"

	// KindEncoding indicates decoded bytes that are not valid UTF-8.
	KindEncoding Kind = "encoding"

	// KindSerialization indicates a failure to render records in the
	// requested output format.
	KindSerialization Kind = "serialization"

	// KindUsage indicates invalid command-line input: an unknown
	// format name, a missing required flag, an unexpected argument.
	KindUsage Kind = "usage"
)

// Error is a failure tagged with the [Kind] of the stage that
// detected it. It wraps the underlying error so that errors.Is and
// errors.As see the full chain.
type Error struct {
	Kind Kind
	Err  error
}

// Error returns the underlying message. The kind is not part of the
// text; callers that need it use [KindOf].
func (e *Error) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// IO creates an I/O fault.
func IO(format string, args ...any) *Error {
	return &Error{Kind: KindIO, Err: fmt.Errorf(format, args...)}
}

// Parse creates a structural parse fault.
func Parse(format string, args ...any) *Error {
	return &Error{Kind: KindParse, Err: fmt.Errorf(format, args...)}
}

// Codec creates a codec fault.
func Codec(format string, args ...any) *Error {
	return &Error{Kind: KindCodec, Err: fmt.Errorf(format, args...)}
}

// Encoding creates a text-encoding fault.
func Encoding(format string, args ...any) *Error {
	return &Error{Kind: KindEncoding, Err: fmt.Errorf(format, args...)}
}

// Serialization creates a serialization fault.
func Serialization(format string, args ...any) *Error {
	return &Error{Kind: KindSerialization, Err: fmt.Errorf(format, args...)}
}

// Usage creates a command-line usage fault.
func Usage(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost [*Error] in err's chain.
// The second result is false when err carries no tag.
func KindOf(err error) (Kind, bool) {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind, true
	}
	return "", false
}

// Is reports whether err carries a tag of the given kind.
func Is(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}
