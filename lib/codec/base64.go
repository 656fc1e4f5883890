// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/transmute/lib/fault"
)

// Base64Format selects a Base64 alphabet and padding rule.
type Base64Format int

const (
	// Base64Standard uses the standard alphabet with = padding.
	Base64Standard Base64Format = iota

	// Base64URLSafe uses the URL and filename safe alphabet without
	// padding.
	Base64URLSafe
)

// String returns the command-line name of the format.
func (format Base64Format) String() string {
	switch format {
	case Base64Standard:
		return "standard"
	case Base64URLSafe:
		return "urlsafe"
	default:
		return fmt.Sprintf("unknown(%d)", int(format))
	}
}

// ParseBase64Format parses a format from its command-line name.
func ParseBase64Format(name string) (Base64Format, error) {
	switch strings.ToLower(name) {
	case "standard":
		return Base64Standard, nil
	case "urlsafe":
		return Base64URLSafe, nil
	default:
		return 0, fault.Usage("unknown base64 format %q (want standard or urlsafe)", name)
	}
}

// encoding returns the strict stdlib encoding for format. Strict mode
// rejects non-zero trailing bits, so every accepted input has exactly
// one decoding.
func (format Base64Format) encoding() *base64.Encoding {
	if format == Base64URLSafe {
		return base64.RawURLEncoding.Strict()
	}
	return base64.StdEncoding.Strict()
}

// EncodeBase64 encodes data in the given format. Any byte sequence is
// accepted.
func EncodeBase64(data []byte, format Base64Format) string {
	return format.encoding().EncodeToString(data)
}

// DecodeBase64 decodes text in the given format and returns the
// decoded bytes as a string.
//
// Leading and trailing whitespace is trimmed once. Interior line
// breaks are rejected: the stdlib decoder silently skips \r and \n,
// which would accept wrapped input that is not a single Base64 token.
// Symbols outside the alphabet fail with a [fault.KindCodec] fault;
// decoded bytes that are not UTF-8 fail with [fault.KindEncoding].
func DecodeBase64(text string, format Base64Format) (string, error) {
	trimmed := strings.TrimSpace(text)

	if index := strings.IndexAny(trimmed, "\r\n"); index >= 0 {
		return "", fault.Codec("decode %s base64: line break at input byte %d", format, index)
	}

	decoded, err := format.encoding().DecodeString(trimmed)
	if err != nil {
		return "", fault.Codec("decode %s base64: %w", format, err)
	}

	if !utf8.Valid(decoded) {
		return "", fault.Encoding("decoded base64 is not valid UTF-8 text (%d bytes)", len(decoded))
	}
	return string(decoded), nil
}
