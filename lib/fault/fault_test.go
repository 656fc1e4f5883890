// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Kind
	}{
		{"io", IO("open %s: %w", "data.csv", fs.ErrNotExist), KindIO},
		{"parse", Parse("line %d: bad", 3), KindParse},
		{"codec", Codec("illegal byte"), KindCodec},
		{"encoding", Encoding("not utf-8"), KindEncoding},
		{"serialization", Serialization("encode: %v", "boom"), KindSerialization},
		{"usage", Usage("unknown format %q", "xml"), KindUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.want {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.want)
			}
			kind, ok := KindOf(tt.err)
			if !ok || kind != tt.want {
				t.Errorf("KindOf = (%q, %v), want (%q, true)", kind, ok, tt.want)
			}
		})
	}
}

func TestErrorMessageOmitsKind(t *testing.T) {
	err := Parse("csv line %d: record has %d fields, header has %d", 2, 3, 2)
	want := "csv line 2: record has 3 fields, header has 2"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrapPreservesChain(t *testing.T) {
	err := IO("open %s: %w", "missing.csv", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
}

func TestKindOfWrapped(t *testing.T) {
	inner := Codec("illegal base64 data at input byte 6")
	wrapped := fmt.Errorf("base64 decode: %w", inner)

	if !Is(wrapped, KindCodec) {
		t.Error("Is(wrapped, KindCodec) = false, want true")
	}
	if Is(wrapped, KindIO) {
		t.Error("Is(wrapped, KindIO) = true, want false")
	}
}

func TestKindOfUntagged(t *testing.T) {
	if kind, ok := KindOf(errors.New("plain")); ok {
		t.Errorf("KindOf(untagged) = (%q, true), want (\"\", false)", kind)
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf(nil) reported a kind")
	}
}
