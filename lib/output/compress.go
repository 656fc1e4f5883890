// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/transmute/lib/fault"
)

// Compression selects how file output is compressed before writing.
type Compression int

const (
	// CompressionNone writes the data unchanged.
	CompressionNone Compression = iota

	// CompressionZstd writes a single zstd frame at the default level.
	CompressionZstd

	// CompressionLZ4 writes an LZ4 frame (not a raw block), so the
	// output can be read back with the lz4 command-line tool.
	CompressionLZ4
)

// String returns the command-line name of the compression.
func (compression Compression) String() string {
	switch compression {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(compression))
	}
}

// ParseCompression parses a compression from its command-line name.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fault.Usage("unknown compression %q (want none, zstd, or lz4)", name)
	}
}

// zstdEncoder is reused across calls. EncodeAll is safe for
// concurrent use.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("output: zstd encoder initialization failed: " + err.Error())
	}
}

// compress returns data encoded with compression. For
// CompressionNone the input is returned without copying.
func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression %v", compression)
	}
}
