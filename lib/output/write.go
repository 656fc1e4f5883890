// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/transmute/lib/fault"
)

// FileOptions configures [WriteFile].
type FileOptions struct {
	// Compression is applied to the data before it is written.
	Compression Compression
}

// fileMode is the permission of every file written by [WriteFile].
const fileMode os.FileMode = 0o644

// Result describes a completed file write.
type Result struct {
	// Path is the destination that now holds the data.
	Path string

	// Bytes is the size written to disk, after compression.
	Bytes int

	// Digest is the hex BLAKE3-256 digest of the bytes on disk.
	Digest string
}

// WriteFile atomically replaces path with data.
func WriteFile(path string, data []byte, options FileOptions) (Result, error) {
	payload, err := compress(data, options.Compression)
	if err != nil {
		return Result{}, fault.IO("write %s: %w", path, err)
	}

	temporary, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return Result{}, fault.IO("create temporary file for %s: %w", path, err)
	}
	temporaryPath := temporary.Name()

	committed := false
	defer func() {
		if !committed {
			temporary.Close()
			os.Remove(temporaryPath)
		}
	}()

	if _, err := temporary.Write(payload); err != nil {
		return Result{}, fault.IO("write %s: %w", path, err)
	}
	if err := temporary.Chmod(fileMode); err != nil {
		return Result{}, fault.IO("chmod %s: %w", path, err)
	}
	if err := temporary.Sync(); err != nil {
		return Result{}, fault.IO("sync %s: %w", path, err)
	}
	if err := temporary.Close(); err != nil {
		return Result{}, fault.IO("close %s: %w", path, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		return Result{}, fault.IO("rename into %s: %w", path, err)
	}
	committed = true

	digest := blake3.Sum256(payload)
	return Result{
		Path:   path,
		Bytes:  len(payload),
		Digest: hex.EncodeToString(digest[:]),
	}, nil
}

// WriteLine writes text followed by a newline.
func WriteLine(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fault.IO("write output: %w", err)
	}
	return nil
}
