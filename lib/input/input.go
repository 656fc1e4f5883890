// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package input resolves command-line path tokens into readable byte
// streams. The token "-" selects standard input; any other token names
// a file. Every failure is returned as a [fault.KindIO] fault naming
// the path.
package input

import (
	"io"
	"os"

	"github.com/bureau-foundation/transmute/lib/fault"
)

// StdinToken is the path token that selects standard input.
const StdinToken = "-"

// Source is a readable input stream. Close releases the underlying
// file handle; for standard input it is a no-op so that the process's
// stdin stays open for the rest of the program.
type Source interface {
	io.ReadCloser

	// Name identifies the source in error messages and logs: the file
	// path, or "stdin".
	Name() string
}

// Open resolves path against the process's standard input.
func Open(path string) (Source, error) {
	return OpenWith(path, os.Stdin)
}

// OpenWith resolves path, binding the stdin token to the given reader.
func OpenWith(path string, stdin io.Reader) (Source, error) {
	if path == StdinToken {
		return &stdinSource{Reader: stdin}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fault.IO("open input: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fault.IO("stat input %s: %w", path, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fault.IO("open input %s: is a directory", path)
	}
	return &fileSource{File: file, path: path}, nil
}

// ReadAll reads source to EOF. The whole input is held in memory.
func ReadAll(source Source) ([]byte, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fault.IO("read %s: %w", source.Name(), err)
	}
	return data, nil
}

// ReadPath opens path, reads it completely, and closes it.
func ReadPath(path string, stdin io.Reader) ([]byte, error) {
	source, err := OpenWith(path, stdin)
	if err != nil {
		return nil, err
	}
	defer source.Close()
	return ReadAll(source)
}

type fileSource struct {
	*os.File
	path string
}

func (s *fileSource) Name() string { return s.path }

type stdinSource struct {
	io.Reader
}

func (s *stdinSource) Name() string { return "stdin" }

func (s *stdinSource) Close() error { return nil }
