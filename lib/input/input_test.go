// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/transmute/lib/fault"
)

func TestOpenWith_StdinToken(t *testing.T) {
	source, err := OpenWith("-", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer source.Close()

	if source.Name() != "stdin" {
		t.Errorf("Name() = %q, want %q", source.Name(), "stdin")
	}

	data, err := ReadAll(source)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "from stdin" {
		t.Errorf("data = %q, want %q", data, "from stdin")
	}
}

func TestOpenWith_StdinTokenIgnoresFileNamedDash(t *testing.T) {
	// A file literally named "-" in the working directory must not be
	// opened in place of stdin.
	directory := t.TempDir()
	t.Chdir(directory)
	if err := os.WriteFile("-", []byte("from file"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := ReadPath("-", strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("ReadPath: %v", err)
	}
	if string(data) != "from stdin" {
		t.Errorf("data = %q, want %q", data, "from stdin")
	}
}

func TestOpenWith_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	source, err := OpenWith(path, strings.NewReader("unused"))
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}
	defer source.Close()

	if source.Name() != path {
		t.Errorf("Name() = %q, want %q", source.Name(), path)
	}
	data, err := ReadAll(source)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("data = %q", data)
	}
}

func TestOpenWith_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := OpenWith(path, nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !fault.Is(err, fault.KindIO) {
		t.Errorf("kind: got %v, want io", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name the path", err)
	}
}

func TestOpenWith_Directory(t *testing.T) {
	directory := t.TempDir()

	_, err := OpenWith(directory, nil)
	if err == nil {
		t.Fatal("expected error for directory")
	}
	if !fault.Is(err, fault.KindIO) {
		t.Errorf("kind: got %v, want io", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestReadAll_ReadFailure(t *testing.T) {
	source, err := OpenWith("-", failingReader{})
	if err != nil {
		t.Fatalf("OpenWith: %v", err)
	}

	_, err = ReadAll(source)
	if err == nil {
		t.Fatal("expected read error")
	}
	if !fault.Is(err, fault.KindIO) {
		t.Errorf("kind: got %v, want io", err)
	}
	if !strings.Contains(err.Error(), "read stdin") {
		t.Errorf("error %q does not name the source", err)
	}
}
