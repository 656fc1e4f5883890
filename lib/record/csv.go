// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/transmute/lib/fault"
)

// byteOrderMark is stripped from the first header name. Spreadsheet
// exports commonly prepend it.
const byteOrderMark = "\uFEFF"

// CSVOptions configures [FromCSV].
type CSVOptions struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune
}

// FromCSV reads CSV from r and returns every data row as a [Record].
//
// Empty input yields an empty Set with no header. Header-only input
// yields an empty Set carrying the header. Blank lines are skipped and
// quotes are parsed leniently. A row whose width differs from the
// header's fails the whole read with a [fault.KindParse] fault naming
// its line. A field that is not valid UTF-8 fails it with a
// [fault.KindEncoding] fault.
func FromCSV(r io.Reader, options CSVOptions) (*Set, error) {
	reader := csv.NewReader(r)
	if options.Delimiter != 0 {
		if !ValidDelimiter(options.Delimiter) {
			return nil, fault.Usage("invalid csv delimiter %q", options.Delimiter)
		}
		reader.Comma = options.Delimiter
	}
	// Width is checked per row below so the error names both counts.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Set{}, nil
	}
	if err != nil {
		return nil, convertReadError("header", err)
	}
	if err := checkUTF8(reader, header); err != nil {
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	set := &Set{Header: header}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, convertReadError("row", err)
		}
		if err := checkUTF8(reader, row); err != nil {
			return nil, err
		}

		if len(row) != len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fault.Parse("csv line %d: record has %d fields, header has %d",
				line, len(row), len(header))
		}

		fields := make([]Field, len(header))
		for index := range header {
			fields[index] = Field{Name: header[index], Value: row[index]}
		}
		set.Records = append(set.Records, Record{fields: fields})
	}

	return set, nil
}

// checkUTF8 rejects a row holding a field that is not valid UTF-8.
// Must be called before the next Read so FieldPos refers to row.
func checkUTF8(reader *csv.Reader, row []string) error {
	for index, field := range row {
		if !utf8.ValidString(field) {
			line, column := reader.FieldPos(index)
			return fault.Encoding("csv line %d, column %d: field %d is not valid UTF-8",
				line, column, index+1)
		}
	}
	return nil
}

// ParseDelimiter parses a delimiter given as text. It must be exactly
// one character accepted by [ValidDelimiter].
func ParseDelimiter(value string) (rune, error) {
	delimiter, size := utf8.DecodeRuneInString(value)
	if size != len(value) || !ValidDelimiter(delimiter) {
		return 0, fault.Usage("delimiter must be a single character other than a quote or line break, got %q", value)
	}
	return delimiter, nil
}

// ValidDelimiter reports whether delimiter can separate CSV fields:
// a valid rune other than a quote or a line break.
func ValidDelimiter(delimiter rune) bool {
	return delimiter != 0 && delimiter != '"' && delimiter != '\r' && delimiter != '\n' &&
		utf8.ValidRune(delimiter) && delimiter != utf8.RuneError
}

// convertReadError tags a csv.Reader failure. Syntax errors are parse
// faults; anything else came from the underlying reader.
func convertReadError(stage string, err error) error {
	var parseError *csv.ParseError
	if errors.As(err, &parseError) {
		return fault.Parse("csv %s: %w", stage, err)
	}
	return fault.IO("read csv %s: %w", stage, err)
}
