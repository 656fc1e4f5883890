// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"context"
	"io"
	"log/slog"

	"github.com/bureau-foundation/transmute/lib/codec"
	"github.com/bureau-foundation/transmute/lib/config"
	"github.com/bureau-foundation/transmute/lib/fault"
	"github.com/bureau-foundation/transmute/lib/input"
	"github.com/bureau-foundation/transmute/lib/output"
	"github.com/bureau-foundation/transmute/lib/record"
	"github.com/bureau-foundation/transmute/lib/serialize"
)

// conversion is a fully resolved conversion request.
type conversion struct {
	Input       string
	Output      string
	Format      serialize.Format
	Delimiter   rune
	Compression output.Compression
}

// resolveOptions validates the command-line flags and fills unset ones
// from cfg.
func resolveOptions(params csvParams, cfg *config.Config) (conversion, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if params.Input == "" {
		return conversion{}, fault.Usage("--input is required (use - for stdin)")
	}
	if params.Output == "" {
		return conversion{}, fault.Usage("--output is required")
	}

	formatName := firstNonEmpty(params.Format, cfg.CSV.Format, "json")
	format, err := serialize.ParseFormat(formatName)
	if err != nil {
		return conversion{}, err
	}

	delimiter, err := resolveDelimiter(params.Delimiter, cfg)
	if err != nil {
		return conversion{}, err
	}

	compression, err := output.ParseCompression(firstNonEmpty(params.Compress, cfg.CSV.Compression))
	if err != nil {
		return conversion{}, err
	}

	return conversion{
		Input:       params.Input,
		Output:      params.Output,
		Format:      format,
		Delimiter:   delimiter,
		Compression: compression,
	}, nil
}

// convert reads the CSV input, serializes it, and writes the output
// file. Nothing is written unless every row converts.
func convert(ctx context.Context, request conversion, stdin io.Reader, logger *slog.Logger) (output.Result, error) {
	source, err := input.OpenWith(request.Input, stdin)
	if err != nil {
		return output.Result{}, err
	}
	defer source.Close()

	set, err := record.FromCSV(source, record.CSVOptions{Delimiter: request.Delimiter})
	if err != nil {
		return output.Result{}, err
	}

	data, err := serialize.Serialize(set, request.Format)
	if err != nil {
		return output.Result{}, err
	}

	if request.Format == serialize.CBOR && logger.Enabled(ctx, slog.LevelDebug) {
		diagnostic, err := codec.Diagnose(data)
		if err != nil {
			return output.Result{}, fault.Serialization("diagnose cbor output: %w", err)
		}
		logger.Debug("cbor output", "diagnostic", diagnostic)
	}

	result, err := output.WriteFile(request.Output, data, output.FileOptions{Compression: request.Compression})
	if err != nil {
		return output.Result{}, err
	}

	logger.Info("converted csv",
		"input", source.Name(),
		"output", result.Path,
		"format", request.Format.String(),
		"compression", request.Compression.String(),
		"records", set.Len(),
		"bytes", result.Bytes,
		"blake3", result.Digest,
	)
	return result, nil
}

// resolveDelimiter parses --delimiter, or takes the configured one
// when the flag is unset.
func resolveDelimiter(flagValue string, cfg *config.Config) (rune, error) {
	if flagValue == "" {
		if cfg.CSV.Delimiter == "" {
			return ',', nil
		}
		return cfg.CSVDelimiter()
	}
	delimiter, err := record.ParseDelimiter(flagValue)
	if err != nil {
		return 0, fault.Usage("--delimiter: %w", err)
	}
	return delimiter, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
