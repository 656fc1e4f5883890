// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"context"
	"log/slog"
	"os"

	"github.com/bureau-foundation/transmute/cmd/transmute/cli"
	"github.com/bureau-foundation/transmute/lib/config"
	"github.com/bureau-foundation/transmute/lib/fault"
)

// csvParams holds the flags for "transmute csv". Format, Delimiter, and
// Compress default to empty so that unset flags fall back to config.
type csvParams struct {
	Input     string `flag:"input,i"     desc:"CSV input file, or - for stdin (required)"`
	Output    string `flag:"output,o"    desc:"destination file (required)"`
	Format    string `flag:"format,f"    desc:"output format: json, yaml, or cbor (default from config)"`
	Delimiter string `flag:"delimiter,d" desc:"field delimiter, a single character (default from config)"`
	Compress  string `flag:"compress"    desc:"output compression: none, zstd, or lz4 (default from config)"`
}

// Command returns the "csv" command.
func Command(cfg *config.Config) *cli.Command {
	var params csvParams

	return &cli.Command{
		Name:    "csv",
		Summary: "Convert CSV to JSON, YAML, or CBOR",
		Description: `Read a CSV file whose first row is a header and write every following
row as an object keyed by the header's column names, in column order.

Cell values are always strings; no type inference is applied. Every data
row must have exactly as many fields as the header. A row that does not
fails the whole conversion and no output is written.

The output file is written to a temporary file beside the destination
and renamed into place, so readers never observe a partial file. With
--compress, the serialized output is compressed with zstd or as an lz4
frame before it is written.

Defaults for --format, --delimiter, and --compress come from the file
named by TRANSMUTE_CONFIG when it is set.`,
		Usage:  "transmute csv --input <path|-> --output <path> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Convert a CSV file to JSON",
				Command:     "transmute csv --input players.csv --output players.json",
			},
			{
				Description: "Convert semicolon-separated stdin to YAML",
				Command:     "cat export.csv | transmute csv -i - -o export.yaml --format yaml --delimiter ';'",
			},
			{
				Description: "Write zstd-compressed CBOR",
				Command:     "transmute csv -i events.csv -o events.cbor.zst --format cbor --compress zstd",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fault.Usage("csv takes no positional arguments, got %q", args[0])
			}
			request, err := resolveOptions(params, cfg)
			if err != nil {
				return err
			}
			_, err = convert(ctx, request, os.Stdin, logger)
			return err
		},
	}
}
