// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete transmute command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	base64cmd "github.com/bureau-foundation/transmute/cmd/transmute/base64"
	"github.com/bureau-foundation/transmute/cmd/transmute/cli"
	csvcmd "github.com/bureau-foundation/transmute/cmd/transmute/csv"
	"github.com/bureau-foundation/transmute/lib/config"
	"github.com/bureau-foundation/transmute/lib/fault"
	"github.com/bureau-foundation/transmute/lib/version"
)

// Root builds and returns the transmute command tree. cfg supplies the
// defaults for flags the user leaves unset; nil means built-in defaults.
func Root(cfg *config.Config) *cli.Command {
	if cfg == nil {
		cfg = config.Default()
	}

	return &cli.Command{
		Name: "transmute",
		Description: `transmute: convert structured data and text encodings.

Convert CSV files to JSON, YAML, or CBOR, and encode or decode Base64.
Inputs are read in full; "-" reads from stdin. Logs go to stderr so
stdout carries only command output.`,
		Subcommands: []*cli.Command{
			csvcmd.Command(cfg),
			base64cmd.Command(cfg),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return fault.Usage("version takes no arguments, got %q", args[0])
					}
					fmt.Fprintf(os.Stdout, "transmute %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Convert a CSV file to JSON",
				Command:     "transmute csv --input players.csv --output players.json",
			},
			{
				Description: "Base64-encode a file",
				Command:     "transmute base64 encode --input photo.txt",
			},
		},
	}
}
