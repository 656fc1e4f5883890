// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package base64

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/transmute/cmd/transmute/cli"
	"github.com/bureau-foundation/transmute/lib/codec"
	"github.com/bureau-foundation/transmute/lib/config"
	"github.com/bureau-foundation/transmute/lib/fault"
	"github.com/bureau-foundation/transmute/lib/input"
	"github.com/bureau-foundation/transmute/lib/output"
)

// codecParams holds the flags shared by encode and decode.
type codecParams struct {
	Input  string `flag:"input,i"  desc:"input file, or - for stdin" default:"-"`
	Format string `flag:"format,f" desc:"alphabet: standard or urlsafe (default from config)"`
}

// Command returns the "base64" command group.
func Command(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "base64",
		Summary: "Encode or decode Base64 text",
		Description: `Encode arbitrary bytes to Base64 text, or decode Base64 text back to
UTF-8 text.

Two alphabets are supported. "standard" uses + and / and pads with =.
"urlsafe" uses - and _ and omits padding. Decoding is strict: symbols
from the other alphabet, wrong padding, and non-zero trailing bits are
all rejected.

Leading and trailing whitespace around the encoded text is ignored, so a
trailing newline from a file or a shell pipe is harmless. Line breaks
inside the encoded text are rejected.`,
		Subcommands: []*cli.Command{
			encodeCommand(cfg),
			decodeCommand(cfg),
		},
		Examples: []cli.Example{
			{
				Description: "Encode a string",
				Command:     "printf hello | transmute base64 encode",
			},
			{
				Description: "Decode a URL-safe token from a file",
				Command:     "transmute base64 decode --input token.txt --format urlsafe",
			},
		},
	}
}

func encodeCommand(cfg *config.Config) *cli.Command {
	var params codecParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode input bytes as Base64",
		Description: `Read the input in full and write its Base64 encoding to stdout,
followed by a newline. Any bytes are accepted; the input is not
required to be text.`,
		Usage:  "transmute base64 encode [--input <path|->] [--format standard|urlsafe]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Encode a file with the URL-safe alphabet",
				Command:     "transmute base64 encode --input key.bin --format urlsafe",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fault.Usage("encode takes no positional arguments, got %q", args[0])
			}
			format, err := resolveFormat(params.Format, cfg)
			if err != nil {
				return err
			}
			return encode(params.Input, format, os.Stdin, os.Stdout, logger)
		},
	}
}

func decodeCommand(cfg *config.Config) *cli.Command {
	var params codecParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode Base64 input to text",
		Description: `Read Base64 text in full and write the decoded text to stdout,
followed by a newline. The decoded bytes must be valid UTF-8.`,
		Usage:  "transmute base64 decode [--input <path|->] [--format standard|urlsafe]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a string",
				Command:     "echo aGVsbG8= | transmute base64 decode",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fault.Usage("decode takes no positional arguments, got %q", args[0])
			}
			format, err := resolveFormat(params.Format, cfg)
			if err != nil {
				return err
			}
			return decode(params.Input, format, os.Stdin, os.Stdout, logger)
		},
	}
}

// resolveFormat parses the --format flag, falling back to the
// configured default when the flag is not given.
func resolveFormat(flagValue string, cfg *config.Config) (codec.Base64Format, error) {
	name := flagValue
	if name == "" && cfg != nil {
		name = cfg.Base64.Format
	}
	if name == "" {
		return codec.Base64Standard, nil
	}
	return codec.ParseBase64Format(name)
}

// encode reads path (or stdin for "-") and writes its Base64 encoding
// as one line to stdout.
func encode(path string, format codec.Base64Format, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	data, err := input.ReadPath(path, stdin)
	if err != nil {
		return err
	}
	encoded := codec.EncodeBase64(data, format)
	logger.Debug("encoded input", "input", path, "format", format.String(), "bytes", len(data))
	return output.WriteLine(stdout, encoded)
}

// decode reads Base64 text from path (or stdin for "-") and writes the
// decoded text as one line to stdout.
func decode(path string, format codec.Base64Format, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	data, err := input.ReadPath(path, stdin)
	if err != nil {
		return err
	}
	decoded, err := codec.DecodeBase64(string(data), format)
	if err != nil {
		return err
	}
	logger.Debug("decoded input", "input", path, "format", format.String(), "bytes", len(decoded))
	return output.WriteLine(stdout, decoded)
}
