// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bureau-foundation/transmute/cmd/transmute/cli"
	"github.com/bureau-foundation/transmute/cmd/transmute/commands"
	"github.com/bureau-foundation/transmute/lib/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := cli.NewCommandLogger(level)
	return commands.Root(cfg).Execute(context.Background(), args, logger)
}
