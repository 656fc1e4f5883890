// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/bureau-foundation/transmute/cmd/transmute/cli"
	"github.com/bureau-foundation/transmute/lib/fault"
)

// TestCommandTree walks the full production command tree and checks
// that every command is documented and that every params struct binds
// to a flag set without panicking.
func TestCommandTree(t *testing.T) {
	walkCommands(Root(nil), nil, func(command *cli.Command, path []string) {
		name := strings.Join(path, " ")
		if len(path) > 1 && command.Summary == "" {
			t.Errorf("%s: missing Summary", name)
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%s: neither Run nor Subcommands", name)
		}
		if command.Params != nil {
			func() {
				defer func() {
					if recovered := recover(); recovered != nil {
						t.Errorf("%s: params do not bind: %v", name, recovered)
					}
				}()
				cli.FlagsFromParams(command.Name, command.Params())
			}()
		}
	})
}

func TestRoot_Subcommands(t *testing.T) {
	root := Root(nil)
	var names []string
	for _, sub := range root.Subcommands {
		names = append(names, sub.Name)
	}
	if got := strings.Join(names, ","); got != "csv,base64,version" {
		t.Errorf("subcommands = %s, want csv,base64,version", got)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	err := Root(nil).Execute(context.Background(), []string{"cvs"}, nil)
	if !fault.Is(err, fault.KindUsage) {
		t.Fatalf("Execute(cvs) error = %v, want usage fault", err)
	}
	if !strings.Contains(err.Error(), `did you mean "csv"`) {
		t.Errorf("error = %q, want suggestion for csv", err.Error())
	}
}

func TestRoot_VersionRejectsArguments(t *testing.T) {
	err := Root(nil).Execute(context.Background(), []string{"version", "extra"}, nil)
	if !fault.Is(err, fault.KindUsage) {
		t.Fatalf("Execute(version extra) error = %v, want usage fault", err)
	}
}

// walkCommands recursively visits every command in the tree,
// calling visit for each node with the accumulated command path.
func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := make([]string, len(path)+1)
	copy(current, path)
	current[len(path)] = command.Name
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}
