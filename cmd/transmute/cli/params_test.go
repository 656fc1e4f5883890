// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type sharedParams struct {
	Verbose bool `flag:"verbose,v" desc:"verbose output"`
}

type convertParams struct {
	sharedParams
	Input   string   `flag:"input,i" desc:"input path" default:"-"`
	Retries int      `flag:"retries" desc:"retry count" default:"3"`
	Tags    []string `flag:"tag" desc:"tags" default:"a,b"`
	Note    string   // no flag tag: skipped
}

func TestBindFlags_Defaults(t *testing.T) {
	var params convertParams
	flagSet := FlagsFromParams("convert", &params)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Input != "-" {
		t.Errorf("Input = %q, want %q", params.Input, "-")
	}
	if params.Retries != 3 {
		t.Errorf("Retries = %d, want 3", params.Retries)
	}
	if len(params.Tags) != 2 || params.Tags[0] != "a" || params.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", params.Tags)
	}
	if params.Verbose {
		t.Error("Verbose = true, want false")
	}
	if flagSet.Lookup("note") != nil {
		t.Error("untagged field was bound as a flag")
	}
}

func TestBindFlags_ParsesValues(t *testing.T) {
	var params convertParams
	flagSet := FlagsFromParams("convert", &params)

	err := flagSet.Parse([]string{"-i", "data.csv", "--retries=5", "--tag", "x", "-v", "rest"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Input != "data.csv" {
		t.Errorf("Input = %q, want %q", params.Input, "data.csv")
	}
	if params.Retries != 5 {
		t.Errorf("Retries = %d, want 5", params.Retries)
	}
	if len(params.Tags) != 1 || params.Tags[0] != "x" {
		t.Errorf("Tags = %v, want [x]", params.Tags)
	}
	if !params.Verbose {
		t.Error("Verbose = false, want true (embedded struct flag)")
	}
	if args := flagSet.Args(); len(args) != 1 || args[0] != "rest" {
		t.Errorf("Args() = %v, want [rest]", args)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{
			name:   "not a pointer",
			params: convertParams{},
			want:   "pointer to a struct",
		},
		{
			name:   "pointer to non-struct",
			params: new(string),
			want:   "pointer to a struct",
		},
		{
			name: "unsupported type",
			params: &struct {
				Ratio float64 `flag:"ratio"`
			}{},
			want: "unsupported type",
		},
		{
			name: "bad bool default",
			params: &struct {
				Force bool `flag:"force" default:"maybe"`
			}{},
			want: "default for --force",
		},
		{
			name: "bad int default",
			params: &struct {
				Count int `flag:"count" default:"many"`
			}{},
			want: "default for --count",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := BindFlags(test.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil {
				t.Fatal("BindFlags() = nil, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), test.want)
			}
		})
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic for a non-pointer params value")
		}
	}()
	FlagsFromParams("bad", convertParams{})
}
