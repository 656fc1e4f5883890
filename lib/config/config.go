// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/transmute/lib/codec"
	"github.com/bureau-foundation/transmute/lib/output"
	"github.com/bureau-foundation/transmute/lib/record"
	"github.com/bureau-foundation/transmute/lib/serialize"
)

// EnvironmentVariable names the configuration file.
const EnvironmentVariable = "TRANSMUTE_CONFIG"

// Config is the complete transmute configuration.
type Config struct {
	// Log configures the command logger.
	Log LogConfig `yaml:"log" json:"log"`

	// CSV holds defaults for "transmute csv".
	CSV CSVConfig `yaml:"csv" json:"csv"`

	// Base64 holds defaults for "transmute base64".
	Base64 Base64Config `yaml:"base64" json:"base64"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is the minimum level written to stderr: debug, info,
	// warn, or error.
	// Default: info
	Level string `yaml:"level" json:"level"`
}

// CSVConfig holds defaults for CSV conversion.
type CSVConfig struct {
	// Format is the output format: json, yaml, or cbor.
	// Default: json
	Format string `yaml:"format" json:"format"`

	// Delimiter is the single character separating input fields.
	// Default: ","
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Compression is applied to the output file: none, zstd, or lz4.
	// Default: none
	Compression string `yaml:"compression" json:"compression"`
}

// Base64Config holds defaults for Base64 encoding and decoding.
type Base64Config struct {
	// Format is the alphabet: standard or urlsafe.
	// Default: standard
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		CSV: CSVConfig{
			Format:      "json",
			Delimiter:   ",",
			Compression: "none",
		},
		Base64: Base64Config{
			Format: "standard",
		},
	}
}

// Load loads the file named by TRANSMUTE_CONFIG, or returns [Default]
// when the variable is unset or empty.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over the defaults and
// validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single file into c.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		return decoder.Decode(c)
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, err := serialize.ParseFormat(c.CSV.Format); err != nil {
		errs = append(errs, fmt.Errorf("csv.format: %w", err))
	}
	if _, err := c.CSVDelimiter(); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseCompression(c.CSV.Compression); err != nil {
		errs = append(errs, fmt.Errorf("csv.compression: %w", err))
	}
	if _, err := codec.ParseBase64Format(c.Base64.Format); err != nil {
		errs = append(errs, fmt.Errorf("base64.format: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// logLevels are the accepted log.level names. slog's own parser also
// takes offsets such as "INFO+2", which are not accepted here.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(c.Log.Level)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("log.level must be one of debug, info, warn, error: got %q", c.Log.Level)
	}
	return level, nil
}

// CSVDelimiter returns the configured delimiter as a rune.
func (c *Config) CSVDelimiter() (rune, error) {
	delimiter, err := record.ParseDelimiter(c.CSV.Delimiter)
	if err != nil {
		return 0, fmt.Errorf("csv.delimiter: %w", err)
	}
	return delimiter, nil
}
