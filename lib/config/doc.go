// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads transmute's optional configuration file.
//
// The file is named by the TRANSMUTE_CONFIG environment variable. When
// the variable is unset, [Load] returns [Default]; there is no search
// of home or system directories. When it is set, the file must exist
// and validate.
//
// Files ending in .json or .jsonc are parsed as JSON with // and /* */
// comments and trailing commas allowed. Every other file is parsed as
// YAML. Unknown keys are rejected in both formats so that a misspelled
// setting fails loudly instead of being ignored.
//
// Configuration supplies defaults only: a value given on the command
// line always wins over the file.
//
//	log:
//	  level: debug
//	csv:
//	  format: yaml
//	  delimiter: ";"
//	  compression: zstd
//	base64:
//	  format: urlsafe
package config
