// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package serialize renders a [record.Set] in an output format.
//
// JSON and YAML output keep each record's keys in CSV header order and
// render every value as a string. CBOR output uses Core Deterministic
// Encoding from lib/codec, which sorts map keys. All three are
// deterministic: the same Set and format always produce the same bytes.
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/transmute/lib/codec"
	"github.com/bureau-foundation/transmute/lib/fault"
	"github.com/bureau-foundation/transmute/lib/record"
)

// Format selects a serialization backend.
type Format int

const (
	// JSON renders a pretty-printed array of objects.
	JSON Format = iota

	// YAML renders a block sequence of mappings.
	YAML

	// CBOR renders a deterministic CBOR array of maps.
	CBOR
)

// String returns the command-line name of the format.
func (format Format) String() string {
	switch format {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", int(format))
	}
}

// ParseFormat parses a format from its command-line name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "cbor":
		return CBOR, nil
	default:
		return 0, fault.Usage("unknown output format %q (want json, yaml, or cbor)", name)
	}
}

// Serialize renders set in format. Failures are
// [fault.KindSerialization] faults.
func Serialize(set *record.Set, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case JSON:
		data, err = marshalJSON(set)
	case YAML:
		data, err = marshalYAML(set)
	case CBOR:
		data, err = marshalCBOR(set)
	default:
		return nil, fault.Serialization("unsupported output format %v", format)
	}
	if err != nil {
		return nil, fault.Serialization("encode %s: %w", format, err)
	}
	return data, nil
}

// orderedObject is a JSON object whose keys keep their slice order.
type orderedObject []record.Field

// MarshalJSON writes the fields as a compact object. The caller's
// encoder re-indents it.
func (object orderedObject) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, field := range object {
		if index > 0 {
			buffer.WriteByte(',')
		}
		if err := writeJSONString(&buffer, field.Name); err != nil {
			return nil, err
		}
		buffer.WriteByte(':')
		if err := writeJSONString(&buffer, field.Value); err != nil {
			return nil, err
		}
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

func writeJSONString(buffer *bytes.Buffer, value string) error {
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buffer.Truncate(buffer.Len() - 1)
	return nil
}

// marshalJSON renders the set with 2-space indentation and no
// trailing newline. An empty set renders as [].
func marshalJSON(set *record.Set) ([]byte, error) {
	objects := make([]orderedObject, 0, set.Len())
	for _, rec := range set.Records {
		objects = append(objects, orderedObject(rec.Entries()))
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(objects); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// marshalYAML builds the document as a node tree so mapping keys keep
// header order; encoding a Go map would sort them. Every scalar is
// tagged !!str, which makes the encoder quote cells such as "10" or
// "true" that would otherwise resolve to another type.
func marshalYAML(set *record.Set) ([]byte, error) {
	sequence := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, rec := range set.Records {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range rec.Entries() {
			mapping.Content = append(mapping.Content,
				stringNode(entry.Name),
				stringNode(entry.Value),
			)
		}
		sequence.Content = append(sequence.Content, mapping)
	}

	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(sequence); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func marshalCBOR(set *record.Set) ([]byte, error) {
	maps := make([]map[string]string, 0, set.Len())
	for _, rec := range set.Records {
		entries := rec.Entries()
		object := make(map[string]string, len(entries))
		for _, entry := range entries {
			object[entry.Name] = entry.Value
		}
		maps = append(maps, object)
	}
	return codec.Marshal(maps)
}
