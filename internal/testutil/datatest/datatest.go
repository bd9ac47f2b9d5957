// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest runs table tests stored in YAML files.
//
// A test file is a sequence of cases. A case is a mapping with a "type"
// field naming its handler, or a mapping with a single key, the type, whose
// value holds the other fields:
//
//	# testdata/scanner.yaml
//	- scan-tokens:
//	    name: flow sequence
//	    yaml: "[a, b]"
//	    want: [FLOW_SEQ_START_TOKEN, ...]
package datatest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is a single test case, as loaded from the file.
type Case map[string]any

// Name returns the name of the case, or "unnamed".
func (c Case) Name() string {
	if name, ok := c["name"].(string); ok && name != "" {
		return name
	}
	return "unnamed"
}

// Type returns the handler name of the case.
func (c Case) Type() string {
	typ, _ := c["type"].(string)
	return typ
}

// Decode stores the fields of the case in target, following its yaml
// struct tags.
func (c Case) Decode(target any) error {
	data, err := yaml.Marshal(map[string]any(c))
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

// Handler runs a single test case.
type Handler func(t *testing.T, tc Case)

// Load reads the cases of a test file.
func Load(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(err, filepath.Base(path))
	}

	cases := make([]Case, 0, len(items))
	for i, item := range items {
		c := normalize(item)
		if c.Type() == "" {
			return nil, errors.Errorf("%s: case %d (%s) has no type", filepath.Base(path), i, c.Name())
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// normalize turns {test-type: {fields}} into {type: test-type, fields}.
func normalize(item map[string]any) Case {
	if len(item) != 1 {
		return item
	}
	for key, value := range item {
		fields, ok := value.(map[string]any)
		if !ok || key == "type" {
			break
		}
		c := Case{"type": key}
		for k, v := range fields {
			c[k] = v
		}
		return c
	}
	return item
}

// Run loads the cases of the test file at path and runs each one as a
// subtest, with the handler registered for its type.
func Run(t *testing.T, path string, handlers map[string]Handler) {
	t.Helper()

	cases, err := Load(path)
	if err != nil {
		t.Fatalf("load test cases: %v", err)
	}
	for _, tc := range cases {
		t.Run(tc.Name(), func(t *testing.T) {
			handler, ok := handlers[tc.Type()]
			if !ok {
				t.Fatalf("unknown test type: %s", tc.Type())
			}
			handler(t, tc)
		})
	}
}
