// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ByteInput is test input written either as a string or as a sequence of
// byte values, for input that is not valid UTF-8.
type ByteInput []byte

func (b *ByteInput) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*b = []byte(value.Value)
		return nil
	}

	var ints []int
	if err := value.Decode(&ints); err != nil {
		return errors.Errorf("line %d: input must be a string or a sequence of bytes", value.Line)
	}
	out := make([]byte, len(ints))
	for i, n := range ints {
		if n < 0 || n > 0xFF {
			return errors.Errorf("line %d: byte value out of range: %d", value.Line, n)
		}
		out[i] = byte(n)
	}
	*b = out
	return nil
}

// StringSlice is written either as a single string or as a sequence.
type StringSlice []string

func (s *StringSlice) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*s = []string{value.Value}
		return nil
	}
	var strs []string
	if err := value.Decode(&strs); err != nil {
		return err
	}
	*s = strs
	return nil
}
