// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yamlcore/yamlscan/internal/testutil/assert"
)

const sample = `
- echo:
    name: type as key
    input: abc
    want: [a, b]
- type: echo
  name: explicit type
  input: [0xFF, 0x00]
  want: single
`

type echoCase struct {
	Name  string      `yaml:"name"`
	Input ByteInput   `yaml:"input"`
	Want  StringSlice `yaml:"want"`
}

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cases.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cases, err := Load(writeSample(t, sample))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(cases))

	var first, second echoCase
	assert.NoError(t, cases[0].Decode(&first))
	assert.NoError(t, cases[1].Decode(&second))

	assert.Equal(t, "echo", cases[0].Type())
	assert.Equal(t, "type as key", cases[0].Name())
	assert.DeepEqual(t, echoCase{Name: "type as key", Input: ByteInput("abc"), Want: StringSlice{"a", "b"}}, first)
	assert.DeepEqual(t, echoCase{Name: "explicit type", Input: ByteInput{0xFF, 0x00}, Want: StringSlice{"single"}}, second)
}

func TestLoadRejectsUntypedCases(t *testing.T) {
	_, err := Load(writeSample(t, "- name: lost\n  input: x\n"))
	assert.ErrorMatches(t, `case 0 \(lost\) has no type`, err)
}

func TestByteInputRange(t *testing.T) {
	cases, err := Load(writeSample(t, "- echo: {input: [256]}\n"))
	assert.NoError(t, err)
	var tc echoCase
	assert.ErrorMatches(t, `byte value out of range: 256`, cases[0].Decode(&tc))
}

func TestRun(t *testing.T) {
	var seen []string
	Run(t, writeSample(t, sample), map[string]Handler{
		"echo": func(t *testing.T, tc Case) {
			seen = append(seen, tc.Name())
		},
	})
	assert.DeepEqual(t, []string{"type as key", "explicit type"}, seen)
}
