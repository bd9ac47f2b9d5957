// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yamlcore/yamlscan"
)

func runTool(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(input), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunText(t *testing.T) {
	out, _, err := runTool(t, "a: [b]\n")
	require.NoError(t, err)
	require.Equal(t, `BLOCK_MAP_START
KEY
PLAIN_SCALAR PLAIN "a"
VALUE
FLOW_SEQ_START
PLAIN_SCALAR PLAIN "b"
FLOW_SEQ_END
BLOCK_END
`, out)
}

func TestRunTextDetails(t *testing.T) {
	out, _, err := runTool(t, "%TAG !e! tag:x,1:\n--- !e!t ''\n", "-p")
	require.NoError(t, err)
	require.Equal(t, `1;1 DIRECTIVE "TAG" "!e!" "tag:x,1:"
2;1 DOC_START
2;5 TAG NAMED_HANDLE "e" "t"
2;10 QUOTED_SCALAR SINGLE_QUOTED ""
`, out)
}

func TestRunJSON(t *testing.T) {
	out, _, err := runTool(t, "a: b\n", "--json", "--pos", "-k", "KEY", "-k", "PLAIN_SCALAR_TOKEN")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.JSONEq(t, `{"token": "KEY", "pos": "1;1"}`, lines[0])
	require.JSONEq(t, `{"token": "PLAIN_SCALAR", "value": "a", "style": "PLAIN", "pos": "1;1"}`, lines[1])
	require.JSONEq(t, `{"token": "PLAIN_SCALAR", "value": "b", "style": "PLAIN", "pos": "1;4"}`, lines[2])
}

func TestRunYAML(t *testing.T) {
	out, _, err := runTool(t, "- &x a\n- |\n  text\n- *x\n", "-y")
	require.NoError(t, err)

	var got []tokenInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Equal(t, []tokenInfo{
		{Token: "BLOCK_SEQ_START"},
		{Token: "BLOCK_ENTRY"},
		{Token: "ANCHOR", Value: "x"},
		{Token: "PLAIN_SCALAR", Value: "a", Style: "PLAIN"},
		{Token: "BLOCK_ENTRY"},
		{Token: "QUOTED_SCALAR", Value: "text\n", Style: "LITERAL"},
		{Token: "BLOCK_ENTRY"},
		{Token: "ALIAS", Value: "x"},
		{Token: "BLOCK_END"},
	}, got)
}

func TestRunYAMLEmpty(t *testing.T) {
	out, _, err := runTool(t, "# nothing\n", "--yaml")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRunScanError(t *testing.T) {
	out, _, err := runTool(t, "a: b\n]")
	require.ErrorIs(t, err, yamlscan.ErrFlowEnd)
	require.EqualError(t, err, "yaml: line 2, column 1: illegal flow end")
	require.Equal(t, "BLOCK_MAP_START\nKEY\nPLAIN_SCALAR PLAIN \"a\"\nVALUE\nPLAIN_SCALAR PLAIN \"b\"\n", out)
}

func TestRunScanErrorInFlow(t *testing.T) {
	out, _, err := runTool(t, "[a, b}")
	require.ErrorIs(t, err, yamlscan.ErrFlowEnd)
	require.EqualError(t, err, "yaml: line 1, column 6: illegal flow end")
	// The sequence could still have been a mapping key.
	require.Empty(t, out)
}

func TestRunEncoding(t *testing.T) {
	out, _, err := runTool(t, "k\x00", "-e", "UTF-16LE")
	require.NoError(t, err)
	require.Equal(t, "PLAIN_SCALAR PLAIN \"k\"\n", out)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: value\n"), 0o644))

	out, _, err := runTool(t, "ignored: stdin\n", "-k", "PLAIN_SCALAR", path)
	require.NoError(t, err)
	require.Equal(t, "PLAIN_SCALAR PLAIN \"key\"\nPLAIN_SCALAR PLAIN \"value\"\n", out)
}

func TestRunMissingFile(t *testing.T) {
	_, _, err := runTool(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunDebug(t *testing.T) {
	_, stderr, err := runTool(t, "[a]", "-d")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(stderr, "msg=token"))
	require.Contains(t, stderr, "kind=FLOW_SEQ_START_TOKEN")

	_, stderr, err = runTool(t, "[a]")
	require.NoError(t, err)
	require.Empty(t, stderr)
}

func TestRunBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"json and yaml", []string{"-j", "-y"}, "--json and --yaml cannot be used together"},
		{"unknown encoding", []string{"-e", "latin1"}, `unknown encoding "latin1"`},
		{"unknown kind", []string{"-k", "KEY", "-k", "COMMA"}, `unknown token kind "COMMA"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runTool(t, "a", tt.args...)
			require.EqualError(t, err, tt.want)
			require.Empty(t, out)
		})
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds([]string{"KEY", "KEY_TOKEN", "VALUE"})
	require.NoError(t, err)
	require.Equal(t, []yamlscan.TokenType{yamlscan.KEY_TOKEN, yamlscan.VALUE_TOKEN}, kinds)
}
