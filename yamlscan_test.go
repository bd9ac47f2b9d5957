// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlscan_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yamlcore/yamlscan"
	"github.com/yamlcore/yamlscan/internal/testutil/assert"
)

func tokenTypes(tokens []yamlscan.Token) []yamlscan.TokenType {
	types := make([]yamlscan.TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestTokenize(t *testing.T) {
	tokens, err := yamlscan.Tokenize([]byte("%YAML 1.2\n---\nkey: 'v'\n...\n"))
	assert.NoError(t, err)
	assert.DeepEqual(t, []yamlscan.TokenType{
		yamlscan.DIRECTIVE_TOKEN,
		yamlscan.DOC_START_TOKEN,
		yamlscan.BLOCK_MAP_START_TOKEN,
		yamlscan.KEY_TOKEN,
		yamlscan.PLAIN_SCALAR_TOKEN,
		yamlscan.VALUE_TOKEN,
		yamlscan.QUOTED_SCALAR_TOKEN,
		yamlscan.BLOCK_END_TOKEN,
		yamlscan.DOC_END_TOKEN,
	}, tokenTypes(tokens))

	assert.Equal(t, "YAML", tokens[0].Value)
	assert.DeepEqual(t, []string{"1.2"}, tokens[0].Params)
	assert.Equal(t, yamlscan.SINGLE_QUOTED_SCALAR_STYLE, tokens[6].Style)
	assert.Equal(t, yamlscan.Mark{Offset: 14, Line: 2, Column: 0}, tokens[3].Mark)
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := yamlscan.Tokenize(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(tokens))
}

func TestTokenizeReturnsTokensBeforeError(t *testing.T) {
	tokens, err := yamlscan.Tokenize([]byte("a: b\nc: \x01"))
	assert.Equal(t, 8, len(tokens))
	assert.ErrorIs(t, err, yamlscan.ErrControlCharacter)

	var rerr yamlscan.ReaderError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, 8, rerr.Offset)
	assert.Equal(t, 1, rerr.Value)
}

func TestScannerErrorIsExported(t *testing.T) {
	_, err := yamlscan.Tokenize([]byte("a: b: c"))
	var serr yamlscan.ScannerError
	assert.ErrorAs(t, err, &serr)
	assert.True(t, errors.Is(err, yamlscan.ErrMapValue))
	assert.Equal(t, 4, serr.Mark.Offset)
}

func utf16LE(s string) []byte {
	out := []byte{0xFF, 0xFE}
	for _, u := range utf16.Encode([]rune(s)) {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

func TestEncodingsProduceSameTokens(t *testing.T) {
	const doc = "- \"café\"\n- {k: ☺}\n- |\n  text\n"

	want, err := yamlscan.Tokenize([]byte(doc))
	assert.NoError(t, err)

	got, err := yamlscan.Tokenize(utf16LE(doc))
	assert.NoError(t, err)
	assert.DeepEqual(t, want, got, cmpopts.IgnoreFields(yamlscan.Token{}, "Mark"), cmpopts.IgnoreUnexported(yamlscan.Token{}))

	s := yamlscan.NewScannerBytes(utf16LE(doc))
	assert.Equal(t, yamlscan.EncodingUTF16LE, s.Encoding())
}

func TestWithEncoding(t *testing.T) {
	in := utf16LE("a")[2:]
	tokens, err := yamlscan.Tokenize(in, yamlscan.WithEncoding(yamlscan.EncodingUTF16LE))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tokens))
	assert.Equal(t, "a", tokens[0].Value)
}

func TestParseNames(t *testing.T) {
	tt, ok := yamlscan.ParseTokenType("FLOW_ENTRY_TOKEN")
	assert.True(t, ok)
	assert.Equal(t, yamlscan.FLOW_ENTRY_TOKEN, tt)

	_, ok = yamlscan.ParseTokenType("COMMA")
	assert.False(t, ok)

	enc, ok := yamlscan.ParseEncoding("UTF-32BE")
	assert.True(t, ok)
	assert.Equal(t, yamlscan.EncodingUTF32BE, enc)
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := yamlscan.NewMetrics(reg)

	_, err := yamlscan.Tokenize([]byte("[a, b]"), yamlscan.WithMetrics(m))
	assert.NoError(t, err)

	n, err := testutil.GatherAndCount(reg, "yamlscan_tokens_total")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
		# HELP yamlscan_tokens_total Total number of tokens delivered, by token kind.
		# TYPE yamlscan_tokens_total counter
		yamlscan_tokens_total{kind="FLOW_ENTRY_TOKEN"} 1
		yamlscan_tokens_total{kind="FLOW_SEQ_END_TOKEN"} 1
		yamlscan_tokens_total{kind="FLOW_SEQ_START_TOKEN"} 1
		yamlscan_tokens_total{kind="PLAIN_SCALAR_TOKEN"} 2
	`), "yamlscan_tokens_total"))
}
