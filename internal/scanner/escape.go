// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/yamlcore/yamlscan/internal/exp"
	"github.com/yamlcore/yamlscan/internal/stream"
)

var simpleEscapes = map[byte]string{
	'0':  "\x00",
	'a':  "\x07",
	'b':  "\x08",
	't':  "\x09",
	'\t': "\x09",
	'n':  "\x0A",
	'v':  "\x0B",
	'f':  "\x0C",
	'r':  "\x0D",
	'e':  "\x1B",
	' ':  " ",
	'"':  "\"",
	'\'': "'",
	'\\': "\\",
	'/':  "/",
	'N':  "\u0085",
	'_':  "\u00A0",
	'L':  "\u2028",
	'P':  "\u2029",
}

var hexEscapeLengths = map[byte]int{
	'x': 2,
	'u': 4,
	'U': 8,
}

// escape consumes an escape sequence, the escape character included, and
// returns the text it stands for.
func escape(in *stream.Stream) (string, error) {
	esc := in.Get()
	c := in.Get()
	if esc == '\'' && c == '\'' {
		return "'", nil
	}
	if s, ok := simpleEscapes[c]; ok {
		return s, nil
	}
	if n, ok := hexEscapeLengths[c]; ok {
		return escapeHex(in, n)
	}
	return "", newScannerError(in.Mark(), errors.Wrapf(ErrInvalidEscape, "%q", c))
}

func escapeHex(in *stream.Stream, n int) (string, error) {
	var value uint32
	for range n {
		if !exp.Hex.Matches(in) {
			return "", newScannerError(in.Mark(), ErrInvalidHex)
		}
		value = value<<4 | hexValue(in.Get())
	}
	if value > utf8.MaxRune || utf16.IsSurrogate(rune(value)) {
		return "", newScannerError(in.Mark(), errors.Wrapf(ErrInvalidUnicode, "%#x", value))
	}
	return string(rune(value)), nil
}

func hexValue(c byte) uint32 {
	switch {
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10
	}
	return uint32(c - '0')
}
