// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding is the character encoding of the raw input.
type Encoding int

const (
	// Let the stream detect the encoding.
	ANY_ENCODING Encoding = iota

	UTF8_ENCODING    // UTF-8, with or without BOM.
	UTF16LE_ENCODING // UTF-16, little endian.
	UTF16BE_ENCODING // UTF-16, big endian.
	UTF32LE_ENCODING // UTF-32, little endian.
	UTF32BE_ENCODING // UTF-32, big endian.
)

func (e Encoding) String() string {
	switch e {
	case ANY_ENCODING:
		return "any"
	case UTF8_ENCODING:
		return "UTF-8"
	case UTF16LE_ENCODING:
		return "UTF-16LE"
	case UTF16BE_ENCODING:
		return "UTF-16BE"
	case UTF32LE_ENCODING:
		return "UTF-32LE"
	case UTF32BE_ENCODING:
		return "UTF-32BE"
	}
	return "<unknown encoding>"
}

// ParseEncoding returns the encoding named by s, as printed by String.
func ParseEncoding(s string) (Encoding, bool) {
	for e := ANY_ENCODING; e <= UTF32BE_ENCODING; e++ {
		if e.String() == s {
			return e, true
		}
	}
	return ANY_ENCODING, false
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

func (e Encoding) bom() []byte {
	switch e {
	case UTF8_ENCODING:
		return bomUTF8
	case UTF16LE_ENCODING:
		return bomUTF16LE
	case UTF16BE_ENCODING:
		return bomUTF16BE
	case UTF32LE_ENCODING:
		return bomUTF32LE
	case UTF32BE_ENCODING:
		return bomUTF32BE
	}
	return nil
}

// detectEncoding guesses the encoding from the first (up to four) bytes of
// the input. It returns the encoding and the length of the byte order mark
// to skip. Without a BOM the first character is assumed to be ASCII, so the
// position of the zero bytes gives the encoding away.
func detectEncoding(p []byte) (Encoding, int) {
	switch {
	case bytes.HasPrefix(p, bomUTF32BE):
		return UTF32BE_ENCODING, len(bomUTF32BE)
	case bytes.HasPrefix(p, bomUTF32LE):
		return UTF32LE_ENCODING, len(bomUTF32LE)
	case bytes.HasPrefix(p, bomUTF16BE):
		return UTF16BE_ENCODING, len(bomUTF16BE)
	case bytes.HasPrefix(p, bomUTF16LE):
		return UTF16LE_ENCODING, len(bomUTF16LE)
	case bytes.HasPrefix(p, bomUTF8):
		return UTF8_ENCODING, len(bomUTF8)
	case len(p) >= 4 && p[0] == 0 && p[1] == 0 && p[2] == 0 && p[3] != 0:
		return UTF32BE_ENCODING, 0
	case len(p) >= 4 && p[0] != 0 && p[1] == 0 && p[2] == 0 && p[3] == 0:
		return UTF32LE_ENCODING, 0
	case len(p) >= 2 && p[0] == 0 && p[1] != 0:
		return UTF16BE_ENCODING, 0
	case len(p) >= 2 && p[0] != 0 && p[1] == 0:
		return UTF16LE_ENCODING, 0
	}
	return UTF8_ENCODING, 0
}

type decodeStatus int

const (
	decodeOK decodeStatus = iota
	decodeShort
	decodeInvalid
)

// decodeRune decodes the first character of p.
func (e Encoding) decodeRune(p []byte) (rune, int, decodeStatus) {
	switch e {
	case UTF16LE_ENCODING, UTF16BE_ENCODING:
		return e.decodeUTF16(p)
	case UTF32LE_ENCODING, UTF32BE_ENCODING:
		if len(p) < 4 {
			return 0, 0, decodeShort
		}
		var v uint32
		if e == UTF32LE_ENCODING {
			v = binary.LittleEndian.Uint32(p)
		} else {
			v = binary.BigEndian.Uint32(p)
		}
		if v > utf8.MaxRune || utf16.IsSurrogate(rune(v)) {
			return 0, 0, decodeInvalid
		}
		return rune(v), 4, decodeOK
	}
	if len(p) == 0 || !utf8.FullRune(p) {
		return 0, 0, decodeShort
	}
	r, width := utf8.DecodeRune(p)
	if r == utf8.RuneError && width <= 1 {
		return 0, 0, decodeInvalid
	}
	return r, width, decodeOK
}

func (e Encoding) decodeUTF16(p []byte) (rune, int, decodeStatus) {
	unit := func(b []byte) rune {
		if e == UTF16LE_ENCODING {
			return rune(binary.LittleEndian.Uint16(b))
		}
		return rune(binary.BigEndian.Uint16(b))
	}
	if len(p) < 2 {
		return 0, 0, decodeShort
	}
	r1 := unit(p)
	if !utf16.IsSurrogate(r1) {
		return r1, 2, decodeOK
	}
	// A trailing surrogate cannot start a character.
	if r1 >= 0xDC00 {
		return 0, 0, decodeInvalid
	}
	if len(p) < 4 {
		return 0, 0, decodeShort
	}
	r := utf16.DecodeRune(r1, unit(p[2:]))
	if r == utf8.RuneError {
		return 0, 0, decodeInvalid
	}
	return r, 4, decodeOK
}

// isPrintable reports whether r may appear in a YAML stream.
func isPrintable(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0x85:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}
