// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlscan implements a YAML 1.2 tokenizer.
//
// A [Scanner] reads a YAML character stream and produces the lexical tokens
// a parser consumes: directives, document markers, block and flow
// structure, keys and values, anchors, aliases, tags and scalars.
//
// This file contains:
// - Type and constant re-exports from internal/scanner and internal/stream
// - Options API (WithEncoding, WithLogger, etc.)
// - Scanner constructors and the Tokenize helper

package yamlscan

import (
	"bytes"
	"io"

	"github.com/yamlcore/yamlscan/internal/metrics"
	"github.com/yamlcore/yamlscan/internal/scanner"
	"github.com/yamlcore/yamlscan/internal/stream"
	"github.com/yamlcore/yamlscan/option"
)

//-----------------------------------------------------------------------------
// Tokens
//-----------------------------------------------------------------------------

// Token is a single lexical token.
type Token = scanner.Token

// TokenType identifies the kind of a Token.
type TokenType = scanner.TokenType

// Token types.
const (
	NO_TOKEN              = scanner.NO_TOKEN
	DIRECTIVE_TOKEN       = scanner.DIRECTIVE_TOKEN
	DOC_START_TOKEN       = scanner.DOC_START_TOKEN
	DOC_END_TOKEN         = scanner.DOC_END_TOKEN
	BLOCK_SEQ_START_TOKEN = scanner.BLOCK_SEQ_START_TOKEN
	BLOCK_MAP_START_TOKEN = scanner.BLOCK_MAP_START_TOKEN
	BLOCK_END_TOKEN       = scanner.BLOCK_END_TOKEN
	BLOCK_ENTRY_TOKEN     = scanner.BLOCK_ENTRY_TOKEN
	FLOW_SEQ_START_TOKEN  = scanner.FLOW_SEQ_START_TOKEN
	FLOW_SEQ_END_TOKEN    = scanner.FLOW_SEQ_END_TOKEN
	FLOW_MAP_START_TOKEN  = scanner.FLOW_MAP_START_TOKEN
	FLOW_MAP_END_TOKEN    = scanner.FLOW_MAP_END_TOKEN
	FLOW_ENTRY_TOKEN      = scanner.FLOW_ENTRY_TOKEN
	KEY_TOKEN             = scanner.KEY_TOKEN
	VALUE_TOKEN           = scanner.VALUE_TOKEN
	ALIAS_TOKEN           = scanner.ALIAS_TOKEN
	ANCHOR_TOKEN          = scanner.ANCHOR_TOKEN
	TAG_TOKEN             = scanner.TAG_TOKEN
	PLAIN_SCALAR_TOKEN    = scanner.PLAIN_SCALAR_TOKEN
	QUOTED_SCALAR_TOKEN   = scanner.QUOTED_SCALAR_TOKEN
)

// ParseTokenType returns the token type with the given name, such as
// "KEY_TOKEN".
var ParseTokenType = scanner.ParseTokenType

// TagKind classifies the handle of a TAG_TOKEN.
type TagKind = scanner.TagKind

// Tag kinds.
const (
	NO_TAG               = scanner.NO_TAG
	VERBATIM_TAG         = scanner.VERBATIM_TAG
	PRIMARY_HANDLE_TAG   = scanner.PRIMARY_HANDLE_TAG
	SECONDARY_HANDLE_TAG = scanner.SECONDARY_HANDLE_TAG
	NAMED_HANDLE_TAG     = scanner.NAMED_HANDLE_TAG
	NON_SPECIFIC_TAG     = scanner.NON_SPECIFIC_TAG
)

// ScalarStyle is the presentation style of a scalar token.
type ScalarStyle = scanner.ScalarStyle

// Scalar styles.
const (
	NO_SCALAR_STYLE            = scanner.NO_SCALAR_STYLE
	PLAIN_SCALAR_STYLE         = scanner.PLAIN_SCALAR_STYLE
	SINGLE_QUOTED_SCALAR_STYLE = scanner.SINGLE_QUOTED_SCALAR_STYLE
	DOUBLE_QUOTED_SCALAR_STYLE = scanner.DOUBLE_QUOTED_SCALAR_STYLE
	LITERAL_SCALAR_STYLE       = scanner.LITERAL_SCALAR_STYLE
	FOLDED_SCALAR_STYLE        = scanner.FOLDED_SCALAR_STYLE
)

// Mark is a zero-based position in the decoded input.
type Mark = stream.Mark

//-----------------------------------------------------------------------------
// Encodings
//-----------------------------------------------------------------------------

// Encoding is the character encoding of the raw input.
type Encoding = stream.Encoding

// Encodings.
const (
	// Detect the encoding from the first bytes of the input.
	EncodingAny = stream.ANY_ENCODING

	EncodingUTF8    = stream.UTF8_ENCODING
	EncodingUTF16LE = stream.UTF16LE_ENCODING
	EncodingUTF16BE = stream.UTF16BE_ENCODING
	EncodingUTF32LE = stream.UTF32LE_ENCODING
	EncodingUTF32BE = stream.UTF32BE_ENCODING
)

// ParseEncoding returns the encoding with the given name, such as
// "UTF-16LE".
var ParseEncoding = stream.ParseEncoding

//-----------------------------------------------------------------------------
// Errors
//-----------------------------------------------------------------------------

// ScannerError is a lexical error, reported at the position where it was
// detected.
type ScannerError = scanner.ScannerError

// ReaderError is an error reading or decoding the input.
type ReaderError = stream.ReaderError

// Problems reported through ScannerError.Err and ReaderError.Err.
var (
	ErrUnknownToken          = scanner.ErrUnknownToken
	ErrDirectiveAfterContent = scanner.ErrDirectiveAfterContent
	ErrDocInScalar           = scanner.ErrDocInScalar
	ErrEOFInScalar           = scanner.ErrEOFInScalar
	ErrTabInIndentation      = scanner.ErrTabInIndentation
	ErrFlowEnd               = scanner.ErrFlowEnd
	ErrBlockEntry            = scanner.ErrBlockEntry
	ErrMapKey                = scanner.ErrMapKey
	ErrMapValue              = scanner.ErrMapValue
	ErrAliasNotFound         = scanner.ErrAliasNotFound
	ErrAnchorNotFound        = scanner.ErrAnchorNotFound
	ErrCharInAlias           = scanner.ErrCharInAlias
	ErrCharInAnchor          = scanner.ErrCharInAnchor
	ErrZeroIndentInBlock     = scanner.ErrZeroIndentInBlock
	ErrCharInBlock           = scanner.ErrCharInBlock
	ErrEndOfVerbatimTag      = scanner.ErrEndOfVerbatimTag
	ErrTagWithNoSuffix       = scanner.ErrTagWithNoSuffix
	ErrCharInTagHandle       = scanner.ErrCharInTagHandle
	ErrInvalidHex            = scanner.ErrInvalidHex
	ErrInvalidUnicode        = scanner.ErrInvalidUnicode
	ErrInvalidEscape         = scanner.ErrInvalidEscape
	ErrNoToken               = scanner.ErrNoToken

	ErrControlCharacter   = stream.ErrControlCharacter
	ErrInvalidSequence    = stream.ErrInvalidSequence
	ErrIncompleteSequence = stream.ErrIncompleteSequence
)

//-----------------------------------------------------------------------------
// Options
//-----------------------------------------------------------------------------

// Option allows configuring a Scanner.
type Option = option.Option

// Option configuration functions
var (
	// WithEncoding forces the input encoding instead of detecting it from
	// the byte order mark or the first characters.
	WithEncoding = option.WithEncoding

	// WithLogger sets the logrus logger that receives one debug entry per
	// delivered token, and one per failed stream. The default discards
	// everything.
	WithLogger = option.WithLogger

	// WithMetrics sets the Prometheus collectors to update. See NewMetrics.
	WithMetrics = option.WithMetrics

	// WithMaxSimpleKeyLength sets how many bytes may separate the start of
	// a simple key from its ':' indicator. The default is 1024.
	WithMaxSimpleKeyLength = option.WithMaxSimpleKeyLength
)

// Metrics holds the Prometheus collectors updated by scanners.
type Metrics = metrics.Metrics

// NewMetrics creates scanner collectors and registers them with reg. A nil
// reg leaves them unregistered.
var NewMetrics = metrics.NewMetrics

//-----------------------------------------------------------------------------
// Scanner
//-----------------------------------------------------------------------------

// Scanner produces the tokens of a YAML stream on demand.
type Scanner = scanner.Scanner

// NewScanner returns a Scanner reading YAML from r.
func NewScanner(r io.Reader, opts ...Option) *Scanner {
	return scanner.New(r, option.NewConfig(opts...))
}

// NewScannerBytes returns a Scanner reading YAML from in.
func NewScannerBytes(in []byte, opts ...Option) *Scanner {
	return NewScanner(bytes.NewReader(in), opts...)
}

// Tokenize returns all tokens of in. On error it returns the tokens
// delivered before the error, along with the error.
func Tokenize(in []byte, opts ...Option) ([]Token, error) {
	var tokens []Token
	for tok, err := range NewScannerBytes(in, opts...).All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
