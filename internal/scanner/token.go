// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"github.com/yamlcore/yamlscan/internal/stream"
)

// Mark is a position in the decoded input.
type Mark = stream.Mark

type TokenType int

// Token types.
const (
	// An empty token.
	NO_TOKEN TokenType = iota

	DIRECTIVE_TOKEN       // A %NAME directive, with its parameters.
	DOC_START_TOKEN       // A '---' token.
	DOC_END_TOKEN         // A '...' token.
	BLOCK_SEQ_START_TOKEN // A BLOCK-SEQUENCE-START token.
	BLOCK_MAP_START_TOKEN // A BLOCK-MAPPING-START token.
	BLOCK_END_TOKEN       // A BLOCK-END token.
	BLOCK_ENTRY_TOKEN     // A '-' token.
	FLOW_SEQ_START_TOKEN  // A '[' token.
	FLOW_SEQ_END_TOKEN    // A ']' token.
	FLOW_MAP_START_TOKEN  // A '{' token.
	FLOW_MAP_END_TOKEN    // A '}' token.
	FLOW_ENTRY_TOKEN      // A ',' token.
	KEY_TOKEN             // A '?' token, explicit or implied by a simple key.
	VALUE_TOKEN           // A ':' token.
	ALIAS_TOKEN           // An ALIAS token.
	ANCHOR_TOKEN          // An ANCHOR token.
	TAG_TOKEN             // A TAG token.
	PLAIN_SCALAR_TOKEN    // A plain SCALAR token.
	QUOTED_SCALAR_TOKEN   // A quoted or block SCALAR token.
)

var tokenTypeNames = [...]string{
	NO_TOKEN:              "NO_TOKEN",
	DIRECTIVE_TOKEN:       "DIRECTIVE_TOKEN",
	DOC_START_TOKEN:       "DOC_START_TOKEN",
	DOC_END_TOKEN:         "DOC_END_TOKEN",
	BLOCK_SEQ_START_TOKEN: "BLOCK_SEQ_START_TOKEN",
	BLOCK_MAP_START_TOKEN: "BLOCK_MAP_START_TOKEN",
	BLOCK_END_TOKEN:       "BLOCK_END_TOKEN",
	BLOCK_ENTRY_TOKEN:     "BLOCK_ENTRY_TOKEN",
	FLOW_SEQ_START_TOKEN:  "FLOW_SEQ_START_TOKEN",
	FLOW_SEQ_END_TOKEN:    "FLOW_SEQ_END_TOKEN",
	FLOW_MAP_START_TOKEN:  "FLOW_MAP_START_TOKEN",
	FLOW_MAP_END_TOKEN:    "FLOW_MAP_END_TOKEN",
	FLOW_ENTRY_TOKEN:      "FLOW_ENTRY_TOKEN",
	KEY_TOKEN:             "KEY_TOKEN",
	VALUE_TOKEN:           "VALUE_TOKEN",
	ALIAS_TOKEN:           "ALIAS_TOKEN",
	ANCHOR_TOKEN:          "ANCHOR_TOKEN",
	TAG_TOKEN:             "TAG_TOKEN",
	PLAIN_SCALAR_TOKEN:    "PLAIN_SCALAR_TOKEN",
	QUOTED_SCALAR_TOKEN:   "QUOTED_SCALAR_TOKEN",
}

func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "<unknown token>"
}

// ParseTokenType returns the token type named s, as printed by String.
func ParseTokenType(s string) (TokenType, bool) {
	for tt, name := range tokenTypeNames {
		if name == s {
			return TokenType(tt), true
		}
	}
	return NO_TOKEN, false
}

// TagKind classifies the handle of a TAG_TOKEN.
type TagKind int

const (
	NO_TAG TagKind = iota

	VERBATIM_TAG         // !<tag:yaml.org,2002:str>
	PRIMARY_HANDLE_TAG   // !local
	SECONDARY_HANDLE_TAG // !!str
	NAMED_HANDLE_TAG     // !e!suffix
	NON_SPECIFIC_TAG     // !
)

func (k TagKind) String() string {
	switch k {
	case NO_TAG:
		return "NO_TAG"
	case VERBATIM_TAG:
		return "VERBATIM_TAG"
	case PRIMARY_HANDLE_TAG:
		return "PRIMARY_HANDLE_TAG"
	case SECONDARY_HANDLE_TAG:
		return "SECONDARY_HANDLE_TAG"
	case NAMED_HANDLE_TAG:
		return "NAMED_HANDLE_TAG"
	case NON_SPECIFIC_TAG:
		return "NON_SPECIFIC_TAG"
	}
	return "<unknown tag kind>"
}

type ScalarStyle int8

// Scalar styles.
const (
	NO_SCALAR_STYLE ScalarStyle = iota

	PLAIN_SCALAR_STYLE         // The plain scalar style.
	SINGLE_QUOTED_SCALAR_STYLE // The single-quoted scalar style.
	DOUBLE_QUOTED_SCALAR_STYLE // The double-quoted scalar style.
	LITERAL_SCALAR_STYLE       // The literal scalar style.
	FOLDED_SCALAR_STYLE        // The folded scalar style.
)

func (style ScalarStyle) String() string {
	switch style {
	case NO_SCALAR_STYLE:
		return "NO_SCALAR_STYLE"
	case PLAIN_SCALAR_STYLE:
		return "PLAIN_SCALAR_STYLE"
	case SINGLE_QUOTED_SCALAR_STYLE:
		return "SINGLE_QUOTED_SCALAR_STYLE"
	case DOUBLE_QUOTED_SCALAR_STYLE:
		return "DOUBLE_QUOTED_SCALAR_STYLE"
	case LITERAL_SCALAR_STYLE:
		return "LITERAL_SCALAR_STYLE"
	case FOLDED_SCALAR_STYLE:
		return "FOLDED_SCALAR_STYLE"
	}
	return "<unknown scalar style>"
}

type tokenStatus int8

const (
	tokenValid tokenStatus = iota
	tokenInvalid
	tokenUnverified
)

// Token is a single lexical token.
type Token struct {
	Type TokenType
	Mark Mark

	// The name of a directive, anchor or alias, the text of a scalar, or
	// the handle or suffix of a tag.
	Value string

	// The parameters of a directive, or the suffix of a named tag.
	Params []string

	Tag   TagKind     // The kind of a tag.
	Style ScalarStyle // The style of a scalar.

	status tokenStatus
}
