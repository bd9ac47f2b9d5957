// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"github.com/yamlcore/yamlscan/internal/exp"
)

type indentKind int8

const (
	noneIndent indentKind = iota
	seqIndent
	mapIndent
)

type indentStatus int8

const (
	indentValid indentStatus = iota
	indentInvalid
	indentUnknown
)

// indentMarker is an open block collection. An indent pushed for a simple
// key stays unknown until the key is resolved.
type indentMarker struct {
	column     int
	kind       indentKind
	status     indentStatus
	startToken int // Handle of the collection start token.
}

func (s *Scanner) topIndent() *indentMarker {
	return &s.indents[s.indentStack[len(s.indentStack)-1]]
}

func (s *Scanner) topIndentColumn() int {
	if len(s.indentStack) == 0 {
		return 0
	}
	return s.topIndent().column
}

// pushIndentTo opens a block collection of the given kind at column, and
// queues its start token. It returns the index of the new indent, or -1 if
// column does not start a new collection.
func (s *Scanner) pushIndentTo(column int, kind indentKind) int {
	if s.inFlowContext() {
		return -1
	}

	last := s.topIndent()
	if column < last.column {
		return -1
	}
	// A sequence may sit at the same column as its parent mapping.
	if column == last.column && !(kind == seqIndent && last.kind == mapIndent) {
		return -1
	}

	startType := BLOCK_SEQ_START_TOKEN
	if kind == mapIndent {
		startType = BLOCK_MAP_START_TOKEN
	}
	start := s.tokens.push(Token{Type: startType, Mark: s.in.Mark()})

	s.indents = append(s.indents, indentMarker{column: column, kind: kind, status: indentValid, startToken: start})
	i := len(s.indents) - 1
	s.indentStack = append(s.indentStack, i)
	return i
}

// popIndentToHere closes the collections the current column falls out of.
func (s *Scanner) popIndentToHere() {
	if s.inFlowContext() {
		return
	}

	column := s.in.Mark().Column
	for len(s.indentStack) > 0 {
		top := s.topIndent()
		if top.column < column {
			break
		}
		if top.column == column && !(top.kind == seqIndent && !exp.BlockEntry.Matches(s.in)) {
			break
		}
		s.popIndent()
	}

	for len(s.indentStack) > 0 && s.topIndent().status == indentInvalid {
		s.popIndent()
	}
}

// popAllIndents closes every open block collection.
func (s *Scanner) popAllIndents() {
	if s.inFlowContext() {
		return
	}

	for len(s.indentStack) > 0 && s.topIndent().kind != noneIndent {
		s.popIndent()
	}
}

// popIndent closes the innermost block collection. Only a valid indent gets
// a BLOCK_END_TOKEN: an unresolved one belongs to a pending simple key,
// which cannot be a key anymore.
func (s *Scanner) popIndent() {
	top := *s.topIndent()
	s.indentStack = s.indentStack[:len(s.indentStack)-1]

	if top.status != indentValid {
		s.invalidateSimpleKey()
		return
	}
	s.tokens.push(Token{Type: BLOCK_END_TOKEN, Mark: s.in.Mark()})
}
