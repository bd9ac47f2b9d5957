// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

// simpleKey is a token that becomes a mapping key if a ':' follows it on
// the same line. Its KEY_TOKEN, and the BLOCK_MAP_START_TOKEN of the
// mapping it would open, are queued unverified until then.
type simpleKey struct {
	mark      Mark
	flowLevel int
	indent    int // Index of the indent opened for the key, or -1.
	mapStart  int // Handle of the mapping start token, or -1.
	key       int // Handle of the key token.
}

func (s *Scanner) setSimpleKeyStatus(key *simpleKey, ts tokenStatus, is indentStatus) {
	if key.indent >= 0 {
		s.indents[key.indent].status = is
	}
	if key.mapStart >= 0 {
		s.tokens.at(key.mapStart).status = ts
	}
	s.tokens.at(key.key).status = ts
}

func (s *Scanner) existsActiveSimpleKey() bool {
	if len(s.simpleKeys) == 0 {
		return false
	}
	return s.simpleKeys[len(s.simpleKeys)-1].flowLevel == s.flowLevel()
}

func (s *Scanner) canInsertPotentialSimpleKey() bool {
	return s.simpleKeyAllowed && !s.existsActiveSimpleKey()
}

// insertPotentialSimpleKey queues an unverified KEY_TOKEN, preceded in the
// block context by the start of the mapping the key would open.
func (s *Scanner) insertPotentialSimpleKey() {
	if !s.canInsertPotentialSimpleKey() {
		return
	}

	mark := s.in.Mark()
	key := simpleKey{mark: mark, flowLevel: s.flowLevel(), indent: -1, mapStart: -1}
	if s.inBlockContext() {
		key.indent = s.pushIndentTo(mark.Column, mapIndent)
		if key.indent >= 0 {
			indent := &s.indents[key.indent]
			indent.status = indentUnknown
			key.mapStart = indent.startToken
			s.tokens.at(key.mapStart).status = tokenUnverified
		}
	}

	key.key = s.tokens.push(Token{Type: KEY_TOKEN, Mark: mark, status: tokenUnverified})
	s.simpleKeys = append(s.simpleKeys, key)
}

// invalidateSimpleKey withdraws the pending simple key of the current flow
// level, if any.
func (s *Scanner) invalidateSimpleKey() {
	if !s.existsActiveSimpleKey() {
		return
	}
	key := s.simpleKeys[len(s.simpleKeys)-1]
	s.simpleKeys = s.simpleKeys[:len(s.simpleKeys)-1]
	s.setSimpleKeyStatus(&key, tokenInvalid, indentInvalid)
}

// verifySimpleKey resolves the pending simple key of the current flow level
// and reports whether it is a key. A key must end on the line it started on,
// within the configured length.
func (s *Scanner) verifySimpleKey() bool {
	if !s.existsActiveSimpleKey() {
		return false
	}
	key := s.simpleKeys[len(s.simpleKeys)-1]
	s.simpleKeys = s.simpleKeys[:len(s.simpleKeys)-1]

	mark := s.in.Mark()
	valid := mark.Line == key.mark.Line && mark.Offset-key.mark.Offset <= s.maxSimpleKeyLength
	if valid {
		s.setSimpleKeyStatus(&key, tokenValid, indentValid)
	} else {
		s.setSimpleKeyStatus(&key, tokenInvalid, indentInvalid)
	}
	return valid
}

// popAllSimpleKeys withdraws every pending simple key.
func (s *Scanner) popAllSimpleKeys() {
	for i := range s.simpleKeys {
		s.setSimpleKeyStatus(&s.simpleKeys[i], tokenInvalid, indentInvalid)
	}
	s.simpleKeys = s.simpleKeys[:0]

	// With only the stream indent left nothing refers to the others.
	if len(s.indentStack) == 1 && s.indentStack[0] == 0 {
		s.indents = s.indents[:1]
	}
}
