// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"github.com/yamlcore/yamlscan/internal/exp"
	"github.com/yamlcore/yamlscan/internal/stream"
)

// scanWord consumes the input up to the next blank, line break or end of
// input.
func (s *Scanner) scanWord() string {
	var b []byte
	for s.in.More() && !exp.BlankOrBreak.Matches(s.in) {
		b = append(b, s.in.Get())
	}
	return string(b)
}

// scanDirective scans %NAME param param ...
func (s *Scanner) scanDirective() error {
	s.popAllIndents()
	s.popAllSimpleKeys()
	s.simpleKeyAllowed = false
	s.canBeJSONFlow = false

	in := s.in
	tok := Token{Type: DIRECTIVE_TOKEN, Mark: in.Mark()}
	in.Eat()

	tok.Value = s.scanWord()
	for {
		for exp.Blank.Matches(in) {
			in.Eat()
		}
		if !in.More() || exp.Break.Matches(in) || exp.Comment.Matches(in) {
			break
		}
		tok.Params = append(tok.Params, s.scanWord())
	}

	s.tokens.push(tok)
	return nil
}

func (s *Scanner) scanDocStart() error {
	return s.scanDocIndicator(DOC_START_TOKEN)
}

func (s *Scanner) scanDocEnd() error {
	return s.scanDocIndicator(DOC_END_TOKEN)
}

func (s *Scanner) scanDocIndicator(typ TokenType) error {
	s.popAllIndents()
	s.popAllSimpleKeys()
	s.simpleKeyAllowed = false
	s.canBeJSONFlow = false

	mark := s.in.Mark()
	s.in.EatN(3)
	s.tokens.push(Token{Type: typ, Mark: mark})
	return nil
}

// scanFlowStart scans '[' or '{'. A flow collection may itself be a
// simple key.
func (s *Scanner) scanFlowStart() error {
	s.insertPotentialSimpleKey()
	s.simpleKeyAllowed = true
	s.canBeJSONFlow = false

	mark := s.in.Mark()
	if s.in.Get() == exp.KeyFlowSeqStart {
		s.flows = append(s.flows, flowSeq)
		s.tokens.push(Token{Type: FLOW_SEQ_START_TOKEN, Mark: mark})
	} else {
		s.flows = append(s.flows, flowMap)
		s.tokens.push(Token{Type: FLOW_MAP_START_TOKEN, Mark: mark})
	}
	return nil
}

// resolveFlowEntry settles the pending key of an entry that ends without a
// ':'. In a mapping the entry is a key with an empty value; in a sequence
// it is a plain node.
func (s *Scanner) resolveFlowEntry() {
	switch s.flows[len(s.flows)-1] {
	case flowMap:
		if s.verifySimpleKey() {
			s.tokens.push(Token{Type: VALUE_TOKEN, Mark: s.in.Mark()})
		}
	case flowSeq:
		s.invalidateSimpleKey()
	}
}

// scanFlowEnd scans ']' or '}'.
func (s *Scanner) scanFlowEnd() error {
	in := s.in
	if s.inBlockContext() {
		return newScannerError(in.Mark(), ErrFlowEnd)
	}

	s.resolveFlowEntry()
	s.simpleKeyAllowed = false
	s.canBeJSONFlow = true

	mark := in.Mark()
	typ, kind := FLOW_SEQ_END_TOKEN, flowSeq
	if in.Get() == exp.KeyFlowMapEnd {
		typ, kind = FLOW_MAP_END_TOKEN, flowMap
	}
	if s.flows[len(s.flows)-1] != kind {
		return newScannerError(mark, ErrFlowEnd)
	}
	s.flows = s.flows[:len(s.flows)-1]

	s.tokens.push(Token{Type: typ, Mark: mark})
	return nil
}

func (s *Scanner) scanFlowEntry() error {
	if s.inFlowContext() {
		s.resolveFlowEntry()
	}
	s.simpleKeyAllowed = true
	s.canBeJSONFlow = false

	mark := s.in.Mark()
	s.in.Eat()
	s.tokens.push(Token{Type: FLOW_ENTRY_TOKEN, Mark: mark})
	return nil
}

func (s *Scanner) scanBlockEntry() error {
	in := s.in
	if s.inFlowContext() || !s.simpleKeyAllowed {
		return newScannerError(in.Mark(), ErrBlockEntry)
	}

	s.pushIndentTo(in.Mark().Column, seqIndent)
	s.simpleKeyAllowed = true
	s.canBeJSONFlow = false

	mark := in.Mark()
	in.Eat()
	s.tokens.push(Token{Type: BLOCK_ENTRY_TOKEN, Mark: mark})
	return nil
}

// scanKey scans an explicit '?' key.
func (s *Scanner) scanKey() error {
	in := s.in
	if s.inBlockContext() {
		if !s.simpleKeyAllowed {
			return newScannerError(in.Mark(), ErrMapKey)
		}
		s.pushIndentTo(in.Mark().Column, mapIndent)
	}

	// A simple key may follow only in the block context.
	s.simpleKeyAllowed = s.inBlockContext()

	mark := in.Mark()
	in.Eat()
	s.tokens.push(Token{Type: KEY_TOKEN, Mark: mark})
	return nil
}

// scanValue scans ':', which first resolves any pending simple key.
func (s *Scanner) scanValue() error {
	in := s.in
	isSimpleKey := s.verifySimpleKey()
	s.canBeJSONFlow = false

	if isSimpleKey {
		s.simpleKeyAllowed = false
	} else {
		if s.inBlockContext() {
			if !s.simpleKeyAllowed {
				return newScannerError(in.Mark(), ErrMapValue)
			}
			s.pushIndentTo(in.Mark().Column, mapIndent)
		}
		s.simpleKeyAllowed = s.inBlockContext()
	}

	mark := in.Mark()
	in.Eat()
	s.tokens.push(Token{Type: VALUE_TOKEN, Mark: mark})
	return nil
}

// scanAnchorOrAlias scans &name or *name.
func (s *Scanner) scanAnchorOrAlias() error {
	s.insertPotentialSimpleKey()
	s.simpleKeyAllowed = false
	s.canBeJSONFlow = false

	in := s.in
	mark := in.Mark()
	alias := in.Get() == exp.KeyAlias

	var name []byte
	for in.More() && exp.Anchor.Matches(in) {
		name = append(name, in.Get())
	}

	if len(name) == 0 {
		if alias {
			return newScannerError(in.Mark(), ErrAliasNotFound)
		}
		return newScannerError(in.Mark(), ErrAnchorNotFound)
	}
	if in.More() && !exp.AnchorEnd.Matches(in) {
		if alias {
			return newScannerError(in.Mark(), ErrCharInAlias)
		}
		return newScannerError(in.Mark(), ErrCharInAnchor)
	}

	typ := ANCHOR_TOKEN
	if alias {
		typ = ALIAS_TOKEN
	}
	s.tokens.push(Token{Type: typ, Mark: mark, Value: string(name)})
	return nil
}

// singleQuoteEnd matches a quote not followed by another quote.
type singleQuoteEnd struct{}

func (singleQuoteEnd) MatchAt(w *stream.Window, pos int) int {
	if w[pos] == '\'' && (pos+1 >= len(w) || w[pos+1] != '\'') {
		return 1
	}
	return -1
}

func (singleQuoteEnd) Lookahead() int { return 2 }

var (
	singleQuotedEnd = exp.New(singleQuoteEnd{})
	doubleQuotedEnd = exp.New(exp.Char('"'))
)

func (s *Scanner) scanPlainScalar() error {
	cfg := ScanScalarConfig{
		End:                  exp.ScanScalarEnd,
		Indent:               s.topIndentColumn() + 1,
		Fold:                 FOLD_FLOW,
		EatLeadingWhitespace: true,
		TrimTrailingSpaces:   true,
		Chomp:                STRIP_CHOMPING,
		OnDocIndicator:       BREAK_ACTION,
		OnTabInIndentation:   THROW_ACTION,
	}
	if s.inFlowContext() {
		cfg.End = exp.ScanScalarEndInFlow
		cfg.Indent = 0
	}

	s.insertPotentialSimpleKey()

	mark := s.in.Mark()
	value, leadingSpaces, err := scanScalar(s.in, cfg)
	if err != nil {
		return err
	}

	// Only a scalar that ended by starting a new line may be followed by
	// a simple key.
	s.simpleKeyAllowed = leadingSpaces
	s.canBeJSONFlow = false

	s.tokens.push(Token{Type: PLAIN_SCALAR_TOKEN, Mark: mark, Value: value, Style: PLAIN_SCALAR_STYLE})
	return nil
}

func (s *Scanner) scanQuotedScalar() error {
	single := s.in.Peek() == '\''
	cfg := ScanScalarConfig{
		End:                  doubleQuotedEnd,
		EatEnd:               true,
		Escape:               '\\',
		Fold:                 FOLD_FLOW,
		EatLeadingWhitespace: true,
		Chomp:                CLIP_CHOMPING,
		OnDocIndicator:       THROW_ACTION,
	}
	style := DOUBLE_QUOTED_SCALAR_STYLE
	if single {
		cfg.End = singleQuotedEnd
		cfg.Escape = '\''
		style = SINGLE_QUOTED_SCALAR_STYLE
	}

	s.insertPotentialSimpleKey()

	mark := s.in.Mark()
	s.in.Get()
	value, _, err := scanScalar(s.in, cfg)
	if err != nil {
		return err
	}

	s.simpleKeyAllowed = false
	s.canBeJSONFlow = true

	s.tokens.push(Token{Type: QUOTED_SCALAR_TOKEN, Mark: mark, Value: value, Style: style})
	return nil
}

// scanBlockScalar scans a literal or folded block scalar, with its header.
func (s *Scanner) scanBlockScalar() error {
	in := s.in
	cfg := ScanScalarConfig{
		Indent:             1,
		DetectIndent:       true,
		Chomp:              CLIP_CHOMPING,
		OnTabInIndentation: THROW_ACTION,
	}

	mark := in.Mark()
	style := LITERAL_SCALAR_STYLE
	if in.Get() == exp.KeyFoldedScalar {
		cfg.Fold = FOLD_BLOCK
		style = FOLDED_SCALAR_STYLE
	}

	n := exp.Chomp.Match(in)
	for range n {
		switch c := in.Get(); {
		case c == '+':
			cfg.Chomp = KEEP_CHOMPING
		case c == '-':
			cfg.Chomp = STRIP_CHOMPING
		case c == '0':
			return newScannerError(in.Mark(), ErrZeroIndentInBlock)
		default:
			cfg.Indent = int(c - '0')
			cfg.DetectIndent = false
		}
	}

	for exp.Blank.Matches(in) {
		in.Eat()
	}
	if exp.Comment.Matches(in) {
		for in.More() && !exp.Break.Matches(in) {
			in.Eat()
		}
	}
	if in.More() && !exp.Break.Matches(in) {
		return newScannerError(in.Mark(), ErrCharInBlock)
	}

	if top := s.topIndentColumn(); top >= 0 {
		cfg.Indent += top
	}

	value, _, err := scanScalar(in, cfg)
	if err != nil {
		return err
	}

	// The scalar ended at the start of a line.
	s.simpleKeyAllowed = true
	s.canBeJSONFlow = false

	s.tokens.push(Token{Type: QUOTED_SCALAR_TOKEN, Mark: mark, Value: value, Style: style})
	return nil
}
