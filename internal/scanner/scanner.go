// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package scanner turns a YAML character stream into tokens.
//
// The scanner is pulled by its consumer: tokens are only scanned from
// within Empty, Peek and Pop, one grammar production at a time. Tokens that
// may turn out to be part of a simple key are held back until the key is
// resolved, so the consumer never sees a token that is later withdrawn.
//
// The first error, lexical or from the reader, stops the scanner for good:
// every later call returns it again.
package scanner

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/yamlcore/yamlscan/internal/exp"
	"github.com/yamlcore/yamlscan/internal/metrics"
	"github.com/yamlcore/yamlscan/internal/stream"
	"github.com/yamlcore/yamlscan/option"
)

type flowMarker int8

const (
	flowSeq flowMarker = iota
	flowMap
)

// Scanner produces the tokens of a YAML stream.
type Scanner struct {
	in *stream.Stream

	log     logrus.FieldLogger
	debug   bool
	metrics *metrics.Metrics

	maxSimpleKeyLength int

	tokens tokenQueue
	err    error

	startedStream  bool
	endedStream    bool
	contentStarted bool

	simpleKeyAllowed bool
	canBeJSONFlow    bool

	simpleKeys  []simpleKey
	indents     []indentMarker // Every indent referenced by the stack or a simple key.
	indentStack []int
	flows       []flowMarker
}

// New returns a scanner reading from r. A nil cfg uses the defaults.
func New(r io.Reader, cfg *option.Config) *Scanner {
	if cfg == nil {
		cfg = option.NewConfig()
	}
	log := cfg.GetLogger()
	return &Scanner{
		in:                 stream.New(r, cfg.GetEncoding()),
		log:                log,
		debug:              debugEnabled(log),
		metrics:            cfg.GetMetrics(),
		maxSimpleKeyLength: cfg.GetMaxSimpleKeyLength(),
	}
}

func debugEnabled(log logrus.FieldLogger) bool {
	switch l := log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return true
}

// Encoding returns the encoding of the input.
func (s *Scanner) Encoding() stream.Encoding {
	return s.in.Encoding()
}

// Mark returns the current position in the input.
func (s *Scanner) Mark() Mark {
	return s.in.Mark()
}

// Empty reports whether all tokens have been delivered.
func (s *Scanner) Empty() (bool, error) {
	if err := s.ensureTokensInQueue(); err != nil {
		return true, err
	}
	return s.tokens.len() == 0, nil
}

// Peek returns the next token without removing it. The token stays valid
// until the next call to Pop. At the end of the stream Peek returns io.EOF.
func (s *Scanner) Peek() (*Token, error) {
	if err := s.ensureTokensInQueue(); err != nil {
		return nil, err
	}
	if s.tokens.len() == 0 {
		return nil, io.EOF
	}
	return s.tokens.at(s.tokens.front()), nil
}

// Pop removes the next token. At the end of the stream Pop returns
// ErrNoToken.
func (s *Scanner) Pop() error {
	tok, err := s.Peek()
	if err == io.EOF {
		return ErrNoToken
	}
	if err != nil {
		return err
	}
	s.metrics.ObserveToken(tok.Type.String())
	if s.debug {
		s.log.WithFields(logrus.Fields{
			"kind":   tok.Type,
			"line":   tok.Mark.Line + 1,
			"column": tok.Mark.Column + 1,
		}).Debug("token")
	}
	s.tokens.pop()
	return nil
}

// ensureTokensInQueue scans until the front token is valid or the stream
// has ended. Invalid tokens at the front are dropped; an unverified front
// token means a simple key is still pending, so scanning goes on.
func (s *Scanner) ensureTokensInQueue() error {
	for s.err == nil {
		if s.tokens.len() > 0 {
			switch s.tokens.at(s.tokens.front()).status {
			case tokenValid:
				return nil
			case tokenInvalid:
				s.tokens.pop()
				continue
			}
		}
		if s.endedStream {
			return nil
		}
		if err := s.scanNextToken(); err != nil {
			s.fail(err)
		}
	}
	return s.err
}

// fail stops the scanner. A reader error takes precedence, since it is
// what made the input look malformed.
func (s *Scanner) fail(err error) {
	if rerr := s.in.Err(); rerr != nil {
		err = rerr
	}
	s.err = err

	typ := metrics.ScannerError
	var rerr stream.ReaderError
	if errors.As(err, &rerr) {
		typ = metrics.ReaderError
	}
	s.metrics.ObserveError(typ)
	s.log.WithError(err).Debug("scan failed")
}

// scanNextToken runs the production matching the input.
func (s *Scanner) scanNextToken() error {
	if s.endedStream {
		return nil
	}
	if !s.startedStream {
		s.startStream()
		return nil
	}

	s.scanToNextToken()
	s.popIndentToHere()

	in := s.in
	if !in.More() {
		return s.endStream()
	}

	c := in.Peek()
	atLineStart := in.Mark().Column == 0

	if atLineStart && c == exp.KeyDirective {
		if s.contentStarted {
			return newScannerError(in.Mark(), ErrDirectiveAfterContent)
		}
		return s.scanDirective()
	}
	if atLineStart && exp.DocEnd.Matches(in) {
		s.contentStarted = false
		return s.scanDocEnd()
	}
	s.contentStarted = true

	switch {
	case atLineStart && exp.DocStart.Matches(in):
		return s.scanDocStart()

	case c == exp.KeyFlowSeqStart || c == exp.KeyFlowMapStart:
		return s.scanFlowStart()
	case c == exp.KeyFlowSeqEnd || c == exp.KeyFlowMapEnd:
		return s.scanFlowEnd()
	case c == exp.KeyFlowEntry:
		return s.scanFlowEntry()

	case exp.BlockEntry.Matches(in):
		return s.scanBlockEntry()
	case s.keyMatcher().Matches(in):
		return s.scanKey()
	case s.valueMatcher().Matches(in):
		return s.scanValue()

	case c == exp.KeyAlias || c == exp.KeyAnchor:
		return s.scanAnchorOrAlias()
	case c == exp.KeyTag:
		return s.scanTag()

	case s.inBlockContext() && (c == exp.KeyLiteralScalar || c == exp.KeyFoldedScalar):
		return s.scanBlockScalar()
	case c == '\'' || c == '"':
		return s.scanQuotedScalar()
	case s.plainScalarMatcher().Matches(in):
		return s.scanPlainScalar()
	}
	return newScannerError(in.Mark(), ErrUnknownToken)
}

func (s *Scanner) keyMatcher() exp.Matcher {
	if s.inBlockContext() {
		return exp.Key
	}
	return exp.KeyInFlow
}

func (s *Scanner) valueMatcher() exp.Matcher {
	switch {
	case s.inBlockContext():
		return exp.Value
	case s.canBeJSONFlow:
		return exp.ValueInJSONFlow
	}
	return exp.ValueInFlow
}

func (s *Scanner) plainScalarMatcher() exp.Matcher {
	if s.inBlockContext() {
		return exp.PlainScalar
	}
	return exp.PlainScalarInFlow
}

// scanToNextToken skips blanks, comments and line breaks.
func (s *Scanner) scanToNextToken() {
	in := s.in
	for {
		for c := in.Peek(); c == ' ' || c == '\t'; c = in.Peek() {
			// A tab in the indentation rules out a simple key on this line.
			if c == '\t' && s.inBlockContext() {
				s.simpleKeyAllowed = false
			}
			in.Eat()
		}

		if in.Mark().Column == 0 && exp.Utf8ByteOrderMark.Matches(in) {
			in.EatN(3)
			in.ResetColumn()
			continue
		}

		if exp.Comment.Matches(in) {
			for in.More() && !exp.Break.Matches(in) {
				in.Eat()
			}
		}

		if !exp.Break.Matches(in) {
			return
		}
		in.EatBreak()

		// A simple key cannot span lines, and a new line may start one.
		s.invalidateSimpleKey()
		if s.inBlockContext() {
			s.simpleKeyAllowed = true
		}
	}
}

func (s *Scanner) startStream() {
	s.startedStream = true
	s.simpleKeyAllowed = true
	s.indents = append(s.indents[:0], indentMarker{column: -1, kind: noneIndent, startToken: -1})
	s.indentStack = append(s.indentStack[:0], 0)
}

func (s *Scanner) endStream() error {
	if err := s.in.Err(); err != nil {
		return err
	}
	// The stream ends on a line of its own.
	if s.in.Mark().Column > 0 {
		s.in.ResetColumn()
	}
	s.popAllIndents()
	s.popAllSimpleKeys()
	s.simpleKeyAllowed = false
	s.endedStream = true
	s.metrics.ObserveInput(s.in.Mark().Offset)
	return nil
}

func (s *Scanner) inFlowContext() bool {
	return len(s.flows) > 0
}

func (s *Scanner) inBlockContext() bool {
	return len(s.flows) == 0
}

func (s *Scanner) flowLevel() int {
	return len(s.flows)
}
