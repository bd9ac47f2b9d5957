// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package exp matches grammar fragments against a bounded lookahead window.
//
// Patterns are built from three primitives (a single character, an
// inclusive character range and end of input) and three combinators (Or,
// Seq and Not). Every pattern knows how many characters of lookahead it
// needs; a [Matcher] computes that once and refuses patterns that do not fit
// in a [stream.Window].
//
// A match never consumes input. It returns the number of characters the
// fragment covers, or -1 if it does not match; callers decide what to eat.
package exp

import (
	"fmt"

	"github.com/yamlcore/yamlscan/internal/stream"
)

// Pattern is a composable grammar fragment.
type Pattern interface {
	// MatchAt matches the fragment at w[pos:] and returns the matched
	// length, or -1.
	MatchAt(w *stream.Window, pos int) int
	// Lookahead returns the number of characters MatchAt may inspect.
	Lookahead() int
}

type charPattern byte

// Char matches the character c.
func Char(c byte) Pattern {
	return charPattern(c)
}

func (p charPattern) MatchAt(w *stream.Window, pos int) int {
	if pos < len(w) && w[pos] == byte(p) {
		return 1
	}
	return -1
}

func (charPattern) Lookahead() int { return 1 }

type rangePattern struct {
	lo, hi byte
}

// Range matches any character from lo to hi inclusive.
func Range(lo, hi byte) Pattern {
	if lo > hi {
		panic(fmt.Sprintf("exp: invalid range %q-%q", lo, hi))
	}
	return rangePattern{lo, hi}
}

func (p rangePattern) MatchAt(w *stream.Window, pos int) int {
	if pos < len(w) && w[pos] >= p.lo && w[pos] <= p.hi {
		return 1
	}
	return -1
}

func (rangePattern) Lookahead() int { return 1 }

type emptyPattern struct{}

// Empty matches the end of input, with length 0.
func Empty() Pattern {
	return emptyPattern{}
}

func (emptyPattern) MatchAt(w *stream.Window, pos int) int {
	if pos >= len(w) || w[pos] == stream.EOF {
		return 0
	}
	return -1
}

func (emptyPattern) Lookahead() int { return 1 }

type orPattern []Pattern

// Or matches the first of ps that matches, trying them from left to right.
func Or(ps ...Pattern) Pattern {
	return orPattern(ps)
}

func (p orPattern) MatchAt(w *stream.Window, pos int) int {
	for _, alt := range p {
		if n := alt.MatchAt(w, pos); n >= 0 {
			return n
		}
	}
	return -1
}

func (p orPattern) Lookahead() int {
	n := 0
	for _, alt := range p {
		n = max(n, alt.Lookahead())
	}
	return n
}

type seqPattern []Pattern

// Seq matches each of ps in turn, one right after the other.
func Seq(ps ...Pattern) Pattern {
	return seqPattern(ps)
}

func (p seqPattern) MatchAt(w *stream.Window, pos int) int {
	total := 0
	for _, part := range p {
		n := part.MatchAt(w, pos+total)
		if n < 0 {
			return -1
		}
		total += n
	}
	return total
}

func (p seqPattern) Lookahead() int {
	n := 0
	for _, part := range p {
		n += part.Lookahead()
	}
	return n
}

type notPattern struct {
	p Pattern
}

// Not matches a single character where p does not match.
func Not(p Pattern) Pattern {
	return notPattern{p}
}

func (p notPattern) MatchAt(w *stream.Window, pos int) int {
	if p.p.MatchAt(w, pos) >= 0 {
		return -1
	}
	return 1
}

func (p notPattern) Lookahead() int { return p.p.Lookahead() }

// Source provides the lookahead window a Matcher runs against.
type Source interface {
	Lookahead(n int) *stream.Window
}

// Matcher is a pattern checked to fit the lookahead window. Matchers are
// patterns themselves and can be composed further.
type Matcher struct {
	Pattern
	lookahead int
}

// New returns a Matcher for p. It panics if p needs more lookahead than a
// window holds.
func New(p Pattern) Matcher {
	n := p.Lookahead()
	if n > stream.WindowSize {
		panic(fmt.Sprintf("exp: pattern lookahead %d exceeds window size %d", n, stream.WindowSize))
	}
	return Matcher{Pattern: p, lookahead: n}
}

// Lookahead returns the lookahead computed by New.
func (m Matcher) Lookahead() int {
	return m.lookahead
}

// Match matches at the current position of src.
func (m Matcher) Match(src Source) int {
	return m.MatchAt(src.Lookahead(m.lookahead), 0)
}

// Matches reports whether the pattern matches at the current position of src.
func (m Matcher) Matches(src Source) bool {
	return m.Match(src) >= 0
}

// MatchString matches at the start of s. Characters past the end of s read
// as end of input.
func (m Matcher) MatchString(s string) int {
	var w stream.Window
	n := copy(w[:], s)
	for i := n; i < len(w); i++ {
		w[i] = stream.EOF
	}
	return m.MatchAt(&w, 0)
}

// MatchesString reports whether the pattern matches at the start of s.
func (m Matcher) MatchesString(s string) bool {
	return m.MatchString(s) >= 0
}

// MatchesByte reports whether the pattern matches the single character c.
func (m Matcher) MatchesByte(c byte) bool {
	return m.MatchString(string([]byte{c})) >= 0
}
