// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package exp

import (
	"strings"
	"testing"

	"github.com/yamlcore/yamlscan/internal/stream"
	"github.com/yamlcore/yamlscan/internal/testutil/assert"
)

func TestPrimitives(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		input   string
		want    int
	}{
		{"char match", Char('a'), "abc", 1},
		{"char mismatch", Char('a'), "bc", -1},
		{"char at end", Char('a'), "", -1},
		{"range low bound", Range('0', '9'), "0", 1},
		{"range high bound", Range('0', '9'), "9", 1},
		{"range outside", Range('0', '9'), "a", -1},
		{"empty at end", Empty(), "", 0},
		{"empty before input", Empty(), "x", -1},
		{"or first wins", Or(Seq(Char('a'), Char('b')), Char('a')), "ab", 2},
		{"or falls through", Or(Char('x'), Char('a')), "ab", 1},
		{"or no match", Or(Char('x'), Char('y')), "ab", -1},
		{"seq sums lengths", Seq(Char('a'), Char('b'), Char('c')), "abcd", 3},
		{"seq partial", Seq(Char('a'), Char('x')), "ab", -1},
		{"seq with empty", Seq(Char('a'), Empty()), "a", 1},
		{"not matches one", Not(Char('a')), "b", 1},
		{"not rejects", Not(Char('a')), "a", -1},
		{"not at end", Not(Char('a')), "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.pattern).MatchString(tt.input))
		})
	}
}

func TestLookahead(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher
		want    int
	}{
		{"Blank", Blank, 1},
		{"Break", Break, 2},
		{"BlankOrBreak", BlankOrBreak, 2},
		{"DocStart", DocStart, 5},
		{"DocIndicator", DocIndicator, 5},
		{"Value", Value, 3},
		{"Chomp", Chomp, 2},
		{"Hex escape", New(Seq(Char('%'), Hex, Hex)), 3},
		{"NotPrintable", NotPrintable, 2},
		{"ScanScalarEndInFlow", ScanScalarEndInFlow, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Lookahead())
		})
	}
}

func TestNewRejectsLongPatterns(t *testing.T) {
	p := Seq(DocStart, DocStart)
	assert.PanicMatches(t, `lookahead 10 exceeds window size 8`, func() { New(p) })
}

func TestRangeRejectsInvertedBounds(t *testing.T) {
	assert.PanicMatches(t, `invalid range`, func() { Range('z', 'a') })
}

func TestFragments(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher
		input   string
		want    int
	}{
		{"Break lf", Break, "\nx", 1},
		{"Break crlf", Break, "\r\nx", 2},
		{"Break lone cr", Break, "\rx", -1},
		{"Word dash", Word, "-", 1},
		{"Word underscore", Word, "_", -1},
		{"Hex upper", Hex, "F", 1},
		{"Hex out of range", Hex, "g", -1},
		{"NotPrintable nul", NotPrintable, "\x00", 1},
		{"NotPrintable c1", NotPrintable, "\xC2\x81", 2},
		{"NotPrintable nel", NotPrintable, "\xC2\x85", -1},
		{"NotPrintable letter", NotPrintable, "a", -1},
		{"Utf8ByteOrderMark", Utf8ByteOrderMark, "\xEF\xBB\xBFa", 3},
		{"DocStart space", DocStart, "--- a", 4},
		{"DocStart end", DocStart, "---", 3},
		{"DocStart crlf", DocStart, "---\r\n", 5},
		{"DocStart text", DocStart, "---a", -1},
		{"DocEnd", DocEnd, "...\n", 4},
		{"DocIndicator", DocIndicator, "...", 3},
		{"BlockEntry", BlockEntry, "- a", 2},
		{"BlockEntry end", BlockEntry, "-", 1},
		{"BlockEntry negative number", BlockEntry, "-1", -1},
		{"Key", Key, "? a", 2},
		{"Key at end", Key, "?", -1},
		{"Value", Value, ": a", 2},
		{"Value end", Value, ":", 1},
		{"Value in url", Value, "://", -1},
		{"ValueInFlow comma", ValueInFlow, ":,", 2},
		{"ValueInFlow brace", ValueInFlow, ":}", 2},
		{"ValueInFlow bracket", ValueInFlow, ":]", -1},
		{"ValueInJSONFlow", ValueInJSONFlow, ":x", 1},
		{"Anchor letter", Anchor, "a", 1},
		{"Anchor bracket", Anchor, "]", -1},
		{"Anchor blank", Anchor, " ", -1},
		{"AnchorEnd colon", AnchorEnd, ":", 1},
		{"AnchorEnd letter", AnchorEnd, "a", -1},
		{"URI percent", URI, "%2F", 3},
		{"URI bad percent", URI, "%zz", -1},
		{"URI bang", URI, "!", 1},
		{"Tag bang", Tag, "!", -1},
		{"Tag comma", Tag, ",", -1},
		{"PlainScalarCommon letter", PlainScalarCommon, "a", 1},
		{"PlainScalarCommon quote", PlainScalarCommon, "'", -1},
		{"PlainScalar dash", PlainScalar, "-a", 1},
		{"PlainScalar entry", PlainScalar, "- a", -1},
		{"PlainScalar indicator", PlainScalar, "&a", -1},
		{"PlainScalar colon end", PlainScalar, ":", -1},
		{"PlainScalarInFlow question", PlainScalarInFlow, "?a", -1},
		{"PlainScalarInFlow colon", PlainScalarInFlow, ":a", 1},
		{"PlainScalarInFlow colon break", PlainScalarInFlow, ":\n", 1},
		{"EndScalar", EndScalar, ": ", 2},
		{"EndScalarInFlow comma", EndScalarInFlow, ",", 1},
		{"EndScalarInFlow colon bracket", EndScalarInFlow, ":]", 2},
		{"ScanScalarEnd comment", ScanScalarEnd, " #", 2},
		{"ScanScalarEnd hash", ScanScalarEnd, "#", -1},
		{"EscSingleQuote", EscSingleQuote, "''", 2},
		{"EscBreak", EscBreak, "\\\r\n", 3},
		{"Chomp indicator digit", Chomp, "+2", 2},
		{"Chomp digit indicator", Chomp, "2-", 2},
		{"Chomp indicator", Chomp, "-", 1},
		{"Chomp digit", Chomp, "3", 1},
		{"Chomp none", Chomp, " ", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, tt.matcher.MatchString(tt.input), "MatchString(%q)", tt.input)
		})
	}
}

func TestMatchesByte(t *testing.T) {
	assert.True(t, Digit.MatchesByte('7'))
	assert.False(t, Digit.MatchesByte('x'))
	assert.True(t, BlockEntry.MatchesByte('-'))
}

func TestMatcherOnStream(t *testing.T) {
	in := stream.New(strings.NewReader("--- &a\n"), stream.ANY_ENCODING)
	assert.Equal(t, 4, DocStart.Match(in))
	in.EatN(4)
	assert.Equal(t, 1, Char(KeyAnchor).MatchAt(in.Lookahead(1), 0))
	in.Eat()
	assert.True(t, Anchor.Matches(in))
	in.Eat()
	assert.False(t, Anchor.Matches(in))
	assert.True(t, AnchorEnd.Matches(in))
	assert.Equal(t, 1, Break.Match(in))
}
