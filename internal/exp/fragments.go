// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package exp

// anyOf matches any one of the characters in s.
func anyOf(s string) Pattern {
	ps := make([]Pattern, len(s))
	for i := range len(s) {
		ps[i] = Char(s[i])
	}
	return Or(ps...)
}

// Character classes.
var (
	Space        = New(Char(' '))
	Tab          = New(Char('\t'))
	Blank        = New(Or(Space, Tab))
	Break        = New(Or(Char('\n'), Seq(Char('\r'), Char('\n'))))
	BlankOrBreak = New(Or(Blank, Break))
	Digit        = New(Range('0', '9'))
	Alpha        = New(Or(Range('a', 'z'), Range('A', 'Z')))
	AlphaNumeric = New(Or(Alpha, Digit))
	Word         = New(Or(AlphaNumeric, Char('-')))
	Hex          = New(Or(Digit, Range('a', 'f'), Range('A', 'F')))

	// NotPrintable works on UTF-8 bytes, so C1 controls are matched by
	// their two byte encoding.
	NotPrintable = New(Or(
		anyOf("\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0B\x0C\x7F"),
		Range(0x0E, 0x1F),
		Seq(Char(0xC2), Or(Range(0x80, 0x84), Range(0x86, 0x9F))),
	))

	Utf8ByteOrderMark = New(Seq(Char(0xEF), Char(0xBB), Char(0xBF)))
)

var blankOrBreakOrEnd = Or(BlankOrBreak, Empty())

// Document markers.
var (
	DocStart     = New(Seq(Char('-'), Char('-'), Char('-'), blankOrBreakOrEnd))
	DocEnd       = New(Seq(Char('.'), Char('.'), Char('.'), blankOrBreakOrEnd))
	DocIndicator = New(Or(DocStart, DocEnd))
)

// Collection indicators.
var (
	BlockEntry      = New(Seq(Char('-'), blankOrBreakOrEnd))
	Key             = New(Seq(Char('?'), BlankOrBreak))
	KeyInFlow       = New(Seq(Char('?'), BlankOrBreak))
	Value           = New(Seq(Char(':'), blankOrBreakOrEnd))
	ValueInFlow     = New(Seq(Char(':'), Or(BlankOrBreak, Char(','), Char('}'))))
	ValueInJSONFlow = New(Char(':'))
	Comment         = New(Char('#'))
)

// Anchors and tags.
var (
	Anchor    = New(Not(Or(anyOf("[]{},"), BlankOrBreak)))
	AnchorEnd = New(Or(anyOf("?:,]}%@`"), BlankOrBreak))
	URI       = New(Or(Word, anyOf("#;/?:@&=+$,_.!~*'()[]"), Seq(Char('%'), Hex, Hex)))
	Tag       = New(Or(Word, anyOf("#;/?:@&=+$_.~*'()"), Seq(Char('%'), Hex, Hex)))
)

// Plain scalars:
//   - cannot start with a blank or any of , [ ] { } # & * ! | > ' " % @ `
//   - in the block context - ? : must not be followed by a blank
//   - in the flow context ? is illegal and - : must not be followed by a blank
var (
	plainScalarIllegal = Or(BlankOrBreak, anyOf(",[]{}#&*!|>'\"%@`"))

	PlainScalarCommon = New(Not(plainScalarIllegal))
	PlainScalar       = New(Not(Or(
		plainScalarIllegal,
		Seq(anyOf("-?:"), blankOrBreakOrEnd),
	)))
	PlainScalarInFlow = New(Not(Or(
		plainScalarIllegal,
		Char('?'),
		Seq(anyOf("-:"), Blank),
	)))

	EndScalar       = New(Seq(Char(':'), blankOrBreakOrEnd))
	EndScalarInFlow = New(Or(
		Seq(Char(':'), Or(BlankOrBreak, Empty(), anyOf(",]}"))),
		anyOf(",?[]{}"),
	))

	// ScanScalarEnd ends a plain scalar: a value indicator or a comment.
	ScanScalarEnd       = New(Or(EndScalar, Seq(BlankOrBreak, Comment)))
	ScanScalarEndInFlow = New(Or(EndScalarInFlow, Seq(BlankOrBreak, Comment)))
)

// Quoted and block scalars.
var (
	EscSingleQuote = New(Seq(Char('\''), Char('\'')))
	EscBreak       = New(Seq(Char('\\'), Break))

	ChompIndicator = New(anyOf("+-"))
	Chomp          = New(Or(
		Seq(ChompIndicator, Digit),
		Seq(Digit, ChompIndicator),
		ChompIndicator,
		Digit,
	))
)

// Indicator characters.
const (
	KeyDirective        = '%'
	KeyFlowSeqStart     = '['
	KeyFlowSeqEnd       = ']'
	KeyFlowMapStart     = '{'
	KeyFlowMapEnd       = '}'
	KeyFlowEntry        = ','
	KeyAlias            = '*'
	KeyAnchor           = '&'
	KeyTag              = '!'
	KeyLiteralScalar    = '|'
	KeyFoldedScalar     = '>'
	KeyVerbatimTagStart = '<'
	KeyVerbatimTagEnd   = '>'
)
