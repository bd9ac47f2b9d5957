// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"bytes"

	"github.com/yamlcore/yamlscan/internal/exp"
	"github.com/yamlcore/yamlscan/internal/stream"
)

// Chomping is what happens to the line breaks at the end of a scalar.
type Chomping int8

const (
	STRIP_CHOMPING Chomping = iota - 1 // Remove them all.
	CLIP_CHOMPING                      // Keep at most one.
	KEEP_CHOMPING                      // Keep them all.
)

// Folding is how line breaks inside a scalar are converted.
type Folding int8

const (
	DONT_FOLD  Folding = iota // Keep line breaks as they are.
	FOLD_BLOCK                // Folded block scalar rules.
	FOLD_FLOW                 // Flow scalar rules.
)

// Action is the policy applied when the scalar meets a document indicator
// or a tab in its indentation.
type Action int8

const (
	NO_ACTION    Action = iota // Carry on.
	BREAK_ACTION               // End the scalar there.
	THROW_ACTION               // Fail with a scanner error.
)

// ScanScalarConfig describes how to scan one scalar.
type ScanScalarConfig struct {
	End                  exp.Matcher // What ends the scalar; end of input if unset.
	EatEnd               bool        // Consume the end match.
	Indent               int         // Indentation to strip from each line.
	DetectIndent         bool        // Take the indentation from the first non-empty line.
	EatLeadingWhitespace bool        // Strip blanks past the indentation too.
	Escape               byte        // '\\', '\'' or 0 for no escaping.
	Fold                 Folding
	TrimTrailingSpaces   bool
	Chomp                Chomping
	OnDocIndicator       Action
	OnTabInIndentation   Action
}

var endOfInput = exp.New(exp.Empty())

type lineStatus int8

const (
	lineContinue lineStatus = iota
	lineDone
)

type scalarScanner struct {
	in  *stream.Stream
	cfg ScanScalarConfig

	value []byte

	foundNonEmptyLine bool
	pastOpeningBreak  bool
	emptyLine         bool
	moreIndented      bool

	foldedNewlineCount               int
	foldedNewlineStartedMoreIndented bool

	// Nothing before this offset of value may be trimmed or chomped.
	lastEscapedChar int

	leadingSpaces bool
	endFound      bool
}

// scanScalar scans a scalar from in. It returns the processed value and
// whether the scalar ended because a line was indented less than required,
// that is with the input at the start of a new line.
func scanScalar(in *stream.Stream, cfg ScanScalarConfig) (string, bool, error) {
	if cfg.End.Pattern == nil {
		cfg.End = endOfInput
	}
	sc := scalarScanner{
		in:               in,
		cfg:              cfg,
		pastOpeningBreak: cfg.Fold == FOLD_FLOW,
	}
	status := lineContinue
	for in.More() && status == lineContinue {
		var err error
		if status, err = sc.scanLine(); err != nil {
			return "", false, err
		}
	}
	// The input can run out right after a line break.
	if cfg.EatEnd && !sc.endFound {
		return "", false, newScannerError(in.Mark(), ErrEOFInScalar)
	}
	return sc.finish(), sc.leadingSpaces, nil
}

// scanLine scans up to the end of the current line, then the line break and
// the indentation of the next line.
func (sc *scalarScanner) scanLine() (lineStatus, error) {
	in, cfg := sc.in, &sc.cfg

	lastNonWhitespace := len(sc.value)
	escapedNewline := false
	for !cfg.End.Matches(in) && !exp.Break.Matches(in) {
		if !in.More() {
			break
		}
		if in.Mark().Column == 0 && exp.DocIndicator.Matches(in) {
			if cfg.OnDocIndicator == BREAK_ACTION {
				break
			}
			if cfg.OnDocIndicator == THROW_ACTION {
				return lineDone, newScannerError(in.Mark(), ErrDocInScalar)
			}
		}

		sc.foundNonEmptyLine = true
		sc.pastOpeningBreak = true

		// Keep the trailing blanks before an escaped line break.
		if cfg.Escape == '\\' && exp.EscBreak.Matches(in) {
			in.Get()
			lastNonWhitespace = len(sc.value)
			sc.lastEscapedChar = len(sc.value)
			escapedNewline = true
			break
		}

		if cfg.Escape != 0 && in.Peek() == cfg.Escape {
			s, err := escape(in)
			if err != nil {
				return lineDone, err
			}
			sc.value = append(sc.value, s...)
			lastNonWhitespace = len(sc.value)
			sc.lastEscapedChar = len(sc.value)
			continue
		}

		c := in.Get()
		sc.value = append(sc.value, c)
		if c != ' ' && c != '\t' {
			lastNonWhitespace = len(sc.value)
		}
	}

	if !in.More() {
		if cfg.EatEnd {
			return lineDone, newScannerError(in.Mark(), ErrEOFInScalar)
		}
		return lineDone, nil
	}
	if cfg.OnDocIndicator == BREAK_ACTION && in.Mark().Column == 0 && exp.DocIndicator.Matches(in) {
		return lineDone, nil
	}
	if n := cfg.End.Match(in); n >= 0 {
		if cfg.EatEnd {
			in.EatN(n)
		}
		sc.endFound = true
		return lineDone, nil
	}

	if cfg.Fold == FOLD_FLOW {
		sc.value = sc.value[:lastNonWhitespace]
	}

	in.EatBreak()

	// The required indentation first, then the rest of the blanks.
	for in.Peek() == ' ' && (in.Mark().Column < cfg.Indent || cfg.DetectIndent && !sc.foundNonEmptyLine) && !cfg.End.Matches(in) {
		in.Eat()
	}
	if cfg.DetectIndent && !sc.foundNonEmptyLine {
		cfg.Indent = max(cfg.Indent, in.Mark().Column)
	}
	for exp.Blank.Matches(in) {
		if in.Peek() == '\t' && in.Mark().Column < cfg.Indent {
			switch cfg.OnTabInIndentation {
			case THROW_ACTION:
				return lineDone, newScannerError(in.Mark(), ErrTabInIndentation)
			case BREAK_ACTION:
				sc.leadingSpaces = true
				return lineDone, nil
			}
		}
		if !cfg.EatLeadingWhitespace || cfg.End.Matches(in) {
			break
		}
		in.Eat()
	}

	nextEmptyLine := exp.Break.Matches(in)
	nextMoreIndented := exp.Blank.Matches(in)
	if cfg.Fold == FOLD_BLOCK && sc.foldedNewlineCount == 0 && nextEmptyLine {
		sc.foldedNewlineStartedMoreIndented = sc.moreIndented
	}

	// A block scalar starts with the break ending its header line, which
	// is neither folded nor kept.
	if sc.pastOpeningBreak {
		sc.foldBreak(nextEmptyLine, nextMoreIndented, escapedNewline)
	}

	sc.emptyLine = nextEmptyLine
	sc.moreIndented = nextMoreIndented
	sc.pastOpeningBreak = true

	if !sc.emptyLine && in.Mark().Column < cfg.Indent {
		sc.leadingSpaces = true
		return lineDone, nil
	}
	return lineContinue, nil
}

func (sc *scalarScanner) foldBreak(nextEmptyLine, nextMoreIndented, escapedNewline bool) {
	switch sc.cfg.Fold {
	case DONT_FOLD:
		sc.value = append(sc.value, '\n')

	case FOLD_BLOCK:
		switch {
		case !sc.emptyLine && !nextEmptyLine && !sc.moreIndented && !nextMoreIndented && sc.in.Mark().Column >= sc.cfg.Indent:
			sc.value = append(sc.value, ' ')
		case nextEmptyLine:
			sc.foldedNewlineCount++
		default:
			sc.value = append(sc.value, '\n')
		}
		if !nextEmptyLine && sc.foldedNewlineCount > 0 {
			sc.value = append(sc.value, bytes.Repeat([]byte{'\n'}, sc.foldedNewlineCount-1)...)
			if sc.foldedNewlineStartedMoreIndented || nextMoreIndented || !sc.foundNonEmptyLine {
				sc.value = append(sc.value, '\n')
			}
			sc.foldedNewlineCount = 0
		}

	case FOLD_FLOW:
		if nextEmptyLine {
			sc.value = append(sc.value, '\n')
		} else if !sc.emptyLine && !escapedNewline {
			sc.value = append(sc.value, ' ')
		}
	}
}

// finish trims trailing blanks and chomps trailing line breaks.
func (sc *scalarScanner) finish() string {
	v := sc.value
	if sc.cfg.TrimTrailingSpaces {
		v = v[:max(len(bytes.TrimRight(v, " \t")), sc.lastEscapedChar)]
	}
	end := max(len(bytes.TrimRight(v, "\n")), sc.lastEscapedChar)
	switch sc.cfg.Chomp {
	case STRIP_CHOMPING:
		v = v[:end]
	case CLIP_CHOMPING:
		if end == 0 {
			v = v[:0]
		} else if end < len(v) {
			v = v[:end+1]
		}
	}
	return string(v)
}
