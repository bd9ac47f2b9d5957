// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package stream decodes raw YAML input into a uniform UTF-8 character
// stream with lookahead and position tracking.
//
// Whatever the input encoding, the stream hands out the UTF-8 bytes of the
// decoded text. Reading past the end of the input yields the [EOF] sentinel,
// which cannot occur in valid input since it is a control character.
package stream

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const (
	// EOF is returned by every accessor once the input is exhausted.
	EOF byte = 0x04

	// WindowSize is the largest lookahead a pattern may request.
	WindowSize = 8

	chunkSize = 4096
)

// Window holds the next WindowSize characters of the stream, padded with
// EOF past the end of the input.
type Window [WindowSize]byte

// Mark is a position in the decoded stream. All fields are zero based.
type Mark struct {
	Offset int // Byte offset in the decoded stream.
	Line   int
	Column int // Counted in characters, not bytes.
}

func (m Mark) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line+1, m.Column+1)
}

// Stream is a decoding character stream.
type Stream struct {
	r   io.Reader
	enc Encoding

	started   bool
	raw       []byte // Raw input not yet decoded.
	rawPos    int
	rawOffset int // Input offset of raw[0].
	rawEOF    bool

	buf  []byte // Decoded UTF-8 text.
	pos  int
	mark Mark
	err  error

	win    Window
	winOff int // Stream offset the window was built at, -1 if none.
	winLen int // Number of window bytes taken from the buffer.
}

// New returns a stream reading from r. If enc is ANY_ENCODING the encoding
// is detected from the start of the input.
func New(r io.Reader, enc Encoding) *Stream {
	return &Stream{
		r:      r,
		enc:    enc,
		winOff: -1,
	}
}

// Encoding returns the encoding of the input, detecting it if needed.
func (s *Stream) Encoding() Encoding {
	s.start()
	return s.enc
}

// Err returns the first read or decode error, if any.
func (s *Stream) Err() error {
	return s.err
}

// Mark returns the current position.
func (s *Stream) Mark() Mark {
	return s.mark
}

// More reports whether characters remain.
func (s *Stream) More() bool {
	return s.fill(1)
}

// Peek returns the current character without consuming it.
func (s *Stream) Peek() byte {
	return s.CharAt(0)
}

// CharAt returns the character i positions ahead of the current one.
func (s *Stream) CharAt(i int) byte {
	if !s.fill(i + 1) {
		return EOF
	}
	return s.buf[s.pos+i]
}

// Lookahead returns a window starting at the current character that holds
// at least the next n characters.
func (s *Stream) Lookahead(n int) *Window {
	if n > WindowSize {
		panic(fmt.Sprintf("stream: lookahead of %d exceeds window size %d", n, WindowSize))
	}
	s.fill(n)
	want := min(len(s.buf)-s.pos, WindowSize)
	off := s.mark.Offset
	if s.winOff == off && s.winLen >= want {
		return &s.win
	}
	kept := 0
	if d := off - s.winOff; s.winOff >= 0 && d > 0 && d < s.winLen {
		kept = copy(s.win[:], s.win[d:s.winLen])
	}
	n = kept + copy(s.win[kept:want], s.buf[s.pos+kept:s.pos+want])
	for i := n; i < WindowSize; i++ {
		s.win[i] = EOF
	}
	s.winOff, s.winLen = off, n
	return &s.win
}

// Get consumes and returns the current character.
func (s *Stream) Get() byte {
	if !s.More() {
		return EOF
	}
	c := s.buf[s.pos]
	s.advance()
	if c == '\n' {
		s.mark.Line++
		s.mark.Column = 0
	}
	return c
}

// GetN consumes n characters and returns them.
func (s *Stream) GetN(n int) string {
	b := make([]byte, 0, n)
	for i := 0; i < n && s.More(); i++ {
		b = append(b, s.Get())
	}
	return string(b)
}

// Eat consumes the current character. It must not be called on a line
// break; use EatBreak for those.
func (s *Stream) Eat() {
	if c := s.Peek(); c == '\n' || c == '\r' && s.CharAt(1) == '\n' {
		panic(fmt.Sprintf("stream: Eat called on a line break at %s", s.mark))
	}
	if s.More() {
		s.advance()
	}
}

// EatN consumes n characters, line breaks included.
func (s *Stream) EatN(n int) {
	for i := 0; i < n && s.More(); i++ {
		s.Get()
	}
}

// EatBreak consumes a line break and returns its length, or 0 if the
// current character does not start one.
func (s *Stream) EatBreak() int {
	n := 0
	switch {
	case s.Peek() == '\n':
		n = 1
	case s.Peek() == '\r' && s.CharAt(1) == '\n':
		n = 2
	default:
		return 0
	}
	for range n {
		s.advance()
	}
	s.mark.Line++
	s.mark.Column = 0
	return n
}

// ResetColumn moves the column of the current position back to 0.
func (s *Stream) ResetColumn() {
	s.mark.Column = 0
}

func (s *Stream) advance() {
	c := s.buf[s.pos]
	s.pos++
	s.mark.Offset++
	if !isContinuation(c) {
		s.mark.Column++
	}
	if s.pos > chunkSize && s.pos*2 > len(s.buf) {
		n := copy(s.buf, s.buf[s.pos:])
		s.buf = s.buf[:n]
		s.pos = 0
	}
}

func isContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// fill makes sure n decoded bytes are available, unless the input ends or
// fails first.
func (s *Stream) fill(n int) bool {
	for len(s.buf)-s.pos < n {
		if !s.decode() {
			return false
		}
	}
	return true
}

// start determines the encoding and skips the byte order mark.
func (s *Stream) start() {
	if s.started {
		return
	}
	s.started = true
	for !s.rawEOF && len(s.raw)-s.rawPos < 4 {
		s.readRaw()
	}
	p := s.raw[s.rawPos:]
	if s.enc == ANY_ENCODING {
		enc, bom := detectEncoding(p)
		s.enc = enc
		s.rawPos += bom
		return
	}
	if bom := s.enc.bom(); bytes.HasPrefix(p, bom) {
		s.rawPos += len(bom)
	}
}

// decode converts buffered raw input to UTF-8, reading more input when no
// complete character is buffered. It reports whether anything was decoded.
func (s *Stream) decode() bool {
	s.start()
	n := len(s.buf)
	for len(s.buf) == n {
		for s.rawPos < len(s.raw) {
			r, width, status := s.enc.decodeRune(s.raw[s.rawPos:])
			if status == decodeShort {
				break
			}
			offset := s.rawOffset + s.rawPos
			if status == decodeInvalid {
				s.setError(offset, int(s.raw[s.rawPos]), ErrInvalidSequence)
				s.raw = s.raw[:s.rawPos]
				return len(s.buf) > n
			}
			if !isPrintable(r) {
				s.setError(offset, int(r), ErrControlCharacter)
				s.raw = s.raw[:s.rawPos]
				return len(s.buf) > n
			}
			s.rawPos += width
			s.buf = utf8.AppendRune(s.buf, r)
		}
		if len(s.buf) > n {
			break
		}
		if s.rawEOF {
			if s.rawPos < len(s.raw) {
				s.setError(s.rawOffset+s.rawPos, int(s.raw[s.rawPos]), ErrIncompleteSequence)
				s.raw = s.raw[:s.rawPos]
			}
			return false
		}
		if !s.readRaw() {
			return false
		}
	}
	return true
}

// readRaw reads the next chunk of raw input.
func (s *Stream) readRaw() bool {
	if s.rawPos > 0 {
		n := copy(s.raw, s.raw[s.rawPos:])
		s.raw = s.raw[:n]
		s.rawOffset += s.rawPos
		s.rawPos = 0
	}
	if cap(s.raw)-len(s.raw) < chunkSize {
		raw := make([]byte, len(s.raw), len(s.raw)+chunkSize)
		copy(raw, s.raw)
		s.raw = raw
	}
	n, err := s.r.Read(s.raw[len(s.raw) : len(s.raw)+chunkSize])
	s.raw = s.raw[:len(s.raw)+n]
	switch {
	case err == io.EOF:
		s.rawEOF = true
	case err != nil:
		s.setError(s.rawOffset+len(s.raw), -1, errors.Wrap(err, "read input"))
		return false
	}
	return true
}

// setError records the first failure; the stream then ends after the
// characters decoded so far.
func (s *Stream) setError(offset, value int, err error) {
	if s.err == nil {
		s.err = ReaderError{Offset: offset, Value: value, Err: err}
	}
	s.rawEOF = true
}
