// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"io"
	"iter"
)

// Next removes and returns the next token. At the end of the stream it
// returns io.EOF.
func (s *Scanner) Next() (Token, error) {
	tok, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	t := *tok
	if err := s.Pop(); err != nil {
		return Token{}, err
	}
	return t, nil
}

// All returns an iterator over the remaining tokens. A scanning error is
// yielded once, and ends the iteration.
func (s *Scanner) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := s.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}
