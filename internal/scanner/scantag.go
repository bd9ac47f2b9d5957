// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"github.com/yamlcore/yamlscan/internal/exp"
)

// scanTag scans a tag. The token is classified as:
//
//	!<uri>          VERBATIM_TAG,         Value "uri"
//	!local          PRIMARY_HANDLE_TAG,   Value "local"
//	!!suffix        SECONDARY_HANDLE_TAG, Value "suffix"
//	!handle!suffix  NAMED_HANDLE_TAG,     Value "handle", Params ["suffix"]
//	!               NON_SPECIFIC_TAG
func (s *Scanner) scanTag() error {
	s.insertPotentialSimpleKey()
	s.simpleKeyAllowed = false
	s.canBeJSONFlow = false

	in := s.in
	tok := Token{Type: TAG_TOKEN, Mark: in.Mark()}
	in.Get()

	if in.Peek() == exp.KeyVerbatimTagStart {
		uri, err := s.scanVerbatimTag()
		if err != nil {
			return err
		}
		tok.Value = uri
		tok.Tag = VERBATIM_TAG
		s.tokens.push(tok)
		return nil
	}

	handle, canBeHandle, err := s.scanTagHandle()
	if err != nil {
		return err
	}

	switch {
	case canBeHandle && in.Peek() == exp.KeyTag:
		in.Get()
		suffix, err := s.scanTagSuffix()
		if err != nil {
			return err
		}
		if handle == "" {
			tok.Value = suffix
			tok.Tag = SECONDARY_HANDLE_TAG
		} else {
			tok.Value = handle
			tok.Params = []string{suffix}
			tok.Tag = NAMED_HANDLE_TAG
		}
	case handle == "":
		tok.Tag = NON_SPECIFIC_TAG
	default:
		tok.Value = handle
		tok.Tag = PRIMARY_HANDLE_TAG
	}

	s.tokens.push(tok)
	return nil
}

// scanVerbatimTag scans <uri>, after the '!'.
func (s *Scanner) scanVerbatimTag() (string, error) {
	in := s.in
	in.Get()

	var uri []byte
	for in.More() {
		if in.Peek() == exp.KeyVerbatimTagEnd {
			in.Get()
			return string(uri), nil
		}
		n := exp.URI.Match(in)
		if n <= 0 {
			break
		}
		uri = append(uri, in.GetN(n)...)
	}
	return "", newScannerError(in.Mark(), ErrEndOfVerbatimTag)
}

// scanTagHandle scans the text after the leading '!'. The text can only be
// the handle of a !handle!suffix tag while it consists of word characters;
// after that it is a local tag, and a further '!' is an error.
func (s *Scanner) scanTagHandle() (string, bool, error) {
	in := s.in

	var tag []byte
	canBeHandle := true
	var firstNonWordChar Mark
	for in.More() {
		if in.Peek() == exp.KeyTag {
			if !canBeHandle {
				return "", false, newScannerError(firstNonWordChar, ErrCharInTagHandle)
			}
			break
		}

		n := 0
		if canBeHandle {
			n = exp.Word.Match(in)
			if n <= 0 {
				canBeHandle = false
				firstNonWordChar = in.Mark()
			}
		}
		if !canBeHandle {
			n = exp.Tag.Match(in)
		}
		if n <= 0 {
			break
		}
		tag = append(tag, in.GetN(n)...)
	}
	return string(tag), canBeHandle, nil
}

func (s *Scanner) scanTagSuffix() (string, error) {
	in := s.in

	var tag []byte
	for in.More() {
		n := exp.Tag.Match(in)
		if n <= 0 {
			break
		}
		tag = append(tag, in.GetN(n)...)
	}
	if len(tag) == 0 {
		return "", newScannerError(in.Mark(), ErrTagWithNoSuffix)
	}
	return string(tag), nil
}
