// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"fmt"

	"github.com/pkg/errors"
)

// Problems reported through [ScannerError.Err].
var (
	ErrUnknownToken          = errors.New("unknown token")
	ErrDirectiveAfterContent = errors.New("directive after document content; end the document with '...' first")
	ErrDocInScalar           = errors.New("illegal document indicator in scalar")
	ErrEOFInScalar           = errors.New("illegal EOF in scalar")
	ErrTabInIndentation      = errors.New("illegal tab when looking for indentation")
	ErrFlowEnd               = errors.New("illegal flow end")
	ErrBlockEntry            = errors.New("illegal block entry")
	ErrMapKey                = errors.New("illegal map key")
	ErrMapValue              = errors.New("illegal map value")
	ErrAliasNotFound         = errors.New("alias not found after *")
	ErrAnchorNotFound        = errors.New("anchor not found after &")
	ErrCharInAlias           = errors.New("illegal character found while scanning alias")
	ErrCharInAnchor          = errors.New("illegal character found while scanning anchor")
	ErrZeroIndentInBlock     = errors.New("cannot set zero indentation for a block scalar")
	ErrCharInBlock           = errors.New("unexpected character in block scalar")
	ErrEndOfVerbatimTag      = errors.New("end of verbatim tag not found")
	ErrTagWithNoSuffix       = errors.New("tag handle with no suffix")
	ErrCharInTagHandle       = errors.New("illegal character in tag handle")
	ErrInvalidHex            = errors.New("bad character found while scanning hex number")
	ErrInvalidUnicode        = errors.New("invalid unicode")
	ErrInvalidEscape         = errors.New("unknown escape character")
	ErrNoToken               = errors.New("no token to pop")
)

// ScannerError is a lexical error in the input.
type ScannerError struct {
	Mark Mark
	Err  error
}

func (e ScannerError) Error() string {
	return fmt.Sprintf("yaml: %s: %s", e.Mark, e.Err)
}

func (e ScannerError) Unwrap() error {
	return e.Err
}

func newScannerError(mark Mark, err error) error {
	return ScannerError{Mark: mark, Err: err}
}
