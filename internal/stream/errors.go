// Copyright 2025 The yamlscan Project Contributors
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"fmt"

	"github.com/pkg/errors"
)

// Problems reported through [ReaderError.Err].
var (
	ErrControlCharacter   = errors.New("control characters are not allowed")
	ErrInvalidSequence    = errors.New("invalid byte sequence")
	ErrIncompleteSequence = errors.New("incomplete character sequence")
)

// ReaderError is returned when the input cannot be read or decoded.
type ReaderError struct {
	Offset int // Offset of the offending input byte.
	Value  int // The offending byte or code point, -1 if unknown.
	Err    error
}

func (e ReaderError) Error() string {
	return fmt.Sprintf("yaml: offset %d: %s", e.Offset, e.Err)
}

func (e ReaderError) Unwrap() error {
	return e.Err
}
