// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"errors"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// Sentinel errors for bounds-checked access and parsing. Parse
// failures on individual byte digits wrap the underlying radix error
// instead, which in turn wraps the strconv failure.
var (
	// ErrIndexOutOfRange reports an At index outside [0, Len).
	ErrIndexOutOfRange = errors.New("binseq: index out of range")
	// ErrRangeOutOfBounds reports a Slice range that is negative,
	// inverted, or extends past the end of the sequence.
	ErrRangeOutOfBounds = errors.New("binseq: range out of bounds")
	// ErrInvalidArrayBrackets reports an array form not enclosed in
	// '[' and ']'.
	ErrInvalidArrayBrackets = errors.New("binseq: array form must be enclosed in '[' and ']'")
	// ErrInvalidQuotes reports a quoted form not enclosed in double
	// quotes.
	ErrInvalidQuotes = errors.New(`binseq: quoted form must be enclosed in '"' quotes`)
	// ErrInvalidRepresentation reports input that matches no valid
	// rendering, such as a compact quoted form whose digit count is
	// not a multiple of the radix width.
	ErrInvalidRepresentation = errors.New("binseq: invalid binary representation")
)

// Radix prefix errors, shared with the radix package so callers can
// test against either name.
var (
	ErrMissingRadixPrefix = radix.ErrMissingPrefix
	ErrInvalidRadixPrefix = radix.ErrInvalidPrefix
)
