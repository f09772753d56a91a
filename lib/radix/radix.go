// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package radix

import (
	"errors"
	"fmt"
	"strconv"
)

// Radix identifies one of the five numeral systems a byte can be
// rendered in. The zero value is UpperHex.
type Radix int

const (
	// UpperHex renders bytes as two uppercase hexadecimal digits with
	// the "0X" prefix. It is the zero value and the default radix.
	UpperHex Radix = iota
	// LowerHex renders bytes as two lowercase hexadecimal digits with
	// the "0x" prefix.
	LowerHex
	// Binary renders bytes as eight binary digits with the "0b" prefix.
	Binary
	// Octal renders bytes as three octal digits with the "0o" prefix.
	Octal
	// Decimal renders bytes as three decimal digits with the "0d"
	// prefix.
	Decimal
)

// Sentinel errors returned by CutPrefix. Malformed digit errors wrap
// the underlying strconv error instead.
var (
	ErrMissingPrefix = errors.New("radix: missing radix prefix")
	ErrInvalidPrefix = errors.New("radix: invalid radix prefix")
)

// String returns a short human-readable name for the radix, for use in
// error messages and logs.
func (r Radix) String() string {
	switch r {
	case UpperHex:
		return "upper hex"
	case LowerHex:
		return "lower hex"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}

// Prefix returns the two-character radix prefix: "0X", "0x", "0b",
// "0o", or "0d".
func (r Radix) Prefix() string {
	return "0" + string(r.Letter())
}

// Letter returns the single character that identifies the radix in a
// prefix or a format specifier: 'X', 'x', 'b', 'o', or 'd'.
func (r Radix) Letter() byte {
	switch r {
	case UpperHex:
		return 'X'
	case LowerHex:
		return 'x'
	case Binary:
		return 'b'
	case Octal:
		return 'o'
	case Decimal:
		return 'd'
	}
	panic(fmt.Sprintf("radix: invalid Radix(%d)", int(r)))
}

// Width returns the fixed digit count that can represent any byte
// value in this radix: 8 for binary, 3 for octal and decimal, 2 for
// hexadecimal. Padded formatting always emits exactly this many
// digits.
func (r Radix) Width() int {
	switch r {
	case UpperHex, LowerHex:
		return 2
	case Binary:
		return 8
	case Octal, Decimal:
		return 3
	}
	panic(fmt.Sprintf("radix: invalid Radix(%d)", int(r)))
}

// Base returns the numeric base of the radix: 16, 2, 8, or 10.
func (r Radix) Base() int {
	switch r {
	case UpperHex, LowerHex:
		return 16
	case Binary:
		return 2
	case Octal:
		return 8
	case Decimal:
		return 10
	}
	panic(fmt.Sprintf("radix: invalid Radix(%d)", int(r)))
}

// AppendByte appends the digits of value to dst and returns the
// extended slice. Padded output (compact false) is zero-filled to
// exactly Width digits; compact output carries no leading zeros, so a
// zero byte is the single digit "0".
func (r Radix) AppendByte(dst []byte, value byte, compact bool) []byte {
	var scratch [8]byte
	digits := strconv.AppendUint(scratch[:0], uint64(value), r.Base())
	if r == UpperHex {
		upperHexDigits(digits)
	}
	if !compact {
		for pad := r.Width() - len(digits); pad > 0; pad-- {
			dst = append(dst, '0')
		}
	}
	return append(dst, digits...)
}

// FormatByte returns the digits of value as a string. See AppendByte.
func (r Radix) FormatByte(value byte, compact bool) string {
	return string(r.AppendByte(nil, value, compact))
}

// AppendUint appends value zero-padded to at least width digits. It
// serves offset columns and column headers, where the padding width is
// a layout decision rather than the per-byte Width.
func (r Radix) AppendUint(dst []byte, value uint64, width int) []byte {
	var scratch [64]byte
	digits := strconv.AppendUint(scratch[:0], value, r.Base())
	if r == UpperHex {
		upperHexDigits(digits)
	}
	for pad := width - len(digits); pad > 0; pad-- {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}

// ParseByte converts a digit string in this radix back to the byte it
// represents. Both hexadecimal radixes accept either letter case.
// Values above 255 and strings containing non-digits are rejected with
// an error that wraps the underlying strconv failure.
func (r Radix) ParseByte(s string) (byte, error) {
	value, err := strconv.ParseUint(s, r.Base(), 8)
	if err != nil {
		return 0, fmt.Errorf("radix: parsing %q as a %s byte: %w", s, r, err)
	}
	return byte(value), nil
}

// ParseSpecifier maps a format specifier letter to its radix: 'b', 'o',
// 'd', 'x', or 'X'. Any other letter is an error wrapping
// ErrInvalidPrefix.
func ParseSpecifier(letter byte) (Radix, error) {
	switch letter {
	case 'X':
		return UpperHex, nil
	case 'x':
		return LowerHex, nil
	case 'b':
		return Binary, nil
	case 'o':
		return Octal, nil
	case 'd':
		return Decimal, nil
	}
	return 0, fmt.Errorf("%w: %q is not one of 'b', 'o', 'd', 'x', 'X'", ErrInvalidPrefix, string(letter))
}

// CutPrefix strips the leading radix prefix from s and returns the
// identified radix together with the remainder of the string. A string
// that does not begin with '0' followed by a specifier letter fails
// with ErrMissingPrefix; a '0' followed by an unknown letter fails
// with ErrInvalidPrefix.
func CutPrefix(s string) (Radix, string, error) {
	if len(s) < 2 || s[0] != '0' {
		return 0, s, fmt.Errorf("%w: %q does not start with one of 0b, 0o, 0d, 0x, 0X", ErrMissingPrefix, s)
	}
	r, err := ParseSpecifier(s[1])
	if err != nil {
		return 0, s, err
	}
	return r, s[2:], nil
}

// upperHexDigits uppercases hexadecimal digit letters in place.
// strconv formats base-16 values with lowercase letters only.
func upperHexDigits(digits []byte) {
	for i, d := range digits {
		if d >= 'a' && d <= 'f' {
			digits[i] = d - ('a' - 'A')
		}
	}
}
