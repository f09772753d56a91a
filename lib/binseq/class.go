// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import "fmt"

// ByteClass groups byte values by their ASCII and ISO 8859-1 roles.
// Colored renderings style each byte by its class, and the dump
// gutter uses it to decide which bytes print as themselves.
type ByteClass int

const (
	// ClassControl covers the C0 controls and space (0x00-0x20),
	// delete (0x7F), no-break space (0xA0), and soft hyphen (0xAD).
	ClassControl ByteClass = iota
	// ClassPrintable covers the visible 7-bit characters (0x21-0x7E).
	ClassPrintable
	// ClassPrintableExtended covers the visible ISO 8859-1 characters
	// (0xA1-0xAC and 0xAE-0xFF).
	ClassPrintableExtended
	// ClassUndefined covers 0x80-0x9F, which ISO 8859-1 leaves
	// unassigned.
	ClassUndefined
)

// Classify returns the class of a byte value.
func Classify(value byte) ByteClass {
	switch {
	case value <= 0x20 || value == 0x7F || value == 0xA0 || value == 0xAD:
		return ClassControl
	case value <= 0x7E:
		return ClassPrintable
	case value >= 0xA1:
		return ClassPrintableExtended
	default:
		return ClassUndefined
	}
}

// String returns a short name for the class, for error messages and
// test output.
func (c ByteClass) String() string {
	switch c {
	case ClassControl:
		return "control"
	case ClassPrintable:
		return "printable"
	case ClassPrintableExtended:
		return "printable extended"
	case ClassUndefined:
		return "undefined"
	}
	return fmt.Sprintf("ByteClass(%d)", int(c))
}
