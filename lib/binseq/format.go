// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// String renders the sequence as a padded decimal array, the default
// textual form: FromString("Hi").String() is "0d[072, 105]".
func (b Binary) String() string {
	return renderArray(b, RenderOptions{Radix: radix.Decimal})
}

// Format implements fmt.Formatter. The verb selects the radix of an
// array rendering: %b binary, %o octal, %d decimal, %x lower hex,
// %X upper hex, with %v and %s equivalent to %d. The '#' flag
// selects the compact form, so %#x of "Hello World!" is
// "0x[48,65,6c,6c,6f,20,57,6f,72,6c,64,21]". Other verbs produce the
// standard fmt bad-verb notation.
func (b Binary) Format(state fmt.State, verb rune) {
	var r radix.Radix
	switch verb {
	case 'v', 's', 'd':
		r = radix.Decimal
	case 'b':
		r = radix.Binary
	case 'o':
		r = radix.Octal
	case 'x':
		r = radix.LowerHex
	case 'X':
		r = radix.UpperHex
	default:
		fmt.Fprintf(state, "%%!%c(binseq.Binary=%s)", verb, b.String())
		return
	}
	io.WriteString(state, renderArray(b, RenderOptions{
		Radix:   r,
		Compact: state.Flag('#'),
	}))
}
