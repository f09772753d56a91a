// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binseq

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/binseq/lib/radix"
)

// StyleArray renders a bracketed, comma-separated digit list with a
// radix prefix: "0x[48, 65]" padded, "0x[48,65]" compact, "0x[]"
// empty. It is the zero Style and is compiled into every build.
const StyleArray Style = 0

func init() {
	registerRenderer(StyleArray, renderArray)
}

func renderArray(b Binary, options RenderOptions) string {
	p := newPainter(options.Color)
	separator := p.separator(",")
	if !options.Compact {
		separator += " "
	}

	var out strings.Builder
	out.WriteString(p.prefix(options.Radix.Prefix()))
	out.WriteString(p.delimiter("["))
	for i, value := range b.data {
		if i > 0 {
			out.WriteString(separator)
		}
		out.WriteString(p.value(value, options.Radix.FormatByte(value, options.Compact)))
	}
	out.WriteString(p.delimiter("]"))
	return out.String()
}

// ParseArray parses an array rendering in any radix back into an
// owned Binary. Both padded and compact forms are accepted, and
// whitespace around each element is ignored. Failures wrap
// ErrMissingRadixPrefix, ErrInvalidRadixPrefix,
// ErrInvalidArrayBrackets, or, for a malformed element, the radix
// parse error with the element's position.
func ParseArray(s string) (Binary, error) {
	r, rest, err := radix.CutPrefix(s)
	if err != nil {
		return Binary{}, err
	}
	inner, ok := cutEnclosing(rest, '[', ']')
	if !ok {
		return Binary{}, fmt.Errorf("%w: got %q", ErrInvalidArrayBrackets, s)
	}
	if inner == "" {
		return Binary{data: []byte{}, owned: true}, nil
	}
	elements := strings.Split(inner, ",")
	data := make([]byte, 0, len(elements))
	for i, element := range elements {
		value, err := r.ParseByte(strings.TrimSpace(element))
		if err != nil {
			return Binary{}, fmt.Errorf("binseq: array element %d: %w", i, err)
		}
		data = append(data, value)
	}
	return Binary{data: data, owned: true}, nil
}

// cutEnclosing strips a single leading open byte and trailing close
// byte. It reports false when either is missing or when s is too
// short to carry both.
func cutEnclosing(s string, open, close byte) (string, bool) {
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return "", false
	}
	return s[1 : len(s)-1], true
}
